/*
Package runtime holds the mutable state of one evaluation session.

An Environment is the single mutable sink of the pipeline: variables set by
'set' statements, rules (stored instruction lists with their last-evaluated
value) and the most recent unnamed expression. It is passed explicitly into
the interpreter, never reached through ambient state, so independent sessions
can coexist. The environment lives for a session and is reset only by the
driver creating a fresh one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package runtime

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing"

	"github.com/logic-horizon/logiceval/ir"
)

// tracer traces with key 'logiceval.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("logiceval.runtime")
}

// Rule is a stored named rule or named expression: its instruction list, its
// sorted free variables and the value computed when its defining statement
// was executed. Fingerprint is a digest of the instruction list, useful for
// spotting redefinitions in diagnostics.
type Rule struct {
	Name        string
	Code        []ir.Instruction
	Vars        []string
	Value       bool
	Fingerprint string
}

// Stored is an unnamed stored expression: the most recent unnamed 'expr'
// statement's instructions and their sorted free variables.
type Stored struct {
	Code []ir.Instruction
	Vars []string
}

// Environment is the session state. Create one with NewEnvironment; mutate it
// only through its methods.
type Environment struct {
	Session   uuid.UUID
	variables map[string]bool
	rules     map[string]*Rule
	lastExpr  *Stored
}

// NewEnvironment creates a fresh session environment with a unique session id.
func NewEnvironment() *Environment {
	env := &Environment{
		Session:   uuid.New(),
		variables: make(map[string]bool),
		rules:     make(map[string]*Rule),
	}
	tracer().Debugf("new session environment %s", env.Session)
	return env
}

// SetVar assigns a variable.
func (env *Environment) SetVar(name string, value bool) {
	env.variables[name] = value
}

// Var resolves a variable. The second return value reports whether the
// variable has ever been set.
func (env *Environment) Var(name string) (bool, bool) {
	v, ok := env.variables[name]
	return v, ok
}

// Snapshot copies the variable map, for transient evaluation contexts.
func (env *Environment) Snapshot() map[string]bool {
	snap := make(map[string]bool, len(env.variables))
	for k, v := range env.variables {
		snap[k] = v
	}
	return snap
}

// DefineRule stores a rule (or named expression) under its name, replacing a
// previous definition. The rule's value is set separately, by the interpreter
// executing the defining statement (see SetRuleValue).
func (env *Environment) DefineRule(name string, code []ir.Instruction, vars []string) *Rule {
	rule := &Rule{
		Name:        name,
		Code:        code,
		Vars:        vars,
		Fingerprint: fingerprint(code),
	}
	if old, ok := env.rules[name]; ok && old.Fingerprint != rule.Fingerprint {
		tracer().P("session", env.Session.String()).Infof(
			"rule '%s' redefined (%s -> %s)", name, old.Fingerprint, rule.Fingerprint)
	}
	env.rules[name] = rule
	return rule
}

// SetRuleValue records the value a rule evaluated to.
func (env *Environment) SetRuleValue(name string, value bool) {
	if rule, ok := env.rules[name]; ok {
		rule.Value = value
	}
}

// Rule resolves a stored rule by name.
func (env *Environment) Rule(name string) (*Rule, bool) {
	rule, ok := env.rules[name]
	return rule, ok
}

// RuleNames returns the names of all stored rules, in no particular order.
func (env *Environment) RuleNames() []string {
	names := make([]string, 0, len(env.rules))
	for name := range env.rules {
		names = append(names, name)
	}
	return names
}

// SetLastExpr stores the instructions of an unnamed 'expr' statement.
func (env *Environment) SetLastExpr(code []ir.Instruction, vars []string) {
	env.lastExpr = &Stored{Code: code, Vars: vars}
}

// LastExpr returns the most recent unnamed stored expression, or nil if no
// unnamed 'expr' statement has been executed yet.
func (env *Environment) LastExpr() *Stored {
	return env.lastExpr
}

func fingerprint(code []ir.Instruction) string {
	return fmt.Sprintf("%x", structhash.Md5(code, 1))
}
