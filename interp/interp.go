/*
Package interp executes logic-language 3AC against a session environment.

Execution is per statement block (see package ir). Compute instructions write
into a transient temporary table scoped to one run; assignments to variable or
rule names write into the environment when the block is a 'set' or rule
definition, and into a transient context otherwise. Three directive kinds
produce output: EVAL emits the value of the stored expression, TABLE
enumerates a truth table over its free variables, INFER reports stored rule
values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package interp

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/logic-horizon/logiceval"
	"github.com/logic-horizon/logiceval/ir"
	"github.com/logic-horizon/logiceval/runtime"
)

// tracer traces with key 'logiceval.interp'.
func tracer() tracing.Trace {
	return tracing.Select("logiceval.interp")
}

// Execute runs one statement block against an environment. Statements are
// atomic: either the environment transition happens and a result is returned,
// or the environment is left untouched and a RuntimeError is returned.
func Execute(env *runtime.Environment, block *ir.Block) (*Result, error) {
	switch block.Kind {
	case ir.BlockSet:
		if _, err := run(env, block.Code, nil, writeThrough); err != nil {
			return nil, err
		}
		return &Result{}, nil
	case ir.BlockExpr:
		// not executed now; stored for 'eval' and 'table'
		env.SetLastExpr(block.Code, block.Vars)
		return &Result{}, nil
	case ir.BlockRule:
		value, err := run(env, block.Code, nil, writeThrough)
		if err != nil {
			return nil, err
		}
		env.DefineRule(block.Name, block.Code, block.Vars)
		env.SetRuleValue(block.Name, value)
		return &Result{}, nil
	case ir.BlockTable:
		return table(env, block.Name)
	case ir.BlockEval:
		return eval(env)
	case ir.BlockInfer:
		return infer(env, block)
	}
	return nil, &logiceval.RuntimeError{Msg: fmt.Sprintf("unknown block kind %d", block.Kind)}
}

// --- Direct evaluation ------------------------------------------------------

func eval(env *runtime.Environment) (*Result, error) {
	stored := env.LastExpr()
	if stored == nil {
		return nil, &logiceval.RuntimeError{Msg: "no expression to evaluate"}
	}
	value, err := run(env, stored.Code, nil, strict)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("eval result %v", value)
	return &Result{Kind: ValueResult, Value: value}, nil
}

// --- Truth tables -----------------------------------------------------------

// table enumerates all 2^k assignments over the target's free variables in
// ascending binary order, first variable (in name order) most significant.
// The global variable map is never mutated; every row runs in a fresh
// transient context.
func table(env *runtime.Environment, target string) (*Result, error) {
	var code []ir.Instruction
	var vars []string
	if target != "" {
		rule, ok := env.Rule(target)
		if !ok {
			return nil, &logiceval.RuntimeError{
				Name: target,
				Msg:  fmt.Sprintf("unknown rule or expression '%s'", target),
			}
		}
		code, vars = rule.Code, rule.Vars
	} else {
		stored := env.LastExpr()
		if stored == nil {
			return nil, &logiceval.RuntimeError{Msg: "no expression to build a table for"}
		}
		code, vars = stored.Code, stored.Vars
	}
	if len(vars) == 0 {
		return nil, &logiceval.RuntimeError{Msg: "no variables to generate table for"}
	}

	k := len(vars)
	tbl := &TruthTable{Vars: vars}
	for n := 0; n < 1<<uint(k); n++ {
		overlay := make(map[string]bool, k)
		inputs := make([]bool, k)
		for i, name := range vars {
			bit := n>>(uint(k-1-i))&1 == 1
			overlay[name] = bit
			inputs[i] = bit
		}
		value, err := run(env, code, overlay, transient)
		if err != nil {
			return nil, err
		}
		tbl.Rows = append(tbl.Rows, Row{Inputs: inputs, Value: value})
	}
	tracer().Debugf("enumerated %d rows over %v", len(tbl.Rows), vars)
	return &Result{Kind: TableResult, Table: tbl}, nil
}

// --- Inference --------------------------------------------------------------

func infer(env *runtime.Environment, block *ir.Block) (*Result, error) {
	directive := block.Code[len(block.Code)-1]
	result := &Result{Kind: InferResult}
	for _, name := range directive.Args {
		rule, ok := env.Rule(name)
		if !ok {
			return nil, &logiceval.RuntimeError{
				Name: name,
				Msg:  fmt.Sprintf("rule '%s' has never been evaluated", name),
			}
		}
		result.Inferences = append(result.Inferences, Inference{Name: name, Value: rule.Value})
	}
	return result, nil
}

// --- The instruction loop ---------------------------------------------------

type runMode int

const (
	writeThrough runMode = iota // assignments to names persist in the environment
	transient                   // assignments stay in the run's context
	strict                      // transient, and undefined variable reads fail
)

// run executes compute and assignment instructions in order and returns the
// value of the last one executed. Directives are skipped. overlay binds
// variables on top of a snapshot of the environment for this run only.
func run(env *runtime.Environment, code []ir.Instruction, overlay map[string]bool, mode runMode) (bool, error) {
	context := env.Snapshot()
	for name, value := range overlay {
		context[name] = value
	}
	temps := make(map[string]bool)
	last := false

	for _, inst := range code {
		if inst.Op.IsDirective() {
			continue
		}
		var value bool
		switch inst.Op {
		case ir.Assign:
			v, err := operand(inst.Args[0], context, temps, mode)
			if err != nil {
				return false, err
			}
			value = v
		case ir.Not:
			v, err := operand(inst.Args[0], context, temps, mode)
			if err != nil {
				return false, err
			}
			value = !v
		case ir.And, ir.Or, ir.Xor, ir.Implies:
			a, err := operand(inst.Args[0], context, temps, mode)
			if err != nil {
				return false, err
			}
			b, err := operand(inst.Args[1], context, temps, mode)
			if err != nil {
				return false, err
			}
			value = apply(inst.Op, a, b)
		}
		if ir.IsTemp(inst.Target) {
			temps[inst.Target] = value
		} else {
			context[inst.Target] = value
			if mode == writeThrough {
				env.SetVar(inst.Target, value)
			}
		}
		last = value
	}
	return last, nil
}

// operand resolves an instruction operand: a literal, a temporary of this
// run, or a variable. In strict mode an unset variable is a RuntimeError; in
// the other modes it defaults to false (variables need no declaration).
func operand(arg string, context map[string]bool, temps map[string]bool, mode runMode) (bool, error) {
	if ir.IsLiteral(arg) {
		return arg == "1", nil
	}
	if ir.IsTemp(arg) {
		return temps[arg], nil
	}
	if v, ok := context[arg]; ok {
		return v, nil
	}
	if mode == strict {
		return false, &logiceval.RuntimeError{
			Name: arg,
			Msg:  fmt.Sprintf("undefined variable '%s'", arg),
		}
	}
	return false, nil
}

func apply(op ir.Opcode, a, b bool) bool {
	switch op {
	case ir.And:
		return a && b
	case ir.Or:
		return a || b
	case ir.Xor:
		return a != b
	case ir.Implies:
		return !a || b
	}
	return false
}
