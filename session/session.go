/*
Package session wires the compilation pipeline together for drivers.

A Session owns one long-lived environment and processes source text against
it: scan, parse, semantic check, then per statement 3AC generation, peephole
optimization and execution. The REPL feeds a session one statement batch at a
time; the file driver feeds it a whole script. Either way the pipeline fails
fast: the first error aborts the run.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package session

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/logic-horizon/logiceval/interp"
	"github.com/logic-horizon/logiceval/ir"
	"github.com/logic-horizon/logiceval/opt"
	"github.com/logic-horizon/logiceval/parser"
	"github.com/logic-horizon/logiceval/runtime"
	"github.com/logic-horizon/logiceval/scanner"
	"github.com/logic-horizon/logiceval/sem"
)

// tracer traces with key 'logiceval.session'.
func tracer() tracing.Trace {
	return tracing.Select("logiceval.session")
}

// Session is one evaluation session: an environment plus the stateless
// pipeline stages operating on it.
type Session struct {
	env *runtime.Environment
	gen *ir.Generator
}

// New creates a session with a fresh environment.
func New() *Session {
	return &Session{
		env: runtime.NewEnvironment(),
		gen: ir.NewGenerator(),
	}
}

// Environment exposes the session's environment, e.g. for inspection by a
// driver. Ownership stays with the session.
func (s *Session) Environment() *runtime.Environment {
	return s.env
}

// Process compiles and executes source text against the session environment.
// Statements execute in order; results of the statements executed so far are
// returned alongside the first error, if any.
//
// Rules defined by earlier Process calls stay visible, so an interactive
// session can define a rule on one line and infer over it on a later one.
func (s *Session) Process(text string) ([]*interp.Result, error) {
	tokens, err := scanner.Tokenize(text)
	if err != nil {
		return nil, err
	}
	prog, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	if _, err := sem.Check(prog, s.env.RuleNames()...); err != nil {
		return nil, err
	}

	var results []*interp.Result
	for _, stmt := range prog.Statements {
		block := s.gen.Generate(stmt)
		block.Code = opt.Optimize(block.Code)
		// identity/annihilator rewrites can drop variable references
		block.Vars = ir.FreeVars(block.Code)
		res, err := interp.Execute(s.env, block)
		if err != nil {
			return results, err
		}
		tracer().Debugf("executed %v", stmt)
		results = append(results, res)
	}
	return results, nil
}
