/*
Package sem is the semantic check pass over logic-language syntax trees.

Two checks run over the full statement list in source order: rule names must
be unique, and every rule referenced by an 'infer' statement must be defined
by an earlier rule statement. Variables need no declaration; any identifier
inside an expression is an implicitly declared variable.

The pass never mutates the tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package sem

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing"

	"github.com/logic-horizon/logiceval"
	"github.com/logic-horizon/logiceval/ast"
)

// tracer traces with key 'logiceval.sem'.
func tracer() tracing.Trace {
	return tracing.Select("logiceval.sem")
}

// Info summarizes a checked program: the variables assigned by 'set'
// statements and the rules defined, both in ascending name order.
// Drivers use it for diagnostics; the pipeline itself does not.
type Info struct {
	vars  *treeset.Set
	rules *treeset.Set
	known *treeset.Set // rules carried over from earlier programs
}

// Variables returns the names assigned by 'set' statements, sorted.
func (info *Info) Variables() []string {
	return names(info.vars)
}

// Rules returns the defined rule names, sorted.
func (info *Info) Rules() []string {
	return names(info.rules)
}

func names(set *treeset.Set) []string {
	ns := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		ns = append(ns, v.(string))
	}
	return ns
}

// Check validates a syntactically correct program. It either returns a
// summary of the program, or the first SemanticError encountered.
//
// Rules already defined by earlier programs of the same session may be passed
// as known; 'infer' statements resolve against them as well. Redefining a
// known rule is allowed (a later program shadows the stored rule), only
// duplicates within one program are rejected.
func Check(prog *ast.Program, known ...string) (*Info, error) {
	info := &Info{
		vars:  treeset.NewWithStringComparator(),
		rules: treeset.NewWithStringComparator(),
	}
	info.known = treeset.NewWithStringComparator()
	for _, name := range known {
		info.known.Add(name)
	}
	for _, stmt := range prog.Statements {
		if err := info.checkStmt(stmt); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("checked %d statements, %d rules", len(prog.Statements), info.rules.Size())
	return info, nil
}

func (info *Info) checkStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		checkExpr(s.X)
	case *ast.SetStmt:
		// 'set' implicitly declares a variable, or updates it
		info.vars.Add(s.Name)
	case *ast.TableStmt:
		// target may name a rule defined in an earlier program of the same
		// session, so it cannot be resolved here
	case *ast.EvalStmt:
		// nothing to check
	case *ast.RuleStmt:
		if info.rules.Contains(s.Name) {
			return &logiceval.SemanticError{
				Name: s.Name,
				Msg:  fmt.Sprintf("rule '%s' already defined", s.Name),
			}
		}
		info.rules.Add(s.Name)
		checkExpr(s.X)
	case *ast.InferStmt:
		for _, name := range s.Rules {
			if !info.rules.Contains(name) && !info.known.Contains(name) {
				return &logiceval.SemanticError{
					Name: name,
					Msg:  fmt.Sprintf("inference on undefined rule '%s'", name),
				}
			}
		}
	}
	return nil
}

// checkExpr walks an expression. Free variables are valid without
// declaration, so there is nothing to reject below statement level, but the
// walk keeps the variant set closed: a new expression kind has to be handled
// here.
func checkExpr(x ast.Expr) {
	switch x := x.(type) {
	case *ast.BinaryOp:
		checkExpr(x.Left)
		checkExpr(x.Right)
	case *ast.UnaryOp:
		checkExpr(x.Operand)
	case *ast.Var:
	case *ast.Literal:
	}
}
