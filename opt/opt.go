/*
Package opt is the peephole optimizer for logic-language 3AC.

One forward pass rewrites individual instructions using boolean algebra:
constant folding when all operands are literal, identity laws (x & 1 = x,
x | 0 = x, x ^ 0 = x) and annihilators (x & 0 = 0, x | 1 = 1). There is no
iteration to fixpoint and no cross-instruction analysis; directives and
assignments always pass through unchanged.

Every rewrite produces an assignment instruction, which no rule re-triggers,
so applying the pass twice yields the same list as applying it once. The
input list length is preserved.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package opt

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/logic-horizon/logiceval/ir"
)

// tracer traces with key 'logiceval.opt'.
func tracer() tracing.Trace {
	return tracing.Select("logiceval.opt")
}

// Optimize rewrites an instruction list in a single pass. The returned list
// is new; the input is not modified.
func Optimize(code []ir.Instruction) []ir.Instruction {
	optimized := make([]ir.Instruction, 0, len(code))
	for _, inst := range code {
		rewritten := rewrite(inst)
		if rewritten.Op != inst.Op {
			tracer().Debugf("rewrote '%s' to '%s'", inst, rewritten)
		}
		optimized = append(optimized, rewritten)
	}
	return optimized
}

func rewrite(inst ir.Instruction) ir.Instruction {
	switch inst.Op {
	case ir.Not:
		a := inst.Args[0]
		if ir.IsLiteral(a) {
			return assign(inst.Target, literal(a == "0"))
		}
	case ir.And, ir.Or, ir.Xor, ir.Implies:
		return rewriteBinary(inst)
	}
	return inst
}

func rewriteBinary(inst ir.Instruction) ir.Instruction {
	a, b := inst.Args[0], inst.Args[1]

	// Constant folding
	if ir.IsLiteral(a) && ir.IsLiteral(b) {
		return assign(inst.Target, literal(fold(inst.Op, a == "1", b == "1")))
	}

	// Identity laws: one operand is the operator's identity element
	switch inst.Op {
	case ir.And:
		if a == "1" {
			return assign(inst.Target, b)
		}
		if b == "1" {
			return assign(inst.Target, a)
		}
	case ir.Or, ir.Xor:
		if a == "0" {
			return assign(inst.Target, b)
		}
		if b == "0" {
			return assign(inst.Target, a)
		}
	}

	// Annihilators: one operand forces the result
	switch inst.Op {
	case ir.And:
		if a == "0" || b == "0" {
			return assign(inst.Target, "0")
		}
	case ir.Or:
		if a == "1" || b == "1" {
			return assign(inst.Target, "1")
		}
	}

	return inst
}

func fold(op ir.Opcode, a, b bool) bool {
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

func assign(target, source string) ir.Instruction {
	return ir.Instruction{Op: ir.Assign, Target: target, Args: []string{source}}
}

func literal(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
