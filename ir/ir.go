/*
Package ir defines the three-address code (3AC) of the logic pipeline and the
generator lowering syntax trees into it.

Instructions are linear: binary ops ("t1 = AND A B"), unary ops
("t2 = NOT t1"), assignments ("R = t2") and the three execution directives
("TABLE [name]", "EVAL", "INFER name…"). Operands are temporaries ("t<n>"),
variable/rule identifiers, or the literals "0"/"1". Every temporary is
defined before use and numbering restarts per statement.

The textual rendering is the debugging surface between optimizer and
interpreter and deliberately kept human-readable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ir

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'logiceval.ir'.
func tracer() tracing.Trace {
	return tracing.Select("logiceval.ir")
}

// Opcode is the instruction category.
type Opcode int

// Instruction opcodes.
const (
	Assign Opcode = iota // target = source
	And                  // target = AND a b
	Or                   // target = OR a b
	Xor                  // target = XOR a b
	Implies              // target = IMPLIES a b
	Not                  // target = NOT a

	// Directives
	Table // TABLE [name]
	Eval  // EVAL
	Infer // INFER name…
)

var opcodeNames = map[Opcode]string{
	Assign:  "=",
	And:     "AND",
	Or:      "OR",
	Xor:     "XOR",
	Implies: "IMPLIES",
	Not:     "NOT",
	Table:   "TABLE",
	Eval:    "EVAL",
	Infer:   "INFER",
}

func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Opcode(%d)", int(op))
}

// IsDirective is true for the non-computing instruction kinds.
func (op Opcode) IsDirective() bool {
	return op == Table || op == Eval || op == Infer
}

// Instruction is one 3AC instruction. Target is empty for directives; Args
// holds operand locations, or the referenced names for TABLE and INFER.
type Instruction struct {
	Op     Opcode
	Target string
	Args   []string
}

func (inst Instruction) String() string {
	switch inst.Op {
	case Assign:
		return fmt.Sprintf("%s = %s", inst.Target, inst.Args[0])
	case Not:
		return fmt.Sprintf("%s = NOT %s", inst.Target, inst.Args[0])
	case And, Or, Xor, Implies:
		return fmt.Sprintf("%s = %s %s %s", inst.Target, inst.Op, inst.Args[0], inst.Args[1])
	case Eval:
		return "EVAL"
	case Table:
		if len(inst.Args) > 0 {
			return "TABLE " + inst.Args[0]
		}
		return "TABLE"
	case Infer:
		return "INFER " + strings.Join(inst.Args, " ")
	}
	return fmt.Sprintf("<bad instruction %d>", int(inst.Op))
}

// IsTemp reports whether an operand names a generator temporary ("t<n>").
// Identifiers of that shape are reserved; a source-level variable named "t1"
// would collide with the temporary namespace.
func IsTemp(operand string) bool {
	if len(operand) < 2 || operand[0] != 't' {
		return false
	}
	for _, r := range operand[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsLiteral reports whether an operand is a boolean literal.
func IsLiteral(operand string) bool {
	return operand == "0" || operand == "1"
}

// Listing renders an instruction sequence one per line.
func Listing(code []Instruction) string {
	var b strings.Builder
	for _, inst := range code {
		b.WriteString(inst.String())
		b.WriteString("\n")
	}
	return b.String()
}

// FreeVars collects the variable names read by an instruction sequence,
// sorted ascending. Temporaries, literals and assignment targets are not
// free.
func FreeVars(code []Instruction) []string {
	set := treeset.NewWithStringComparator()
	for _, inst := range code {
		if inst.Op.IsDirective() {
			continue
		}
		for _, arg := range inst.Args {
			if !IsTemp(arg) && !IsLiteral(arg) {
				set.Add(arg)
			}
		}
	}
	vars := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		vars = append(vars, v.(string))
	}
	return vars
}
