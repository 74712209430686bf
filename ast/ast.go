/*
Package ast defines the syntax tree of the logic language.

Both statements and expressions are closed variant sets: every pass over the
tree (semantic check, IR generation) switches over the concrete types, so a
new statement or operator kind forces a handler in every pass.

Trees are immutable after construction and owned exclusively by the Program
that contains them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ast

import (
	"fmt"
	"strings"
)

// Op enumerates the boolean operators.
type Op int

// Operators, in source notation order.
const (
	OpAnd     Op = iota // '&'
	OpOr                // '|'
	OpXor               // 'xor' / '^'
	OpImplies           // '->'
	OpNot               // '!'
)

func (op Op) String() string {
	switch op {
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpXor:
		return "xor"
	case OpImplies:
		return "->"
	case OpNot:
		return "!"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// --- Program and statements -------------------------------------------------

// Program is the root of a syntax tree: an ordered statement sequence.
type Program struct {
	Statements []Stmt
}

// Stmt is the closed statement variant set.
type Stmt interface {
	fmt.Stringer
	stmtNode()
}

// ExprStmt is an 'expr' statement, optionally carrying a name under which the
// expression will be stored. Name is empty for the unnamed form.
type ExprStmt struct {
	Name string
	X    Expr
}

// SetStmt assigns a boolean literal to a variable.
type SetStmt struct {
	Name  string
	Value bool
}

// TableStmt requests a truth table, either for a named rule/expression or,
// with empty Target, for the last unnamed expression.
type TableStmt struct {
	Target string
}

// EvalStmt requests direct evaluation of the last stored expression.
type EvalStmt struct{}

// RuleStmt defines a named rule.
type RuleStmt struct {
	Name string
	X    Expr
}

// InferStmt reports the stored values of one or more rules.
type InferStmt struct {
	Rules []string
}

func (*ExprStmt) stmtNode()  {}
func (*SetStmt) stmtNode()   {}
func (*TableStmt) stmtNode() {}
func (*EvalStmt) stmtNode()  {}
func (*RuleStmt) stmtNode()  {}
func (*InferStmt) stmtNode() {}

func (s *ExprStmt) String() string {
	if s.Name != "" {
		return fmt.Sprintf("expr %s %s;", s.Name, s.X)
	}
	return fmt.Sprintf("expr %s;", s.X)
}

func (s *SetStmt) String() string {
	return fmt.Sprintf("set %s = %s;", s.Name, bit(s.Value))
}

func (s *TableStmt) String() string {
	if s.Target != "" {
		return fmt.Sprintf("table %s;", s.Target)
	}
	return "table;"
}

func (s *EvalStmt) String() string {
	return "eval;"
}

func (s *RuleStmt) String() string {
	return fmt.Sprintf("%s: %s;", s.Name, s.X)
}

func (s *InferStmt) String() string {
	return fmt.Sprintf("infer %s;", strings.Join(s.Rules, ", "))
}

// --- Expressions ------------------------------------------------------------

// Expr is the closed expression variant set.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// BinaryOp applies a binary operator to two sub-expressions.
type BinaryOp struct {
	Left  Expr
	Op    Op
	Right Expr
}

// UnaryOp applies negation to its operand.
type UnaryOp struct {
	Op      Op
	Operand Expr
}

// Var references a variable (or rule) by name.
type Var struct {
	Name string
}

// Literal is a boolean constant, written '0' or '1'.
type Literal struct {
	Value bool
}

func (*BinaryOp) exprNode() {}
func (*UnaryOp) exprNode()  {}
func (*Var) exprNode()      {}
func (*Literal) exprNode()  {}

func (x *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", x.Left, x.Op, x.Right)
}

func (x *UnaryOp) String() string {
	return fmt.Sprintf("%s%s", x.Op, x.Operand)
}

func (x *Var) String() string {
	return x.Name
}

func (x *Literal) String() string {
	return bit(x.Value)
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
