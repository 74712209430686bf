package ir

import (
	"fmt"

	"github.com/logic-horizon/logiceval/ast"
)

// BlockKind tells the interpreter how to execute a generated block.
type BlockKind int

// Block kinds, one per statement class.
const (
	BlockSet   BlockKind = iota // variable assignment
	BlockExpr                   // unnamed expression: store as last expression
	BlockRule                   // rule or named expression: execute and store
	BlockTable                  // truth-table directive
	BlockEval                   // evaluation directive
	BlockInfer                  // inference directive
)

// Block is the unit of code generation: the 3AC for one top-level statement,
// together with what the interpreter needs to dispatch on it. Vars is the
// sorted free-variable set of Code.
type Block struct {
	Kind BlockKind
	Name string // rule/named-expression name, or table target ("" = last expression)
	Code []Instruction
	Vars []string
}

// Generator lowers statements to 3AC. The temporary counter restarts for
// every Generate call, so temporaries never collide within one block.
type Generator struct {
	tmp  int
	code []Instruction
}

// NewGenerator creates a generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate lowers one statement into a Block. Lowering is a post-order walk
// of the statement's expression tree: every operator node allocates a fresh
// temporary and emits one instruction, leaf nodes only contribute their
// location.
func (g *Generator) Generate(stmt ast.Stmt) *Block {
	g.tmp = 0
	g.code = nil
	var block *Block
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		loc := g.expr(s.X)
		if s.Name != "" {
			g.emit(Instruction{Op: Assign, Target: s.Name, Args: []string{loc}})
			block = &Block{Kind: BlockRule, Name: s.Name}
		} else {
			if len(g.code) == 0 {
				// bare variable or literal: materialize it so the block is
				// runnable as a stored expression
				t := g.newTemp()
				g.emit(Instruction{Op: Assign, Target: t, Args: []string{loc}})
			}
			block = &Block{Kind: BlockExpr}
		}
	case *ast.SetStmt:
		g.emit(Instruction{Op: Assign, Target: s.Name, Args: []string{literal(s.Value)}})
		block = &Block{Kind: BlockSet, Name: s.Name}
	case *ast.TableStmt:
		inst := Instruction{Op: Table}
		if s.Target != "" {
			inst.Args = []string{s.Target}
		}
		g.emit(inst)
		block = &Block{Kind: BlockTable, Name: s.Target}
	case *ast.EvalStmt:
		g.emit(Instruction{Op: Eval})
		block = &Block{Kind: BlockEval}
	case *ast.RuleStmt:
		loc := g.expr(s.X)
		g.emit(Instruction{Op: Assign, Target: s.Name, Args: []string{loc}})
		block = &Block{Kind: BlockRule, Name: s.Name}
	case *ast.InferStmt:
		g.emit(Instruction{Op: Infer, Args: s.Rules})
		block = &Block{Kind: BlockInfer}
	}
	block.Code = g.code
	block.Vars = FreeVars(g.code)
	tracer().Debugf("generated block (%d instructions) for %v", len(block.Code), stmt)
	return block
}

// expr lowers an expression and returns its value location: a temporary for
// operator nodes, the name or literal itself for leaves.
func (g *Generator) expr(x ast.Expr) string {
	switch x := x.(type) {
	case *ast.BinaryOp:
		left := g.expr(x.Left)
		right := g.expr(x.Right)
		t := g.newTemp()
		g.emit(Instruction{Op: opcodeFor(x.Op), Target: t, Args: []string{left, right}})
		return t
	case *ast.UnaryOp:
		operand := g.expr(x.Operand)
		t := g.newTemp()
		g.emit(Instruction{Op: Not, Target: t, Args: []string{operand}})
		return t
	case *ast.Var:
		return x.Name
	case *ast.Literal:
		return literal(x.Value)
	}
	return ""
}

func (g *Generator) emit(inst Instruction) {
	g.code = append(g.code, inst)
}

func (g *Generator) newTemp() string {
	g.tmp++
	return fmt.Sprintf("t%d", g.tmp)
}

func opcodeFor(op ast.Op) Opcode {
	switch op {
	case ast.OpAnd:
		return And
	case ast.OpOr:
		return Or
	case ast.OpXor:
		return Xor
	case ast.OpImplies:
		return Implies
	case ast.OpNot:
		return Not
	}
	return Assign
}

func literal(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
