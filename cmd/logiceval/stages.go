package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/logic-horizon/logiceval"
	"github.com/logic-horizon/logiceval/ast"
	"github.com/logic-horizon/logiceval/interp"
	"github.com/logic-horizon/logiceval/ir"
	"github.com/logic-horizon/logiceval/opt"
	"github.com/logic-horizon/logiceval/parser"
	"github.com/logic-horizon/logiceval/runtime"
	"github.com/logic-horizon/logiceval/scanner"
	"github.com/logic-horizon/logiceval/sem"
)

// runStages runs a script file and displays each compiler stage: token
// stream, syntax trees, semantic summary, raw and optimized 3AC, and finally
// the execution output. A stage error stops the run, later stages are not
// attempted.
func runStages(filename string) {
	text, err := os.ReadFile(filename)
	if err != nil {
		pterm.Error.Printf("cannot read %s: %v\n", filename, err)
		os.Exit(1)
	}

	pterm.DefaultSection.Println("Stage 1: Lexical Analysis")
	tokens, err := scanner.Tokenize(string(text))
	if err != nil {
		failStage(err)
	}
	for _, tok := range tokens {
		if tok.Kind != logiceval.EOF {
			pterm.Printf("  %-10s %-10q %d:%d\n", tok.Kind, tok.Lexeme, tok.Line, tok.Col)
		}
	}
	pterm.Printf("  %d tokens\n", len(tokens)-1)

	pterm.DefaultSection.Println("Stage 2: Syntax Analysis")
	prog, err := parser.Parse(tokens)
	if err != nil {
		failStage(err)
	}
	pterm.Printf("  %d statements\n", len(prog.Statements))
	for _, stmt := range prog.Statements {
		pterm.Println("  " + stmt.String())
		if x := stmtExpr(stmt); x != nil {
			ll := leveledExpr(x, pterm.LeveledList{}, 0)
			pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
		}
	}

	pterm.DefaultSection.Println("Stage 3: Semantic Analysis")
	info, err := sem.Check(prog)
	if err != nil {
		failStage(err)
	}
	pterm.Printf("  variables set: %v\n", info.Variables())
	pterm.Printf("  rules defined: %v\n", info.Rules())

	pterm.DefaultSection.Println("Stage 4: Intermediate Code")
	gen := ir.NewGenerator()
	blocks := make([]*ir.Block, 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		block := gen.Generate(stmt)
		blocks = append(blocks, block)
		pterm.Println("  ; " + stmt.String())
		printCode(block.Code)
	}

	pterm.DefaultSection.Println("Stage 5: Optimization")
	for i, block := range blocks {
		block.Code = opt.Optimize(block.Code)
		block.Vars = ir.FreeVars(block.Code)
		pterm.Println("  ; " + prog.Statements[i].String())
		printCode(block.Code)
	}

	pterm.DefaultSection.Println("Stage 6: Execution")
	env := runtime.NewEnvironment()
	for _, block := range blocks {
		res, err := interp.Execute(env, block)
		if err != nil {
			failStage(err)
		}
		printResult(res)
	}
	for _, name := range env.RuleNames() {
		if rule, ok := env.Rule(name); ok {
			pterm.Printf("  rule %s [%s] = %s\n", name, rule.Fingerprint, bitString(rule.Value))
		}
	}
}

func failStage(err error) {
	pterm.Error.Println(err.Error())
	os.Exit(1)
}

func printCode(code []ir.Instruction) {
	for _, inst := range code {
		pterm.Println("    " + inst.String())
	}
}

// stmtExpr returns a statement's expression tree, if it has one.
func stmtExpr(stmt ast.Stmt) ast.Expr {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return s.X
	case *ast.RuleStmt:
		return s.X
	}
	return nil
}

// leveledExpr flattens an expression tree into a pterm leveled list for tree
// rendering on the terminal.
func leveledExpr(x ast.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch x := x.(type) {
	case *ast.BinaryOp:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: x.Op.String()})
		ll = leveledExpr(x.Left, ll, level+1)
		ll = leveledExpr(x.Right, ll, level+1)
	case *ast.UnaryOp:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: x.Op.String()})
		ll = leveledExpr(x.Operand, ll, level+1)
	case *ast.Var:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: x.Name})
	case *ast.Literal:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: x.String()})
	}
	return ll
}

func bitString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
