/*
Package parser builds syntax trees for the logic language.

The parser is a recursive-descent parser with one token of lookahead (two for
the 'expr'-statement name heuristic, see parseExprStmt). Expression parsing
climbs five precedence levels, lowest to highest: implication (right
associative), or, xor, and (left associative), not (prefix), primary.

Error recovery is panic-mode: the first violated expectation aborts parsing
with a SyntaxError, no synchronization or multi-error reporting.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package parser

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/logic-horizon/logiceval"
	"github.com/logic-horizon/logiceval/ast"
)

// tracer traces with key 'logiceval.parser'.
func tracer() tracing.Trace {
	return tracing.Select("logiceval.parser")
}

// MaxNestingDepth bounds expression recursion. Parser recursion depth equals
// expression nesting depth, so adversarial input cannot grow the call stack
// without bound.
const MaxNestingDepth = 256

// Parse consumes a token sequence (as produced by scanner.Tokenize,
// terminated by an EOF token) and returns a Program.
func Parse(tokens []logiceval.Token) (*ast.Program, error) {
	prog := &ast.Program{}
	if len(tokens) == 0 {
		return prog, nil
	}
	p := &parser{tokens: tokens}
	for p.current().Kind != logiceval.EOF {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		tracer().Debugf("parsed statement %v", stmt)
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

type parser struct {
	tokens []logiceval.Token
	pos    int
	depth  int // current expression nesting depth
}

func (p *parser) current() logiceval.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.tokens[len(p.tokens)-1] // EOF
}

func (p *parser) peek() logiceval.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) advance() logiceval.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind logiceval.TokType) (logiceval.Token, error) {
	if p.current().Kind == kind {
		return p.advance(), nil
	}
	return logiceval.Token{}, p.errorf("expected %s, found %s", kind, p.current().Kind)
}

// errorf creates a SyntaxError at the current token.
func (p *parser) errorf(format string, args ...interface{}) *logiceval.SyntaxError {
	tok := p.current()
	return &logiceval.SyntaxError{
		Line:  tok.Line,
		Col:   tok.Col,
		Found: tok.Kind,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// --- Statements -------------------------------------------------------------

func (p *parser) parseStmt() (ast.Stmt, error) {
	switch p.current().Kind {
	case logiceval.KwExpr:
		return p.parseExprStmt()
	case logiceval.KwSet:
		return p.parseSetStmt()
	case logiceval.KwTable:
		return p.parseTableStmt()
	case logiceval.KwEval:
		return p.parseEvalStmt()
	case logiceval.KwInfer:
		return p.parseInferStmt()
	case logiceval.ID:
		if p.peek().Kind == logiceval.Colon {
			return p.parseRuleStmt()
		}
		return nil, p.errorf("unexpected ID at start of statement, did you mean 'expr' or 'set'?")
	}
	return nil, p.errorf("unexpected token %s at start of statement", p.current().Kind)
}

// parseExprStmt handles the name-vs-expression ambiguity of
//
//	expr_stmt ::= "expr" ID? expression ";"
//
// by a fixed two-token heuristic: if the current token is an identifier and
// the token after it begins an expression (identifier, boolean literal, '!'
// or '('), the identifier is the statement's name. Otherwise the identifier
// itself begins the expression and the statement is unnamed; in particular
// "expr A;" is always the unnamed expression A.
func (p *parser) parseExprStmt() (ast.Stmt, error) {
	if _, err := p.expect(logiceval.KwExpr); err != nil {
		return nil, err
	}
	name := ""
	if p.current().Kind == logiceval.ID && beginsExpression(p.peek().Kind) {
		name = p.advance().Lexeme
	}
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(logiceval.Semicolon); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Name: name, X: x}, nil
}

func beginsExpression(kind logiceval.TokType) bool {
	switch kind {
	case logiceval.ID, logiceval.Bool, logiceval.Not, logiceval.Lparen:
		return true
	}
	return false
}

func (p *parser) parseSetStmt() (ast.Stmt, error) {
	if _, err := p.expect(logiceval.KwSet); err != nil {
		return nil, err
	}
	name, err := p.expect(logiceval.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(logiceval.Assign); err != nil {
		return nil, err
	}
	val, err := p.expect(logiceval.Bool)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(logiceval.Semicolon); err != nil {
		return nil, err
	}
	return &ast.SetStmt{Name: name.Lexeme, Value: val.Lexeme == "1"}, nil
}

func (p *parser) parseTableStmt() (ast.Stmt, error) {
	if _, err := p.expect(logiceval.KwTable); err != nil {
		return nil, err
	}
	target := ""
	if p.current().Kind == logiceval.ID {
		target = p.advance().Lexeme
	}
	if _, err := p.expect(logiceval.Semicolon); err != nil {
		return nil, err
	}
	return &ast.TableStmt{Target: target}, nil
}

func (p *parser) parseEvalStmt() (ast.Stmt, error) {
	if _, err := p.expect(logiceval.KwEval); err != nil {
		return nil, err
	}
	if _, err := p.expect(logiceval.Semicolon); err != nil {
		return nil, err
	}
	return &ast.EvalStmt{}, nil
}

func (p *parser) parseRuleStmt() (ast.Stmt, error) {
	name, err := p.expect(logiceval.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(logiceval.Colon); err != nil {
		return nil, err
	}
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(logiceval.Semicolon); err != nil {
		return nil, err
	}
	return &ast.RuleStmt{Name: name.Lexeme, X: x}, nil
}

func (p *parser) parseInferStmt() (ast.Stmt, error) {
	if _, err := p.expect(logiceval.KwInfer); err != nil {
		return nil, err
	}
	name, err := p.expect(logiceval.ID)
	if err != nil {
		return nil, err
	}
	rules := []string{name.Lexeme}
	for p.current().Kind == logiceval.Comma {
		p.advance()
		name, err = p.expect(logiceval.ID)
		if err != nil {
			return nil, err
		}
		rules = append(rules, name.Lexeme)
	}
	if _, err := p.expect(logiceval.Semicolon); err != nil {
		return nil, err
	}
	return &ast.InferStmt{Rules: rules}, nil
}

// --- Expressions ------------------------------------------------------------

func (p *parser) parseExpression() (ast.Expr, error) {
	return p.parseImplication()
}

// Implication is right-associative: A -> B -> C parses as A -> (B -> C).
func (p *parser) parseImplication() (ast.Expr, error) {
	if err := p.enterNesting(); err != nil {
		return nil, err
	}
	defer p.leaveNesting()
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.current().Kind == logiceval.Implies {
		p.advance()
		right, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{Left: node, Op: ast.OpImplies, Right: right}
	}
	return node, nil
}

func (p *parser) parseOr() (ast.Expr, error) {
	node, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == logiceval.Or {
		p.advance()
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{Left: node, Op: ast.OpOr, Right: right}
	}
	return node, nil
}

func (p *parser) parseXor() (ast.Expr, error) {
	node, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == logiceval.Xor {
		p.advance() // consumes 'xor' as well as '^'
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{Left: node, Op: ast.OpXor, Right: right}
	}
	return node, nil
}

func (p *parser) parseAnd() (ast.Expr, error) {
	node, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == logiceval.And {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{Left: node, Op: ast.OpAnd, Right: right}
	}
	return node, nil
}

func (p *parser) parseNot() (ast.Expr, error) {
	if p.current().Kind == logiceval.Not {
		if err := p.enterNesting(); err != nil {
			return nil, err
		}
		defer p.leaveNesting()
		p.advance()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpNot, Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case logiceval.ID:
		p.advance()
		return &ast.Var{Name: tok.Lexeme}, nil
	case logiceval.Bool:
		p.advance()
		return &ast.Literal{Value: tok.Lexeme == "1"}, nil
	case logiceval.Lparen:
		p.advance()
		node, err := p.parseExpression() // restart at the top precedence level
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(logiceval.Rparen); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, p.errorf("unexpected token in expression: %s", tok.Kind)
}

func (p *parser) enterNesting() error {
	p.depth++
	if p.depth > MaxNestingDepth {
		return p.errorf("expression nesting deeper than %d levels", MaxNestingDepth)
	}
	return nil
}

func (p *parser) leaveNesting() {
	p.depth--
}
