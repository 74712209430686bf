package logiceval

import "fmt"

// The pipeline's error taxonomy. Every stage fails fast: the first error
// aborts the run, no stage recovers or collects more than one error.
//
// All four types carry enough context for a driver to print a one-line
// diagnostic without re-inspecting the input.

// LexicalError reports a character no token pattern matches.
type LexicalError struct {
	Line, Col int
	Char      rune
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at %d:%d: unexpected character %q", e.Line, e.Col, e.Char)
}

// SyntaxError reports an expected-vs-found token mismatch or an unexpected
// token. Position is that of the offending token.
type SyntaxError struct {
	Line, Col int
	Found     TokType
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// SemanticError reports a duplicate rule definition or an inference reference
// to an unknown rule. Name identifies the rule in question.
type SemanticError struct {
	Name string
	Msg  string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error: %s", e.Msg)
}

// RuntimeError reports a failure during interpretation: an undefined variable
// read, or a table/eval/infer request with nothing to act on. Name identifies
// the variable or rule, where one is involved.
type RuntimeError struct {
	Name string
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %s", e.Msg)
}
