package logiceval

import "fmt"

// --- Token categories -------------------------------------------------------

// TokType is a category type for a Token. The set is closed: the scanner will
// never produce a category not listed here.
type TokType int

// Token categories of the logic language.
const (
	EOF TokType = iota // end-of-input marker, always the last token
	ID                 // identifier: [A-Za-z][A-Za-z0-9_]*
	Bool               // boolean literal '0' or '1'

	// Keywords, classified from identifiers by exact-match lookup
	KwExpr
	KwSet
	KwTable
	KwEval
	KwInfer

	// Operators
	And     // '&'
	Or      // '|'
	Not     // '!'
	Xor     // 'xor' or '^'
	Implies // '->'

	// Delimiters
	Lparen
	Rparen
	Semicolon
	Colon
	Comma
	Assign // '='
)

var tokTypeNames = map[TokType]string{
	EOF:       "EOF",
	ID:        "ID",
	Bool:      "BOOL",
	KwExpr:    "KW_EXPR",
	KwSet:     "KW_SET",
	KwTable:   "KW_TABLE",
	KwEval:    "KW_EVAL",
	KwInfer:   "KW_INFER",
	And:       "AND",
	Or:        "OR",
	Not:       "NOT",
	Xor:       "XOR",
	Implies:   "IMPLIES",
	Lparen:    "LPAREN",
	Rparen:    "RPAREN",
	Semicolon: "SEMICOL",
	Colon:     "COLON",
	Comma:     "COMMA",
	Assign:    "EQUAL",
}

func (t TokType) String() string {
	if s, ok := tokTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokType(%d)", int(t))
}

// --- Tokens -----------------------------------------------------------------

// Token is one lexical atom of the input. Tokens are immutable values: the
// scanner produces them, the parser reads them.
//
// Line and Col locate the first character of the lexeme, both 1-based.
type Token struct {
	Kind   TokType
	Lexeme string
	Line   int
	Col    int
	Span   Span // byte offsets into the input
}

func (t Token) String() string {
	return fmt.Sprintf("%s('%s') at %d:%d", t.Kind, t.Lexeme, t.Line, t.Col)
}

// --- Spans ------------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
