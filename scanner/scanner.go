/*
Package scanner produces the token stream for the logic language.

The scanner is backed by a lexmachine DFA. Identifiers are matched by a single
pattern and classified as keywords by exact-match lookup, so keywords never
compete with the identifier pattern inside the state machine. An input
character no pattern matches aborts scanning with a LexicalError; the scanner
never skips or recovers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/logic-horizon/logiceval"
)

// tracer traces with key 'logiceval.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("logiceval.scanner")
}

// Keywords of the language. 'xor' doubles as the word form of the '^'
// operator and is therefore classified as an operator token.
var keywords = map[string]logiceval.TokType{
	"expr":  logiceval.KwExpr,
	"set":   logiceval.KwSet,
	"table": logiceval.KwTable,
	"eval":  logiceval.KwEval,
	"infer": logiceval.KwInfer,
	"xor":   logiceval.Xor,
}

// The literal operator/delimiter lexemes.
var literals = map[string]logiceval.TokType{
	"&":  logiceval.And,
	"|":  logiceval.Or,
	"!":  logiceval.Not,
	"^":  logiceval.Xor,
	"->": logiceval.Implies,
	"(":  logiceval.Lparen,
	")":  logiceval.Rparen,
	";":  logiceval.Semicolon,
	":":  logiceval.Colon,
	",":  logiceval.Comma,
	"=":  logiceval.Assign,
}

var initOnce sync.Once // monitors one-time DFA compilation
var lexer *lexmachine.Lexer
var lexerErr error

func initLexer() {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`[a-zA-Z][a-zA-Z0-9_]*`), identOrKeyword)
		lexer.Add([]byte(`[01]`), emit(logiceval.Bool))
		for lit, kind := range literals {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lexer.Add([]byte(r), emit(kind))
		}
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			lexerErr = err
		}
	})
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// emit is an action which wraps a scanned match into a token.
func emit(kind logiceval.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return tokenOf(kind, m), nil
	}
}

// identOrKeyword classifies an identifier match by keyword lookup.
func identOrKeyword(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	if kind, ok := keywords[string(m.Bytes)]; ok {
		return tokenOf(kind, m), nil
	}
	return tokenOf(logiceval.ID, m), nil
}

func tokenOf(kind logiceval.TokType, m *machines.Match) logiceval.Token {
	return logiceval.Token{
		Kind:   kind,
		Lexeme: string(m.Bytes),
		Line:   m.StartLine,
		Col:    m.StartColumn,
		Span:   logiceval.Span{uint64(m.TC), uint64(m.TC + len(m.Bytes))},
	}
}

// --- Scanner ----------------------------------------------------------------

// Scanner scans one input string. Create one with New.
type Scanner struct {
	scanner  *lexmachine.Scanner
	lastLine int // position just behind the last match,
	lastCol  int // used to position the EOF token
}

// New creates a scanner for a given input. The DFA is compiled once and
// shared by all scanners.
func New(input string) (*Scanner, error) {
	initLexer()
	if lexerErr != nil {
		return nil, lexerErr
	}
	s, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, lastLine: 1, lastCol: 1}, nil
}

// NextToken returns the next token of the input. After the input is
// exhausted it returns an EOF token positioned just behind the last lexeme.
//
// An unmatched input character produces a LexicalError carrying the position
// and the offending character.
func (s *Scanner) NextToken() (logiceval.Token, error) {
	tok, err, eof := s.scanner.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return logiceval.Token{}, lexicalError(ui)
		}
		return logiceval.Token{}, err
	}
	if eof {
		return logiceval.Token{
			Kind: logiceval.EOF,
			Line: s.lastLine,
			Col:  s.lastCol,
		}, nil
	}
	token := tok.(logiceval.Token)
	s.lastLine = token.Line
	s.lastCol = token.Col + len(token.Lexeme)
	tracer().Debugf("token %v", token)
	return token, nil
}

func lexicalError(ui *machines.UnconsumedInput) *logiceval.LexicalError {
	ch := rune('?')
	if ui.StartTC < len(ui.Text) {
		ch = rune(ui.Text[ui.StartTC])
	}
	return &logiceval.LexicalError{
		Line: ui.StartLine,
		Col:  ui.StartColumn,
		Char: ch,
	}
}

// Tokenize scans a complete input into a token sequence, terminated by the
// EOF token. It stops at the first lexical error.
func Tokenize(input string) ([]logiceval.Token, error) {
	s, err := New(input)
	if err != nil {
		return nil, err
	}
	var tokens []logiceval.Token
	for {
		tok, err := s.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == logiceval.EOF {
			return tokens, nil
		}
	}
}
