package interp

import (
	"fmt"
	"strings"
)

// ResultKind tells a driver what a statement emitted.
type ResultKind int

// Result kinds. Most statements (set, rule and expression definitions) emit
// nothing; only the three directives produce output.
const (
	NoOutput ResultKind = iota
	ValueResult
	TableResult
	InferResult
)

// Result is the outcome of executing one statement block.
type Result struct {
	Kind       ResultKind
	Value      bool        // for ValueResult
	Table      *TruthTable // for TableResult
	Inferences []Inference // for InferResult
}

// TruthTable lists an expression's value for every assignment to its free
// variables. Vars is sorted ascending; rows are in ascending binary order
// over Vars, first variable most significant.
type TruthTable struct {
	Vars []string
	Rows []Row
}

// Row is one table row: the variable assignment in column order, then the
// computed value.
type Row struct {
	Inputs []bool
	Value  bool
}

// Inference is one 'infer' output line.
type Inference struct {
	Name  string
	Value bool
}

// Lines renders a result as plain output lines, the format file drivers and
// tests consume. Rich rendering (package pterm) is the CLI's concern.
func (r *Result) Lines() []string {
	switch r.Kind {
	case ValueResult:
		return []string{bit(r.Value)}
	case TableResult:
		header := strings.Join(r.Table.Vars, " | ") + " | Result"
		lines := []string{header, strings.Repeat("-", len(header))}
		for _, row := range r.Table.Rows {
			cells := make([]string, 0, len(row.Inputs)+1)
			for _, in := range row.Inputs {
				cells = append(cells, bit(in))
			}
			cells = append(cells, bit(row.Value))
			lines = append(lines, strings.Join(cells, " | "))
		}
		return lines
	case InferResult:
		var lines []string
		for _, inf := range r.Inferences {
			lines = append(lines, fmt.Sprintf("%s = %s", inf.Name, bit(inf.Value)))
		}
		return lines
	}
	return nil
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
