package ir

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/logic-horizon/logiceval/parser"
	"github.com/logic-horizon/logiceval/scanner"
)

func genBlocks(t *testing.T, input string) []*Block {
	t.Helper()
	tokens, err := scanner.Tokenize(input)
	if err != nil {
		t.Fatal(err)
	}
	prog, err := parser.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	gen := NewGenerator()
	blocks := make([]*Block, 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		blocks = append(blocks, gen.Generate(stmt))
	}
	return blocks
}

func listing(block *Block) []string {
	lines := make([]string, 0, len(block.Code))
	for _, inst := range block.Code {
		lines = append(lines, inst.String())
	}
	return lines
}

func TestGenerateBinary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.ir")
	defer teardown()
	//
	block := genBlocks(t, "expr A & B;")[0]
	want := []string{"t1 = AND A B"}
	if got := listing(block); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if block.Kind != BlockExpr {
		t.Errorf("expected BlockExpr, got %d", block.Kind)
	}
	if !reflect.DeepEqual(block.Vars, []string{"A", "B"}) {
		t.Errorf("expected free variables [A B], got %v", block.Vars)
	}
}

func TestGeneratePostOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.ir")
	defer teardown()
	//
	block := genBlocks(t, "expr !A | B & C;")[0]
	want := []string{
		"t1 = NOT A",
		"t2 = AND B C",
		"t3 = OR t1 t2",
	}
	if got := listing(block); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGenerateImplication(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.ir")
	defer teardown()
	//
	block := genBlocks(t, "expr A -> B -> C;")[0]
	want := []string{
		"t1 = IMPLIES B C",
		"t2 = IMPLIES A t1",
	}
	if got := listing(block); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTempNumberingRestartsPerStatement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.ir")
	defer teardown()
	//
	blocks := genBlocks(t, "expr A & B; expr C | D;")
	if got := listing(blocks[0])[0]; got != "t1 = AND A B" {
		t.Errorf("first block: got %s", got)
	}
	if got := listing(blocks[1])[0]; got != "t1 = OR C D" {
		t.Errorf("second block: got %s", got)
	}
}

func TestNamedExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.ir")
	defer teardown()
	//
	block := genBlocks(t, "expr f A & B;")[0]
	want := []string{
		"t1 = AND A B",
		"f = t1",
	}
	if got := listing(block); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if block.Kind != BlockRule || block.Name != "f" {
		t.Errorf("expected a rule block named f, got kind %d name %q", block.Kind, block.Name)
	}
}

func TestBareExpressionIsMaterialized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.ir")
	defer teardown()
	//
	// a bare variable emits no operator instruction, but the stored
	// expression must still be runnable
	block := genBlocks(t, "expr A;")[0]
	want := []string{"t1 = A"}
	if got := listing(block); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRuleAndSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.ir")
	defer teardown()
	//
	blocks := genBlocks(t, "set A = 1; R: A & 0;")
	if got := listing(blocks[0]); !reflect.DeepEqual(got, []string{"A = 1"}) {
		t.Errorf("set: got %v", got)
	}
	if blocks[0].Kind != BlockSet {
		t.Errorf("expected BlockSet, got %d", blocks[0].Kind)
	}
	want := []string{"t1 = AND A 0", "R = t1"}
	if got := listing(blocks[1]); !reflect.DeepEqual(got, want) {
		t.Errorf("rule: expected %v, got %v", want, got)
	}
}

func TestDirectives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.ir")
	defer teardown()
	//
	blocks := genBlocks(t, "expr A; table; table R; eval; R: A; infer R;")
	cases := []struct {
		i    int
		want string
		kind BlockKind
	}{
		{1, "TABLE", BlockTable},
		{2, "TABLE R", BlockTable},
		{3, "EVAL", BlockEval},
		{5, "INFER R", BlockInfer},
	}
	for _, c := range cases {
		block := blocks[c.i]
		if got := listing(block); len(got) != 1 || got[0] != c.want {
			t.Errorf("block %d: expected [%s], got %v", c.i, c.want, got)
		}
		if block.Kind != c.kind {
			t.Errorf("block %d: expected kind %d, got %d", c.i, c.kind, block.Kind)
		}
	}
}

func TestFreeVarsSortedAndDeduplicated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.ir")
	defer teardown()
	//
	block := genBlocks(t, "expr B & A | B & !C;")[0]
	if !reflect.DeepEqual(block.Vars, []string{"A", "B", "C"}) {
		t.Errorf("expected [A B C], got %v", block.Vars)
	}
}

func TestIsTemp(t *testing.T) {
	cases := map[string]bool{
		"t1": true, "t42": true, "t": false, "temp": false,
		"A": false, "0": false, "T1": false,
	}
	for operand, want := range cases {
		if got := IsTemp(operand); got != want {
			t.Errorf("IsTemp(%q): expected %v, got %v", operand, want, got)
		}
	}
}

func TestListing(t *testing.T) {
	block := genBlocks(t, "expr A & B;")[0]
	if got := Listing(block.Code); !strings.Contains(got, "t1 = AND A B") {
		t.Errorf("unexpected listing: %q", got)
	}
}
