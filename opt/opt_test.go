package opt

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/logic-horizon/logiceval/interp"
	"github.com/logic-horizon/logiceval/ir"
	"github.com/logic-horizon/logiceval/parser"
	"github.com/logic-horizon/logiceval/runtime"
	"github.com/logic-horizon/logiceval/scanner"
)

func optimize(t *testing.T, input string) ([]ir.Instruction, []ir.Instruction) {
	t.Helper()
	tokens, err := scanner.Tokenize(input)
	if err != nil {
		t.Fatal(err)
	}
	prog, err := parser.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	block := ir.NewGenerator().Generate(prog.Statements[0])
	return block.Code, Optimize(block.Code)
}

func lines(code []ir.Instruction) []string {
	out := make([]string, 0, len(code))
	for _, inst := range code {
		out = append(out, inst.String())
	}
	return out
}

func TestIdentityLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.opt")
	defer teardown()
	//
	cases := []struct {
		input string
		want  []string
	}{
		{"expr A & 1;", []string{"t1 = A"}},
		{"expr 1 & A;", []string{"t1 = A"}},
		{"expr A | 0;", []string{"t1 = A"}},
		{"expr A ^ 0;", []string{"t1 = A"}},
		{"expr 0 ^ A;", []string{"t1 = A"}},
	}
	for _, c := range cases {
		_, code := optimize(t, c.input)
		if got := lines(code); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: expected %v, got %v", c.input, c.want, got)
		}
	}
}

func TestAnnihilators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.opt")
	defer teardown()
	//
	cases := []struct {
		input string
		want  []string
	}{
		{"expr A & 0;", []string{"t1 = 0"}},
		{"expr 0 & A;", []string{"t1 = 0"}},
		{"expr A | 1;", []string{"t1 = 1"}},
		{"expr 1 | A;", []string{"t1 = 1"}},
	}
	for _, c := range cases {
		_, code := optimize(t, c.input)
		if got := lines(code); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: expected %v, got %v", c.input, c.want, got)
		}
	}
}

func TestConstantFolding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.opt")
	defer teardown()
	//
	cases := []struct {
		input string
		want  []string
	}{
		{"expr 0 | 0;", []string{"t1 = 0"}},
		{"expr 1 & 1;", []string{"t1 = 1"}},
		{"expr 1 ^ 1;", []string{"t1 = 0"}},
		{"expr 1 -> 0;", []string{"t1 = 0"}},
		{"expr 0 -> 0;", []string{"t1 = 1"}},
		{"expr !1;", []string{"t1 = 0"}},
		{"expr !0;", []string{"t1 = 1"}},
	}
	for _, c := range cases {
		_, code := optimize(t, c.input)
		if got := lines(code); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: expected %v, got %v", c.input, c.want, got)
		}
	}
}

func TestImplicationOnlyFoldsOnLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.opt")
	defer teardown()
	//
	// implication has no identity or annihilator rewrites
	for _, input := range []string{"expr A -> 1;", "expr 0 -> A;", "expr A -> B;"} {
		raw, code := optimize(t, input)
		if !reflect.DeepEqual(code, raw) {
			t.Errorf("%s: expected instruction kept, got %v", input, lines(code))
		}
	}
}

func TestNonLiteralOperandsPassThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.opt")
	defer teardown()
	//
	raw, code := optimize(t, "expr A & B | !C;")
	if !reflect.DeepEqual(code, raw) {
		t.Errorf("expected code unchanged, got %v", lines(code))
	}
}

func TestOptimizeIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.opt")
	defer teardown()
	//
	inputs := []string{
		"expr A & 1 | 0 ^ B;",
		"expr !1 & A;",
		"expr f 1 -> 1;",
		"R: A & 0 | B;",
	}
	for _, input := range inputs {
		_, once := optimize(t, input)
		twice := Optimize(once)
		if !reflect.DeepEqual(twice, once) {
			t.Errorf("%s: second pass changed code: %v vs %v", input, lines(once), lines(twice))
		}
	}
}

func TestLengthPreserved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.opt")
	defer teardown()
	//
	raw, code := optimize(t, "expr !A & 1 | 0 -> B ^ 0;")
	if len(code) != len(raw) {
		t.Errorf("expected %d instructions, got %d", len(raw), len(code))
	}
}

func TestDirectivesUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.opt")
	defer teardown()
	//
	for _, input := range []string{"table;", "eval;", "set A = 1;"} {
		raw, code := optimize(t, input)
		if !reflect.DeepEqual(code, raw) {
			t.Errorf("%s: expected pass-through, got %v", input, lines(code))
		}
	}
}

// TestRewritesPreserveMeaning runs a handful of expressions under every
// variable assignment, once from the raw code and once from the optimized
// code, and expects identical values.
func TestRewritesPreserveMeaning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.opt")
	defer teardown()
	//
	exprs := []string{
		"expr A & 1;",
		"expr A | 1 & B;",
		"expr !0 ^ A;",
		"expr A & 0 -> B;",
		"expr (A | 0) -> (B & 1);",
	}
	for _, input := range exprs {
		raw, code := optimize(t, input)
		vars := ir.FreeVars(raw)
		for n := 0; n < 1<<len(vars); n++ {
			env := runtime.NewEnvironment()
			for i, v := range vars {
				env.SetVar(v, n>>(len(vars)-1-i)&1 == 1)
			}
			want := evalStored(t, env, raw, vars)
			got := evalStored(t, env, code, vars)
			if got != want {
				t.Errorf("%s with %v=%b: raw=%v optimized=%v", input, vars, n, want, got)
			}
		}
	}
}

func evalStored(t *testing.T, env *runtime.Environment, code []ir.Instruction, vars []string) bool {
	t.Helper()
	env.SetLastExpr(code, vars)
	result, err := interp.Execute(env, &ir.Block{Kind: ir.BlockEval, Code: []ir.Instruction{{Op: ir.Eval}}})
	if err != nil {
		t.Fatal(err)
	}
	return result.Value
}
