package sem

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/logic-horizon/logiceval"
	"github.com/logic-horizon/logiceval/parser"
	"github.com/logic-horizon/logiceval/scanner"
)

func check(t *testing.T, input string, known ...string) (*Info, error) {
	t.Helper()
	tokens, err := scanner.Tokenize(input)
	if err != nil {
		t.Fatal(err)
	}
	prog, err := parser.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	return Check(prog, known...)
}

func TestDuplicateRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.sem")
	defer teardown()
	//
	_, err := check(t, "R: A; R: B;")
	if err == nil {
		t.Fatal("expected a semantic error for duplicate rule R")
	}
	var semErr *logiceval.SemanticError
	if !errors.As(err, &semErr) {
		t.Fatalf("expected a SemanticError, got %T", err)
	}
	if semErr.Name != "R" {
		t.Errorf("expected the error to name R, got %q", semErr.Name)
	}
}

func TestInferUndefinedRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.sem")
	defer teardown()
	//
	_, err := check(t, "R: A; infer R, S;")
	var semErr *logiceval.SemanticError
	if !errors.As(err, &semErr) {
		t.Fatalf("expected a SemanticError, got %T", err)
	}
	if semErr.Name != "S" {
		t.Errorf("expected the error to name S, got %q", semErr.Name)
	}
}

func TestInferSeesEarlierRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.sem")
	defer teardown()
	//
	if _, err := check(t, "R: A & B; infer R;"); err != nil {
		t.Error(err)
	}
}

func TestInferSeesSessionRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.sem")
	defer teardown()
	//
	// a rule defined by an earlier program of the session resolves
	if _, err := check(t, "infer R;", "R"); err != nil {
		t.Error(err)
	}
	// and redefining it is not a duplicate
	if _, err := check(t, "R: A;", "R"); err != nil {
		t.Error(err)
	}
}

func TestVariablesNeedNoDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.sem")
	defer teardown()
	//
	if _, err := check(t, "expr A & B | !C;"); err != nil {
		t.Error(err)
	}
}

func TestInfoSummary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logiceval.sem")
	defer teardown()
	//
	info, err := check(t, "set B = 1; set A = 0; R: A; Q: B; table;")
	if err != nil {
		t.Fatal(err)
	}
	if vars := info.Variables(); !reflect.DeepEqual(vars, []string{"A", "B"}) {
		t.Errorf("expected variables [A B], got %v", vars)
	}
	if rules := info.Rules(); !reflect.DeepEqual(rules, []string{"Q", "R"}) {
		t.Errorf("expected rules [Q R], got %v", rules)
	}
}
