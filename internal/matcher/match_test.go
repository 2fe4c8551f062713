package matcher_test

import (
	"testing"

	"github.com/oxhq/astmatch/internal/ast"
	"github.com/oxhq/astmatch/internal/cfamily"
	"github.com/oxhq/astmatch/internal/matcher"
)

func parseStatements(t *testing.T, text string) []ast.Node {
	t.Helper()
	c := cfamily.NewC()
	root, err := c.LoadFromText("void __fn__(){\n"+text+"\n}", "snippet.c")
	if err != nil {
		t.Fatalf("LoadFromText: %v", err)
	}
	var body ast.Node
	root.Process(func(n ast.Node) {
		if n.Kind() == "compound_statement" && body == nil {
			body = n
		}
	})
	if body == nil {
		t.Fatalf("expected a compound_statement body")
	}
	return body.Children()
}

func TestFindAll_SingleWildcardBindsOneNode(t *testing.T) {
	src := parseStatements(t, "int a = 1 + 2;")
	pat := parseStatements(t, "int $name = 1 + 2;")

	matches := matcher.FindAll(src, [][]ast.Node{pat}, false)
	if len(matches) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(matches))
	}
	dict := matches[0].GetDict()
	nodes, ok := dict["$name"]
	if !ok || len(nodes) != 1 {
		t.Fatalf("expected $name bound to exactly one node, got %v", dict)
	}
	if nodes[0].RawSignature() != "a" {
		t.Fatalf("$name = %q, want %q", nodes[0].RawSignature(), "a")
	}
}

func TestFindAll_NoMatchWhenOperatorDiffers(t *testing.T) {
	src := parseStatements(t, "int a = 1 - 2;")
	pat := parseStatements(t, "int $name = 1 + 2;")

	matches := matcher.FindAll(src, [][]ast.Node{pat}, false)
	if len(matches) != 0 {
		t.Fatalf("expected no match for a differing operator, got %d", len(matches))
	}
}

func TestFindAll_MultiWildcardConsistencyAcrossOccurrences(t *testing.T) {
	src := parseStatements(t, "f(a, b); g(a, b);")
	pat := parseStatements(t, "f($$args); g($$args);")

	matches := matcher.FindAll(src, [][]ast.Node{pat}, false)
	if len(matches) != 1 {
		t.Fatalf("expected exactly one match when both $$args occurrences agree, got %d", len(matches))
	}
}

func TestFindAll_MultiWildcardConsistencyRejectsMismatch(t *testing.T) {
	src := parseStatements(t, "f(a, b); g(a, c);")
	pat := parseStatements(t, "f($$args); g($$args);")

	matches := matcher.FindAll(src, [][]ast.Node{pat}, false)
	if len(matches) != 0 {
		t.Fatalf("expected no match when $$args occurrences disagree, got %d", len(matches))
	}
}

func TestIdentical_TextuallyIdenticalStatements(t *testing.T) {
	a := parseStatements(t, "int a = 1 + 2;")[0]
	b := parseStatements(t, "int a = 1 + 2;")[0]
	if !matcher.Identical(a, b) {
		t.Fatalf("expected textually identical statements to be Identical")
	}
}

func TestIdentical_RejectsDifferentLiteral(t *testing.T) {
	a := parseStatements(t, "int a = 1 + 2;")[0]
	b := parseStatements(t, "int a = 1 + 3;")[0]
	if matcher.Identical(a, b) {
		t.Fatalf("expected statements with a different literal to not be Identical")
	}
}
