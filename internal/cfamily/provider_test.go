package cfamily

import (
	"testing"

	"github.com/oxhq/astmatch/internal/ast"
)

func TestLoadFromText_BinaryExpressionOperator(t *testing.T) {
	c := NewC()
	root, err := c.LoadFromText("int f() { int x = 1 + 2; }", "snippet.c")
	if err != nil {
		t.Fatalf("LoadFromText: %v", err)
	}

	var found ast.Node
	root.Process(func(n ast.Node) {
		if n.Kind() == "binary_expression" {
			found = n
		}
	})
	if found == nil {
		t.Fatalf("expected a binary_expression node")
	}
	if op := found.Properties()["operator"]; op != "+" {
		t.Fatalf("operator = %q, want %q", op, "+")
	}
}

func TestLoadFromText_ExpressionStatementElided(t *testing.T) {
	c := NewC()
	root, err := c.LoadFromText("void f() { g(); }", "snippet.c")
	if err != nil {
		t.Fatalf("LoadFromText: %v", err)
	}

	var sawWrapper bool
	root.Process(func(n ast.Node) {
		if n.Kind() == "expression_statement" {
			sawWrapper = true
		}
	})
	if sawWrapper {
		t.Fatalf("expression_statement wrapper should have been elided")
	}

	var sawCall bool
	root.Process(func(n ast.Node) {
		if n.Kind() == "call_expression" {
			sawCall = true
		}
	})
	if !sawCall {
		t.Fatalf("expected the call_expression beneath the elided wrapper to still be reachable")
	}
}

func TestLoadFromText_NumberLiteralProperty(t *testing.T) {
	c := NewC()
	root, err := c.LoadFromText("int x = 42;", "snippet.c")
	if err != nil {
		t.Fatalf("LoadFromText: %v", err)
	}

	var sawNumber bool
	root.Process(func(n ast.Node) {
		if n.Kind() == "number_literal" {
			sawNumber = true
			if n.Properties()["LITERAL"] != "42" {
				t.Fatalf("LITERAL = %q, want %q", n.Properties()["LITERAL"], "42")
			}
		}
	})
	if !sawNumber {
		t.Fatalf("expected a number_literal node")
	}
}

func TestIsMatching_SameKindSameProperties(t *testing.T) {
	c := NewC()
	a, err := c.LoadFromText("int x = 1 + 2;", "a.c")
	if err != nil {
		t.Fatalf("LoadFromText: %v", err)
	}
	b, err := c.LoadFromText("int y = 1 + 2;", "b.c")
	if err != nil {
		t.Fatalf("LoadFromText: %v", err)
	}

	var nodeA, nodeB ast.Node
	a.Process(func(n ast.Node) {
		if n.Kind() == "binary_expression" {
			nodeA = n
		}
	})
	b.Process(func(n ast.Node) {
		if n.Kind() == "binary_expression" {
			nodeB = n
		}
	})
	if nodeA == nil || nodeB == nil {
		t.Fatalf("expected both snippets to contain a binary_expression")
	}
	if !nodeA.IsMatching(nodeB) {
		t.Fatalf("expected structurally identical binary expressions to match")
	}
}

func TestParent_NeverReturnsNilForNonRoot(t *testing.T) {
	c := NewC()
	root, err := c.LoadFromText("int x = 1;", "snippet.c")
	if err != nil {
		t.Fatalf("LoadFromText: %v", err)
	}
	children := root.Children()
	if len(children) == 0 {
		t.Fatalf("expected root to have children")
	}
	if children[0].Parent() == nil {
		t.Fatalf("non-root node returned a nil parent")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	c := NewC()
	if _, err := c.Load("/no/such/file.c"); err == nil {
		t.Fatalf("expected an error loading a nonexistent file")
	}
}

func TestCPP_Extensions(t *testing.T) {
	cpp := NewCPP()
	exts := cpp.Extensions()
	found := false
	for _, e := range exts {
		if e == ".cpp" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected .cpp among C++ extensions, got %v", exts)
	}
}
