package show_test

import (
	"strings"
	"testing"

	"github.com/oxhq/astmatch/internal/cfamily"
	"github.com/oxhq/astmatch/internal/show"
)

func TestShowNode_InlinesSingleLineSpans(t *testing.T) {
	root, err := cfamily.NewC().LoadFromText("int x = 1;", "snippet.c")
	if err != nil {
		t.Fatalf("LoadFromText: %v", err)
	}
	var buf strings.Builder
	show.New(&buf, false).ShowNode(root)

	out := buf.String()
	if !strings.Contains(out, "snippet.c[0:10]") {
		t.Fatalf("expected the root's full span in output, got:\n%s", out)
	}
	if !strings.Contains(out, "|int x = 1;|") {
		t.Fatalf("expected the root's raw signature inline, got:\n%s", out)
	}
}

func TestShowNode_MultilineUsesIndentedContinuations(t *testing.T) {
	root, err := cfamily.NewC().LoadFromText("int f() {\n  return 1;\n}", "snippet.c")
	if err != nil {
		t.Fatalf("LoadFromText: %v", err)
	}
	var buf strings.Builder
	show.New(&buf, false).ShowNode(root)

	out := buf.String()
	if !strings.Contains(out, "|int f() {|") {
		t.Fatalf("expected a continuation line for the function's first source line, got:\n%s", out)
	}
}
