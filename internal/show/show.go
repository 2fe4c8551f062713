// Package show implements the pretty-printer the CLI's show command uses to
// inspect a parsed tree: a recursive, 2-space-per-depth
// indented dump of every node's kind, file span, and raw source text,
// skipping nodes outside the translation unit.
package show

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/oxhq/astmatch/internal/ast"
)

// Shower writes node trees to an io.Writer, optionally colorizing the kind
// and span with a github.com/fatih/color SprintFunc palette.
type Shower struct {
	w       io.Writer
	colored bool

	kindColor func(a ...interface{}) string
	spanColor func(a ...interface{}) string
}

// New returns a Shower writing to w. When colored is true, kinds are
// printed in cyan and file spans in yellow.
func New(w io.Writer, colored bool) *Shower {
	return &Shower{
		w:         w,
		colored:   colored,
		kindColor: color.New(color.FgCyan).SprintFunc(),
		spanColor: color.New(color.FgYellow).SprintFunc(),
	}
}

// ShowNode writes node and every reachable descendant that is part of the
// translation unit, 2-space-indented per depth.
func (s *Shower) ShowNode(node ast.Node) {
	s.process(node, "")
}

func (s *Shower) process(node ast.Node, indent string) {
	if !node.IsPartOfTranslationUnit() {
		return
	}

	kind := node.Kind()
	span := fmt.Sprintf("%s[%d:%d]", node.ContainingFilename(), node.StartOffset(), node.StartOffset()+node.Length())
	if s.colored {
		kind = s.kindColor(kind)
		span = s.spanColor(span)
	}
	fmt.Fprintf(s.w, "%s(%s, %s):", indent, kind, span)

	raw := node.RawSignature()
	lines := strings.Split(raw, "\n")
	if len(lines) < 2 {
		fmt.Fprintf(s.w, " |%s|", raw)
	} else {
		for _, line := range lines {
			fmt.Fprintf(s.w, "\n%s    |%s|", indent, line)
		}
	}
	fmt.Fprintln(s.w)

	for _, child := range node.Children() {
		s.process(child, indent+"  ")
	}
}
