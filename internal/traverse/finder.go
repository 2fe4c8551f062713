// Package traverse implements the generic node-finding helpers the pattern
// factory and the match engine build on: a generic pre-order walk
// parameterized by a per-node probe function, plus a convenience built on
// top of it that probes by kind.
package traverse

import (
	"regexp"

	"github.com/oxhq/astmatch/internal/ast"
)

// FindAll walks root and every descendant in pre-order, applying probe to
// each node and appending whatever probe returns. probe may return zero,
// one, or several nodes for a given input.
func FindAll(root ast.Node, probe func(ast.Node) []ast.Node) []ast.Node {
	var out []ast.Node
	out = append(out, probe(root)...)
	for _, child := range root.Children() {
		out = append(out, FindAll(child, probe)...)
	}
	return out
}

// FindKind returns every node under root (root included) whose Kind starts
// with a match for pattern. The match is anchored at the start of Kind()
// but not at the end, so a pattern of "binary" matches a kind of
// "binary_expression".
func FindKind(root ast.Node, pattern string) ([]ast.Node, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return FindAll(root, func(n ast.Node) []ast.Node {
		if loc := re.FindStringIndex(n.Kind()); loc != nil && loc[0] == 0 {
			return []ast.Node{n}
		}
		return nil
	}), nil
}
