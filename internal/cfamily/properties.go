package cfamily

import (
	"strings"

	"github.com/oxhq/astmatch/internal/ast"
)

// binaryLikeKinds are the tree-sitter node types whose two named children
// sandwich an infix operator token that the grammar does not expose as its
// own named node. The operator spelling is instead computed as the
// stripped byte range between the two children.
var binaryLikeKinds = map[string]bool{
	"binary_expression":     true,
	"assignment_expression": true,
}

// isLiteralKind reports whether kind is a production whose own raw text is
// the literal spelling the LITERAL property should carry.
func isLiteralKind(kind string) bool {
	return strings.HasSuffix(kind, "_literal") || kind == "identifier"
}

// deriveProperties builds the kind-specific attribute map: a name key when
// Name() is non-empty, an operator key for binary-shaped nodes, a LITERAL
// key for literal and identifier-reference leaves, and a couple of boolean
// grammar flags surfaced by tree-sitter itself.
func deriveProperties(n *node) ast.Properties {
	props := make(ast.Properties)

	if name := n.Name(); name != "" {
		props["name"] = name
	}

	if binaryLikeKinds[n.Kind()] {
		if op := operatorSpelling(n); op != "" {
			props["operator"] = op
		}
	}

	if isLiteralKind(n.Kind()) {
		props["LITERAL"] = n.text()
	}

	if n.tsNode.IsNamed() {
		props["is_named"] = "true"
	}
	if n.tsNode.HasError() {
		props["has_error"] = "true"
	}

	return props
}

// operatorSpelling computes the infix token spelling between a binary-like
// node's two named children: the bytes from the end of the first child to
// the start of the second, trimmed of surrounding whitespace.
func operatorSpelling(n *node) string {
	children := n.Children()
	if len(children) != 2 {
		return ""
	}
	left, ok1 := children[0].(*node)
	right, ok2 := children[1].(*node)
	if !ok1 || !ok2 {
		return ""
	}
	start := int(left.tsNode.EndByte())
	end := int(right.tsNode.StartByte())
	if start >= end {
		return ""
	}
	gap, err := n.cache.GetContent(n.filename, start, end)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(gap)
}
