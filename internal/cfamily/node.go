package cfamily

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oxhq/astmatch/internal/ast"
	"github.com/oxhq/astmatch/internal/content"
)

// wrapperKinds are tree-sitter node types that wrap exactly one semantic
// child and carry no structure of their own beyond it, the tree-sitter
// analogue of libclang's runtime "UNEXPOSED_EXPR" cursors.
// expression_statement is the genuine case in the C and C++ grammars:
// `x;` parses as expression_statement with a single named child (the
// expression) plus an anonymous ";" token.
var wrapperKinds = map[string]bool{
	"expression_statement": true,
}

// node is the concrete ast.Node backed by a tree-sitter parse tree.
type node struct {
	tsNode   *sitter.Node
	filename string
	parent   *node
	rootNode *node
	cache    *content.Cache

	childrenOnce bool
	children     []ast.Node
}

func newRoot(tsNode *sitter.Node, filename string, cache *content.Cache) *node {
	n := &node{tsNode: tsNode, filename: filename, cache: cache}
	n.rootNode = n
	return n
}

func (n *node) child(tsChild *sitter.Node) *node {
	c := &node{tsNode: tsChild, filename: n.filename, parent: n, rootNode: n.rootNode, cache: n.cache}
	return elideWrappers(c)
}

// elideWrappers replaces c with its sole child, repeatedly, as long as each
// successive node is itself a wrapper kind with exactly one named child.
func elideWrappers(c *node) *node {
	for wrapperKinds[c.tsNode.Type()] && c.tsNode.NamedChildCount() == 1 {
		inner := c.tsNode.NamedChild(0)
		replaced := &node{tsNode: inner, filename: c.filename, parent: c.parent, rootNode: c.rootNode, cache: c.cache}
		if !wrapperKinds[replaced.tsNode.Type()] {
			return replaced
		}
		c = replaced
	}
	return c
}

func (n *node) Kind() string { return n.tsNode.Type() }

func (n *node) Name() string {
	// The C/C++ grammars don't attach a "spelling" to every node the way
	// libclang does; the closest universal equivalent is an identifier
	// child tagged as the declarator/field/name, which varies by
	// production. We fall back to the node's own text when it is itself
	// an identifier-shaped leaf, and otherwise report "".
	switch n.tsNode.Type() {
	case "identifier", "field_identifier", "type_identifier":
		return n.text()
	}
	if nameChild := n.tsNode.ChildByFieldName("name"); nameChild != nil {
		return nodeText(nameChild, n.filename, n.cache)
	}
	return ""
}

func (n *node) text() string {
	return nodeText(n.tsNode, n.filename, n.cache)
}

func nodeText(tsNode *sitter.Node, filename string, cache *content.Cache) string {
	s, err := cache.GetContent(filename, int(tsNode.StartByte()), int(tsNode.EndByte()))
	if err != nil {
		return ""
	}
	return s
}

func (n *node) ContainingFilename() string { return n.filename }

func (n *node) StartOffset() int { return int(n.tsNode.StartByte()) }

func (n *node) Length() int { return int(n.tsNode.EndByte() - n.tsNode.StartByte()) }

func (n *node) Properties() ast.Properties { return deriveProperties(n) }

func (n *node) Parent() ast.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) Root() ast.Node { return n.rootNode }

func (n *node) Children() []ast.Node {
	if !n.childrenOnce {
		count := int(n.tsNode.NamedChildCount())
		children := make([]ast.Node, 0, count)
		for i := 0; i < count; i++ {
			children = append(children, n.child(n.tsNode.NamedChild(i)))
		}
		n.children = children
		n.childrenOnce = true
	}
	return n.children
}

func (n *node) RawSignature() string {
	if n.Length() == 0 || n.filename == "" {
		return ""
	}
	s, err := n.cache.GetContent(n.filename, n.StartOffset(), n.StartOffset()+n.Length())
	if err != nil {
		return ""
	}
	return s
}

func (n *node) IsPartOfTranslationUnit() bool {
	return n.filename == n.rootNode.filename
}

func (n *node) IsMatching(other ast.Node) bool { return ast.IsMatching(n, other) }

func (n *node) Process(fn func(ast.Node)) { ast.Process(n, fn) }

func (n *node) Accept(fn func(ast.Node) ast.VisitorResult) ast.VisitorResult {
	return ast.Accept(n, fn)
}

// tokenSpellings scans the node's leaf descendants and returns the raw text
// of every descendant whose kind ends in "_literal" or equals "identifier".
func tokenSpellings(n *node) []string {
	var out []string
	var walk func(ts *sitter.Node)
	walk = func(ts *sitter.Node) {
		if ts.ChildCount() == 0 {
			if strings.HasSuffix(ts.Type(), "_literal") || ts.Type() == "identifier" {
				out = append(out, nodeText(ts, n.filename, n.cache))
			}
			return
		}
		count := int(ts.ChildCount())
		for i := 0; i < count; i++ {
			walk(ts.Child(i))
		}
	}
	walk(n.tsNode)
	return out
}
