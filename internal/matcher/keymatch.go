package matcher

import "github.com/oxhq/astmatch/internal/ast"

// KeyMatch accumulates every node bound to a single placeholder key across
// one pattern evaluation.
type KeyMatch struct {
	Key   string
	Nodes []ast.Node
}

func newKeyMatch(key string) *KeyMatch {
	return &KeyMatch{Key: key}
}

// Clone returns a shallow copy: same key, a fresh Nodes slice with the same
// elements, so mutating the clone's Nodes never mutates the original's.
func (k *KeyMatch) Clone() *KeyMatch {
	cloned := &KeyMatch{Key: k.Key}
	cloned.Nodes = append(cloned.Nodes, k.Nodes...)
	return cloned
}

func (k *KeyMatch) addNode(n ast.Node) {
	k.Nodes = append(k.Nodes, n)
}
