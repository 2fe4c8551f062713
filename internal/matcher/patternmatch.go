package matcher

import "github.com/oxhq/astmatch/internal/ast"

// ExactMatch is the reserved key every concretely-matched (non-wildcard)
// node pair is recorded under, alongside whatever placeholder keys the
// pattern also binds.
const ExactMatch = "EXACT_MATCH"

// PatternMatch is the mutable state threaded through one pattern
// evaluation: the source and pattern node lists being matched, the
// placeholder bindings accumulated so far, and every source node touched
// along the way.
type PatternMatch struct {
	SrcNodes []ast.Node
	Patterns []ast.Node

	KeyMatches     []*KeyMatch
	EvaluatedNodes []ast.Node
}

// NewPatternMatch starts a fresh match attempt over src against pat.
func NewPatternMatch(src, pat []ast.Node) *PatternMatch {
	return &PatternMatch{SrcNodes: src, Patterns: pat}
}

// Clone deep-copies the KeyMatches (so appending to a branch never leaks
// into a sibling branch the backtracking search also explores) and
// shallow-copies EvaluatedNodes.
func (m *PatternMatch) Clone() *PatternMatch {
	clone := NewPatternMatch(m.SrcNodes, m.Patterns)
	clone.KeyMatches = make([]*KeyMatch, len(m.KeyMatches))
	for i, km := range m.KeyMatches {
		clone.KeyMatches[i] = km.Clone()
	}
	clone.EvaluatedNodes = append(clone.EvaluatedNodes, m.EvaluatedNodes...)
	return clone
}

// QueryCreate returns the KeyMatch for key, reusing the most recently
// created one if it already carries the same key (consecutive bindings to
// the same multi-wildcard accumulate into one KeyMatch rather than one
// per node), or appending a new one otherwise.
func (m *PatternMatch) QueryCreate(key string) *KeyMatch {
	if n := len(m.KeyMatches); n > 0 && m.KeyMatches[n-1].Key == key {
		return m.KeyMatches[n-1]
	}
	km := newKeyMatch(key)
	m.KeyMatches = append(m.KeyMatches, km)
	return km
}

func (m *PatternMatch) addEvaluatedNode(n ast.Node) {
	m.EvaluatedNodes = append(m.EvaluatedNodes, n)
}

// GetDict flattens the accumulated KeyMatches into a key -> nodes map.
func (m *PatternMatch) GetDict() map[string][]ast.Node {
	out := make(map[string][]ast.Node, len(m.KeyMatches))
	for _, km := range m.KeyMatches {
		out[km.Key] = km.Nodes
	}
	return out
}

// Validate runs both acceptance checks a finished match must pass: exactly
// one node per single-wildcard key once any node whose parent is also
// bound under the same key is dropped, and pairwise structural
// consistency across repeated occurrences of the same key.
func (m *PatternMatch) Validate() bool {
	return m.checkSingleCardinalityAndParentElision() && m.checkConsistency()
}

func (m *PatternMatch) checkSingleCardinalityAndParentElision() bool {
	for _, km := range m.KeyMatches {
		km.Nodes = withoutParentedDuplicates(km.Nodes)
	}
	for _, km := range m.KeyMatches {
		if IsSingleWildcard(km.Key) && len(km.Nodes) != 1 {
			return false
		}
	}
	return true
}

// withoutParentedDuplicates drops any node from nodes whose Parent is also
// present in nodes. A single-wildcard key can end up bound to both a node
// and its own ancestor when the same pattern node recurs across nested
// calls; the ancestor binding wins.
func withoutParentedDuplicates(nodes []ast.Node) []ast.Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		parented := false
		parent := n.Parent()
		if parent != nil {
			for _, other := range nodes {
				if other == parent {
					parented = true
					break
				}
			}
		}
		if !parented {
			out = append(out, n)
		}
	}
	return out
}

func (m *PatternMatch) checkConsistency() bool {
	groups := make(map[string][][]ast.Node)
	var order []string
	for _, km := range m.KeyMatches {
		if _, ok := groups[km.Key]; !ok {
			order = append(order, km.Key)
		}
		groups[km.Key] = append(groups[km.Key], km.Nodes)
	}
	for _, key := range order {
		occurrences := groups[key]
		if len(occurrences) < 2 {
			continue
		}
		width := len(occurrences[0])
		for _, occ := range occurrences {
			if len(occ) < width {
				width = len(occ)
			}
		}
		for i := 0; i < width; i++ {
			reference := occurrences[0][i]
			for _, occ := range occurrences[1:] {
				if !IsMatch(occ[i], reference) {
					return false
				}
			}
		}
	}
	return true
}
