// Package matcher implements structural pattern-tree search: a
// backtracking comparison between a source node sequence and a pattern
// node sequence containing $single and $$multi wildcards.
package matcher

import (
	"strings"

	"github.com/oxhq/astmatch/internal/ast"
)

// IsMatch reports one-level structural equality between two source nodes.
// It is never called against a wildcard pattern node; see IsMatch's
// callers.
func IsMatch(src, cmp ast.Node) bool { return ast.IsMatching(src, cmp) }

// IsKindMatch reports whether src and cmp share the same Kind.
func IsKindMatch(src, cmp ast.Node) bool { return src.Kind() == cmp.Kind() }

// IsMultiWildcard reports whether name is a "$$"-prefixed placeholder.
func IsMultiWildcard(name string) bool { return strings.HasPrefix(name, "$$") }

// IsSingleWildcard reports whether name is a "$"-prefixed placeholder that
// is not also a multi-wildcard. The "$$" prefix is always checked first:
// "$$x" is a multi-wildcard, never also a single-wildcard.
func IsSingleWildcard(name string) bool {
	return !IsMultiWildcard(name) && strings.HasPrefix(name, "$")
}

// IsWildcard reports whether name is either kind of placeholder.
func IsWildcard(name string) bool { return IsSingleWildcard(name) || IsMultiWildcard(name) }

// Identical reports deep structural equality between a and b: same kind,
// same properties, and recursively identical children in the same order.
// Unlike IsMatch/IsMatching, this never treats either side as a pattern
// with wildcards; it is a plain convenience for comparing two concrete
// subtrees.
func Identical(a, b ast.Node) bool {
	if !ast.IsMatching(a, b) {
		return false
	}
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !Identical(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// matchPattern is the recursive core: it walks src and pat in lockstep,
// consuming wildcards lazily, and returns the completed PatternMatch once
// every pattern node (and every source node a multi-wildcard must still
// account for) has been resolved.
func matchPattern(state *PatternMatch, src, pat []ast.Node, depth int) (*PatternMatch, bool) {
	onlyMultiWildcards := true
	for _, p := range pat {
		if !IsMultiWildcard(p.Name()) {
			onlyMultiWildcards = false
			break
		}
	}

	if len(pat) == 0 || (onlyMultiWildcards && len(src) == 0) {
		if onlyMultiWildcards && len(pat) == 1 {
			state.QueryCreate(pat[0].Name())
		}
		if state.Validate() {
			return state, true
		}
		return nil, false
	}

	if len(src) == 0 {
		return nil, false
	}

	srcNode := src[0]
	state.addEvaluatedNode(srcNode)
	patNode := pat[0]

	switch {
	case IsMultiWildcard(patNode.Name()):
		wildcard := state.QueryCreate(patNode.Name())
		if len(pat) > 1 {
			// Lazy: a multi-wildcard's minimum width is zero, so try
			// closing it here before consuming another source node.
			if next, ok := matchPattern(state.Clone(), src, pat[1:], depth); ok {
				return next, true
			}
		}
		wildcard.addNode(srcNode)
		return matchPattern(state, src[1:], pat, depth)

	case IsSingleWildcard(patNode.Name()) || IsMatch(srcNode, patNode):
		if len(patNode.Children()) > 0 && !IsKindMatch(srcNode, patNode) {
			return nil, false
		}
		if IsSingleWildcard(patNode.Name()) {
			state.QueryCreate(patNode.Name()).addNode(srcNode)
		} else {
			// Concrete (non-wildcard) node match: record it under the
			// reserved EXACT_MATCH key.
			state.QueryCreate(ExactMatch).addNode(srcNode)
		}

		if len(patNode.Children()) > 0 {
			found, ok := matchPattern(state, srcNode.Children(), patNode.Children(), depth+1)
			if !ok {
				return nil, false
			}
			state = found
		}
		return matchPattern(state, src[1:], pat[1:], depth)
	}

	return nil, false
}
