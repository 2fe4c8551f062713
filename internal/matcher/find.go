package matcher

import "github.com/oxhq/astmatch/internal/ast"

// FindAll searches srcNodes (and, when recursive, every descendant) for
// the first of patternsList that matches at each candidate starting
// position, sliding forward past whatever nodes a successful match
// consumed before trying again. A position is attempted against the
// candidate patterns in patternsList in order until one matches; the index
// then advances by one node, or past the last source node a successful
// match evaluated, whichever is further.
func FindAll(srcNodes []ast.Node, patternsList [][]ast.Node, recursive bool) []*PatternMatch {
	var out []*PatternMatch

	newIndex := 0
	for newIndex < len(srcNodes) {
		targetNodes := srcNodes[newIndex:]
		next := newIndex + 1
		for _, patterns := range patternsList {
			pm, ok := matchPattern(NewPatternMatch(targetNodes, patterns), targetNodes, patterns, 0)
			if !ok {
				continue
			}
			for _, included := range pm.EvaluatedNodes {
				if idx := indexOf(srcNodes, included); idx >= 0 && idx+1 > next {
					next = idx + 1
				}
			}
			out = append(out, pm)
			break
		}
		newIndex = next
	}

	if recursive {
		for _, n := range srcNodes {
			out = append(out, FindAll(n.Children(), patternsList, true)...)
		}
	}
	return out
}

func indexOf(nodes []ast.Node, target ast.Node) int {
	for i, n := range nodes {
		if n == target {
			return i
		}
	}
	return -1
}
