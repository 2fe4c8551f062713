// Package astfactory is the entry point that turns a file path, raw text,
// or a directory of files into parsed ast.Node trees: a thin wrapper
// delegating to the backend's Load/LoadFromText, plus recursive directory
// loading with include/exclude globs using
// github.com/bmatcuk/doublestar/v4 for "**"-style patterns.
package astfactory

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/oxhq/astmatch/internal/ast"
	"github.com/oxhq/astmatch/internal/provider"
)

// Factory resolves a concrete provider.Contract by file extension and
// parses through it.
type Factory struct {
	registry *provider.Registry
}

// New returns a Factory that resolves backends through registry.
func New(registry *provider.Registry) *Factory {
	return &Factory{registry: registry}
}

// Create parses the file at path, choosing a backend from its extension.
func (f *Factory) Create(path string) (ast.Node, error) {
	contract, err := f.registry.ForFile(path)
	if err != nil {
		return nil, err
	}
	return contract.Load(path)
}

// CreateFromText parses text as if it were logicalName, choosing a backend
// from logicalName's extension without touching the filesystem.
func (f *Factory) CreateFromText(text, logicalName string) (ast.Node, error) {
	contract, err := f.registry.ForFile(logicalName)
	if err != nil {
		return nil, err
	}
	return contract.LoadFromText(text, logicalName)
}

// CreateTree parses every file under root matched by at least one of
// includes and none of excludes (doublestar glob syntax, e.g.
// "**/*.c"), returning one root ast.Node per file in deterministic
// (sorted path) order. A file whose extension has no registered backend
// is silently skipped, matching a directory scan's natural mix of source
// and non-source files.
func (f *Factory) CreateTree(root string, includes, excludes []string) ([]ast.Node, error) {
	paths, err := matchingPaths(root, includes, excludes)
	if err != nil {
		return nil, err
	}

	nodes := make([]ast.Node, 0, len(paths))
	for _, p := range paths {
		if _, err := f.registry.ForFile(p); err != nil {
			continue
		}
		node, err := f.Create(p)
		if err != nil {
			return nil, fmt.Errorf("astfactory: parsing %s: %w", p, err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func matchingPaths(root string, includes, excludes []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range includes {
		full := root + "/" + pattern
		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, fmt.Errorf("astfactory: invalid include pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || excluded(m, root, excludes) {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out, nil
}

func excluded(path, root string, excludes []string) bool {
	rel := path
	if len(root) < len(path) && path[:len(root)] == root {
		rel = path[len(root)+1:]
	}
	for _, pattern := range excludes {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
