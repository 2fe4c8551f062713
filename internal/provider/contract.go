// Package provider defines the contract a concrete AST backend must
// satisfy and a small registry for looking backends up by language name,
// alias, or file extension.
package provider

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/oxhq/astmatch/internal/ast"
)

// ExtractionKinds names the backend-specific kind tags the pattern factory
// needs to locate synthesized nodes in a parsed stub: the
// wrapping-parentheses node around a bare expression, and the compound
// statement body of the synthesized function. Hardcoding one backend's
// kind strings in the factory would leak its vocabulary into
// package-agnostic code, so the contract exposes them instead.
type ExtractionKinds struct {
	ParenExpr    string
	CompoundStmt string
}

// Contract is what the match engine's surrounding packages require from a
// concrete parser binding. internal/cfamily is the one concrete
// implementation in this repo, backed by tree-sitter's C and C++ grammars.
type Contract interface {
	// Lang returns the canonical language identifier, e.g. "c" or "cpp".
	Lang() string
	// Aliases returns alternate names users might use for this language.
	Aliases() []string
	// Extensions returns the file extensions this backend claims, e.g. [".c", ".h"].
	Extensions() []string
	// Load parses the file at path and returns its root node.
	Load(path string) (ast.Node, error)
	// LoadFromText parses content as if it were logicalName, without
	// touching the filesystem; the returned root's content cache is
	// pre-seeded with content.
	LoadFromText(content, logicalName string) (ast.Node, error)
	// Kinds returns the extraction kind names this backend's grammar uses.
	Kinds() ExtractionKinds
}

// Registry looks a Contract up by language name, alias, or extension.
// There is no plugin loading here: every backend is registered explicitly
// at startup.
type Registry struct {
	mu      sync.RWMutex
	byLang  map[string]Contract
	byAlias map[string]string
	byExt   map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byLang:  make(map[string]Contract),
		byAlias: make(map[string]string),
		byExt:   make(map[string]string),
	}
}

// Register adds a backend, indexing its aliases and extensions.
func (r *Registry) Register(c Contract) error {
	if c == nil {
		return fmt.Errorf("provider: cannot register a nil contract")
	}
	lang := c.Lang()
	if lang == "" {
		return fmt.Errorf("provider: contract must report a non-empty language")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byLang[lang]; exists {
		return fmt.Errorf("provider: %q already registered", lang)
	}
	r.byLang[lang] = c
	for _, alias := range c.Aliases() {
		if alias != "" {
			r.byAlias[alias] = lang
		}
	}
	for _, ext := range c.Extensions() {
		if ext != "" {
			r.byExt[ext] = lang
		}
	}
	return nil
}

// Get resolves identifier (a language name, alias, or extension) to a
// registered Contract.
func (r *Registry) Get(identifier string) (Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.byLang[identifier]; ok {
		return c, nil
	}
	if lang, ok := r.byAlias[identifier]; ok {
		return r.byLang[lang], nil
	}
	ext := identifier
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	if lang, ok := r.byExt[ext]; ok {
		return r.byLang[lang], nil
	}
	return nil, fmt.Errorf("provider: no backend registered for %q", identifier)
}

// ForFile resolves a Contract from a file's extension.
func (r *Registry) ForFile(path string) (Contract, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, fmt.Errorf("provider: %q has no extension", path)
	}
	return r.Get(ext)
}

// DefaultRegistry is a package-level registry for callers that don't need
// their own instance. It starts empty; cfamily.Register fills only the
// registry it is given, and nothing in this module registers into this one.
var DefaultRegistry = NewRegistry()
