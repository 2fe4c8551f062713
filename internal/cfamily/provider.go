// Package cfamily is the one concrete AST Provider this repo ships. It
// parses C and C++ with the tree-sitter grammars bundled in
// github.com/smacker/go-tree-sitter, registering each language the same
// way a single-grammar binding would. The match engine never hardcodes a
// tree-sitter type name directly: every backend-specific string flows
// through provider.Contract.
package cfamily

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	tsc "github.com/smacker/go-tree-sitter/c"
	tscpp "github.com/smacker/go-tree-sitter/cpp"

	"github.com/oxhq/astmatch/internal/ast"
	"github.com/oxhq/astmatch/internal/content"
	"github.com/oxhq/astmatch/internal/provider"
)

// contract is the shared implementation behind the C and C++ backends; only
// the tree-sitter grammar and the identifying metadata differ between them.
type contract struct {
	lang       string
	aliases    []string
	extensions []string
	language   *sitter.Language
	kinds      provider.ExtractionKinds
}

// NewC returns the C language backend.
func NewC() provider.Contract {
	return &contract{
		lang:       "c",
		aliases:    []string{"c99", "c11"},
		extensions: []string{".c", ".h"},
		language:   tsc.GetLanguage(),
		kinds:      provider.ExtractionKinds{ParenExpr: "parenthesized_expression", CompoundStmt: "compound_statement"},
	}
}

// NewCPP returns the C++ language backend.
func NewCPP() provider.Contract {
	return &contract{
		lang:       "cpp",
		aliases:    []string{"c++", "cxx"},
		extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"},
		language:   tscpp.GetLanguage(),
		kinds:      provider.ExtractionKinds{ParenExpr: "parenthesized_expression", CompoundStmt: "compound_statement"},
	}
}

// Register installs both backends into reg, used by cmd/astmatch's wiring
// and by tests that need a populated registry.
func Register(reg *provider.Registry) error {
	if err := reg.Register(NewC()); err != nil {
		return err
	}
	return reg.Register(NewCPP())
}

func (c *contract) Lang() string                    { return c.lang }
func (c *contract) Aliases() []string               { return c.aliases }
func (c *contract) Extensions() []string            { return c.extensions }
func (c *contract) Kinds() provider.ExtractionKinds { return c.kinds }

func (c *contract) Load(path string) (ast.Node, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, ast.Wrap(ast.ErrIO, "reading "+path, err)
	}
	cache := content.New()
	cache.Seed(path, raw)
	return c.parse(raw, path, cache)
}

func (c *contract) LoadFromText(text, logicalName string) (ast.Node, error) {
	raw := []byte(text)
	cache := content.New()
	cache.Seed(logicalName, raw)
	return c.parse(raw, logicalName, cache)
}

func (c *contract) parse(src []byte, filename string, cache *content.Cache) (ast.Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(c.language)

	tree, err := parser.ParseCtx(context.Background(), nil, lexable(src))
	if err != nil {
		return nil, ast.Wrap(ast.ErrParse, fmt.Sprintf("parsing %s as %s", filename, c.lang), err)
	}
	root := tree.RootNode()
	if root == nil {
		return nil, ast.Wrap(ast.ErrParse, fmt.Sprintf("empty parse tree for %s", filename), nil)
	}
	return newRoot(root, filename, cache), nil
}

// lexable returns a byte-for-byte-same-length copy of src with every '$'
// replaced by '_'. Pattern fragments use a leading '$' or '$$' to mark
// wildcard placeholders, following libclang's lexer, which treats '$' as
// an ordinary identifier character as a GNU extension. The tree-sitter
// C/C++ grammars this backend uses do not accept '$' in an identifier at
// all, so parsing "$name" verbatim would split it into a stray token plus
// "name" rather than one identifier node. Substituting a same-length,
// always-valid identifier character before parsing keeps every byte
// offset the parse tree produces valid against the original source, so
// Name() and RawSignature(), which always read back through
// content.Cache seeded with the unmodified original bytes and never the
// substituted copy, still see the real "$name"/"$$name" spelling.
func lexable(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)
	for i, b := range out {
		if b == '$' {
			out[i] = '_'
		}
	}
	return out
}
