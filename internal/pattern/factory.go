// Package pattern builds pattern ASTs out of plain text fragments that may
// contain $single and $$multi wildcard placeholders: wrap the fragment in
// just enough synthetic declarations and a reserved wrapper construct that
// a real parser accepts it, then extract the fragment back out of the
// parsed stub.
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oxhq/astmatch/internal/ast"
	"github.com/oxhq/astmatch/internal/provider"
	"github.com/oxhq/astmatch/internal/traverse"
)

// reservedName is the synthetic identifier the stub constructs use for the
// wrapper assignment/function, chosen to never collide with a pattern's
// own placeholder or declared names.
const reservedName = "__reserved__"

var keywordPattern = regexp.MustCompile(`\${0,2}[A-Za-z]\w*`)

// Factory synthesizes expression, declaration, and statement patterns for
// one backend language.
type Factory struct {
	contract provider.Contract
}

// New returns a Factory bound to contract.
func New(contract provider.Contract) *Factory {
	return &Factory{contract: contract}
}

// NewCPP returns a Factory bound to the C++ provider contract, reusing the
// same stub-construction logic for a second language.
func NewCPP(contract provider.Contract) *Factory {
	return New(contract)
}

// CreateExpression parses text as a standalone expression and returns its
// root node. Every identifier-shaped keyword found in text, including
// wildcard placeholders, gets a throwaway "int kw;" declaration so the
// expression type-checks on its own.
func (f *Factory) CreateExpression(text string) (ast.Node, error) {
	keywords := keywordsFromText(text)
	var b strings.Builder
	for _, kw := range keywords {
		b.WriteString(toDeclaration(kw))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "int %s = (%s);\n", reservedName, text)

	root, err := f.create(b.String())
	if err != nil {
		return nil, err
	}
	paren, err := firstOfKind(root, f.contract.Kinds().ParenExpr)
	if err != nil {
		return nil, err
	}
	children := paren.Children()
	if len(children) == 0 {
		return nil, ast.Wrap(ast.ErrParse, "parenthesized expression stub has no child", nil)
	}
	return children[0], nil
}

// CreateDeclarations parses text as zero or more declarations, given
// explicit types to typedef and parameters to declare ahead of text, plus
// any additional raw declaration lines the caller wants verbatim.
func (f *Factory) CreateDeclarations(text string, types, parameters, extraDeclarations []string) ([]ast.Node, error) {
	return f.createBody(text, types, parameters, extraDeclarations)
}

// CreateDeclaration is CreateDeclarations asserting exactly one top-level
// declaration results, returning ast.ErrMisuse otherwise.
func (f *Factory) CreateDeclaration(text string, types, parameters, extraDeclarations []string) (ast.Node, error) {
	decls, err := f.CreateDeclarations(text, types, parameters, extraDeclarations)
	if err != nil {
		return nil, err
	}
	if len(decls) != 1 {
		return nil, ast.Wrap(ast.ErrMisuse, fmt.Sprintf("expected exactly one declaration, got %d", len(decls)), nil)
	}
	return decls[0], nil
}

// CreateStatements parses text as zero or more statements inside a
// synthetic function body, auto-declaring every keyword in text that isn't
// one of types and doesn't already appear in extraDeclarations.
func (f *Factory) CreateStatements(text string, types, extraDeclarations []string) ([]ast.Node, error) {
	keywords := keywordsFromText(text)
	excluded := make(map[string]bool, len(types))
	for _, t := range types {
		excluded[t] = true
	}
	var parameters []string
	for _, kw := range keywords {
		if excluded[kw] {
			continue
		}
		if containsAny(extraDeclarations, kw) {
			continue
		}
		parameters = append(parameters, kw)
	}
	return f.createBody(text, types, parameters, extraDeclarations)
}

// CreateStatement is CreateStatements asserting exactly one top-level
// statement results, returning ast.ErrMisuse otherwise.
func (f *Factory) CreateStatement(text string, types, extraDeclarations []string) (ast.Node, error) {
	stmts, err := f.CreateStatements(text, types, extraDeclarations)
	if err != nil {
		return nil, err
	}
	if len(stmts) != 1 {
		return nil, ast.Wrap(ast.ErrMisuse, fmt.Sprintf("expected exactly one statement, got %d", len(stmts)), nil)
	}
	return stmts[0], nil
}

func (f *Factory) createBody(text string, types, parameters, extraDeclarations []string) ([]ast.Node, error) {
	var b strings.Builder
	for _, t := range types {
		b.WriteString(toTypedef(t))
		b.WriteString("\n")
	}
	for _, p := range parameters {
		b.WriteString(toDeclaration(p))
		b.WriteString("\n")
	}
	for _, extra := range extraDeclarations {
		b.WriteString(extra)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "void %s(){\n%s\n}", reservedName, text)

	root, err := f.create(b.String())
	if err != nil {
		return nil, err
	}
	body, err := firstOfKind(root, f.contract.Kinds().CompoundStmt)
	if err != nil {
		return nil, err
	}
	return body.Children(), nil
}

func (f *Factory) create(text string) (ast.Node, error) {
	return f.contract.LoadFromText(text, "pattern."+f.contract.Lang())
}

func firstOfKind(root ast.Node, kind string) (ast.Node, error) {
	matches, err := traverse.FindKind(root, regexp.QuoteMeta(kind))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ast.Wrap(ast.ErrParse, fmt.Sprintf("no %q node found in synthesized stub", kind), nil)
	}
	return matches[0], nil
}

// keywordsFromText returns every identifier-shaped token in text,
// including $single and $$multi wildcard placeholders, deduplicated.
func keywordsFromText(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range keywordPattern.FindAllString(text, -1) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

func toDeclaration(keyword string) string {
	return "int " + keyword + ";"
}

func toTypedef(keyword string) string {
	return "typedef int " + keyword + ";"
}

func containsAny(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
