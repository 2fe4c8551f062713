package astfactory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oxhq/astmatch/internal/astfactory"
	"github.com/oxhq/astmatch/internal/cfamily"
	"github.com/oxhq/astmatch/internal/provider"
)

func newRegistry(t *testing.T) *provider.Registry {
	t.Helper()
	reg := provider.NewRegistry()
	if err := cfamily.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return reg
}

func TestCreateFromText_ResolvesBackendByExtension(t *testing.T) {
	f := astfactory.New(newRegistry(t))
	node, err := f.CreateFromText("int x = 1;", "snippet.c")
	if err != nil {
		t.Fatalf("CreateFromText: %v", err)
	}
	if node.ContainingFilename() != "snippet.c" {
		t.Fatalf("ContainingFilename() = %q", node.ContainingFilename())
	}
}

func TestCreateTree_HonorsIncludeAndExclude(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.c"), []byte("int a;"), 0o644)
	os.WriteFile(filepath.Join(dir, "b.c"), []byte("int b;"), 0o644)
	os.Mkdir(filepath.Join(dir, "vendor"), 0o755)
	os.WriteFile(filepath.Join(dir, "vendor", "c.c"), []byte("int c;"), 0o644)

	f := astfactory.New(newRegistry(t))
	nodes, err := f.CreateTree(dir, []string{"*.c", "**/*.c"}, []string{"vendor/**"})
	if err != nil {
		t.Fatalf("CreateTree: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 files (vendor excluded), got %d", len(nodes))
	}
}
