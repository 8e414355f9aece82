package crawler

import (
	"os"
	"path/filepath"
	"testing"

	"rustscope/internal/extractor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCrawler_ScanProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.rs", "fn main() { let mut x = 1; }\n")
	writeFile(t, root, "src/lib.rs", "fn helper() { let y = 2; }\n")
	writeFile(t, root, "src/notes.txt", "not rust\n")
	writeFile(t, root, "target/debug/build.rs", "fn generated() { let mut z = 3; }\n")
	writeFile(t, root, ".git/hooks/pre-commit.rs", "fn hook() {}\n")

	c := NewCrawler(extractor.NewExtractor(), nil)

	count, err := c.CountFiles(root)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "only src/*.rs should be visited")

	visited := make(map[string]*extractor.FileReport)
	err = c.ScanProject(root, func(path string, rep *extractor.FileReport) {
		rel, relErr := filepath.Rel(root, path)
		require.NoError(t, relErr)
		visited[filepath.ToSlash(rel)] = rep
	})
	require.NoError(t, err)

	require.Len(t, visited, 2)

	mainRep, ok := visited["src/main.rs"]
	require.True(t, ok, "build output and VCS directories are skipped")
	assert.Len(t, mainRep.Mutable, 1)
	assert.Equal(t, "x", mainRep.Mutable[0].Name)

	libRep := visited["src/lib.rs"]
	require.NotNil(t, libRep)
	assert.Len(t, libRep.Immutable, 1)
}

func TestCrawler_Excludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.rs", "fn main() {}\n")
	writeFile(t, root, "examples/demo.rs", "fn demo() {}\n")
	writeFile(t, root, "benches/bench.rs", "fn bench() {}\n")

	c := NewCrawler(extractor.NewExtractor(), []string{"examples/**", "**/bench.rs"})

	count, err := c.CountFiles(root)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var paths []string
	err = c.ScanProject(root, func(path string, _ *extractor.FileReport) {
		paths = append(paths, path)
	})
	require.NoError(t, err)

	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(root, "src", "main.rs"), paths[0])
}
