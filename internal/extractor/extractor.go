// Package extractor discovers variable bindings and top-level
// declarations in Rust source. Each file is parsed into a syntax tree
// and visited; files the parser cannot make sense of fall back to a
// heuristic line scanner that reconstructs the same records from raw
// text.
package extractor

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
)

// Extractor runs the per-file extraction pass.
type Extractor struct {
	language *sitter.Language
}

// NewExtractor creates an extractor for Rust source files.
func NewExtractor() *Extractor {
	return &Extractor{language: rust.GetLanguage()}
}

// ExtractFromFile reads and analyzes a single source file. A read
// failure is returned to the caller; malformed source is not an error
// and degrades to the line scanner.
func (e *Extractor) ExtractFromFile(path string) (*FileReport, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return e.ExtractSource(path, source), nil
}

// ExtractSource analyzes in-memory source. The tree path is attempted
// first; a parser failure or a tree containing syntax errors routes the
// whole file to the fallback scanner. Either way a report is produced.
func (e *Extractor) ExtractSource(path string, source []byte) *FileReport {
	rep := &FileReport{}
	lines := strings.Split(string(source), "\n")

	parser := sitter.NewParser()
	parser.SetLanguage(e.language)

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil || tree == nil || tree.RootNode().HasError() {
		scanLines(path, lines, rep)
		return rep
	}

	visitTree(tree.RootNode(), source, path, lines, rep)
	return rep
}
