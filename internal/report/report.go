// Package report renders extraction results as text, JSON, or CSV. It
// only ever reads the collections it is handed.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"rustscope/internal/extractor"
)

// Metadata describes one analysis run.
type Metadata struct {
	ProjectName string
	Version     string
	Timestamp   string
}

// Print writes the human-readable rendering to w.
func Print(w io.Writer, res *extractor.Result, meta Metadata, link bool) {
	fmt.Fprintln(w, "\x1b[1mProject Information:\x1b[0m")
	fmt.Fprintf(w, "Project Name: %s\n", meta.ProjectName)
	fmt.Fprintf(w, "Version: %s\n", meta.Version)
	fmt.Fprintf(w, "Analysis Run At: %s\n", meta.Timestamp)

	fmt.Fprintf(w, "\n\x1b[1mMutable Variables (%d):\x1b[0m\n", len(res.Mutable))
	for _, v := range res.Mutable {
		fmt.Fprintf(w, "  %s\n", FormatBinding(v, link))
	}

	fmt.Fprintf(w, "\n\x1b[1mImmutable Variables (%d):\x1b[0m\n", len(res.Immutable))
	for _, v := range res.Immutable {
		fmt.Fprintf(w, "  %s\n", FormatBinding(v, link))
	}

	fmt.Fprintf(w, "\n\x1b[1mDeclarations (%d):\x1b[0m\n", len(res.Declarations))
	for _, d := range res.Declarations {
		fmt.Fprintf(w, "  %s\n", FormatDeclaration(d, link))
	}
}

// FormatBinding renders one binding as a single line, optionally with a
// clickable editor link.
func FormatBinding(v extractor.VarBinding, link bool) string {
	mutability := "immutable"
	if v.Mutable {
		mutability = "mutable"
	}
	if link {
		return fmt.Sprintf("%s (%s): %s at [%s:%d](%s) - kind: %s, type: %s, basic type: %s, scope: %s",
			v.Name, mutability, strings.TrimSpace(v.Context), v.File, v.Line,
			EditorLink(v.File, v.Line), v.Kind, v.VarType, v.BasicType, v.Scope)
	}
	return fmt.Sprintf("%s (%s): %s at %s:%d - kind: %s, type: %s, basic type: %s, scope: %s",
		v.Name, mutability, strings.TrimSpace(v.Context), v.File, v.Line,
		v.Kind, v.VarType, v.BasicType, v.Scope)
}

// FormatDeclaration renders one declaration as a single line.
func FormatDeclaration(d extractor.Declaration, link bool) string {
	if link {
		return fmt.Sprintf("%s (%s): at [%s:%d](%s)", d.Name, d.DeclType, d.File, d.Line, EditorLink(d.File, d.Line))
	}
	return fmt.Sprintf("%s (%s): at %s:%d", d.Name, d.DeclType, d.File, d.Line)
}

// EditorLink builds a vscode://file/<absolute_path>:<line> URI.
func EditorLink(file string, line int) string {
	abs := file
	if !filepath.IsAbs(abs) {
		if resolved, err := filepath.Abs(abs); err == nil {
			abs = resolved
		} else if cwd, err := os.Getwd(); err == nil {
			abs = filepath.Join(cwd, abs)
		}
	}
	return fmt.Sprintf("vscode://file/%s:%d", filepath.ToSlash(abs), line)
}
