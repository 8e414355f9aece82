// Package crawler walks a Rust project tree and feeds each source file
// through the extractor.
package crawler

import (
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"rustscope/internal/extractor"

	"github.com/bmatcuk/doublestar/v4"
)

// Crawler scans a directory for Rust source files.
type Crawler struct {
	extractor *extractor.Extractor
	ignored   []string
	excludes  []string
}

// NewCrawler creates a new crawler. Excludes are doublestar glob
// patterns matched against paths relative to the scan root.
func NewCrawler(ext *extractor.Extractor, excludes []string) *Crawler {
	return &Crawler{
		extractor: ext,
		ignored:   []string{"target", ".git", "vendor", "node_modules"},
		excludes:  excludes,
	}
}

// CountFiles returns how many files ScanProject would visit, for
// progress reporting.
func (c *Crawler) CountFiles(root string) (int, error) {
	count := 0
	err := c.walk(root, func(string) { count++ })
	return count, err
}

// ScanProject walks the root directory and streams one report per file
// through the callback, in walk order. An unreadable file is logged and
// skipped; the scan continues.
func (c *Crawler) ScanProject(root string, onFile func(path string, rep *extractor.FileReport)) error {
	return c.walk(root, func(path string) {
		rep, err := c.extractor.ExtractFromFile(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			return
		}
		onFile(path, rep)
	})
}

func (c *Crawler) walk(root string, visit func(path string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			if c.excluded(rel + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".rs") {
			return nil
		}
		if c.excluded(rel) {
			return nil
		}

		visit(path)
		return nil
	})
}

func (c *Crawler) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range c.excludes {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
	}
	return false
}
