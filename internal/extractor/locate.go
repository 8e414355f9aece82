package extractor

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// locateLine resolves the 1-based line of a node. The parser's span is
// authoritative when it falls inside the file; otherwise searchLine
// takes over. Callers must treat the result as best-effort.
func locateLine(n *sitter.Node, src []byte, lines []string) int {
	if n != nil {
		row := int(n.StartPoint().Row) + 1
		if row >= 1 && row <= len(lines) {
			return row
		}
		return searchLine(lines, n.Content(src))
	}
	return 1
}

// searchLine finds the line whose text best matches the given token
// text, trying decreasing levels of specificity: the assignment or
// annotation head, then whole-word matches, then a plain prefix match.
// Defaults to line 1 when nothing matches; no guarantee of uniqueness
// or accuracy is offered.
func searchLine(lines []string, token string) int {
	content := strings.TrimSpace(token)
	if content == "" {
		return 1
	}

	for idx, line := range lines {
		switch {
		case strings.Contains(content, "="):
			head := strings.TrimSpace(strings.SplitN(content, "=", 2)[0])
			if head != "" && strings.Contains(line, head) && strings.Contains(line, "=") {
				return idx + 1
			}
		case strings.Contains(content, ":") && !strings.Contains(content, "{"):
			head := strings.TrimSpace(strings.SplitN(content, ":", 2)[0])
			if head != "" && strings.Contains(line, head) && strings.Contains(line, ":") {
				return idx + 1
			}
		default:
			words := strings.Fields(line)
			for _, word := range strings.Fields(content) {
				if len(word) > 2 && containsWord(words, word) {
					return idx + 1
				}
			}
		}

		if len(content) > 10 && strings.Contains(line, content[:10]) {
			return idx + 1
		}
	}

	return 1
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
