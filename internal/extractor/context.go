package extractor

import "strings"

// InferFromLine guesses a binding's type from the raw text of its
// declaration line. Checks run in priority order: explicit annotation,
// destructuring shape, right-hand-side literal shape, parameter position,
// loop position, pattern match. It never fails; unmatched input gets the
// "inferred from context" sentinel.
func InferFromLine(line string) string {
	if idx := strings.Index(line, "let"); idx != -1 {
		rest := line[idx:]

		// Explicit ": Type" annotation between the pattern and ';' or '='.
		if ti := annotationIndex(rest); ti != -1 {
			end := strings.IndexAny(rest[ti:], ";=")
			if end == -1 {
				end = len(rest) - ti
			}
			if end > 1 {
				if typeStr := strings.TrimSpace(rest[ti+1 : ti+end]); typeStr != "" {
					return DescribeType(typeStr)
				}
			}
		}

		if eq := strings.Index(rest, "="); eq != -1 {
			pattern := rest[:eq]
			rhs := strings.TrimSpace(rest[eq+1:])

			// Slice destructuring from a vector or array literal.
			if strings.Contains(pattern, "[") {
				if strings.Contains(rhs, "vec!") || strings.Contains(rhs, "Vec::") {
					if elem := angleBracketHint(rhs); elem != "" {
						return "vector element of " + DescribeType(elem)
					}
					return "vector element"
				}
				return "array element"
			}

			switch {
			case strings.Contains(rhs, "Some("):
				return "value inside Option"
			case strings.Contains(rhs, "Ok("):
				return "success value"
			case strings.Contains(rhs, "Err("):
				return "error value"
			case strings.Contains(rhs, ".iter()"):
				return "reference to collection element"
			case strings.Contains(rhs, ".iter_mut()"):
				return "mutable reference to collection element"
			case strings.Contains(rhs, ".into_iter()"):
				return "owned collection element"
			}
		}
	}

	if (strings.Contains(line, "fn ") || strings.Contains(line, "pub fn ")) && strings.Contains(line, "(") {
		return "function parameter"
	}

	if strings.Contains(line, "for") && strings.Contains(line, "in") {
		switch {
		case strings.Contains(line, ".."):
			return "integer from range"
		case strings.Contains(line, "iter()"):
			return "reference to collection element"
		case strings.Contains(line, "iter_mut()"):
			return "mutable reference to collection element"
		case strings.Contains(line, "into_iter()"):
			return "owned collection element"
		}
		return "iteration variable"
	}

	switch {
	case strings.Contains(line, "let Some("):
		return "value inside Option"
	case strings.Contains(line, "let Ok("):
		return "success value from Result"
	case strings.Contains(line, "let Err("):
		return "error value from Result"
	}

	return "inferred from context"
}

// InferFromInit guesses a type purely from the initializer expression on
// the right of '='.
func InferFromInit(line string) string {
	eq := strings.Index(line, "=")
	if eq == -1 {
		return "inferred"
	}
	rhs := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line[eq+1:]), ";"))

	switch {
	case strings.HasPrefix(rhs, `"`):
		return "string"
	case strings.HasPrefix(rhs, "'") && len(rhs) >= 3:
		return "character"
	case len(rhs) > 0 && rhs[0] >= '0' && rhs[0] <= '9':
		if strings.Contains(rhs, ".") {
			return "floating-point"
		}
		return "integer"
	case rhs == "true" || rhs == "false":
		return "boolean"
	case strings.HasPrefix(rhs, "["):
		if strings.Contains(rhs, "vec!") || strings.Contains(rhs, "Vec::new") {
			return "vector"
		}
		return "array"
	case strings.HasPrefix(rhs, "vec!"):
		return "vector"
	case strings.Contains(rhs, "{") && !strings.HasPrefix(rhs, "if") && !strings.HasPrefix(rhs, "match"):
		if name := strings.TrimSpace(strings.SplitN(rhs, "{", 2)[0]); name != "" {
			return name
		}
		return "struct"
	case strings.Contains(rhs, "(") && !strings.HasPrefix(rhs, "if") && !strings.HasPrefix(rhs, "match"):
		return "function result"
	}

	return "inferred"
}

// InferLoopElement guesses the element type of a for-loop binding from
// the loop line's iterator shape.
func InferLoopElement(line string) string {
	if strings.Contains(line, "for") && strings.Contains(line, "in") {
		switch {
		case strings.Contains(line, ".iter()"):
			return "reference to collection element"
		case strings.Contains(line, ".iter_mut()"):
			return "mutable reference to collection element"
		case strings.Contains(line, ".into_iter()"):
			return "owned collection element"
		case strings.Contains(line, ".."):
			return "integer (range)"
		}
		return "collection element"
	}
	return "inferred from loop"
}

// InferPatternMatch guesses the type of a binding introduced inside an
// if-let, while-let, or match arm.
func InferPatternMatch(line string) string {
	switch {
	case strings.Contains(line, "Some("):
		return "optional value content"
	case strings.Contains(line, "Ok("):
		return "success result value"
	case strings.Contains(line, "Err("):
		return "error result value"
	}
	if strings.Contains(line, "if let") && strings.Contains(line, "=") {
		if eq := strings.Index(line, "="); eq != -1 {
			if rhs := strings.TrimSpace(line[eq+1:]); rhs != "" {
				return "part of " + InferFromInit("let x = "+rhs)
			}
		}
	}
	if strings.Contains(line, "&") {
		return "reference value"
	}
	return "pattern matched value"
}

// InferDestructured pairs the shape of a destructuring pattern with the
// shape of its right-hand side.
func InferDestructured(rhs, pattern string) string {
	if strings.HasPrefix(pattern, "[") {
		if strings.HasPrefix(rhs, "vec!") || strings.Contains(rhs, "Vec::") {
			return "vector element"
		}
		if strings.HasPrefix(rhs, "[") {
			return "array element"
		}
	}
	if strings.HasPrefix(pattern, "Some(") && strings.Contains(rhs, "Some(") {
		return "optional value"
	}
	if strings.HasPrefix(pattern, "Ok(") && strings.Contains(rhs, "Ok(") {
		return "success value"
	}
	if strings.HasPrefix(pattern, "Err(") && strings.Contains(rhs, "Err(") {
		return "error value"
	}
	if (strings.HasPrefix(pattern, "(") && strings.Contains(rhs, "(")) ||
		(strings.HasPrefix(pattern, "{") && strings.Contains(rhs, "{")) {
		return "tuple or struct field"
	}
	return "destructured value"
}

// angleBracketHint extracts the first <...> payload from an expression,
// e.g. the element type of "Vec::<i32>::new()".
func angleBracketHint(s string) string {
	open := strings.Index(s, "<")
	if open == -1 {
		return ""
	}
	close := strings.Index(s[open:], ">")
	if close == -1 {
		return ""
	}
	return strings.TrimSpace(s[open+1 : open+close])
}
