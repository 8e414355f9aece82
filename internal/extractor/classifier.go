package extractor

import (
	"fmt"
	"strings"
)

// DescribeType renders a Rust type expression as a human-readable label,
// expanding wrappers recursively: "Vec<i32>" becomes "vector of integer
// (i32)". Unrecognized names pass through unchanged so custom types stay
// visible. Empty input yields the "inferred" sentinel.
func DescribeType(typeStr string) string {
	s := strings.TrimSpace(typeStr)
	if s == "" || s == "inferred" {
		return "inferred"
	}

	if strings.HasPrefix(s, "&") {
		rest := strings.TrimSpace(strings.TrimPrefix(s, "&"))
		mutability := ""
		if strings.HasPrefix(rest, "mut ") {
			mutability = "mutable "
			rest = strings.TrimPrefix(rest, "mut ")
		}
		return fmt.Sprintf("%sreference to %s", mutability, DescribeType(rest))
	}

	if open := strings.Index(s, "<"); open != -1 {
		close := strings.LastIndex(s, ">")
		if close <= open {
			return s
		}
		base := strings.TrimSpace(s[:open])
		params := strings.TrimSpace(s[open+1 : close])

		switch base {
		case "Vec":
			return "vector of " + DescribeType(params)
		case "Option":
			return "optional " + DescribeType(params)
		case "Result":
			if parts := splitTopLevel(params, ','); len(parts) >= 2 {
				return fmt.Sprintf("result with Ok(%s) or Err(%s)", DescribeType(parts[0]), DescribeType(parts[1]))
			}
			return "result of " + DescribeType(params)
		case "HashMap", "BTreeMap":
			if parts := splitTopLevel(params, ','); len(parts) >= 2 {
				return fmt.Sprintf("map from %s to %s", DescribeType(parts[0]), DescribeType(parts[1]))
			}
			return "map"
		case "HashSet", "BTreeSet":
			return "set of " + DescribeType(params)
		default:
			return fmt.Sprintf("%s<%s>", base, params)
		}
	}

	// Array types [T; N]
	if strings.HasPrefix(s, "[") && strings.Contains(s, ";") {
		semi := strings.Index(s, ";")
		elem := DescribeType(s[1:semi])
		size := strings.TrimSuffix(strings.TrimSpace(s[semi+1:]), "]")
		return fmt.Sprintf("array of %s with size %s", elem, strings.TrimSpace(size))
	}

	// Slice types [T]
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return "slice of " + DescribeType(s[1:len(s)-1])
	}

	// Tuple types (T1, T2, ...)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return "unit type ()"
		}
		parts := splitTopLevel(inner, ',')
		described := make([]string, 0, len(parts))
		for _, p := range parts {
			described = append(described, DescribeType(p))
		}
		return fmt.Sprintf("tuple of (%s)", strings.Join(described, ", "))
	}

	switch s {
	case "i8", "i16", "i32", "i64", "i128", "isize":
		return fmt.Sprintf("integer (%s)", s)
	case "u8", "u16", "u32", "u64", "u128", "usize":
		return fmt.Sprintf("unsigned integer (%s)", s)
	case "f32", "f64":
		return fmt.Sprintf("floating-point (%s)", s)
	case "bool":
		return "boolean"
	case "char":
		return "character"
	case "String":
		return "owned string"
	case "str":
		return "string slice"
	default:
		return s
	}
}

// BasicType reduces a type expression to its coarse form: wrappers for
// Vec, Option, and references are kept, everything else collapses to its
// last path segment. This is a separate axis from DescribeType, used for
// grouping rather than display.
func BasicType(typeStr string) string {
	s := strings.TrimSpace(typeStr)
	if s == "" {
		return "unknown"
	}

	if strings.HasPrefix(s, "&") {
		rest := strings.TrimSpace(strings.TrimPrefix(s, "&"))
		if strings.HasPrefix(rest, "mut ") {
			return "&mut " + BasicType(strings.TrimPrefix(rest, "mut "))
		}
		return "&" + BasicType(rest)
	}

	if strings.HasPrefix(s, "[") && strings.Contains(s, ";") {
		return fmt.Sprintf("[%s; N]", BasicType(s[1:strings.Index(s, ";")]))
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return fmt.Sprintf("[%s]", BasicType(s[1:len(s)-1]))
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return "()"
		}
		parts := splitTopLevel(inner, ',')
		basic := make([]string, 0, len(parts))
		for _, p := range parts {
			basic = append(basic, BasicType(p))
		}
		return fmt.Sprintf("(%s)", strings.Join(basic, ", "))
	}

	if open := strings.Index(s, "<"); open != -1 {
		close := strings.LastIndex(s, ">")
		if close <= open {
			return s
		}
		base := lastPathSegment(strings.TrimSpace(s[:open]))
		params := strings.TrimSpace(s[open+1 : close])
		switch base {
		case "Vec", "Option":
			inner := params
			if parts := splitTopLevel(params, ','); len(parts) > 0 {
				inner = parts[0]
			}
			return fmt.Sprintf("%s<%s>", base, BasicType(inner))
		default:
			return base
		}
	}

	return lastPathSegment(s)
}

// BasicTypeFromLine derives the coarse type from raw line text when no
// parsed type is available: an explicit annotation wins, then literal
// shapes on the right-hand side, then "unknown".
func BasicTypeFromLine(line string) string {
	if idx := annotationIndex(line); idx != -1 {
		after := line[idx+1:]
		end := strings.IndexAny(after, ";=")
		if end == -1 {
			end = len(after)
		}
		if typeStr := strings.TrimSpace(after[:end]); typeStr != "" {
			return typeStr
		}
	}

	if eq := strings.Index(line, "="); eq != -1 {
		rhs := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line[eq+1:]), ";"))
		switch {
		case strings.HasPrefix(rhs, `"`):
			return "String"
		case rhs == "true" || rhs == "false":
			return "bool"
		case len(rhs) > 0 && rhs[0] >= '0' && rhs[0] <= '9':
			if strings.Contains(rhs, ".") {
				return "f64"
			}
			return "i32"
		case strings.HasPrefix(rhs, "'") && len(rhs) >= 3:
			return "char"
		case strings.HasPrefix(rhs, "vec!") || strings.Contains(rhs, "Vec::"):
			return "Vec<T>"
		case strings.HasPrefix(rhs, "Some("):
			return "Option<T>"
		}
	}

	return "unknown"
}

// annotationIndex finds the first ':' that introduces a type annotation,
// skipping '::' path separators.
func annotationIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ':' {
			continue
		}
		if i+1 < len(s) && s[i+1] == ':' {
			i++ // skip the second colon of "::"
			continue
		}
		if i > 0 && s[i-1] == ':' {
			continue
		}
		return i
	}
	return -1
}

// splitTopLevel splits on sep, ignoring separators nested inside
// angle brackets, parentheses, or square brackets.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return parts
}

func lastPathSegment(s string) string {
	if idx := strings.LastIndex(s, "::"); idx != -1 {
		return s[idx+2:]
	}
	return s
}
