package extractor

import "strings"

// scanLines is the fallback extraction path, used when the file could
// not be parsed into a tree. It re-derives the same record shapes from
// raw lines with substring and bracket heuristics. A single line may
// contribute to several categories. Scope is always empty on this path;
// brace tracking is not reliable enough in broken source to name the
// enclosing function.
func scanLines(file string, lines []string, rep *FileReport) {
	inBlockComment := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "//") {
			continue
		}
		if strings.Contains(trimmed, "/*") && !strings.Contains(trimmed, "*/") {
			inBlockComment = true
			continue
		}
		if inBlockComment {
			if strings.Contains(trimmed, "*/") {
				inBlockComment = false
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		lineNo := i + 1

		if idx := strings.Index(line, "let mut "); idx != -1 {
			scanLet(line, lineNo, file, idx+len("let mut "), true, rep)
		} else if idx := strings.Index(line, "let "); idx != -1 {
			scanLet(line, lineNo, file, idx+len("let "), false, rep)
		}

		if idx := strings.Index(line, "for mut "); idx != -1 {
			if name := identRun(line[idx+len("for mut "):]); name != "" {
				rep.addBinding(VarBinding{
					Name:      name,
					Mutable:   true,
					File:      file,
					Line:      lineNo,
					Context:   line,
					Kind:      "inferred from loop",
					VarType:   InferLoopElement(line),
					BasicType: BasicTypeFromLine(line),
				})
			}
		}

		if strings.Contains(line, "fn ") && strings.Contains(line, "mut ") {
			scanMutParams(line, lineNo, file, rep)
		}

		if (strings.Contains(line, "if let ") || strings.Contains(line, "while let ") || strings.Contains(line, "match ")) &&
			strings.Contains(line, "mut ") {
			for _, name := range mutNames(line) {
				rep.addBinding(VarBinding{
					Name:      name,
					Mutable:   true,
					File:      file,
					Line:      lineNo,
					Context:   line,
					Kind:      "pattern matched",
					VarType:   InferPatternMatch(line),
					BasicType: BasicTypeFromLine(line),
				})
			}
		}

		scanDeclaration(line, lineNo, file, "fn ", "function", rep)
		scanDeclaration(line, lineNo, file, "struct ", "struct", rep)
		scanDeclaration(line, lineNo, file, "enum ", "enum", rep)
	}
}

// scanLet emits one binding for a let line, starting just past the
// keyword.
func scanLet(line string, lineNo int, file string, start int, mutable bool, rep *FileReport) {
	name, kind, annotated := nameAndKind(line, start)
	if name == "" {
		return
	}

	varType := InferFromInit(line)
	if annotated {
		varType = DescribeType(kind)
	}

	rep.addBinding(VarBinding{
		Name:      name,
		Mutable:   mutable,
		File:      file,
		Line:      lineNo,
		Context:   line,
		Kind:      kind,
		VarType:   varType,
		BasicType: BasicTypeFromLine(line),
	})
}

// nameAndKind extracts the bound name and its kind/type descriptor from
// the text following a let keyword, reporting whether the kind came from
// an explicit annotation. Destructuring patterns yield their first bound
// name; the closing bracket search takes the first closer, not the
// matching one, so deeply nested patterns can mis-segment.
func nameAndKind(line string, start int) (string, string, bool) {
	if start >= len(line) {
		return "", "", false
	}
	rest := line[start:]

	if strings.HasPrefix(rest, "(") || strings.HasPrefix(rest, "{") || strings.HasPrefix(rest, "[") {
		closer := ")"
		switch rest[0] {
		case '{':
			closer = "}"
		case '[':
			closer = "]"
		}
		patternEnd := strings.Index(rest, closer)
		if patternEnd == -1 {
			patternEnd = len(rest) - 1
		}
		pattern := rest[:patternEnd+1]

		name := "unknown"
		for _, tok := range strings.FieldsFunc(pattern, func(r rune) bool {
			return strings.ContainsRune("()[]{},", r)
		}) {
			tok = strings.TrimSpace(tok)
			if tok != "" && !strings.HasPrefix(tok, "..") {
				name = tok
				break
			}
		}

		after := rest[patternEnd+1:]
		if ti := annotationIndex(after); ti != -1 {
			end := strings.IndexAny(after[ti:], ";=")
			if end == -1 {
				end = len(after) - ti
			}
			if typeStr := strings.TrimSpace(after[ti+1 : ti+end]); typeStr != "" {
				return name, typeStr, true
			}
			return name, "complex pattern", false
		}
		if eq := strings.Index(rest, "="); eq != -1 {
			return name, InferDestructured(strings.TrimSpace(rest[eq+1:]), pattern), false
		}
		return name, "complex pattern", false
	}

	name := identRun(rest)
	if name == "" {
		return "", "", false
	}

	if ti := annotationIndex(rest); ti != -1 {
		end := strings.IndexAny(rest[ti:], ";=")
		if end == -1 {
			end = len(rest) - ti
		}
		if typeStr := strings.TrimSpace(rest[ti+1 : ti+end]); typeStr != "" {
			return name, typeStr, true
		}
	}
	return name, "inferred", false
}

// scanMutParams emits one mutable binding per "mut <name>[: Type]"
// occurrence inside a function signature's parameter list.
func scanMutParams(line string, lineNo int, file string, rep *FileReport) {
	open := strings.Index(line, "(")
	if open == -1 {
		return
	}
	params := line[open:]

	for _, name := range mutNames(params) {
		kind := "inferred parameter"
		varType := InferFromLine(line)

		// Annotation for this specific parameter, up to ',' or ')'.
		if at := strings.Index(params, "mut "+name+":"); at != -1 {
			after := params[at+len("mut "+name+":"):]
			end := strings.IndexAny(after, ",)")
			if end == -1 {
				end = len(after)
			}
			if typeStr := strings.TrimSpace(after[:end]); typeStr != "" {
				kind = typeStr
				varType = DescribeType(typeStr)
			}
		} else if at := strings.Index(params, "mut "+name+" :"); at != -1 {
			after := params[at+len("mut "+name+" :"):]
			end := strings.IndexAny(after, ",)")
			if end == -1 {
				end = len(after)
			}
			if typeStr := strings.TrimSpace(after[:end]); typeStr != "" {
				kind = typeStr
				varType = DescribeType(typeStr)
			}
		}

		rep.addBinding(VarBinding{
			Name:      name,
			Mutable:   true,
			File:      file,
			Line:      lineNo,
			Context:   line,
			Kind:      kind,
			VarType:   varType,
			BasicType: BasicTypeFromLine(line),
		})
	}
}

// scanDeclaration emits a declaration record when the line carries the
// given keyword followed by a name.
func scanDeclaration(line string, lineNo int, file, keyword, declType string, rep *FileReport) {
	idx := strings.Index(line, keyword)
	if idx == -1 {
		return
	}
	name := identRun(line[idx+len(keyword):])
	if name == "" {
		return
	}
	rep.addDeclaration(Declaration{
		Name:     name,
		DeclType: declType,
		File:     file,
		Line:     lineNo,
	})
}

// mutNames collects the identifier following each "mut " token in s.
func mutNames(s string) []string {
	var names []string
	for i := 0; i+4 <= len(s); i++ {
		if s[i:i+4] != "mut " {
			continue
		}
		if i > 0 && isIdentByte(s[i-1]) {
			continue // inside a longer word like "permut "
		}
		if name := identRun(s[i+4:]); name != "" {
			names = append(names, name)
		}
		i += 3
	}
	return names
}

// identRun returns the maximal leading run of identifier characters.
func identRun(s string) string {
	end := 0
	for end < len(s) && isIdentByte(s[end]) {
		end++
	}
	return s[:end]
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
