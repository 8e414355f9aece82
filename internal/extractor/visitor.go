package extractor

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// visitTree walks a parsed file and emits binding and declaration
// records. The enclosing function name is threaded down as an explicit
// parameter, so nested items always see the right scope.
func visitTree(root *sitter.Node, src []byte, file string, lines []string, rep *FileReport) {
	visitNode(root, src, file, lines, "", rep)
}

func visitNode(n *sitter.Node, src []byte, file string, lines []string, scope string, rep *FileReport) {
	switch n.Type() {
	case "function_item":
		name := ""
		if nameNode := n.ChildByFieldName("name"); nameNode != nil {
			name = nameNode.Content(src)
		}
		rep.addDeclaration(Declaration{
			Name:     name,
			DeclType: "function",
			File:     file,
			Line:     locateLine(n, src, lines),
		})
		scope = name

	case "struct_item":
		if nameNode := n.ChildByFieldName("name"); nameNode != nil {
			rep.addDeclaration(Declaration{
				Name:     nameNode.Content(src),
				DeclType: "struct",
				File:     file,
				Line:     locateLine(n, src, lines),
			})
		}

	case "enum_item":
		if nameNode := n.ChildByFieldName("name"); nameNode != nil {
			rep.addDeclaration(Declaration{
				Name:     nameNode.Content(src),
				DeclType: "enum",
				File:     file,
				Line:     locateLine(n, src, lines),
			})
		}

	case "let_declaration":
		visitLet(n, src, file, lines, scope, rep)

	case "parameter":
		visitParameter(n, src, file, lines, scope, rep)

	case "for_expression":
		visitForLoop(n, src, file, lines, scope, rep)

	case "if_expression", "while_expression":
		visitCondition(n, src, file, lines, scope, rep)
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		visitNode(n.NamedChild(i), src, file, lines, scope, rep)
	}
}

// visitLet handles a let declaration. A bare identifier binding is
// recorded directly with its type taken from the initializer; anything
// else goes through the pattern decomposer.
func visitLet(n *sitter.Node, src []byte, file string, lines []string, scope string, rep *FileReport) {
	pat := n.ChildByFieldName("pattern")
	if pat == nil {
		return
	}

	line := locateLine(n, src, lines)
	context := contextLine(lines, line)
	mutable := hasMutableSpecifier(n)

	typeText := ""
	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		typeText = typeNode.Content(src)
	}

	pc := patternContext{file: file, line: line, context: context, scope: scope, mutable: mutable}

	if pat.Type() == "identifier" && typeText == "" {
		value := n.ChildByFieldName("value")
		varType := "inferred"
		basicType := BasicTypeFromLine(context)
		if value != nil {
			varType = inferExprType(value, src)
			basicType = inferExprBasic(value, src)
		}
		rep.addBinding(pc.binding(pat.Content(src), mutable, "inferred from initialization", varType, basicType))
		return
	}

	decomposePattern(pat, src, typeText, pc, rep)
}

// visitParameter records mutable identifier parameters. Immutable
// parameters are deliberately not emitted; the inventory is centered on
// mutability.
func visitParameter(n *sitter.Node, src []byte, file string, lines []string, scope string, rep *FileReport) {
	pat := n.ChildByFieldName("pattern")
	if pat == nil {
		return
	}

	mutable := hasMutableSpecifier(n)
	if pat.Type() == "mut_pattern" {
		mutable = true
		pat = innerPattern(pat)
	}
	if !mutable || pat == nil || pat.Type() != "identifier" {
		return
	}

	typeText := ""
	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		typeText = typeNode.Content(src)
	}

	line := locateLine(n, src, lines)
	pc := patternContext{file: file, line: line, context: contextLine(lines, line), scope: scope}
	rep.addBinding(pc.binding(pat.Content(src), true,
		"function parameter: "+typeText,
		DescribeType(typeText),
		BasicType(typeText)))
}

// visitForLoop records mutable identifier loop bindings, with the type
// derived from the iterator expression; destructuring loop patterns go
// through the decomposer.
func visitForLoop(n *sitter.Node, src []byte, file string, lines []string, scope string, rep *FileReport) {
	pat := n.ChildByFieldName("pattern")
	if pat == nil {
		return
	}

	line := locateLine(n, src, lines)
	context := contextLine(lines, line)
	pc := patternContext{file: file, line: line, context: context, scope: scope}

	if pat.Type() == "mut_pattern" {
		inner := innerPattern(pat)
		if inner != nil && inner.Type() == "identifier" {
			value := n.ChildByFieldName("value")
			rep.addBinding(pc.binding(inner.Content(src), true,
				"for loop variable",
				inferLoopExprType(value, src),
				inferExprBasic(value, src)))
			return
		}
		pc.mutable = true
		decomposePattern(inner, src, "", pc, rep)
		return
	}

	if pat.Type() == "identifier" {
		// Immutable loop variables are not part of the inventory.
		return
	}

	decomposePattern(pat, src, "", pc, rep)
}

// visitCondition scans an if-let or while-let condition's source text
// for mut bindings. Enumerating every pattern shape a condition can hold
// buys nothing here, so this stays a text-level check even on the tree
// path.
func visitCondition(n *sitter.Node, src []byte, file string, lines []string, scope string, rep *FileReport) {
	cond := n.ChildByFieldName("condition")
	if cond == nil {
		return
	}

	text := strings.TrimSpace(cond.Content(src))
	if !strings.HasPrefix(text, "let ") && cond.Type() != "let_condition" {
		return
	}
	if !strings.Contains(text, "mut ") {
		return
	}

	patPart := text
	if eq := strings.Index(text, "="); eq != -1 {
		patPart = strings.TrimSpace(text[:eq])
	}

	kind := "if-let pattern"
	if n.Type() == "while_expression" {
		kind = "while-let pattern"
	}

	line := locateLine(n, src, lines)
	pc := patternContext{file: file, line: line, context: contextLine(lines, line), scope: scope}
	for _, name := range mutNames(patPart) {
		rep.addBinding(pc.binding(name, true, kind,
			InferPatternMatch(patPart),
			BasicTypeFromLine(pc.context)))
	}
}

// contextLine returns the literal source line for a 1-based line number,
// or the "unknown" placeholder when the number is out of range.
func contextLine(lines []string, line int) string {
	if line >= 1 && line <= len(lines) {
		return lines[line-1]
	}
	return "unknown"
}
