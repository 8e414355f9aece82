package extractor

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// patternContext carries the location facts shared by every binding that
// a single pattern produces.
type patternContext struct {
	file    string
	line    int
	context string
	scope   string
	mutable bool // inherited mutability, e.g. from "let mut" or an outer mut pattern
}

func (pc patternContext) binding(name string, mutable bool, kind, varType, basicType string) VarBinding {
	return VarBinding{
		Name:      name,
		Mutable:   mutable,
		File:      pc.file,
		Line:      pc.line,
		Context:   pc.context,
		Kind:      kind,
		VarType:   varType,
		BasicType: basicType,
		Scope:     pc.scope,
	}
}

// decomposePattern destructures a binding pattern into its named
// sub-bindings, attaching a type hint to each when one can be derived
// from the declared type. Unrecognized pattern kinds emit nothing.
func decomposePattern(n *sitter.Node, src []byte, declaredType string, pc patternContext, rep *FileReport) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "identifier", "shorthand_field_identifier":
		kind := "pattern match"
		varType := InferFromLine(pc.context)
		basicType := BasicTypeFromLine(pc.context)
		if declaredType != "" {
			kind = "explicitly typed pattern"
			varType = DescribeType(declaredType)
			basicType = BasicType(declaredType)
		}
		rep.addBinding(pc.binding(n.Content(src), pc.mutable, kind, varType, basicType))

	case "mut_pattern":
		inner := innerPattern(n)
		pc.mutable = true
		decomposePattern(inner, src, declaredType, pc, rep)

	case "tuple_pattern":
		// Pair each element with the matching component of a declared
		// tuple type, when one is present.
		var components []string
		if strings.HasPrefix(declaredType, "(") && strings.HasSuffix(declaredType, ")") {
			components = splitTopLevel(declaredType[1:len(declaredType)-1], ',')
		}
		i := 0
		for c := 0; c < int(n.NamedChildCount()); c++ {
			elem := n.NamedChild(c)
			elemType := ""
			if i < len(components) {
				elemType = components[i]
			}
			decomposePattern(elem, src, elemType, pc, rep)
			i++
		}

	case "tuple_struct_pattern":
		variant := "unknown"
		if t := n.ChildByFieldName("type"); t != nil {
			variant = lastPathSegment(t.Content(src))
		}
		hint := ""
		switch variant {
		case "Some":
			hint = "optional value"
		case "Ok":
			hint = "success value"
		case "Err":
			hint = "error value"
		}
		for c := 0; c < int(n.NamedChildCount()); c++ {
			elem := n.NamedChild(c)
			if elem == n.ChildByFieldName("type") {
				continue
			}
			inner := pc
			if elem.Type() == "mut_pattern" {
				inner.mutable = true
				elem = innerPattern(elem)
			}
			if elem != nil && elem.Type() == "identifier" {
				varType := hint
				if varType == "" {
					varType = InferFromLine(pc.context)
				}
				rep.addBinding(inner.binding(elem.Content(src), inner.mutable,
					"destructured from "+variant, varType, BasicTypeFromLine(pc.context)))
			} else {
				decomposePattern(elem, src, "", inner, rep)
			}
		}

	case "struct_pattern":
		structName := "unknown"
		if t := n.ChildByFieldName("type"); t != nil {
			structName = lastPathSegment(t.Content(src))
		}
		for c := 0; c < int(n.NamedChildCount()); c++ {
			field := n.NamedChild(c)
			if field.Type() != "field_pattern" {
				continue
			}
			nameNode := field.ChildByFieldName("name")
			patNode := field.ChildByFieldName("pattern")
			fieldName := ""
			if nameNode != nil {
				fieldName = nameNode.Content(src)
			}
			inner := pc
			if hasMutableSpecifier(field) {
				inner.mutable = true
			}
			switch {
			case patNode == nil || patNode.Type() == "identifier":
				bound := fieldName
				if patNode != nil {
					bound = patNode.Content(src)
				}
				if bound == "" {
					continue
				}
				rep.addBinding(inner.binding(bound, inner.mutable,
					"destructured from struct "+structName,
					"field '"+fieldName+"' of "+structName,
					BasicTypeFromLine(pc.context)))
			default:
				decomposePattern(patNode, src, "", inner, rep)
			}
		}

	case "reference_pattern":
		refMut := hasMutableSpecifier(n)
		inner := innerPattern(n)
		if inner != nil && inner.Type() == "identifier" {
			prefix := "reference to"
			if refMut {
				prefix = "mutable reference to"
			}
			rep.addBinding(pc.binding(inner.Content(src), pc.mutable || refMut,
				"reference pattern",
				prefix+" "+InferFromLine(pc.context),
				BasicTypeFromLine(pc.context)))
		} else {
			decomposePattern(inner, src, "", pc, rep)
		}

	case "slice_pattern":
		for c := 0; c < int(n.NamedChildCount()); c++ {
			elem := n.NamedChild(c)
			text := elem.Content(src)
			switch {
			case strings.HasPrefix(text, ".."):
				name := strings.TrimLeft(text, ".")
				if name == "" {
					continue
				}
				rep.addBinding(pc.binding(name, pc.mutable,
					"slice pattern", "remaining slice elements", BasicTypeFromLine(pc.context)))
			case elem.Type() == "identifier":
				rep.addBinding(pc.binding(text, pc.mutable,
					"slice pattern", "slice element", BasicTypeFromLine(pc.context)))
			default:
				decomposePattern(elem, src, "", pc, rep)
			}
		}

	case "or_pattern":
		// Only the first alternative is decomposed. The alternatives of
		// an or-pattern must bind the same names, so this loses no names,
		// only per-alternative type hints.
		if n.NamedChildCount() > 0 {
			decomposePattern(n.NamedChild(0), src, declaredType, pc, rep)
		}
	}
}

// innerPattern returns the pattern wrapped by a one-child node such as
// mut_pattern or reference_pattern, skipping the mutability marker.
func innerPattern(n *sitter.Node) *sitter.Node {
	for c := int(n.NamedChildCount()) - 1; c >= 0; c-- {
		if child := n.NamedChild(c); child != nil && child.Type() != "mutable_specifier" {
			return child
		}
	}
	return nil
}
