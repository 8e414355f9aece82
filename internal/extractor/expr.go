package extractor

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// inferExprType describes the value produced by an initializer
// expression node. Used on the tree path when a let binding has no type
// annotation.
func inferExprType(n *sitter.Node, src []byte) string {
	if n == nil {
		return "inferred"
	}

	switch n.Type() {
	case "integer_literal":
		if suffix := literalSuffix(n.Content(src)); suffix != "" {
			if strings.HasPrefix(suffix, "u") {
				return "unsigned integer (" + suffix + ")"
			}
			if strings.HasPrefix(suffix, "i") {
				return "integer (" + suffix + ")"
			}
		}
		return "integer"
	case "float_literal":
		switch literalSuffix(n.Content(src)) {
		case "f32":
			return "floating-point (f32)"
		case "f64":
			return "floating-point (f64)"
		}
		return "floating-point"
	case "string_literal", "raw_string_literal":
		return "string"
	case "char_literal":
		return "character"
	case "boolean_literal":
		return "boolean"
	case "array_expression":
		return "array"
	case "macro_invocation":
		if macro := n.ChildByFieldName("macro"); macro != nil && macro.Content(src) == "vec" {
			return "vector"
		}
		return "macro result"
	case "call_expression":
		fn := n.ChildByFieldName("function")
		if fn == nil {
			return "function result"
		}
		if fn.Type() == "field_expression" {
			return describeMethodCall(fn, src)
		}
		path := fn.Content(src)
		if strings.HasSuffix(path, "::new") {
			switch strings.TrimSuffix(path, "::new") {
			case "Vec":
				return "vector"
			case "String":
				return "string"
			case "HashMap":
				return "hash map"
			case "BTreeMap":
				return "tree map"
			default:
				return strings.TrimSuffix(path, "::new") + " instance"
			}
		}
		return "function result"
	case "struct_expression":
		if name := n.ChildByFieldName("name"); name != nil {
			return name.Content(src)
		}
		return "struct instance"
	case "reference_expression":
		if hasMutableSpecifier(n) {
			return "mutable reference"
		}
		return "reference"
	case "binary_expression":
		return describeBinaryOp(n, src)
	case "match_expression":
		return "match result"
	case "if_expression":
		return "conditional result"
	}

	return "expression result"
}

// inferExprBasic is the coarse-type counterpart of inferExprType.
func inferExprBasic(n *sitter.Node, src []byte) string {
	if n == nil {
		return "unknown"
	}

	switch n.Type() {
	case "string_literal", "raw_string_literal":
		return "String"
	case "char_literal":
		return "char"
	case "integer_literal":
		if strings.HasPrefix(literalSuffix(n.Content(src)), "u") {
			return "unsigned integer"
		}
		return "integer"
	case "float_literal":
		return "f64"
	case "boolean_literal":
		return "bool"
	case "array_expression":
		return "Array"
	case "macro_invocation":
		if macro := n.ChildByFieldName("macro"); macro != nil && macro.Content(src) == "vec" {
			return "Vec<T>"
		}
		return "unknown"
	case "call_expression":
		fn := n.ChildByFieldName("function")
		if fn == nil {
			return "Function call result"
		}
		if fn.Type() == "field_expression" {
			if method := fn.ChildByFieldName("field"); method != nil {
				switch method.Content(src) {
				case "iter":
					return "Iterator"
				case "iter_mut":
					return "Mutable Iterator"
				case "into_iter":
					return "Owned Iterator"
				case "collect":
					return "Collection"
				}
			}
			return "Method call result"
		}
		if path := fn.Content(src); strings.HasSuffix(path, "::new") {
			return "Instance of " + strings.TrimSuffix(path, "::new")
		}
		return "Function call result"
	case "struct_expression":
		return "Struct instance"
	case "reference_expression":
		if hasMutableSpecifier(n) {
			return "Mutable reference"
		}
		return "Reference"
	case "binary_expression":
		return "Binary expression result"
	case "match_expression":
		return "Match result"
	case "if_expression":
		return "Conditional result"
	}

	return "Unknown expression"
}

// inferLoopExprType describes what a for-loop binding receives from its
// iterator expression.
func inferLoopExprType(n *sitter.Node, src []byte) string {
	if n == nil {
		return "collection element"
	}
	switch n.Type() {
	case "range_expression":
		return "integer (range)"
	case "call_expression":
		if fn := n.ChildByFieldName("function"); fn != nil && fn.Type() == "field_expression" {
			if method := fn.ChildByFieldName("field"); method != nil {
				switch method.Content(src) {
				case "iter":
					return "reference to collection element"
				case "iter_mut":
					return "mutable reference to collection element"
				case "into_iter":
					return "owned collection element"
				}
			}
		}
	}
	return "collection element"
}

func describeMethodCall(fieldExpr *sitter.Node, src []byte) string {
	method := fieldExpr.ChildByFieldName("field")
	if method == nil {
		return "method result"
	}
	switch method.Content(src) {
	case "iter":
		return "iterator"
	case "iter_mut":
		return "mutable iterator"
	case "into_iter":
		return "owned iterator"
	case "collect":
		return "collection"
	case "map":
		return "mapped iterator"
	case "filter":
		return "filtered iterator"
	case "unwrap", "expect":
		return "unwrapped value"
	case "clone":
		return "cloned value"
	case "to_string":
		return "string"
	}
	return "method result"
}

func describeBinaryOp(n *sitter.Node, src []byte) string {
	op := n.ChildByFieldName("operator")
	if op == nil {
		return "expression result"
	}
	switch op.Content(src) {
	case "+", "-", "*", "/", "%":
		return "numeric"
	case "&&", "||":
		return "boolean"
	case "&", "|", "^", "<<", ">>":
		return "integer"
	case "==", "!=", "<", "<=", ">", ">=":
		return "boolean"
	}
	return "expression result"
}

// literalSuffix returns the trailing type suffix of a numeric literal,
// e.g. "u32" from "5u32", or "" when there is none.
func literalSuffix(lit string) string {
	for i := 0; i < len(lit); i++ {
		c := lit[i]
		if c == 'i' || c == 'u' || c == 'f' {
			// Guard against hex literals like 0xff.
			if strings.ContainsAny(lit[:i], "xX") {
				continue
			}
			return lit[i:]
		}
	}
	return ""
}

func hasMutableSpecifier(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil && child.Type() == "mutable_specifier" {
			return true
		}
	}
	return false
}
