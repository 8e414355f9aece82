package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeType(t *testing.T) {
	cases := map[string]string{
		"":                          "inferred",
		"inferred":                  "inferred",
		"i32":                       "integer (i32)",
		"i64":                       "integer (i64)",
		"usize":                     "unsigned integer (usize)",
		"f64":                       "floating-point (f64)",
		"bool":                      "boolean",
		"char":                      "character",
		"String":                    "owned string",
		"str":                       "string slice",
		"Vec<i32>":                  "vector of integer (i32)",
		"Vec<Vec<String>>":          "vector of vector of owned string",
		"Option<String>":            "optional owned string",
		"Result<i32, String>":       "result with Ok(integer (i32)) or Err(owned string)",
		"HashMap<String, i32>":      "map from owned string to integer (i32)",
		"BTreeMap<String, bool>":    "map from owned string to boolean",
		"HashSet<u64>":              "set of unsigned integer (u64)",
		"&str":                      "reference to string slice",
		"&mut Vec<i32>":             "mutable reference to vector of integer (i32)",
		"[u8; 4]":                   "array of unsigned integer (u8) with size 4",
		"[i32]":                     "slice of integer (i32)",
		"(i32, String)":             "tuple of (integer (i32), owned string)",
		"()":                        "unit type ()",
		"MyStruct":                  "MyStruct",
		"Box<dyn Error>":            "Box<dyn Error>",
		"HashMap<String, Vec<i32>>": "map from owned string to vector of integer (i32)",
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, DescribeType(input))
		})
	}
}

func TestDescribeType_Deterministic(t *testing.T) {
	inputs := []string{"Vec<HashMap<String, i32>>", "&mut Option<Vec<u8>>", "(i32, (bool, char))"}
	for _, input := range inputs {
		first := DescribeType(input)
		second := DescribeType(input)
		assert.Equal(t, first, second, "same input must yield the same label")
	}
}

func TestBasicType(t *testing.T) {
	cases := map[string]string{
		"":                           "unknown",
		"i32":                        "i32",
		"String":                     "String",
		"Vec<i32>":                   "Vec<i32>",
		"Option<String>":             "Option<String>",
		"Result<i32, String>":        "Result",
		"HashMap<String, i32>":       "HashMap",
		"&str":                       "&str",
		"&mut Vec<u8>":               "&mut Vec<u8>",
		"[u8; 16]":                   "[u8; N]",
		"[i32]":                      "[i32]",
		"(i32, bool)":                "(i32, bool)",
		"()":                         "()",
		"std::string::String":        "String",
		"collections::HashMap<K, V>": "HashMap",
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, BasicType(input))
		})
	}
}

func TestBasicTypeFromLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want string
	}{
		{"explicit annotation", "let x: u64 = 5;", "u64"},
		{"annotation without initializer", "let count: usize;", "usize"},
		{"path expression is not an annotation", "let s = String::new();", "unknown"},
		{"string literal", `let s = "hello";`, "String"},
		{"boolean literal", "let flag = true;", "bool"},
		{"integer literal", "let n = 42;", "i32"},
		{"float literal", "let f = 3.14;", "f64"},
		{"char literal", "let c = 'x';", "char"},
		{"false literal keeps its semicolon", "let done = false;", "bool"},
		{"vec macro", "let v = vec![1, 2];", "Vec<T>"},
		{"vec constructor", "let v = Vec::new();", "Vec<T>"},
		{"some constructor", "let o = Some(5);", "Option<T>"},
		{"no signal", "let z = compute();", "unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BasicTypeFromLine(tc.line))
		})
	}
}

func TestSplitTopLevel(t *testing.T) {
	assert.Equal(t, []string{"i32", "String"}, splitTopLevel("i32, String", ','))
	assert.Equal(t, []string{"HashMap<K, V>", "bool"}, splitTopLevel("HashMap<K, V>, bool", ','))
	assert.Equal(t, []string{"(a, b)", "c"}, splitTopLevel("(a, b), c", ','))
	assert.Equal(t, []string{"single"}, splitTopLevel("single", ','))
}

func TestAnnotationIndex(t *testing.T) {
	assert.Equal(t, 5, annotationIndex("let x: i32 = 1;"))
	assert.Equal(t, -1, annotationIndex("let s = String::new();"))
	assert.Equal(t, -1, annotationIndex("let y = 1;"))
	// The annotation colon after a path on the RHS still counts; only
	// "::" pairs are skipped.
	assert.Equal(t, 9, annotationIndex("let vals : Vec<i32> = foo();"))
}
