package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanSource(t *testing.T, source string) *FileReport {
	t.Helper()
	rep := &FileReport{}
	scanLines("broken.rs", strings.Split(source, "\n"), rep)
	return rep
}

func TestScanLines_LetBindings(t *testing.T) {
	rep := scanSource(t, strings.Join([]string{
		"let mut counter = 0;",
		"let name: String = read_name(;", // broken, still a let line
		`let greeting = "hello";`,
	}, "\n"))

	require.Len(t, rep.Mutable, 1)
	require.Len(t, rep.Immutable, 2)

	counter := rep.Mutable[0]
	assert.Equal(t, "counter", counter.Name)
	assert.True(t, counter.Mutable)
	assert.Equal(t, 1, counter.Line)
	assert.Equal(t, "broken.rs", counter.File)
	assert.Equal(t, "inferred", counter.Kind)
	assert.Equal(t, "integer", counter.VarType)
	assert.Equal(t, "i32", counter.BasicType)
	assert.Empty(t, counter.Scope, "the fallback path never names a scope")

	name := rep.Immutable[0]
	assert.Equal(t, "name", name.Name)
	assert.Equal(t, "String", name.Kind)
	assert.Equal(t, "owned string", name.VarType)
	assert.Equal(t, "String", name.BasicType)

	greeting := rep.Immutable[1]
	assert.Equal(t, "greeting", greeting.Name)
	assert.Equal(t, "string", greeting.VarType)
	assert.Equal(t, "String", greeting.BasicType)
}

func TestScanLines_SkipsComments(t *testing.T) {
	rep := scanSource(t, strings.Join([]string{
		"// let mut ghost = 1;",
		"/*",
		"let mut phantom = 2;",
		"*/",
		"let mut real = 3;",
	}, "\n"))

	require.Len(t, rep.Mutable, 1)
	assert.Equal(t, "real", rep.Mutable[0].Name)
	assert.Equal(t, 5, rep.Mutable[0].Line)
}

func TestScanLines_ForLoop(t *testing.T) {
	rep := scanSource(t, "for mut total in values.iter_mut() {")

	require.Len(t, rep.Mutable, 1)
	v := rep.Mutable[0]
	assert.Equal(t, "total", v.Name)
	assert.Equal(t, "inferred from loop", v.Kind)
	assert.Equal(t, "mutable reference to collection element", v.VarType)
}

func TestScanLines_MutParams(t *testing.T) {
	rep := scanSource(t, "fn update(mut count: u32, name: &str, mut items: Vec<i32>) -> bool {")

	require.Len(t, rep.Mutable, 2)

	byName := make(map[string]VarBinding)
	for _, v := range rep.Mutable {
		byName[v.Name] = v
	}

	count, ok := byName["count"]
	require.True(t, ok)
	assert.Equal(t, "u32", count.Kind)
	assert.Equal(t, "unsigned integer (u32)", count.VarType)

	items, ok := byName["items"]
	require.True(t, ok)
	assert.Equal(t, "Vec<i32>", items.Kind)
	assert.Equal(t, "vector of integer (i32)", items.VarType)

	// The immutable parameter is not part of the inventory.
	_, ok = byName["name"]
	assert.False(t, ok)
}

func TestScanLines_PatternMatches(t *testing.T) {
	rep := scanSource(t, strings.Join([]string{
		"if let Some(mut value) = maybe {",
		"while let Ok(mut chunk) = reader.next() {",
	}, "\n"))

	require.Len(t, rep.Mutable, 2)
	assert.Equal(t, "value", rep.Mutable[0].Name)
	assert.Equal(t, "pattern matched", rep.Mutable[0].Kind)
	assert.Equal(t, "optional value content", rep.Mutable[0].VarType)
	assert.Equal(t, "chunk", rep.Mutable[1].Name)
	assert.Equal(t, "success result value", rep.Mutable[1].VarType)
}

func TestScanLines_Declarations(t *testing.T) {
	rep := scanSource(t, strings.Join([]string{
		"fn main() {",
		"struct Config {",
		"enum Mode {",
	}, "\n"))

	require.Len(t, rep.Declarations, 3)

	byName := make(map[string]Declaration)
	for _, d := range rep.Declarations {
		byName[d.Name] = d
	}

	assert.Equal(t, "function", byName["main"].DeclType)
	assert.Equal(t, "struct", byName["Config"].DeclType)
	assert.Equal(t, "enum", byName["Mode"].DeclType)
	assert.Equal(t, 2, byName["Config"].Line)
}

func TestScanLines_Destructuring(t *testing.T) {
	rep := scanSource(t, "let (first, second) = make_pair();")

	// Destructuring on this path yields a single record for the first
	// bound name.
	require.Len(t, rep.Immutable, 1)
	v := rep.Immutable[0]
	assert.Equal(t, "first", v.Name)
	assert.Equal(t, "tuple or struct field", v.Kind)
}

func TestScanLines_DestructuringWithAnnotation(t *testing.T) {
	rep := scanSource(t, "let (a, b): (i32, String) = pair;")

	require.Len(t, rep.Immutable, 1)
	v := rep.Immutable[0]
	assert.Equal(t, "a", v.Name)
	assert.Equal(t, "(i32, String)", v.Kind)
	assert.Equal(t, "tuple of (integer (i32), owned string)", v.VarType)
}

func TestMutNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, mutNames("(mut a, mut b)"))
	assert.Nil(t, mutNames("permutation of values"))
	assert.Equal(t, []string{"x"}, mutNames("let mut x = 1;"))
}
