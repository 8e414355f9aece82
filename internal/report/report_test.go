package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rustscope/internal/extractor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *extractor.Result {
	return &extractor.Result{
		Mutable: []extractor.VarBinding{
			{
				Name: "counter", Mutable: true, File: "src/main.rs", Line: 3,
				Context: "    let mut counter = 0;", Kind: "inferred",
				VarType: "integer", BasicType: "i32", Scope: "main",
			},
		},
		Immutable: []extractor.VarBinding{
			{
				Name: "name", File: "src/main.rs", Line: 4,
				Context: `let name = "hi";`, Kind: "inferred",
				VarType: "string", BasicType: "String", Scope: "main",
			},
		},
		Declarations: []extractor.Declaration{
			{Name: "main", DeclType: "function", File: "src/main.rs", Line: 1},
		},
	}
}

func sampleMeta() Metadata {
	return Metadata{ProjectName: "demo", Version: "0.1.0", Timestamp: "2026-01-02T03:04:05Z"}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, sampleResult(), sampleMeta(), false)
	out := buf.String()

	assert.Contains(t, out, "Project Name: demo")
	assert.Contains(t, out, "Mutable Variables (1):")
	assert.Contains(t, out, "Immutable Variables (1):")
	assert.Contains(t, out, "Declarations (1):")
	assert.Contains(t, out, "counter (mutable): let mut counter = 0; at src/main.rs:3")
	assert.Contains(t, out, "scope: main")
	assert.NotContains(t, out, "vscode://")
}

func TestFormatBinding_WithLink(t *testing.T) {
	v := sampleResult().Mutable[0]
	line := FormatBinding(v, true)
	assert.Contains(t, line, "vscode://file/")
	assert.Contains(t, line, ":3)")
}

func TestWriteFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(path, "json", sampleResult(), sampleMeta(), false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed struct {
		Metadata struct {
			ProjectName      string `json:"project_name"`
			MutableCount     int    `json:"mutable_variable_count"`
			ImmutableCount   int    `json:"immutable_variable_count"`
			DeclarationCount int    `json:"declaration_count"`
		} `json:"metadata"`
		MutableVariables []struct {
			Name      string `json:"name"`
			BasicType string `json:"basic_type"`
			Link      string `json:"vscode_link"`
		} `json:"mutable_variables"`
		ImmutableVariables []json.RawMessage `json:"immutable_variables"`
		Declarations       []json.RawMessage `json:"declarations"`
	}
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "demo", parsed.Metadata.ProjectName)
	assert.Equal(t, 1, parsed.Metadata.MutableCount)
	assert.Equal(t, 1, parsed.Metadata.ImmutableCount)
	assert.Equal(t, 1, parsed.Metadata.DeclarationCount)
	require.Len(t, parsed.MutableVariables, 1)
	assert.Equal(t, "counter", parsed.MutableVariables[0].Name, "mutability is carried by list membership, not a field")
	assert.Equal(t, "i32", parsed.MutableVariables[0].BasicType)
	assert.Empty(t, parsed.MutableVariables[0].Link, "links are opt-in")
	assert.Len(t, parsed.ImmutableVariables, 1)
	assert.Len(t, parsed.Declarations, 1)
}

func TestWriteFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteFile(path, "csv", sampleResult(), sampleMeta(), false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "mutability,name,file,line,context,kind,type,basic_type,scope")
	assert.Contains(t, out, "mutable,counter,src/main.rs,3")
	assert.Contains(t, out, "immutable,name,src/main.rs,4")
	assert.Contains(t, out, "function,main,src/main.rs,1")
	assert.NotContains(t, out, "vscode_link")
}

func TestWriteFile_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteFile(path, "text", sampleResult(), sampleMeta(), false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "Project Name: demo")
	assert.Contains(t, out, "counter")
	assert.False(t, strings.Contains(out, "\x1b["), "file output carries no ANSI codes")
}

func TestWriteFile_InvalidFormat(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "out.xml"), "xml", sampleResult(), sampleMeta(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
