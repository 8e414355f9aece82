package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"rustscope/internal/extractor"
)

// WriteFile serializes the results to path in the requested format. An
// unrecognized format is a configuration error and aborts the run.
func WriteFile(path, format string, res *extractor.Result, meta Metadata, link bool) error {
	switch format {
	case "json":
		return writeJSON(path, res, meta, link)
	case "csv":
		return writeCSV(path, res, meta, link)
	case "text":
		return writeText(path, res, meta, link)
	default:
		return fmt.Errorf("invalid output format: %s", format)
	}
}

type jsonMetadata struct {
	ProjectName    string `json:"project_name"`
	Version        string `json:"version"`
	Datetime       string `json:"datetime"`
	MutableCount   int    `json:"mutable_variable_count"`
	ImmutableCount int    `json:"immutable_variable_count"`
	DeclCount      int    `json:"declaration_count"`
}

type jsonBinding struct {
	Name       string `json:"name"`
	File       string `json:"file"`
	Line       int    `json:"line"`
	Context    string `json:"context"`
	Kind       string `json:"kind"`
	Type       string `json:"type"`
	BasicType  string `json:"basic_type"`
	Scope      string `json:"scope"`
	EditorLink string `json:"vscode_link,omitempty"`
}

type jsonDeclaration struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	File       string `json:"file"`
	Line       int    `json:"line"`
	EditorLink string `json:"vscode_link,omitempty"`
}

type jsonOutput struct {
	Metadata     jsonMetadata      `json:"metadata"`
	Mutable      []jsonBinding     `json:"mutable_variables"`
	Immutable    []jsonBinding     `json:"immutable_variables"`
	Declarations []jsonDeclaration `json:"declarations"`
}

func writeJSON(path string, res *extractor.Result, meta Metadata, link bool) error {
	out := jsonOutput{
		Metadata: jsonMetadata{
			ProjectName:    meta.ProjectName,
			Version:        meta.Version,
			Datetime:       meta.Timestamp,
			MutableCount:   len(res.Mutable),
			ImmutableCount: len(res.Immutable),
			DeclCount:      len(res.Declarations),
		},
		Mutable:      make([]jsonBinding, 0, len(res.Mutable)),
		Immutable:    make([]jsonBinding, 0, len(res.Immutable)),
		Declarations: make([]jsonDeclaration, 0, len(res.Declarations)),
	}

	for _, v := range res.Mutable {
		out.Mutable = append(out.Mutable, toJSONBinding(v, link))
	}
	for _, v := range res.Immutable {
		out.Immutable = append(out.Immutable, toJSONBinding(v, link))
	}
	for _, d := range res.Declarations {
		jd := jsonDeclaration{Name: d.Name, Type: d.DeclType, File: d.File, Line: d.Line}
		if link {
			jd.EditorLink = EditorLink(d.File, d.Line)
		}
		out.Declarations = append(out.Declarations, jd)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func toJSONBinding(v extractor.VarBinding, link bool) jsonBinding {
	b := jsonBinding{
		Name:      v.Name,
		File:      v.File,
		Line:      v.Line,
		Context:   strings.TrimSpace(v.Context),
		Kind:      v.Kind,
		Type:      v.VarType,
		BasicType: v.BasicType,
		Scope:     v.Scope,
	}
	if link {
		b.EditorLink = EditorLink(v.File, v.Line)
	}
	return b
}

func writeCSV(path string, res *extractor.Result, meta Metadata, link bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	records := [][]string{
		{"Project Name", meta.ProjectName},
		{"Version", meta.Version},
		{"Analysis Run At", meta.Timestamp},
		{""},
	}

	header := []string{"mutability", "name", "file", "line", "context", "kind", "type", "basic_type", "scope"}
	if link {
		header = append(header, "vscode_link")
	}
	records = append(records, header)

	appendBinding := func(mutability string, v extractor.VarBinding) {
		row := []string{mutability, v.Name, v.File, strconv.Itoa(v.Line),
			strings.TrimSpace(v.Context), v.Kind, v.VarType, v.BasicType, v.Scope}
		if link {
			row = append(row, EditorLink(v.File, v.Line))
		}
		records = append(records, row)
	}
	for _, v := range res.Mutable {
		appendBinding("mutable", v)
	}
	for _, v := range res.Immutable {
		appendBinding("immutable", v)
	}

	declHeader := []string{"type", "name", "file", "line"}
	if link {
		declHeader = append(declHeader, "vscode_link")
	}
	records = append(records, declHeader)
	for _, d := range res.Declarations {
		row := []string{d.DeclType, d.Name, d.File, strconv.Itoa(d.Line)}
		if link {
			row = append(row, EditorLink(d.File, d.Line))
		}
		records = append(records, row)
	}

	return w.WriteAll(records)
}

func writeText(path string, res *extractor.Result, meta Metadata, link bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "Project Information")
	fmt.Fprintln(f, "-------------------")
	fmt.Fprintf(f, "Project Name: %s\n", meta.ProjectName)
	fmt.Fprintf(f, "Version: %s\n", meta.Version)
	fmt.Fprintf(f, "Analysis Run At: %s\n\n", meta.Timestamp)

	fmt.Fprintf(f, "Mutable Variables (%d)\n", len(res.Mutable))
	fmt.Fprintln(f, "-------------------")
	for _, v := range res.Mutable {
		fmt.Fprintln(f, FormatBinding(v, link))
	}

	fmt.Fprintf(f, "\nImmutable Variables (%d)\n", len(res.Immutable))
	fmt.Fprintln(f, "---------------------")
	for _, v := range res.Immutable {
		fmt.Fprintln(f, FormatBinding(v, link))
	}

	fmt.Fprintf(f, "\nDeclarations (%d)\n", len(res.Declarations))
	fmt.Fprintln(f, "----------------")
	for _, d := range res.Declarations {
		fmt.Fprintln(f, FormatDeclaration(d, link))
	}

	return nil
}
