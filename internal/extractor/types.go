package extractor

import "sort"

// VarBinding is the universal record for a discovered variable occurrence:
// a let binding, function parameter, loop variable, or pattern match.
type VarBinding struct {
	Name      string `json:"name"`       // Identifier text
	Mutable   bool   `json:"mutable"`    // Whether the binding is declared mutable
	File      string `json:"file"`       // Path to the source file
	Line      int    `json:"line"`       // 1-based line number of the declaration
	Context   string `json:"context"`    // The source line containing the binding
	Kind      string `json:"kind"`       // How the binding arose (let, parameter, destructured, ...)
	VarType   string `json:"type"`       // Descriptive type label
	BasicType string `json:"basic_type"` // Simplified type for coarse grouping
	Scope     string `json:"scope"`      // Enclosing function name, empty at module level
}

// Declaration records a top-level construct: function, struct, or enum.
type Declaration struct {
	Name     string `json:"name"`
	DeclType string `json:"type"` // "function", "struct", or "enum"
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// FileReport collects everything extracted from a single file, in
// traversal order. Bindings land in exactly one of the two lists,
// decided by Mutable alone.
type FileReport struct {
	Mutable      []VarBinding
	Immutable    []VarBinding
	Declarations []Declaration
}

func (r *FileReport) addBinding(v VarBinding) {
	if v.Mutable {
		r.Mutable = append(r.Mutable, v)
	} else {
		r.Immutable = append(r.Immutable, v)
	}
}

func (r *FileReport) addDeclaration(d Declaration) {
	r.Declarations = append(r.Declarations, d)
}

// Result is the run-wide accumulation across all scanned files.
// The orchestrator that merges file reports is the only writer.
type Result struct {
	Mutable      []VarBinding
	Immutable    []VarBinding
	Declarations []Declaration
}

// Merge appends one file's records, preserving within-file order.
func (r *Result) Merge(fr *FileReport) {
	if fr == nil {
		return
	}
	r.Mutable = append(r.Mutable, fr.Mutable...)
	r.Immutable = append(r.Immutable, fr.Immutable...)
	r.Declarations = append(r.Declarations, fr.Declarations...)
}

// SortByName orders both binding lists by name. The sort is stable so
// same-named bindings keep their traversal order, and it never touches
// file or line fields.
func (r *Result) SortByName() {
	sort.SliceStable(r.Mutable, func(i, j int) bool {
		return r.Mutable[i].Name < r.Mutable[j].Name
	})
	sort.SliceStable(r.Immutable, func(i, j int) bool {
		return r.Immutable[i].Name < r.Immutable[j].Name
	})
}
