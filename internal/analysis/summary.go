// Package analysis computes aggregate views over extraction results.
package analysis

import (
	"sort"

	"rustscope/internal/extractor"
)

// Summary aggregates one run's records.
type Summary struct {
	MutableCount     int
	ImmutableCount   int
	DeclarationCount int
	MutableRatio     float64        // mutable / total bindings, 0 when empty
	ByScope          map[string]int // bindings per enclosing function ("" = module scope)
	ByBasicType      map[string]int // bindings per coarse type
}

// Analyzer builds summaries from a result set it never mutates.
type Analyzer struct {
	res *extractor.Result
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(res *extractor.Result) *Analyzer {
	return &Analyzer{res: res}
}

// Summarize tallies the run.
func (a *Analyzer) Summarize() *Summary {
	s := &Summary{
		MutableCount:     len(a.res.Mutable),
		ImmutableCount:   len(a.res.Immutable),
		DeclarationCount: len(a.res.Declarations),
		ByScope:          make(map[string]int),
		ByBasicType:      make(map[string]int),
	}

	total := s.MutableCount + s.ImmutableCount
	if total > 0 {
		s.MutableRatio = float64(s.MutableCount) / float64(total)
	}

	for _, list := range [][]extractor.VarBinding{a.res.Mutable, a.res.Immutable} {
		for _, v := range list {
			s.ByScope[v.Scope]++
			s.ByBasicType[v.BasicType]++
		}
	}

	return s
}

// TopScopes returns up to n scopes ordered by binding count, ties broken
// by name so output stays deterministic.
func (s *Summary) TopScopes(n int) []string {
	type entry struct {
		scope string
		count int
	}
	entries := make([]entry, 0, len(s.ByScope))
	for scope, count := range s.ByScope {
		entries = append(entries, entry{scope, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].scope < entries[j].scope
	})

	if n > len(entries) {
		n = len(entries)
	}
	scopes := make([]string, 0, n)
	for _, e := range entries[:n] {
		scopes = append(scopes, e.scope)
	}
	return scopes
}
