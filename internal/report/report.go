// Package report aggregates a roster into grand totals and renders the
// fixed-format scholarship report.
package report

import (
	"github.com/roach88/scholar/internal/award"
	"github.com/roach88/scholar/internal/registry"
)

// Report is a roster plus its grand totals.
type Report struct {
	Students         []registry.Entry `json:"students"`
	Totals           award.Result     `json:"totals"`
	DeductionPercent int              `json:"deduction_percent"`
}

// Build sums total award, deduction and net payment across entries.
// Totals are recomputed on every call; nothing is cached.
func Build(entries []registry.Entry) Report {
	if entries == nil {
		entries = []registry.Entry{}
	}

	var totals award.Result
	for _, e := range entries {
		totals = totals.Add(e.Result)
	}

	return Report{
		Students:         entries,
		Totals:           totals,
		DeductionPercent: award.DeductionPercent,
	}
}

// Empty reports whether the report has no students.
func (r Report) Empty() bool {
	return len(r.Students) == 0
}
