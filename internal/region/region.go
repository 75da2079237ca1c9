// Package region holds the fixed list of states offered for student entry.
//
// The list is advisory. The store accepts any state, so callers use IsKnown
// only to warn about probable typos.
package region

import "github.com/roach88/scholar/internal/record"

// States lists the 36 Nigerian states and the FCT in their normalized
// (upper-case) form. Order is the display order.
var States = []string{
	"ABIA", "ADAMAWA", "AKWA IBOM", "ANAMBRA", "BAUCHI", "BAYELSA", "BENUE", "BORNO",
	"CROSS RIVER", "DELTA", "EBONYI", "EDO", "EKITI", "ENUGU", "GOMBE", "IMO",
	"JIGAWA", "KADUNA", "KANO", "KATSINA", "KEBBI", "KOGI", "KWARA", "LAGOS",
	"NASARAWA", "NIGER", "OGUN", "ONDO", "OSUN", "OYO", "PLATEAU", "RIVERS",
	"SOKOTO", "TARABA", "YOBE", "ZAMFARA", "FCT",
}

// Default is the state preselected for new entries.
const Default = "ABIA"

var known = func() map[string]bool {
	m := make(map[string]bool, len(States))
	for _, s := range States {
		m[s] = true
	}
	return m
}()

// IsKnown reports whether state, after normalization, is in States.
func IsKnown(state string) bool {
	return known[record.NormalizeState(state)]
}

// Coverage counts how many of the given normalized states are known.
// Unknown values are returned in first-seen order without duplicates.
func Coverage(states []string) (knownCount int, unknown []string) {
	seen := make(map[string]bool)
	for _, s := range states {
		if known[s] {
			knownCount++
			continue
		}
		if !seen[s] {
			seen[s] = true
			unknown = append(unknown, s)
		}
	}
	return knownCount, unknown
}
