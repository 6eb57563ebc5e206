// Package catalog owns the location dataset: the validated list of city
// records driving per-location page generation, plus state grouping helpers.
package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Location is one validated catalog row. Immutable once loaded; the whole
// build reads the same records.
type Location struct {
	City       string
	StateCode  string  // 2-letter code, uppercased
	CostFactor float64 // cost-of-living multiplier, > 0
}

// StateGroup is the set of locations sharing a state code.
type StateGroup struct {
	Code      string
	Locations []Location
}

var cityCollator = collate.New(language.English, collate.IgnoreCase)

// GroupByState partitions locations by state code. Groups are ordered by
// code ascending; within a group, cities sort case-insensitively ascending.
func GroupByState(locations []Location) []StateGroup {
	byCode := make(map[string][]Location)
	for _, loc := range locations {
		byCode[loc.StateCode] = append(byCode[loc.StateCode], loc)
	}

	codes := make([]string, 0, len(byCode))
	for code := range byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	groups := make([]StateGroup, 0, len(codes))
	for _, code := range codes {
		locs := byCode[code]
		sort.SliceStable(locs, func(i, j int) bool {
			return cityCollator.CompareString(locs[i].City, locs[j].City) < 0
		})
		groups = append(groups, StateGroup{Code: code, Locations: locs})
	}
	return groups
}
