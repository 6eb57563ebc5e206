// Package site defines the closed set of site modes and the per-mode
// feature tables that drive topology and page composition.
package site

import (
	"git.home.luguber.info/inful/citypress/internal/foundation/normalization"
)

// Mode selects the URL topology and feature set for an entire build.
type Mode string

const (
	ModeRegular         Mode = "regular"
	ModeCost            Mode = "cost"
	ModeState           Mode = "state"
	ModeSubdomain       Mode = "subdomain"
	ModeRegularCityOnly Mode = "regular-city-only"
)

var modeNormalizer = normalization.NewNormalizer(map[string]Mode{
	"regular":           ModeRegular,
	"cost":              ModeCost,
	"state":             ModeState,
	"subdomain":         ModeSubdomain,
	"regular-city-only": ModeRegularCityOnly,
	"regular_city_only": ModeRegularCityOnly,
}, ModeRegular)

// NormalizeMode maps a raw string onto a Mode, defaulting to ModeRegular.
func NormalizeMode(raw string) Mode {
	return modeNormalizer.Normalize(raw)
}

// ParseMode maps a raw string onto a Mode, rejecting unknown values.
func ParseMode(raw string) (Mode, error) {
	return modeNormalizer.NormalizeWithError(raw)
}

// Valid reports whether m is one of the five enumerated modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeRegular, ModeCost, ModeState, ModeSubdomain, ModeRegularCityOnly:
		return true
	}
	return false
}

func (m Mode) String() string { return string(m) }
