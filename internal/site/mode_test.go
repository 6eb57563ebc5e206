package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode("state")
	require.NoError(t, err)
	assert.Equal(t, ModeState, m)

	// underscore alias from older configs
	m, err = ParseMode("regular_city_only")
	require.NoError(t, err)
	assert.Equal(t, ModeRegularCityOnly, m)

	_, err = ParseMode("nationwide")
	require.Error(t, err)
}

func TestNormalizeModeDefaultsToRegular(t *testing.T) {
	assert.Equal(t, ModeRegular, NormalizeMode(""))
	assert.Equal(t, ModeRegular, NormalizeMode("bogus"))
	assert.Equal(t, ModeSubdomain, NormalizeMode(" SUBDOMAIN "))
}

func TestModeValid(t *testing.T) {
	for _, m := range []Mode{ModeRegular, ModeCost, ModeState, ModeSubdomain, ModeRegularCityOnly} {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, Mode("nationwide").Valid())
}

func TestFeaturesForTables(t *testing.T) {
	all := Features{Cost: true, HowTo: true, Contact: true}
	contactOnly := Features{Contact: true}

	assert.Equal(t, all, FeaturesFor(ModeRegular))
	assert.Equal(t, all, FeaturesFor(ModeCost))
	assert.Equal(t, all, FeaturesFor(ModeSubdomain))
	assert.Equal(t, contactOnly, FeaturesFor(ModeState))
	assert.Equal(t, contactOnly, FeaturesFor(ModeRegularCityOnly))
}

func TestFeaturesForUnknownModeFallsBackToRegular(t *testing.T) {
	// Permissive fallback is part of the contract, not a latent bug.
	assert.Equal(t, FeaturesFor(ModeRegular), FeaturesFor(Mode("nationwide")))
}
