package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidCSV(t *testing.T) {
	in := "city,state,col\nReno,NV,1.2\nAustin,tx,0.95\n"
	locs, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, locs, 2)

	assert.Equal(t, Location{City: "Reno", StateCode: "NV", CostFactor: 1.2}, locs[0])
	// state codes are uppercased on load
	assert.Equal(t, "TX", locs[1].StateCode)
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"missing header":   "town,state,col\nReno,NV,1.2\n",
		"empty city":       "city,state,col\n,NV,1.2\n",
		"empty col":        "city,state,col\nReno,NV,\n",
		"non-numeric col":  "city,state,col\nReno,NV,cheap\n",
		"zero col":         "city,state,col\nReno,NV,0\n",
		"negative col":     "city,state,col\nReno,NV,-1.5\n",
		"three-letter st":  "city,state,col\nReno,NEV,1.2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(in))
			require.Error(t, err)
		})
	}
}

func TestParseReportsLineNumbers(t *testing.T) {
	in := "city,state,col\nReno,NV,1.2\nAustin,TX,bogus\n"
	_, err := Parse(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseEmptyCatalogIsValid(t *testing.T) {
	locs, err := Parse(strings.NewReader("city,state,col\n"))
	require.NoError(t, err)
	assert.Empty(t, locs)
}

func TestGroupByState(t *testing.T) {
	locs := []Location{
		{City: "Sparks", StateCode: "NV", CostFactor: 1.0},
		{City: "austin", StateCode: "TX", CostFactor: 1.0},
		{City: "Reno", StateCode: "NV", CostFactor: 1.0},
		{City: "Dallas", StateCode: "TX", CostFactor: 1.0},
	}
	groups := GroupByState(locs)
	require.Len(t, groups, 2)

	// states ascending by code
	assert.Equal(t, "NV", groups[0].Code)
	assert.Equal(t, "TX", groups[1].Code)

	// cities case-insensitively ascending
	assert.Equal(t, "Reno", groups[0].Locations[0].City)
	assert.Equal(t, "Sparks", groups[0].Locations[1].City)
	assert.Equal(t, "austin", groups[1].Locations[0].City)
	assert.Equal(t, "Dallas", groups[1].Locations[1].City)
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "Nevada", StateName("NV"))
	assert.Equal(t, "Nevada", StateName("nv"))
	assert.Equal(t, "ZZ", StateName("zz"))
}
