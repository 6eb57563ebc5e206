package topology

import (
	"testing"

	"git.home.luguber.info/inful/citypress/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Austin", "austin"},
		{"St. Paul", "st-paul"},
		{"ST PAUL", "st-paul"},
		{"Winston-Salem", "winston-salem"},
		{"Land O' Lakes", "land-o-lakes"},
		{"Tyler & Sons", "tyler-and-sons"},
		{"  Reno  ", "reno"},
		{"---", ""},
		{"", ""},
		{"Coeur d'Alene", "coeur-d-alene"},
		{"100 Mile House", "100-mile-house"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyCollisionsAreDocumentedBehavior(t *testing.T) {
	// Distinct display names can collide; the builder warns, nothing here
	// tries to disambiguate.
	a := Slugify("St. Paul")
	b := Slugify("St Paul")
	assert.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

func TestLocationSlug(t *testing.T) {
	loc := catalog.Location{City: "Austin", StateCode: "TX", CostFactor: 1.1}
	assert.Equal(t, "austin-tx", LocationSlug(loc))
}
