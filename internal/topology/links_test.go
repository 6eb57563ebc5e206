package topology

import (
	"testing"

	"git.home.luguber.info/inful/citypress/internal/catalog"
	"git.home.luguber.info/inful/citypress/internal/site"
	"github.com/stretchr/testify/assert"
)

var austin = catalog.Location{City: "Austin", StateCode: "TX", CostFactor: 1.1}

func TestHrefsRelativeBuild(t *testing.T) {
	r := NewResolver(site.ModeRegular, NewOrigin("", ""))

	assert.Equal(t, "/", r.Home())
	assert.Equal(t, "/cost/", r.CostIndex())
	assert.Equal(t, "/how-to/", r.HowTo())
	assert.Equal(t, "/contact/", r.Contact())
	assert.Equal(t, "/austin-tx/", r.Location(austin))
	assert.Equal(t, "/cost/austin-tx/", r.CostLocation(austin))
}

func TestHrefsStateMode(t *testing.T) {
	r := NewResolver(site.ModeState, NewOrigin("", ""))
	assert.Equal(t, "/tx/", r.State("TX"))
	assert.Equal(t, "/tx/austin/", r.Location(austin))
}

func TestHrefsSubdomainMode(t *testing.T) {
	r := NewResolver(site.ModeSubdomain, NewOrigin("https://example.com", "example.com"))

	// shared pages escape the location subdomain back to the root domain
	assert.Equal(t, "https://example.com/", r.Home())
	assert.Equal(t, "https://example.com/cost/", r.CostIndex())
	assert.Equal(t, "https://example.com/contact/", r.Contact())
	assert.Equal(t, "https://austin-tx.example.com/", r.Location(austin))
}

func TestSubdomainHostFallsBackToOriginHost(t *testing.T) {
	r := NewResolver(site.ModeSubdomain, NewOrigin("https://example.com/", ""))
	assert.Equal(t, "https://austin-tx.example.com/", r.SubdomainOrigin(austin))

	// neither base nor origin: degrade to relative path
	bare := NewResolver(site.ModeSubdomain, NewOrigin("", ""))
	assert.Equal(t, "/austin-tx/", bare.SubdomainOrigin(austin))
	assert.Equal(t, "/", bare.Home())
}

func TestCanonical(t *testing.T) {
	rel := NewResolver(site.ModeRegular, NewOrigin("", ""))
	abs := NewResolver(site.ModeRegular, NewOrigin("https://example.com/", ""))

	assert.Equal(t, "/austin-tx/", rel.Canonical("/austin-tx/"))
	assert.Equal(t, "https://example.com/austin-tx/", abs.Canonical("/austin-tx/"))

	// idempotent over already-absolute URLs
	assert.Equal(t, "https://austin-tx.example.com/", abs.Canonical("https://austin-tx.example.com/"))
	assert.Equal(t, "http://other.test/", abs.Canonical("http://other.test/"))
}

func TestResolverIsPure(t *testing.T) {
	r := NewResolver(site.ModeSubdomain, NewOrigin("https://example.com", "example.com"))
	first := r.Location(austin)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, r.Location(austin))
	}
}
