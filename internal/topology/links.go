package topology

import (
	"strings"

	"git.home.luguber.info/inful/citypress/internal/catalog"
	"git.home.luguber.info/inful/citypress/internal/site"
)

// Origin carries the immutable per-build URL configuration: an optional
// absolute site origin and an optional subdomain base domain. A zero Origin
// produces fully relative links.
type Origin struct {
	site          string
	subdomainBase string
}

// NewOrigin normalizes the configured values: the origin loses any trailing
// slash, the base domain is lowercased with surrounding dots stripped.
func NewOrigin(siteOrigin, subdomainBase string) Origin {
	return Origin{
		site:          strings.TrimRight(strings.TrimSpace(siteOrigin), "/"),
		subdomainBase: strings.Trim(strings.ToLower(strings.TrimSpace(subdomainBase)), "."),
	}
}

// Site returns the configured absolute origin ("" when unset).
func (o Origin) Site() string { return o.site }

// subdomainHost returns the domain that location subdomains attach to:
// the configured base, else the host of the site origin, else "".
func (o Origin) subdomainHost() string {
	if o.subdomainBase != "" {
		return o.subdomainBase
	}
	if o.site == "" {
		return ""
	}
	host := strings.TrimPrefix(o.site, "https://")
	host = strings.TrimPrefix(host, "http://")
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	return host
}

// Resolver produces hrefs and canonical URLs for one (mode, origin) pair.
// It is a pure value: identical inputs always yield identical strings.
type Resolver struct {
	mode   site.Mode
	origin Origin
}

// NewResolver creates a link resolver for one build.
func NewResolver(mode site.Mode, origin Origin) Resolver {
	return Resolver{mode: mode, origin: origin}
}

// Home returns the brand/home link. In subdomain mode with a configured
// origin it is absolute, so location subdomains link back to the root domain.
func (r Resolver) Home() string {
	if r.mode == site.ModeSubdomain && r.origin.site != "" {
		return r.origin.site + "/"
	}
	return "/"
}

// CostIndex returns the cost index link; always a root-domain path.
func (r Resolver) CostIndex() string { return r.rootPath("/cost/") }

// HowTo returns the how-to guide link; always a root-domain path.
func (r Resolver) HowTo() string { return r.rootPath("/how-to/") }

// Contact returns the contact page link; always a root-domain path.
func (r Resolver) Contact() string { return r.rootPath("/contact/") }

// State returns the state index link; only meaningful in state mode.
func (r Resolver) State(code string) string {
	return "/" + Slugify(code) + "/"
}

// Location returns the link to a location page, shaped by mode: flat slug
// path, state-nested path, or absolute subdomain origin.
func (r Resolver) Location(loc catalog.Location) string {
	switch r.mode {
	case site.ModeState:
		return "/" + Slugify(loc.StateCode) + "/" + Slugify(loc.City) + "/"
	case site.ModeSubdomain:
		return r.SubdomainOrigin(loc)
	default:
		return "/" + LocationSlug(loc) + "/"
	}
}

// CostLocation returns the link to a per-location cost page; always a
// root-domain path regardless of mode.
func (r Resolver) CostLocation(loc catalog.Location) string {
	return r.rootPath("/cost/" + LocationSlug(loc) + "/")
}

// SubdomainOrigin returns the absolute per-location origin
// "https://{city}-{st}.{base}/". Without a base domain or site origin the
// link degrades to the relative slug path.
func (r Resolver) SubdomainOrigin(loc catalog.Location) string {
	host := r.origin.subdomainHost()
	if host == "" {
		return "/" + LocationSlug(loc) + "/"
	}
	return "https://" + LocationSlug(loc) + "." + host + "/"
}

// Canonical upgrades a relative path to an absolute URL when an origin is
// configured. Already-absolute URLs pass through unchanged.
func (r Resolver) Canonical(pathOrAbs string) string {
	if strings.HasPrefix(pathOrAbs, "http://") || strings.HasPrefix(pathOrAbs, "https://") {
		return pathOrAbs
	}
	if r.origin.site != "" {
		return r.origin.site + pathOrAbs
	}
	return pathOrAbs
}

// rootPath keeps shared pages on the root domain: relative everywhere except
// subdomain mode with a configured origin, where links must escape the
// location subdomain.
func (r Resolver) rootPath(path string) string {
	if r.mode == site.ModeSubdomain && r.origin.site != "" {
		return r.origin.site + path
	}
	return path
}
