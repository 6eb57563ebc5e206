package topology

import (
	"git.home.luguber.info/inful/citypress/internal/catalog"
	"git.home.luguber.info/inful/citypress/internal/errors"
	"git.home.luguber.info/inful/citypress/internal/site"
)

// RouteKind identifies the logical page a route renders.
type RouteKind string

const (
	KindHome            RouteKind = "home"
	KindCostIndex       RouteKind = "cost-index"
	KindCostForLocation RouteKind = "cost-location"
	KindHowTo           RouteKind = "how-to"
	KindContact         RouteKind = "contact"
	KindStateIndex      RouteKind = "state-index"
	KindStateDetail     RouteKind = "state"
	KindLocationDetail  RouteKind = "location"
)

// Route is one page's identity: kind, output path, canonical URL, and the
// catalog reference it renders (if any).
type Route struct {
	Kind      RouteKind
	Path      string // relative, begins and ends with "/"
	Canonical string // Path, or absolute when an origin applies
	Location  *catalog.Location
	State     string // state code for KindStateDetail
}

// ResolveRoutes computes the full route table for a mode and catalog.
// Table order is the sitemap contract: home, enabled shared pages
// (cost, how-to, contact), then location-derived routes.
//
// An unknown mode is a fatal configuration error; no partial table is
// returned.
func ResolveRoutes(mode site.Mode, locations []catalog.Location, origin Origin) ([]Route, error) {
	if !mode.Valid() {
		return nil, errors.New(errors.CategoryConfig, "unknown site mode").WithContext("mode", string(mode))
	}

	links := NewResolver(mode, origin)
	features := site.FeaturesFor(mode)

	homeKind := KindHome
	if mode == site.ModeState {
		homeKind = KindStateIndex
	}
	routes := []Route{{Kind: homeKind, Path: "/", Canonical: links.Canonical("/")}}

	if features.Cost {
		routes = append(routes, Route{Kind: KindCostIndex, Path: "/cost/", Canonical: links.Canonical("/cost/")})
	}
	if features.HowTo {
		routes = append(routes, Route{Kind: KindHowTo, Path: "/how-to/", Canonical: links.Canonical("/how-to/")})
	}
	if features.Contact {
		routes = append(routes, Route{Kind: KindContact, Path: "/contact/", Canonical: links.Canonical("/contact/")})
	}

	switch mode {
	case site.ModeRegular, site.ModeRegularCityOnly:
		routes = append(routes, flatLocationRoutes(locations, links)...)

	case site.ModeCost:
		routes = append(routes, flatLocationRoutes(locations, links)...)
		for i := range locations {
			loc := &locations[i]
			path := "/cost/" + LocationSlug(*loc) + "/"
			routes = append(routes, Route{
				Kind:      KindCostForLocation,
				Path:      path,
				Canonical: links.Canonical(path),
				Location:  loc,
			})
		}

	case site.ModeState:
		for _, group := range catalog.GroupByState(locations) {
			statePath := "/" + Slugify(group.Code) + "/"
			routes = append(routes, Route{
				Kind:      KindStateDetail,
				Path:      statePath,
				Canonical: links.Canonical(statePath),
				State:     group.Code,
			})
			for i := range group.Locations {
				loc := group.Locations[i]
				path := "/" + Slugify(loc.StateCode) + "/" + Slugify(loc.City) + "/"
				routes = append(routes, Route{
					Kind:      KindLocationDetail,
					Path:      path,
					Canonical: links.Canonical(path),
					Location:  &group.Locations[i],
				})
			}
		}

	case site.ModeSubdomain:
		for i := range locations {
			loc := &locations[i]
			// Pages land in relative folders for local preview, but the
			// published identity of a location is its subdomain origin.
			routes = append(routes, Route{
				Kind:      KindLocationDetail,
				Path:      "/" + LocationSlug(*loc) + "/",
				Canonical: links.SubdomainOrigin(*loc),
				Location:  loc,
			})
		}
	}

	return routes, nil
}

func flatLocationRoutes(locations []catalog.Location, links Resolver) []Route {
	routes := make([]Route, 0, len(locations))
	for i := range locations {
		loc := &locations[i]
		path := "/" + LocationSlug(*loc) + "/"
		routes = append(routes, Route{
			Kind:      KindLocationDetail,
			Path:      path,
			Canonical: links.Canonical(path),
			Location:  loc,
		})
	}
	return routes
}
