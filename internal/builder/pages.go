package builder

import (
	"strconv"

	"git.home.luguber.info/inful/citypress/internal/catalog"
	"git.home.luguber.info/inful/citypress/internal/compose"
	"git.home.luguber.info/inful/citypress/internal/errors"
	"git.home.luguber.info/inful/citypress/internal/site"
	"git.home.luguber.info/inful/citypress/internal/topology"
)

// Content factories: one per route kind. Each reads only the immutable
// config, catalog and link resolver, so routes can render in any order.

func (b *Builder) renderRoute(route topology.Route) (string, error) {
	features := site.FeaturesFor(b.mode)

	switch route.Kind {
	case topology.KindHome:
		return b.homePage(route, features)
	case topology.KindStateIndex:
		return b.stateIndexPage(route, features)
	case topology.KindCostIndex:
		return b.costIndexPage(route, features)
	case topology.KindHowTo:
		return b.howToPage(route, features)
	case topology.KindContact:
		return b.contactPage(route, features)
	case topology.KindStateDetail:
		return b.stateDetailPage(route, features)
	case topology.KindLocationDetail:
		return b.locationPage(route, features)
	case topology.KindCostForLocation:
		return b.costLocationPage(route, features)
	default:
		return "", errors.New(errors.CategoryInternal, "unhandled route kind").WithContext("kind", string(route.Kind))
	}
}

func (b *Builder) homePage(route topology.Route, features site.Features) (string, error) {
	content := b.cfg.Content

	inner, err := b.composer.Sections(content.Main, compose.Values{})
	if err != nil {
		return "", err
	}
	inner += "\n<hr />\n" + compose.Grid(
		"Choose your city",
		"We provide services nationwide, including in the following cities:",
		b.cityGridItems(func(loc catalog.Location) string { return b.links.Location(loc) }),
	)
	if features.Cost && features.HowTo {
		inner += "\n" + b.alsoAvailable(
			b.links.CostIndex(), content.CostTitle,
			b.links.HowTo(), content.HowToTitle,
		)
	}

	return b.composer.Render(compose.Page{
		Title:         content.HomeTitle,
		Subtitle:      content.HomeSubtitle,
		Canonical:     route.Canonical,
		NavKey:        compose.NavHome,
		Features:      features,
		Inner:         inner,
		ShowImage:     true,
		ShowFooterCTA: true,
	}), nil
}

func (b *Builder) stateIndexPage(route topology.Route, features site.Features) (string, error) {
	content := b.cfg.Content

	inner, err := b.composer.Sections(content.Main, compose.Values{})
	if err != nil {
		return "", err
	}

	var items []compose.GridItem
	for _, group := range catalog.GroupByState(b.locations) {
		items = append(items, compose.GridItem{
			Href:  b.links.State(group.Code),
			Label: catalog.StateName(group.Code),
		})
	}
	inner += "\n<hr />\n" + compose.Grid(
		"Choose your state",
		"We provide services nationwide, including in the following states:",
		items,
	)

	return b.composer.Render(compose.Page{
		Title:         content.HomeTitle,
		Subtitle:      content.HomeSubtitle,
		Canonical:     route.Canonical,
		NavKey:        compose.NavHome,
		Features:      features,
		Inner:         inner,
		ShowImage:     true,
		ShowFooterCTA: true,
	}), nil
}

func (b *Builder) costIndexPage(route topology.Route, features site.Features) (string, error) {
	content := b.cfg.Content

	inner, err := b.composer.Sections(content.Cost, b.costValues(b.cfg.Pricing.CostLow, b.cfg.Pricing.CostHigh))
	if err != nil {
		return "", err
	}
	// Only cost mode has per-location cost pages to index.
	if b.mode == site.ModeCost {
		inner += "\n<hr />\n" + compose.Grid(
			"Choose your city",
			"See local price ranges by city:",
			b.cityGridItems(func(loc catalog.Location) string { return b.links.CostLocation(loc) }),
		)
	}

	return b.composer.Render(compose.Page{
		Title:         content.CostTitle,
		Subtitle:      content.CostSubtitle,
		Canonical:     route.Canonical,
		NavKey:        compose.NavCost,
		Features:      features,
		Inner:         inner,
		ShowImage:     true,
		ShowFooterCTA: true,
	}), nil
}

func (b *Builder) howToPage(route topology.Route, features site.Features) (string, error) {
	content := b.cfg.Content

	inner, err := b.composer.Sections(content.HowTo, compose.Values{})
	if err != nil {
		return "", err
	}

	return b.composer.Render(compose.Page{
		Title:         content.HowToTitle,
		Subtitle:      content.HowToSubtitle,
		Canonical:     route.Canonical,
		NavKey:        compose.NavHowTo,
		Features:      features,
		Inner:         inner,
		ShowImage:     true,
		ShowFooterCTA: true,
	}), nil
}

func (b *Builder) contactPage(route topology.Route, features site.Features) (string, error) {
	content := b.cfg.Content
	return b.composer.Render(compose.Page{
		Title:     content.ContactTitle,
		Subtitle:  content.ContactSubtitle,
		Canonical: route.Canonical,
		NavKey:    compose.NavContact,
		Features:  features,
		Inner:     content.ContactEmbed,
	}), nil
}

func (b *Builder) stateDetailPage(route topology.Route, features site.Features) (string, error) {
	content := b.cfg.Content

	var cities []catalog.Location
	for _, group := range catalog.GroupByState(b.locations) {
		if group.Code == route.State {
			cities = group.Locations
			break
		}
	}

	var items []compose.GridItem
	for _, loc := range cities {
		items = append(items, compose.GridItem{
			Href:  b.links.Location(loc),
			Label: loc.City + ", " + loc.StateCode,
		})
	}
	inner := compose.Grid(
		"Cities we serve in "+catalog.StateName(route.State),
		"Choose your city to see local details and typical pricing ranges.",
		items,
	)
	if features.Cost && features.HowTo {
		inner += "\n" + b.alsoAvailable(
			b.links.CostIndex(), content.CostTitle,
			b.links.HowTo(), content.HowToTitle,
		)
	}

	return b.composer.Render(compose.Page{
		Title:         content.HomeShort + " in " + catalog.StateName(route.State),
		Subtitle:      content.HomeSubtitle,
		Canonical:     route.Canonical,
		NavKey:        compose.NavHome,
		Features:      features,
		Inner:         inner,
		ShowImage:     true,
		ShowFooterCTA: true,
	}), nil
}

func (b *Builder) locationPage(route topology.Route, features site.Features) (string, error) {
	content := b.cfg.Content
	loc := *route.Location

	section := b.locationCostSection(loc)
	main, err := b.composer.Sections(content.Main, compose.Values{})
	if err != nil {
		return "", err
	}

	return b.composer.Render(compose.Page{
		Title:         content.HomeShort + " in " + loc.City + ", " + loc.StateCode,
		Subtitle:      content.HomeSubtitle,
		Canonical:     route.Canonical,
		NavKey:        compose.NavHome,
		Features:      features,
		Inner:         section + "\n<hr />\n" + main,
		ShowImage:     true,
		ShowFooterCTA: true,
	}), nil
}

func (b *Builder) costLocationPage(route topology.Route, features site.Features) (string, error) {
	content := b.cfg.Content
	loc := *route.Location

	section := b.locationCostSection(loc)
	costSections, err := b.composer.Sections(content.Cost, b.locationValues(loc))
	if err != nil {
		return "", err
	}

	inner := section + "\n<hr />\n" + costSections + "\n" + b.alsoAvailable(
		b.links.Location(loc), content.HomeShort+" in "+loc.City+", "+loc.StateCode,
		b.links.HowTo(), content.HowToTitle,
	)

	return b.composer.Render(compose.Page{
		Title:         content.CostTitle + " in " + loc.City + ", " + loc.StateCode,
		Subtitle:      content.CostSubtitle,
		Canonical:     route.Canonical,
		NavKey:        compose.NavCost,
		Features:      features,
		Inner:         inner,
		ShowImage:     true,
		ShowFooterCTA: true,
	}), nil
}

// locationCostSection renders the localized price-range blurb shown on
// location and per-location cost pages.
func (b *Builder) locationCostSection(loc catalog.Location) string {
	content := b.cfg.Content
	values := b.locationValues(loc)

	heading := compose.ParseTemplate(content.LocationCostHeading).RenderText(values)
	body := compose.ParseTemplate(content.LocationCostBody).RenderHTML(values, b.links.Home())
	return "<h2>" + compose.Escape(heading) + "</h2>\n<p>" + body + "</p>"
}

// locationValues scales the base price range by the location's
// cost-of-living factor, truncating to whole dollars.
func (b *Builder) locationValues(loc catalog.Location) compose.Values {
	values := b.costValues(
		int(float64(b.cfg.Pricing.CostLow)*loc.CostFactor),
		int(float64(b.cfg.Pricing.CostHigh)*loc.CostFactor),
	)
	values["City, State"] = compose.TextValue(loc.City + ", " + loc.StateCode)
	return values
}

func (b *Builder) costValues(low, high int) compose.Values {
	dollars := func(n int) compose.Value {
		text := "$" + strconv.Itoa(n)
		return compose.Value{HTML: "<strong>" + text + "</strong>", Text: text}
	}
	return compose.Values{
		"cost_lo": dollars(low),
		"cost_hi": dollars(high),
	}
}

func (b *Builder) cityGridItems(href func(catalog.Location) string) []compose.GridItem {
	items := make([]compose.GridItem, 0, len(b.locations))
	for _, loc := range b.locations {
		items = append(items, compose.GridItem{Href: href(loc), Label: loc.City + ", " + loc.StateCode})
	}
	return items
}

func (b *Builder) alsoAvailable(href1, label1, href2, label2 string) string {
	return "<hr />\n<p class=\"muted\">\n  Also available: " +
		`<a href="` + compose.Escape(href1) + `">` + compose.Escape(label1) + `</a>` +
		"\n  and " +
		`<a href="` + compose.Escape(href2) + `">` + compose.Escape(label2) + `</a>.` +
		"\n</p>"
}
