package compose

import (
	"strings"

	"git.home.luguber.info/inful/citypress/internal/config"
	"git.home.luguber.info/inful/citypress/internal/site"
	"git.home.luguber.info/inful/citypress/internal/topology"
)

// Nav keys for the active-page marker.
const (
	NavHome    = "home"
	NavCost    = "cost"
	NavHowTo   = "howto"
	NavContact = "contact"
)

// Composer assembles full page documents for one (mode, origin) pair. It is
// stateless across pages: every render reads only its Page argument and the
// immutable brand/link configuration.
type Composer struct {
	brand     config.BrandConfig
	imageFile string
	links     topology.Resolver
}

// New creates a composer bound to the build's brand copy and link resolver.
func New(brand config.BrandConfig, imageFile string, links topology.Resolver) *Composer {
	return &Composer{brand: brand, imageFile: imageFile, links: links}
}

// Links exposes the bound link resolver for content factories.
func (c *Composer) Links() topology.Resolver { return c.links }

// Page describes one document to render. Title is clamped to 70 characters
// and used verbatim for both <title> and the H1.
type Page struct {
	Title         string
	Subtitle      string
	Canonical     string // final canonical URL, already resolved
	NavKey        string
	Features      site.Features
	Inner         string // pre-rendered content fragment
	ShowImage     bool
	ShowFooterCTA bool
}

// Render produces the complete HTML document for a page.
func (c *Composer) Render(p Page) string {
	title := ClampTitle(p.Title, 70)

	var b strings.Builder
	b.Grow(8 << 10)
	b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\" />\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\" />\n")
	b.WriteString("  <title>" + Escape(title) + "</title>\n")
	b.WriteString("  <link rel=\"canonical\" href=\"" + Escape(p.Canonical) + "\" />\n")
	b.WriteString("  <style>\n" + siteCSS + "\n  </style>\n")
	b.WriteString("</head>\n<body>\n")

	b.WriteString("  <div class=\"topbar\">\n    <div class=\"topbar-inner\">\n")
	b.WriteString("      <a class=\"brand\" href=\"" + Escape(c.links.Home()) + "\">" + Escape(c.brand.BrandName) + "</a>\n")
	b.WriteString("      " + c.nav(p.NavKey, p.Features) + "\n")
	b.WriteString("    </div>\n  </div>\n")

	b.WriteString(c.hero(title, p.Subtitle))
	b.WriteString(c.mainCard(p.Inner, p.ShowImage))
	b.WriteString(c.footer(p.Features, p.ShowFooterCTA))

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func (c *Composer) nav(current string, f site.Features) string {
	item := func(href, label, key string) string {
		cur := ""
		if current == key {
			cur = ` aria-current="page"`
		}
		return `<a href="` + Escape(href) + `"` + cur + `>` + Escape(label) + `</a>`
	}

	var parts []string
	parts = append(parts, item(c.links.Home(), "Home", NavHome))
	if f.Cost {
		parts = append(parts, item(c.links.CostIndex(), "Cost", NavCost))
	}
	if f.HowTo {
		parts = append(parts, item(c.links.HowTo(), "How-To", NavHowTo))
	}
	if f.Contact {
		parts = append(parts, `<a class="btn" href="`+Escape(c.links.Contact())+`">`+Escape(c.brand.CTAText)+`</a>`)
	}

	return `<nav class="nav" aria-label="Primary navigation">` + strings.Join(parts, "") + `</nav>`
}

func (c *Composer) hero(h1, sub string) string {
	return "<header>\n  <div class=\"hero\">\n" +
		"    <h1>" + Escape(h1) + "</h1>\n" +
		"    <p class=\"sub\">" + Escape(sub) + "</p>\n" +
		"  </div>\n</header>\n"
}

func (c *Composer) mainCard(inner string, showImage bool) string {
	img := ""
	if showImage {
		img = "    <div class=\"img\">\n" +
			"      <img src=\"/" + Escape(c.imageFile) + "\" alt=\"Service image\" loading=\"lazy\" />\n" +
			"    </div>\n"
	}
	return "<main>\n  <section class=\"card\">\n" + img + "    " + inner + "\n  </section>\n</main>\n"
}

func (c *Composer) footer(f site.Features, showCTA bool) string {
	var b strings.Builder
	b.WriteString("<footer>\n  <div class=\"footer-inner\">\n")

	if showCTA && f.Contact {
		b.WriteString("    <h2>Next steps</h2>\n")
		b.WriteString("    <p class=\"sub\">Ready to move forward? Request a free quote.</p>\n")
		b.WriteString("    <div>\n      <a class=\"btn\" href=\"" + Escape(c.links.Contact()) + "\">" + Escape(c.brand.CTAText) + "</a>\n    </div>\n")
	}

	links := []string{`<a href="` + Escape(c.links.Home()) + `">Home</a>`}
	if f.Cost {
		links = append(links, `<a href="`+Escape(c.links.CostIndex())+`">Cost</a>`)
	}
	if f.HowTo {
		links = append(links, `<a href="`+Escape(c.links.HowTo())+`">How-To</a>`)
	}
	b.WriteString("    <div class=\"footer-links\">\n      " + strings.Join(links, "") + "\n    </div>\n")
	b.WriteString("    <div class=\"small\">© " + Escape(c.brand.BrandName) + ". All rights reserved.</div>\n")
	b.WriteString("  </div>\n</footer>\n")
	return b.String()
}
