package compose

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"

	"git.home.luguber.info/inful/citypress/internal/config"
	"git.home.luguber.info/inful/citypress/internal/errors"
)

var markdown = goldmark.New()

// Sections renders heading/body pairs of configured copy. HTML bodies go
// through the token template (escaped literals, typed placeholder
// substitution, {text} home links); markdown bodies get plain-text
// placeholder substitution and a goldmark render.
func (c *Composer) Sections(sections []config.Section, values Values) (string, error) {
	var parts []string
	for _, sec := range sections {
		heading := ParseTemplate(sec.Heading).RenderText(values)
		parts = append(parts, "<h2>"+Escape(heading)+"</h2>")

		if sec.Markdown {
			src := ParseTemplate(sec.Body).RenderText(values)
			var buf bytes.Buffer
			if err := markdown.Convert([]byte(src), &buf); err != nil {
				return "", errors.Wrap(err, errors.CategoryCompose, "render markdown section").WithContext("heading", sec.Heading)
			}
			parts = append(parts, strings.TrimRight(buf.String(), "\n"))
			continue
		}

		body := ParseTemplate(sec.Body).RenderHTML(values, c.links.Home())
		parts = append(parts, "<p>"+body+"</p>")
	}
	return strings.Join(parts, "\n"), nil
}

// GridItem is one linked entry of a city/state grid.
type GridItem struct {
	Href  string
	Label string
}

// Grid renders the "choose your city/state" card grid.
func Grid(heading, intro string, items []GridItem) string {
	var b strings.Builder
	b.WriteString("<h2>" + Escape(heading) + "</h2>\n")
	b.WriteString(`<p class="muted">` + Escape(intro) + "</p>\n")
	b.WriteString(`<ul class="city-grid">` + "\n")
	for _, item := range items {
		b.WriteString(`<li><a href="` + Escape(item.Href) + `">` + Escape(item.Label) + "</a></li>\n")
	}
	b.WriteString("</ul>")
	return b.String()
}
