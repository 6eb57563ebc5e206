package builder

import (
	"strings"
	"time"

	"git.home.luguber.info/inful/citypress/internal/compose"
)

func robotsTxt() string {
	return "User-agent: *\nAllow: /\nSitemap: /sitemap.xml\n"
}

// sitemapXML lists one <url> per emitted canonical URL, in generation order.
func sitemapXML(canonicals []string) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")
	for _, u := range canonicals {
		b.WriteString("  <url><loc>" + compose.Escape(u) + "</loc></url>\n")
	}
	b.WriteString("</urlset>\n")
	return b.String()
}

// deployDescriptor emits the static-hosting descriptor next to the output
// directory. The compatibility date legitimately varies by build day; pages
// never embed it.
func (b *Builder) deployDescriptor() string {
	name := strings.ReplaceAll(strings.ToLower(b.cfg.Brand.BaseName), " ", "-")
	return "{\n" +
		"  \"name\": \"" + name + "\",\n" +
		"  \"compatibility_date\": \"" + time.Now().Format("2006-01-02") + "\",\n" +
		"  \"assets\": {\n" +
		"    \"directory\": \"./" + b.cfg.Output.Directory + "\"\n" +
		"  }\n" +
		"}\n"
}
