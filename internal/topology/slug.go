// Package topology is the routing core: it decides which pages exist for a
// site mode, what URL each page has, and what every cross-page link and
// canonical resolves to. All functions are pure; the per-build origin
// configuration is threaded in explicitly.
package topology

import (
	"strings"

	"git.home.luguber.info/inful/citypress/internal/catalog"
)

// Slugify converts display text to a URL-safe token: lowercase, hyphen
// separated, only [a-z0-9-], no leading/trailing/duplicate hyphens. "&"
// expands to "and" before stripping.
//
// Total over any string (empty in, empty out) but not injective: "St. Paul"
// and "St Paul" collide. That is the documented catalog contract; collisions
// are surfaced by the builder, not silently de-duplicated here.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// LocationSlug is the combined "{city}-{st}" slug used for location paths
// and subdomain labels.
func LocationSlug(loc catalog.Location) string {
	return Slugify(loc.City) + "-" + Slugify(loc.StateCode)
}
