// Package linkcheck verifies that every internal link in an emitted site
// resolves to an emitted artifact. It runs against the staged output before
// publish, so a site with broken cross-links is never promoted.
package linkcheck

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Link is one extracted reference from an HTML document.
type Link struct {
	URL       string
	Tag       string // a, img, link, script
	Attribute string // href or src
}

// ExtractLinks parses an HTML document and returns every href/src reference.
func ExtractLinks(r io.Reader) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "a", "link":
				if href := attr(n, "href"); href != "" {
					links = append(links, Link{URL: href, Tag: n.Data, Attribute: "href"})
				}
			case "img", "script":
				if src := attr(n, "src"); src != "" {
					links = append(links, Link{URL: src, Tag: n.Data, Attribute: "src"})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// IsInternal reports whether a URL is site-relative. Absolute URLs (including
// subdomain-mode location origins), anchors and mail/tel links are outside
// the emitted artifact set and are not checked.
func IsInternal(url string) bool {
	switch {
	case url == "", strings.HasPrefix(url, "#"):
		return false
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"),
		strings.HasPrefix(url, "//"), strings.HasPrefix(url, "mailto:"), strings.HasPrefix(url, "tel:"):
		return false
	}
	return true
}
