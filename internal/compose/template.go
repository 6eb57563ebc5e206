// Package compose produces page HTML: a shared shell (topbar, nav, hero,
// card, footer) around per-page content fragments. All catalog- and
// config-sourced text is escaped at interpolation time. Composition is pure
// string work; writing artifacts belongs to the builder.
package compose

import (
	"html"
	"strings"
	"unicode"
)

// Escape escapes HTML special characters for text nodes and attributes.
func Escape(s string) string { return html.EscapeString(s) }

// ClampTitle truncates a title to max characters with an ellipsis. Used for
// both <title> and H1 so the two never diverge.
func ClampTitle(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimRightFunc(string(r[:max-1]), unicode.IsSpace) + "…"
}

// Value is one placeholder substitution, carrying both the HTML fragment
// used in body context and the plain-text form used in headings and
// markdown sources.
type Value struct {
	HTML string
	Text string
}

// TextValue builds a Value whose HTML form is simply the escaped text.
func TextValue(text string) Value {
	return Value{HTML: Escape(text), Text: text}
}

// Values maps placeholder names (the text between braces) to substitutions.
type Values map[string]Value

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenPlaceholder
)

type token struct {
	kind tokenKind
	text string
}

// Template is copy text parsed into an ordered list of literal and
// placeholder tokens. Substitution happens per token, so inserted fragments
// are never re-scanned and replacement order cannot change the result.
type Template struct {
	tokens []token
}

// ParseTemplate splits text on {name} placeholders. Braces never nest; an
// unterminated brace is literal text.
func ParseTemplate(s string) Template {
	var tokens []token
	for len(s) > 0 {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			tokens = append(tokens, token{tokenLiteral, s})
			break
		}
		end := strings.IndexByte(s[open:], '}')
		if end < 0 {
			tokens = append(tokens, token{tokenLiteral, s})
			break
		}
		if open > 0 {
			tokens = append(tokens, token{tokenLiteral, s[:open]})
		}
		if end == 1 {
			// empty braces are literal text
			tokens = append(tokens, token{tokenLiteral, "{}"})
		} else {
			tokens = append(tokens, token{tokenPlaceholder, s[open+1 : open+end]})
		}
		s = s[open+end+1:]
	}
	return Template{tokens: tokens}
}

// RenderHTML resolves the template for a body context: literals are escaped,
// known placeholders insert their HTML fragment, and any other {text} brace
// becomes a link to homeHref with the brace text as its label.
func (t Template) RenderHTML(values Values, homeHref string) string {
	var b strings.Builder
	for _, tok := range t.tokens {
		switch tok.kind {
		case tokenLiteral:
			b.WriteString(Escape(tok.text))
		case tokenPlaceholder:
			if v, ok := values[tok.text]; ok {
				b.WriteString(v.HTML)
				continue
			}
			b.WriteString(`<a href="` + Escape(homeHref) + `">` + Escape(tok.text) + `</a>`)
		}
	}
	return b.String()
}

// RenderText resolves the template for plain-text contexts (headings,
// markdown sources): known placeholders insert their text form, unknown
// braces are kept verbatim, nothing is escaped.
func (t Template) RenderText(values Values) string {
	var b strings.Builder
	for _, tok := range t.tokens {
		switch tok.kind {
		case tokenLiteral:
			b.WriteString(tok.text)
		case tokenPlaceholder:
			if v, ok := values[tok.text]; ok {
				b.WriteString(v.Text)
				continue
			}
			b.WriteString("{" + tok.text + "}")
		}
	}
	return b.String()
}
