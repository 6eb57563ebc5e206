package compose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampTitle(t *testing.T) {
	short := "Roof Repair Services"
	assert.Equal(t, short, ClampTitle(short, 70))

	long := strings.Repeat("a", 60) + " " + strings.Repeat("b", 20)
	clamped := ClampTitle(long, 70)
	assert.True(t, strings.HasSuffix(clamped, "…"))
	// 69 chars kept, trailing whitespace trimmed, plus the ellipsis rune
	assert.LessOrEqual(t, len([]rune(clamped)), 70)

	// exact boundary is untouched
	exact := strings.Repeat("x", 70)
	assert.Equal(t, exact, ClampTitle(exact, 70))
}

func TestClampTitleTrimsTrailingSpace(t *testing.T) {
	long := strings.Repeat("a", 68) + "  tail"
	clamped := ClampTitle(long, 70)
	assert.Equal(t, strings.Repeat("a", 68)+"…", clamped)
}

func TestRenderHTMLEscapesLiterals(t *testing.T) {
	tmpl := ParseTemplate(`a <b> & "c"`)
	got := tmpl.RenderHTML(Values{}, "/")
	assert.Equal(t, "a &lt;b&gt; &amp; &#34;c&#34;", got)
}

func TestRenderHTMLSubstitutesKnownPlaceholders(t *testing.T) {
	tmpl := ParseTemplate("from {cost_lo} to {cost_hi}")
	values := Values{
		"cost_lo": {HTML: "<strong>$420</strong>", Text: "$420"},
		"cost_hi": {HTML: "<strong>$1800</strong>", Text: "$1800"},
	}
	got := tmpl.RenderHTML(values, "/")
	assert.Equal(t, "from <strong>$420</strong> to <strong>$1800</strong>", got)
}

func TestRenderHTMLLinkifiesUnknownBraces(t *testing.T) {
	tmpl := ParseTemplate("see {our services} today")
	got := tmpl.RenderHTML(Values{}, "https://example.com/")
	assert.Equal(t, `see <a href="https://example.com/">our services</a> today`, got)
}

func TestRenderHTMLInsertedFragmentsAreNotRescanned(t *testing.T) {
	// A substitution containing braces must not trigger another pass.
	tmpl := ParseTemplate("{cost_lo} done")
	values := Values{"cost_lo": {HTML: "<strong>${weird}</strong>", Text: "${weird}"}}
	got := tmpl.RenderHTML(values, "/")
	assert.Equal(t, "<strong>${weird}</strong> done", got)
}

func TestRenderTextKeepsUnknownBraces(t *testing.T) {
	tmpl := ParseTemplate("in {City, State} for {cost_lo}")
	values := Values{"City, State": TextValue("Reno, NV")}
	assert.Equal(t, "in Reno, NV for {cost_lo}", tmpl.RenderText(values))
}

func TestParseTemplateEdgeCases(t *testing.T) {
	assert.Equal(t, "", ParseTemplate("").RenderHTML(Values{}, "/"))
	// unterminated and empty braces stay literal
	assert.Equal(t, "a {b", ParseTemplate("a {b").RenderText(Values{}))
	assert.Equal(t, "a {} b", ParseTemplate("a {} b").RenderText(Values{}))
}
