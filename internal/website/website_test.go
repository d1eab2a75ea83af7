package website

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaonstake/agencysite/internal/content"
)

func TestStylesNeverLookLikeRegions(t *testing.T) {
	css := RenderStyles()
	assert.NotContains(t, css, `data-region="`)
	assert.Contains(t, css, "--color-primary:#00f7ff;")
	assert.Contains(t, css, ".toaster")
}

func TestStylesOptions(t *testing.T) {
	css := RenderStyles(WithCustomColors(map[string]string{"primary": "#ff0000"}), WithAnimations(false))
	assert.Contains(t, css, "--color-primary:#ff0000;")
	assert.NotContains(t, css, "@keyframes")
	assert.Equal(t, "#00f7ff", Colors["primary"], "defaults are not mutated")
}

func TestRegionEscapesName(t *testing.T) {
	assert.Equal(t, `<div data-region="nav">x</div>`, Region("div", "nav", "", "x"))
	assert.Equal(t, `<section data-region="a&lt;b" id="s"></section>`, Region("section", "a<b", `id="s"`, ""))
}

func TestEventAndClass(t *testing.T) {
	assert.Equal(t, `data-event="nav:toggle"`, Event("nav:toggle", nil))
	assert.Equal(t, `data-event="team:jump" data-value="2"`, Event("team:jump", 2))
	assert.Equal(t, "a c", Class("a", "", "c"))
	assert.Empty(t, Class())
}

func TestDocumentHeadFromSiteCopy(t *testing.T) {
	s, err := content.Default()
	require.NoError(t, err)

	cfg := PageConfigFor(s, "https://example.test/")
	doc := RenderDocument(cfg, ".extra{}", "<main></main>")

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<title>MediaOnStake - Digital Growth Agency</title>")
	assert.Contains(t, doc, `<link rel="canonical" href="https://example.test/">`)
	assert.Contains(t, doc, `"@type":"ProfessionalService"`)
	assert.Contains(t, doc, `property="og:title"`)
	assert.Contains(t, doc, ".extra{}")
	assert.Contains(t, doc, `<script src="/live.js" defer></script>`)
}

func TestDocumentWithoutScript(t *testing.T) {
	cfg := DefaultPageConfig()
	cfg.Script = ""
	assert.NotContains(t, RenderDocument(cfg, "", ""), "<script src=")
}
