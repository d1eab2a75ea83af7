package components

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
)

// RenderHero generates the hero banner. The typing effect cycles through
// the phrases on the client; the first phrase is rendered so the banner
// reads correctly without the script.
func RenderHero(s *content.Site) string {
	var sb strings.Builder
	h := s.Hero

	sb.WriteString(`<section class="hero" id="home" aria-labelledby="hero-title"><div class="container">`)
	fmt.Fprintf(&sb, `<h1 id="hero-title">%s <span class="neon-text">%s</span></h1>`,
		html.EscapeString(h.Headline), html.EscapeString(h.Highlight))

	first := ""
	if len(h.Phrases) > 0 {
		first = h.Phrases[0]
	}
	phrases, _ := json.Marshal(h.Phrases)
	fmt.Fprintf(&sb, `<p class="lead">%s <span class="typed" data-phrases="%s">%s</span></p>`,
		html.EscapeString(h.Lead), html.EscapeString(string(phrases)), html.EscapeString(first))

	if h.Summary.HTML != "" {
		fmt.Fprintf(&sb, `<p class="summary">%s</p>`, h.Summary.HTML)
	}

	sb.WriteString(`<div class="hero-actions">`)
	sb.WriteString(`<a href="#contact" class="btn btn-primary">Get Your Free Strategy Call</a>`)
	sb.WriteString(`<a href="#portfolio" class="btn btn-outline">See Our Work</a>`)
	sb.WriteString(`</div></div></section>`)
	return sb.String()
}
