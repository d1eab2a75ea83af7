package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
)

// RenderProblems generates the problem/solution flip cards and the WhatsApp
// call to action below them.
func RenderProblems(s *content.Site, ctaLink string) string {
	var sb strings.Builder
	p := s.Problems

	sb.WriteString(`<section class="section" id="problems"><div class="container">`)
	sb.WriteString(sectionHead(p.Heading, "problems-title"))

	sb.WriteString(`<div class="grid grid-2 grid-5">`)
	for _, item := range p.Items {
		sb.WriteString(`<div class="flip" tabindex="0"><div class="flip-inner">`)
		fmt.Fprintf(&sb, `<div class="flip-face glass"><h3>%s</h3><p>%s</p></div>`,
			html.EscapeString(item.Title), html.EscapeString(item.Description))
		fmt.Fprintf(&sb, `<div class="flip-face flip-back glass"><h3 class="neon-text">%s</h3><p>%s</p></div>`,
			html.EscapeString(item.Solution), html.EscapeString(item.SolutionDescription))
		sb.WriteString(`</div></div>`)
	}
	sb.WriteString(`</div>`)

	if p.CTA != "" {
		sb.WriteString(`<div class="section-head" style="margin-top:3rem">`)
		fmt.Fprintf(&sb, `<a class="btn btn-whatsapp" href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
			html.EscapeString(ctaLink), html.EscapeString(p.CTA))
		if p.CTANote != "" {
			fmt.Fprintf(&sb, `<p>%s</p>`, html.EscapeString(p.CTANote))
		}
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</div></section>`)
	return sb.String()
}

// sectionHead renders the shared eyebrow, heading and intro block.
func sectionHead(h content.Heading, id string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="section-head">`)
	if h.Eyebrow != "" {
		fmt.Fprintf(&sb, `<span class="eyebrow">%s</span>`, html.EscapeString(h.Eyebrow))
	}
	fmt.Fprintf(&sb, `<h2 id="%s">%s</h2>`, id, html.EscapeString(h.Heading))
	if h.Intro.HTML != "" {
		fmt.Fprintf(&sb, `<p>%s</p>`, h.Intro.HTML)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}
