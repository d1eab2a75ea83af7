package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
)

// RenderResults generates the stats grid and highlight cards.
func RenderResults(s *content.Site) string {
	var sb strings.Builder
	r := s.Results

	sb.WriteString(`<section class="section" id="results"><div class="container">`)
	sb.WriteString(sectionHead(r.Heading, "results-title"))

	sb.WriteString(`<div class="grid grid-2 grid-4">`)
	for _, stat := range r.Stats {
		fmt.Fprintf(&sb, `<div class="glass stat-card"><div class="stat-value">%s</div><p>%s</p></div>`,
			html.EscapeString(stat.Display()), html.EscapeString(stat.Label))
	}
	sb.WriteString(`</div>`)

	if len(r.Highlights) > 0 {
		sb.WriteString(`<div class="grid grid-3" style="margin-top:2rem">`)
		for _, h := range r.Highlights {
			fmt.Fprintf(&sb, `<div class="glass glass-hover stat-card"><h3>%s</h3><p>%s</p></div>`,
				html.EscapeString(h.Title), html.EscapeString(h.Text))
		}
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</div></section>`)
	return sb.String()
}
