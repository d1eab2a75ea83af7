package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
	"github.com/mediaonstake/agencysite/internal/website"
)

// ServiceKey identifies service j of category i for the expand toggle.
func ServiceKey(i, j int) string {
	return fmt.Sprintf("%d-%d", i, j)
}

// RenderServices generates both service categories. Cards listed in
// expanded show their tools and expected result.
func RenderServices(s *content.Site, expanded map[string]bool) string {
	var sb strings.Builder

	sb.WriteString(`<div class="container">`)
	sb.WriteString(sectionHead(s.Services.Heading, "services-title"))

	for i, cat := range s.Services.Categories {
		accent := ""
		if cat.Accent == "secondary" {
			accent = "accent-secondary"
		}
		fmt.Fprintf(&sb, `<div class="%s" style="margin-bottom:3rem">`, website.Class("service-category", accent))
		fmt.Fprintf(&sb, `<h3 style="margin-bottom:1.5rem">%s</h3>`, html.EscapeString(cat.Title))
		sb.WriteString(`<div class="grid grid-2 grid-3">`)
		for j, svc := range cat.Services {
			key := ServiceKey(i, j)
			open := expanded[key]
			fmt.Fprintf(&sb, `<button class="glass glass-hover service-card" %s aria-expanded="%t">`,
				website.Event("services:toggle", key), open)
			fmt.Fprintf(&sb, `<h3>%s</h3><p>%s</p>`, html.EscapeString(svc.Name), html.EscapeString(svc.Description))
			if open {
				sb.WriteString(`<div class="tools">`)
				for _, tool := range svc.Tools {
					fmt.Fprintf(&sb, `<span class="chip">%s</span>`, html.EscapeString(tool))
				}
				sb.WriteString(`</div>`)
				fmt.Fprintf(&sb, `<p class="service-result">%s</p>`, html.EscapeString(svc.Result))
			} else {
				sb.WriteString(`<p class="muted" style="margin-top:1rem;font-size:.85rem">Tap to see tools and results</p>`)
			}
			sb.WriteString(`</button>`)
		}
		sb.WriteString(`</div></div>`)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}
