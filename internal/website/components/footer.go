package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
)

// RenderFooter generates the page footer. year comes from the caller's
// clock.
func RenderFooter(s *content.Site, year int) string {
	var sb strings.Builder
	f := s.Footer

	sb.WriteString(`<footer class="footer" role="contentinfo"><div class="container">`)
	sb.WriteString(`<div class="footer-grid">`)

	sb.WriteString(`<div>`)
	fmt.Fprintf(&sb, `<a href="#home" class="logo">%s</a>`, html.EscapeString(s.Brand.Name))
	if s.Brand.Tagline != "" {
		fmt.Fprintf(&sb, `<p class="tagline">%s</p>`, html.EscapeString(s.Brand.Tagline))
	}
	if len(f.Social) > 0 {
		sb.WriteString(`<div class="row wrap">`)
		for _, l := range f.Social {
			fmt.Fprintf(&sb, `<a class="icon-btn" href="%s" aria-label="%s"%s>%s</a>`,
				html.EscapeString(l.Href), html.EscapeString(l.Name), externalAttrs(l.Href), html.EscapeString(content.Initials(l.Name)))
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)

	sb.WriteString(footerColumn("Services", f.Services))
	sb.WriteString(footerColumn("Company", f.Company))
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="footer-bottom">`)
	fmt.Fprintf(&sb, `<p>&copy; %d %s. All rights reserved.</p>`, year, html.EscapeString(s.Brand.Name))
	sb.WriteString(`<a href="#home" class="icon-btn" aria-label="Back to top">&#8593;</a>`)
	sb.WriteString(`</div></div></footer>`)
	return sb.String()
}

func footerColumn(title string, links []content.Link) string {
	if len(links) == 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, `<div><h4>%s</h4><ul>`, html.EscapeString(title))
	for _, l := range links {
		fmt.Fprintf(&sb, `<li><a href="%s"%s>%s`, html.EscapeString(l.Href), externalAttrs(l.Href), html.EscapeString(l.Name))
		if l.Badge != "" {
			fmt.Fprintf(&sb, `<span class="badge-new">%s</span>`, html.EscapeString(l.Badge))
		}
		sb.WriteString(`</a></li>`)
	}
	sb.WriteString(`</ul></div>`)
	return sb.String()
}

func externalAttrs(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return ` target="_blank" rel="noopener noreferrer"`
	}
	return ""
}
