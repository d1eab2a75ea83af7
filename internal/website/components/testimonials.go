package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
	"github.com/mediaonstake/agencysite/internal/website"
	"github.com/mediaonstake/agencysite/pkg/carousel"
)

// RenderTestimonials generates the testimonial card with its "i / N" pager.
func RenderTestimonials(s *content.Site, items *carousel.Carousel[content.Testimonial]) string {
	var sb strings.Builder

	sb.WriteString(`<div class="container">`)
	sb.WriteString(sectionHead(s.Testimonials.Heading, "testimonials-title"))

	t, ok := items.Active()
	if !ok {
		sb.WriteString(`</div>`)
		return sb.String()
	}

	sb.WriteString(`<div class="glass testimonial" data-touch="testimonials">`)
	fmt.Fprintf(&sb, `<div class="stars" aria-label="%d out of 5 stars">%s</div>`, t.Rating, stars(t.Rating))
	fmt.Fprintf(&sb, `<blockquote>&ldquo;%s&rdquo;</blockquote>`, t.Content.HTML)

	sb.WriteString(`<div class="row between wrap" style="border-top:1px solid var(--color-border);padding-top:1.5rem">`)
	sb.WriteString(`<div class="row">`)
	if t.Image != "" {
		fmt.Fprintf(&sb, `<img class="avatar" src="%s" alt="%s" loading="lazy">`, html.EscapeString(t.Image), html.EscapeString(t.Name))
	}
	fmt.Fprintf(&sb, `<div><h4>%s</h4><small class="muted">%s</small></div>`, html.EscapeString(t.Name), html.EscapeString(t.Role))
	sb.WriteString(`</div>`)
	if t.Metric != "" {
		fmt.Fprintf(&sb, `<span class="pill">%s</span>`, html.EscapeString(t.Metric))
	}
	sb.WriteString(`</div></div>`)

	sb.WriteString(`<div class="row" style="justify-content:center;margin-top:2rem;gap:1.5rem">`)
	fmt.Fprintf(&sb, `<button class="icon-btn glass" %s aria-label="Previous testimonial">&#8249;</button>`, website.Event("testimonials:prev", nil))
	fmt.Fprintf(&sb, `<div class="muted">%d / %d</div>`, items.Index()+1, items.Len())
	fmt.Fprintf(&sb, `<button class="icon-btn glass" %s aria-label="Next testimonial">&#8250;</button>`, website.Event("testimonials:next", nil))
	sb.WriteString(`</div></div>`)
	return sb.String()
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("&#9733;", n) + strings.Repeat("&#9734;", 5-n)
}
