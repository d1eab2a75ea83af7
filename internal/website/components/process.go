package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
	"github.com/mediaonstake/agencysite/internal/website"
	"github.com/mediaonstake/agencysite/pkg/timeline"
)

// RenderProcess generates the scroll-driven timeline. Steps up to the
// active one are drawn as reached and the progress line grows with them.
func RenderProcess(s *content.Site, style timeline.Style, tl *timeline.Timeline) string {
	var sb strings.Builder
	p := s.Process
	n := len(p.Events)

	sb.WriteString(`<div class="container">`)
	sb.WriteString(`<div class="section-head">`)
	fmt.Fprintf(&sb, `<h2 id="process-title" class="neon-text">%s</h2>`, html.EscapeString(p.Title))
	if p.Subtitle != "" {
		fmt.Fprintf(&sb, `<p>%s</p>`, html.EscapeString(p.Subtitle))
	}
	sb.WriteString(`</div>`)

	if n == 0 {
		sb.WriteString(`</div>`)
		return sb.String()
	}

	progress := 0.0
	if tl != nil && tl.Active() >= 0 {
		progress = float64(tl.Active()+1) / float64(n) * 100
	}

	sb.WriteString(`<div class="timeline">`)
	fmt.Fprintf(&sb, `<div class="timeline-line" style="border-left-style:%s" aria-hidden="true"></div>`, style.Connector.BorderStyle())
	fmt.Fprintf(&sb, `<div class="timeline-progress" style="height:%.2f%%" aria-hidden="true"></div>`, progress)

	for i, ev := range p.Events {
		reached := tl != nil && tl.Reached(i)
		side := "right"
		if style.Alignment.LeftSide(i) {
			side = "left"
		}
		fmt.Fprintf(&sb, `<div class="%s">`, website.Class(
			"timeline-item", side, reachedClass(reached), "reveal-"+style.Reveal.String()))
		fmt.Fprintf(&sb, `<div class="timeline-marker" aria-hidden="true">%s</div>`, ev.Icon.Glyph())

		fmt.Fprintf(&sb, `<div class="%s" style="%s">`, website.Class(
			"timeline-card", "effect-"+style.Effect.String()), style.Card.CSS())
		fmt.Fprintf(&sb, `<div class="step-meta">Step <b>%s</b></div>`, html.EscapeString(s.EventNumber(i)))
		fmt.Fprintf(&sb, `<h3>%s</h3>`, html.EscapeString(ev.Title))
		if ev.Subtitle != "" {
			fmt.Fprintf(&sb, `<p class="eyebrow" style="margin:.25rem 0 .75rem">%s</p>`, html.EscapeString(ev.Subtitle))
		}
		if ev.Description.HTML != "" {
			fmt.Fprintf(&sb, `<p>%s</p>`, ev.Description.HTML)
		}
		if len(ev.Details) > 0 {
			sb.WriteString(`<ul class="details" style="margin-top:1rem">`)
			for _, d := range ev.Details {
				fmt.Fprintf(&sb, `<li>%s</li>`, html.EscapeString(d))
			}
			sb.WriteString(`</ul>`)
		}
		sb.WriteString(`</div></div>`)
	}

	sb.WriteString(`</div></div>`)
	return sb.String()
}

func reachedClass(reached bool) string {
	if reached {
		return "reached"
	}
	return ""
}
