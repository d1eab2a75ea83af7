package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
	"github.com/mediaonstake/agencysite/internal/website"
	"github.com/mediaonstake/agencysite/pkg/carousel"
)

// RenderTeam generates the three-card team carousel. Side cards jump to
// their member when clicked; cards further away are hidden.
func RenderTeam(s *content.Site, members *carousel.Carousel[content.Member]) string {
	var sb strings.Builder

	sb.WriteString(`<div class="container">`)
	fmt.Fprintf(&sb, `<h2 class="team-title" id="team-title">%s</h2>`, html.EscapeString(s.Team.Title))

	active, ok := members.Active()
	if !ok {
		sb.WriteString(`</div>`)
		return sb.String()
	}

	sb.WriteString(`<div class="team-stage" data-touch="team">`)
	fmt.Fprintf(&sb, `<button class="icon-btn glass" style="position:absolute;left:1rem;z-index:20" %s aria-label="Previous member">&#8592;</button>`,
		website.Event("team:prev", nil))
	for i, m := range members.Items() {
		pos := members.Position(i)
		if pos == carousel.Hidden {
			continue
		}
		attrs := ""
		if pos != carousel.Center {
			attrs = " " + website.Event("team:jump", i)
		}
		fmt.Fprintf(&sb, `<div class="%s"%s>`, website.Class("team-card", "pos-"+pos.String()), attrs)
		if m.Image != "" {
			fmt.Fprintf(&sb, `<img src="%s" alt="%s" loading="lazy">`, html.EscapeString(m.Image), html.EscapeString(m.Name))
		} else {
			fmt.Fprintf(&sb, `<div class="initials" aria-label="%s">%s</div>`, html.EscapeString(m.Name), html.EscapeString(content.Initials(m.Name)))
		}
		sb.WriteString(`</div>`)
	}
	fmt.Fprintf(&sb, `<button class="icon-btn glass" style="position:absolute;right:1rem;z-index:20" %s aria-label="Next member">&#8594;</button>`,
		website.Event("team:next", nil))
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="team-info">`)
	fmt.Fprintf(&sb, `<h3>%s</h3><p class="muted">%s</p>`, html.EscapeString(active.Name), html.EscapeString(active.Role))
	if active.Bio != "" {
		fmt.Fprintf(&sb, `<p style="max-width:36rem;margin:1rem auto 0">%s</p>`, html.EscapeString(active.Bio))
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="dots" style="margin-top:1.5rem">`)
	for i := 0; i < members.Len(); i++ {
		cls := "dot"
		if i == members.Index() {
			cls = "dot active"
		}
		fmt.Fprintf(&sb, `<button class="%s" %s aria-label="Go to member %d"></button>`, cls, website.Event("team:jump", i), i+1)
	}
	sb.WriteString(`</div></div>`)
	return sb.String()
}
