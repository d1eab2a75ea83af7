// Package components renders the sections of the agency page. Each function
// returns an HTML fragment; the landing package decides which fragments are
// live regions.
package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
	"github.com/mediaonstake/agencysite/internal/website"
)

// NavbarState is the per-visitor state of the navigation bar.
type NavbarState struct {
	// Scrolled is set once the page has moved past the top.
	Scrolled bool
	MenuOpen bool
	// CTALink is the WhatsApp link behind the call button.
	CTALink string
}

// RenderNavbar generates the fixed navigation bar with its mobile menu.
func RenderNavbar(s *content.Site, st NavbarState) string {
	var sb strings.Builder

	sb.WriteString(`<a href="#main-content" class="skip-link">Skip to main content</a>`)
	fmt.Fprintf(&sb, `<div class="%s" role="navigation" aria-label="Main navigation">`, website.Class("nav", scrolledClass(st.Scrolled)))
	sb.WriteString(`<div class="container nav-inner">`)

	sb.WriteString(`<a href="#" class="logo" aria-label="Home">`)
	if s.Brand.Logo != "" {
		fmt.Fprintf(&sb, `<img src="%s" alt="%s logo">`, html.EscapeString(s.Brand.Logo), html.EscapeString(s.Brand.Name))
	}
	fmt.Fprintf(&sb, `<span>%s<span class="dot-accent">.</span></span></a>`, html.EscapeString(s.Brand.Name))

	sb.WriteString(`<div class="nav-links">`)
	for _, link := range s.Nav {
		fmt.Fprintf(&sb, `<a href="%s">%s</a>`, html.EscapeString(link.Href), html.EscapeString(link.Name))
	}
	sb.WriteString(`</div>`)

	fmt.Fprintf(&sb, `<a class="btn btn-primary nav-cta" href="%s" target="_blank" rel="noopener noreferrer">Book a Call</a>`,
		html.EscapeString(st.CTALink))

	label := "Open menu"
	glyph := "&#9776;"
	if st.MenuOpen {
		label, glyph = "Close menu", "&#10005;"
	}
	fmt.Fprintf(&sb, `<button class="icon-btn menu-toggle" %s aria-expanded="%t" aria-label="%s">%s</button>`,
		website.Event("nav:toggle", nil), st.MenuOpen, label, glyph)
	sb.WriteString(`</div>`)

	if st.MenuOpen {
		sb.WriteString(`<div class="mobile-menu"><div class="container">`)
		for _, link := range s.Nav {
			fmt.Fprintf(&sb, `<a href="%s" %s>%s</a>`,
				html.EscapeString(link.Href), website.Event("nav:close", nil), html.EscapeString(link.Name))
		}
		fmt.Fprintf(&sb, `<a class="btn btn-primary" href="%s" target="_blank" rel="noopener noreferrer" %s>Book a Call</a>`,
			html.EscapeString(st.CTALink), website.Event("nav:close", nil))
		sb.WriteString(`</div></div>`)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}

func scrolledClass(scrolled bool) string {
	if scrolled {
		return "scrolled"
	}
	return ""
}
