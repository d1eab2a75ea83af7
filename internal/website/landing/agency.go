// Package landing assembles the agency page from its sections.
package landing

import (
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
	"github.com/mediaonstake/agencysite/internal/website"
	"github.com/mediaonstake/agencysite/internal/website/components"
	"github.com/mediaonstake/agencysite/pkg/carousel"
	"github.com/mediaonstake/agencysite/pkg/timeline"
	"github.com/mediaonstake/agencysite/pkg/wizard"
)

// Region names. Each is pushed independently when its HTML changes.
const (
	RegionNav          = "nav"
	RegionServices     = "services"
	RegionProcess      = "process"
	RegionPortfolio    = "portfolio"
	RegionTeam         = "team"
	RegionTestimonials = "testimonials"
	RegionContact      = "contact"
)

// View is everything one render of the page needs.
type View struct {
	Site  *content.Site
	Page  website.PageConfig
	Style timeline.Style

	Nav              components.NavbarState
	ExpandedServices map[string]bool
	Timeline         *timeline.Timeline
	Portfolio        components.PortfolioState
	Team             *carousel.Carousel[content.Member]
	Testimonials     *carousel.Carousel[content.Testimonial]
	Contact          wizard.State

	// CTALink is the pre-filled WhatsApp link behind the call buttons.
	CTALink string
	// ChatLink opens a WhatsApp chat with no text.
	ChatLink string
	Year     int

	CustomCSS string
}

// Render generates the complete HTML document.
func Render(v View) string {
	return website.RenderDocument(v.Page, v.CustomCSS, RenderBody(v))
}

// RenderBody generates the page body without the document shell.
func RenderBody(v View) string {
	s := v.Site
	var sb strings.Builder

	nav := v.Nav
	nav.CTALink = v.CTALink
	sb.WriteString(`<header>`)
	sb.WriteString(website.Region("div", RegionNav, "", components.RenderNavbar(s, nav)))
	sb.WriteString(`</header>`)

	sb.WriteString(`<main id="main-content">`)
	sb.WriteString(components.RenderHero(s))
	sb.WriteString(components.RenderProblems(s, v.CTALink))

	sb.WriteString(website.Region("section", RegionServices, `class="section" id="services"`,
		components.RenderServices(s, v.ExpandedServices)))

	sb.WriteString(components.RenderResults(s))

	sb.WriteString(website.Region("section", RegionProcess,
		fmt.Sprintf(`class="section" id="process" data-steps="%d"`, len(s.Process.Events)),
		components.RenderProcess(s, v.Style, v.Timeline)))

	sb.WriteString(website.Region("section", RegionPortfolio, `class="section" id="portfolio"`,
		components.RenderPortfolio(s, v.Portfolio)))

	sb.WriteString(website.Region("section", RegionTeam, `class="section" id="team"`,
		components.RenderTeam(s, v.Team)))

	sb.WriteString(website.Region("section", RegionTestimonials, `class="section" id="testimonials"`,
		components.RenderTestimonials(s, v.Testimonials)))

	sb.WriteString(`<section class="section" id="contact"><div class="container">`)
	sb.WriteString(`<div class="section-head">`)
	if s.Contact.Eyebrow != "" {
		fmt.Fprintf(&sb, `<span class="eyebrow">%s</span>`, html.EscapeString(s.Contact.Eyebrow))
	}
	fmt.Fprintf(&sb, `<h2 id="contact-title">%s</h2>`, html.EscapeString(s.Contact.Heading.Heading))
	if s.Contact.Intro.HTML != "" {
		fmt.Fprintf(&sb, `<p>%s</p>`, s.Contact.Intro.HTML)
	}
	sb.WriteString(`</div><div class="contact-grid">`)
	sb.WriteString(website.Region("div", RegionContact, "", components.RenderContactWizard(s, v.Contact)))
	sb.WriteString(components.RenderContactInfo(s, v.ChatLink))
	sb.WriteString(`</div></div></section>`)

	sb.WriteString(`</main>`)
	sb.WriteString(components.RenderFooter(s, v.Year))
	return sb.String()
}
