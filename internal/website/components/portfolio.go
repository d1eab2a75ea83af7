package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
	"github.com/mediaonstake/agencysite/internal/website"
	"github.com/mediaonstake/agencysite/pkg/carousel"
)

// PortfolioState is the per-visitor state of the portfolio section.
type PortfolioState struct {
	Projects *carousel.Carousel[content.Project]
	// Fullscreen shows the screenshot in a full-page overlay.
	Fullscreen bool
	// Preview shows the live site in a sandboxed iframe overlay.
	Preview        bool
	PreviewLoading bool
	ImageLoaded    bool
}

// RenderPortfolio generates the project showcase. An empty project list
// renders only the heading.
func RenderPortfolio(s *content.Site, st PortfolioState) string {
	var sb strings.Builder

	sb.WriteString(`<div class="container">`)
	project, ok := st.Projects.Active()

	sb.WriteString(`<div class="row between wrap" style="margin-bottom:3rem">`)
	sb.WriteString(sectionHead(s.Portfolio.Heading, "portfolio-title"))
	if ok {
		n := st.Projects.Len()
		sb.WriteString(`<div class="row">`)
		fmt.Fprintf(&sb, `<div><div class="counter">%02d<span>/%02d</span></div><small class="muted">Selected Project</small></div>`,
			st.Projects.Index()+1, n)
		label, glyph := "Enter fullscreen", "&#x26F6;"
		if st.Fullscreen {
			label, glyph = "Exit fullscreen", "&#10005;"
		}
		fmt.Fprintf(&sb, `<button class="icon-btn glass" %s aria-label="%s">%s</button>`,
			website.Event("portfolio:fullscreen", nil), label, glyph)
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)

	if !ok {
		sb.WriteString(`</div>`)
		return sb.String()
	}

	if st.Preview {
		sb.WriteString(renderPreviewOverlay(project, st.PreviewLoading))
	} else if st.Fullscreen {
		sb.WriteString(renderFullscreenOverlay(project))
	}

	sb.WriteString(`<div class="glass" data-touch="portfolio">`)
	sb.WriteString(`<div class="browser row between wrap">`)
	fmt.Fprintf(&sb, `<span>https://%s</span>`, html.EscapeString(project.Host()))
	sb.WriteString(`<span class="row">`)
	fmt.Fprintf(&sb, `<button class="btn btn-outline" %s>Open Website Preview</button>`, website.Event("portfolio:preview", nil))
	fmt.Fprintf(&sb, `<a class="icon-btn" href="%s" target="_blank" rel="noopener noreferrer" aria-label="Open in new tab">&#8599;</a>`,
		html.EscapeString(project.URL))
	sb.WriteString(`</span></div>`)

	fmt.Fprintf(&sb, `<div class="preview-frame" %s>`, website.Event("portfolio:preview", nil))
	imgClass := ""
	if !st.ImageLoaded {
		imgClass = "loading"
	}
	fmt.Fprintf(&sb, `<img class="%s" src="%s" alt="%s" loading="lazy" data-load-event="portfolio:image_loaded">`,
		imgClass, html.EscapeString(project.Image), html.EscapeString(project.Title))
	sb.WriteString(`<div class="preview-cta"><p>Click to preview website</p>`)
	fmt.Fprintf(&sb, `<small class="muted">Opens an interactive preview of %s</small></div>`, html.EscapeString(project.Title))
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="row between wrap" style="padding:1.5rem">`)
	fmt.Fprintf(&sb, `<div><span class="chip">%s</span><h3 style="margin-top:.5rem">%s</h3><p>%s</p></div>`,
		html.EscapeString(project.Category), html.EscapeString(project.Title), html.EscapeString(project.Description))
	if len(project.Metrics) > 0 {
		m := project.Metrics[0]
		fmt.Fprintf(&sb, `<div><div class="stat-value">%s</div><small class="muted metric-label">%s</small></div>`,
			html.EscapeString(m.Value), html.EscapeString(m.Label()))
	}
	sb.WriteString(`</div></div>`)

	sb.WriteString(renderCarouselNav("portfolio", "project", st.Projects.Len(), st.Projects.Index()))

	sb.WriteString(`<div class="grid grid-3" style="margin-top:2.5rem">`)
	sb.WriteString(`<div style="grid-column:span 2"><h4 style="margin-bottom:1rem">Tech Stack &amp; Implementation</h4><div class="grid grid-2 grid-4">`)
	for i, tag := range project.Tags {
		fmt.Fprintf(&sb, `<div class="tech-item glass"><span class="neon-text">0%d</span><span>%s</span><small>%s</small></div>`,
			i+1, html.EscapeString(tag), content.TagRole(i))
	}
	sb.WriteString(`</div></div>`)

	sb.WriteString(`<div><h4 style="margin-bottom:1rem">Performance Metrics</h4>`)
	for _, m := range project.Metrics {
		fmt.Fprintf(&sb, `<div style="margin-bottom:.75rem"><div class="row between"><span class="metric-label">%s</span><b>%s</b></div>`,
			html.EscapeString(m.Label()), html.EscapeString(m.Value))
		fmt.Fprintf(&sb, `<div class="bar"><span style="width:%.0f%%"></span></div></div>`, m.Percent())
	}
	sb.WriteString(`</div></div>`)

	sb.WriteString(`<h4 style="margin:3rem 0 1rem">All Projects</h4><div class="grid grid-2 grid-5">`)
	for i, p := range st.Projects.Items() {
		active := ""
		if i == st.Projects.Index() {
			active = "active"
		}
		fmt.Fprintf(&sb, `<button class="%s" %s><small class="muted">%s</small><div>%s</div></button>`,
			website.Class("glass", "project-tile", active), website.Event("portfolio:jump", i),
			html.EscapeString(p.Category), html.EscapeString(p.Title))
	}
	sb.WriteString(`</div></div>`)
	return sb.String()
}

func renderPreviewOverlay(p content.Project, loading bool) string {
	var sb strings.Builder
	sb.WriteString(`<div class="overlay" role="dialog" aria-modal="true" aria-label="Website preview"><div class="overlay-panel glass">`)
	sb.WriteString(`<div class="browser row between">`)
	fmt.Fprintf(&sb, `<span><span class="muted">https://</span>%s</span>`, html.EscapeString(strings.TrimPrefix(p.URL, "https://")))
	if loading {
		sb.WriteString(`<span class="spinner" aria-label="Loading"></span>`)
	}
	sb.WriteString(`<span class="row">`)
	fmt.Fprintf(&sb, `<a class="btn btn-outline" href="%s" target="_blank" rel="noopener noreferrer">New Tab</a>`, html.EscapeString(p.URL))
	fmt.Fprintf(&sb, `<button class="icon-btn" %s aria-label="Back to preview">&#10005;</button>`, website.Event("portfolio:preview_close", nil))
	sb.WriteString(`</span></div>`)
	if loading {
		sb.WriteString(`<p class="muted" style="text-align:center;padding:1rem">Loading website preview...</p>`)
	}
	fmt.Fprintf(&sb, `<iframe src="%s" title="Live preview of %s" loading="lazy" sandbox="allow-same-origin allow-scripts allow-popups allow-forms" referrerpolicy="no-referrer-when-downgrade" data-load-event="portfolio:preview_loaded"></iframe>`,
		html.EscapeString(p.URL), html.EscapeString(p.Title))
	sb.WriteString(`</div></div>`)
	return sb.String()
}

func renderFullscreenOverlay(p content.Project) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<div class="overlay" role="dialog" aria-modal="true" aria-label="%s" %s>`,
		html.EscapeString(p.Title), website.Event("portfolio:fullscreen", nil))
	sb.WriteString(`<div class="overlay-panel glass" style="height:auto" data-stop>`)
	sb.WriteString(`<div class="browser row between">`)
	fmt.Fprintf(&sb, `<span>https://%s</span>`, html.EscapeString(p.Host()))
	fmt.Fprintf(&sb, `<a class="btn btn-primary" href="%s" target="_blank" rel="noopener noreferrer">Open Live Site</a>`, html.EscapeString(p.URL))
	sb.WriteString(`</div>`)
	fmt.Fprintf(&sb, `<img src="%s" alt="%s" style="width:100%%;aspect-ratio:16/9;object-fit:cover">`,
		html.EscapeString(p.Image), html.EscapeString(p.Title))
	sb.WriteString(`</div></div>`)
	return sb.String()
}

// renderCarouselNav draws prev, one dot per item and next, wired to the
// namespace's carousel events.
func renderCarouselNav(ns, noun string, n, active int) string {
	var sb strings.Builder
	sb.WriteString(`<div class="row" style="justify-content:center;margin-top:1.75rem;gap:1.5rem">`)
	fmt.Fprintf(&sb, `<button class="icon-btn glass" %s aria-label="Previous %s">&#8592;</button>`, website.Event(ns+":prev", nil), noun)
	sb.WriteString(`<div class="dots">`)
	for i := 0; i < n; i++ {
		cls := "dot"
		if i == active {
			cls = "dot active"
		}
		fmt.Fprintf(&sb, `<button class="%s" %s aria-label="View %s %d"></button>`, cls, website.Event(ns+":jump", i), noun, i+1)
	}
	sb.WriteString(`</div>`)
	fmt.Fprintf(&sb, `<button class="icon-btn glass" %s aria-label="Next %s">&#8594;</button>`, website.Event(ns+":next", nil), noun)
	sb.WriteString(`</div>`)
	return sb.String()
}
