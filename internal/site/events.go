package site

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mediaonstake/agencysite/internal/website/components"
	"github.com/mediaonstake/agencysite/pkg/gesture"
	"github.com/mediaonstake/agencysite/pkg/logging"
	"github.com/mediaonstake/agencysite/pkg/protocol"
	"github.com/mediaonstake/agencysite/pkg/wizard"
)

// ErrBadPayload is returned when an event lacks a value it needs.
var ErrBadPayload = errors.New("site: malformed event payload")

// HandleEvent routes a "section:action" event to the section's handler.
func (p *Page) HandleEvent(ctx context.Context, event string, payload map[string]any) error {
	p.recoverHandOff()
	section, action, _ := strings.Cut(event, ":")

	var (
		handled bool
		err     error
	)
	switch section {
	case "nav":
		handled = p.handleNav(action, payload)
	case "services":
		handled, err = p.handleServices(action, payload)
	case "process":
		handled, err = p.handleProcess(action, payload)
	case "portfolio":
		handled, err = p.handlePortfolio(ctx, action, payload)
	case "team":
		handled, err = handleCarousel(ctx, p.team, action, payload)
	case "testimonials":
		handled, err = handleCarousel(ctx, p.testimonials, action, payload)
	case "contact":
		handled, err = p.handleContact(action, payload)
	}

	if !handled && err == nil {
		logging.L(ctx).Debug("unknown event ignored", logging.String("event", event))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", event, err)
	}
	return nil
}

func (p *Page) handleNav(action string, payload map[string]any) bool {
	switch action {
	case "toggle":
		p.nav.MenuOpen = !p.nav.MenuOpen
	case "close":
		p.nav.MenuOpen = false
	case "scroll":
		p.nav.Scrolled = protocol.Bool(payload, "scrolled")
	default:
		return false
	}
	return true
}

func (p *Page) handleServices(action string, payload map[string]any) (bool, error) {
	if action != "toggle" {
		return false, nil
	}
	key := protocol.String(payload, "value")
	if !p.knownService(key) {
		return true, ErrBadPayload
	}
	if p.expanded[key] {
		delete(p.expanded, key)
	} else {
		p.expanded[key] = true
	}
	return true, nil
}

func (p *Page) knownService(key string) bool {
	for i, cat := range p.site.Services.Categories {
		for j := range cat.Services {
			if components.ServiceKey(i, j) == key {
				return true
			}
		}
	}
	return false
}

func (p *Page) handleProcess(action string, payload map[string]any) (bool, error) {
	if action != "progress" {
		return false, nil
	}
	v, ok := protocol.Float(payload, "value")
	if !ok {
		return true, ErrBadPayload
	}
	p.timeline.Progress(v)
	return true, nil
}

func (p *Page) handlePortfolio(ctx context.Context, action string, payload map[string]any) (bool, error) {
	switch action {
	case "fullscreen":
		p.fullscreen = !p.fullscreen
	case "preview":
		if p.portfolio.Empty() {
			return true, nil
		}
		p.preview = true
		p.previewLoading = true
	case "preview_loaded":
		p.previewLoading = false
	case "preview_close":
		p.preview = false
		p.previewLoading = false
	case "image_loaded":
		p.imageLoaded = true
	case "escape":
		p.fullscreen = false
		p.preview = false
		p.previewLoading = false
	default:
		return handleCarousel(ctx, p.portfolio, action, payload)
	}
	return true, nil
}

// navigator is the part of a carousel the shared events drive.
type navigator interface {
	Next()
	Prev()
	JumpTo(i int) bool
	TouchStart(x float64)
	TouchMove(x float64)
	TouchEnd() gesture.Direction
}

func handleCarousel(ctx context.Context, c navigator, action string, payload map[string]any) (bool, error) {
	switch action {
	case "next":
		c.Next()
	case "prev":
		c.Prev()
	case "jump":
		i, ok := protocol.Int(payload, "value")
		if !ok {
			return true, ErrBadPayload
		}
		if !c.JumpTo(i) {
			logging.L(ctx).Debug("carousel jump out of range", logging.Int("index", i))
		}
	case "touchstart", "touchmove":
		x, ok := protocol.Float(payload, "x")
		if !ok {
			return true, ErrBadPayload
		}
		if action == "touchstart" {
			c.TouchStart(x)
		} else {
			c.TouchMove(x)
		}
	case "touchend":
		c.TouchEnd()
	default:
		return false, nil
	}
	return true, nil
}

func (p *Page) handleContact(action string, payload map[string]any) (bool, error) {
	w := p.wizard
	switch action {
	case "select":
		return true, w.SelectOption(protocol.String(payload, "value"))
	case "input":
		w.UpdateField(protocol.String(payload, "field"), protocol.String(payload, "value"))
	case "back":
		w.GoBack()
	case "submit":
		for name, v := range protocol.Map(payload, "fields") {
			if s, ok := v.(string); ok {
				w.UpdateField(name, s)
			}
		}
		err := w.Submit()
		var verr *wizard.ValidationError
		if errors.As(err, &verr) {
			p.opts.Metrics.ValidationFailed()
		}
		if verr != nil || errors.Is(err, wizard.ErrBusy) {
			// The visitor already sees the notice or the spinner.
			return true, nil
		}
		return true, err
	case "reopen":
		return true, w.Reopen()
	case "reset":
		return true, w.Reset()
	default:
		return false, nil
	}
	return true, nil
}
