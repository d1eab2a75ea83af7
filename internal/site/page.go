// Package site provides the live component behind the agency page.
//
// Each browser tab gets its own Page. The router drives every method from
// one goroutine per connection, so Page keeps its state without locks.
package site

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/mediaonstake/agencysite/internal/content"
	"github.com/mediaonstake/agencysite/internal/website"
	"github.com/mediaonstake/agencysite/internal/website/components"
	"github.com/mediaonstake/agencysite/internal/website/landing"
	"github.com/mediaonstake/agencysite/pkg/carousel"
	"github.com/mediaonstake/agencysite/pkg/clock"
	"github.com/mediaonstake/agencysite/pkg/core"
	"github.com/mediaonstake/agencysite/pkg/logging"
	"github.com/mediaonstake/agencysite/pkg/metrics"
	"github.com/mediaonstake/agencysite/pkg/notify"
	"github.com/mediaonstake/agencysite/pkg/protocol"
	"github.com/mediaonstake/agencysite/pkg/router"
	"github.com/mediaonstake/agencysite/pkg/timeline"
	"github.com/mediaonstake/agencysite/pkg/wizard"
)

// Options configures every Page a factory creates.
type Options struct {
	Store  *content.Store
	Clock  clock.Clock
	Wizard wizard.Config
	Style  timeline.Style
	// SwipeThreshold is the minimum drag distance for the carousels.
	SwipeThreshold float64
	// PublicURL overrides the canonical URL in the page head.
	PublicURL string
	// Timer runs the submit delay. The task it fires only posts a message
	// back to the page's event loop.
	Timer wizard.Scheduler
	// Metrics counts hand-offs and failed submits. It may be nil.
	Metrics *metrics.Metrics
}

// NewFactory returns a router factory producing a fresh Page per request
// or connection.
func NewFactory(opts Options) router.Factory {
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Timer == nil {
		opts.Timer = wizard.TimerScheduler{}
	}
	return func() core.Component { return New(opts) }
}

// Page is the agency landing page as a live component.
type Page struct {
	core.BaseComponent
	opts Options
	log  logging.Logger

	// handOffLost is set off the loop when the submit delay fired but its
	// message never reached HandleInfo.
	handOffLost atomic.Bool

	site     *content.Site
	version  uint64
	pageCfg  website.PageConfig
	ctaLink  string
	chatLink string

	wizard       *wizard.Wizard
	portfolio    *carousel.Carousel[content.Project]
	team         *carousel.Carousel[content.Member]
	testimonials *carousel.Carousel[content.Testimonial]
	timeline     *timeline.Timeline

	nav      components.NavbarState
	expanded map[string]bool

	fullscreen     bool
	preview        bool
	previewLoading bool
	imageLoaded    bool
}

// handOff is the info message that brings the submit delay back onto the
// event loop.
type handOff struct {
	run func()
}

// New creates an unmounted Page.
func New(opts Options) *Page {
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Timer == nil {
		opts.Timer = wizard.TimerScheduler{}
	}
	return &Page{opts: opts}
}

// Name identifies the component in logs.
func (p *Page) Name() string { return "agency-page" }

// Mount pins the current content snapshot for the lifetime of the page and
// creates the section state.
func (p *Page) Mount(ctx context.Context, params core.Params, session core.Session) error {
	p.log = logging.L(ctx)
	p.site = p.opts.Store.Site()
	p.version = p.opts.Store.Version()
	p.pageCfg = website.PageConfigFor(p.site, p.opts.PublicURL)

	wcfg := p.opts.Wizard
	if wcfg.BaseURL == "" {
		wcfg.BaseURL = wizard.DefaultBaseURL
	}
	if wcfg.Recipient == "" {
		wcfg.Recipient = wizard.DefaultRecipient
	}
	p.ctaLink = wizard.DeepLink(wcfg.BaseURL, wcfg.Recipient, p.site.CTAMessage)
	p.chatLink = wizard.ChatLink(wcfg.BaseURL, wcfg.Recipient)

	p.wizard = wizard.New(wcfg,
		wizard.WithNotifier(notify.Func(p.pushNotice)),
		wizard.WithOpener(wizard.OpenerFunc(p.pushOpen)),
		wizard.WithScheduler(wizard.SchedulerFunc(p.schedule)),
	)

	swipe := carousel.WithSwipeThreshold(p.opts.SwipeThreshold)
	p.portfolio = carousel.New(p.site.Portfolio.Projects, swipe,
		carousel.WithOnChange(func(prev, next int) {
			p.preview = false
			p.previewLoading = false
			p.imageLoaded = false
		}))
	p.team = carousel.New(p.site.Team.Members, swipe)
	p.testimonials = carousel.New(p.site.Testimonials.Items, swipe)
	p.timeline = timeline.New(len(p.site.Process.Events))
	p.expanded = make(map[string]bool)

	logging.L(ctx).Debug("page mounted",
		logging.Int64("content_version", int64(p.version)),
		logging.Int("projects", p.portfolio.Len()))
	return nil
}

// Render returns the full document. The router diffs its regions.
func (p *Page) Render(ctx context.Context) core.Renderer {
	return core.RendererFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, landing.Render(p.view()))
		return err
	})
}

func (p *Page) view() landing.View {
	return landing.View{
		Site:             p.site,
		Page:             p.pageCfg,
		Style:            p.opts.Style,
		Nav:              p.nav,
		ExpandedServices: p.expanded,
		Timeline:         p.timeline,
		Portfolio: components.PortfolioState{
			Projects:       p.portfolio,
			Fullscreen:     p.fullscreen,
			Preview:        p.preview,
			PreviewLoading: p.previewLoading,
			ImageLoaded:    p.imageLoaded,
		},
		Team:         p.team,
		Testimonials: p.testimonials,
		Contact:      p.wizard.State(),
		CTALink:      p.ctaLink,
		ChatLink:     p.chatLink,
		Year:         clock.Year(p.opts.Clock),
	}
}

// HandleInfo runs messages posted back onto the loop.
func (p *Page) HandleInfo(ctx context.Context, msg any) error {
	p.recoverHandOff()
	switch m := msg.(type) {
	case handOff:
		m.run()
	default:
		logging.L(ctx).Debug("unknown info message ignored")
	}
	return nil
}

// Terminate cancels a pending hand-off so it cannot touch a discarded page.
func (p *Page) Terminate(ctx context.Context, reason core.TerminateReason) error {
	if p.wizard != nil {
		p.wizard.Close()
	}
	return nil
}

// schedule arms the timer and, when it fires, posts the task to the loop
// instead of running it on the timer goroutine.
func (p *Page) schedule(d time.Duration, fn func()) func() {
	s := p.Socket()
	return p.opts.Timer.After(d, func() {
		if s == nil {
			return
		}
		err := s.SendInfo(handOff{run: fn})
		switch {
		case err == nil:
		case errors.Is(err, core.ErrSocketClosed):
			p.log.Debug("hand-off after disconnect dropped")
		default:
			p.log.Warn("hand-off not delivered", logging.Err(err))
			p.handOffLost.Store(true)
		}
	})
}

// recoverHandOff clears a submit whose hand-off was lost so the form does not
// stay stuck in its sending state.
func (p *Page) recoverHandOff() {
	if !p.handOffLost.Swap(false) {
		return
	}
	if p.wizard.CancelSubmit() {
		p.pushNotice(wizard.NoticeRetry)
	}
}

func (p *Page) pushNotice(n notify.Notice) {
	if s := p.Socket(); s != nil {
		_ = s.Push(protocol.EventNotice, n.Payload())
	}
}

func (p *Page) pushOpen(url string) {
	p.opts.Metrics.HandoffOpened()
	if s := p.Socket(); s != nil {
		_ = s.Push(protocol.EventOpen, map[string]any{"url": url})
	}
}
