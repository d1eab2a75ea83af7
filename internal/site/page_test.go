package site

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaonstake/agencysite/internal/content"
	"github.com/mediaonstake/agencysite/pkg/clock"
	"github.com/mediaonstake/agencysite/pkg/core"
	"github.com/mediaonstake/agencysite/pkg/livetest"
	"github.com/mediaonstake/agencysite/pkg/metrics"
	"github.com/mediaonstake/agencysite/pkg/protocol"
	"github.com/mediaonstake/agencysite/pkg/wizard"
)

func mountPage(t *testing.T) (*livetest.Harness, *wizard.ManualScheduler) {
	return mountPageWith(t, nil)
}

func mountPageWith(t *testing.T, m *metrics.Metrics) (*livetest.Harness, *wizard.ManualScheduler) {
	t.Helper()
	s, err := content.Default()
	require.NoError(t, err)

	timer := &wizard.ManualScheduler{}
	p := New(Options{
		Store:   content.NewStore(s),
		Clock:   clock.Fixed(time.Date(2031, 5, 1, 0, 0, 0, 0, time.UTC)),
		Wizard:  wizard.Config{Delay: time.Second},
		Timer:   timer,
		Metrics: m,
	})
	return livetest.Mount(t, p, core.Params{}), timer
}

func TestRenderHasRegionsAndYear(t *testing.T) {
	h, _ := mountPage(t)
	html := h.HTML()

	for _, region := range []string{"nav", "services", "process", "portfolio", "team", "testimonials", "contact"} {
		assert.Contains(t, html, `data-region="`+region+`"`)
	}
	assert.Contains(t, html, "&copy; 2031 MediaOnStake")
	assert.Contains(t, html, "01<span>/05</span>")
	assert.Contains(t, html, "https://wa.me/917379340224?text=Hi%2C%20I%20want%20to%20book")
}

func TestSwipeAdvancesPortfolioAndClosesPreview(t *testing.T) {
	h, _ := mountPage(t)

	h.MustEvent("portfolio:preview", nil)
	assert.Contains(t, h.HTML(), "Loading website preview...")

	h.MustEvent("portfolio:touchstart", map[string]any{"x": 100.0})
	h.MustEvent("portfolio:touchmove", map[string]any{"x": 40.0})
	h.MustEvent("portfolio:touchend", nil)

	html := h.HTML()
	assert.Contains(t, html, "02<span>/05</span>")
	assert.NotContains(t, html, "Loading website preview...")
}

func TestShortDragIsATap(t *testing.T) {
	h, _ := mountPage(t)

	h.MustEvent("testimonials:touchstart", map[string]any{"x": 100.0})
	h.MustEvent("testimonials:touchmove", map[string]any{"x": 90.0})
	h.MustEvent("testimonials:touchend", nil)

	assert.Contains(t, h.HTML(), "1 / 4")
}

func TestCarouselJumpOutOfRangeIsIgnored(t *testing.T) {
	h, _ := mountPage(t)

	h.MustEvent("team:jump", map[string]any{"value": 3})
	before := h.HTML()
	h.MustEvent("team:jump", map[string]any{"value": 99})
	assert.Equal(t, before, h.HTML())

	assert.ErrorIs(t, h.Event("team:jump", nil), ErrBadPayload)
}

func TestEscapeClosesOverlays(t *testing.T) {
	h, _ := mountPage(t)

	h.MustEvent("portfolio:fullscreen", nil)
	assert.Contains(t, h.HTML(), "Open Live Site")

	h.MustEvent("portfolio:escape", nil)
	assert.NotContains(t, h.HTML(), "Open Live Site")
}

func TestContactFlowHandsOffToWhatsApp(t *testing.T) {
	h, timer := mountPage(t)

	h.MustEvent("contact:select", map[string]any{"value": "SEO & Content"})
	assert.Contains(t, h.HTML(), "Almost done!")

	h.MustEvent("contact:submit", nil)
	notices := h.Pushed(protocol.EventNotice)
	require.Len(t, notices, 1)
	assert.Equal(t, "destructive", notices[0].Payload["variant"])
	assert.Zero(t, timer.Pending())

	h.MustEvent("contact:input", map[string]any{"field": "name", "value": "Jane"})
	h.MustEvent("contact:submit", map[string]any{
		"fields": map[string]any{"email": "jane@x.com"},
	})
	assert.Contains(t, h.HTML(), "Preparing WhatsApp...")

	timer.Fire()
	require.Equal(t, 1, h.Pending())
	h.Flush()

	opens := h.Pushed(protocol.EventOpen)
	require.Len(t, opens, 1)
	url, _ := opens[0].Payload["url"].(string)
	assert.True(t, strings.HasPrefix(url, "https://wa.me/917379340224?text="))
	assert.Contains(t, url, "SEO%20%26%20Content")
	assert.Contains(t, url, "jane%40x.com")
	assert.Contains(t, h.HTML(), "Message Ready!")

	h.MustEvent("contact:reset", nil)
	assert.Contains(t, h.HTML(), "What do you need?")
}

func TestTerminateCancelsPendingHandOff(t *testing.T) {
	h, timer := mountPage(t)

	h.MustEvent("contact:select", map[string]any{"value": "SEO & Content"})
	h.MustEvent("contact:submit", map[string]any{
		"fields": map[string]any{"name": "Jane", "email": "jane@x.com"},
	})
	require.Equal(t, 1, timer.Pending())

	require.NoError(t, h.Component.Terminate(context.Background(), core.TerminateNormal))
	assert.Zero(t, timer.Pending())
	h.Flush()
	assert.Empty(t, h.Pushed(protocol.EventOpen))
}

func TestProcessProgressHighlightsSteps(t *testing.T) {
	h, _ := mountPage(t)

	h.MustEvent("process:progress", map[string]any{"value": 0.6})
	html := h.HTML()
	assert.Equal(t, 3, strings.Count(html, "timeline-item right reached")+strings.Count(html, "timeline-item left reached"))
	assert.Contains(t, html, "height:75.00%")
}

func TestServiceToggle(t *testing.T) {
	h, _ := mountPage(t)

	h.MustEvent("services:toggle", map[string]any{"value": "0-0"})
	assert.Contains(t, h.HTML(), `aria-expanded="true"`)
	h.MustEvent("services:toggle", map[string]any{"value": "0-0"})

	assert.ErrorIs(t, h.Event("services:toggle", map[string]any{"value": "9-9"}), ErrBadPayload)
}

func TestNavEvents(t *testing.T) {
	h, _ := mountPage(t)

	h.MustEvent("nav:toggle", nil)
	assert.Contains(t, h.HTML(), `class="mobile-menu"`)
	h.MustEvent("nav:close", nil)
	assert.NotContains(t, h.HTML(), `class="mobile-menu"`)

	h.MustEvent("nav:scroll", map[string]any{"scrolled": true})
	assert.Contains(t, h.HTML(), `class="nav scrolled"`)
}

func TestUnknownEventIsIgnored(t *testing.T) {
	h, _ := mountPage(t)
	assert.NoError(t, h.Event("bogus:thing", nil))
	assert.NoError(t, h.Event("portfolio:wiggle", nil))
}

func TestContactMetrics(t *testing.T) {
	m := metrics.New("test")
	h, timer := mountPageWith(t, m)

	h.MustEvent("contact:select", map[string]any{"value": "SEO"})
	h.MustEvent("contact:submit", nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures))

	h.MustEvent("contact:submit", map[string]any{
		"fields": map[string]any{"name": "Jane", "email": "jane@x.com"},
	})
	timer.Fire()
	h.Flush()
	h.MustEvent("contact:reopen", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Handoffs))
	assert.Len(t, h.Pushed(protocol.EventOpen), 2)
}

func TestUndeliveredHandOffClearsSubmit(t *testing.T) {
	h, timer := mountPage(t)
	page := h.Component.(*Page)

	h.MustEvent("contact:select", map[string]any{"value": "SEO"})
	h.MustEvent("contact:submit", map[string]any{
		"fields": map[string]any{"name": "Jane", "email": "jane@x.com"},
	})
	require.True(t, page.wizard.Submitting())

	h.Socket.SetInfoSink(func(any) bool { return false })
	timer.Fire()
	assert.Zero(t, h.Pending())
	assert.True(t, page.wizard.Submitting(), "nothing changes until the loop runs again")

	h.MustEvent("nav:toggle", nil)

	assert.False(t, page.wizard.Submitting())
	assert.Equal(t, wizard.StepDetailing, page.wizard.Step())
	assert.Empty(t, h.Pushed(protocol.EventOpen))
	notices := h.Pushed(protocol.EventNotice)
	require.NotEmpty(t, notices)
	assert.Equal(t, wizard.NoticeRetry.Title, notices[len(notices)-1].Payload["title"])
	assert.NotContains(t, h.HTML(), "Preparing WhatsApp...")
}
