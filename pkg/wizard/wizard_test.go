package wizard

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaonstake/agencysite/pkg/notify"
)

type harness struct {
	w      *Wizard
	sched  *ManualScheduler
	notes  *notify.Recorder
	opened []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{sched: &ManualScheduler{}, notes: &notify.Recorder{}}
	h.w = New(DefaultConfig(),
		WithScheduler(h.sched),
		WithNotifier(h.notes),
		WithOpener(OpenerFunc(func(u string) { h.opened = append(h.opened, u) })),
	)
	return h
}

func TestSelectOptionAdvances(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.w.SelectOption("SEO"))
	assert.Equal(t, "SEO", h.w.Fields().Service)
	assert.Equal(t, StepDetailing, h.w.Step())

	assert.ErrorIs(t, h.w.SelectOption("Meta Ads"), ErrWrongStep)
	assert.Equal(t, "SEO", h.w.Fields().Service)
}

func TestUpdateField(t *testing.T) {
	h := newHarness(t)

	assert.False(t, h.w.UpdateField("name", "Jane"), "details are not editable before a service is chosen")

	require.NoError(t, h.w.SelectOption("SEO"))
	assert.True(t, h.w.UpdateField("name", "Jane"))
	assert.False(t, h.w.UpdateField("phone", "123"))
	assert.False(t, h.w.UpdateField("service", "Other"))

	assert.Equal(t, "Jane", h.w.Fields().Name)
	assert.Equal(t, "SEO", h.w.Fields().Service)
}

func TestGoBack(t *testing.T) {
	h := newHarness(t)

	h.w.GoBack()
	assert.Equal(t, StepSelecting, h.w.Step())

	require.NoError(t, h.w.SelectOption("SEO"))
	h.w.GoBack()
	assert.Equal(t, StepSelecting, h.w.Step())
}

func TestSubmitRequiresNameAndEmail(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.w.SelectOption("SEO"))
	h.w.UpdateField("email", "jane@x.com")

	err := h.w.Submit()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []Field{FieldName}, verr.Missing)

	assert.Equal(t, StepDetailing, h.w.Step())
	assert.False(t, h.w.Submitting())
	assert.Zero(t, h.sched.Pending())

	n, ok := h.notes.Last()
	require.True(t, ok)
	assert.Equal(t, NoticeMissing, n)
	assert.Equal(t, notify.VariantDestructive, n.Variant)
}

func TestSubmitEmptyIsMissing(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.w.SelectOption("SEO"))
	h.w.UpdateField("name", "Jane")

	var verr *ValidationError
	require.ErrorAs(t, h.w.Submit(), &verr)
	assert.Equal(t, []Field{FieldEmail}, verr.Missing)
}

func TestSubmitWhitespaceIsNotEmpty(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.w.SelectOption("SEO"))
	h.w.UpdateField("name", " ")
	h.w.UpdateField("email", " ")

	require.NoError(t, h.w.Submit())
	assert.True(t, h.w.Submitting())
}

func TestSubmitHandsOff(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.w.SelectOption("SEO"))
	h.w.UpdateField("name", "Jane")
	h.w.UpdateField("email", "jane@x.com")

	require.NoError(t, h.w.Submit())
	assert.True(t, h.w.Submitting())
	assert.Equal(t, StepDetailing, h.w.Step())
	assert.Empty(t, h.opened)

	assert.ErrorIs(t, h.w.Submit(), ErrBusy)

	h.sched.Fire()

	assert.Equal(t, StepSuccess, h.w.Step())
	assert.False(t, h.w.Submitting())
	require.Len(t, h.opened, 1)

	link := h.opened[0]
	assert.True(t, strings.HasPrefix(link, "https://wa.me/917379340224?text="))
	assert.Contains(t, link, "SEO")
	assert.Contains(t, link, "Jane")
	assert.Contains(t, link, "jane%40x.com")
	assert.NotContains(t, link, "+")
	assert.Equal(t, link, h.w.Link())

	n, _ := h.notes.Last()
	assert.Equal(t, NoticeRedirect, n)
}

func TestSubmitAtSelectingAdvancesOnly(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.w.Submit())
	assert.Equal(t, StepDetailing, h.w.Step())
	assert.Zero(t, h.sched.Pending())
	assert.Empty(t, h.notes.Notices())
}

func TestGoBackCancelsHandOff(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.w.SelectOption("SEO"))
	h.w.UpdateField("name", "Jane")
	h.w.UpdateField("email", "jane@x.com")
	require.NoError(t, h.w.Submit())

	h.w.GoBack()
	h.sched.Fire()

	assert.Equal(t, StepSelecting, h.w.Step())
	assert.Empty(t, h.opened)
}

func TestCancelSubmitKeepsDetails(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.w.CancelSubmit())

	require.NoError(t, h.w.SelectOption("SEO"))
	h.w.UpdateField("name", "Jane")
	h.w.UpdateField("email", "jane@x.com")
	require.NoError(t, h.w.Submit())

	assert.True(t, h.w.CancelSubmit())
	assert.False(t, h.w.Submitting())
	assert.Equal(t, StepDetailing, h.w.Step())
	assert.Equal(t, "Jane", h.w.Fields().Name)
	assert.Zero(t, h.sched.Pending())

	require.NoError(t, h.w.Submit(), "the visitor can submit again")
	h.sched.Fire()
	assert.Len(t, h.opened, 1)
}

func TestCloseStopsPendingHandOff(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.w.SelectOption("SEO"))
	h.w.UpdateField("name", "Jane")
	h.w.UpdateField("email", "jane@x.com")
	require.NoError(t, h.w.Submit())

	h.w.Close()
	assert.Zero(t, h.sched.Pending())
	assert.ErrorIs(t, h.w.Submit(), ErrClosed)
	assert.Empty(t, h.opened)
}

func TestStaleTaskIsIgnored(t *testing.T) {
	// a scheduler that ignores cancellation still must not mutate a closed wizard
	var queued []func()
	sched := SchedulerFunc(func(_ time.Duration, fn func()) func() {
		queued = append(queued, fn)
		return func() {}
	})
	opened := 0
	w := New(DefaultConfig(), WithScheduler(sched), WithOpener(OpenerFunc(func(string) { opened++ })))
	require.NoError(t, w.SelectOption("SEO"))
	w.UpdateField("name", "Jane")
	w.UpdateField("email", "jane@x.com")
	require.NoError(t, w.Submit())
	w.Close()

	for _, fn := range queued {
		fn()
	}
	assert.Zero(t, opened)
	assert.Equal(t, StepDetailing, w.Step())
}

func TestResetFromSuccess(t *testing.T) {
	h := newHarness(t)
	assert.ErrorIs(t, h.w.Reset(), ErrWrongStep)

	require.NoError(t, h.w.SelectOption("SEO"))
	h.w.UpdateField("name", "Jane")
	h.w.UpdateField("email", "jane@x.com")
	h.w.UpdateField("company", "Acme")
	require.NoError(t, h.w.Submit())
	h.sched.Fire()

	require.NoError(t, h.w.Reopen())
	assert.Len(t, h.opened, 2)

	require.NoError(t, h.w.Reset())
	assert.Equal(t, StepSelecting, h.w.Step())
	for k, v := range h.w.Fields().Map() {
		assert.Empty(t, v, k)
	}
	assert.Empty(t, h.w.Link())
}

func TestFormatMessage(t *testing.T) {
	got := FormatMessage(Fields{
		Service: "SEO & Content",
		Name:    "Jane",
		Email:   "jane@x.com",
		Message: "Need more leads",
	})
	want := "*New Contact Form Submission*\n\n" +
		"*Service:* SEO & Content\n" +
		"*Name:* Jane\n" +
		"*Email:* jane@x.com\n" +
		"*Company:* \n" +
		"*Project Details:* Need more leads\n\n" +
		"*Submitted via Website Contact Form*"
	assert.Equal(t, want, got)
}

func TestFormatMessageKeepsFieldWhitespace(t *testing.T) {
	got := FormatMessage(Fields{
		Service: "SEO",
		Name:    "  indented",
		Email:   "jane@x.com",
		Message: "line one\n  line two ",
	})
	assert.Contains(t, got, "*Name:*   indented\n")
	assert.Contains(t, got, "*Project Details:* line one\n  line two \n\n")
	assert.True(t, strings.HasPrefix(got, "*New Contact Form Submission*"))
	assert.True(t, strings.HasSuffix(got, "*Submitted via Website Contact Form*"))
}

func TestDeepLinkEncoding(t *testing.T) {
	link := DeepLink("https://wa.me/", "917379340224", "a b&c=d+e\n*x* (ok!)")
	assert.Equal(t, "https://wa.me/917379340224?text=a%20b%26c%3Dd%2Be%0A*x*%20(ok!)", link)
}

func TestParseField(t *testing.T) {
	f, ok := ParseField("company")
	assert.True(t, ok)
	assert.Equal(t, FieldCompany, f)

	_, ok = ParseField("Company")
	assert.False(t, ok)
}
