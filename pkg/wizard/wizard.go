// Package wizard implements the contact form that collects a lead over three
// steps and hands the result off to WhatsApp.
//
// A Wizard is owned by one live component and is not safe for concurrent
// use. The only deferred work, the hand-off after Submit, runs through a
// Scheduler that the owner points back at its own event loop.
package wizard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mediaonstake/agencysite/pkg/notify"
)

// Step is a position in the form.
type Step int

const (
	StepSelecting Step = iota
	StepDetailing
	StepSuccess
)

// String returns the step name.
func (s Step) String() string {
	switch s {
	case StepSelecting:
		return "selecting"
	case StepDetailing:
		return "detailing"
	case StepSuccess:
		return "success"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Defaults for the hand-off.
const (
	DefaultBaseURL   = "https://wa.me"
	DefaultRecipient = "917379340224"
	DefaultDelay     = time.Second
)

var (
	// ErrWrongStep is returned when an operation is not valid at the current step.
	ErrWrongStep = errors.New("wizard: operation not valid at current step")
	// ErrBusy is returned by Submit while a hand-off is pending.
	ErrBusy = errors.New("wizard: hand-off already pending")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("wizard: closed")
)

// ValidationError lists the required fields that were blank.
type ValidationError struct {
	Missing []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return "wizard: missing required fields: " + strings.Join(names, ", ")
}

// Notices shown by the wizard.
var (
	NoticeMissing = notify.Notice{
		Title:       "Missing Information",
		Description: "Please fill in all required fields (Name and Email)",
		Variant:     notify.VariantDestructive,
	}
	NoticeRedirect = notify.Notice{
		Title:       "Redirecting to WhatsApp",
		Description: "You'll be redirected to WhatsApp to send your message",
	}
	// NoticeRetry follows a hand-off the page could not complete.
	NoticeRetry = notify.Notice{
		Title:       "Message not sent",
		Description: "Please try sending your message again",
		Variant:     notify.VariantDestructive,
	}
)

// Opener opens a deep link in a new browsing context.
type Opener interface {
	Open(url string)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string)

// Open calls f(url).
func (f OpenerFunc) Open(url string) { f(url) }

// Config holds the hand-off target and timing.
type Config struct {
	BaseURL   string
	Recipient string
	Delay     time.Duration
}

// DefaultConfig returns the production hand-off settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Recipient: DefaultRecipient,
		Delay:     DefaultDelay,
	}
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithNotifier sets the notice surface.
func WithNotifier(n notify.Notifier) Option {
	return func(w *Wizard) { w.notifier = n }
}

// WithOpener sets the deep-link opener.
func WithOpener(o Opener) Option {
	return func(w *Wizard) { w.opener = o }
}

// WithScheduler sets how the hand-off delay is scheduled.
func WithScheduler(s Scheduler) Option {
	return func(w *Wizard) { w.scheduler = s }
}

// State is a read-only view of the wizard for rendering.
type State struct {
	Step       Step
	Fields     Fields
	Submitting bool
	Link       string
}

// Wizard is the contact form state machine.
type Wizard struct {
	cfg        Config
	step       Step
	fields     Fields
	submitting bool
	link       string

	notifier  notify.Notifier
	opener    Opener
	scheduler Scheduler

	// gen invalidates scheduled hand-offs that belong to an earlier submit.
	gen    uint64
	cancel func()
	closed bool
}

// New creates a wizard at StepSelecting with empty fields.
func New(cfg Config, opts ...Option) *Wizard {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Recipient == "" {
		cfg.Recipient = DefaultRecipient
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}

	w := &Wizard{
		cfg:       cfg,
		notifier:  notify.Discard,
		opener:    OpenerFunc(func(string) {}),
		scheduler: TimerScheduler{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Fields returns the collected values.
func (w *Wizard) Fields() Fields { return w.fields }

// Submitting reports whether a hand-off is pending.
func (w *Wizard) Submitting() bool { return w.submitting }

// Link returns the last deep link opened, if any.
func (w *Wizard) Link() string { return w.link }

// State returns a snapshot for rendering.
func (w *Wizard) State() State {
	return State{Step: w.step, Fields: w.fields, Submitting: w.submitting, Link: w.link}
}

// SelectOption picks the service and moves on to the contact details.
func (w *Wizard) SelectOption(value string) error {
	if w.closed {
		return ErrClosed
	}
	if w.step != StepSelecting {
		return ErrWrongStep
	}
	w.fields.Service = value
	w.step = StepDetailing
	return nil
}

// UpdateField stores value under name while the details step is shown.
// Unknown names and the service field are ignored.
func (w *Wizard) UpdateField(name, value string) bool {
	if w.closed || w.step != StepDetailing {
		return false
	}
	f, ok := ParseField(name)
	if !ok || f == FieldService {
		return false
	}
	return w.fields.set(f, value)
}

// GoBack returns to the previous step and drops a pending hand-off.
func (w *Wizard) GoBack() {
	if w.closed || w.step == StepSelecting {
		return
	}
	w.abort()
	w.step--
}

// CancelSubmit drops a pending hand-off and leaves the wizard on the details
// step so the visitor can submit again. It reports whether one was pending.
func (w *Wizard) CancelSubmit() bool {
	if w.closed || !w.submitting {
		return false
	}
	w.abort()
	return true
}

// Submit validates the contact details and schedules the hand-off.
// Called before a service is chosen it only advances to the details step.
func (w *Wizard) Submit() error {
	if w.closed {
		return ErrClosed
	}

	switch w.step {
	case StepSelecting:
		w.step = StepDetailing
		return nil
	case StepSuccess:
		return ErrWrongStep
	case StepDetailing:
	}

	if w.submitting {
		return ErrBusy
	}

	if err := validate(w.fields); err != nil {
		w.notifier.Notify(NoticeMissing)
		return err
	}

	w.submitting = true
	w.gen++
	gen := w.gen
	w.cancel = w.scheduler.After(w.cfg.Delay, func() { w.handOff(gen) })
	return nil
}

func validate(fs Fields) error {
	var missing []Field
	if fs.Name == "" {
		missing = append(missing, FieldName)
	}
	if fs.Email == "" {
		missing = append(missing, FieldEmail)
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// handOff runs when the submit delay elapses. It does nothing if the
// wizard was closed, reset or stepped back in the meantime.
func (w *Wizard) handOff(gen uint64) {
	if w.closed || gen != w.gen || !w.submitting {
		return
	}
	w.cancel = nil

	w.link = DeepLink(w.cfg.BaseURL, w.cfg.Recipient, FormatMessage(w.fields))
	w.opener.Open(w.link)
	w.notifier.Notify(NoticeRedirect)

	w.submitting = false
	w.step = StepSuccess
}

// Reopen opens the last deep link again from the success screen.
func (w *Wizard) Reopen() error {
	if w.closed {
		return ErrClosed
	}
	if w.step != StepSuccess || w.link == "" {
		return ErrWrongStep
	}
	w.opener.Open(w.link)
	return nil
}

// Reset clears the form after a successful hand-off.
func (w *Wizard) Reset() error {
	if w.closed {
		return ErrClosed
	}
	if w.step != StepSuccess {
		return ErrWrongStep
	}
	w.abort()
	w.fields = Fields{}
	w.link = ""
	w.step = StepSelecting
	return nil
}

// Close cancels pending work. The wizard rejects every operation afterwards.
func (w *Wizard) Close() {
	if w.closed {
		return
	}
	w.abort()
	w.closed = true
}

func (w *Wizard) abort() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.submitting = false
	w.gen++
}
