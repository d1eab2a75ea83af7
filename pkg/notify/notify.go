// Package notify carries user-visible notices from live components to the
// page's toast surface.
package notify

import "sync"

// Variant is the severity of a notice.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDestructive
)

// String returns the variant name sent to the browser.
func (v Variant) String() string {
	switch v {
	case VariantDefault:
		return "default"
	case VariantDestructive:
		return "destructive"
	default:
		return "default"
	}
}

// Notice is one toast message.
type Notice struct {
	Title       string
	Description string
	Variant     Variant
}

// Payload returns the notice as an event payload.
func (n Notice) Payload() map[string]any {
	return map[string]any{
		"title":       n.Title,
		"description": n.Description,
		"variant":     n.Variant.String(),
	}
}

// Notifier shows notices to the user.
type Notifier interface {
	Notify(Notice)
}

// Func adapts a function to Notifier.
type Func func(Notice)

// Notify calls f(n).
func (f Func) Notify(n Notice) { f(n) }

// Discard drops every notice.
var Discard Notifier = Func(func(Notice) {})

// Recorder keeps every notice it receives.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify records n.
func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
}

// Notices returns a copy of the recorded notices.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Last returns the most recent notice.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}
