package wizard

import (
	"sync"
	"time"
)

// Scheduler runs fn once after d. Calling the returned cancel before the
// deadline prevents the run.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, fn func()) func()

// After calls f(d, fn).
func (f SchedulerFunc) After(d time.Duration, fn func()) func() { return f(d, fn) }

// TimerScheduler runs fn on its own goroutine via time.AfterFunc. The
// wizard is not safe for concurrent use, so callers that share it with an
// event loop should post fn into that loop instead.
type TimerScheduler struct{}

// After schedules fn with time.AfterFunc.
func (TimerScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// ManualScheduler holds tasks until Fire is called.
type ManualScheduler struct {
	mu    sync.Mutex
	next  int
	tasks map[int]func()
	order []int
}

// After queues fn.
func (m *ManualScheduler) After(_ time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tasks == nil {
		m.tasks = make(map[int]func())
	}
	id := m.next
	m.next++
	m.tasks[id] = fn
	m.order = append(m.order, id)
	return func() {
		m.mu.Lock()
		delete(m.tasks, id)
		m.mu.Unlock()
	}
}

// Pending returns the number of queued tasks.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Fire runs every queued task in scheduling order.
func (m *ManualScheduler) Fire() {
	m.mu.Lock()
	var run []func()
	for _, id := range m.order {
		if fn, ok := m.tasks[id]; ok {
			run = append(run, fn)
		}
	}
	m.tasks = nil
	m.order = nil
	m.mu.Unlock()

	for _, fn := range run {
		fn()
	}
}
