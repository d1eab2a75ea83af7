// Package health runs liveness and readiness checks for the site process.
package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Status is the outcome of a check or of the whole report.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

const defaultTimeout = 2 * time.Second

// Result is the outcome of one check.
type Result struct {
	Name       string         `json:"name"`
	Status     Status         `json:"status"`
	DurationMS int64          `json:"duration_ms"`
	Error      string         `json:"error,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// Report aggregates every check.
type Report struct {
	Status    Status    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Checks    []Result  `json:"checks"`
}

type check struct {
	name     string
	fn       func(context.Context) error
	timeout  time.Duration
	critical bool
}

// Checker holds the registered checks.
type Checker struct {
	mu      sync.RWMutex
	version string
	checks  []check
}

// NewChecker creates a checker that reports version.
func NewChecker(version string) *Checker {
	return &Checker{version: version}
}

// AddCheck registers a check whose failure degrades the service.
func (c *Checker) AddCheck(name string, fn func(context.Context) error, timeout time.Duration) {
	c.add(check{name: name, fn: fn, timeout: timeout})
}

// AddCriticalCheck registers a check whose failure makes the service unhealthy.
func (c *Checker) AddCriticalCheck(name string, fn func(context.Context) error, timeout time.Duration) {
	c.add(check{name: name, fn: fn, timeout: timeout, critical: true})
}

func (c *Checker) add(ch check) {
	if ch.timeout <= 0 {
		ch.timeout = defaultTimeout
	}
	c.mu.Lock()
	c.checks = append(c.checks, ch)
	c.mu.Unlock()
}

// Run executes every check concurrently.
func (c *Checker) Run(ctx context.Context) Report {
	c.mu.RLock()
	checks := append([]check(nil), c.checks...)
	version := c.version
	c.mu.RUnlock()

	results := make([]Result, len(checks))
	var wg sync.WaitGroup
	for i, ch := range checks {
		wg.Add(1)
		go func(i int, ch check) {
			defer wg.Done()
			results[i] = runOne(ctx, ch)
		}(i, ch)
	}
	wg.Wait()

	report := Report{Status: StatusHealthy, Version: version, Timestamp: time.Now(), Checks: results}
	for i, r := range results {
		if r.Status == StatusHealthy {
			continue
		}
		if checks[i].critical {
			report.Status = StatusUnhealthy
		} else if report.Status == StatusHealthy {
			report.Status = StatusDegraded
		}
	}
	sort.Slice(report.Checks, func(a, b int) bool { return report.Checks[a].Name < report.Checks[b].Name })
	return report
}

func runOne(ctx context.Context, ch check) Result {
	ctx, cancel := context.WithTimeout(ctx, ch.timeout)
	defer cancel()

	start := time.Now()
	err := ch.fn(ctx)
	r := Result{Name: ch.name, Status: StatusHealthy, DurationMS: time.Since(start).Milliseconds()}
	if err != nil {
		r.Status = StatusUnhealthy
		r.Error = err.Error()
		var ce *CheckError
		if errors.As(err, &ce) {
			r.Details = ce.Details
		}
	}
	return r
}

// LivenessHandler answers 200 while the process is serving.
func (c *Checker) LivenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "alive", "timestamp": time.Now()})
	})
}

// ReadinessHandler answers 503 when a critical check fails.
func (c *Checker) ReadinessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report := c.Run(r.Context())
		code := http.StatusOK
		if report.Status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, report)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// CheckError is a failure with structured details for the report.
type CheckError struct {
	Message string
	Details map[string]any
}

func (e *CheckError) Error() string { return e.Message }

// CapacityCheck fails once count() reaches max. A non-positive max disables it.
func CapacityCheck(what string, count func() int, max int) func(context.Context) error {
	return func(ctx context.Context) error {
		if max <= 0 {
			return nil
		}
		if n := count(); n >= max {
			return &CheckError{
				Message: what + " at capacity",
				Details: map[string]any{"current": n, "max": max},
			}
		}
		return nil
	}
}
