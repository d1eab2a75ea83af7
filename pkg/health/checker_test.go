package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(context.Context) error { return nil }

func TestRunAllHealthy(t *testing.T) {
	c := NewChecker("1.2.0")
	c.AddCheck("b", ok, time.Second)
	c.AddCriticalCheck("a", ok, time.Second)

	r := c.Run(context.Background())
	assert.Equal(t, StatusHealthy, r.Status)
	assert.Equal(t, "1.2.0", r.Version)
	require.Len(t, r.Checks, 2)
	assert.Equal(t, "a", r.Checks[0].Name)
}

func TestNonCriticalFailureDegrades(t *testing.T) {
	c := NewChecker("")
	c.AddCriticalCheck("content", ok, time.Second)
	c.AddCheck("sessions", func(context.Context) error { return errors.New("busy") }, time.Second)

	r := c.Run(context.Background())
	assert.Equal(t, StatusDegraded, r.Status)
}

func TestCriticalFailureIsUnhealthy(t *testing.T) {
	c := NewChecker("")
	c.AddCriticalCheck("content", func(context.Context) error { return errors.New("not loaded") }, time.Second)

	rec := httptest.NewRecorder()
	c.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var r Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, StatusUnhealthy, r.Status)
	assert.Equal(t, "not loaded", r.Checks[0].Error)
}

func TestCheckTimeout(t *testing.T) {
	c := NewChecker("")
	c.AddCriticalCheck("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}, 10*time.Millisecond)

	r := c.Run(context.Background())
	assert.Equal(t, StatusUnhealthy, r.Status)
}

func TestCapacityCheck(t *testing.T) {
	n := 3
	check := CapacityCheck("live sessions", func() int { return n }, 3)

	err := check(context.Background())
	var ce *CheckError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 3, ce.Details["current"])

	n = 2
	assert.NoError(t, check(context.Background()))
	assert.NoError(t, CapacityCheck("x", func() int { return 99 }, 0)(context.Background()))

	c := NewChecker("")
	c.AddCheck("sessions", CapacityCheck("live sessions", func() int { return 5 }, 5), time.Second)
	r := c.Run(context.Background())
	assert.Equal(t, float64(5), toFloat(r.Checks[0].Details["max"]))
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	}
	return -1
}

func TestLiveness(t *testing.T) {
	rec := httptest.NewRecorder()
	NewChecker("").LivenessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alive")
}
