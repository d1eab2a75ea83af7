package limits

import (
	"net"
	"net/http"
	"strings"
	"sync"
)

// ConnectionLimiter caps concurrent live connections per client IP.
type ConnectionLimiter struct {
	mu       sync.Mutex
	maxPerIP int
	counts   map[string]int
}

// NewConnectionLimiter allows maxPerIP simultaneous connections per IP.
// A non-positive value disables the cap.
func NewConnectionLimiter(maxPerIP int) *ConnectionLimiter {
	return &ConnectionLimiter{maxPerIP: maxPerIP, counts: make(map[string]int)}
}

// Acquire reserves a slot for ip.
func (cl *ConnectionLimiter) Acquire(ip string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if cl.maxPerIP > 0 && cl.counts[ip] >= cl.maxPerIP {
		return false
	}
	cl.counts[ip]++
	return true
}

// Release frees a slot taken by Acquire.
func (cl *ConnectionLimiter) Release(ip string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if cl.counts[ip] <= 1 {
		delete(cl.counts, ip)
		return
	}
	cl.counts[ip]--
}

// Count returns the open connections of ip.
func (cl *ConnectionLimiter) Count(ip string) int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.counts[ip]
}

// ClientIP returns the peer address of r. When trustProxy is set, the first
// X-Forwarded-For hop or X-Real-IP wins over it; only enable that behind a
// proxy that overwrites those headers.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
