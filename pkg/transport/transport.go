// Package transport carries protocol frames between the browser and the
// server over WebSocket.
package transport

import (
	"errors"
	"time"
)

var (
	ErrNotConnected     = errors.New("transport not connected")
	ErrConnectionClosed = errors.New("connection closed")
	ErrSendTimeout      = errors.New("send timeout")
	ErrOriginNotAllowed = errors.New("origin not allowed")
)

// Config tunes a connection.
type Config struct {
	// ReadTimeout bounds the wait for the next client frame. The browser
	// sends a heartbeat well within it.
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	PingInterval   time.Duration
	MaxMessageSize int64
	SendBuffer     int
	ReceiveBuffer  int

	// AllowedOrigins lists cross-origin pages allowed to connect. Same-origin
	// requests are always accepted. "*" allows any origin.
	AllowedOrigins []string
	// InsecureDevMode skips origin checks. Development only.
	InsecureDevMode bool
}

// DefaultConfig returns production settings.
func DefaultConfig() Config {
	return Config{
		ReadTimeout:    60 * time.Second,
		WriteTimeout:   10 * time.Second,
		PingInterval:   30 * time.Second,
		MaxMessageSize: 64 * 1024,
		SendBuffer:     64,
		ReceiveBuffer:  64,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.PingInterval <= 0 {
		c.PingInterval = d.PingInterval
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	if c.SendBuffer <= 0 {
		c.SendBuffer = d.SendBuffer
	}
	if c.ReceiveBuffer <= 0 {
		c.ReceiveBuffer = d.ReceiveBuffer
	}
	return c
}
