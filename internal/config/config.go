// Package config loads the site server configuration.
//
// Values start from Default and are overlaid by an optional YAML file, then by
// command-line flags in cmd/agencysite. Durations are written as Go duration
// strings ("750ms", "1m").
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mediaonstake/agencysite/pkg/gesture"
	"github.com/mediaonstake/agencysite/pkg/timeline"
	"github.com/mediaonstake/agencysite/pkg/transport"
	"github.com/mediaonstake/agencysite/pkg/wizard"
)

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Live     LiveConfig     `yaml:"live"`
	Log      LogConfig      `yaml:"log"`
	WhatsApp WhatsAppConfig `yaml:"whatsapp"`
	Content  ContentConfig  `yaml:"content"`
	Timeline timeline.Style `yaml:"timeline"`
}

// ServerConfig covers the HTTP listener.
type ServerConfig struct {
	Address         string        `yaml:"address"`
	PublicURL       string        `yaml:"public_url"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// RequestsPerSecond limits plain HTTP requests per client IP. Zero disables it.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	RequestBurst      int     `yaml:"request_burst"`
	// TrustProxyHeaders takes the client address from X-Forwarded-For or
	// X-Real-IP. Leave it off unless a reverse proxy sets those headers.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

// LiveConfig covers live sockets.
type LiveConfig struct {
	AllowedOrigins      []string      `yaml:"allowed_origins"`
	InsecureDevMode     bool          `yaml:"insecure_dev_mode"`
	ReadTimeout         time.Duration `yaml:"read_timeout"`
	PingInterval        time.Duration `yaml:"ping_interval"`
	MaxMessageSize      int64         `yaml:"max_message_size"`
	EventsPerSecond     float64       `yaml:"events_per_second"`
	EventBurst          int           `yaml:"event_burst"`
	MaxConnectionsPerIP int           `yaml:"max_connections_per_ip"`
	MaxSessions         int           `yaml:"max_sessions"`
	SwipeThreshold      float64       `yaml:"swipe_threshold"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// WhatsAppConfig addresses the contact hand-off.
type WhatsAppConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Recipient   string        `yaml:"recipient"`
	SubmitDelay time.Duration `yaml:"submit_delay"`
}

// ContentConfig points at an optional site copy override.
type ContentConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// Default returns production settings.
func Default() Config {
	tc := transport.DefaultConfig()
	return Config{
		Server: ServerConfig{
			Address:           ":8080",
			PublicURL:         "https://mediaonstake.com",
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   15 * time.Second,
			RequestsPerSecond: 10,
			RequestBurst:      30,
		},
		Live: LiveConfig{
			ReadTimeout:         tc.ReadTimeout,
			PingInterval:        tc.PingInterval,
			MaxMessageSize:      tc.MaxMessageSize,
			EventsPerSecond:     20,
			EventBurst:          40,
			MaxConnectionsPerIP: 20,
			MaxSessions:         5000,
			SwipeThreshold:      gesture.DefaultThreshold,
		},
		Log: LogConfig{Level: "info", JSON: true},
		WhatsApp: WhatsAppConfig{
			BaseURL:     wizard.DefaultBaseURL,
			Recipient:   wizard.DefaultRecipient,
			SubmitDelay: wizard.DefaultDelay,
		},
		Timeline: timeline.Style{
			Alignment: timeline.AlignAlternating,
			Card:      timeline.CardDefault,
			Effect:    timeline.EffectGlow,
			Reveal:    timeline.RevealFade,
			Connector: timeline.ConnectorLine,
		},
	}
}

// Development relaxes origin checks and limits and logs text at debug level.
func Development() Config {
	c := Default()
	c.Server.Address = "localhost:3000"
	c.Server.PublicURL = "http://localhost:3000"
	c.Server.RequestsPerSecond = 0
	c.Live.InsecureDevMode = true
	c.Live.MaxConnectionsPerIP = 0
	c.Log = LogConfig{Level: "debug"}
	return c
}

// Load reads path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	return LoadOver(Default(), path)
}

// LoadOver reads path over base. An empty path returns base.
func LoadOver(base Config, path string) (Config, error) {
	c := base
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Transport converts the live settings into a transport configuration.
func (c Config) Transport() transport.Config {
	tc := transport.DefaultConfig()
	tc.ReadTimeout = c.Live.ReadTimeout
	tc.PingInterval = c.Live.PingInterval
	tc.MaxMessageSize = c.Live.MaxMessageSize
	tc.AllowedOrigins = c.Live.AllowedOrigins
	tc.InsecureDevMode = c.Live.InsecureDevMode
	return tc
}

// Wizard converts the WhatsApp settings into a wizard configuration.
func (c Config) Wizard() wizard.Config {
	return wizard.Config{
		BaseURL:   c.WhatsApp.BaseURL,
		Recipient: c.WhatsApp.Recipient,
		Delay:     c.WhatsApp.SubmitDelay,
	}
}

// FieldError names one invalid setting.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(field, reason string) {
		errs = append(errs, &FieldError{Field: field, Reason: reason})
	}

	if strings.TrimSpace(c.Server.Address) == "" {
		bad("server.address", "must not be empty")
	}
	if c.Server.PublicURL != "" {
		if u, err := url.Parse(c.Server.PublicURL); err != nil || u.Scheme == "" || u.Host == "" {
			bad("server.public_url", "must be an absolute URL")
		}
	}
	if c.Server.RequestsPerSecond < 0 {
		bad("server.requests_per_second", "must not be negative")
	}
	if c.Server.RequestsPerSecond > 0 && c.Server.RequestBurst < 1 {
		bad("server.request_burst", "must be at least 1 when rate limiting is on")
	}
	if c.Live.EventsPerSecond <= 0 {
		bad("live.events_per_second", "must be positive")
	}
	if c.Live.EventBurst < 1 {
		bad("live.event_burst", "must be at least 1")
	}
	if c.Live.SwipeThreshold <= 0 {
		bad("live.swipe_threshold", "must be positive")
	}
	if c.Live.MaxConnectionsPerIP < 0 {
		bad("live.max_connections_per_ip", "must not be negative")
	}
	if c.Live.MaxSessions < 0 {
		bad("live.max_sessions", "must not be negative")
	}
	for _, o := range c.Live.AllowedOrigins {
		if o == "*" && !c.Live.InsecureDevMode {
			bad("live.allowed_origins", `"*" requires insecure_dev_mode`)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		bad("log.level", fmt.Sprintf("unknown level %q", c.Log.Level))
	}
	if u, err := url.Parse(c.WhatsApp.BaseURL); err != nil || u.Scheme != "https" || u.Host == "" {
		bad("whatsapp.base_url", "must be an https URL")
	}
	if !isDigits(c.WhatsApp.Recipient) {
		bad("whatsapp.recipient", "must be an international number without + or spaces")
	}
	if c.WhatsApp.SubmitDelay < 0 || c.WhatsApp.SubmitDelay > 10*time.Second {
		bad("whatsapp.submit_delay", "must be between 0 and 10s")
	}
	if c.Content.Watch && c.Content.Path == "" {
		bad("content.watch", "requires content.path")
	}
	return errors.Join(errs...)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
