package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaonstake/agencysite/pkg/timeline"
)

func TestDefaultsValidate(t *testing.T) {
	require.NoError(t, Default().Validate())
	require.NoError(t, Development().Validate())

	c := Default()
	assert.Equal(t, "https://wa.me", c.WhatsApp.BaseURL)
	assert.Equal(t, "917379340224", c.WhatsApp.Recipient)
	assert.Equal(t, time.Second, c.WhatsApp.SubmitDelay)
	assert.Equal(t, float64(50), c.Live.SwipeThreshold)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
server:
  address: ":9000"
whatsapp:
  recipient: "15551234567"
  submit_delay: 250ms
timeline:
  alignment: left
  connector: dashed
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, ":9000", c.Server.Address)
	assert.Equal(t, "15551234567", c.WhatsApp.Recipient)
	assert.Equal(t, 250*time.Millisecond, c.WhatsApp.SubmitDelay)
	assert.Equal(t, timeline.AlignLeft, c.Timeline.Alignment)
	assert.Equal(t, timeline.ConnectorDashed, c.Timeline.Connector)
	// untouched keys keep defaults
	assert.Equal(t, "https://wa.me", c.WhatsApp.BaseURL)
	assert.Equal(t, 40, c.Live.EventBurst)

	wc := c.Wizard()
	assert.Equal(t, "15551234567", wc.Recipient)
	assert.Equal(t, 250*time.Millisecond, wc.Delay)
}

func TestLoadRejectsUnknownTimelineStyle(t *testing.T) {
	_, err := Load(writeFile(t, "timeline:\n  card: sparkly\n"))
	assert.ErrorContains(t, err, "sparkly")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestValidateCollectsErrors(t *testing.T) {
	c := Default()
	c.WhatsApp.Recipient = "+91 737"
	c.WhatsApp.BaseURL = "http://wa.me"
	c.Log.Level = "loud"
	c.Live.AllowedOrigins = []string{"*"}
	c.Content.Watch = true

	err := c.Validate()
	require.Error(t, err)
	for _, field := range []string{"whatsapp.recipient", "whatsapp.base_url", "log.level", "live.allowed_origins", "content.watch"} {
		assert.ErrorContains(t, err, field)
	}

	var fe *FieldError
	assert.ErrorAs(t, err, &fe)
}

func TestTransportSettings(t *testing.T) {
	c := Development()
	c.Live.AllowedOrigins = []string{"https://preview.mediaonstake.com"}
	tc := c.Transport()
	assert.True(t, tc.InsecureDevMode)
	assert.Equal(t, c.Live.AllowedOrigins, tc.AllowedOrigins)
	assert.Equal(t, c.Live.MaxMessageSize, tc.MaxMessageSize)
}

func TestLoadOverDevelopmentKeepsDevSettings(t *testing.T) {
	path := writeFile(t, "whatsapp:\n  recipient: \"15551234567\"\n")
	c, err := LoadOver(Development(), path)
	require.NoError(t, err)

	assert.True(t, c.Live.InsecureDevMode)
	assert.Equal(t, "localhost:3000", c.Server.Address)
	assert.Equal(t, "15551234567", c.WhatsApp.Recipient)
}
