package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYear(t *testing.T) {
	assert.Equal(t, 2031, Year(Fixed(time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC))))
	assert.Equal(t, time.Now().Year(), Year(nil))
}
