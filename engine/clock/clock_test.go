package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickDelta(t *testing.T) {
	current := time.Unix(1000, 0)
	c := newWithNow(func() time.Time { return current })

	current = current.Add(16 * time.Millisecond)
	assert.InDelta(t, 0.016, float64(c.Tick()), 1e-6)

	current = current.Add(32 * time.Millisecond)
	assert.InDelta(t, 0.032, float64(c.Tick()), 1e-6)
}

func TestSinceStart(t *testing.T) {
	current := time.Unix(1000, 0)
	c := newWithNow(func() time.Time { return current })

	current = current.Add(2500 * time.Millisecond)
	c.Tick()
	current = current.Add(500 * time.Millisecond)

	assert.InDelta(t, 3.0, float64(c.SinceStart()), 1e-6)
}
