package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestProfiler(t *testing.T) (*Profiler, *fakeClock, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(zap.New(core))
	p.now = clock.now
	p.lastTime = clock.t
	return p, clock, logs
}

func TestProfiler_ReportsOncePerInterval(t *testing.T) {
	p, clock, logs := newTestProfiler(t)

	for range 59 {
		clock.advance(10 * time.Millisecond)
		assert.False(t, p.Tick())
	}
	clock.advance(410 * time.Millisecond)
	require.True(t, p.Tick())

	assert.InDelta(t, 60, p.Last().FPS, 1e-9)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "frame stats", entry.Message)
	assert.Equal(t, "profiler", entry.LoggerName)
	assert.InDelta(t, 60, entry.ContextMap()["fps"], 1e-9)

	// the window resets after reporting
	clock.advance(500 * time.Millisecond)
	assert.False(t, p.Tick())
}

func TestProfiler_SetInterval(t *testing.T) {
	p, clock, logs := newTestProfiler(t)
	p.SetInterval(100 * time.Millisecond)
	p.SetInterval(0)

	clock.advance(100 * time.Millisecond)
	assert.True(t, p.Tick())
	assert.Equal(t, 1, logs.Len())
}

func TestNewProfiler_NilLogger(t *testing.T) {
	p := NewProfiler(nil)
	assert.NotPanics(t, func() { p.Tick() })
}
