package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-labs/common"
	"github.com/stretchr/testify/assert"
)

// newHeadless builds a window without a platform window for exercising the pure parts.
func newHeadless(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{title: "oxy-labs", width: 800, height: 800}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func TestBuilderOptions(t *testing.T) {
	w := newHeadless(
		WithTitle("bacteria"),
		WithSize(640, 480),
		WithSizeLimits(100, 50, 1000, 900),
	)
	assert.Equal(t, "bacteria", w.Title())
	assert.Equal(t, 640, w.Width())
	assert.Equal(t, 480, w.Height())
	assert.Equal(t, 100, w.minWidth)
	assert.Equal(t, 900, w.maxHeight)
	assert.Equal(t, common.Rect{Width: 640, Height: 480}, w.Bounds())
}

func TestWriteSetsStatus(t *testing.T) {
	w := newHeadless()
	n, err := w.Write([]byte("Player wins!\n"))
	assert.NoError(t, err)
	assert.Equal(t, 13, n)
	assert.Equal(t, "Player wins!", w.status)
	assert.Equal(t, "oxy-labs | Player wins!", composeTitle(w.title, w.status))

	w.SetTitle("next")
	assert.Empty(t, w.status)
	assert.Equal(t, "next", composeTitle(w.title, w.status))
}

func TestHeadlessWindowIsNotRunning(t *testing.T) {
	w := newHeadless()
	assert.False(t, w.IsRunning())
	assert.Nil(t, w.SurfaceDescriptor())
	assert.Error(t, w.Close())
}
