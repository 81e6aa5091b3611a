package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectToNDC(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 400, Height: 200}

	tests := []struct {
		name   string
		px, py float64
		want   [2]float32
	}{
		{"center", 210, 120, [2]float32{0, 0}},
		{"top left", 10, 20, [2]float32{-1, 1}},
		{"bottom right", 410, 220, [2]float32{1, -1}},
		{"right middle", 410, 120, [2]float32{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ToNDC(tt.px, tt.py)
			assert.InDelta(t, tt.want[0], got[0], 1e-6)
			assert.InDelta(t, tt.want[1], got[1], 1e-6)
		})
	}
}

func TestRectToNDCEmpty(t *testing.T) {
	assert.Equal(t, [2]float32{}, Rect{}.ToNDC(5, 5))
}
