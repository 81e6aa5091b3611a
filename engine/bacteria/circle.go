package bacteria

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-labs/common"
	"github.com/google/uuid"
)

// Circle is a single growing bacteria unit.
type Circle struct {
	// ID is the circle's stable identity for its whole lifetime.
	ID uuid.UUID

	// Center is the position in disk units, on the circle of radius DiskRadius around the origin.
	Center [2]float32

	// Radius is the current radius. It starts at 1 and grows while the circle is alive.
	Radius float32

	// Color is the fill color assigned at creation.
	Color common.RGBA

	// Alive reports whether the circle still grows and can be hit.
	Alive bool
}

// Palette is the ordered list of colors handed out to circles by creation index.
type Palette []common.RGBA

// DefaultPalette holds the ten stock circle colors.
var DefaultPalette = Palette{
	{1.0, 0.0, 0.0, 1},
	{0.0, 1.0, 0.0, 1},
	{0.0, 0.0, 1.0, 1},
	{1.0, 1.0, 0.0, 1},
	{1.0, 0.0, 1.0, 1},
	{0.0, 1.0, 1.0, 1},
	{0.5, 0.5, 0.0, 1},
	{0.0, 0.5, 0.5, 1},
	{0.5, 0.0, 0.5, 1},
	{0.2, 1.0, 0.2, 1},
}

// Initialize creates count alive circles of radius 1 placed on the disk boundary.
//
// Each center is (r·sin(θ), r·cos(θ)) with θ drawn uniformly from [0, 360). When degrees is false
// θ is passed to sin/cos unchanged, as radians; when true it is converted
// to radians first. Colors are taken from the palette by creation index, wrapping around when
// count exceeds the palette length. IDs are drawn from rng so a fixed seed gives identical circles.
//
// Parameters:
//   - rng: the random source for angles and IDs
//   - count: the number of circles (must be > 0)
//   - diskRadius: the radius of the placement disk
//   - palette: the colors to assign (must not be empty)
//   - degrees: true to interpret θ as degrees
//
// Returns:
//   - []Circle: the new circles in creation order
//   - error: ErrInvalidCount or ErrEmptyPalette
func Initialize(rng *rand.Rand, count int, diskRadius float32, palette Palette, degrees bool) ([]Circle, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}

	ids := randReader{rng: rng}
	circles := make([]Circle, count)
	for i := range circles {
		theta := rng.Float64() * 360
		if degrees {
			theta = theta * math.Pi / 180
		}
		id, err := uuid.NewRandomFromReader(ids)
		if err != nil {
			return nil, fmt.Errorf("failed to generate circle id: %w", err)
		}
		circles[i] = Circle{
			ID: id,
			Center: [2]float32{
				diskRadius * float32(math.Sin(theta)),
				diskRadius * float32(math.Cos(theta)),
			},
			Radius: 1,
			Color:  palette[i%len(palette)],
			Alive:  true,
		}
	}
	return circles, nil
}

// randReader adapts a math/rand generator to io.Reader for deterministic UUIDs.
type randReader struct {
	rng *rand.Rand
}

func (r randReader) Read(p []byte) (int, error) {
	var word [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(word[:], r.rng.Uint64())
		copy(p[i:], word[:])
	}
	return len(p), nil
}
