package bacteria

import (
	"bytes"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/Carmen-Shannon/oxy-labs/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestSimulator(t *testing.T, options ...SimulatorOption) Simulator {
	t.Helper()
	options = append([]SimulatorOption{WithSeed(42)}, options...)
	sim, err := NewSimulator(options...)
	require.NoError(t, err)
	return sim
}

func TestNewSimulatorDefaults(t *testing.T) {
	sim := newTestSimulator(t)

	assert.Equal(t, DefaultCount, sim.Count())
	assert.Equal(t, float32(DefaultDiskRadius), sim.DiskRadius())
	assert.Equal(t, float32(DefaultScale), sim.Scale())
	assert.Equal(t, GameScore{}, sim.Score())
	assert.Equal(t, OutcomeNone, sim.Outcome())
	assert.Zero(t, sim.Ticks())

	circles := sim.Circles()
	require.Len(t, circles, DefaultCount)
	for i, c := range circles {
		assert.True(t, c.Alive)
		assert.Equal(t, float32(1), c.Radius)
		assert.Equal(t, DefaultPalette[i], c.Color)
		dist := math.Hypot(float64(c.Center[0]), float64(c.Center[1]))
		assert.InDelta(t, DefaultDiskRadius, dist, 1e-3)
	}
}

func TestNewSimulatorValidation(t *testing.T) {
	tests := []struct {
		name    string
		options []SimulatorOption
		want    error
	}{
		{name: "zero count", options: []SimulatorOption{WithCount(0)}, want: ErrInvalidCount},
		{name: "negative count", options: []SimulatorOption{WithCount(-3)}, want: ErrInvalidCount},
		{name: "empty palette", options: []SimulatorOption{WithPalette(Palette{})}, want: ErrEmptyPalette},
		{name: "negative speed", options: []SimulatorOption{WithSpeed(-1)}, want: ErrInvalidSpeed},
		{name: "zero scale", options: []SimulatorOption{WithScale(0)}, want: ErrInvalidScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := NewSimulator(tt.options...)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, sim)
		})
	}
}

func TestInitializeDeterministic(t *testing.T) {
	a := newTestSimulator(t, WithSeed(7))
	b := newTestSimulator(t, WithSeed(7))
	c := newTestSimulator(t, WithSeed(8))

	assert.Equal(t, a.Circles(), b.Circles())
	assert.NotEqual(t, a.Circles(), c.Circles())

	seen := map[any]bool{}
	for _, circle := range a.Circles() {
		assert.False(t, seen[circle.ID], "duplicate id %s", circle.ID)
		seen[circle.ID] = true
	}
}

func TestInitializePaletteWraps(t *testing.T) {
	sim := newTestSimulator(t, WithCount(12))
	circles := sim.Circles()

	require.Len(t, circles, 12)
	assert.Equal(t, DefaultPalette[0], circles[10].Color)
	assert.Equal(t, DefaultPalette[1], circles[11].Color)
}

func TestInitializeAngleUnits(t *testing.T) {
	theta := rand.New(rand.NewPCG(3, 3)).Float64() * 360

	raw, err := Initialize(rand.New(rand.NewPCG(3, 3)), 1, 150, DefaultPalette, false)
	require.NoError(t, err)
	assert.InDelta(t, 150*math.Sin(theta), raw[0].Center[0], 1e-3)
	assert.InDelta(t, 150*math.Cos(theta), raw[0].Center[1], 1e-3)

	deg, err := Initialize(rand.New(rand.NewPCG(3, 3)), 1, 150, DefaultPalette, true)
	require.NoError(t, err)
	rad := theta * math.Pi / 180
	assert.InDelta(t, 150*math.Sin(rad), deg[0].Center[0], 1e-3)
	assert.InDelta(t, 150*math.Cos(rad), deg[0].Center[1], 1e-3)
}

func TestTickGrowsAliveCircles(t *testing.T) {
	sim := newTestSimulator(t, WithSpeed(0.5))

	sim.Tick()
	sim.Tick()

	assert.Equal(t, 2, sim.Ticks())
	for _, c := range sim.Circles() {
		assert.Equal(t, float32(2), c.Radius)
	}
	assert.Zero(t, sim.Score().Computer)
}

func TestTickComputerScoreIsLevelTriggered(t *testing.T) {
	var outcomes []Outcome
	sim := newTestSimulator(t,
		WithCount(1),
		WithSpeed(1),
		WithOutcomeCallback(func(o Outcome, _ GameScore) { outcomes = append(outcomes, o) }),
	)

	for range 59 {
		sim.Tick()
	}
	assert.Equal(t, float32(60), sim.Circles()[0].Radius)
	assert.Zero(t, sim.Score().Computer, "radius equal to the threshold does not score")

	sim.Tick()
	assert.Equal(t, 1, sim.Score().Computer)
	sim.Tick()
	assert.Equal(t, 2, sim.Score().Computer)
	assert.Equal(t, OutcomeNone, sim.Outcome())

	sim.Tick()
	assert.Equal(t, 3, sim.Score().Computer)
	assert.Equal(t, OutcomeComputerWins, sim.Outcome())

	radius := sim.Circles()[0].Radius
	for range 10 {
		sim.Tick()
	}
	assert.Equal(t, 62, sim.Ticks())
	assert.Equal(t, radius, sim.Circles()[0].Radius, "growth is frozen after the outcome")
	assert.Equal(t, 3, sim.Score().Computer)
	assert.Equal(t, []Outcome{OutcomeComputerWins}, outcomes)
}

func TestTickScoresEveryCircleAboveThreshold(t *testing.T) {
	sim := newTestSimulator(t, WithSpeed(1))

	for range 60 {
		sim.Tick()
	}

	assert.Equal(t, DefaultCount, sim.Score().Computer)
	assert.Equal(t, OutcomeComputerWins, sim.Outcome())
}

func TestHitTestDistance(t *testing.T) {
	tests := []struct {
		name   string
		offset float32
		hit    bool
	}{
		{name: "center", offset: 0, hit: true},
		{name: "just inside", offset: 0.999, hit: true},
		{name: "just outside", offset: 1.001, hit: false},
		{name: "far", offset: 3, hit: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSimulator(t, WithCount(1))
			c := sim.Circles()[0]
			point := [2]float32{c.Center[0]/sim.Scale() + tt.offset, c.Center[1] / sim.Scale()}

			id, ok := sim.HitTest(point)

			assert.Equal(t, tt.hit, ok)
			got, _ := sim.Circle(c.ID)
			if tt.hit {
				assert.Equal(t, c.ID, id)
				assert.False(t, got.Alive)
				assert.Equal(t, 1, sim.Score().Player)
			} else {
				assert.True(t, got.Alive)
				assert.Zero(t, sim.Score().Player)
			}
		})
	}
}

func TestHitTestFirstMatchWins(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	sim := newTestSimulator(t,
		WithCount(2),
		WithMessageSink(&buf),
		WithOutcomeCallback(func(o Outcome, s GameScore) {
			calls++
			assert.Equal(t, OutcomePlayerWins, o)
			assert.Equal(t, GameScore{Player: 2}, s)
		}),
	)
	circles := sim.Circles()

	// Both centers are 0.75 from the origin in device units, inside radius 1.
	id, ok := sim.HitTest([2]float32{0, 0})
	require.True(t, ok)
	assert.Equal(t, circles[0].ID, id)
	assert.Equal(t, OutcomeNone, sim.Outcome())

	id, ok = sim.HitTest([2]float32{0, 0})
	require.True(t, ok)
	assert.Equal(t, circles[1].ID, id)
	assert.Equal(t, OutcomePlayerWins, sim.Outcome())

	_, ok = sim.HitTest([2]float32{0, 0})
	assert.False(t, ok)

	sim.Tick()
	assert.Zero(t, sim.Ticks())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Player wins!", buf.String())
}

func TestHitTestIgnoredAfterComputerWins(t *testing.T) {
	sim := newTestSimulator(t, WithSpeed(1))
	for range 60 {
		sim.Tick()
	}
	require.Equal(t, OutcomeComputerWins, sim.Outcome())

	_, ok := sim.HitTest([2]float32{0, 0})

	assert.False(t, ok)
	assert.Zero(t, sim.Score().Player)
}

func TestClickConvertsPixels(t *testing.T) {
	sim := newTestSimulator(t, WithCount(2))
	bounds := common.Rect{Left: 10, Top: 20, Width: 400, Height: 400}

	_, ok := sim.Click(1000, 1000, bounds)
	assert.False(t, ok)

	_, ok = sim.Click(210, 220, bounds)
	assert.True(t, ok)
	assert.Equal(t, 1, sim.Score().Player)
}

func TestCircleLookup(t *testing.T) {
	sim := newTestSimulator(t)
	want := sim.Circles()[2]

	got, ok := sim.Circle(want.ID)
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = sim.Circle([16]byte{})
	assert.False(t, ok)
}

func TestCirclesReturnsCopy(t *testing.T) {
	sim := newTestSimulator(t)
	circles := sim.Circles()
	circles[0].Alive = false

	assert.True(t, sim.Circles()[0].Alive)
}

func TestReset(t *testing.T) {
	sim := newTestSimulator(t, WithSpeed(1))
	first := sim.Circles()
	for range 60 {
		sim.Tick()
	}
	require.Equal(t, OutcomeComputerWins, sim.Outcome())

	require.NoError(t, sim.Reset())

	assert.Equal(t, OutcomeNone, sim.Outcome())
	assert.Equal(t, GameScore{}, sim.Score())
	assert.Zero(t, sim.Ticks())
	circles := sim.Circles()
	require.Len(t, circles, DefaultCount)
	assert.NotEqual(t, first[0].ID, circles[0].ID)
	for _, c := range circles {
		assert.True(t, c.Alive)
		assert.Equal(t, float32(1), c.Radius)
	}
}

func TestOutcomeIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sim := newTestSimulator(t, WithCount(1), WithLogger(zap.New(core)))

	_, ok := sim.HitTest([2]float32{0, 0})
	require.True(t, ok)

	entries := logs.FilterMessage("bacteria game over").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Player wins!", entries[0].ContextMap()["outcome"])
	assert.Zero(t, logs.FilterMessage("circle hit").Len(), "hits log at debug level")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Player wins!", OutcomePlayerWins.String())
	assert.Equal(t, "Computer wins!", OutcomeComputerWins.String())
	assert.Equal(t, "In progress", OutcomeNone.String())
	assert.Equal(t, "player 1 | computer 2", GameScore{Player: 1, Computer: 2}.String())
}
