// Package bacteria implements the growth and hit-test simulation behind the bacteria clicking game.
//
// A Simulator owns a fixed list of circles placed on the rim of a disk. Every Tick grows the alive
// circles and charges the computer one point per circle that is above the growth threshold. Clicks
// are hit-tested in creation order and the first circle under the pointer dies and scores for the
// player. The simulator is not safe for concurrent use; the engine drives it from a single thread.
package bacteria

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/Carmen-Shannon/oxy-labs/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultCount is the number of circles in a game.
	DefaultCount = 5
	// DefaultDiskRadius is the radius of the disk the circles are placed on.
	DefaultDiskRadius = 150
	// DefaultSpeed is the radius growth per tick.
	DefaultSpeed = 0.1
	// DefaultThreshold is the radius above which an alive circle scores for the computer.
	DefaultThreshold = 60
	// DefaultComputerLimit is the computer score that must be exceeded for the computer to win.
	DefaultComputerLimit = 2
	// DefaultScale converts disk units into normalized device coordinates.
	DefaultScale = 200
)

type simulator struct {
	count         int
	diskRadius    float32
	speed         float32
	threshold     float32
	computerLimit int
	scale         float32
	palette       Palette
	degrees       bool

	rng  *rand.Rand
	seed *uint64

	logger    *zap.Logger
	sink      io.Writer
	onOutcome func(Outcome, GameScore)

	circles []Circle
	score   GameScore
	outcome Outcome
	ticks   int
}

// Simulator runs one bacteria game.
type Simulator interface {
	// Tick advances the game by one frame. Alive circles grow by the configured speed, then every
	// alive circle whose radius exceeds the threshold adds one to the computer score. When the
	// computer score exceeds its limit the game ends and growth stops. Tick does nothing once the
	// game has an outcome.
	Tick()

	// HitTest checks a point in normalized device coordinates against the alive circles in creation
	// order. A circle is hit when the distance between the point and its center divided by the scale
	// is strictly less than its current radius. Only the first hit circle is affected: it dies and
	// the player scores. HitTest does nothing once the game has an outcome.
	//
	// Parameters:
	//   - point: the click position in normalized device coordinates
	//
	// Returns:
	//   - uuid.UUID: the ID of the circle that was hit
	//   - bool: true if a circle was hit
	HitTest(point [2]float32) (uuid.UUID, bool)

	// Click converts a pixel position on the drawable surface into normalized device coordinates
	// and hit-tests it.
	//
	// Parameters:
	//   - px, py: the pointer position in pixels
	//   - bounds: the drawable surface's bounding rectangle in the same pixel space
	//
	// Returns:
	//   - uuid.UUID: the ID of the circle that was hit
	//   - bool: true if a circle was hit
	Click(px, py float64, bounds common.Rect) (uuid.UUID, bool)

	// Circles returns a copy of the circles in creation order.
	//
	// Returns:
	//   - []Circle: the circles
	Circles() []Circle

	// Circle looks up a circle by ID.
	//
	// Parameters:
	//   - id: the circle ID
	//
	// Returns:
	//   - Circle: the circle state
	//   - bool: false if no circle has the ID
	Circle(id uuid.UUID) (Circle, bool)

	// Score returns the current counters.
	//
	// Returns:
	//   - GameScore: the score
	Score() GameScore

	// Outcome returns the terminal state, or OutcomeNone while running.
	//
	// Returns:
	//   - Outcome: the outcome
	Outcome() Outcome

	// Ticks returns the number of ticks that advanced the game.
	//
	// Returns:
	//   - int: the tick count
	Ticks() int

	// Count returns the number of circles the game started with.
	//
	// Returns:
	//   - int: the circle count
	Count() int

	// DiskRadius returns the placement disk radius in disk units.
	//
	// Returns:
	//   - float32: the disk radius
	DiskRadius() float32

	// Scale returns the factor that converts disk units into normalized device coordinates.
	//
	// Returns:
	//   - float32: the scale
	Scale() float32

	// Reset starts a new game with fresh circles from the same random source.
	//
	// Returns:
	//   - error: an error if the circles could not be created
	Reset() error
}

var _ Simulator = &simulator{}

// NewSimulator creates a Simulator with the given options and places its circles.
//
// Parameters:
//   - options: functional options overriding the defaults
//
// Returns:
//   - Simulator: the ready-to-run simulator
//   - error: a validation error for the configured values
func NewSimulator(options ...SimulatorOption) (Simulator, error) {
	s := &simulator{
		count:         DefaultCount,
		diskRadius:    DefaultDiskRadius,
		speed:         DefaultSpeed,
		threshold:     DefaultThreshold,
		computerLimit: DefaultComputerLimit,
		scale:         DefaultScale,
		palette:       DefaultPalette,
		logger:        zap.NewNop(),
	}
	for _, opt := range options {
		opt(s)
	}

	if s.speed < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSpeed, s.speed)
	}
	if s.scale <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidScale, s.scale)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		if s.seed != nil {
			seed = *s.seed
		}
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *simulator) Reset() error {
	circles, err := Initialize(s.rng, s.count, s.diskRadius, s.palette, s.degrees)
	if err != nil {
		return err
	}
	s.circles = circles
	s.score = GameScore{}
	s.outcome = OutcomeNone
	s.ticks = 0
	s.logger.Debug("bacteria game started",
		zap.Int("count", s.count),
		zap.Float32("diskRadius", s.diskRadius),
		zap.Float32("speed", s.speed),
	)
	return nil
}

func (s *simulator) Tick() {
	if s.outcome != OutcomeNone {
		return
	}
	s.ticks++

	for i := range s.circles {
		c := &s.circles[i]
		if !c.Alive {
			continue
		}
		c.Radius += s.speed
		// Level-triggered: scores on every tick the circle stays above the threshold.
		if c.Radius > s.threshold {
			s.score.Computer++
		}
	}

	if s.score.Computer > s.computerLimit {
		s.finish(OutcomeComputerWins)
	}
}

func (s *simulator) HitTest(point [2]float32) (uuid.UUID, bool) {
	if s.outcome != OutcomeNone {
		return uuid.Nil, false
	}

	for i := range s.circles {
		c := &s.circles[i]
		if !c.Alive {
			continue
		}
		dx := point[0] - c.Center[0]/s.scale
		dy := point[1] - c.Center[1]/s.scale
		if dx*dx+dy*dy >= c.Radius*c.Radius {
			continue
		}

		c.Alive = false
		s.score.Player++
		s.logger.Debug("circle hit",
			zap.Stringer("id", c.ID),
			zap.Float32("radius", c.Radius),
			zap.Int("player", s.score.Player),
		)
		if s.score.Player == s.count {
			s.finish(OutcomePlayerWins)
		}
		return c.ID, true
	}
	return uuid.Nil, false
}

func (s *simulator) Click(px, py float64, bounds common.Rect) (uuid.UUID, bool) {
	return s.HitTest(bounds.ToNDC(px, py))
}

// finish records the outcome and notifies the sink and callback exactly once.
func (s *simulator) finish(o Outcome) {
	if s.outcome != OutcomeNone {
		return
	}
	s.outcome = o
	s.logger.Info("bacteria game over",
		zap.Stringer("outcome", o),
		zap.Int("player", s.score.Player),
		zap.Int("computer", s.score.Computer),
		zap.Int("ticks", s.ticks),
	)
	if s.sink != nil {
		if _, err := io.WriteString(s.sink, o.String()); err != nil {
			s.logger.Warn("failed to write outcome message", zap.Error(err))
		}
	}
	if s.onOutcome != nil {
		s.onOutcome(o, s.score)
	}
}

func (s *simulator) Circles() []Circle {
	out := make([]Circle, len(s.circles))
	copy(out, s.circles)
	return out
}

func (s *simulator) Circle(id uuid.UUID) (Circle, bool) {
	for _, c := range s.circles {
		if c.ID == id {
			return c, true
		}
	}
	return Circle{}, false
}

func (s *simulator) Score() GameScore {
	return s.score
}

func (s *simulator) Outcome() Outcome {
	return s.outcome
}

func (s *simulator) Ticks() int {
	return s.ticks
}

func (s *simulator) Count() int {
	return s.count
}

func (s *simulator) DiskRadius() float32 {
	return s.diskRadius
}

func (s *simulator) Scale() float32 {
	return s.scale
}
