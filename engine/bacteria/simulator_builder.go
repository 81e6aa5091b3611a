package bacteria

import (
	"io"
	"math/rand/v2"

	"go.uber.org/zap"
)

// SimulatorOption is a functional option for configuring a Simulator via NewSimulator.
type SimulatorOption func(*simulator)

// WithCount sets the number of circles in the game.
//
// Parameters:
//   - count: the circle count (must be > 0)
//
// Returns:
//   - SimulatorOption: a function that applies the count option to a simulator
func WithCount(count int) SimulatorOption {
	return func(s *simulator) {
		s.count = count
	}
}

// WithDiskRadius sets the radius of the disk the circles are placed on.
//
// Parameters:
//   - r: the disk radius in disk units
//
// Returns:
//   - SimulatorOption: a function that applies the disk radius option to a simulator
func WithDiskRadius(r float32) SimulatorOption {
	return func(s *simulator) {
		s.diskRadius = r
	}
}

// WithSpeed sets the radius growth per tick.
//
// Parameters:
//   - speed: the growth increment (must not be negative)
//
// Returns:
//   - SimulatorOption: a function that applies the speed option to a simulator
func WithSpeed(speed float32) SimulatorOption {
	return func(s *simulator) {
		s.speed = speed
	}
}

// WithThreshold sets the radius above which an alive circle scores for the computer.
//
// Parameters:
//   - threshold: the radius threshold
//
// Returns:
//   - SimulatorOption: a function that applies the threshold option to a simulator
func WithThreshold(threshold float32) SimulatorOption {
	return func(s *simulator) {
		s.threshold = threshold
	}
}

// WithComputerLimit sets the computer score that must be exceeded for the computer to win.
//
// Parameters:
//   - limit: the computer score limit
//
// Returns:
//   - SimulatorOption: a function that applies the limit option to a simulator
func WithComputerLimit(limit int) SimulatorOption {
	return func(s *simulator) {
		s.computerLimit = limit
	}
}

// WithScale sets the factor that converts disk units into normalized device coordinates.
// It must match the w component the circle vertex shader writes.
//
// Parameters:
//   - scale: the scale factor (must be > 0)
//
// Returns:
//   - SimulatorOption: a function that applies the scale option to a simulator
func WithScale(scale float32) SimulatorOption {
	return func(s *simulator) {
		s.scale = scale
	}
}

// WithPalette sets the colors handed out to circles by creation index.
//
// Parameters:
//   - palette: the colors (must not be empty)
//
// Returns:
//   - SimulatorOption: a function that applies the palette option to a simulator
func WithPalette(palette Palette) SimulatorOption {
	return func(s *simulator) {
		s.palette = palette
	}
}

// WithRand injects the random source used for placement. It takes precedence over WithSeed.
//
// Parameters:
//   - rng: the random source
//
// Returns:
//   - SimulatorOption: a function that applies the random source option to a simulator
func WithRand(rng *rand.Rand) SimulatorOption {
	return func(s *simulator) {
		s.rng = rng
	}
}

// WithSeed seeds a PCG random source for reproducible placement.
//
// Parameters:
//   - seed: the seed value
//
// Returns:
//   - SimulatorOption: a function that applies the seed option to a simulator
func WithSeed(seed uint64) SimulatorOption {
	return func(s *simulator) {
		s.seed = &seed
	}
}

// WithDegreeAngles makes placement interpret the random angle as degrees.
//
// Parameters:
//   - degrees: true to convert the angle to radians before placement
//
// Returns:
//   - SimulatorOption: a function that applies the angle option to a simulator
func WithDegreeAngles(degrees bool) SimulatorOption {
	return func(s *simulator) {
		s.degrees = degrees
	}
}

// WithLogger sets the structured logger.
//
// Parameters:
//   - logger: the logger (nil keeps the no-op logger)
//
// Returns:
//   - SimulatorOption: a function that applies the logger option to a simulator
func WithLogger(logger *zap.Logger) SimulatorOption {
	return func(s *simulator) {
		s.logger = logger
	}
}

// WithMessageSink sets the writer that receives the terminal win/lose message.
//
// Parameters:
//   - w: the text sink
//
// Returns:
//   - SimulatorOption: a function that applies the sink option to a simulator
func WithMessageSink(w io.Writer) SimulatorOption {
	return func(s *simulator) {
		s.sink = w
	}
}

// WithOutcomeCallback registers a function called once when the game reaches an outcome.
//
// Parameters:
//   - callback: receives the outcome and the final score
//
// Returns:
//   - SimulatorOption: a function that applies the callback option to a simulator
func WithOutcomeCallback(callback func(Outcome, GameScore)) SimulatorOption {
	return func(s *simulator) {
		s.onOutcome = callback
	}
}
