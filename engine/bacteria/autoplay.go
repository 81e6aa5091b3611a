package bacteria

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"go.uber.org/zap"
)

const (
	// DefaultClickEvery is the number of ticks between bot clicks.
	DefaultClickEvery = 30
	// DefaultMaxTicks bounds a single headless game.
	DefaultMaxTicks = 100000
)

// BatchOptions configures RunBatch.
type BatchOptions struct {
	// Seed is the base seed. Game i is seeded with Seed+i.
	Seed uint64

	// ClickEvery is the number of ticks between bot clicks. Zero uses DefaultClickEvery.
	ClickEvery int

	// MaxTicks stops a game that has not reached an outcome. Zero uses DefaultMaxTicks.
	MaxTicks int

	// Aimed makes the bot click the center of a random alive circle instead of a uniform point in
	// normalized device coordinates.
	Aimed bool

	// Simulator holds extra options applied to every game before the per-game random source.
	Simulator []SimulatorOption

	// Logger receives batch progress. Nil disables logging.
	Logger *zap.Logger
}

// GameResult is the final state of one headless game.
type GameResult struct {
	Index   int
	Seed    uint64
	Outcome Outcome
	Score   GameScore
	Ticks   int
}

// BatchResult aggregates a batch of headless games.
type BatchResult struct {
	Games        []GameResult
	PlayerWins   int
	ComputerWins int
	Unfinished   int
	MeanTicks    float64
	Elapsed      time.Duration
}

// batchQueueSize is the task buffer of a runner's pool.
const batchQueueSize = 256

// BatchRunner plays headless games on one long-lived worker pool.
// The pool's workers are started with the runner and live for the rest of the process, so create
// one runner and reuse it for every batch.
type BatchRunner struct {
	workers int
	pool    worker.DynamicWorkerPool
}

var (
	defaultRunner     *BatchRunner
	defaultRunnerOnce sync.Once
)

// NewBatchRunner creates a runner backed by a pool of the given size.
//
// Parameters:
//   - workers: the worker pool size; values <= 0 use runtime.NumCPU()
//
// Returns:
//   - *BatchRunner: the runner
func NewBatchRunner(workers int) *BatchRunner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchRunner{
		workers: workers,
		pool:    worker.NewDynamicWorkerPool(workers, batchQueueSize, 1*time.Second),
	}
}

// Workers returns the size of the runner's pool.
func (b *BatchRunner) Workers() int {
	return b.workers
}

// RunBatch plays games on a process-wide runner sized to runtime.NumCPU(), created on first use.
//
// Parameters:
//   - ctx: cancels the remaining games
//   - games: the number of games to play (must be > 0)
//   - opts: the batch configuration
//
// Returns:
//   - BatchResult: per-game results in index order and the aggregate counts
//   - error: ErrInvalidCount, a simulator construction error, or ctx.Err() when cancelled
func RunBatch(ctx context.Context, games int, opts BatchOptions) (BatchResult, error) {
	defaultRunnerOnce.Do(func() {
		defaultRunner = NewBatchRunner(0)
	})
	return defaultRunner.Run(ctx, games, opts)
}

// Run plays games independent simulations concurrently on the runner's pool. Each task owns its
// simulator so no state is shared between games.
//
// Parameters:
//   - ctx: cancels the remaining games
//   - games: the number of games to play (must be > 0)
//   - opts: the batch configuration
//
// Returns:
//   - BatchResult: per-game results in index order and the aggregate counts
//   - error: ErrInvalidCount, a simulator construction error, or ctx.Err() when cancelled
func (b *BatchRunner) Run(ctx context.Context, games int, opts BatchOptions) (BatchResult, error) {
	if games <= 0 {
		return BatchResult{}, fmt.Errorf("%w: got %d games", ErrInvalidCount, games)
	}
	clickEvery := opts.ClickEvery
	if clickEvery <= 0 {
		clickEvery = DefaultClickEvery
	}
	maxTicks := opts.MaxTicks
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()
	results := make([]GameResult, games)
	errs := make([]error, games)

	// The WaitGroup is the per-batch barrier; the pool itself never drains.
	var wg sync.WaitGroup
	for i := range games {
		wg.Add(1)
		idx := i
		b.pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				res, err := playGame(ctx, idx, opts.Seed+uint64(idx), clickEvery, maxTicks, opts)
				results[idx] = res
				errs[idx] = err
				return nil, err
			},
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return BatchResult{}, err
	}
	for _, err := range errs {
		if err != nil {
			return BatchResult{}, err
		}
	}

	out := BatchResult{Games: results, Elapsed: time.Since(start)}
	totalTicks := 0
	for _, r := range results {
		switch r.Outcome {
		case OutcomePlayerWins:
			out.PlayerWins++
		case OutcomeComputerWins:
			out.ComputerWins++
		default:
			out.Unfinished++
		}
		totalTicks += r.Ticks
	}
	out.MeanTicks = float64(totalTicks) / float64(games)

	logger.Info("bacteria batch finished",
		zap.Int("games", games),
		zap.Int("workers", b.workers),
		zap.Int("playerWins", out.PlayerWins),
		zap.Int("computerWins", out.ComputerWins),
		zap.Int("unfinished", out.Unfinished),
		zap.Float64("meanTicks", out.MeanTicks),
		zap.Duration("elapsed", out.Elapsed),
	)
	return out, nil
}

// playGame runs a single headless game until it has an outcome, reaches maxTicks, or ctx is done.
func playGame(ctx context.Context, idx int, seed uint64, clickEvery, maxTicks int, opts BatchOptions) (GameResult, error) {
	res := GameResult{Index: idx, Seed: seed}
	if ctx.Err() != nil {
		return res, nil
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	options := append([]SimulatorOption{}, opts.Simulator...)
	options = append(options, WithRand(rng))
	sim, err := NewSimulator(options...)
	if err != nil {
		return res, fmt.Errorf("failed to create simulator for game %d: %w", idx, err)
	}

	for sim.Outcome() == OutcomeNone && sim.Ticks() < maxTicks {
		if sim.Ticks()%256 == 0 && ctx.Err() != nil {
			break
		}
		sim.Tick()
		if sim.Ticks()%clickEvery == 0 && sim.Outcome() == OutcomeNone {
			sim.HitTest(botTarget(rng, sim, opts.Aimed))
		}
	}

	res.Outcome = sim.Outcome()
	res.Score = sim.Score()
	res.Ticks = sim.Ticks()
	return res, nil
}

// botTarget picks the next click in normalized device coordinates.
func botTarget(rng *rand.Rand, sim Simulator, aimed bool) [2]float32 {
	if aimed {
		var alive []Circle
		for _, c := range sim.Circles() {
			if c.Alive {
				alive = append(alive, c)
			}
		}
		if len(alive) > 0 {
			c := alive[rng.IntN(len(alive))]
			return [2]float32{c.Center[0] / sim.Scale(), c.Center[1] / sim.Scale()}
		}
	}
	return [2]float32{rng.Float32()*2 - 1, rng.Float32()*2 - 1}
}
