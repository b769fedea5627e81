package cpu

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Amr-9/ZeroHunter/pkg/generator"
	"github.com/Amr-9/ZeroHunter/pkg/generator/ethereum"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"golang.org/x/sync/errgroup"
)

// CPUGenerator implements the Generator interface using one goroutine per lane.
type CPUGenerator struct {
	attempts  atomic.Uint64 // Candidates derived and scored
	skipped   atomic.Uint64 // Iterations dropped on derivation errors
	startTime atomic.Int64  // Unix nanos when generation started
	workers   int           // Number of concurrent lanes
}

// NewCPUGenerator creates a new CPU-based generator.
// If workers is 0, it defaults to the number of CPU cores.
func NewCPUGenerator(workers int) *CPUGenerator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CPUGenerator{
		workers: workers,
	}
}

// Name returns the implementation name.
func (g *CPUGenerator) Name() string {
	return "CPU"
}

// Stats returns the current performance statistics.
func (g *CPUGenerator) Stats() generator.Stats {
	attempts := g.attempts.Load()

	var elapsed float64
	if start := g.startTime.Load(); start != 0 {
		elapsed = time.Since(time.Unix(0, start)).Seconds()
	}

	var hashRate float64
	if elapsed > 0 {
		hashRate = float64(attempts) / elapsed
	}

	return generator.Stats{
		Attempts:    attempts,
		Skipped:     g.skipped.Load(),
		HashRate:    hashRate,
		ElapsedSecs: elapsed,
	}
}

// Start begins the vanity search with the given configuration.
// config.Lanes overrides the worker count the generator was created with.
func (g *CPUGenerator) Start(ctx context.Context, config *generator.Config) (<-chan generator.Result, error) {
	workers := g.workers
	if config.Lanes > 0 {
		workers = config.Lanes
	}

	cfg := *config
	cfg.Lanes = workers
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resultChan := make(chan generator.Result, 1)
	g.startTime.Store(time.Now().UnixNano())
	g.attempts.Store(0)
	g.skipped.Store(0)

	// Set by the first lane that qualifies; every lane of this search polls it.
	var found atomic.Bool

	var lanes errgroup.Group
	for i := 0; i < workers; i++ {
		id := i
		lanes.Go(func() error {
			g.lane(ctx, id, &cfg, &found, resultChan)
			return nil
		})
	}

	go func() {
		lanes.Wait()
		close(resultChan)
	}()

	log.Debug("Search started", "lanes", workers, "threshold", cfg.Threshold,
		"base", cfg.BaseIteration.Dec(), "stride", cfg.Stride)

	return resultChan, nil
}

// lane walks its own counter sequence until it qualifies, another lane
// qualifies, the context is cancelled or the 128-bit range runs out.
func (g *CPUGenerator) lane(ctx context.Context, id int, config *generator.Config, found *atomic.Bool, resultChan chan<- generator.Result) {
	logger := log.New("lane", id)
	trace := logger.Enabled(ctx, log.LevelTrace)

	deriver := ethereum.NewKeyDeriver([]byte(config.Seed))
	matcher := ethereum.NewMatcher(config.Threshold)
	iteration := laneStart(config, id)

	for !found.Load() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		iteration.AddUint64(&iteration, 1)

		candidate, err := deriver.Candidate(&iteration)
		if errors.Is(err, ethereum.ErrIterationOverflow) {
			logger.Warn("Lane exhausted its iteration range", "iteration", iteration.Dec())
			return
		}
		if err != nil {
			g.skipped.Add(1)
			logger.Warn("Skipping iteration", "iteration", iteration.Dec(), "err", err)
			continue
		}

		g.attempts.Add(1)

		if trace {
			logger.Trace("Candidate derived", "iteration", iteration.Dec(),
				"address", candidate.Address, "score", candidate.Score)
		}

		if !matcher.Accepts(candidate.Score) {
			continue
		}

		found.Store(true)
		result := generator.Result{
			Address:    candidate.Address,
			PrivateKey: candidate.PrivateKey,
			Seed:       config.Seed,
			Iteration:  candidate.Iteration,
			Score:      candidate.Score,
			Lane:       id,
		}

		select {
		case resultChan <- result:
			logger.Debug("Qualifying candidate found", "iteration", iteration.Dec(), "score", candidate.Score)
		default:
			// Another lane reported first
			logger.Debug("Qualifying candidate dropped", "iteration", iteration.Dec())
		}
		return
	}
}

// laneStart returns the counter value lane id increments from.
func laneStart(config *generator.Config, id int) uint256.Int {
	start := config.BaseIteration
	if config.Stride > 0 && id > 0 {
		var offset uint256.Int
		offset.SetUint64(config.Stride)
		offset.Mul(&offset, uint256.NewInt(uint64(id)))
		start.Add(&start, &offset)
	}
	return start
}

// progressLogRate is how often Search logs its attempt count.
const progressLogRate = 5 * time.Second

// Search runs a search to completion and returns its result.
// It returns generator.ErrNoResult when every lane stopped without one,
// which only happens on cancellation or when the counter range is exhausted.
func Search(ctx context.Context, config *generator.Config) (*generator.Result, error) {
	gen := NewCPUGenerator(config.Lanes)
	resultChan, err := gen.Start(ctx, config)
	if err != nil {
		return nil, err
	}

	ticker := time.NewTicker(progressLogRate)
	defer ticker.Stop()

	var (
		result generator.Result
		ok     bool
	)
wait:
	for {
		select {
		case result, ok = <-resultChan:
			break wait
		case <-ticker.C:
			stats := gen.Stats()
			log.Info("Searching", "attempts", stats.Attempts, "rate", uint64(stats.HashRate))
		}
	}
	if !ok {
		return nil, generator.ErrNoResult
	}

	stats := gen.Stats()
	log.Info("Search finished", "attempts", stats.Attempts, "skipped", stats.Skipped,
		"elapsed", time.Duration(stats.ElapsedSecs*float64(time.Second)))
	return &result, nil
}

var _ generator.Generator = (*CPUGenerator)(nil)
