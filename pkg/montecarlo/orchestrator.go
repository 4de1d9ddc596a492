// Package montecarlo fans grid simulations over perturbed price models and
// aggregates the outcomes into probability bands.
package montecarlo

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gridlab/pkg/common"
	"gridlab/pkg/datasource/synthetic"
	"gridlab/pkg/simulation"
	"gridlab/pkg/utility/fixed"
)

type Orchestrator struct {
	logger    *zap.Logger
	cfg       Configuration
	simulator *simulation.Simulator
}

func NewOrchestrator(logger *zap.Logger, cfg Configuration) *Orchestrator {
	return &Orchestrator{
		logger:    logger,
		cfg:       cfg,
		simulator: simulation.NewSimulator(logger, cfg.Simulation),
	}
}

// Run executes numSimulations independent trials and reduces them into a
// MonteCarloResult. Trials fan out across a bounded worker pool; each trial
// owns its random source, so completion order never affects the result.
// Cancelling the context discards the whole batch.
func (o *Orchestrator) Run(
	ctx context.Context,
	candles []common.Candle,
	params common.GridParameters,
	investment, leverage fixed.Point,
	numSimulations, projectionDays int) (common.MonteCarloResult, error) {

	if numSimulations < 1 {
		return common.MonteCarloResult{}, fmt.Errorf("%w: simulations %d", common.ErrInvalidInput, numSimulations)
	}
	if projectionDays < 1 {
		return common.MonteCarloResult{}, fmt.Errorf("%w: projection days %d", common.ErrInvalidInput, projectionDays)
	}

	base, err := estimateBaseline(candles, o.cfg.BaselineWindow)
	if err != nil {
		return common.MonteCarloResult{}, err
	}

	seed := o.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := o.cfg.WorkerCount
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	o.logger.Info("starting monte carlo batch",
		zap.Int("simulations", numSimulations),
		zap.Int("projection_days", projectionDays),
		zap.Int("workers", workers),
		zap.Float64("baseline_drift", base.drift),
		zap.Float64("baseline_volatility", base.volatility),
		zap.Float64("baseline_trend", base.trend))

	results := make([]common.SimulationResult, numSimulations)
	errs := make([]error, numSimulations)

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					return
				}
				results[idx], errs[idx] = o.runTrial(base, params, investment, leverage, projectionDays, seed+int64(idx))
			}
		}()
	}

feed:
	for i := 0; i < numSimulations; i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	// Partial batches are discarded, never returned as if complete.
	if err := ctx.Err(); err != nil {
		o.logger.Warn("monte carlo batch cancelled", zap.Error(err))
		return common.MonteCarloResult{}, err
	}
	for _, err := range errs {
		if err != nil {
			return common.MonteCarloResult{}, err
		}
	}

	sampleLimit := o.cfg.SampleScenarioLimit
	if sampleLimit > numSimulations {
		sampleLimit = numSimulations
	}
	samples := make([]common.SampleScenario, sampleLimit)
	for i := 0; i < sampleLimit; i++ {
		samples[i] = common.SampleScenario{
			ID:     uuid.Must(uuid.NewV7()),
			Result: results[i],
		}
	}

	result := common.MonteCarloResult{
		RunID:            uuid.Must(uuid.NewV7()),
		SampleScenarios:  samples,
		Statistics:       aggregate(results, investment),
		FanChart:         fanChart(results, investment, projectionDays),
		InvestmentAmount: investment,
		ProjectionDays:   projectionDays,
	}

	o.logger.Info("monte carlo batch complete",
		zap.String("run_id", result.RunID.String()),
		zap.Float64("median_return_pct", result.Statistics.P50),
		zap.Float64("profit_probability", result.Statistics.ProfitProbability))

	return result, nil
}

// runTrial perturbs the baseline model, generates one path and simulates it.
func (o *Orchestrator) runTrial(
	base baseline,
	params common.GridParameters,
	investment, leverage fixed.Point,
	projectionDays int,
	seed int64) (common.SimulationResult, error) {

	rng := rand.New(rand.NewSource(seed))

	drift := base.drift + (rng.Float64()-0.5)*base.volatility*3
	volatility := base.volatility * (0.5 + rng.Float64()*1.5)
	seasonality := 0.8 + rng.Float64()*0.4

	path, err := synthetic.GeneratePath(base.startPrice, projectionDays, drift, volatility, seasonality, rng)
	if err != nil {
		return common.SimulationResult{}, err
	}
	return o.simulator.Run(path, params, investment, leverage)
}
