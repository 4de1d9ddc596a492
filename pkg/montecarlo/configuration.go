package montecarlo

import (
	"gridlab/pkg/simulation"
)

type Configuration struct {
	// Seed feeds the per-trial random sources. Zero selects a time-based
	// seed; tests set it for determinism.
	Seed int64

	// WorkerCount bounds the trial fan-out. Zero means GOMAXPROCS.
	WorkerCount int

	// SampleScenarioLimit caps how many raw trial paths are retained for
	// inspection. Statistics always use the full trial set.
	SampleScenarioLimit int

	// BaselineWindow is the number of trailing candles used to estimate
	// drift, volatility and trend.
	BaselineWindow int

	Simulation simulation.Configuration
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Seed:                0,
		WorkerCount:         0,
		SampleScenarioLimit: 100,
		BaselineWindow:      90,
		Simulation:          simulation.DefaultConfiguration(),
	}
}
