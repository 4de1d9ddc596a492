package optimizer

type Configuration struct {
	// MinCoveragePct guarantees the grid reaches at least this far around
	// the current price; VolatileCoveragePct applies in the highly volatile
	// regime.
	MinCoveragePct      float64
	VolatileCoveragePct float64

	// Level counts per regime.
	LevelsRanging  int
	LevelsTrending int
	LevelsVolatile int

	// Leverage-adjusted accounting.
	MaintenanceMarginRate float64
	MarginRequirementRate float64
	FundingFeeRate        float64

	// Recommended investment floor.
	MinRecommended float64

	// Forecast horizons in days and the confidence decay constant.
	Horizons        []int
	ConfidenceDecay float64
}

func DefaultConfiguration() Configuration {
	return Configuration{
		MinCoveragePct:        0.08,
		VolatileCoveragePct:   0.12,
		LevelsRanging:         50,
		LevelsTrending:        40,
		LevelsVolatile:        60,
		MaintenanceMarginRate: 0.005,
		MarginRequirementRate: 0.01,
		FundingFeeRate:        0.0001,
		MinRecommended:        50,
		Horizons:              []int{7, 30, 90, 180},
		ConfidenceDecay:       120,
	}
}
