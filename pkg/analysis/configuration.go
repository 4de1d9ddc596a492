package analysis

// Configuration collects every analysis tunable so behavior can be adjusted
// without touching algorithm code. Decay and threshold values are part of the
// reproducibility contract.
type Configuration struct {
	SeasonalWindow   int     // trailing days per seasonality observation
	RangeWindow      int     // days per historical move / range-ratio window
	RecencyDecay     float64 // exponential decay constant for move weighting
	MinRangeHistory  int     // candles required before range prediction
	FallbackBandPct  float64 // static band when history is insufficient
	VolatilityWindow int     // trailing days for expected volatility

	HighVolThreshold float64 // expected volatility above this is highly volatile
	TrendThreshold   float64 // relative mid-vs-current move above this is trending

	BucketWidth float64 // price bucket width for support/resistance
	TopZones    int     // entry zones returned

	FallbackVolatility float64 // substituted when the volatility sample degenerates
}

func DefaultConfiguration() Configuration {
	return Configuration{
		SeasonalWindow:     30,
		RangeWindow:        90,
		RecencyDecay:       50,
		MinRangeHistory:    180,
		FallbackBandPct:    0.15,
		VolatilityWindow:   30,
		HighVolThreshold:   0.04,
		TrendThreshold:     0.05,
		BucketWidth:        500,
		TopZones:           5,
		FallbackVolatility: 0.02,
	}
}
