package montecarlo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"gridlab/pkg/common"
	"gridlab/pkg/utility/fixed"
)

// baseline holds the drift/volatility/trend estimates every trial perturbs.
type baseline struct {
	drift      float64
	volatility float64
	trend      float64
	startPrice fixed.Point
}

// estimateBaseline derives the per-day statistics from the trailing window.
// There is no fallback here: a series too short for the window is an input
// error, since every trial depends on these estimates.
func estimateBaseline(candles []common.Candle, window int) (baseline, error) {
	if len(candles) < window {
		return baseline{}, fmt.Errorf("%w: %d candles, need at least %d for baseline estimation",
			common.ErrInvalidInput, len(candles), window)
	}

	trailing := candles[len(candles)-window:]

	returns := make([]float64, 0, len(trailing)-1)
	for i := 1; i < len(trailing); i++ {
		prev, _ := trailing[i-1].Close.Float64()
		curr, _ := trailing[i].Close.Float64()
		if prev == 0 {
			continue
		}
		returns = append(returns, curr/prev-1)
	}
	if len(returns) < 2 {
		return baseline{}, fmt.Errorf("%w: degenerate price series, no usable returns", common.ErrInvalidInput)
	}

	meanReturn := stat.Mean(returns, nil)
	volatility := stat.StdDev(returns, nil)

	first, _ := trailing[0].Close.Float64()
	last, _ := trailing[len(trailing)-1].Close.Float64()
	trend := (last - first) / first / float64(window)

	// The trial drift blends the empirical mean return with the window
	// trend, both per-day quantities.
	drift := (meanReturn + trend) / 2

	if math.IsNaN(drift) || math.IsInf(drift, 0) {
		drift = 0
	}
	if math.IsNaN(volatility) || math.IsInf(volatility, 0) {
		volatility = 0
	}

	return baseline{
		drift:      drift,
		volatility: volatility,
		trend:      trend,
		startPrice: candles[len(candles)-1].Close,
	}, nil
}
