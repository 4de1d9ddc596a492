package optimizer

import (
	"math"

	"gridlab/pkg/common"
	"gridlab/pkg/utility"
)

// riskScore grades a proposal from 0 (calm) to 10 (speculative). Additive
// buckets: volatility 1-3, regime 1-3, +2 for weak range confidence, +2 for
// a strong directional trend.
func riskScore(expectedVolatility float64, regime common.MarketRegime, confidence, trendStrength float64) float64 {
	score := 0.0

	switch {
	case expectedVolatility < 0.02:
		score += 1
	case expectedVolatility < 0.04:
		score += 2
	default:
		score += 3
	}

	switch regime {
	case common.RegimeRanging:
		score += 1
	case common.RegimeTrending:
		score += 2
	case common.RegimeHighlyVolatile:
		score += 3
	}

	if confidence < 0.5 {
		score += 2
	}
	if math.Abs(trendStrength) > 0.10 {
		score += 2
	}

	return utility.Clamp(score, 0, 10)
}
