// Package analysis derives seasonality, volatility regime, range predictions
// and support/resistance clusters from a historical price series.
package analysis

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"gridlab/pkg/common"
)

type Analyzer struct {
	logger *zap.Logger
	cfg    Configuration
}

func NewAnalyzer(logger *zap.Logger, cfg Configuration) *Analyzer {
	return &Analyzer{
		logger: logger,
		cfg:    cfg,
	}
}

// ExpectedVolatility is the standard deviation of daily returns over the
// trailing volatility window. A degenerate sample is substituted with the
// configured fallback instead of propagating NaN.
func (a *Analyzer) ExpectedVolatility(candles []common.Candle) float64 {
	window := a.cfg.VolatilityWindow
	if len(candles) < window+1 {
		window = len(candles) - 1
	}
	if window < 2 {
		a.logger.Debug("volatility sample too short, using fallback",
			zap.Int("candles", len(candles)),
			zap.Float64("fallback", a.cfg.FallbackVolatility))
		return a.cfg.FallbackVolatility
	}

	trailing := candles[len(candles)-window-1:]
	returns := dailyReturns(trailing)

	vol := stat.StdDev(returns, nil)
	if math.IsNaN(vol) || math.IsInf(vol, 0) || vol == 0 {
		a.logger.Debug("degenerate volatility sample, using fallback",
			zap.Float64("fallback", a.cfg.FallbackVolatility))
		return a.cfg.FallbackVolatility
	}
	return vol
}

// ClassifyRegime buckets market behavior by volatility first, then by the
// strength of the predicted move.
func (a *Analyzer) ClassifyRegime(expectedVolatility, predictedMid, currentPrice float64) common.MarketRegime {
	if expectedVolatility > a.cfg.HighVolThreshold {
		return common.RegimeHighlyVolatile
	}
	if currentPrice > 0 && math.Abs(predictedMid-currentPrice)/currentPrice > a.cfg.TrendThreshold {
		return common.RegimeTrending
	}
	return common.RegimeRanging
}

func dailyReturns(candles []common.Candle) []float64 {
	returns := make([]float64, 0, len(candles)-1)
	for i := 1; i < len(candles); i++ {
		prev, _ := candles[i-1].Close.Float64()
		curr, _ := candles[i].Close.Float64()
		if prev == 0 {
			continue
		}
		returns = append(returns, curr/prev-1)
	}
	return returns
}
