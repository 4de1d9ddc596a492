package analysis

import (
	"math"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"gridlab/pkg/common"
	"gridlab/pkg/utility"
	"gridlab/pkg/utility/fixed"
)

const (
	minRangeConfidence = 0.3
	maxRangeConfidence = 0.85
)

// PredictThreeMonthRange projects a 90-day price band around the current
// price from recency-weighted historical moves, blended with the seasonal
// outlook of the next three calendar months. Insufficient or degenerate
// history falls back to a static band without failing the call.
func (a *Analyzer) PredictThreeMonthRange(candles []common.Candle, currentPrice fixed.Point) common.PredictedRange {
	current, _ := currentPrice.Float64()

	if len(candles) < a.cfg.MinRangeHistory {
		a.logger.Debug("insufficient history for range prediction, using static band",
			zap.Int("candles", len(candles)),
			zap.Int("required", a.cfg.MinRangeHistory))
		return a.fallbackRange(current)
	}

	window := a.cfg.RangeWindow
	n := len(candles)

	// Forward-looking historical moves with exponential recency weights.
	moves := make([]float64, 0, n-window)
	weights := make([]float64, 0, n-window)
	for i := window; i < n; i++ {
		past, _ := candles[i-window].Close.Float64()
		curr, _ := candles[i].Close.Float64()
		if past == 0 {
			continue
		}
		moves = append(moves, (curr-past)/past)
		weights = append(weights, math.Exp(-float64(n-1-i)/a.cfg.RecencyDecay))
	}
	if len(moves) == 0 {
		a.logger.Debug("no usable range windows, using static band")
		return a.fallbackRange(current)
	}
	weightedMove := stat.Mean(moves, weights)

	// Blend with the seasonal outlook of the next three calendar months.
	seasonalReturn := a.upcomingSeasonalReturn(candles)
	adjustedMove := (weightedMove + seasonalReturn) / 2

	avgRatio, stdRatio := a.rangeRatios(candles)
	if avgRatio <= 0 || math.IsNaN(avgRatio) || math.IsNaN(stdRatio) {
		a.logger.Debug("degenerate range ratios, using static band",
			zap.Float64("avg_ratio", avgRatio))
		return a.fallbackRange(current)
	}

	width := avgRatio + 0.5*stdRatio
	center := current * (1 + adjustedMove)

	moveConsistency := 1 - stdRatio/avgRatio
	dataQuality := math.Min(float64(len(candles))/365, 1)
	confidence := utility.Clamp((moveConsistency*0.7+dataQuality*0.3)*0.85,
		minRangeConfidence, maxRangeConfidence)

	predicted := common.PredictedRange{
		Lower:       center * (1 - width/2),
		Upper:       center * (1 + width/2),
		ExpectedMid: center,
		Confidence:  confidence,
	}
	if math.IsNaN(predicted.Lower) || math.IsInf(predicted.Lower, 0) ||
		math.IsNaN(predicted.Upper) || math.IsInf(predicted.Upper, 0) {
		a.logger.Warn("range prediction produced non-finite bounds, using static band")
		return a.fallbackRange(current)
	}
	return predicted
}

// upcomingSeasonalReturn averages the seasonal return of the three months
// following the last candle. Months without history contribute nothing.
func (a *Analyzer) upcomingSeasonalReturn(candles []common.Candle) float64 {
	patterns := a.SeasonalPatterns(candles)
	if len(patterns) == 0 {
		return 0
	}
	byMonth := make(map[time.Month]common.SeasonalPattern, len(patterns))
	for _, p := range patterns {
		byMonth[p.Month] = p
	}

	lastMonth := candles[len(candles)-1].TimeStamp.Month()
	sum := 0.0
	count := 0
	for offset := 1; offset <= 3; offset++ {
		month := time.Month((int(lastMonth)-1+offset)%12 + 1)
		if p, ok := byMonth[month]; ok {
			sum += p.AvgReturn
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// rangeRatios measures (high-low)/mid across all historical 90-day windows.
func (a *Analyzer) rangeRatios(candles []common.Candle) (avg, std float64) {
	window := a.cfg.RangeWindow

	ratios := make([]float64, 0, len(candles)-window)
	for i := window; i < len(candles); i++ {
		high := math.Inf(-1)
		low := math.Inf(1)
		for j := i - window; j <= i; j++ {
			h, _ := candles[j].EffectiveHigh().Float64()
			l, _ := candles[j].EffectiveLow().Float64()
			high = math.Max(high, h)
			low = math.Min(low, l)
		}
		mid := (high + low) / 2
		if mid == 0 {
			continue
		}
		ratios = append(ratios, (high-low)/mid)
	}
	if len(ratios) == 0 {
		return 0, 0
	}
	return stat.Mean(ratios, nil), stat.StdDev(ratios, nil)
}

func (a *Analyzer) fallbackRange(current float64) common.PredictedRange {
	return common.PredictedRange{
		Lower:       current * (1 - a.cfg.FallbackBandPct),
		Upper:       current * (1 + a.cfg.FallbackBandPct),
		ExpectedMid: current,
		Confidence:  minRangeConfidence,
	}
}
