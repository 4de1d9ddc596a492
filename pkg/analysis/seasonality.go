package analysis

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"gridlab/pkg/common"
)

const (
	bullishThreshold = 0.02
	bearishThreshold = -0.02
)

// SeasonalPatterns buckets every trailing 30-day window by the calendar month
// of the window's end date and averages return and volatility per month.
func (a *Analyzer) SeasonalPatterns(candles []common.Candle) []common.SeasonalPattern {
	window := a.cfg.SeasonalWindow

	type monthAccumulator struct {
		returns      []float64
		volatilities []float64
	}
	months := make(map[time.Month]*monthAccumulator)

	for i := window; i < len(candles); i++ {
		start, _ := candles[i-window].Close.Float64()
		end, _ := candles[i].Close.Float64()
		if start == 0 {
			continue
		}

		windowReturns := dailyReturns(candles[i-window : i+1])

		month := candles[i].TimeStamp.Month()
		acc, ok := months[month]
		if !ok {
			acc = &monthAccumulator{}
			months[month] = acc
		}
		acc.returns = append(acc.returns, end/start-1)
		acc.volatilities = append(acc.volatilities, stat.StdDev(windowReturns, nil))
	}

	patterns := make([]common.SeasonalPattern, 0, len(months))
	for month, acc := range months {
		avgReturn := stat.Mean(acc.returns, nil)
		patterns = append(patterns, common.SeasonalPattern{
			Month:         month,
			AvgReturn:     avgReturn,
			AvgVolatility: stat.Mean(acc.volatilities, nil),
			Trend:         classifySeasonalTrend(avgReturn),
		})
	}

	sort.Slice(patterns, func(i, j int) bool { return patterns[i].Month < patterns[j].Month })
	return patterns
}

func classifySeasonalTrend(avgReturn float64) common.SeasonalTrend {
	switch {
	case avgReturn > bullishThreshold:
		return common.TrendBullish
	case avgReturn < bearishThreshold:
		return common.TrendBearish
	default:
		return common.TrendNeutral
	}
}
