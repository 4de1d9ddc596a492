package montecarlo

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"gridlab/pkg/common"
	"gridlab/pkg/utility/fixed"
)

// percentile reads from an already sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}

func percentReturn(finalBalance, investment fixed.Point) float64 {
	ret, _ := finalBalance.Div(investment).Sub(fixed.One).Mul(fixed.Hundred).Float64()
	return ret
}

// aggregate reduces the full trial set into summary statistics. The reduction
// sorts collected values, so the outcome is independent of trial completion
// order.
func aggregate(results []common.SimulationResult, investment fixed.Point) common.ScenarioStatistics {
	returns := make([]float64, len(results))
	profitable := 0
	totalTrades := 0.0
	winRates := make([]float64, len(results))

	for i, r := range results {
		returns[i] = percentReturn(r.FinalBalance, investment)
		if returns[i] > 0 {
			profitable++
		}
		totalTrades += float64(r.TotalTrades)
		if r.TotalTrades > 0 {
			winRates[i] = float64(r.ProfitableTrades) / float64(r.TotalTrades) * 100
		}
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	return common.ScenarioStatistics{
		P10:               percentile(sorted, 0.10),
		P50:               percentile(sorted, 0.50),
		P90:               percentile(sorted, 0.90),
		MeanReturn:        stat.Mean(returns, nil),
		StdDevReturn:      stat.StdDev(returns, nil),
		ProfitProbability: float64(profitable) / float64(len(results)) * 100,
		ExpectedTrades:    totalTrades / float64(len(results)),
		ExpectedWinRate:   stat.Mean(winRates, nil),
	}
}

// fanChart gathers the balance distribution for every projection day. Trials
// whose path is shorter than the day fall back to the investment amount.
func fanChart(results []common.SimulationResult, investment fixed.Point, projectionDays int) []common.FanChartPoint {
	investmentValue, _ := investment.Float64()

	chart := make([]common.FanChartPoint, 0, projectionDays+1)
	balances := make([]float64, len(results))

	for day := 0; day <= projectionDays; day++ {
		for i, r := range results {
			if day < len(r.BalancePath) {
				balances[i], _ = r.BalancePath[day].Balance.Float64()
			} else {
				balances[i] = investmentValue
			}
		}
		sorted := make([]float64, len(balances))
		copy(sorted, balances)
		sort.Float64s(sorted)

		chart = append(chart, common.FanChartPoint{
			Day: day,
			P10: percentile(sorted, 0.10),
			P25: percentile(sorted, 0.25),
			P50: percentile(sorted, 0.50),
			P75: percentile(sorted, 0.75),
			P90: percentile(sorted, 0.90),
		})
	}
	return chart
}
