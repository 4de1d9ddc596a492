package common

import (
	"github.com/google/uuid"

	"gridlab/pkg/utility/fixed"
)

// BalancePoint is one day of a simulation's equity curve.
type BalancePoint struct {
	Day     int         `json:"day"`
	Price   fixed.Point `json:"price"`
	Balance fixed.Point `json:"balance"`
}

// SimulationResult is the outcome of replaying one price trajectory against a
// grid. It is immutable once returned.
type SimulationResult struct {
	FinalBalance     fixed.Point    `json:"final_balance"`
	TotalTrades      int            `json:"total_trades"`
	ProfitableTrades int            `json:"profitable_trades"`
	MaxDrawdownPct   fixed.Point    `json:"max_drawdown_pct"`
	SharpeRatio      fixed.Point    `json:"sharpe_ratio"`
	BalancePath      []BalancePoint `json:"balance_path"`
}

// ScenarioStatistics aggregates percent returns across the full trial set.
type ScenarioStatistics struct {
	P10               float64 `json:"p10"`
	P50               float64 `json:"p50"`
	P90               float64 `json:"p90"`
	MeanReturn        float64 `json:"mean_return"`
	StdDevReturn      float64 `json:"std_dev_return"`
	ProfitProbability float64 `json:"profit_probability"`
	ExpectedTrades    float64 `json:"expected_trades"`
	ExpectedWinRate   float64 `json:"expected_win_rate"`
}

// FanChartPoint holds the per-day percentile bands of the balance
// distribution across trials.
type FanChartPoint struct {
	Day int     `json:"day"`
	P10 float64 `json:"p10"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
}

// SampleScenario is one retained trial path, kept for inspection only.
// Statistics are always computed over the full trial set.
type SampleScenario struct {
	ID     uuid.UUID        `json:"id"`
	Result SimulationResult `json:"result"`
}

// MonteCarloResult aggregates N simulated outcomes. Never mutated after
// construction.
type MonteCarloResult struct {
	RunID            uuid.UUID          `json:"run_id"`
	SampleScenarios  []SampleScenario   `json:"sample_scenarios"`
	Statistics       ScenarioStatistics `json:"statistics"`
	FanChart         []FanChartPoint    `json:"fan_chart"`
	InvestmentAmount fixed.Point        `json:"investment_amount"`
	ProjectionDays   int                `json:"projection_days"`
}
