package common

import (
	"time"

	"gridlab/pkg/utility/fixed"
)

// MarketRegime is the coarse classification driving parameter choices.
type MarketRegime string

const (
	RegimeRanging        MarketRegime = "ranging"
	RegimeTrending       MarketRegime = "trending"
	RegimeHighlyVolatile MarketRegime = "highly_volatile"
)

type SeasonalTrend string

const (
	TrendBullish SeasonalTrend = "bullish"
	TrendBearish SeasonalTrend = "bearish"
	TrendNeutral SeasonalTrend = "neutral"
)

// SeasonalPattern summarizes all historical 30-day windows ending in the
// given calendar month.
type SeasonalPattern struct {
	Month         time.Month    `json:"month"`
	AvgReturn     float64       `json:"avg_return"`
	AvgVolatility float64       `json:"avg_volatility"`
	Trend         SeasonalTrend `json:"trend"`
}

// PredictedRange is a price band with a confidence in [0.3, 0.85].
type PredictedRange struct {
	Lower       float64 `json:"lower"`
	Upper       float64 `json:"upper"`
	ExpectedMid float64 `json:"expected_mid"`
	Confidence  float64 `json:"confidence"`
}

// TimeHorizonPrediction is a per-horizon forecast embedded in the optimized
// parameters.
type TimeHorizonPrediction struct {
	HorizonDays        int            `json:"horizon_days"`
	ExpectedReturnPct  float64        `json:"expected_return_pct"`
	FillsEstimate      float64        `json:"fills_estimate"`
	VolatilityForecast float64        `json:"volatility_forecast"`
	PriceRange         PredictedRange `json:"price_range"`
	SuccessProbability float64        `json:"success_probability"`
	EstimatedAPR       float64        `json:"estimated_apr"`
}

// OptimizedGridParameters is the optimizer's full proposal.
type OptimizedGridParameters struct {
	Grid               GridParameters          `json:"grid"`
	Regime             MarketRegime            `json:"regime"`
	ExpectedVolatility float64                 `json:"expected_volatility"`
	PredictedRange     PredictedRange          `json:"predicted_range"`
	EffectiveCapital   fixed.Point             `json:"effective_capital"`
	LiquidationPrice   fixed.Point             `json:"liquidation_price"`
	MarginRequirement  fixed.Point             `json:"margin_requirement"`
	FundingFeeRate     fixed.Point             `json:"funding_fee_rate"`
	RiskScore          float64                 `json:"risk_score"`
	RecommendedAmount  fixed.Point             `json:"recommended_amount"`
	Horizons           []TimeHorizonPrediction `json:"horizons"`
}
