// Package optimizer derives grid configuration, leverage accounting, a risk
// score and multi-horizon forecasts from historical analysis.
package optimizer

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"gridlab/pkg/analysis"
	"gridlab/pkg/common"
	"gridlab/pkg/utility/fixed"
)

type Optimizer struct {
	logger   *zap.Logger
	analyzer *analysis.Analyzer
	cfg      Configuration
}

func NewOptimizer(logger *zap.Logger, analyzer *analysis.Analyzer, cfg Configuration) *Optimizer {
	return &Optimizer{
		logger:   logger,
		analyzer: analyzer,
		cfg:      cfg,
	}
}

// Optimize proposes grid parameters for the current price. Short or
// degenerate history never fails the call: the analyzer substitutes its
// documented fallbacks and the proposal is derived from those.
func (o *Optimizer) Optimize(
	candles []common.Candle,
	currentPrice fixed.Point,
	leverage, investment fixed.Point) (common.OptimizedGridParameters, error) {

	if !currentPrice.IsPos() {
		return common.OptimizedGridParameters{}, fmt.Errorf("%w: current price %s", common.ErrInvalidInput, currentPrice)
	}
	if !investment.IsPos() {
		return common.OptimizedGridParameters{}, fmt.Errorf("%w: investment %s", common.ErrInvalidInput, investment)
	}
	if leverage.Lt(fixed.One) {
		return common.OptimizedGridParameters{}, fmt.Errorf("%w: leverage %s", common.ErrInvalidInput, leverage)
	}

	current, _ := currentPrice.Float64()

	expectedVol := o.analyzer.ExpectedVolatility(candles)
	predicted := o.analyzer.PredictThreeMonthRange(candles, currentPrice)
	regime := o.analyzer.ClassifyRegime(expectedVol, predicted.ExpectedMid, current)

	coverage := o.cfg.MinCoveragePct
	if regime == common.RegimeHighlyVolatile {
		coverage = o.cfg.VolatileCoveragePct
	}
	lower := math.Min(predicted.Lower, current*(1-coverage))
	upper := math.Max(predicted.Upper, current*(1+coverage))

	levelCount := o.levelCount(regime)
	spacing := (upper - lower) / float64(levelCount)
	mid := (lower + upper) / 2
	profitPerGridPct := o.guard(spacing/mid*100, 0.1, "profit per grid")

	grid, err := common.NewGridParameters(
		fixed.FromFloat64(lower),
		fixed.FromFloat64(upper),
		levelCount,
		fixed.FromFloat64(profitPerGridPct))
	if err != nil {
		return common.OptimizedGridParameters{}, err
	}

	leverageValue, _ := leverage.Float64()
	effectiveCapital := investment.Mul(leverage)

	// Simplified liquidation price assuming a fixed maintenance margin rate.
	liquidation := current * (1 - 1/leverageValue + o.cfg.MaintenanceMarginRate)

	trendStrength := (predicted.ExpectedMid - current) / current
	score := riskScore(expectedVol, regime, predicted.Confidence, trendStrength)

	investmentValue, _ := investment.Float64()
	recommended := math.Max(o.cfg.MinRecommended, investmentValue*(1-score*0.08))

	result := common.OptimizedGridParameters{
		Grid:               grid,
		Regime:             regime,
		ExpectedVolatility: expectedVol,
		PredictedRange:     predicted,
		EffectiveCapital:   effectiveCapital,
		LiquidationPrice:   fixed.FromFloat64(liquidation),
		MarginRequirement:  effectiveCapital.Mul(fixed.FromFloat64(o.cfg.MarginRequirementRate)),
		FundingFeeRate:     fixed.FromFloat64(o.cfg.FundingFeeRate),
		RiskScore:          score,
		RecommendedAmount:  fixed.FromFloat64(recommended),
		Horizons:           o.horizonPredictions(grid, regime, expectedVol, predicted, current, trendStrength),
	}

	o.logger.Info("grid parameters optimized",
		zap.String("regime", string(regime)),
		zap.Float64("expected_volatility", expectedVol),
		zap.String("lower", grid.LowerBound.String()),
		zap.String("upper", grid.UpperBound.String()),
		zap.Int("levels", grid.LevelCount),
		zap.Float64("risk_score", score))

	return result, nil
}

func (o *Optimizer) levelCount(regime common.MarketRegime) int {
	switch regime {
	case common.RegimeHighlyVolatile:
		return o.cfg.LevelsVolatile
	case common.RegimeTrending:
		return o.cfg.LevelsTrending
	default:
		return o.cfg.LevelsRanging
	}
}

// guard intercepts NaN/Inf from internal ratios and substitutes the fallback.
func (o *Optimizer) guard(v, fallback float64, what string) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		o.logger.Warn("non-finite value intercepted",
			zap.String("value", what),
			zap.Float64("fallback", fallback))
		return fallback
	}
	return v
}
