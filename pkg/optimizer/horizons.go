package optimizer

import (
	"math"

	"gridlab/pkg/common"
	"gridlab/pkg/utility"
)

const (
	minSuccessProbability  = 0.40
	maxSuccessProbability  = 0.95
	baseSuccessProbability = 0.75

	minHorizonConfidence = 0.3
	maxHorizonConfidence = 0.85

	// fillEfficiency discounts the theoretical number of grid crossings
	// per day of price range.
	fillEfficiency = 0.6
)

// horizonPredictions projects expected returns, fills and success odds per
// configured horizon.
func (o *Optimizer) horizonPredictions(
	grid common.GridParameters,
	regime common.MarketRegime,
	expectedVol float64,
	predicted common.PredictedRange,
	current, trendStrength float64) []common.TimeHorizonPrediction {

	spacing, _ := grid.Spacing.Float64()
	profitPerGridPct, _ := grid.ProfitPerGridPct.Float64()

	dailyPriceRange := current * expectedVol
	fillsPerDay := o.guard(dailyPriceRange/spacing*fillEfficiency, 0, "fills per day")

	regimeMult := regimeReturnMultiplier(regime)
	trendMult := 1 + utility.Clamp(trendStrength, -0.5, 0.5)
	dailyReturn := profitPerGridPct / 100 * fillsPerDay * regimeMult * trendMult

	predictions := make([]common.TimeHorizonPrediction, 0, len(o.cfg.Horizons))
	for _, days := range o.cfg.Horizons {
		d := float64(days)

		expectedReturnPct := dailyReturn * d * 100
		confidence := utility.Clamp(
			regimeConfidenceBase(regime)*math.Exp(-d/o.cfg.ConfidenceDecay),
			minHorizonConfidence, maxHorizonConfidence)

		// Scale the 3-month band toward the horizon.
		fraction := d / 90
		center := current + (predicted.ExpectedMid-current)*fraction
		halfWidth := (predicted.Upper - predicted.Lower) / 2 * math.Sqrt(fraction)

		success := baseSuccessProbability +
			regimeSuccessAdjustment(regime) +
			math.Min(0.10, d/1800) - // longer horizons accumulate more fills
			math.Min(0.10, expectedVol*2)

		predictions = append(predictions, common.TimeHorizonPrediction{
			HorizonDays:        days,
			ExpectedReturnPct:  expectedReturnPct,
			FillsEstimate:      fillsPerDay * d,
			VolatilityForecast: expectedVol * math.Sqrt(d/30),
			PriceRange: common.PredictedRange{
				Lower:       center - halfWidth,
				Upper:       center + halfWidth,
				ExpectedMid: center,
				Confidence:  confidence,
			},
			SuccessProbability: utility.Clamp(success, minSuccessProbability, maxSuccessProbability),
			EstimatedAPR:       expectedReturnPct * 365 / d,
		})
	}
	return predictions
}

func regimeReturnMultiplier(regime common.MarketRegime) float64 {
	switch regime {
	case common.RegimeRanging:
		return 1.2
	case common.RegimeTrending:
		return 0.7
	default:
		return 0.9
	}
}

func regimeConfidenceBase(regime common.MarketRegime) float64 {
	switch regime {
	case common.RegimeRanging:
		return 0.85
	case common.RegimeTrending:
		return 0.70
	default:
		return 0.60
	}
}

func regimeSuccessAdjustment(regime common.MarketRegime) float64 {
	switch regime {
	case common.RegimeRanging:
		return 0.10
	case common.RegimeTrending:
		return -0.05
	default:
		return -0.10
	}
}
