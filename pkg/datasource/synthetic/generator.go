// Package synthetic generates daily price trajectories from a geometric
// Brownian motion with a weak mean-reversion pull and a hard floor.
package synthetic

import (
	"fmt"
	"math"
	"math/rand"

	"gridlab/pkg/common"
	"gridlab/pkg/utility/fixed"
)

const (
	// volatilityAmplifier widens the daily log-return. It is a deliberate
	// variance amplifier, not a statistical constant.
	volatilityAmplifier = 2.0

	// meanReversionStrength pulls the path back toward the start price
	// each step.
	meanReversionStrength = 0.005

	// floorFraction clamps the path at 70% of the start price to avoid
	// degenerate near-zero trajectories.
	floorFraction = 0.7
)

var reversionCoeff = fixed.FromFloat64(meanReversionStrength)

// GeneratePath produces one synthetic trajectory of days+1 points with
// path[0].Price == startPrice exactly. The random source is injected so
// concurrent trials never share RNG state.
func GeneratePath(
	startPrice fixed.Point,
	days int,
	dailyDrift, dailyVolatility, seasonalityFactor float64,
	rng *rand.Rand) ([]common.PricePoint, error) {

	if !startPrice.IsPos() {
		return nil, fmt.Errorf("%w: start price %s", common.ErrInvalidInput, startPrice)
	}
	if days <= 0 {
		return nil, fmt.Errorf("%w: days %d", common.ErrInvalidInput, days)
	}
	if dailyVolatility < 0 {
		return nil, fmt.Errorf("%w: daily volatility %f", common.ErrInvalidInput, dailyVolatility)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", common.ErrInvalidInput)
	}

	floor := startPrice.Mul(fixed.FromFloat64(floorFraction))

	path := make([]common.PricePoint, 0, days+1)
	path = append(path, common.PricePoint{Day: 0, Price: startPrice})

	price := startPrice
	for d := 1; d <= days; d++ {
		z := boxMuller(rng)

		// Seasonal adjustment scales linearly with path progress.
		seasonalAdj := 1 + (seasonalityFactor-1)*(float64(d)/float64(days))
		logReturn := dailyDrift*seasonalAdj + dailyVolatility*z*volatilityAmplifier

		if logReturn != 0 {
			price = price.Mul(fixed.FromFloat64(math.Exp(logReturn)))
		}

		// Weak mean reversion toward the start price.
		deviation := price.Sub(startPrice).Div(startPrice)
		price = price.Mul(fixed.One.Sub(reversionCoeff.Mul(deviation)))

		if price.Lt(floor) {
			price = floor
		}

		path = append(path, common.PricePoint{Day: d, Price: price})
	}

	return path, nil
}

// boxMuller draws a standard-normal variate from two independent uniforms.
func boxMuller(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	u2 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}
