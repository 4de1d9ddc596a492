package analysis

import (
	"math"
	"sort"

	"gridlab/pkg/common"
)

const (
	closeWeight   = 1.0
	extremeWeight = 0.5
)

// OptimalEntryZones clusters historical prices into fixed-width buckets and
// returns the most visited bucket centers inside the predicted range, sorted
// ascending. Closes weigh twice as much as highs and lows.
func (a *Analyzer) OptimalEntryZones(candles []common.Candle, predicted common.PredictedRange) []float64 {
	width := a.cfg.BucketWidth
	if width <= 0 || len(candles) == 0 {
		return nil
	}

	buckets := make(map[int]float64)
	accumulate := func(price, weight float64) {
		if price <= 0 {
			return
		}
		buckets[int(math.Floor(price/width))] += weight
	}

	for _, candle := range candles {
		c, _ := candle.Close.Float64()
		h, _ := candle.EffectiveHigh().Float64()
		l, _ := candle.EffectiveLow().Float64()
		accumulate(c, closeWeight)
		accumulate(h, extremeWeight)
		accumulate(l, extremeWeight)
	}

	type zone struct {
		price  float64
		weight float64
	}
	zones := make([]zone, 0, len(buckets))
	for bucket, weight := range buckets {
		center := (float64(bucket) + 0.5) * width
		if center < predicted.Lower || center > predicted.Upper {
			continue
		}
		zones = append(zones, zone{price: center, weight: weight})
	}

	sort.Slice(zones, func(i, j int) bool {
		if zones[i].weight != zones[j].weight {
			return zones[i].weight > zones[j].weight
		}
		return zones[i].price < zones[j].price
	})
	if len(zones) > a.cfg.TopZones {
		zones = zones[:a.cfg.TopZones]
	}

	prices := make([]float64, len(zones))
	for i, z := range zones {
		prices[i] = z.price
	}
	sort.Float64s(prices)
	return prices
}
