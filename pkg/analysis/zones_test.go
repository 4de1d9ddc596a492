package analysis

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridlab/pkg/common"
)

func TestAnalyzer_OptimalEntryZones(t *testing.T) {
	a := newTestAnalyzer()

	// Closes concentrate in the 50000-50500 bucket with occasional visits
	// to the one above.
	candles := candleSeries(300, func(i int) float64 {
		if i%10 == 0 {
			return 50700
		}
		return 50200
	})
	predicted := common.PredictedRange{Lower: 45000, Upper: 55000, ExpectedMid: 50000}

	zones := a.OptimalEntryZones(candles, predicted)
	require.NotEmpty(t, zones)
	assert.LessOrEqual(t, len(zones), a.cfg.TopZones)
	assert.True(t, sort.Float64sAreSorted(zones), "zones must be sorted ascending")

	assert.Contains(t, zones, 50250.0, "the densest bucket center must be present")
	for _, z := range zones {
		assert.GreaterOrEqual(t, z, predicted.Lower)
		assert.LessOrEqual(t, z, predicted.Upper)
	}
}

func TestAnalyzer_OptimalEntryZones_OutsideRangeExcluded(t *testing.T) {
	a := newTestAnalyzer()

	candles := candleSeries(300, func(int) float64 { return 80000 })
	predicted := common.PredictedRange{Lower: 45000, Upper: 55000}

	assert.Empty(t, a.OptimalEntryZones(candles, predicted))
}

func TestAnalyzer_OptimalEntryZones_NoCandles(t *testing.T) {
	a := newTestAnalyzer()
	assert.Nil(t, a.OptimalEntryZones(nil, common.PredictedRange{Lower: 0, Upper: 100000}))
}
