package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"gridlab/pkg/common"
	"gridlab/pkg/utility/fixed"
)

// candleSeries builds daily candles from a close-price function.
func candleSeries(count int, close func(i int) float64) []common.Candle {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]common.Candle, count)
	for i := range candles {
		candles[i] = common.Candle{
			TimeStamp: start.AddDate(0, 0, i),
			Close:     fixed.FromFloat64(close(i)),
		}
	}
	return candles
}

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(zap.NewNop(), DefaultConfiguration())
}

func TestAnalyzer_ExpectedVolatility(t *testing.T) {
	a := newTestAnalyzer()

	// Alternating +10%/-9.09% closes produce a clearly positive stddev.
	volatile := candleSeries(60, func(i int) float64 {
		if i%2 == 0 {
			return 100
		}
		return 110
	})
	vol := a.ExpectedVolatility(volatile)
	assert.Greater(t, vol, 0.04, "alternating series should read as highly volatile")

	flat := candleSeries(60, func(int) float64 { return 100 })
	assert.Equal(t, a.cfg.FallbackVolatility, a.ExpectedVolatility(flat),
		"zero-variance series must fall back")

	short := candleSeries(2, func(int) float64 { return 100 })
	assert.Equal(t, a.cfg.FallbackVolatility, a.ExpectedVolatility(short))
}

func TestAnalyzer_ClassifyRegime(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		name         string
		volatility   float64
		predictedMid float64
		currentPrice float64
		want         common.MarketRegime
	}{
		{"calm and flat", 0.01, 100, 100, common.RegimeRanging},
		{"strong predicted move", 0.01, 110, 100, common.RegimeTrending},
		{"high volatility wins", 0.05, 110, 100, common.RegimeHighlyVolatile},
		{"move below threshold", 0.01, 104, 100, common.RegimeRanging},
		{"exactly at vol threshold", 0.04, 100, 100, common.RegimeRanging},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.ClassifyRegime(tt.volatility, tt.predictedMid, tt.currentPrice)
			assert.Equal(t, tt.want, got)
		})
	}
}
