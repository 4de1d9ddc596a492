package simulation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gridlab/pkg/common"
	"gridlab/pkg/utility/fixed"
)

func testGrid(t *testing.T, lower, upper int, levelCount int) common.GridParameters {
	t.Helper()
	params, err := common.NewGridParameters(fixed.FromInt(lower, 0), fixed.FromInt(upper, 0), levelCount, fixed.One)
	require.NoError(t, err)
	return params
}

func pricePath(closes ...int) []common.PricePoint {
	path := make([]common.PricePoint, len(closes))
	for i, c := range closes {
		path[i] = common.PricePoint{Day: i, Price: fixed.FromInt(c, 0)}
	}
	return path
}

func TestSimulator_SingleLongRoundTrip(t *testing.T) {
	sim := NewSimulator(zap.NewNop(), DefaultConfiguration())
	params := testGrid(t, 100, 120, 2) // levels 100, 110, 120

	// Day 0 dips to the 100 level and opens a long. Day 1 rallies through
	// the 110 level and closes it. Day 2 drifts without touching anything.
	path := pricePath(101, 112, 105)
	investment := fixed.FromInt(1000, 0)

	result, err := sim.Run(path, params, investment, fixed.One)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalTrades)
	assert.Equal(t, 1, result.ProfitableTrades)
	assert.True(t, result.FinalBalance.Gt(investment),
		"final balance %s should exceed investment after one profitable fill", result.FinalBalance.String())
	assert.Len(t, result.BalancePath, len(path))
	assert.True(t, result.MaxDrawdownPct.Gte(fixed.Zero))
}

func TestSimulator_NoTradesOnQuietPath(t *testing.T) {
	sim := NewSimulator(zap.NewNop(), DefaultConfiguration())
	params := testGrid(t, 100, 120, 2)

	// 105 never reaches a level within the 1% intraday band.
	result, err := sim.Run(pricePath(105, 105, 105), params, fixed.FromInt(1000, 0), fixed.One)
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalTrades)
	assert.True(t, result.FinalBalance.Eq(fixed.FromInt(1000, 0)),
		"balance must be untouched without fills, got %s", result.FinalBalance.String())
	assert.True(t, result.SharpeRatio.IsZero())
	assert.True(t, result.MaxDrawdownPct.IsZero())
}

func TestSimulator_ShortRoundTrip(t *testing.T) {
	sim := NewSimulator(zap.NewNop(), DefaultConfiguration())
	params := testGrid(t, 100, 120, 2)

	// Day 0 spikes to the 120 level above the close and opens a short.
	// Day 1 falls through the 110 level and closes it.
	result, err := sim.Run(pricePath(119, 105), params, fixed.FromInt(1000, 0), fixed.One)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalTrades)
	assert.Equal(t, 1, result.ProfitableTrades)
	assert.True(t, result.FinalBalance.Gt(fixed.FromInt(1000, 0)))
}

func TestSimulator_Deterministic(t *testing.T) {
	sim := NewSimulator(zap.NewNop(), DefaultConfiguration())
	params := testGrid(t, 90, 130, 8)
	path := pricePath(101, 96, 104, 112, 99, 118, 107, 93, 111, 125)
	investment := fixed.FromInt(5000, 0)

	first, err := sim.Run(path, params, investment, fixed.FromInt(2, 0))
	require.NoError(t, err)
	second, err := sim.Run(path, params, investment, fixed.FromInt(2, 0))
	require.NoError(t, err)

	assert.True(t, first.FinalBalance.Eq(second.FinalBalance))
	assert.Equal(t, first.TotalTrades, second.TotalTrades)
	assert.Equal(t, first.ProfitableTrades, second.ProfitableTrades)
	assert.True(t, first.MaxDrawdownPct.Eq(second.MaxDrawdownPct))
	require.Equal(t, len(first.BalancePath), len(second.BalancePath))
	for i := range first.BalancePath {
		assert.True(t, first.BalancePath[i].Balance.Eq(second.BalancePath[i].Balance))
	}
}

func TestSimulator_InvalidInput(t *testing.T) {
	sim := NewSimulator(zap.NewNop(), DefaultConfiguration())
	params := testGrid(t, 100, 120, 2)
	path := pricePath(105)

	tests := []struct {
		name       string
		path       []common.PricePoint
		params     common.GridParameters
		investment fixed.Point
		leverage   fixed.Point
	}{
		{"empty path", nil, params, fixed.FromInt(1000, 0), fixed.One},
		{"zero investment", path, params, fixed.Zero, fixed.One},
		{"negative investment", path, params, fixed.FromInt(-1, 0), fixed.One},
		{"leverage below one", path, params, fixed.FromInt(1000, 0), fixed.FromFloat64(0.5)},
		{"broken grid", path, common.GridParameters{LevelCount: 0}, fixed.FromInt(1000, 0), fixed.One},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.Run(tt.path, tt.params, tt.investment, tt.leverage)
			assert.True(t, errors.Is(err, common.ErrInvalidInput), "got %v", err)
		})
	}
}

func Test_GridLevelStateMachine(t *testing.T) {
	level := &gridLevel{price: fixed.FromInt(100, 0), side: common.LevelSideNone}
	require.True(t, level.free())

	require.NoError(t, level.open(common.LevelSideLong, fixed.FromInt(100, 0), fixed.One))
	assert.False(t, level.free())

	// A held level refuses a second entry until it is closed.
	assert.Error(t, level.open(common.LevelSideShort, fixed.FromInt(100, 0), fixed.One))
	assert.Error(t, level.open(common.LevelSideLong, fixed.FromInt(100, 0), fixed.One))

	require.NoError(t, level.close())
	assert.True(t, level.free())
	assert.Error(t, level.close())

	assert.Error(t, level.open(common.LevelSideNone, fixed.FromInt(100, 0), fixed.One))
}
