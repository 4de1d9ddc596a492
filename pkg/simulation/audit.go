package simulation

import (
	"gridlab/pkg/common"
	"gridlab/pkg/utility/fixed"
)

// audit accumulates the equity curve and per-trade bookkeeping of a single
// run. The drawdown is tracked as a running maximum against the peak balance.
type audit struct {
	balancePath  []common.BalancePoint
	peakBalance  fixed.Point
	maxDrawdown  fixed.Point
	tradeReturns []fixed.Point

	totalTrades      int
	profitableTrades int
}

func newAudit(startBalance fixed.Point, pathLen int) *audit {
	return &audit{
		balancePath: make([]common.BalancePoint, 0, pathLen),
		peakBalance: startBalance,
		maxDrawdown: fixed.Zero,
	}
}

func (a *audit) addSnapshot(day int, price, balance fixed.Point) {
	a.balancePath = append(a.balancePath, common.BalancePoint{Day: day, Price: price, Balance: balance})

	if balance.Gt(a.peakBalance) {
		a.peakBalance = balance
	}
	drawdown := a.peakBalance.Sub(balance).Div(a.peakBalance).Mul(fixed.Hundred)
	if drawdown.Gt(a.maxDrawdown) {
		a.maxDrawdown = drawdown
	}
}

func (a *audit) addClosedTrade(netProfit, capitalPerLevel fixed.Point) {
	a.totalTrades++
	if netProfit.IsPos() {
		a.profitableTrades++
	}
	a.tradeReturns = append(a.tradeReturns, netProfit.Div(capitalPerLevel).Mul(fixed.Hundred))
}

// sharpe annualizes with the fixed 90-day constant regardless of the actual
// projection length.
func (a *audit) sharpe() fixed.Point {
	if len(a.tradeReturns) < 2 {
		return fixed.Zero
	}
	return fixed.SharpeRatio(a.tradeReturns, fixed.Zero).Mul(fixed.Sqrt90)
}

func (a *audit) result(finalBalance fixed.Point) common.SimulationResult {
	return common.SimulationResult{
		FinalBalance:     finalBalance,
		TotalTrades:      a.totalTrades,
		ProfitableTrades: a.profitableTrades,
		MaxDrawdownPct:   a.maxDrawdown,
		SharpeRatio:      a.sharpe(),
		BalancePath:      a.balancePath,
	}
}
