// Package simulation replays a price trajectory against a grid of layered
// buy/sell levels and reports the resulting performance.
package simulation

import (
	"fmt"

	"go.uber.org/zap"

	"gridlab/pkg/common"
	"gridlab/pkg/utility/fixed"
)

type Simulator struct {
	logger *zap.Logger
	cfg    Configuration
}

func NewSimulator(logger *zap.Logger, cfg Configuration) *Simulator {
	return &Simulator{
		logger: logger,
		cfg:    cfg,
	}
}

// Run replays the path against the grid. It is deterministic: the same path,
// parameters, investment and leverage always produce the same result.
func (s *Simulator) Run(
	path []common.PricePoint,
	params common.GridParameters,
	investment, leverage fixed.Point) (common.SimulationResult, error) {

	if len(path) == 0 {
		return common.SimulationResult{}, fmt.Errorf("%w: empty price path", common.ErrInvalidInput)
	}
	if !investment.IsPos() {
		return common.SimulationResult{}, fmt.Errorf("%w: investment %s", common.ErrInvalidInput, investment)
	}
	if leverage.Lt(fixed.One) {
		return common.SimulationResult{}, fmt.Errorf("%w: leverage %s", common.ErrInvalidInput, leverage)
	}
	if err := params.Validate(); err != nil {
		return common.SimulationResult{}, err
	}

	levels := buildLevels(params)
	capitalPerLevel := investment.Mul(leverage).DivInt(params.LevelCount)

	balance := investment
	bookkeeper := newAudit(investment, len(path))

	for _, point := range path {
		dayClose := point.Price
		dayHigh := dayClose.Mul(fixed.One.Add(s.cfg.IntradayRange))
		dayLow := dayClose.Mul(fixed.One.Sub(s.cfg.IntradayRange))

		for i, level := range levels {
			switch level.side {
			case common.LevelSideNone:
				balance = s.tryOpen(level, dayClose, dayHigh, dayLow, capitalPerLevel, balance)
			case common.LevelSideLong:
				// A long closes when the day's high reaches the next
				// higher level.
				if i+1 < len(levels) && dayHigh.Gte(levels[i+1].price) {
					balance = s.closeLong(level, levels[i+1].price, capitalPerLevel, balance, bookkeeper)
				}
			case common.LevelSideShort:
				// A short closes when the day's low reaches the next
				// lower level.
				if i-1 >= 0 && dayLow.Lte(levels[i-1].price) {
					balance = s.closeShort(level, levels[i-1].price, capitalPerLevel, balance, bookkeeper)
				}
			}
		}

		bookkeeper.addSnapshot(point.Day, dayClose, balance)
	}

	return bookkeeper.result(balance), nil
}

func (s *Simulator) tryOpen(level *gridLevel, dayClose, dayHigh, dayLow, capitalPerLevel, balance fixed.Point) fixed.Point {
	if !level.free() {
		return balance
	}
	switch {
	case dayLow.Lte(level.price) && level.price.Lt(dayClose):
		entry := level.price.Mul(fixed.One.Add(s.cfg.Slippage))
		size := capitalPerLevel.Div(entry)
		if err := level.open(common.LevelSideLong, entry, size); err != nil {
			s.logger.Warn("unable to open long", zap.Error(err))
			return balance
		}
		return balance.Sub(capitalPerLevel.Mul(s.cfg.TakerFee))

	case dayHigh.Gte(level.price) && level.price.Gt(dayClose):
		entry := level.price.Mul(fixed.One.Sub(s.cfg.Slippage))
		size := capitalPerLevel.Div(entry)
		if err := level.open(common.LevelSideShort, entry, size); err != nil {
			s.logger.Warn("unable to open short", zap.Error(err))
			return balance
		}
		return balance.Sub(capitalPerLevel.Mul(s.cfg.TakerFee))
	}
	return balance
}

func (s *Simulator) closeLong(level *gridLevel, nextLevelPrice, capitalPerLevel, balance fixed.Point, bookkeeper *audit) fixed.Point {
	exit := nextLevelPrice.Mul(fixed.One.Sub(s.cfg.Slippage))
	positionValue := level.size.Mul(exit)
	grossProfit := positionValue.Sub(capitalPerLevel)
	netProfit := grossProfit.Sub(positionValue.Mul(s.cfg.MakerFee))

	if err := level.close(); err != nil {
		s.logger.Warn("unable to close long", zap.Error(err))
		return balance
	}
	bookkeeper.addClosedTrade(netProfit, capitalPerLevel)
	return balance.Add(netProfit)
}

func (s *Simulator) closeShort(level *gridLevel, lowerLevelPrice, capitalPerLevel, balance fixed.Point, bookkeeper *audit) fixed.Point {
	exit := lowerLevelPrice.Mul(fixed.One.Add(s.cfg.Slippage))
	positionValue := level.size.Mul(exit)
	grossProfit := capitalPerLevel.Sub(positionValue)
	netProfit := grossProfit.Sub(positionValue.Mul(s.cfg.MakerFee))

	if err := level.close(); err != nil {
		s.logger.Warn("unable to close short", zap.Error(err))
		return balance
	}
	bookkeeper.addClosedTrade(netProfit, capitalPerLevel)
	return balance.Add(netProfit)
}
