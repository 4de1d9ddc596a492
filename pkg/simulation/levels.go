package simulation

import (
	"fmt"

	"gridlab/pkg/common"
	"gridlab/pkg/utility/fixed"
)

// gridLevel is the per-level order state machine. A level holds at most one
// position and must close it before reopening, so the only legal transitions
// are none->long->none and none->short->none.
type gridLevel struct {
	price      fixed.Point
	side       common.LevelSide
	entryPrice fixed.Point
	size       fixed.Point
}

func buildLevels(params common.GridParameters) []*gridLevel {
	prices := params.Levels()
	levels := make([]*gridLevel, len(prices))
	for i, price := range prices {
		levels[i] = &gridLevel{price: price, side: common.LevelSideNone}
	}
	return levels
}

func (l *gridLevel) free() bool {
	return l.side == common.LevelSideNone
}

func (l *gridLevel) open(side common.LevelSide, entryPrice, size fixed.Point) error {
	if side == common.LevelSideNone {
		return fmt.Errorf("level %s: cannot open side none", l.price)
	}
	if l.side != common.LevelSideNone {
		return fmt.Errorf("level %s: %s position still open", l.price, l.side)
	}
	l.side = side
	l.entryPrice = entryPrice
	l.size = size
	return nil
}

func (l *gridLevel) close() error {
	if l.side == common.LevelSideNone {
		return fmt.Errorf("level %s: no position to close", l.price)
	}
	l.side = common.LevelSideNone
	l.entryPrice = fixed.Zero
	l.size = fixed.Zero
	return nil
}
