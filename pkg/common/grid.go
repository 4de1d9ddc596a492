package common

import (
	"fmt"

	"gridlab/pkg/utility/fixed"
)

// GridParameters describes the evenly spaced price grid a simulation runs
// against. Spacing must equal (UpperBound-LowerBound)/LevelCount.
type GridParameters struct {
	LowerBound       fixed.Point `json:"lower_bound"`
	UpperBound       fixed.Point `json:"upper_bound"`
	LevelCount       int         `json:"level_count"`
	Spacing          fixed.Point `json:"spacing"`
	ProfitPerGridPct fixed.Point `json:"profit_per_grid_pct"`
}

// NewGridParameters derives the spacing from the bounds and level count.
func NewGridParameters(lower, upper fixed.Point, levelCount int, profitPerGridPct fixed.Point) (GridParameters, error) {
	if levelCount < 1 {
		return GridParameters{}, fmt.Errorf("%w: level count %d", ErrInvalidInput, levelCount)
	}
	if !lower.IsPos() || upper.Lte(lower) {
		return GridParameters{}, fmt.Errorf("%w: grid bounds [%s, %s]", ErrInvalidInput, lower, upper)
	}
	return GridParameters{
		LowerBound:       lower,
		UpperBound:       upper,
		LevelCount:       levelCount,
		Spacing:          upper.Sub(lower).DivInt(levelCount),
		ProfitPerGridPct: profitPerGridPct,
	}, nil
}

func (p GridParameters) Validate() error {
	if p.LevelCount < 1 {
		return fmt.Errorf("%w: level count %d", ErrInvalidInput, p.LevelCount)
	}
	if !p.LowerBound.IsPos() || p.UpperBound.Lte(p.LowerBound) {
		return fmt.Errorf("%w: grid bounds [%s, %s]", ErrInvalidInput, p.LowerBound, p.UpperBound)
	}
	return nil
}

// Levels materializes the LevelCount+1 strictly increasing level prices.
func (p GridParameters) Levels() []fixed.Point {
	levels := make([]fixed.Point, p.LevelCount+1)
	for i := 0; i <= p.LevelCount; i++ {
		levels[i] = p.LowerBound.Add(p.Spacing.MulInt(i))
	}
	return levels
}

type LevelSide int

const (
	LevelSideNone LevelSide = iota
	LevelSideLong
	LevelSideShort
)

func (s LevelSide) String() string {
	switch s {
	case LevelSideLong:
		return "long"
	case LevelSideShort:
		return "short"
	default:
		return "none"
	}
}
