package common

import (
	"time"

	"gridlab/pkg/utility/fixed"
)

// Candle is a single historical price observation. High, Low and Volume are
// optional; readers that only have a close price leave them at zero.
type Candle struct {
	TimeStamp time.Time   `json:"ts"`
	Close     fixed.Point `json:"close"`
	High      fixed.Point `json:"high,omitempty"`
	Low       fixed.Point `json:"low,omitempty"`
	Volume    fixed.Point `json:"volume,omitempty"`
}

// EffectiveHigh falls back to the close when no intraday high is known.
func (c Candle) EffectiveHigh() fixed.Point {
	if c.High.IsZero() {
		return c.Close
	}
	return c.High
}

// EffectiveLow falls back to the close when no intraday low is known.
func (c Candle) EffectiveLow() fixed.Point {
	if c.Low.IsZero() {
		return c.Close
	}
	return c.Low
}

// PricePoint is one step of a generated price trajectory.
type PricePoint struct {
	Day   int         `json:"day"`
	Price fixed.Point `json:"price"`
}
