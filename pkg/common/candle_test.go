package common

import (
	"testing"

	"gridlab/pkg/utility/fixed"
)

func TestCandle_EffectiveHighLow(t *testing.T) {
	full := Candle{
		Close: fixed.FromInt(100, 0),
		High:  fixed.FromInt(105, 0),
		Low:   fixed.FromInt(95, 0),
	}
	if !full.EffectiveHigh().Eq(full.High) {
		t.Errorf("EffectiveHigh() = %s; want %s", full.EffectiveHigh().String(), full.High.String())
	}
	if !full.EffectiveLow().Eq(full.Low) {
		t.Errorf("EffectiveLow() = %s; want %s", full.EffectiveLow().String(), full.Low.String())
	}

	closeOnly := Candle{Close: fixed.FromInt(100, 0)}
	if !closeOnly.EffectiveHigh().Eq(closeOnly.Close) {
		t.Error("EffectiveHigh() should fall back to close when high is unset")
	}
	if !closeOnly.EffectiveLow().Eq(closeOnly.Close) {
		t.Error("EffectiveLow() should fall back to close when low is unset")
	}
}
