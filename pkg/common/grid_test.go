package common

import (
	"errors"
	"testing"

	"gridlab/pkg/utility/fixed"
)

func TestNewGridParameters(t *testing.T) {
	params, err := NewGridParameters(fixed.FromInt(100, 0), fixed.FromInt(120, 0), 2, fixed.One)
	if err != nil {
		t.Fatal(err)
	}

	if !params.Spacing.Eq(fixed.FromInt(10, 0)) {
		t.Errorf("Spacing = %s; want 10", params.Spacing.String())
	}
	if params.LevelCount != 2 {
		t.Errorf("LevelCount = %d; want 2", params.LevelCount)
	}
}

func TestNewGridParameters_InvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		lower      fixed.Point
		upper      fixed.Point
		levelCount int
	}{
		{"zero levels", fixed.FromInt(100, 0), fixed.FromInt(120, 0), 0},
		{"negative levels", fixed.FromInt(100, 0), fixed.FromInt(120, 0), -1},
		{"zero lower bound", fixed.Zero, fixed.FromInt(120, 0), 2},
		{"inverted bounds", fixed.FromInt(120, 0), fixed.FromInt(100, 0), 2},
		{"equal bounds", fixed.FromInt(100, 0), fixed.FromInt(100, 0), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGridParameters(tt.lower, tt.upper, tt.levelCount, fixed.One)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("NewGridParameters() error = %v; want ErrInvalidInput", err)
			}
		})
	}
}

func TestGridParameters_Levels(t *testing.T) {
	params, err := NewGridParameters(fixed.FromInt(100, 0), fixed.FromInt(120, 0), 4, fixed.One)
	if err != nil {
		t.Fatal(err)
	}

	levels := params.Levels()
	if len(levels) != params.LevelCount+1 {
		t.Fatalf("len(Levels()) = %d; want %d", len(levels), params.LevelCount+1)
	}
	if !levels[0].Eq(params.LowerBound) {
		t.Errorf("first level = %s; want %s", levels[0].String(), params.LowerBound.String())
	}
	if !levels[len(levels)-1].Eq(params.UpperBound) {
		t.Errorf("last level = %s; want %s", levels[len(levels)-1].String(), params.UpperBound.String())
	}
	for i := 1; i < len(levels); i++ {
		if !levels[i].Gt(levels[i-1]) {
			t.Errorf("levels not strictly increasing at %d: %s <= %s", i, levels[i].String(), levels[i-1].String())
		}
	}
}

func TestLevelSide_String(t *testing.T) {
	if LevelSideNone.String() != "none" || LevelSideLong.String() != "long" || LevelSideShort.String() != "short" {
		t.Error("unexpected LevelSide string representation")
	}
}
