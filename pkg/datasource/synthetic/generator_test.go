package synthetic

import (
	"errors"
	"math/rand"
	"testing"

	"gridlab/pkg/common"
	"gridlab/pkg/utility/fixed"
)

func TestGeneratePath_StartsAtStartPrice(t *testing.T) {
	start := fixed.FromInt(50000, 0)
	path, err := GeneratePath(start, 30, 0.001, 0.02, 1.0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	if len(path) != 31 {
		t.Fatalf("len(path) = %d; want 31", len(path))
	}
	if path[0].Day != 0 || !path[0].Price.Eq(start) {
		t.Errorf("path[0] = {%d %s}; want {0 %s}", path[0].Day, path[0].Price.String(), start.String())
	}
	for i, point := range path {
		if point.Day != i {
			t.Errorf("path[%d].Day = %d; want %d", i, point.Day, i)
		}
	}
}

func TestGeneratePath_FlatWithoutDriftAndVolatility(t *testing.T) {
	start := fixed.FromInt(100, 0)
	path, err := GeneratePath(start, 10, 0, 0, 1.0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	for i, point := range path {
		if !point.Price.Eq(start) {
			t.Errorf("path[%d].Price = %s; want exactly %s", i, point.Price.String(), start.String())
		}
	}
}

func TestGeneratePath_FloorHolds(t *testing.T) {
	start := fixed.FromInt(100, 0)
	floor := start.Mul(fixed.FromFloat64(0.7))

	// Strong negative drift drives the path into the floor quickly.
	path, err := GeneratePath(start, 50, -0.5, 0, 1.0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	for i, point := range path {
		if point.Price.Lt(floor) {
			t.Errorf("path[%d].Price = %s; below floor %s", i, point.Price.String(), floor.String())
		}
	}
	if last := path[len(path)-1].Price; !last.Eq(floor) {
		t.Errorf("final price = %s; want pinned at floor %s", last.String(), floor.String())
	}
}

func TestGeneratePath_Deterministic(t *testing.T) {
	start := fixed.FromInt(50000, 0)

	first, err := GeneratePath(start, 90, 0.001, 0.02, 1.1, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	second, err := GeneratePath(start, 90, 0.001, 0.02, 1.1, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}

	for i := range first {
		if !first[i].Price.Eq(second[i].Price) {
			t.Fatalf("path diverged at day %d: %s vs %s", i, first[i].Price.String(), second[i].Price.String())
		}
	}
}

func TestGeneratePath_InvalidInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name       string
		startPrice fixed.Point
		days       int
		volatility float64
		rng        *rand.Rand
	}{
		{"zero start price", fixed.Zero, 10, 0.02, rng},
		{"negative start price", fixed.FromInt(-1, 0), 10, 0.02, rng},
		{"zero days", fixed.FromInt(100, 0), 0, 0.02, rng},
		{"negative volatility", fixed.FromInt(100, 0), 10, -0.02, rng},
		{"nil rng", fixed.FromInt(100, 0), 10, 0.02, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GeneratePath(tt.startPrice, tt.days, 0, tt.volatility, 1.0, tt.rng)
			if !errors.Is(err, common.ErrInvalidInput) {
				t.Errorf("GeneratePath() error = %v; want ErrInvalidInput", err)
			}
		})
	}
}
