package usecase

import (
	"testing"

	"github.com/ecolens/backend/internal/domain"
)

func TestCalculatePackagingDimensions(t *testing.T) {
	tests := []struct {
		name     string
		category domain.CategoryTag
		loFactor float64
		hiFactor float64
	}{
		{"large appliances ship tight", domain.CategoryLargeAppliance, 1.05, 1.15},
		{"electronics get extra padding", domain.CategoryElectronics, 1.2, 1.4},
		{"clothing compresses", domain.CategoryClothing, 1.1, 1.2},
		{"books use standard mailers", domain.CategoryBooks, 1.05, 1.15},
		{"beauty gets presentation packaging", domain.CategoryBeauty, 1.3, 1.5},
		{"unlisted categories use the default band", domain.CategoryToys, 1.1, 1.3},
	}

	dims := domain.Dimensions{LengthCM: 30, WidthCM: 20, HeightCM: 10}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := newSeededRand(string(tt.category))
			packaging, volume, efficiency := calculatePackagingDimensions(rng, dims, tt.category)

			factor := packaging.LengthCM / dims.LengthCM
			if factor < tt.loFactor || factor >= tt.hiFactor {
				t.Errorf("packaging factor %v outside [%v, %v)", factor, tt.loFactor, tt.hiFactor)
			}

			// Same factor on every axis.
			if w := packaging.WidthCM / dims.WidthCM; !closeEnough(w, factor) {
				t.Errorf("width factor %v != length factor %v", w, factor)
			}
			if h := packaging.HeightCM / dims.HeightCM; !closeEnough(h, factor) {
				t.Errorf("height factor %v != length factor %v", h, factor)
			}

			if !closeEnough(volume, packaging.Volume()) {
				t.Errorf("volume = %v, want %v", volume, packaging.Volume())
			}
			if efficiency <= 0 || efficiency > 100 {
				t.Errorf("efficiency %v outside (0, 100]", efficiency)
			}
		})
	}
}

func TestCalculatePackagingWeight(t *testing.T) {
	t.Run("fraction of product weight", func(t *testing.T) {
		rng := newSeededRand("electronics weight")
		got := calculatePackagingWeight(rng, 1000, domain.CategoryElectronics, 0)
		if got < 150 || got >= 300 {
			t.Errorf("packaging weight %v outside [150, 300) for a 1000g electronics product", got)
		}
	})

	t.Run("floored at 1g per 1000cm3 of packaging volume", func(t *testing.T) {
		rng := newSeededRand("floor")
		got := calculatePackagingWeight(rng, 10, domain.CategoryBooks, 500000)
		if got != 500 {
			t.Errorf("packaging weight = %v, want volume floor 500", got)
		}
	})
}

func closeEnough(a, b float64) bool {
	diff := a - b
	return diff < 1e-9 && diff > -1e-9
}
