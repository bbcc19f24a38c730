package usecase

import (
	"math/rand"

	"github.com/ecolens/backend/internal/domain"
)

// packagingFactorBand returns the per-category multiplier band applied to all
// three product dimensions when boxing it.
func packagingFactorBand(category domain.CategoryTag) (lo, hi float64) {
	switch category {
	case domain.CategoryLargeAppliance:
		return 1.05, 1.15 // large appliances ship in tight packaging
	case domain.CategoryElectronics:
		return 1.2, 1.4 // extra protective padding
	case domain.CategoryClothing:
		return 1.1, 1.2 // compressible
	case domain.CategoryBooks:
		return 1.05, 1.15 // standardized mailers
	case domain.CategoryBeauty:
		return 1.3, 1.5 // presentation packaging
	default:
		return 1.1, 1.3
	}
}

// calculatePackagingDimensions scales product dimensions by a category-band
// packaging factor and derives packaging volume and efficiency. Efficiency is
// the product-volume share of the packaging volume as a percentage; it cannot
// exceed 100 because the factor is at least 1 on every axis.
func calculatePackagingDimensions(rng *rand.Rand, dims domain.Dimensions, category domain.CategoryTag) (domain.Dimensions, float64, float64) {
	lo, hi := packagingFactorBand(category)
	factor := uniform(rng, lo, hi)

	packaging := domain.Dimensions{
		LengthCM: dims.LengthCM * factor,
		WidthCM:  dims.WidthCM * factor,
		HeightCM: dims.HeightCM * factor,
	}

	packagingVolume := packaging.Volume()
	efficiency := dims.Volume() / packagingVolume * 100

	return packaging, packagingVolume, efficiency
}

// packagingWeightBand returns the per-category fraction band of product
// weight that the packaging itself weighs.
func packagingWeightBand(category domain.CategoryTag) (lo, hi float64) {
	switch category {
	case domain.CategoryLargeAppliance:
		return 0.05, 0.15
	case domain.CategoryFurniture:
		return 0.1, 0.2
	case domain.CategoryElectronics:
		return 0.15, 0.3
	case domain.CategoryBooks:
		return 0.05, 0.1
	case domain.CategoryClothing:
		return 0.1, 0.2
	default:
		return 0.1, 0.25
	}
}

// calculatePackagingWeight estimates packaging weight as a category-band
// fraction of product weight, floored at 1g per 1000cm3 of packaging volume
// as a physical minimum.
func calculatePackagingWeight(rng *rand.Rand, weightG float64, category domain.CategoryTag, packagingVolume float64) float64 {
	lo, hi := packagingWeightBand(category)
	packagingWeight := weightG * uniform(rng, lo, hi)

	minWeight := packagingVolume / 1000
	if packagingWeight < minWeight {
		packagingWeight = minWeight
	}
	return packagingWeight
}
