package usecase

import (
	"fmt"
	"math"

	"github.com/ecolens/backend/internal/domain"
)

// Impact score weighting. The score starts from a perfect 100 and loses
// points for waste weight, carbon and water footprints; recyclability moves
// it up to 15 points either way around the 50-point midpoint.
const (
	wastePenaltyPerStep  = 5.0  // per 25g of packaging waste
	carbonPenaltyPerStep = 3.0  // per 25g of CO2
	waterPenaltyPerStep  = 3.0  // per 2.5L of water
	recyclabilitySwing   = 15.0 // max adjustment from recyclability
	bulkyCategoryPenalty = 20.0
	efficiencyBonus      = 15.0
	ecoPackagingBonus    = 10.0
)

// Efficiency thresholds for the packaging-efficiency bonus and penalty
const (
	highEfficiencyPct = 80.0
	lowEfficiencyPct  = 30.0
)

// bulkyCategories require heavy protective packaging regardless of supplier
var bulkyCategories = map[domain.CategoryTag]bool{
	domain.CategoryLargeAppliance: true,
	domain.CategoryFurniture:      true,
	domain.CategoryTV:             true,
}

// composePackagingImpact combines waste weight, footprints, recyclability and
// textual signals into a 0-100 impact score. Higher scores are better; the
// qualitative level is named after the impact itself, so a high score maps to
// "Low" impact. That inversion is part of the response contract.
func composePackagingImpact(
	category domain.CategoryTag,
	materials domain.MaterialsProfile,
	wasteWeightG, carbonFootprintG, waterUsageL, efficiencyPct float64,
	description string,
) (int, string, []string) {
	score := 100.0
	factors := []string{
		fmt.Sprintf("Estimated packaging waste: %.0fg", wasteWeightG),
		fmt.Sprintf("Carbon footprint: %.0fg CO2", carbonFootprintG),
		fmt.Sprintf("Water usage: %.1fL", waterUsageL),
	}

	score -= wasteWeightG / 25 * wastePenaltyPerStep
	score -= carbonFootprintG / 25 * carbonPenaltyPerStep
	score -= waterUsageL / 2.5 * waterPenaltyPerStep

	recyclability := float64(materials.RecyclabilityScore)
	score += (recyclability - 50) / 50 * recyclabilitySwing
	if materials.RecyclabilityScore >= 70 {
		factors = append(factors, fmt.Sprintf("Highly recyclable packaging materials (%d/100)", materials.RecyclabilityScore))
	} else {
		factors = append(factors, fmt.Sprintf("Recyclability score: %d/100", materials.RecyclabilityScore))
	}

	if bulkyCategories[category] {
		score -= bulkyCategoryPenalty
		factors = append(factors, "Bulky product category requires heavy protective packaging")
	}

	if efficiencyPct > highEfficiencyPct {
		score += efficiencyBonus
		factors = append(factors, fmt.Sprintf("Efficient packaging (%.1f%% space utilization)", efficiencyPct))
	} else if efficiencyPct < lowEfficiencyPct {
		score -= efficiencyBonus
		factors = append(factors, fmt.Sprintf("Inefficient packaging (%.1f%% space utilization)", efficiencyPct))
	}

	// Single application regardless of how many phrases match.
	if hasEcoPackaging(description) {
		score += ecoPackagingBonus
		factors = append(factors, "Product mentions eco-friendly packaging")
	}

	rounded := int(math.Round(clampScore(score)))
	return rounded, impactLevel(rounded), factors
}

// impactLevel buckets the numeric score. A high score means low impact.
func impactLevel(score int) string {
	switch {
	case score >= 75:
		return "Low"
	case score >= 50:
		return "Medium"
	default:
		return "High"
	}
}

// clampScore bounds a raw score to [0, 100]
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
