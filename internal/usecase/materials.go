package usecase

import (
	"math"
	"strings"

	"github.com/ecolens/backend/internal/domain"
)

// Per-category packaging material profiles, modeled on typical e-commerce
// shipping practice. Mixed-material packaging scores lower on recyclability.
var categoryMaterials = map[domain.CategoryTag]domain.MaterialsProfile{
	domain.CategoryLargeAppliance: {
		Materials:          []string{"Cardboard", "Styrofoam", "Plastic film", "Metal straps", "Wood pallet"},
		RecyclabilityScore: 40,
	},
	domain.CategoryTV: {
		Materials:          []string{"Cardboard", "Styrofoam corners", "Plastic film", "Cable ties"},
		RecyclabilityScore: 55,
	},
	domain.CategoryFurniture: {
		Materials:          []string{"Cardboard", "Styrofoam", "Plastic film", "Tape", "Bubble wrap"},
		RecyclabilityScore: 50,
	},
	domain.CategoryElectronics: {
		Materials:          []string{"Cardboard", "Molded pulp", "Plastic film", "Anti-static bags"},
		RecyclabilityScore: 60,
	},
	domain.CategoryBooks: {
		Materials:          []string{"Cardboard", "Paper", "Shrink wrap"},
		RecyclabilityScore: 85,
	},
	domain.CategoryClothing: {
		Materials:          []string{"Plastic polybag", "Cardboard tags", "Tissue paper"},
		RecyclabilityScore: 55,
	},
	domain.CategoryToys: {
		Materials:          []string{"Cardboard", "Plastic blister", "Twist ties", "Plastic film"},
		RecyclabilityScore: 45,
	},
	domain.CategoryBeauty: {
		Materials:          []string{"Cardboard", "Plastic container", "Foam inserts"},
		RecyclabilityScore: 50,
	},
	domain.CategoryFood: {
		Materials:          []string{"Cardboard", "Food-safe plastic", "Insulation (if perishable)"},
		RecyclabilityScore: 60,
	},
	domain.CategorySmallItems: {
		Materials:          []string{"Paper envelope", "Bubble mailer"},
		RecyclabilityScore: 75,
	},
}

// defaultMaterials covers categories without a profile of their own
var defaultMaterials = domain.MaterialsProfile{
	Materials:          []string{"Cardboard", "Plastic film"},
	RecyclabilityScore: 65,
}

// ecoPackagingKeywords are description phrases signaling deliberately
// sustainable packaging. Matching is case-insensitive substring containment.
var ecoPackagingKeywords = []string{
	"recyclable packaging", "plastic-free packaging", "sustainable packaging",
	"minimal packaging", "eco-friendly packaging", "biodegradable packaging",
	"compostable packaging", "recycled packaging", "frustration-free packaging",
}

// hasEcoPackaging reports whether the description mentions eco-friendly packaging
func hasEcoPackaging(description string) bool {
	return containsAny(strings.ToLower(description), ecoPackagingKeywords)
}

// resolvePackagingMaterials returns the materials profile for a category,
// upgraded when the description advertises eco-friendly packaging: Styrofoam
// and plastic film are swapped for their recyclable/biodegradable substitutes
// and the recyclability score gains a one-time +15, capped at 95.
func resolvePackagingMaterials(category domain.CategoryTag, description string) domain.MaterialsProfile {
	profile, ok := categoryMaterials[category]
	if !ok {
		profile = defaultMaterials
	}

	// Copy before mutating; the tables are shared static configuration.
	materials := make([]string, len(profile.Materials))
	copy(materials, profile.Materials)
	profile.Materials = materials

	if !hasEcoPackaging(description) {
		return profile
	}

	profile.Materials = substituteMaterial(profile.Materials, "Styrofoam", "Recycled paper pulp")
	profile.Materials = substituteMaterial(profile.Materials, "Plastic film", "Biodegradable film")

	profile.RecyclabilityScore += 15
	if profile.RecyclabilityScore > 95 {
		profile.RecyclabilityScore = 95
	}
	return profile
}

// substituteMaterial replaces an exact material entry with its greener
// equivalent, moving it to the end of the list.
func substituteMaterial(materials []string, from, to string) []string {
	for i, m := range materials {
		if m == from {
			materials = append(materials[:i], materials[i+1:]...)
			return append(materials, to)
		}
	}
	return materials
}

// materialFactor pairs a substance keyword with a per-gram multiplier.
// Tables are checked in order and the first keyword contained in the
// material name wins.
type materialFactor struct {
	keyword string
	factor  float64
}

// carbonFactors give grams of CO2 emitted per gram of packaging material
var carbonFactors = []materialFactor{
	{"cardboard", 1.5},
	{"paper", 1.3},
	{"plastic", 3.0},
	{"styrofoam", 4.0},
	{"wood", 0.5},
	{"metal", 5.0},
	{"biodegradable", 1.0},
	{"recycled", 0.8},
}

const defaultCarbonFactor = 2.0

// waterFactors give liters of water consumed per gram of packaging material
var waterFactors = []materialFactor{
	{"cardboard", 0.1},
	{"paper", 0.15},
	{"plastic", 0.08},
	{"styrofoam", 0.12},
	{"wood", 0.05},
	{"metal", 0.2},
	{"biodegradable", 0.07},
	{"recycled", 0.05},
}

const defaultWaterFactor = 0.1

// factorFor finds the multiplier for a material name, falling back to the
// table default when no substance keyword matches.
func factorFor(material string, factors []materialFactor, fallback float64) float64 {
	lowered := strings.ToLower(material)
	for _, f := range factors {
		if strings.Contains(lowered, f.keyword) {
			return f.factor
		}
	}
	return fallback
}

// sumFootprint distributes the waste weight evenly across the listed
// materials and sums per-material contributions.
func sumFootprint(materials []string, wasteWeightG float64, factors []materialFactor, fallback float64) float64 {
	if len(materials) == 0 {
		return 0
	}
	perMaterial := wasteWeightG / float64(len(materials))

	total := 0.0
	for _, material := range materials {
		total += perMaterial * factorFor(material, factors, fallback)
	}
	return total
}

// calculateCarbonFootprint estimates grams of CO2 for producing the packaging,
// rounded to the nearest gram.
func calculateCarbonFootprint(materials []string, wasteWeightG float64) float64 {
	return math.Round(sumFootprint(materials, wasteWeightG, carbonFactors, defaultCarbonFactor))
}

// calculateWaterUsage estimates liters of water for producing the packaging,
// rounded to one decimal place.
func calculateWaterUsage(materials []string, wasteWeightG float64) float64 {
	return math.Round(sumFootprint(materials, wasteWeightG, waterFactors, defaultWaterFactor)*10) / 10
}
