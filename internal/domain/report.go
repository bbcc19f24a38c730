package domain

// CategoryTag is the closed product-category taxonomy used by the estimators.
// Categories are derived per request and never stored.
type CategoryTag string

const (
	CategoryLargeAppliance CategoryTag = "large_appliance"
	CategoryTV             CategoryTag = "tv"
	CategoryFurniture      CategoryTag = "furniture"
	CategoryElectronics    CategoryTag = "electronics"
	CategoryBooks          CategoryTag = "books"
	CategoryClothing       CategoryTag = "clothing"
	CategoryToys           CategoryTag = "toys"
	CategoryBeauty         CategoryTag = "beauty"
	CategoryFood           CategoryTag = "food"
	CategorySmallItems     CategoryTag = "small_items"
	CategoryUnknown        CategoryTag = "unknown"
)

// Dimensions holds product or packaging dimensions in centimeters.
// All three values are positive.
type Dimensions struct {
	LengthCM float64 `json:"length_cm"`
	WidthCM  float64 `json:"width_cm"`
	HeightCM float64 `json:"height_cm"`
}

// Volume returns the box volume in cubic centimeters.
func (d Dimensions) Volume() float64 {
	return d.LengthCM * d.WidthCM * d.HeightCM
}

// CatalogEstimate is the simulated catalog record for a product: synthetic
// dimension/weight figures standing in for unavailable real catalog data.
// Fully determined by the request seed, so the same title/ASIN always
// produces the same estimate.
type CatalogEstimate struct {
	ASIN                string      `json:"asin,omitempty"`
	Category            CategoryTag `json:"category"`
	Dimensions          Dimensions  `json:"dimensions"`
	WeightG             float64     `json:"weight_g"`
	PackagingDimensions Dimensions  `json:"packaging_dimensions"`
	PackagingVolumeCM3  float64     `json:"packaging_volume_cm3"`
	PackagingEfficiency float64     `json:"packaging_efficiency"` // percent, product volume / packaging volume
	PackagingWeightG    float64     `json:"packaging_weight_g"`
	IsSimulated         bool        `json:"is_simulated"`
}

// MaterialsProfile lists the expected packaging materials for a category
// together with a 0-100 recyclability score.
type MaterialsProfile struct {
	Materials          []string `json:"materials"`
	RecyclabilityScore int      `json:"recyclability_score"`
}

// PackagingImpactReport summarises the environmental impact of a product's
// packaging. ImpactScore is 0-100 where higher is better; ImpactLevel is the
// qualitative bucket where "Low" (low impact) corresponds to a high score.
type PackagingImpactReport struct {
	Materials          []string `json:"materials"`
	WasteWeightG       float64  `json:"waste_weight_g"`
	RecyclabilityScore int      `json:"recyclability_score"`
	CarbonFootprintG   float64  `json:"carbon_footprint_g"`
	WaterUsageL        float64  `json:"water_usage_l"`
	ImpactScore        int      `json:"impact_score"`
	ImpactLevel        string   `json:"impact_level"` // Low, Medium, High
	ImpactFactors      []string `json:"impact_factors"`
}

// SustainabilityReport is the general 0-100 sustainability estimate with its
// qualitative level and the factors that contributed to the score.
type SustainabilityReport struct {
	Score   int      `json:"score"`
	Level   string   `json:"level"` // low, medium, high
	Factors []string `json:"factors"`
}
