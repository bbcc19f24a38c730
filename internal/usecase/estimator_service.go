package usecase

import (
	"log"
	"math"
	"strings"

	"github.com/ecolens/backend/internal/domain"
)

// EstimatorConfig holds configuration for the estimator service
type EstimatorConfig struct {
	EnableDebugLogging bool
}

// EstimatorService is the estimation core: it turns a scraped ProductRecord
// into a simulated catalog estimate, a packaging impact report and a
// sustainability report. Every public method is guaranteed non-failing:
// malformed or incomplete input degrades to a labeled neutral default
// instead of an error, so the API layer always has a structured answer.
//
// The service holds no mutable state; the only per-request state is the
// seeded random stream derived from the product identifier.
type EstimatorService struct {
	enableDebugLogging bool
}

// NewEstimatorService creates a new estimator service
func NewEstimatorService(config EstimatorConfig) *EstimatorService {
	return &EstimatorService{enableDebugLogging: config.EnableDebugLogging}
}

// EstimateCatalog generates simulated catalog data for a product: category,
// dimensions, weight and packaging figures. All random draws come from a
// stream seeded by the ASIN (or the lowercased title when no ASIN is
// present), so the same product always yields the same estimate.
func (s *EstimatorService) EstimateCatalog(product *domain.ProductRecord) (estimate *domain.CatalogEstimate) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ESTIMATOR] Recovered from catalog estimation failure: %v", r)
			estimate = neutralCatalogEstimate()
		}
	}()

	if product == nil || strings.TrimSpace(product.Title) == "" {
		log.Printf("[ESTIMATOR] Missing title, returning neutral catalog estimate")
		return neutralCatalogEstimate()
	}

	title := strings.ToLower(product.Title)
	description := strings.ToLower(product.Description)

	asin := ExtractASIN(product.URL)
	identifier := asin
	if identifier == "" {
		identifier = title
	}
	rng := newSeededRand(identifier)

	category, dims, weightG := detectProductCategory(rng, title, description)
	packagingDims, packagingVolume, efficiency := calculatePackagingDimensions(rng, dims, category)
	packagingWeight := calculatePackagingWeight(rng, weightG, category, packagingVolume)

	estimate = &domain.CatalogEstimate{
		ASIN:                asin,
		Category:            category,
		Dimensions:          roundDimensions(dims),
		WeightG:             math.Round(weightG),
		PackagingDimensions: roundDimensions(packagingDims),
		PackagingVolumeCM3:  math.Round(packagingVolume),
		PackagingEfficiency: round1(efficiency),
		PackagingWeightG:    math.Round(packagingWeight),
		IsSimulated:         true,
	}

	if s.enableDebugLogging {
		log.Printf("[ESTIMATOR] Catalog estimate for %q: category=%s weight=%.0fg packaging=%.0fg efficiency=%.1f%%",
			product.Title, estimate.Category, estimate.WeightG, estimate.PackagingWeightG, estimate.PackagingEfficiency)
	}
	return estimate
}

// EstimatePackagingImpact derives the packaging impact report for a product.
// The underlying catalog estimate is recomputed from the same seed, so the
// report is as reproducible as the estimate it builds on.
func (s *EstimatorService) EstimatePackagingImpact(product *domain.ProductRecord) (report *domain.PackagingImpactReport) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ESTIMATOR] Recovered from impact estimation failure: %v", r)
			report = neutralImpactReport()
		}
	}()

	if product == nil || strings.TrimSpace(product.Title) == "" {
		log.Printf("[ESTIMATOR] Missing title, returning neutral impact report")
		return neutralImpactReport()
	}

	estimate := s.EstimateCatalog(product)

	materials := resolvePackagingMaterials(estimate.Category, product.Description)
	wasteWeight := estimate.PackagingWeightG
	carbon := calculateCarbonFootprint(materials.Materials, wasteWeight)
	water := calculateWaterUsage(materials.Materials, wasteWeight)

	score, level, factors := composePackagingImpact(
		estimate.Category, materials, wasteWeight, carbon, water,
		estimate.PackagingEfficiency, product.Description,
	)

	report = &domain.PackagingImpactReport{
		Materials:          materials.Materials,
		WasteWeightG:       wasteWeight,
		RecyclabilityScore: materials.RecyclabilityScore,
		CarbonFootprintG:   carbon,
		WaterUsageL:        water,
		ImpactScore:        score,
		ImpactLevel:        level,
		ImpactFactors:      factors,
	}

	if s.enableDebugLogging {
		log.Printf("[ESTIMATOR] Packaging impact for %q: score=%d level=%s carbon=%.0fg water=%.1fL",
			product.Title, report.ImpactScore, report.ImpactLevel, report.CarbonFootprintG, report.WaterUsageL)
	}
	return report
}

// EstimateSustainability scores the product's overall sustainability from
// brand, material keywords, category and price signals.
func (s *EstimatorService) EstimateSustainability(product *domain.ProductRecord) (report *domain.SustainabilityReport) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ESTIMATOR] Recovered from sustainability estimation failure: %v", r)
			report = neutralSustainabilityReport()
		}
	}()

	if product == nil || strings.TrimSpace(product.Title) == "" {
		log.Printf("[ESTIMATOR] Missing title, returning neutral sustainability report")
		return neutralSustainabilityReport()
	}

	report = composeSustainability(product)

	if s.enableDebugLogging {
		log.Printf("[ESTIMATOR] Sustainability for %q: score=%d level=%s factors=%d",
			product.Title, report.Score, report.Level, len(report.Factors))
	}
	return report
}

// ExtractSearchName returns the short canonical product name used to query
// the alternatives collaborators. A blank title yields a blank name.
func (s *EstimatorService) ExtractSearchName(title string) string {
	return ExtractMainProductName(strings.TrimSpace(title))
}

// roundDimensions rounds each axis to one decimal, matching the response contract
func roundDimensions(d domain.Dimensions) domain.Dimensions {
	return domain.Dimensions{
		LengthCM: round1(d.LengthCM),
		WidthCM:  round1(d.WidthCM),
		HeightCM: round1(d.HeightCM),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// neutralCatalogEstimate is the designated fallback for incomplete or failed
// catalog estimation: a generic small parcel, clearly labeled unknown.
func neutralCatalogEstimate() *domain.CatalogEstimate {
	dims := domain.Dimensions{LengthCM: 22, WidthCM: 15, HeightCM: 10}
	packaging := domain.Dimensions{LengthCM: 26.4, WidthCM: 18, HeightCM: 12}
	return &domain.CatalogEstimate{
		Category:            domain.CategoryUnknown,
		Dimensions:          dims,
		WeightG:             800,
		PackagingDimensions: packaging,
		PackagingVolumeCM3:  math.Round(packaging.Volume()),
		PackagingEfficiency: round1(dims.Volume() / packaging.Volume() * 100),
		PackagingWeightG:    120,
		IsSimulated:         true,
	}
}

// neutralImpactReport is the designated fallback impact report
func neutralImpactReport() *domain.PackagingImpactReport {
	return &domain.PackagingImpactReport{
		Materials:          defaultMaterials.Materials,
		RecyclabilityScore: defaultMaterials.RecyclabilityScore,
		ImpactScore:        50,
		ImpactLevel:        "Medium",
		ImpactFactors:      []string{"Insufficient product information for packaging analysis"},
	}
}

// neutralSustainabilityReport is the designated fallback sustainability report
func neutralSustainabilityReport() *domain.SustainabilityReport {
	return &domain.SustainabilityReport{
		Score:   50,
		Level:   "medium",
		Factors: []string{defaultSustainabilityFactor},
	}
}
