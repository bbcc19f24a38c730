package usecase

import (
	"math"
	"reflect"
	"testing"

	"github.com/ecolens/backend/internal/domain"
)

func TestEstimateCatalogDeterministic(t *testing.T) {
	service := NewEstimatorService(EstimatorConfig{})
	product := &domain.ProductRecord{
		Title: "Samsung 55 inch 4K Smart TV",
		URL:   "https://www.amazon.com/dp/B08N5WRWNW/",
	}

	first := service.EstimateCatalog(product)
	second := service.EstimateCatalog(product)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated estimates differ:\n%+v\n%+v", first, second)
	}
}

func TestEstimateCatalogTitleCaseInsensitive(t *testing.T) {
	service := NewEstimatorService(EstimatorConfig{})

	lower := service.EstimateCatalog(&domain.ProductRecord{Title: "samsung 55 inch 4k smart tv"})
	upper := service.EstimateCatalog(&domain.ProductRecord{Title: "SAMSUNG 55 INCH 4K SMART TV"})
	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("title casing changed the estimate:\n%+v\n%+v", lower, upper)
	}
}

func TestEstimateCatalogTV(t *testing.T) {
	service := NewEstimatorService(EstimatorConfig{})
	estimate := service.EstimateCatalog(&domain.ProductRecord{
		Title: "Samsung 55 inch 4K Smart TV",
		URL:   "https://www.amazon.com/dp/B08N5WRWNW/",
	})

	if estimate.ASIN != "B08N5WRWNW" {
		t.Errorf("asin = %q, want B08N5WRWNW", estimate.ASIN)
	}
	if estimate.Category != domain.CategoryTV {
		t.Errorf("category = %s, want tv", estimate.Category)
	}
	if estimate.WeightG != 16500 {
		t.Errorf("weight = %v, want 16500", estimate.WeightG)
	}
	if math.Abs(estimate.Dimensions.LengthCM-121.5) > 0.05 {
		t.Errorf("length = %v, want 121.5", estimate.Dimensions.LengthCM)
	}
	if math.Abs(estimate.Dimensions.HeightCM-68.5) > 0.05 {
		t.Errorf("height = %v, want 68.5", estimate.Dimensions.HeightCM)
	}
	if estimate.Dimensions.WidthCM < 1.9 || estimate.Dimensions.WidthCM > 8.1 {
		t.Errorf("depth = %v, want roughly [2, 8)", estimate.Dimensions.WidthCM)
	}
	if !estimate.IsSimulated {
		t.Error("estimates are always simulated")
	}
}

func TestEstimateCatalogLaptop(t *testing.T) {
	service := NewEstimatorService(EstimatorConfig{})
	estimate := service.EstimateCatalog(&domain.ProductRecord{Title: "Apple MacBook Pro 13 inch Laptop"})

	if estimate.Category != domain.CategoryElectronics {
		t.Fatalf("category = %s, want electronics", estimate.Category)
	}
	if estimate.WeightG < 1200 || estimate.WeightG > 2500 {
		t.Errorf("weight = %v, want laptop band [1200, 2500]", estimate.WeightG)
	}
	// Electronics packaging factor band is 1.2-1.4, so efficiency lands in
	// roughly 100/1.4^3 to 100/1.2^3 percent.
	if estimate.PackagingEfficiency < 36 || estimate.PackagingEfficiency > 58 {
		t.Errorf("efficiency = %v, want electronics band [36, 58]", estimate.PackagingEfficiency)
	}
}

func TestEstimateCatalogPackagingInvariants(t *testing.T) {
	service := NewEstimatorService(EstimatorConfig{})
	titles := []string{
		"Samsung 55 inch 4K Smart TV",
		"Apple MacBook Pro 13 inch Laptop",
		"LG French Door Refrigerator",
		"The Weeknight Dinner Cookbook Paperback",
		"Mens Cotton Pullover Hoodie",
		"Vitamin C Facial Serum",
		"Organic Arabica Coffee Beans",
		"zzq qqz trinket",
	}

	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			estimate := service.EstimateCatalog(&domain.ProductRecord{Title: title})

			if estimate.PackagingVolumeCM3 < estimate.Dimensions.Volume() {
				t.Errorf("packaging volume %v smaller than product volume %v",
					estimate.PackagingVolumeCM3, estimate.Dimensions.Volume())
			}
			if estimate.PackagingEfficiency <= 0 || estimate.PackagingEfficiency > 100 {
				t.Errorf("efficiency %v outside (0, 100]", estimate.PackagingEfficiency)
			}
			// Weight floor: at least 1g per 1000cm3 of packaging, with 1g of
			// slack for response rounding.
			if estimate.PackagingWeightG < estimate.PackagingVolumeCM3/1000-1 {
				t.Errorf("packaging weight %v below volume floor %v",
					estimate.PackagingWeightG, estimate.PackagingVolumeCM3/1000)
			}
			if !estimate.IsSimulated {
				t.Error("estimates are always simulated")
			}
		})
	}
}

func TestEstimateCatalogNeutralFallback(t *testing.T) {
	service := NewEstimatorService(EstimatorConfig{})

	tests := []struct {
		name    string
		product *domain.ProductRecord
	}{
		{"nil product", nil},
		{"empty title", &domain.ProductRecord{Title: ""}},
		{"whitespace title", &domain.ProductRecord{Title: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimate := service.EstimateCatalog(tt.product)
			if estimate.Category != domain.CategoryUnknown {
				t.Errorf("category = %s, want unknown", estimate.Category)
			}
			if estimate.WeightG != 800 {
				t.Errorf("weight = %v, want neutral 800", estimate.WeightG)
			}
			if !estimate.IsSimulated {
				t.Error("neutral estimate is still simulated")
			}
		})
	}
}

func TestEstimatePackagingImpact(t *testing.T) {
	service := NewEstimatorService(EstimatorConfig{})

	t.Run("reproducible and tied to the catalog estimate", func(t *testing.T) {
		product := &domain.ProductRecord{Title: "Apple MacBook Pro 13 inch Laptop"}

		first := service.EstimatePackagingImpact(product)
		second := service.EstimatePackagingImpact(product)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("repeated reports differ:\n%+v\n%+v", first, second)
		}

		estimate := service.EstimateCatalog(product)
		if first.WasteWeightG != estimate.PackagingWeightG {
			t.Errorf("waste weight %v != catalog packaging weight %v",
				first.WasteWeightG, estimate.PackagingWeightG)
		}
	})

	t.Run("score stays in bounds with a matching level", func(t *testing.T) {
		titles := []string{
			"Samsung 55 inch 4K Smart TV",
			"The Weeknight Dinner Cookbook Paperback",
			"Vitamin C Facial Serum",
		}
		for _, title := range titles {
			report := service.EstimatePackagingImpact(&domain.ProductRecord{Title: title})
			if report.ImpactScore < 0 || report.ImpactScore > 100 {
				t.Errorf("%q: score %d outside [0, 100]", title, report.ImpactScore)
			}
			if want := impactLevel(report.ImpactScore); report.ImpactLevel != want {
				t.Errorf("%q: level %q does not match score %d (want %q)",
					title, report.ImpactLevel, report.ImpactScore, want)
			}
			if len(report.ImpactFactors) == 0 {
				t.Errorf("%q: factors should never be empty", title)
			}
		}
	})

	t.Run("refrigerator waste clamps the score to zero", func(t *testing.T) {
		report := service.EstimatePackagingImpact(&domain.ProductRecord{Title: "LG French Door Refrigerator"})
		if report.ImpactScore != 0 {
			t.Errorf("score = %d, want 0", report.ImpactScore)
		}
		if report.ImpactLevel != "High" {
			t.Errorf("level = %q, want High", report.ImpactLevel)
		}
	})

	t.Run("eco packaging description upgrades materials but not the catalog", func(t *testing.T) {
		plain := &domain.ProductRecord{Title: "Apple MacBook Pro 13 inch Laptop"}
		eco := &domain.ProductRecord{
			Title:       "Apple MacBook Pro 13 inch Laptop",
			Description: "Ships in recyclable packaging.",
		}

		if !reflect.DeepEqual(service.EstimateCatalog(plain), service.EstimateCatalog(eco)) {
			t.Error("description should not change the catalog estimate")
		}

		report := service.EstimatePackagingImpact(eco)
		if report.RecyclabilityScore != 75 {
			t.Errorf("recyclability = %d, want 75", report.RecyclabilityScore)
		}
		if !containsFactor(report.Materials, "Biodegradable film") {
			t.Errorf("materials %v should include Biodegradable film", report.Materials)
		}
	})

	t.Run("neutral fallback", func(t *testing.T) {
		report := service.EstimatePackagingImpact(nil)
		if report.ImpactScore != 50 || report.ImpactLevel != "Medium" {
			t.Errorf("neutral report = %d/%q, want 50/Medium", report.ImpactScore, report.ImpactLevel)
		}
	})
}

func TestEstimateSustainability(t *testing.T) {
	service := NewEstimatorService(EstimatorConfig{})

	t.Run("delegates to the scoring rules", func(t *testing.T) {
		report := service.EstimateSustainability(&domain.ProductRecord{
			Title: "Fleece Pullover Jacket",
			Brand: "Patagonia",
		})
		if report.Score != 75 || report.Level != "high" {
			t.Errorf("report = %d/%q, want 75/high", report.Score, report.Level)
		}
	})

	t.Run("neutral fallback", func(t *testing.T) {
		report := service.EstimateSustainability(&domain.ProductRecord{Title: " "})
		if report.Score != 50 || report.Level != "medium" {
			t.Errorf("neutral report = %d/%q, want 50/medium", report.Score, report.Level)
		}
		if len(report.Factors) != 1 || report.Factors[0] != defaultSustainabilityFactor {
			t.Errorf("factors = %v, want only the default factor", report.Factors)
		}
	})
}

func TestExtractSearchName(t *testing.T) {
	service := NewEstimatorService(EstimatorConfig{})

	if got := service.ExtractSearchName("  Great Value Organic Coffee, Medium Roast, 12oz  "); got != "Great Value Organic Coffee" {
		t.Errorf("ExtractSearchName = %q, want %q", got, "Great Value Organic Coffee")
	}
	if got := service.ExtractSearchName(""); got != "" {
		t.Errorf("ExtractSearchName(\"\") = %q, want empty", got)
	}
}
