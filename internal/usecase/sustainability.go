package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ecolens/backend/internal/domain"
)

// Sustainability score weighting around the neutral starting point of 50
const (
	sustainableBrandBonus = 25
	ecoTermBonus          = 5
	ecoTermBonusCap       = 20
	negativeTermPenalty   = 5
	negativeTermCap       = 20
	electronicsPenalty    = 10
	secondHandBonus       = 20
	lowPricePenalty       = 10
	lowPriceThreshold     = 10.0 // dollars
)

// sustainableBrands are substrings matched against the scraped brand name
var sustainableBrands = []string{
	"patagonia", "allbirds", "tentree", "everlane", "pact",
	"fairphone", "framework", "house of marley", "nimble", "pela",
	"reformation", "eileen fisher", "west elm", "avocado", "coyuchi",
	"lush", "ethique", "thrive market", "numi", "dr. bronner",
}

// ecoTerms signal sustainable materials or practices in the title/description
var ecoTerms = []string{
	"organic", "recycled", "biodegradable", "compostable", "eco-friendly",
	"sustainable", "fair trade", "renewable", "bamboo", "hemp",
}

// negativeTerms signal less sustainable (usually synthetic) materials
var negativeTerms = []string{
	"polyester", "acrylic", "nylon", "synthetic", "plastic",
}

// secondHandTerms mark a listing as refurbished or pre-owned
var secondHandTerms = []string{
	"refurbished", "renewed", "pre-owned", "second-hand", "secondhand", "open box",
}

// defaultSustainabilityFactor explains a score when nothing in the record
// moved it off neutral
const defaultSustainabilityFactor = "Limited product information available for sustainability assessment"

// composeSustainability scores a product record 0-100 from brand reputation,
// material keywords, category and price signals. It never fails: sparse or
// missing fields simply leave the score at its neutral starting point.
func composeSustainability(product *domain.ProductRecord) *domain.SustainabilityReport {
	score := 50
	var factors []string

	title := strings.ToLower(product.Title)
	description := strings.ToLower(product.Description)
	combined := title + " " + description

	if brand := strings.ToLower(product.Brand); brand != "" {
		for _, b := range sustainableBrands {
			if strings.Contains(brand, b) {
				score += sustainableBrandBonus
				factors = append(factors, "Sustainable brand reputation")
				break
			}
		}
	}

	// Each distinct eco term counts once, with a capped total contribution.
	ecoBonus := 0
	for _, term := range ecoTerms {
		if strings.Contains(combined, term) && ecoBonus < ecoTermBonusCap {
			ecoBonus += ecoTermBonus
			factors = append(factors, fmt.Sprintf("Uses %s materials", term))
		}
	}
	score += ecoBonus

	negPenalty := 0
	for _, term := range negativeTerms {
		if strings.Contains(combined, term) && negPenalty < negativeTermCap {
			negPenalty += negativeTermPenalty
			factors = append(factors, fmt.Sprintf("Uses %s (less sustainable material)", term))
		}
	}
	score -= negPenalty

	if containsAny(title, electronicsKeywords) {
		score -= electronicsPenalty
		factors = append(factors, "Electronics have significant production footprints")
	}

	if containsAny(title, secondHandTerms) {
		score += secondHandBonus
		factors = append(factors, "Second-hand or refurbished product extends its lifespan")
	}

	if price, ok := parsePrice(product.Price); ok && price < lowPriceThreshold {
		score -= lowPricePenalty
		factors = append(factors, "Very low price indicates potential sustainability concerns")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	if len(factors) == 0 {
		factors = []string{defaultSustainabilityFactor}
	}

	return &domain.SustainabilityReport{
		Score:   score,
		Level:   sustainabilityLevel(score),
		Factors: factors,
	}
}

func sustainabilityLevel(score int) string {
	switch {
	case score >= 75:
		return "high"
	case score >= 50:
		return "medium"
	default:
		return "low"
	}
}

// parsePrice extracts a numeric value from a currency-formatted string.
// Unparseable prices are skipped rather than treated as errors.
func parsePrice(price string) (float64, bool) {
	if price == "" {
		return 0, false
	}
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, price)
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
