package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ecolens/backend/internal/domain"
)

// sustainableBrand is one entry in the curated alternatives directory
type sustainableBrand struct {
	name       string
	url        string
	ecoFactors []string
}

// Curated sustainable brands per coarse shopping category. This directory is
// static configuration; entries are returned in order, best-known first.
var sustainableBrandDirectory = map[string][]sustainableBrand{
	"electronics": {
		{"Fairphone", "https://www.fairphone.com/", []string{"Ethical Supply Chain", "Repairable Design", "Long Lifespan"}},
		{"Framework", "https://frame.work/", []string{"Modular Design", "Repairable", "Upgradable"}},
		{"House of Marley", "https://www.thehouseofmarley.com/", []string{"Sustainable Materials", "Recyclable"}},
		{"Nimble", "https://www.gonimble.com/", []string{"Recycled Materials", "Plastic-Free Packaging"}},
		{"Pela", "https://pelacase.com/", []string{"Compostable Products", "Carbon Neutral"}},
	},
	"clothing": {
		{"Patagonia", "https://www.patagonia.com/", []string{"Organic Materials", "Fair Trade", "Recycled Fabrics"}},
		{"Everlane", "https://www.everlane.com/", []string{"Ethical Factories", "Transparent Pricing", "Recycled Materials"}},
		{"Reformation", "https://www.thereformation.com/", []string{"Carbon Neutral", "Water Saving", "Sustainable Fabrics"}},
		{"Allbirds", "https://www.allbirds.com/", []string{"Natural Materials", "Carbon Neutral", "B Corp Certified"}},
		{"Eileen Fisher", "https://www.eileenfisher.com/", []string{"Organic Fabrics", "Take-Back Program", "Reduced Waste"}},
	},
	"home": {
		{"West Elm", "https://www.westelm.com/", []string{"Fair Trade", "Organic Options", "FSC-Certified Wood"}},
		{"Avocado Green Mattress", "https://www.avocadogreenmattress.com/", []string{"Organic Materials", "Carbon Negative", "Handmade"}},
		{"Coyuchi", "https://www.coyuchi.com/", []string{"Organic Cotton", "Circular Design", "Recycled Packaging"}},
		{"Buffy", "https://buffy.co/", []string{"Recycled Materials", "Cruelty-Free", "Water Conservation"}},
		{"Etsy", "https://www.etsy.com/", []string{"Handmade", "Small Businesses", "Carbon Neutral Shipping"}},
	},
	"beauty": {
		{"Lush", "https://www.lush.com/", []string{"Packaging-Free", "Handmade", "Cruelty-Free"}},
		{"Beautycounter", "https://www.beautycounter.com/", []string{"Clean Ingredients", "Sustainable Packaging", "Transparent"}},
		{"Ethique", "https://ethique.com/", []string{"Plastic-Free", "Palm Oil-Free", "Carbon Neutral"}},
		{"Elate Cosmetics", "https://elatebeauty.com/", []string{"Vegan", "Zero-Waste Packaging", "Organic Ingredients"}},
		{"RMS Beauty", "https://www.rmsbeauty.com/", []string{"Organic Ingredients", "Minimal Packaging", "Cruelty-Free"}},
	},
	"food": {
		{"Imperfect Foods", "https://www.imperfectfoods.com/", []string{"Reduces Food Waste", "Sustainable Sourcing", "Carbon Neutral"}},
		{"Thrive Market", "https://thrivemarket.com/", []string{"Carbon Neutral", "Zero-Waste Warehouses", "Ethical Sourcing"}},
		{"Equal Exchange", "https://equalexchange.coop/", []string{"Fair Trade", "Worker-Owned", "Organic"}},
		{"Numi Tea", "https://numitea.com/", []string{"Organic", "Fair Trade", "Plant-Based Packaging"}},
		{"Dr. Bronner's", "https://www.drbronner.com/", []string{"Organic", "Fair Trade", "Regenerative Agriculture"}},
	},
	"default": {
		{"Etsy", "https://www.etsy.com/", []string{"Handmade", "Small Businesses", "Carbon Neutral Shipping"}},
		{"Patagonia", "https://www.patagonia.com/", []string{"Organic Materials", "Fair Trade", "Recycled Fabrics"}},
		{"Thrive Market", "https://thrivemarket.com/", []string{"Carbon Neutral", "Zero-Waste Warehouses", "Ethical Sourcing"}},
	},
}

// Coarse shopping-category keywords for the alternatives directory. This is a
// looser grouping than the catalog taxonomy: it matches against title and
// description combined, and folds furniture and appliances into "home".
var shoppingCategoryKeywords = []struct {
	category string
	keywords []string
}{
	{"electronics", []string{
		"phone", "laptop", "computer", "tablet", "headphone", "earbud", "speaker",
		"camera", "tv", "television", "monitor", "keyboard", "mouse", "charger",
		"battery", "airpod", "watch", "smart watch", "gaming", "console", "playstation",
		"xbox", "nintendo", "electronic", "device", "gadget", "tech", "technology",
	}},
	{"clothing", []string{
		"shirt", "pant", "dress", "jacket", "coat", "sweater", "hoodie", "jeans",
		"sock", "underwear", "shoe", "boot", "sneaker", "hat", "cap", "scarf",
		"glove", "clothing", "apparel", "wear", "fashion", "garment", "outfit",
		"t-shirt", "tshirt", "sweatshirt", "shorts",
	}},
	{"home", []string{
		"furniture", "chair", "table", "desk", "sofa", "couch", "bed", "mattress",
		"pillow", "blanket", "sheet", "towel", "curtain", "rug", "carpet", "lamp",
		"light", "decor", "decoration", "kitchen", "appliance", "cookware", "utensil",
		"plate", "bowl", "cup", "mug", "home", "house",
	}},
	{"beauty", []string{
		"makeup", "cosmetic", "skincare", "lotion", "cream", "serum", "face", "hair",
		"shampoo", "conditioner", "soap", "body wash", "perfume", "cologne", "fragrance",
		"beauty", "lipstick", "mascara", "eyeshadow", "nail polish", "deodorant",
	}},
	{"food", []string{
		"food", "snack", "drink", "beverage", "coffee", "tea", "water", "juice",
		"soda", "alcohol", "wine", "beer", "grocery", "organic", "fruit", "vegetable",
		"meat", "dairy", "milk", "cheese", "yogurt", "chocolate", "candy", "cereal",
	}},
}

// productTypeWords per shopping category, used to build a readable
// alternative title like "Patagonia jacket"
var productTypeWords = map[string][]string{
	"electronics": {"phone", "laptop", "headphones", "earbuds", "speaker", "camera", "tv", "monitor", "watch"},
	"clothing":    {"shirt", "pants", "dress", "jacket", "sweater", "hoodie", "jeans", "shoes", "boots", "hat"},
	"home":        {"chair", "table", "desk", "sofa", "bed", "mattress", "pillow", "blanket", "lamp", "rug"},
	"beauty":      {"makeup", "skincare", "lotion", "shampoo", "conditioner", "soap", "perfume"},
	"food":        {"coffee", "tea", "snack", "chocolate", "cereal"},
}

// genericTypeNames label an alternative when no type word matches the title
var genericTypeNames = map[string]string{
	"electronics": "Electronic",
	"clothing":    "Apparel",
	"home":        "Home Item",
	"beauty":      "Beauty Product",
	"food":        "Food Item",
}

// AlternativesConfig holds configuration for the alternatives service
type AlternativesConfig struct {
	MaxSustainable     int
	MaxSecondHand      int
	EnableDebugLogging bool
}

// AlternativesService finds greener options for a product: curated
// sustainable-brand suggestions and second-hand marketplace listings.
type AlternativesService struct {
	searcher           domain.ListingSearcher
	maxSustainable     int
	maxSecondHand      int
	enableDebugLogging bool
}

// NewAlternativesService creates an alternatives service backed by the given
// marketplace searcher
func NewAlternativesService(searcher domain.ListingSearcher, config AlternativesConfig) *AlternativesService {
	maxSustainable := config.MaxSustainable
	if maxSustainable <= 0 {
		maxSustainable = 5
	}
	maxSecondHand := config.MaxSecondHand
	if maxSecondHand <= 0 {
		maxSecondHand = 8
	}
	return &AlternativesService{
		searcher:           searcher,
		maxSustainable:     maxSustainable,
		maxSecondHand:      maxSecondHand,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// shoppingCategory maps a product to the coarse directory category
func shoppingCategory(product *domain.ProductRecord) string {
	combined := strings.ToLower(product.Title + " " + product.Description)
	for _, group := range shoppingCategoryKeywords {
		if containsAny(combined, group.keywords) {
			return group.category
		}
	}
	return "default"
}

// extractProductType pulls a readable product-type word from the title
func extractProductType(title, category string) string {
	lowered := strings.ToLower(title)
	for _, word := range productTypeWords[category] {
		if strings.Contains(lowered, word) {
			return word
		}
	}
	if generic, ok := genericTypeNames[category]; ok {
		return generic
	}
	// Best guess for uncategorized products: the second word of the title is
	// often the product type.
	words := strings.Fields(title)
	switch {
	case len(words) > 1:
		return words[1]
	case len(words) == 1:
		return words[0]
	default:
		return "Product"
	}
}

// FindSustainable returns curated sustainable-brand suggestions for the
// product, richest eco profile first. Suggested prices track the original
// price with a deterministic 1.0-1.3x markup drawn from the product's own
// seeded stream, so repeated requests agree.
func (a *AlternativesService) FindSustainable(product *domain.ProductRecord, baseScore int) []domain.Listing {
	if product == nil || product.Title == "" {
		return nil
	}

	category := shoppingCategory(product)
	brands := sustainableBrandDirectory[category]
	if len(brands) == 0 {
		brands = sustainableBrandDirectory["default"]
	}
	if len(brands) > a.maxSustainable {
		brands = brands[:a.maxSustainable]
	}

	productType := extractProductType(product.Title, category)
	rng := newSeededRand(strings.ToLower(product.Title))

	listings := make([]domain.Listing, 0, len(brands))
	for _, brand := range brands {
		title := brand.name + " Sustainable Alternative"
		if productType != "" {
			title = brand.name + " " + productType
		}

		price := product.Price
		if value, ok := parsePrice(product.Price); ok {
			// Sustainable products usually cost a bit more.
			price = fmt.Sprintf("$%.2f", value*uniform(rng, 1.0, 1.3))
		}

		listings = append(listings, domain.Listing{
			Title:               title,
			Price:               price,
			Link:                brand.url,
			Source:              "Sustainable Brand",
			SustainabilityScore: min(baseScore+30, 100),
			EcoFactors:          brand.ecoFactors,
		})
	}

	// Richer eco profiles first.
	for i := 1; i < len(listings); i++ {
		for j := i; j > 0 && len(listings[j].EcoFactors) > len(listings[j-1].EcoFactors); j-- {
			listings[j], listings[j-1] = listings[j-1], listings[j]
		}
	}

	if a.enableDebugLogging {
		log.Printf("[ALTERNATIVES] %d sustainable suggestions for %q (category %s)",
			len(listings), product.Title, category)
	}
	return listings
}

// FindSecondHand queries the marketplace searcher with a cleaned version of
// the product title. Search failures degrade to an empty list; alternatives
// are an enrichment, never a reason to fail the response.
func (a *AlternativesService) FindSecondHand(ctx context.Context, product *domain.ProductRecord, baseScore int) []domain.Listing {
	if product == nil || product.Title == "" || a.searcher == nil {
		return nil
	}

	query := CleanListingQuery(product.Title, product.Brand)
	if query == "" {
		return nil
	}

	listings, err := a.searcher.SearchListings(ctx, query, a.maxSecondHand)
	if err != nil {
		log.Printf("[ALTERNATIVES] Second-hand search failed for %q: %v", query, err)
		return nil
	}

	for i := range listings {
		if listings[i].SustainabilityScore == 0 {
			listings[i].SustainabilityScore = min(baseScore+40, 100)
		}
	}

	if a.enableDebugLogging {
		log.Printf("[ALTERNATIVES] %d second-hand listings for %q", len(listings), query)
	}
	return listings
}
