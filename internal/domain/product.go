package domain

// ProductRecord represents product information scraped from an e-commerce page.
// It is the immutable input to the estimation pipeline: created by the scraping
// layer, only ever read afterwards.
type ProductRecord struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Price       string `json:"price,omitempty"` // currency-formatted, e.g. "$24.99"
	Rating      string `json:"rating,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Listing represents a single second-hand or alternative listing returned by a
// marketplace search. Listings are passed through to the response as-is.
type Listing struct {
	Title               string   `json:"title"`
	Price               string   `json:"price"`
	Link                string   `json:"link"`
	ImageURL            string   `json:"image_url,omitempty"`
	Source              string   `json:"source"`
	SustainabilityScore int      `json:"sustainability_score,omitempty"`
	EcoFactors          []string `json:"eco_factors,omitempty"`
	IsSearchURL         bool     `json:"is_search_url,omitempty"`
}
