package usecase

import (
	"regexp"
	"strings"
)

// titleSeparators are tried in priority order when extracting the main
// product name; specifications and feature lists usually follow one of them.
var titleSeparators = []string{",", "-", "|", "•", ":", ";", "(", "[", "{"}

// commonBrands are well-known brand names that often lead a product title.
// A title starting with one of these keeps an extra word in the short name.
var commonBrands = []string{
	"Apple", "Samsung", "Sony", "LG", "Dell", "HP", "Lenovo",
	"Asus", "Acer", "Microsoft", "Google", "Amazon", "Bose",
	"JBL", "Logitech", "Philips", "Panasonic", "Toshiba", "Canon",
	"Nikon", "Dyson", "KitchenAid", "Ninja", "Instant Pot", "Keurig",
}

// ExtractMainProductName reduces a long noisy product title to a short
// canonical phrase (2-6 words) usable as a search query. It prefers the text
// before the first separator that yields a reasonably sized phrase, then
// falls back to the leading words of the title.
func ExtractMainProductName(title string) string {
	for _, sep := range titleSeparators {
		if !strings.Contains(title, sep) {
			continue
		}
		mainPart := strings.TrimSpace(strings.SplitN(title, sep, 2)[0])
		if wc := len(strings.Fields(mainPart)); wc >= 2 && wc <= 6 {
			return mainPart
		}
	}

	words := strings.Fields(title)
	if len(words) <= 5 {
		return title
	}

	// Titles led by a known brand usually need brand + model: keep 5 words.
	for _, brand := range commonBrands {
		if strings.HasPrefix(title, brand) {
			return strings.Join(words[:min(5, len(words))], " ")
		}
	}

	return strings.Join(words[:min(4, len(words))], " ")
}

// Patterns stripped from titles before marketplace search: parenthesized
// specs, size tokens and model numbers make second-hand queries too narrow.
var (
	parenthesesRegex = regexp.MustCompile(`\(.*?\)`)
	bracketsRegex    = regexp.MustCompile(`\[.*?\]`)
	inchSpecRegex    = regexp.MustCompile(`\d+(\.\d+)?[Ii][Nn][Cc][Hh]`)
	cmSpecRegex      = regexp.MustCompile(`\d+(\.\d+)?[Cc][Mm]`)
	longNumberRegex  = regexp.MustCompile(`\b\d{4,}\b`)
)

// CleanListingQuery turns a product title into a compact marketplace search
// phrase: specs and model numbers are stripped, the phrase is capped at five
// words, and the brand is prepended when it is not already present.
func CleanListingQuery(title, brand string) string {
	cleaned := parenthesesRegex.ReplaceAllString(title, "")
	cleaned = bracketsRegex.ReplaceAllString(cleaned, "")
	cleaned = inchSpecRegex.ReplaceAllString(cleaned, "")
	cleaned = cmSpecRegex.ReplaceAllString(cleaned, "")
	cleaned = longNumberRegex.ReplaceAllString(cleaned, "")

	words := strings.Fields(cleaned)
	if len(words) > 5 {
		words = words[:5]
	}
	searchTerm := strings.TrimSpace(strings.Join(words, " "))

	if brand != "" && !strings.Contains(strings.ToLower(searchTerm), strings.ToLower(brand)) {
		searchTerm = strings.TrimSpace(brand + " " + searchTerm)
	}
	return searchTerm
}

