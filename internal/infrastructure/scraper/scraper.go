package scraper

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ecolens/backend/internal/domain"
)

// Scraper fetches product pages over plain HTTP and extracts a ProductRecord
// from the page markup. It implements domain.ProductScraper.
type Scraper struct {
	httpClient *http.Client
	userAgent  string
	debug      bool
}

// NewScraper creates a product page scraper
func NewScraper(timeout time.Duration, userAgent string) *Scraper {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; EcoLens/1.0)"
	}
	return &Scraper{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// SetDebug enables verbose logging of scraped fields
func (s *Scraper) SetDebug(debug bool) {
	s.debug = debug
}

// ScrapeProduct fetches a product page and extracts title, price, rating,
// brand and description. A page without a recognizable title is treated as a
// failed scrape; all other fields are optional and left empty when absent.
func (s *Scraper) ScrapeProduct(ctx context.Context, pageURL string) (*domain.ProductRecord, error) {
	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	record := &domain.ProductRecord{
		Title:       cleanText(doc.Find("#productTitle").First().Text()),
		Price:       extractPrice(doc),
		Rating:      cleanText(doc.Find("span.a-icon-alt").First().Text()),
		Brand:       extractBrand(doc),
		Description: extractDescription(doc),
		ImageURL:    firstAttr(doc, "#landingImage", "src"),
		URL:         pageURL,
	}

	if record.Title == "" {
		return nil, fmt.Errorf("%w: %w at %s", domain.ErrScrapeFailed, domain.ErrMissingTitle, pageURL)
	}

	if s.debug {
		log.Printf("[SCRAPER] Scraped %q (brand %q, price %q) from %s",
			record.Title, record.Brand, record.Price, pageURL)
	}
	return record, nil
}

// fetchDocument performs the page GET with up to 3 attempts for transient failures
func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrScrapeFailed, err)
		}
		req.Header.Set("User-Agent", s.userAgent)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			log.Printf("[SCRAPER] Request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			log.Printf("[SCRAPER] Unexpected status %d (attempt %d) for %s", resp.StatusCode, attempt, pageURL)
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: parse failed: %v", domain.ErrScrapeFailed, err)
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%w: %v", domain.ErrScrapeFailed, lastErr)
}

// extractPrice tries the modern price block first, then the legacy one
func extractPrice(doc *goquery.Document) string {
	if price := cleanText(doc.Find(".a-price .a-offscreen").First().Text()); price != "" {
		return price
	}
	return cleanText(doc.Find("#priceblock_ourprice").First().Text())
}

// extractBrand reads the byline and strips the storefront boilerplate around
// the brand name ("Visit the X Store", "Brand: X")
func extractBrand(doc *goquery.Document) string {
	byline := cleanText(doc.Find("#bylineInfo").First().Text())
	byline = strings.TrimPrefix(byline, "Visit the ")
	byline = strings.TrimSuffix(byline, " Store")
	byline = strings.TrimPrefix(byline, "Brand: ")
	return byline
}

// extractDescription prefers the description block, falling back to the
// feature bullet list. Bullets are joined with spaces; a bare .Text() on the
// list would run adjacent items together.
func extractDescription(doc *goquery.Document) string {
	if desc := cleanText(doc.Find("#productDescription").Text()); desc != "" {
		return desc
	}

	var bullets []string
	doc.Find("#feature-bullets li").Each(func(_ int, item *goquery.Selection) {
		if text := cleanText(item.Text()); text != "" {
			bullets = append(bullets, text)
		}
	})
	if len(bullets) > 0 {
		return strings.Join(bullets, " ")
	}
	return cleanText(doc.Find("#feature-bullets").Text())
}

func firstAttr(doc *goquery.Document, selector, attr string) string {
	value, _ := doc.Find(selector).First().Attr(attr)
	return value
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
