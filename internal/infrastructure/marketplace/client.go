package marketplace

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ecolens/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client searches second-hand marketplaces for listings matching a cleaned
// product query. eBay results are scraped directly; the other marketplaces
// are returned as search-page entry points, which keeps the search useful
// even where result markup is not reachable without a browser.
// Client implements domain.ListingSearcher.
type Client struct {
	httpClient  *http.Client
	userAgent   string
	ebayBaseURL string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a marketplace search client
func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; EcoLens/1.0)"
	}
	// Keep marketplace queries polite: one request per second with a small burst.
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		userAgent:   userAgent,
		ebayBaseURL: "https://www.ebay.com",
		rateLimiter: rate.NewLimiter(rate.Limit(1), 3),
	}
}

// SetDebug enables verbose logging of search results
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// searchPageSources are marketplaces we link into rather than scrape
var searchPageSources = []struct {
	name   string
	urlFmt string
}{
	{"Poshmark", "https://poshmark.com/search?query=%s"},
	{"Mercari", "https://www.mercari.com/search/?keyword=%s"},
	{"Kijiji", "https://www.kijiji.ca/b-search.html?keywords=%s"},
}

// SearchListings aggregates second-hand listings across marketplaces for the
// query, sorted by ascending price, truncated to maxResults.
func (c *Client) SearchListings(ctx context.Context, query string, maxResults int) ([]domain.Listing, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidRequest
	}
	if maxResults <= 0 {
		maxResults = 8
	}

	listings, err := c.searchEbay(ctx, query, max(2, maxResults/4))
	if err != nil {
		// A failed eBay scrape degrades to a search link, like the other sources.
		log.Printf("[MARKETPLACE] eBay search failed, falling back to search link: %v", err)
		listings = []domain.Listing{c.ebaySearchListing(query)}
	}

	for _, source := range searchPageSources {
		listings = append(listings, domain.Listing{
			Title:       fmt.Sprintf("Search %q on %s", query, source.name),
			Price:       "",
			Link:        fmt.Sprintf(source.urlFmt, url.QueryEscape(query)),
			Source:      source.name,
			IsSearchURL: true,
		})
	}

	// Cheapest first; search-page links carry no price and sort last.
	sort.SliceStable(listings, func(i, j int) bool {
		pi, iok := parseListingPrice(listings[i].Price)
		pj, jok := parseListingPrice(listings[j].Price)
		if iok != jok {
			return iok
		}
		return pi < pj
	})

	if len(listings) > maxResults {
		listings = listings[:maxResults]
	}

	if c.debug {
		log.Printf("[MARKETPLACE] %d listings for %q", len(listings), query)
	}
	return listings, nil
}

// searchEbay scrapes the eBay search results page for the query
func (c *Client) searchEbay(ctx context.Context, query string, maxResults int) ([]domain.Listing, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	searchURL := fmt.Sprintf("%s/sch/i.html?_nkw=%s", c.ebayBaseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchFailed, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrSearchFailed, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse failed: %v", domain.ErrSearchFailed, err)
	}

	var listings []domain.Listing
	doc.Find(".s-item").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		title := strings.TrimSpace(item.Find(".s-item__title").Text())
		// eBay pads results with a "Shop on eBay" placeholder item.
		if title == "" || strings.EqualFold(title, "Shop on eBay") {
			return true
		}

		link, _ := item.Find(".s-item__link").Attr("href")
		image, _ := item.Find(".s-item__image img").Attr("src")

		listings = append(listings, domain.Listing{
			Title:    title,
			Price:    strings.TrimSpace(item.Find(".s-item__price").Text()),
			Link:     link,
			ImageURL: image,
			Source:   "eBay",
		})
		return len(listings) < maxResults
	})

	if len(listings) == 0 {
		return nil, fmt.Errorf("%w: no items parsed", domain.ErrSearchFailed)
	}
	return listings, nil
}

// ebaySearchListing is the search-page fallback when scraping eBay fails
func (c *Client) ebaySearchListing(query string) domain.Listing {
	return domain.Listing{
		Title:       fmt.Sprintf("Search %q on eBay", query),
		Link:        fmt.Sprintf("%s/sch/i.html?_nkw=%s", c.ebayBaseURL, url.QueryEscape(query)),
		Source:      "eBay",
		IsSearchURL: true,
	}
}

var priceDigitsRegex = regexp.MustCompile(`[\d.]+`)

// parseListingPrice extracts the first numeric value from a price string
// like "$24.99" or "$19.99 to $34.99"
func parseListingPrice(price string) (float64, bool) {
	m := priceDigitsRegex.FindString(price)
	if m == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
