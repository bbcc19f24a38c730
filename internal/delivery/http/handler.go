package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecolens/backend/internal/domain"
	"github.com/ecolens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scraper      domain.ProductScraper
	cache        domain.CacheRepository
	estimator    *usecase.EstimatorService
	alternatives *usecase.AlternativesService
	cacheTTL     time.Duration
}

// NewHandler creates a new HTTP handler
func NewHandler(
	scraper domain.ProductScraper,
	cache domain.CacheRepository,
	estimator *usecase.EstimatorService,
	alternatives *usecase.AlternativesService,
	cacheTTL time.Duration,
) *Handler {
	return &Handler{
		scraper:      scraper,
		cache:        cache,
		estimator:    estimator,
		alternatives: alternatives,
		cacheTTL:     cacheTTL,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ecolens-backend",
		"version": "1.0.0",
	})
}

// AnalyzeProduct scrapes a product page and returns the full analysis:
// product summary, sustainability score, packaging impact, simulated catalog
// data and greener alternatives.
func (h *Handler) AnalyzeProduct(c *gin.Context) {
	if h.scraper == nil || h.estimator == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Product analysis not configured",
		})
		return
	}

	pageURL := c.Query("url")
	if pageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing URL parameter"})
		return
	}

	product, err := h.lookupProduct(c, pageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sustainability := h.estimator.EstimateSustainability(product)
	packaging := h.estimator.EstimatePackagingImpact(product)
	catalog := h.estimator.EstimateCatalog(product)

	var sustainable, secondHand []domain.Listing
	if h.alternatives != nil {
		sustainable = h.alternatives.FindSustainable(product, sustainability.Score)
		secondHand = h.alternatives.FindSecondHand(c.Request.Context(), product, sustainability.Score)
	}

	c.JSON(http.StatusOK, gin.H{
		"product":                 productSummary(product),
		"sustainability":          sustainability,
		"packaging":               packaging,
		"catalog":                 catalog,
		"alternatives":            sustainable,
		"secondhand_alternatives": secondHand,
		"url":                     pageURL,
	})
}

// lookupProduct returns the scraped record for a URL, consulting the cache
// first so repeated analyses of the same page do not re-fetch it
func (h *Handler) lookupProduct(c *gin.Context, pageURL string) (*domain.ProductRecord, error) {
	cacheKey := "product:" + pageURL

	if h.cache != nil {
		if cached, err := h.cache.Get(c.Request.Context(), cacheKey); err == nil {
			if record, ok := cached.(*domain.ProductRecord); ok {
				return record, nil
			}
		}
	}

	record, err := h.scraper.ScrapeProduct(c.Request.Context(), pageURL)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		// A cache write failure only costs a re-scrape later.
		_ = h.cache.Set(c.Request.Context(), cacheKey, record, h.cacheTTL)
	}
	return record, nil
}

// productSummary shapes the scraped record for the response envelope,
// truncating long descriptions
func productSummary(product *domain.ProductRecord) gin.H {
	description := product.Description
	if len(description) > 200 {
		description = description[:200] + "..."
	}
	return gin.H{
		"title":       product.Title,
		"price":       product.Price,
		"image_url":   product.ImageURL,
		"rating":      product.Rating,
		"brand":       product.Brand,
		"description": description,
	}
}
