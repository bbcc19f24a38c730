package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ecolens/backend/config"
	httpDelivery "github.com/ecolens/backend/internal/delivery/http"
	"github.com/ecolens/backend/internal/infrastructure/cache"
	"github.com/ecolens/backend/internal/infrastructure/marketplace"
	"github.com/ecolens/backend/internal/infrastructure/scraper"
	"github.com/ecolens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting EcoLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Scrape cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	productScraper := scraper.NewScraper(cfg.Scraper.Timeout, cfg.Scraper.UserAgent)
	marketplaceClient := marketplace.NewClient(cfg.Scraper.Timeout, cfg.Scraper.UserAgent)

	// Enable debug mode in development environment
	debug := cfg.Server.Environment == "development" || cfg.Estimator.EnableDebugLogging
	if debug {
		productScraper.SetDebug(true)
		marketplaceClient.SetDebug(true)
		log.Printf("Debug logging enabled")
	}

	// Initialize usecase layer
	estimator := usecase.NewEstimatorService(usecase.EstimatorConfig{
		EnableDebugLogging: debug,
	})

	alternatives := usecase.NewAlternativesService(marketplaceClient, usecase.AlternativesConfig{
		MaxSustainable:     cfg.Alternatives.MaxSustainable,
		MaxSecondHand:      cfg.Alternatives.MaxSecondHand,
		EnableDebugLogging: debug,
	})

	log.Printf("Alternatives: sustainable=%d secondhand=%d",
		cfg.Alternatives.MaxSustainable, cfg.Alternatives.MaxSecondHand)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(productScraper, memoryCache, estimator, alternatives, cfg.Cache.TTL)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
