package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pricepulse/backend/config"
	"github.com/pricepulse/backend/internal/catalog"
	httpDelivery "github.com/pricepulse/backend/internal/delivery/http"
	"github.com/pricepulse/backend/internal/infrastructure/transparency"
	"github.com/pricepulse/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PricePulse Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Source listing URL: %s", cfg.Source.ListingURL)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	source := transparency.NewClient(cfg.Source.ListingURL, transparency.Options{
		Timeout:           cfg.Source.Timeout,
		RequestsPerSecond: cfg.Source.RequestsPerSecond,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		source.SetDebug(true)
		log.Printf("Transparency client debug mode enabled")
	}

	products := catalog.Products()
	log.Printf("Catalog: %d products", len(products))

	// Initialize usecase layer
	priceService := usecase.NewPriceService(source, products, usecase.PriceServiceConfig{
		CacheTTL:               cfg.Cache.TTL,
		RefreshTimeout:         cfg.Source.RefreshTimeout,
		MaxConcurrentDownloads: cfg.Source.MaxConcurrentDownloads,
		FuzzyMatchLimit:        cfg.Matching.FuzzyMatchLimit,
		EnableDebugLogging:     cfg.Matching.EnableDebugLogging,
	})

	log.Printf("Crawl: max %d concurrent downloads, refresh timeout %s",
		cfg.Source.MaxConcurrentDownloads, cfg.Source.RefreshTimeout)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(priceService)

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
