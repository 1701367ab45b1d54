package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ecoshelf/backend/config"
	httpDelivery "github.com/ecoshelf/backend/internal/delivery/http"
	"github.com/ecoshelf/backend/internal/infrastructure/cache"
	"github.com/ecoshelf/backend/internal/infrastructure/off"
	"github.com/ecoshelf/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting EcoShelf Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	offClient := off.NewClient(off.ClientConfig{
		BaseURL:   cfg.OFF.BaseURL,
		UserAgent: cfg.OFF.UserAgent,
		Country:   cfg.OFF.Country,
		PageSize:  cfg.OFF.PageSize,
		Timeout:   cfg.OFF.Timeout,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		offClient.SetDebug(true)
		log.Printf("Open Food Facts client debug mode enabled")
	}
	log.Printf("Open Food Facts API configured: %s (country: %s)", cfg.OFF.BaseURL, cfg.OFF.Country)

	// Initialize usecase layer
	productService := usecase.NewProductService(
		memoryCache,
		offClient,
		usecase.ProductServiceConfig{
			CacheTTL: cfg.Cache.TTL,
			Curator: usecase.CuratorConfig{
				CountryTag:         cfg.Curation.CountryTag,
				ResultCap:          cfg.Curation.ResultCap,
				TieBreak:           usecase.TieBreakPolicy(cfg.Curation.TieBreak),
				EnableDebugLogging: cfg.Curation.DebugLogging,
			},
		},
	)

	log.Printf("Curation: country=%s, cap=%d, tie-break=%s",
		cfg.Curation.CountryTag,
		cfg.Curation.ResultCap,
		cfg.Curation.TieBreak)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(productService)

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
