package main

import (
	"log"

	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/cache"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/config"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/databricks"
	_ "github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/docs" // Swagger docs
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/handlers"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/service"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the process environment is used as-is.
	_ = godotenv.Load()

	cfg := config.GetConfig()

	// Initialize workspace client
	workspace, err := databricks.New(cfg.Databricks.Host, cfg.Databricks.Token, cfg.Databricks.HTTPTimeout)
	if err != nil {
		log.Fatalf("Failed to initialize Databricks client: %v", err)
	}
	log.Printf("Databricks workspace: %s", workspace.Host())

	// Ticker responses are only cached when TICKER_CACHE_TTL is set
	var tickerCache *cache.Cache
	if cfg.TickerCacheTTL > 0 {
		tickerCache = cache.New(cfg.TickerCacheTTL)
		log.Printf("Ticker cache enabled (ttl %s)", cfg.TickerCacheTTL)
	}

	warehouse := service.NewWarehouseService(workspace, cfg.Databricks.WarehouseID, cfg.Databricks.Catalog)
	tickerService := service.NewTickerService(warehouse, cfg.Databricks.GoldTable, tickerCache)
	uploadService := service.NewUploadService(workspace, cfg.Databricks)
	agentService := service.NewAgentService(workspace, cfg.Databricks.ServingEndpoint)

	// Initialize handlers
	h := handlers.New(tickerService, uploadService, agentService, cfg.BuildDir)

	r := handlers.NewRouter(h)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
