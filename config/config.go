package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	BuildDir       string // pre-built frontend bundle
	Databricks     DatabricksConfig
	TickerCacheTTL time.Duration // 0 disables the ticker response cache
}

type DatabricksConfig struct {
	Host            string
	Token           string
	WarehouseID     string
	Catalog         string
	Schema          string
	Volume          string
	GoldTable       string
	ServingEndpoint string
	HTTPTimeout     time.Duration
}

// Upper bound for rows requested from the gold table.
const MaxRowLimit = 5000

const DefaultRowLimit = 500

func GetConfig() Config {
	return Config{
		Port:           getEnv("PORT", "8000"),
		BuildDir:       getEnv("BUILD_DIR", "build"),
		TickerCacheTTL: getDuration("TICKER_CACHE_TTL", 0),
		Databricks: DatabricksConfig{
			Host:            getEnv("DATABRICKS_HOST", ""),
			Token:           getEnv("DATABRICKS_TOKEN", ""),
			WarehouseID:     getEnv("DATABRICKS_WAREHOUSE_ID", "a52c432f9fe67576"),
			Catalog:         getEnv("DATABRICKS_CATALOG", "tud_25"),
			Schema:          getEnv("DATABRICKS_SCHEMA", "delovest_data"),
			Volume:          getEnv("DATABRICKS_VOLUME", "uploads"),
			GoldTable:       getEnv("GOLD_TABLE", "tud_25.gold.alpha_vantage_marketdata_final"),
			ServingEndpoint: getEnv("SERVING_ENDPOINT_NAME", "delovest_agent"),
			HTTPTimeout:     getDuration("DATABRICKS_HTTP_TIMEOUT", 120*time.Second),
		},
	}
}

// VolumePath returns the volume location a file named filename is stored under.
func (d DatabricksConfig) VolumePath(filename string) string {
	return fmt.Sprintf("/Volumes/%s/%s/%s/%s", d.Catalog, d.Schema, d.Volume, filename)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration accepts Go durations ("90s") or plain seconds ("90").
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
