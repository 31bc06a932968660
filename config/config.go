package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Catalog API
	Endpoint     string
	AccessKey    string
	SecretKey    string
	AssociateTag string

	// Rate limiting. The catalog enforces roughly one call per second per
	// account, so stay just under it.
	QPS float64

	// Category map file (see LoadCategories)
	CategoryFile string

	// HTTP server (MCP over HTTP)
	HTTPPort string
	APIKey   string
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:     "https://webservices.amazon.com/onca/xml",
		QPS:          0.9,
		CategoryFile: "categories.yaml",
		HTTPPort:     "8080",
	}
}

// LoadFromEnv loads .env file (if present) then overrides config from
// environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("ARBSCOUT_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("ARBSCOUT_ACCESS_KEY"); v != "" {
		c.AccessKey = v
	}
	if v := os.Getenv("ARBSCOUT_SECRET_KEY"); v != "" {
		c.SecretKey = v
	}
	if v := os.Getenv("ARBSCOUT_ASSOCIATE_TAG"); v != "" {
		c.AssociateTag = v
	}
	if v := os.Getenv("ARBSCOUT_QPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			c.QPS = f
		}
	}
	if v := os.Getenv("ARBSCOUT_CATEGORIES"); v != "" {
		c.CategoryFile = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("ARBSCOUT_API_KEY"); v != "" {
		c.APIKey = v
	}
}
