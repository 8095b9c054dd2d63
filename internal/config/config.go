// README: Config loader with env defaults for HTTP, DB, Redis, market stats and projection settings.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// MarketConfig holds the static market figures that bound user growth.
type MarketConfig struct {
	Municipality string
	Population   float64
	SAMPct       float64
	SOMPct       float64
}

type ProjectionConfig struct {
	StartYear     int
	ParamsVersion int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Log struct {
		Level string
	}
	Pricing struct {
		File string
	}
	Market     MarketConfig
	Projection ProjectionConfig
}

// Load reads an optional .env file and then the process environment.
// Empty DB DSN or Redis address disables that backend.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("VIABILITY_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("VIABILITY_DB_DSN")
	cfg.Redis.Addr = os.Getenv("VIABILITY_REDIS_ADDR")
	cfg.Log.Level = envOrDefault("VIABILITY_LOG_LEVEL", "info")
	cfg.Pricing.File = os.Getenv("VIABILITY_PRICING_FILE")
	cfg.Market.Municipality = envOrDefault("VIABILITY_MUNICIPALITY", "Franca")
	cfg.Market.Population = envOrDefaultFloat("VIABILITY_POPULATION", 352536)
	cfg.Market.SAMPct = envOrDefaultFloat("VIABILITY_SAM_PCT", 65)
	cfg.Market.SOMPct = envOrDefaultFloat("VIABILITY_SOM_PCT", 8)
	cfg.Projection.StartYear = envOrDefaultInt("VIABILITY_START_YEAR", 2026)
	cfg.Projection.ParamsVersion = envOrDefaultInt("VIABILITY_PARAMS_VERSION", 7)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
