package app

import (
	"github.com/careermitra/careermitra-backend/internal/platform/envutil"
)

type Config struct {
	Port        string
	Environment string
	Version     string
}

func LoadConfig() Config {
	return Config{
		Port:        envutil.Str("PORT", "8080"),
		Environment: envutil.Str("APP_ENV", "development"),
		Version:     envutil.Str("APP_VERSION", "dev"),
	}
}
