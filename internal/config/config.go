package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings. Everything comes from the environment
// with sane defaults, so the binary runs with no flags at all.
type Config struct {
	Port       string
	DBDSN      string
	CacheTTL   time.Duration
	RateMax    int
	RateWindow time.Duration
	LogLevel   string
}

func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("MANDI")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("db_dsn", "mandi.db")
	v.SetDefault("cache_ttl", time.Hour)
	v.SetDefault("rate_max", 60)
	v.SetDefault("rate_window", time.Minute)
	v.SetDefault("log_level", "info")

	return Config{
		Port:       v.GetString("port"),
		DBDSN:      v.GetString("db_dsn"),
		CacheTTL:   v.GetDuration("cache_ttl"),
		RateMax:    v.GetInt("rate_max"),
		RateWindow: v.GetDuration("rate_window"),
		LogLevel:   v.GetString("log_level"),
	}
}
