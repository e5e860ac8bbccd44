// Package config provides type-safe environment variable loading with
// per-type caching. Configuration structs declare their mapping with
// caarlos0/env struct tags:
//
//	type StoreConfig struct {
//		RedisURL   string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//		SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"48h"`
//	}
//
//	var cfg StoreConfig
//	config.MustLoad(&cfg)
//
// A .env file is loaded automatically on first use when present. Each
// config type is parsed once per process lifetime and cached; different
// types cache independently.
package config
