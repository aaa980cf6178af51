// Package config loads configuration structs from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with `env` tags. Parsed values are cached
// per type, so repeated Load calls for the same struct are cheap; Reset drops
// the cache, which tests use after changing variables.
//
//	var cfg validations.Config
//	config.MustLoad(&cfg)
package config
