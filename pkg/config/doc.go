// Package config loads typed configuration from environment variables.
//
// Configuration structs declare their sources with caarlos0/env tags:
//
//	type Config struct {
//		APIURL string `env:"STOREFRONT_API_URL"`
//		Env    string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load parses the environment on every call; nothing is cached, so tests can
// change variables with t.Setenv and load again. A .env file in the working
// directory is read when present (existing variables win). Additional files
// can be listed with WithEnvFiles; unlike the default file, those must exist.
package config
