// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// an optional .env file in the working directory is loaded once, then
// struct fields are filled from their env tags. Parsed values are cached
// per type and prefix so repeated Load calls are cheap.
//
//	type Settings struct {
//		CaseSensitive bool   `env:"CASE_SENSITIVE" envDefault:"false"`
//		DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	var s Settings
//	config.MustLoad(&s, config.WithPrefix("ISOCODE_"))
//
// WithEnvironment parses from an explicit map and bypasses the cache, which
// keeps tests independent of the process environment. ResetCache clears
// cached values.
package config
