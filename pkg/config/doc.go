// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv (optional .env files) with
// github.com/caarlos0/env/v11 (struct tag parsing). Each configuration type is
// parsed once and cached, so services can call Load for their own config
// struct without coordinating:
//
//	var cfg listing.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Types implementing encoding.TextUnmarshaler, such as environment.Environment,
// are decoded directly from their variable.
//
// LoadEnv reads extra .env files; ResetCache drops cached values in tests.
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer.
package config
