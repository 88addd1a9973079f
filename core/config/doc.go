// Package config loads environment variables into typed structs.
//
// Each configuration type is parsed once and cached; a .env file in the
// working directory is loaded on first use. Parsing uses caarlos0/env tags:
//
//	type Config struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//		DSN  string `env:"PG_CONN_URL,required"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Parse skips both the cache and the .env file and reads only the given
// variables, which keeps tests hermetic.
package config
