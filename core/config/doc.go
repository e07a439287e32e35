// Package config provides configuration management for the development server.
//
// It utilizes Viper for loading configuration from environment variables,
// a .env file, an optional config file (YAML, TOML or JSON) and command-line
// flags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: listen address, backend URL, browser launch, timeouts
//   - Storage: the root directory being served
//   - Static: index document and directory listing
//   - CORS: Access-Control-Allow-* values
//   - Log: Logging level and format
//
// Every key has a default taken from the `default` struct tag. Environment
// variables use the upper-cased key with underscores, e.g. SERVER_PORT or
// STORAGE_ROOT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
