// Package config provides configuration management for the simulation server.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (bind host, port, served directory, shutdown timeout)
//   - Browser: browser opener settings (enabled, delay)
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
