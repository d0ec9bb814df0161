// Package config provides configuration management for the CalDAV bridge.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file loaded via godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, entry point)
//   - Upstream: CalDAV upstream settings (base URL, credentials, timeout)
//   - Store: S3/MinIO settings for the built-image archive store
//   - Log: Logging level and format
//
// Every leaf field carries a 'default' tag and, where the original flat
// variable names apply, an 'env' tag (PORT, API_KEY, BASE_URL, APPLE_ID,
// APPLE_APP_PASSWORD, HTTP_TIMEOUT, ...).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
//
// FromEnvironment builds the same Config from an explicit variable snapshot,
// which is how the bootstrap launcher injects env-file values into the
// application without relying on process-global state.
package config
