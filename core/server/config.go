package server

import (
	"fmt"
	"strconv"
)

// DefaultPort is the port the server binds when PORT is unset.
const DefaultPort = 8089

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8089" env:"PORT"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:"" env:"API_KEY"`
	// EntryPoint is the module-qualified reference of the application to serve.
	EntryPoint string `mapstructure:"entry_point" default:"calendar:app" env:"ENTRYPOINT"`
}

// ParsePort parses and validates a port value. TCP ports live in [1,65535];
// anything else (including non-numeric input) is rejected.
func ParsePort(raw string) (int, error) {
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("port %q is not an integer", raw)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d is outside the valid range [1,65535]", port)
	}
	return port, nil
}

// ResolvePort returns the validated port from the configured value,
// falling back to DefaultPort when unset.
func (c Config) ResolvePort() (int, error) {
	if c.Port == "" {
		return DefaultPort, nil
	}
	return ParsePort(c.Port)
}
