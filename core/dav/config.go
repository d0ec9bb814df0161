package dav

import "strings"

// Config holds configuration for the CalDAV upstream.
type Config struct {
	// BaseURL is the root URL of the CalDAV host.
	BaseURL string `mapstructure:"base_url" default:"https://caldav.icloud.com" env:"BASE_URL"`
	// AppleID is the account identifier used for upstream basic auth.
	AppleID string `mapstructure:"apple_id" default:"" env:"APPLE_ID"`
	// ApplePassword is the app-specific password used for upstream basic auth.
	ApplePassword string `mapstructure:"apple_password" default:"" env:"APPLE_APP_PASSWORD"`
	// TimeoutSeconds is the upstream request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" env:"HTTP_TIMEOUT"`
}

// Base returns the base URL without a trailing slash.
func (c Config) Base() string {
	return strings.TrimRight(c.BaseURL, "/")
}

// AbsoluteURL resolves an href against the base URL. Upstream responses mix
// host-relative paths and full URLs; both are accepted.
func (c Config) AbsoluteURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return c.Base() + href
}
