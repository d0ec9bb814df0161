// Package server holds the HTTP server configuration.
//
// The bind port defaults to 8089 and is validated against the TCP port
// range before any socket is opened, so a bad PORT value fails fast at
// startup rather than surfacing as an obscure listen error.
package server
