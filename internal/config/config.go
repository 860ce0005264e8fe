// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"

	"github.com/MKhiriev/solid-pod/models"
)

// Storage drivers accepted in [Storage.Driver].
const (
	StorageDriverMemory = "memory"
	StorageDriverSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// solid-pod server. It is populated by merging values from command-line
// flags, environment variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings (version, log level).
	App App `envPrefix:"APP_"`

	// Auth selects the request gate for each route family and holds the
	// parameters of the bearer and pki modes.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage selects the resource store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener addresses, timeouts and request limits.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by the admin /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth holds the auth selector configuration.
type Auth struct {
	// ReadMode is the gate for GET, HEAD and OPTIONS on resource paths:
	// "none", "bearer" or "pki".
	// Env: AUTH_READ_MODE
	ReadMode string `env:"READ_MODE"`

	// WriteMode is the gate for PUT and DELETE on resource paths.
	// Env: AUTH_WRITE_MODE
	WriteMode string `env:"WRITE_MODE"`

	// BearerToken is the secret expected in "Authorization: Bearer <token>".
	// Required when either mode is "bearer". Never serialized, so logging
	// the config does not leak it.
	// Env: AUTH_BEARER_TOKEN
	BearerToken string `env:"BEARER_TOKEN" json:"-"`

	// PKIMaxSkew is the largest accepted distance between the server clock
	// and the timestamp carried in the "Auth" header.
	// Env: AUTH_PKI_MAX_SKEW
	PKIMaxSkew time.Duration `env:"PKI_MAX_SKEW"`
}

// Modes returns the parsed read and write auth modes.
func (a Auth) Modes() (read models.AuthMode, write models.AuthMode, err error) {
	read, err = models.ParseAuthMode(a.ReadMode)
	if err != nil {
		return 0, 0, err
	}

	write, err = models.ParseAuthMode(a.WriteMode)
	if err != nil {
		return 0, 0, err
	}

	return read, write, nil
}

// Storage selects and configures the resource store backend.
type Storage struct {
	// Driver is "memory" or "sqlite".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite data source name. Only in-memory databases are
	// accepted (e.g. ":memory:" or "file:pod?mode=memory").
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Server holds network, timeout and limit settings for the HTTP listeners.
type Server struct {
	// HTTPAddress is the API listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// AdminAddress is the listen address of the admin surface (health,
	// readiness, version, pprof). Empty disables it.
	// Env: SERVER_ADMIN_ADDRESS
	AdminAddress string `env:"ADMIN_ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReadTimeout and WriteTimeout are passed to [net/http.Server].
	// Env: SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT
	ReadTimeout  time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of every listener.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MaxBodyBytes caps the size of request bodies.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// EnablePprof mounts net/http/pprof under /debug on the admin listener.
	// Env: SERVER_ENABLE_PPROF
	EnablePprof bool `env:"ENABLE_PPROF"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// For every field the first non-zero value wins, in this order:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
