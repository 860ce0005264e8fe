package config

import "time"

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultAuthMode        = "none"
	defaultPKIMaxSkew      = 60 * time.Second
	defaultSQLiteDSN       = ":memory:"
	defaultRequestTimeout  = 30 * time.Second
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 35 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxBodyBytes    = 1 << 20
	defaultLogLevel        = "debug"
	defaultVersion         = "N/A"
)

// defaultConfig is the lowest-priority config source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  defaultVersion,
			LogLevel: defaultLogLevel,
		},
		Auth: Auth{
			ReadMode:   defaultAuthMode,
			WriteMode:  defaultAuthMode,
			PKIMaxSkew: defaultPKIMaxSkew,
		},
		Storage: Storage{
			Driver: StorageDriverMemory,
			DSN:    defaultSQLiteDSN,
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			MaxBodyBytes:    defaultMaxBodyBytes,
		},
	}
}
