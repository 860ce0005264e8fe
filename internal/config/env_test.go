// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":   "1.2.3",
		"APP_LOG_LEVEL": "info",

		"AUTH_READ_MODE":    "pki",
		"AUTH_WRITE_MODE":   "bearer",
		"AUTH_BEARER_TOKEN": "secret",
		"AUTH_PKI_MAX_SKEW": "45s",

		"STORAGE_DRIVER": "sqlite",
		"STORAGE_DSN":    ":memory:",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_ADMIN_ADDRESS":    "localhost:9090",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_READ_TIMEOUT":     "5s",
		"SERVER_WRITE_TIMEOUT":    "6s",
		"SERVER_SHUTDOWN_TIMEOUT": "7s",
		"SERVER_MAX_BODY_BYTES":   "2048",
		"SERVER_ENABLE_PPROF":     "true",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, environ)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "pki", cfg.Auth.ReadMode)
	assert.Equal(t, "bearer", cfg.Auth.WriteMode)
	assert.Equal(t, "secret", cfg.Auth.BearerToken)
	assert.Equal(t, 45*time.Second, cfg.Auth.PKIMaxSkew)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, ":memory:", cfg.Storage.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.AdminAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 6*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 7*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
	assert.True(t, cfg.Server.EnablePprof)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"AUTH_WRITE_MODE": "bearer",
		"SERVER_ADDRESS":  "localhost:8080",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, environ)

	// Assert
	require.NoError(t, err)

	assert.Empty(t, cfg.Auth.ReadMode)
	assert.Equal(t, "bearer", cfg.Auth.WriteMode)
	assert.Empty(t, cfg.Auth.BearerToken)
	assert.Zero(t, cfg.Auth.PKIMaxSkew)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.Driver)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{"SERVER_MAX_BODY_BYTES": "lots"})

	require.Error(t, err)
}

func TestParseEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("AUTH_BEARER_TOKEN", "from-process")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "from-process", cfg.Auth.BearerToken)
}
