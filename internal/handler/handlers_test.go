package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/solid-pod/internal/config"
	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/internal/service"
	"github.com/MKhiriev/solid-pod/models"
)

func TestNewHandlers(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "localhost:8080"}}

	handlers, err := NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, handlers)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}

func TestNewHandlers_BadAuthMode(t *testing.T) {
	cfg := config.StructuredConfig{
		Auth:   config.Auth{WriteMode: "oauth"},
		Server: config.Server{HTTPAddress: "localhost:8080"},
	}

	_, err := NewHandlers(&service.Services{}, cfg, logger.Nop())
	assert.ErrorIs(t, err, models.ErrUnsupportedAuthMode)
}
