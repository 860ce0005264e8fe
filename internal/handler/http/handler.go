package http

import (
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/MKhiriev/solid-pod/internal/config"
	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/internal/service"
	"github.com/MKhiriev/solid-pod/models"
)

type Handler struct {
	services *service.Services

	readMode  models.AuthMode
	writeMode models.AuthMode

	maxBodyBytes   int64
	requestTimeout time.Duration
	enablePprof    bool

	// isReady is reported by /readyz on the admin router and flipped by
	// /drain and /undrain.
	isReady *atomic.Bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	readMode, writeMode, err := cfg.Auth.Modes()
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	logger.Info().
		Str("read_auth", readMode.String()).
		Str("write_auth", writeMode.String()).
		Msg("http handler created")

	return &Handler{
		services:       services,
		readMode:       readMode,
		writeMode:      writeMode,
		maxBodyBytes:   cfg.Server.MaxBodyBytes,
		requestTimeout: cfg.Server.RequestTimeout,
		enablePprof:    cfg.Server.EnablePprof,
		isReady:        atomic.NewBool(true),
		logger:         logger,
	}, nil
}

// SetReady changes the readiness reported by the admin router.
func (h *Handler) SetReady(ready bool) {
	h.isReady.Store(ready)
}
