package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/solid-pod/internal/config"
	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/internal/mock"
	"github.com/MKhiriev/solid-pod/internal/service"
	"github.com/MKhiriev/solid-pod/models"
)

type testMocks struct {
	resources *mock.MockResourceService
	auth      *mock.MockAuthService
	profile   *mock.MockProfileService
	appInfo   *mock.MockAppInfoService
}

// newMockedHandler builds a Handler whose services are all gomock mocks.
func newMockedHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		resources: mock.NewMockResourceService(ctrl),
		auth:      mock.NewMockAuthService(ctrl),
		profile:   mock.NewMockProfileService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}

	h := &Handler{
		services: &service.Services{
			ResourceService: m.resources,
			AuthService:     m.auth,
			ProfileService:  m.profile,
			AppInfoService:  m.appInfo,
		},
		isReady: atomic.NewBool(true),
		logger:  logger.Nop(),
	}

	return h, m
}

func TestNewHandler(t *testing.T) {
	cfg := config.StructuredConfig{
		Auth: config.Auth{ReadMode: "none", WriteMode: "bearer"},
		Server: config.Server{
			MaxBodyBytes:   512,
			RequestTimeout: time.Second,
			EnablePprof:    true,
		},
	}
	services := &service.Services{}

	h, err := NewHandler(services, cfg, logger.Nop())
	require.NoError(t, err)

	assert.Same(t, services, h.services)
	assert.Equal(t, models.AuthModeNone, h.readMode)
	assert.Equal(t, models.AuthModeBearer, h.writeMode)
	assert.Equal(t, int64(512), h.maxBodyBytes)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.True(t, h.enablePprof)
	assert.True(t, h.isReady.Load(), "handler starts ready")
}

func TestNewHandler_UnknownAuthMode(t *testing.T) {
	cfg := config.StructuredConfig{Auth: config.Auth{ReadMode: "kerberos"}}

	h, err := NewHandler(&service.Services{}, cfg, logger.Nop())
	assert.Nil(t, h)
	assert.ErrorIs(t, err, models.ErrUnsupportedAuthMode)
}

func TestHandler_SetReady(t *testing.T) {
	h, _ := newMockedHandler(t)

	h.SetReady(false)
	assert.False(t, h.isReady.Load())

	h.SetReady(true)
	assert.True(t, h.isReady.Load())
}
