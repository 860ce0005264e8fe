package service

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/solid-pod/internal/config"
	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/models"
)

// authService is the concrete implementation of AuthService.
// It holds no per-request state and is safe for concurrent use.
type authService struct {
	// bearerCredential is the exact substring a bearer Authorization header
	// must contain: "Bearer <token>".
	bearerCredential string

	// maxSkew is the exclusive upper bound on |now - ts| for the pki mode.
	maxSkew time.Duration

	// now is the clock; replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the auth section of the
// config.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		bearerCredential: "Bearer " + cfg.BearerToken,
		maxSkew:          cfg.PKIMaxSkew,
		now:              time.Now,
		logger:           logger,
	}
}

// Authorize returns nil when header satisfies mode.
//
// Errors:
//   - ErrUnauthorized for a failed bearer or pki check, including a missing
//     or unparsable header.
//   - ErrUnsupportedAuthMode for a mode outside the known set.
func (a *authService) Authorize(ctx context.Context, mode models.AuthMode, header http.Header) error {
	log := logger.FromContext(ctx)

	switch mode {
	case models.AuthModeNone:
		return nil

	case models.AuthModeBearer:
		if !strings.Contains(header.Get(models.AuthorizationHeader), a.bearerCredential) {
			log.Debug().Str("mode", mode.String()).Msg("bearer credential rejected")
			return ErrUnauthorized
		}
		return nil

	case models.AuthModePKI:
		ts, ok := pkiTimestamp(header.Get(models.PKIAuthHeader))
		if !ok {
			log.Debug().Str("mode", mode.String()).Msg("malformed pki header")
			return ErrUnauthorized
		}

		// ts is compared with the window bounds, never subtracted: arbitrary
		// header values would overflow the difference
		now := a.now().Unix()
		window := int64(a.maxSkew / time.Second)
		if ts <= now-window || ts >= now+window {
			log.Debug().Str("mode", mode.String()).Int64("timestamp", ts).Msg("pki timestamp outside accepted window")
			return ErrUnauthorized
		}
		return nil

	default:
		log.Error().Str("mode", mode.String()).Msg("route configured with unsupported auth mode")
		return ErrUnsupportedAuthMode
	}
}

// pkiTimestamp extracts the trailing space-delimited integer of an Auth
// header value.
func pkiTimestamp(value string) (int64, bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0, false
	}

	ts, err := strconv.ParseInt(fields[len(fields)-1], 10, 64)
	if err != nil {
		return 0, false
	}

	return ts, true
}
