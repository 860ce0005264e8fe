package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/internal/service"
	"github.com/MKhiriev/solid-pod/models"
)

// withAuth returns a middleware gating a route family with mode.
//
// Rejections are written as plain text:
//   - 401 "Unauthorized" when the bearer or pki check fails.
//   - 400 "Authentication type not supported" when mode is unknown.
func (h *Handler) withAuth(mode models.AuthMode) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			err := h.services.AuthService.Authorize(r.Context(), mode, r.Header)
			switch {
			case err == nil:
				next.ServeHTTP(w, r)
			case errors.Is(err, service.ErrUnauthorized):
				log.Warn().Str("auth_mode", mode.String()).Msg("request rejected")
				http.Error(w, models.MessageUnauthorized, http.StatusUnauthorized)
			case errors.Is(err, service.ErrUnsupportedAuthMode):
				log.Err(err).Str("auth_mode", mode.String()).Msg("route gated by unsupported auth mode")
				http.Error(w, models.MessageAuthNotSupported, http.StatusBadRequest)
			default:
				log.Err(err).Msg("error occurred during authorization")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		})
	}
}
