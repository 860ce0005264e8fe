package http

import (
	"net/http"

	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/internal/utils"
)

// getProfile serves the fixed profile document at the root path.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile := h.services.ProfileService.GetProfile(r.Context())

	if _, err := utils.WriteJSON(w, profile, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing profile")
	}
}
