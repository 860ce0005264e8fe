package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/solid-pod/internal/utils"
	"github.com/MKhiriev/solid-pod/models"
)

// getResource serves GET and HEAD. The stored document is written back byte
// for byte.
func (h *Handler) getResource(w http.ResponseWriter, r *http.Request) {
	id, _ := utils.GetResourceIDFromContext(r.Context())

	value, err := h.services.ResourceService.GetResource(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteRawJSON(w, value, http.StatusOK)
}

func (h *Handler) putResource(w http.ResponseWriter, r *http.Request) {
	id, _ := utils.GetResourceIDFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrReadingRequestBody, err))
		return
	}

	if err = h.services.ResourceService.PutResource(r.Context(), id, body); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, models.MessageResourceCreated, http.StatusCreated)
}

func (h *Handler) deleteResource(w http.ResponseWriter, r *http.Request) {
	id, _ := utils.GetResourceIDFromContext(r.Context())

	if err := h.services.ResourceService.DeleteResource(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// options answers preflight requests; the CORS headers are already set.
func (h *Handler) options(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
