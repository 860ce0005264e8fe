package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/internal/utils"
	"github.com/MKhiriev/solid-pod/models"
)

// InitAdmin builds the router of the admin listener: liveness, readiness,
// drain control, version and, when enabled, pprof under /debug.
func (h *Handler) InitAdmin() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(middleware.Recoverer)

	router.Get("/livez", h.livez)
	router.Get("/readyz", h.readyz)
	router.Get("/drain", h.drain)
	router.Get("/undrain", h.undrain)
	router.Get("/version", h.getServerVersion)

	if h.enablePprof {
		router.Mount("/debug", middleware.Profiler())
	}

	return router
}

func (h *Handler) livez(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, r, models.StatusAlive, http.StatusOK)
}

func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	if !h.isReady.Load() {
		writeStatus(w, r, models.StatusNotReady, http.StatusServiceUnavailable)
		return
	}
	writeStatus(w, r, models.StatusReady, http.StatusOK)
}

func (h *Handler) drain(w http.ResponseWriter, r *http.Request) {
	if h.isReady.Swap(false) {
		logger.FromRequest(r).Info().Msg("server draining")
	}
	writeStatus(w, r, models.StatusDraining, http.StatusOK)
}

func (h *Handler) undrain(w http.ResponseWriter, r *http.Request) {
	if !h.isReady.Swap(true) {
		logger.FromRequest(r).Info().Msg("server undrained")
	}
	writeStatus(w, r, models.StatusReady, http.StatusOK)
}

func writeStatus(w http.ResponseWriter, r *http.Request, status string, code int) {
	if _, err := utils.WriteJSON(w, models.StatusResponse{Status: status}, code); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing status")
	}
}
