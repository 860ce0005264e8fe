package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/internal/utils"
	"github.com/MKhiriev/solid-pod/models"
)

// withResourceID decodes the wildcard segment into the resource id and
// stores it in the request context. The empty path is not a resource and is
// answered with 405 before any auth check runs.
func withResourceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "*")

		// chi routes on RawPath when it is set, leaving the segment escaped.
		// net/http rejects bad escapes before routing; this only guards
		// requests built by hand.
		if r.URL.RawPath != "" {
			unescaped, err := url.PathUnescape(id)
			if err != nil {
				logger.FromRequest(r).Err(err).Str("raw_id", id).Msg("invalid escaping in resource path")
				writeMessage(w, r, models.MessageInvalidRequest, http.StatusBadRequest)
				return
			}
			id = unescaped
		}

		if id == "" {
			methodNotAllowed(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithResourceID(r.Context(), id)))
	})
}
