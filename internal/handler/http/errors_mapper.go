package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/solid-pod/internal/service"
	"github.com/MKhiriev/solid-pod/internal/store"
	"github.com/MKhiriev/solid-pod/models"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	store.ErrResourceNotFound: {http.StatusNotFound, models.MessageResourceNotFound},

	service.ErrInvalidJSON:         {http.StatusBadRequest, models.MessageInvalidJSON},
	ErrReadingRequestBody:          {http.StatusBadRequest, models.MessageInvalidRequest},
	service.ErrEmptyResourceID:     {http.StatusMethodNotAllowed, models.MessageMethodNotAllowed},
	service.ErrUnauthorized:        {http.StatusUnauthorized, models.MessageUnauthorized},
	service.ErrUnsupportedAuthMode: {http.StatusBadRequest, models.MessageAuthNotSupported},

	store.ErrBuildingSQLQuery: {http.StatusInternalServerError, models.MessageInternalError},
	store.ErrExecutingQuery:   {http.StatusInternalServerError, models.MessageInternalError},
	store.ErrScanningRow:      {http.StatusInternalServerError, models.MessageInternalError},
}

// responseFromError classifies err. Anything unknown is a 500.
func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, models.MessageInternalError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}
