package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/solid-pod/internal/service"
	"github.com/MKhiriev/solid-pod/models"
)

func TestWithAuth(t *testing.T) {
	tests := []struct {
		name       string
		authErr    error
		wantStatus int
		wantBody   string
		wantNext   bool
	}{
		{name: "authorized", wantStatus: http.StatusTeapot, wantNext: true},
		{name: "unauthorized", authErr: service.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantBody: "Unauthorized"},
		{name: "wrapped unauthorized", authErr: errors.Join(errors.New("ctx"), service.ErrUnauthorized), wantStatus: http.StatusUnauthorized, wantBody: "Unauthorized"},
		{name: "unsupported mode", authErr: service.ErrUnsupportedAuthMode, wantStatus: http.StatusBadRequest, wantBody: "Authentication type not supported"},
		{name: "unexpected error", authErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantBody: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/notes/a", nil)
			req.Header.Set("Authorization", "Bearer x")

			m.auth.EXPECT().
				Authorize(gomock.Any(), models.AuthModeBearer, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ models.AuthMode, header http.Header) error {
					assert.Equal(t, "Bearer x", header.Get("Authorization"))
					return tt.authErr
				})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			})

			rr := httptest.NewRecorder()
			h.withAuth(models.AuthModeBearer)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
				assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/plain"))
			}
		})
	}
}
