package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/solid-pod/internal/store"
	"github.com/MKhiriev/solid-pod/models"
)

// mockedRouter routes through the real middleware chain with every service
// mocked; the auth gates are open.
func mockedRouter(t *testing.T) (http.Handler, testMocks) {
	t.Helper()
	h, m := newMockedHandler(t)
	m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return h.Init(), m
}

func TestGetResource_StorageFailure(t *testing.T) {
	router, m := mockedRouter(t)
	m.resources.EXPECT().
		GetResource(gomock.Any(), "doc").
		Return(nil, fmt.Errorf("%w: disk I/O error", store.ErrScanningRow))

	rr := do(router, http.MethodGet, "/doc", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rr.Body.String())
	assertCORS(t, rr.Header())
}

func TestGetResource_PassesDecodedID(t *testing.T) {
	router, m := mockedRouter(t)
	m.resources.EXPECT().
		GetResource(gomock.Any(), "a b/c").
		Return(json.RawMessage(`{"k":"v"}`), nil)

	rr := do(router, http.MethodGet, "/a%20b/c", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"k":"v"}`, rr.Body.String())
}

func TestPutResource_ForwardsBody(t *testing.T) {
	router, m := mockedRouter(t)
	m.resources.EXPECT().
		PutResource(gomock.Any(), "doc", json.RawMessage(`{ "a" : 1 }`)).
		Return(nil)

	rr := do(router, http.MethodPut, "/doc", `{ "a" : 1 }`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"message":"`+models.MessageResourceCreated+`"}`, rr.Body.String())
}

func TestDeleteResource_StorageFailure(t *testing.T) {
	router, m := mockedRouter(t)
	m.resources.EXPECT().DeleteResource(gomock.Any(), "doc").Return(errors.New("connection reset"))

	rr := do(router, http.MethodDelete, "/doc", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandlerPanic_IsRecovered(t *testing.T) {
	router, m := mockedRouter(t)
	m.resources.EXPECT().
		GetResource(gomock.Any(), "boom").
		DoAndReturn(func(context.Context, string) (json.RawMessage, error) {
			panic("handler bug")
		})
	m.resources.EXPECT().
		GetResource(gomock.Any(), "fine").
		Return(json.RawMessage(`1`), nil)

	rr := do(router, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assertCORS(t, rr.Header())

	// the router keeps serving
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/fine", "").Code)
}
