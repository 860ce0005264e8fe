package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/solid-pod/internal/config"
	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/internal/service"
	"github.com/MKhiriev/solid-pod/internal/store"
	"github.com/MKhiriev/solid-pod/models"
)

const testBearerToken = "YOUR_SOLID_API_KEY"

// newPod wires the real services over an in-memory store.
func newPod(t *testing.T, readMode, writeMode string) (*Handler, http.Handler) {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{Version: "test"},
		Auth: config.Auth{
			ReadMode:    readMode,
			WriteMode:   writeMode,
			BearerToken: testBearerToken,
			PKIMaxSkew:  time.Minute,
		},
		Server: config.Server{
			MaxBodyBytes:   1 << 10,
			RequestTimeout: 5 * time.Second,
		},
	}

	storages := &store.Storages{ResourceStorage: store.NewMemoryResourceStorage()}
	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	h, err := NewHandler(services, cfg, logger.Nop())
	require.NoError(t, err)

	return h, h.Init()
}

func do(router http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRoutes_RootProfile(t *testing.T) {
	_, router := newPod(t, "bearer", "bearer")

	rr := do(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rr.Code, "root is never gated")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var profile models.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, "Will Smith", profile.PrimaryTopic.Name)
	assert.Equal(t, "", profile.ID)
	assert.Contains(t, rr.Body.String(), `"@id":""`)

	assert.Equal(t, http.StatusOK, do(router, http.MethodHead, "/", "").Code)

	rr = do(router, http.MethodOptions, "/", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assertCORS(t, rr.Header())
}

func TestRoutes_ProfileIndependentOfResources(t *testing.T) {
	_, router := newPod(t, "", "")

	before := do(router, http.MethodGet, "/", "").Body.String()
	require.Equal(t, http.StatusCreated, do(router, http.MethodPut, "/storage", `{"x":1}`).Code)
	after := do(router, http.MethodGet, "/", "").Body.String()

	assert.Equal(t, before, after)
}

func TestRoutes_EndToEnd(t *testing.T) {
	_, router := newPod(t, "", "")

	rr := do(router, http.MethodPut, "/foo/bar", `{"a": 1}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"message":"Resource created"}`, rr.Body.String())

	rr = do(router, http.MethodGet, "/foo/bar", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"a":1}`, rr.Body.String())

	rr = do(router, http.MethodHead, "/foo/bar", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(router, http.MethodDelete, "/foo/bar", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len())

	rr = do(router, http.MethodGet, "/foo/bar", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Resource not found"}`, rr.Body.String())

	rr = do(router, http.MethodDelete, "/foo/bar", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Resource not found"}`, rr.Body.String())
}

func TestRoutes_PutIsIdempotentAndOverwrites(t *testing.T) {
	_, router := newPod(t, "", "")

	require.Equal(t, http.StatusCreated, do(router, http.MethodPut, "/k", `[1,2]`).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPut, "/k", `[1,2]`).Code)
	assert.JSONEq(t, `[1,2]`, do(router, http.MethodGet, "/k", "").Body.String())

	require.Equal(t, http.StatusCreated, do(router, http.MethodPut, "/k", `"v2"`).Code)
	assert.Equal(t, `"v2"`, do(router, http.MethodGet, "/k", "").Body.String())
}

func TestRoutes_FalsyValuesAreFound(t *testing.T) {
	_, router := newPod(t, "", "")

	for i, v := range []string{`null`, `0`, `false`, `""`, `{}`, `[]`} {
		path := "/falsy/" + strconv.Itoa(i)
		require.Equal(t, http.StatusCreated, do(router, http.MethodPut, path, v).Code, v)

		rr := do(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rr.Code, v)
		assert.Equal(t, v, rr.Body.String())
	}
}

func TestRoutes_PathsAreExactStrings(t *testing.T) {
	_, router := newPod(t, "", "")

	require.Equal(t, http.StatusCreated, do(router, http.MethodPut, "/a/b/c", `1`).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPut, "/hello%20world", `2`).Code)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/a/b", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/a/b/c/", "").Code)
	assert.Equal(t, "1", do(router, http.MethodGet, "/a/b/c", "").Body.String())
	assert.Equal(t, "2", do(router, http.MethodGet, "/hello%20world", "").Body.String())

	// an escaped slash decodes to the same resource id
	assert.Equal(t, "1", do(router, http.MethodGet, "/a%2Fb/c", "").Body.String())
}

func TestRoutes_UnknownResource(t *testing.T) {
	_, router := newPod(t, "", "")

	rr := do(router, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assertCORS(t, rr.Header())
}

func TestRoutes_InvalidJSON(t *testing.T) {
	_, router := newPod(t, "", "")

	for _, body := range []string{"", "{", "not json", `{"a":1} trailing`} {
		rr := do(router, http.MethodPut, "/doc", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
		assert.JSONEq(t, `{"message":"Invalid JSON was passed"}`, rr.Body.String())
		assertCORS(t, rr.Header())
	}

	// the failed writes stored nothing
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/doc", "").Code)
}

func TestRoutes_BodyTooLarge(t *testing.T) {
	_, router := newPod(t, "", "")

	big := `"` + strings.Repeat("x", 2<<10) + `"`
	rr := do(router, http.MethodPut, "/big", big)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid request"}`, rr.Body.String())
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/big", "").Code)
}

func TestRoutes_OptionsOnResource(t *testing.T) {
	_, router := newPod(t, "", "")

	rr := do(router, http.MethodOptions, "/anything/at/all", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len())
	assertCORS(t, rr.Header())
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	_, router := newPod(t, "", "")

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/doc"},
		{http.MethodPatch, "/doc"},
		{http.MethodPost, "/"},
		{http.MethodPut, "/"},
		{http.MethodDelete, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := do(router, tt.method, tt.target, `{}`)
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.JSONEq(t, `{"message":"Method not allowed"}`, rr.Body.String())
			assertCORS(t, rr.Header())
		})
	}
}

func TestRoutes_BearerGate(t *testing.T) {
	_, router := newPod(t, "bearer", "bearer")

	rr := do(router, http.MethodPut, "/secret", `1`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Unauthorized", strings.TrimSpace(rr.Body.String()))
	assertCORS(t, rr.Header())

	rr = do(router, http.MethodPut, "/secret", `1`, "Authorization", "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = do(router, http.MethodPut, "/secret", `1`, "Authorization", "Bearer "+testBearerToken)
	assert.Equal(t, http.StatusCreated, rr.Code)

	assert.Equal(t, http.StatusUnauthorized, do(router, http.MethodGet, "/secret", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(router, http.MethodOptions, "/secret", "").Code)

	rr = do(router, http.MethodGet, "/secret", "", "Authorization", "Bearer "+testBearerToken)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1", rr.Body.String())
}

func TestRoutes_SeparateReadAndWriteGates(t *testing.T) {
	_, router := newPod(t, "none", "bearer")

	assert.Equal(t, http.StatusUnauthorized, do(router, http.MethodPut, "/doc", `1`).Code)
	assert.Equal(t, http.StatusUnauthorized, do(router, http.MethodDelete, "/doc", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/doc", "").Code, "reads pass the none gate")
}

func TestRoutes_PKIGate(t *testing.T) {
	_, router := newPod(t, "pki", "pki")

	now := time.Now().Unix()

	rr := do(router, http.MethodPut, "/p", `true`, "Auth", "sig "+strconv.FormatInt(now, 10))
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = do(router, http.MethodGet, "/p", "", "Auth", "sig "+strconv.FormatInt(now-120, 10))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = do(router, http.MethodGet, "/p", "", "Auth", "sig not-a-number")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assertCORS(t, rr.Header())

	rr = do(router, http.MethodGet, "/p", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRoutes_UnsupportedAuthModeAtRuntime(t *testing.T) {
	h, _ := newPod(t, "", "")
	h.readMode = models.AuthMode(99)
	router := h.Init()

	rr := do(router, http.MethodGet, "/doc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Authentication type not supported", strings.TrimSpace(rr.Body.String()))
	assertCORS(t, rr.Header())
}

func TestRoutes_GzipResponse(t *testing.T) {
	_, router := newPod(t, "", "")
	require.Equal(t, http.StatusCreated, do(router, http.MethodPut, "/z", `{"zip":true}`).Code)

	rr := do(router, http.MethodGet, "/z", "", "Accept-Encoding", "gzip")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"zip":true}`, gunzip(t, rr.Body.Bytes()))
	assertCORS(t, rr.Header())
}

func TestRoutes_TraceIDEchoed(t *testing.T) {
	_, router := newPod(t, "", "")

	rr := do(router, http.MethodGet, "/", "", traceIDHeader, "abc-123")
	assert.Equal(t, "abc-123", rr.Header().Get(traceIDHeader))
}

func TestRoutes_ConcurrentWritesLeaveOneValue(t *testing.T) {
	_, router := newPod(t, "", "")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			do(router, http.MethodPut, "/race", strconv.Itoa(i))
			do(router, http.MethodGet, "/race", "")
		}(i)
	}
	wg.Wait()

	rr := do(router, http.MethodGet, "/race", "")
	require.Equal(t, http.StatusOK, rr.Code)

	n, err := strconv.Atoi(rr.Body.String())
	require.NoError(t, err)
	assert.True(t, n >= 0 && n < 32)
}
