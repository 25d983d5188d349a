package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/gallery-db/internal/handler"
	"github.com/msomdec/gallery-db/internal/service"
)

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	srv, _ := newTestServer(t, handler.RouteConfig{})

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Len(t, resp.Header.Get(handler.HeaderRequestID), 36)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(handler.HeaderRequestID, "abc-123")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(handler.HeaderRequestID))
}

func TestRequestID_LoggerInContext(t *testing.T) {
	var called bool
	h := handler.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.NotNil(t, handler.LoggerFromContext(r.Context()))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}

func TestSecurityHeaders(t *testing.T) {
	srv, _ := newTestServer(t, handler.RouteConfig{})

	resp, err := http.Get(srv.URL + "/api/galleryDb")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "frame-ancestors 'none'")
}

func TestRateLimit_Upload(t *testing.T) {
	limiter := service.NewTokenBucket(0, 1)
	t.Cleanup(limiter.Close)
	srv, _ := newTestServer(t, handler.RouteConfig{UploadLimiter: limiter})

	resp := upload(t, srv, "Cats", "cat1.png", pngHeader)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = upload(t, srv, "Cats", "cat2.png", pngHeader)
	resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))

	// Only uploads are limited.
	resp, err := http.Get(srv.URL + "/api/galleryDb")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func uploadAs(t *testing.T, srv *httptest.Server, realIP string) int {
	t.Helper()
	body, ct := multipartUpload(t, ptr("Cats"), "cat.png", "image/png", pngHeader)
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/galleryDb/upload", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("X-Real-IP", realIP)
	req.Header.Set("X-Forwarded-For", realIP)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestRateLimit_IgnoresForwardedHeadersByDefault(t *testing.T) {
	limiter := service.NewTokenBucket(0, 1)
	t.Cleanup(limiter.Close)
	srv, _ := newTestServer(t, handler.RouteConfig{UploadLimiter: limiter})

	assert.Equal(t, http.StatusOK, uploadAs(t, srv, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, uploadAs(t, srv, "10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, uploadAs(t, srv, "10.0.0.3"))
	assert.Equal(t, 1, limiter.Len(), "header values must not create buckets")
}

func TestRateLimit_TrustedProxyHeaders(t *testing.T) {
	limiter := service.NewTokenBucket(0, 1)
	t.Cleanup(limiter.Close)
	srv, _ := newTestServerWithProxy(t, handler.RouteConfig{UploadLimiter: limiter}, true)

	assert.Equal(t, http.StatusOK, uploadAs(t, srv, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, uploadAs(t, srv, "10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, uploadAs(t, srv, "10.0.0.1"))
	assert.Equal(t, 2, limiter.Len())
}

func TestRecoverer(t *testing.T) {
	h := handler.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}), false)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
