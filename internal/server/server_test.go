package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/everydayventures/website/internal/config"
	"github.com/everydayventures/website/internal/logging"
	"github.com/everydayventures/website/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingMailer struct {
	calls int
}

func (m *countingMailer) Send(ctx context.Context, msg *models.EmailMessage) error {
	m.calls++
	return nil
}

func newTestServer(t *testing.T, mailer *countingMailer) http.Handler {
	t.Helper()
	return newTestServerWithLimit(t, mailer, 1024)
}

// newTestServerWithLimit builds the server from default config; a zero limit
// keeps the configured default body size
func newTestServerWithLimit(t *testing.T, mailer *countingMailer, maxBodyBytes int64) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.Parse()
	require.NoError(t, err)
	if maxBodyBytes > 0 {
		cfg.MaxBodyBytes = maxBodyBytes
	}

	logger := logging.NewLoggerWithWriter(&logging.Config{Level: logging.LevelError}, &bytes.Buffer{})
	return NewServer(cfg, mailer, logger).Handler()
}

func TestContactEndpointWiring(t *testing.T) {
	mailer := &countingMailer{}
	handler := newTestServer(t, mailer)

	form := url.Values{"name": {"Jo"}, "email": {"jo@example.com"}, "project": {"Need a logo"}}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
}

func TestContactEndpointRejectsOtherMethods(t *testing.T) {
	handler := newTestServer(t, &countingMailer{})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/contact", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"), method)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), method)
		assert.Contains(t, w.Body.String(), "only accepts form submissions", method)
	}
}

func TestContactEndpointPreflight(t *testing.T) {
	handler := newTestServer(t, &countingMailer{})

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}

func TestContactEndpointBodyLimit(t *testing.T) {
	mailer := &countingMailer{}
	handler := newTestServer(t, mailer)

	form := url.Values{"name": {"Jo"}, "email": {"jo@example.com"}, "project": {strings.Repeat("p", 4000)}}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, 0, mailer.calls)
}

func TestOverlongProjectReachesValidation(t *testing.T) {
	for _, project := range []string{strings.Repeat("p", 6000), strings.Repeat("語", 8000)} {
		mailer := &countingMailer{}
		handler := newTestServerWithLimit(t, mailer, 0)

		form := url.Values{"name": {"Jo"}, "email": {"jo@example.com"}, "project": {project}}
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body struct {
			Success bool              `json:"success"`
			Errors  map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Len(t, body.Errors, 1)
		assert.Contains(t, body.Errors, "project")
		assert.Equal(t, 0, mailer.calls)
	}
}

func TestOtherRoutesRejectMethodsGenerically(t *testing.T) {
	handler := newTestServer(t, &countingMailer{})

	for _, path := range []string{"/health", "/"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, path)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), path)
		assert.NotContains(t, w.Body.String(), "form submissions", path)
	}
}

func TestHealth(t *testing.T) {
	handler := newTestServer(t, &countingMailer{})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Version string `json:"version"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.Version)
}

func TestStaticSite(t *testing.T) {
	handler := newTestServer(t, &countingMailer{})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/api/contact"`)
	assert.Contains(t, w.Body.String(), `name="company"`)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/site.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
}

func TestStartStopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg, err := config.Parse()
	require.NoError(t, err)
	cfg.Port = "0"

	logger := logging.NewLoggerWithWriter(&logging.Config{Level: logging.LevelError}, &bytes.Buffer{})
	srv := NewServer(cfg, &countingMailer{}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
