package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kanakku/config"
	deliverycontext "kanakku/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expectID string
	}{
		{name: "uses client id", header: "req-123", expectID: "req-123"},
		{name: "generates when missing"},
		{name: "replaces oversized id", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})
			require.NoError(t, handler(c))

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, headerID, ctxID)
			if tt.expectID != "" {
				assert.Equal(t, tt.expectID, headerID)
			} else {
				assert.NotEmpty(t, headerID)
				assert.NotEqual(t, tt.header, headerID)
			}
		})
	}
}

func newTestConfig(debug bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return cfg
}

func TestLoggerMiddleware_LogsFailuresWithFinalStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/shops?x=1", nil), rec)

	handler := NewLoggerMiddleware(logger, newTestConfig(false)).Handle(func(echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "/api/shops", entry["uri"])
	assert.Equal(t, "x=1", entry["query"])
}

func TestLoggerMiddleware_SkipsSuccessOutsideDebug(t *testing.T) {
	for _, debug := range []bool{false, true} {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

		handler := NewLoggerMiddleware(logger, newTestConfig(debug)).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))

		assert.Equal(t, debug, buf.Len() > 0)
	}
}
