package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	Init(Config{Level: level, Format: "json", Output: &buf})
	return &buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("DEBUG").String())
	assert.Equal(t, "warn", parseLevel("warning").String())
	assert.Equal(t, "info", parseLevel("bogus").String())
	assert.Equal(t, "disabled", parseLevel("off").String())
}

func TestInitRespectsLevel(t *testing.T) {
	buf := captureLogs(t, "warn")

	Info().Msg("hidden")
	Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestCtxAddsRequestID(t *testing.T) {
	buf := captureLogs(t, "info")

	ctx := ContextWithRequestID(context.Background(), "req-42")
	Ctx(ctx).Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "hello", entry["message"])
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t, "info")

	r := gin.New()
	r.Use(RequestID(), AccessLog())
	r.GET("/items/:id", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFromContext(c.Request.Context()))
	})

	t.Run("generates id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/7", nil))

		require.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "/items/:id", entry["route"])
		assert.Equal(t, float64(http.StatusOK), entry["status"])
		assert.Equal(t, id, entry["request_id"])
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/items/7", nil)
		req.Header.Set(RequestIDHeader, "abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
	})

	t.Run("unmatched route logs as warning", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.True(t, strings.Contains(buf.String(), `"level":"warn"`))
		assert.Contains(t, buf.String(), `"route":"unmatched"`)
	})
}
