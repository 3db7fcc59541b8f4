package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newEngine(mw ...ginext.HandlerFunc) *ginext.Engine {
	r := ginext.New("test")
	r.Use(mw...)
	r.GET("/ping", func(c *ginext.Context) {
		c.String(http.StatusOK, logger.GetRequestID(c.Request.Context()))
	})
	r.GET("/boom", func(c *ginext.Context) {
		panic("boom")
	})
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID(), RequestLogger(newTestLogger(t)))

	t.Run("generated", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-42")

		w := serve(r, req)

		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-42", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	r := newEngine(RequestID(), Recovery(newTestLogger(t)))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		header   string
		wantCode int
	}{
		{name: "disabled", token: "", header: "anything", wantCode: http.StatusForbidden},
		{name: "missing", token: "s3cret", header: "", wantCode: http.StatusUnauthorized},
		{name: "wrong", token: "s3cret", header: "s3cre", wantCode: http.StatusUnauthorized},
		{name: "ok", token: "s3cret", header: "s3cret", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(AdminAuth(tt.token))
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(AdminTokenHeader, tt.header)
			}

			w := serve(r, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2)
	r := newEngine(RateLimit(limiter, newTestLogger(t)))

	request := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":1234"
		return serve(r, req).Code
	}

	assert.Equal(t, http.StatusOK, request("10.0.0.1"))
	assert.Equal(t, http.StatusOK, request("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1"))

	// у другого клиента своя корзина
	assert.Equal(t, http.StatusOK, request("10.0.0.2"))
}

func TestIPRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(0.001, 1)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.Len(t, l.clients, 1)

	now = now.Add(limiterIdleTTL + time.Minute)
	assert.True(t, l.Allow("b"))
	assert.Len(t, l.clients, 1, "idle client a is dropped")

	// a starts over with a full bucket
	assert.True(t, l.Allow("a"))
}
