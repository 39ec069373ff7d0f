package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpContext "github.com/aldonunez05/sb-hacks/internal/api/http/context"
	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/metrics"
	"github.com/aldonunez05/sb-hacks/internal/mocks"
	"github.com/aldonunez05/sb-hacks/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()
	cm := httpContext.NewManager()

	tests := []struct {
		name   string
		header string
		setup  func(tm *mocks.TokenManager)
		status int
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			setup:  func(tm *mocks.TokenManager) { tm.On("ParseAccessToken", "good").Return(userID, nil) },
			status: http.StatusOK,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup:  func(tm *mocks.TokenManager) { tm.On("ParseAccessToken", "bad").Return(uuid.Nil, errors.New("expired")) },
			status: http.StatusUnauthorized,
		},
		{name: "missing header", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := mocks.NewTokenManager(t)
			if tt.setup != nil {
				tt.setup(tm)
			}

			r := gin.New()
			r.Use(NewAuthenticate(tm, cm, testutil.MakeNoopLogger()).Handle())
			r.GET("/me", func(c *gin.Context) {
				id, ok := cm.GetUserIDFromContext(c.Request.Context())
				require.True(t, ok)
				c.String(http.StatusOK, id.String())
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), "unauthenticated")
			}
		})
	}
}

func TestAdminToken(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		given      string
		status     int
	}{
		{"match", "s3cret", "s3cret", http.StatusOK},
		{"mismatch", "s3cret", "guess", http.StatusForbidden},
		{"missing header", "s3cret", "", http.StatusForbidden},
		{"disabled", "", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/trigger", AdminToken(tt.configured), func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodPost, "/trigger", nil)
			if tt.given != "" {
				req.Header.Set(AdminTokenHeader, tt.given)
			}

			assert.Equal(t, tt.status, serve(r, req).Code)
		})
	}
}

func TestRateLimiter_PerKey(t *testing.T) {
	cm := httpContext.NewManager()
	rl := NewRateLimiter(0.001, 2, cm, testutil.MakeNoopLogger())

	alice, bob := uuid.New(), uuid.New()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if id, err := uuid.Parse(c.GetHeader("X-User")); err == nil {
			c.Request = c.Request.WithContext(cm.SetUserIDToContext(c.Request.Context(), id))
		}
		c.Next()
	}, rl.Handle())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	request := func(user uuid.UUID) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User", user.String())
		return serve(r, req).Code
	}

	assert.Equal(t, http.StatusOK, request(alice))
	assert.Equal(t, http.StatusOK, request(alice))
	assert.Equal(t, http.StatusTooManyRequests, request(alice))
	assert.Equal(t, http.StatusOK, request(bob))
}

func TestRateLimiter_AnonymousUsesClientIP(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, httpContext.NewManager(), testutil.MakeNoopLogger())
	r := gin.New()
	r.Use(rl.Handle())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		return serve(r, req)
	}

	assert.Equal(t, http.StatusOK, req("10.0.0.1").Code)
	limited := req("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "1", limited.Header().Get("Retry-After"))
	assert.Equal(t, http.StatusOK, req("10.0.0.2").Code)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1, httpContext.NewManager(), testutil.MakeNoopLogger())
	rl.now = func() time.Time { return now }

	rl.getLimiter("old")
	now = now.Add(10 * time.Minute)
	rl.getLimiter("fresh")

	assert.Equal(t, 1, rl.Cleanup(5*time.Minute))
	assert.Len(t, rl.limiters, 1)
	assert.Contains(t, rl.limiters, "fresh")
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(NewLogging(logger.NewWithWriter(&buf, 0, "text")).Handle())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve(r, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "route=/items/:id")
	assert.Contains(t, lines[0], "status=418")
	assert.Contains(t, lines[0], "level=INFO")
	assert.Contains(t, lines[1], "level=ERROR")
}

func TestMetrics(t *testing.T) {
	m := metrics.New()
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, httptest.NewRequest(http.MethodGet, "/items/1", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/items/2", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))

	series, err := promtestutil.GatherAndCount(m.Registry(), "snapdaily_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	r := gin.New()
	r.Use(Metrics(nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}
