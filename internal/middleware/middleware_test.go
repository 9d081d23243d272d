package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "propcalc/internal/errors"
	"propcalc/internal/logger"
	"propcalc/internal/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "")
}

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

var _ ratelimit.Limiter = (*stubLimiter)(nil)

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error.Code
}

func TestRequestLogging(t *testing.T) {
	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(RequestLogging())
		r.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, RequestID(c))
		})
		return r
	}

	t.Run("issues a UUIDv7 request id", func(t *testing.T) {
		rec := serve(newRouter(), http.MethodGet, "/ping", nil)

		id, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
		assert.Equal(t, id.String(), rec.Body.String())
	})

	t.Run("reuses a valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		rec := serve(newRouter(), http.MethodGet, "/ping", http.Header{"X-Request-Id": {incoming}})

		assert.Equal(t, incoming, rec.Header().Get("X-Request-ID"))
	})

	t.Run("replaces a malformed incoming id", func(t *testing.T) {
		rec := serve(newRouter(), http.MethodGet, "/ping", http.Header{"X-Request-Id": {"<script>"}})

		assert.NotEqual(t, "<script>", rec.Header().Get("X-Request-ID"))
		_, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
	})
}

func TestErrorHandler(t *testing.T) {
	newRouter := func(err error) *gin.Engine {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/fail", func(c *gin.Context) {
			_ = c.Error(err)
		})
		return r
	}

	t.Run("renders app errors", func(t *testing.T) {
		rec := serve(newRouter(apperrors.ErrRateLimited), http.MethodGet, "/fail", nil)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "RATE_LIMITED", errorCode(t, rec))
	})

	t.Run("masks unexpected errors", func(t *testing.T) {
		rec := serve(newRouter(errors.New("db on fire")), http.MethodGet, "/fail", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))
		assert.NotContains(t, rec.Body.String(), "db on fire")
	})

	t.Run("leaves written responses alone", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/fail", func(c *gin.Context) {
			c.JSON(http.StatusTeapot, gin.H{"ok": false})
			_ = c.Error(errors.New("late"))
		})

		rec := serve(r, http.MethodGet, "/fail", nil)

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"custom message", apperrors.WithMessage(apperrors.ErrInvalidInput, "price is required"), http.StatusBadRequest, "INVALID_INPUT", "price is required"},
		{"wrapped cause stays hidden", apperrors.Wrap(apperrors.ErrInvalidProperty, errors.New("invalid property_price")), http.StatusBadRequest, "INVALID_INPUT", apperrors.ErrInvalidProperty.Message},
		{"unexpected error is masked", errors.New("db on fire"), http.StatusInternalServerError, "INTERNAL_ERROR", apperrors.ErrInternalServer.Message},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/fail", func(c *gin.Context) { RenderError(c, tt.err) })

			rec := serve(r, http.MethodGet, "/fail", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body apperrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
		})
	}
}

func TestCORS(t *testing.T) {
	newRouter := func(origin string) *gin.Engine {
		r := gin.New()
		r.Use(CORS(origin))
		r.GET("/thing", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("answers preflight with 204", func(t *testing.T) {
		rec := serve(newRouter("*"), http.MethodOptions, "/thing", http.Header{
			"Origin":                        {"https://anywhere.example.com"},
			"Access-Control-Request-Method": {"GET"},
		})

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("echoes configured origin", func(t *testing.T) {
		rec := serve(newRouter("https://calc.example.com"), http.MethodGet, "/thing", http.Header{
			"Origin": {"https://calc.example.com"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://calc.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("rejects other origins", func(t *testing.T) {
		rec := serve(newRouter("https://calc.example.com"), http.MethodGet, "/thing", http.Header{
			"Origin": {"https://evil.example.com"},
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("ignores requests without origin", func(t *testing.T) {
		rec := serve(newRouter("https://calc.example.com"), http.MethodGet, "/thing", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimit(t *testing.T) {
	newRouter := func(limiter ratelimit.Limiter) *gin.Engine {
		r := gin.New()
		r.Use(ErrorHandler())
		r.Use(RateLimit(limiter))
		r.GET("/calc", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("allows requests under the limit", func(t *testing.T) {
		limiter := &stubLimiter{allowed: true}
		rec := serve(newRouter(limiter), http.MethodGet, "/calc", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"192.0.2.1"}, limiter.keys)
	})

	t.Run("returns 429 over the limit", func(t *testing.T) {
		rec := serve(newRouter(&stubLimiter{allowed: false}), http.MethodGet, "/calc", nil)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "RATE_LIMITED", errorCode(t, rec))
	})

	t.Run("fails open on limiter error", func(t *testing.T) {
		rec := serve(newRouter(&stubLimiter{err: errors.New("redis down")}), http.MethodGet, "/calc", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("memory limiter blocks after capacity", func(t *testing.T) {
		limiter := ratelimit.NewMemory(2, time.Minute)
		defer limiter.Stop()
		r := newRouter(limiter)

		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/calc", nil).Code)
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/calc", nil).Code)
		assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/calc", nil).Code)
	})
}
