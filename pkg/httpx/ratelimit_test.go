package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/linkmintapp/linkmint/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		require.Equal(t, "203.0.113.7", httpx.IPKeyExtractor(r))
	})

	t.Run("falls back to X-Real-IP", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Real-IP", "198.51.100.4")
		require.Equal(t, "198.51.100.4", httpx.IPKeyExtractor(r))
	})

	t.Run("falls back to RemoteAddr", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "192.0.2.9:4242"
		require.Equal(t, "192.0.2.9", httpx.IPKeyExtractor(r))
	})
}

func TestUserIDKeyExtractor(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, httpx.UserIDKeyExtractor(r))

	ctx := context.WithValue(r.Context(), httpx.CtxKeyUserID, "user-1")
	require.Equal(t, "user-1", httpx.UserIDKeyExtractor(r.WithContext(ctx)))
}

func TestRateLimitMiddleware_BlocksAfterBurst(t *testing.T) {
	config := httpx.RateLimitConfig{
		RequestsPerWindow: 2,
		Window:            time.Minute,
		Burst:             2,
	}

	handler := httpx.RateLimitByIP(config)(okHandler())

	send := func() *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w
	}

	require.Equal(t, http.StatusOK, send().Code)
	require.Equal(t, http.StatusOK, send().Code)

	blocked := send()
	require.Equal(t, http.StatusTooManyRequests, blocked.Code)
	require.NotEmpty(t, blocked.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware_SeparateKeys(t *testing.T) {
	config := httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	}

	handler := httpx.RateLimitByIP(config)(okHandler())

	send := func(addr string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Code
	}

	require.Equal(t, http.StatusOK, send("192.0.2.1:1"))
	require.Equal(t, http.StatusTooManyRequests, send("192.0.2.1:1"))

	// A different client is unaffected
	require.Equal(t, http.StatusOK, send("192.0.2.2:1"))
}

func TestRateLimitByUser_FallsBackToIP(t *testing.T) {
	config := httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	}

	handler := httpx.RateLimitByUser(config)(okHandler())

	send := func(userID string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "192.0.2.1:1"
		if userID != "" {
			ctx := context.WithValue(r.Context(), httpx.CtxKeyUserID, userID)
			r = r.WithContext(ctx)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Code
	}

	require.Equal(t, http.StatusOK, send("user-a"))
	require.Equal(t, http.StatusTooManyRequests, send("user-a"))

	// Different user behind the same IP gets their own budget
	require.Equal(t, http.StatusOK, send("user-b"))
}

func TestParseRateLimitFromEnv(t *testing.T) {
	t.Setenv("RATELIMIT_TESTPROFILE_REQUESTS", "7")
	t.Setenv("RATELIMIT_TESTPROFILE_WINDOW_SEC", "30")
	t.Setenv("RATELIMIT_TESTPROFILE_BURST", "3")

	base := httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	}

	got := httpx.ParseRateLimitFromEnv("TESTPROFILE", base)
	require.Equal(t, 7, got.RequestsPerWindow)
	require.Equal(t, 30*time.Second, got.Window)
	require.Equal(t, 3, got.Burst)
}
