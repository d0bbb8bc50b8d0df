package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, rps float64, burst int, trusted ...string) *RateLimiter {
	t.Helper()
	rl, err := NewRateLimiter(rps, burst, trusted)
	require.NoError(t, err)
	return rl
}

func newLimitedRouter(rl *RateLimiter) *mux.Router {
	r := mux.NewRouter()
	r.Use(rl.Middleware())
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	r.HandleFunc("/bookings", ok).Methods(http.MethodGet, http.MethodPost)
	return r
}

func doRequest(r http.Handler, method, remoteAddr string) int {
	req := httptest.NewRequest(method, "/bookings", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter(t *testing.T) {
	t.Run("BurstExhausted", func(t *testing.T) {
		r := newLimitedRouter(newLimiter(t, 0.001, 2))

		assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "10.0.0.1:1000"))
		assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "10.0.0.1:1001"))
		assert.Equal(t, http.StatusTooManyRequests, doRequest(r, http.MethodPost, "10.0.0.1:1002"))
	})

	t.Run("PerClient", func(t *testing.T) {
		r := newLimitedRouter(newLimiter(t, 0.001, 1))

		assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "10.0.0.1:1000"))
		assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "10.0.0.2:1000"))
		assert.Equal(t, http.StatusTooManyRequests, doRequest(r, http.MethodPost, "10.0.0.1:1000"))
	})

	t.Run("ReadsNotLimited", func(t *testing.T) {
		r := newLimitedRouter(newLimiter(t, 0.001, 1))

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "10.0.0.1:1000"))
		}
	})

	t.Run("StaleClientsSwept", func(t *testing.T) {
		rl := newLimiter(t, 0.001, 1)
		now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		rl.now = func() time.Time { return now }

		rl.get("10.0.0.1")
		rl.get("10.0.0.2")
		assert.Len(t, rl.clients, 2)

		now = now.Add(staleClientTTL + sweepInterval)
		rl.get("10.0.0.3")
		assert.Len(t, rl.clients, 1)
	})
}

func doForwarded(r http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.RemoteAddr = remoteAddr
	req.Header.Set("X-Forwarded-For", forwardedFor)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_RotatingForwardedForFromUntrustedPeer(t *testing.T) {
	r := newLimitedRouter(newLimiter(t, 0.001, 1))

	admitted := 0
	for i := 0; i < 50; i++ {
		if doForwarded(r, "10.0.0.1:1000", fmt.Sprintf("203.0.113.%d", i)) == http.StatusOK {
			admitted++
		}
	}
	assert.Equal(t, 1, admitted)
}

func TestRateLimiter_ForwardedForFromTrustedProxy(t *testing.T) {
	r := newLimitedRouter(newLimiter(t, 0.001, 1, "10.0.0.0/24"))

	// разные клиенты за одним прокси получают отдельные лимиты
	assert.Equal(t, http.StatusOK, doForwarded(r, "10.0.0.5:1000", "203.0.113.1"))
	assert.Equal(t, http.StatusOK, doForwarded(r, "10.0.0.5:1000", "203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, doForwarded(r, "10.0.0.5:1000", "203.0.113.1"))
}

func TestRateLimiter_InvalidTrustedProxy(t *testing.T) {
	_, err := NewRateLimiter(1, 1, []string{"not-an-ip"})
	assert.Error(t, err)

	_, err = NewRateLimiter(1, 1, []string{"10.0.0.0/33"})
	assert.Error(t, err)
}

func TestClientIP(t *testing.T) {
	rl := newLimiter(t, 1, 1, "10.0.0.1", "172.16.0.0/12")

	tests := []struct {
		name      string
		remote    string
		forwarded string
		want      string
	}{
		{"NoHeader", "192.168.1.5:5555", "", "192.168.1.5"},
		{"UntrustedPeerIgnoresHeader", "192.168.1.5:5555", "203.0.113.7", "192.168.1.5"},
		{"TrustedPeer", "10.0.0.1:5555", "203.0.113.7", "203.0.113.7"},
		{"SpoofedLeftmostSkipped", "10.0.0.1:5555", "1.2.3.4, 203.0.113.7", "203.0.113.7"},
		{"ChainOfTrustedProxies", "10.0.0.1:5555", "203.0.113.7, 172.16.0.9", "203.0.113.7"},
		{"GarbageStopsChain", "10.0.0.1:5555", "203.0.113.7, junk, 172.16.0.9", "172.16.0.9"},
		{"AllTrusted", "10.0.0.1:5555", "172.16.0.8, 172.16.0.9", "172.16.0.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, rl.clientIP(req))
		})
	}
}
