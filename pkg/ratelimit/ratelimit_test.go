package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chainsafe/htlc-escrow/pkg/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLimiter_BlocksAfterBurst(t *testing.T) {
	l := New(1, 1)
	handler := l.Middleware(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/escrows", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	if res.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", res.Code)
	}

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	if res.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be rate limited, got %d", res.Code)
	}
	if res.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}

func TestLimiter_ReadsAreNotCounted(t *testing.T) {
	l := New(1, 1)
	handler := l.Middleware(okHandler())

	for i := 0; i < 5; i++ {
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v1/escrows/x", nil))
		if res.Code != http.StatusOK {
			t.Fatalf("GET %d was limited: %d", i, res.Code)
		}
	}
}

func TestLimiter_SeparatesClients(t *testing.T) {
	l := New(1, 1)
	handler := auth.Middleware(nil, "", nil)(l.Middleware(okHandler()))

	for _, account := range []string{"alice", "bob"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/escrows", nil)
		req.Header.Set(auth.AccountHeader, account)
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		if res.Code != http.StatusOK {
			t.Fatalf("expected first request from %s to succeed, got %d", account, res.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/escrows", nil)
	req.Header.Set(auth.AccountHeader, "alice")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	if res.Code != http.StatusTooManyRequests {
		t.Fatalf("expected alice to be limited, got %d", res.Code)
	}
}

func TestLimiter_RefillsAndPrunes(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := New(60, 1)
	l.now = func() time.Time { return now }

	if !l.Allow("c") || l.Allow("c") {
		t.Fatal("expected exactly one request within the burst")
	}
	now = now.Add(time.Second)
	if !l.Allow("c") {
		t.Fatal("expected the bucket to refill after one second")
	}

	now = now.Add(defaultIdleTTL + time.Second)
	l.Allow("other")
	l.mu.Lock()
	_, kept := l.visitors["c"]
	l.mu.Unlock()
	if kept {
		t.Fatal("expected idle client to be pruned")
	}
}
