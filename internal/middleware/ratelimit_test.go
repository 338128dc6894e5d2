package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestWrapPassthroughWhenUnconfigured(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "")
	h := Wrap(okHandler())
	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d rejected without a configured limit", i)
		}
	}
}

func TestWrapRejectsBeyondBudget(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "3")
	h := Wrap(okHandler())
	okN, rejectedN := 0, 0
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		switch rec.Code {
		case http.StatusOK:
			okN++
		case http.StatusTooManyRequests:
			rejectedN++
		default:
			t.Fatalf("unexpected status %d", rec.Code)
		}
	}
	// 秒边界可能恰好落在循环中间，放行数介于 3 与 6 之间
	if okN < 3 || okN > 6 {
		t.Errorf("allowed %d of 10, want within [3,6]", okN)
	}
	if okN+rejectedN != 10 {
		t.Errorf("accounting mismatch: %d + %d", okN, rejectedN)
	}
}

func TestWrapIgnoresInvalidConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")
	h := Wrap(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatal("invalid config should disable limiting")
	}
}
