package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type mockHealthChecker struct {
	pingFn func(ctx context.Context) error
}

func (m *mockHealthChecker) PingContext(ctx context.Context) error {
	return m.pingFn(ctx)
}

// TestHealth_OK はデータベース疎通成功時に200が返ることを検証する。
func TestHealth_OK(t *testing.T) {
	h := NewHealthHandler(&mockHealthChecker{
		pingFn: func(ctx context.Context) error { return nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}
}

// TestHealth_DatabaseUnreachable はデータベース疎通失敗時に503が返ることを検証する。
func TestHealth_DatabaseUnreachable(t *testing.T) {
	h := NewHealthHandler(&mockHealthChecker{
		pingFn: func(ctx context.Context) error { return errors.New("connection refused") },
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "unavailable" {
		t.Errorf("status = %v, want unavailable", body["status"])
	}
}
