package handler

import (
	"context"
	"net/http"
)

// HealthChecker はヘルスチェックが必要とするストレージ疎通確認のインターフェース。
// *sql.DBがこれを満たす。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// HealthHandler はヘルスチェックのHTTPハンドラー。
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler はHealthHandlerを生成する。
func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health はデータベース疎通を含むヘルスチェックを実行する。
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.checker.PingContext(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
