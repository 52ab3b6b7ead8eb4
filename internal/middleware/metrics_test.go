package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hitoshi/camproster/internal/metrics"
)

// recordingCollector はミドルウェアからの記録呼び出しを観測するコレクター。
type recordingCollector struct {
	metrics.NopCollector
	statuses  []int
	latencies []time.Duration
}

func (c *recordingCollector) RecordHTTPStatus(statusCode int) {
	c.statuses = append(c.statuses, statusCode)
}

func (c *recordingCollector) RecordRequestLatency(duration time.Duration) {
	c.latencies = append(c.latencies, duration)
}

// TestMetricsMiddleware_RecordsStatusAndLatency はステータスコードと
// レイテンシが記録されることを検証する。
func TestMetricsMiddleware_RecordsStatusAndLatency(t *testing.T) {
	collector := &recordingCollector{}
	handler := NewMetricsMiddleware(collector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/campers/999", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if len(collector.statuses) != 1 || collector.statuses[0] != http.StatusNotFound {
		t.Errorf("statuses = %v, want [404]", collector.statuses)
	}
	if len(collector.latencies) != 1 {
		t.Errorf("latencies len = %d, want 1", len(collector.latencies))
	}
}

// TestMetricsMiddleware_DefaultStatusIs200 はWriteHeader未呼び出しの場合に
// 200として記録されることを検証する。
func TestMetricsMiddleware_DefaultStatusIs200(t *testing.T) {
	collector := &recordingCollector{}
	handler := NewMetricsMiddleware(collector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/campers", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if len(collector.statuses) != 1 || collector.statuses[0] != http.StatusOK {
		t.Errorf("statuses = %v, want [200]", collector.statuses)
	}
}
