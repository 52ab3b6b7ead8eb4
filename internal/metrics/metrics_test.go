package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// TestNewCollector_ReturnsNonNil はCollectorが正常に生成されることを検証する。
func TestNewCollector_ReturnsNonNil(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	if c == nil {
		t.Fatal("expected non-nil Collector")
	}
}

// counterValue は指定メトリクスのカウンター値を取得するヘルパー。
func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range metrics {
		if mf.GetName() == name {
			if len(mf.GetMetric()) != 1 {
				t.Fatalf("expected 1 metric for %s, got %d", name, len(mf.GetMetric()))
			}
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

// TestRecordCamperCreated_IncrementsCounter は作成カウンタが増加することを検証する。
func TestRecordCamperCreated_IncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordCamperCreated()
	c.RecordCamperCreated()

	if got := counterValue(t, reg, "camproster_campers_created_total"); got != 2 {
		t.Errorf("campers_created_total = %v, want 2", got)
	}
}

// TestRecordSignupsCascadeDeleted_AddsCount はカスケード削除数が
// 加算されることを検証する。
func TestRecordSignupsCascadeDeleted_AddsCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordSignupsCascadeDeleted(3)
	c.RecordSignupsCascadeDeleted(2)

	if got := counterValue(t, reg, "camproster_signups_cascade_deleted_total"); got != 5 {
		t.Errorf("cascade_deleted_total = %v, want 5", got)
	}
}

// TestRecordHTTPStatus_LabelsByCode はステータスコード別にラベル付けされることを検証する。
func TestRecordHTTPStatus_LabelsByCode(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(404)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range metrics {
		if mf.GetName() != "camproster_http_status_total" {
			continue
		}
		found = true
		if len(mf.GetMetric()) != 2 {
			t.Fatalf("expected 2 labeled metrics, got %d", len(mf.GetMetric()))
		}
	}
	if !found {
		t.Error("camproster_http_status_total metric not found")
	}
}

// TestHandler_ServesPrometheusFormat はスクレイプエンドポイントが
// 登録済みメトリクスをテキスト形式で公開することを検証する。
func TestHandler_ServesPrometheusFormat(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordSignupCreated()
	c.RecordRequestLatency(5 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body, err := io.ReadAll(w.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if !strings.Contains(string(body), "camproster_signups_created_total 1") {
		t.Errorf("expected signups_created_total in scrape output:\n%s", body)
	}
	if !strings.Contains(string(body), "camproster_request_latency_seconds") {
		t.Errorf("expected request_latency_seconds in scrape output")
	}
}
