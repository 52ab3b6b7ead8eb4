// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// サービス層とミドルウェアから利用する。
type MetricsCollector interface {
	RecordCamperCreated()
	RecordActivityCreated()
	RecordSignupCreated()
	RecordSignupsCascadeDeleted(count int)
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(duration time.Duration)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	campersCreated    prometheus.Counter
	activitiesCreated prometheus.Counter
	signupsCreated    prometheus.Counter
	cascadeDeleted    prometheus.Counter
	httpStatus        *prometheus.CounterVec
	requestLatency    prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		campersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "camproster_campers_created_total",
			Help: "作成されたキャンパーの合計数",
		}),
		activitiesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "camproster_activities_created_total",
			Help: "作成されたアクティビティの合計数",
		}),
		signupsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "camproster_signups_created_total",
			Help: "作成されたサインアップの合計数",
		}),
		cascadeDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "camproster_signups_cascade_deleted_total",
			Help: "親エンティティの削除によりカスケード削除されたサインアップの合計数",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "camproster_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "camproster_request_latency_seconds",
			Help:    "HTTPリクエストのレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.campersCreated,
		c.activitiesCreated,
		c.signupsCreated,
		c.cascadeDeleted,
		c.httpStatus,
		c.requestLatency,
	)

	return c
}

// RecordCamperCreated はキャンパー作成を記録する。
func (c *Collector) RecordCamperCreated() {
	c.campersCreated.Inc()
}

// RecordActivityCreated はアクティビティ作成を記録する。
func (c *Collector) RecordActivityCreated() {
	c.activitiesCreated.Inc()
}

// RecordSignupCreated はサインアップ作成を記録する。
func (c *Collector) RecordSignupCreated() {
	c.signupsCreated.Inc()
}

// RecordSignupsCascadeDeleted はカスケード削除されたサインアップ数を記録する。
func (c *Collector) RecordSignupsCascadeDeleted(count int) {
	c.cascadeDeleted.Add(float64(count))
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency はリクエストのレイテンシを記録する。
func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NopCollector は何も記録しないMetricsCollector実装。テスト用。
type NopCollector struct{}

func (NopCollector) RecordCamperCreated()                        {}
func (NopCollector) RecordActivityCreated()                      {}
func (NopCollector) RecordSignupCreated()                        {}
func (NopCollector) RecordSignupsCascadeDeleted(count int)       {}
func (NopCollector) RecordHTTPStatus(statusCode int)             {}
func (NopCollector) RecordRequestLatency(duration time.Duration) {}

// --- compile-time interface checks ---

var _ MetricsCollector = (*Collector)(nil)
var _ MetricsCollector = NopCollector{}
