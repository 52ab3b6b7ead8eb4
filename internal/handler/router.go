package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/camproster/internal/metrics"
	"github.com/hitoshi/camproster/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger            *slog.Logger
	Collector         metrics.MetricsCollector
	Gatherer          prometheus.Gatherer
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter

	// ドメインサービス
	CamperService   CamperServiceInterface
	ActivityService ActivityServiceInterface
	SignupService   SignupServiceInterface

	// 運用
	HealthChecker HealthChecker
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	RequestID → Logging → Metrics → CORS → SecurityHeaders → Recovery → RateLimit(General)
//
// 書き込み系エンドポイントには追加でRateLimit(Mutation)を適用する。
// /health と /metrics はレート制限の外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	r.Use(middleware.NewMetricsMiddleware(deps.Collector))
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewRecoveryMiddleware())

	camperHandler := NewCamperHandler(deps.CamperService)
	activityHandler := NewActivityHandler(deps.ActivityService)
	signupHandler := NewSignupHandler(deps.SignupService)
	healthHandler := NewHealthHandler(deps.HealthChecker)

	// --- 運用エンドポイント（レート制限の対象外） ---

	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", metrics.Handler(deps.Gatherer))

	// --- APIエンドポイント ---

	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())

		mutation := deps.RateLimiter.MutationMiddleware()

		// キャンパー管理
		r.Route("/campers", func(r chi.Router) {
			r.Get("/", camperHandler.ListCampers)
			r.With(mutation).Post("/", camperHandler.CreateCamper)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", camperHandler.GetCamper)
				r.With(mutation).Patch("/", camperHandler.UpdateCamper)
			})
		})

		// アクティビティ管理
		r.Route("/activities", func(r chi.Router) {
			r.Get("/", activityHandler.ListActivities)
			r.With(mutation).Post("/", activityHandler.CreateActivity)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", activityHandler.GetActivity)
				r.With(mutation).Delete("/", activityHandler.DeleteActivity)
			})
		})

		// サインアップ管理
		r.With(mutation).Post("/signups", signupHandler.CreateSignup)
	})

	return r
}
