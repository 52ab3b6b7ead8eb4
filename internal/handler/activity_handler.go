package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/camproster/internal/model"
)

// ActivityServiceInterface はアクティビティハンドラーが必要とするサービスインターフェース。
type ActivityServiceInterface interface {
	// List は全アクティビティを返す。1件も存在しない場合はNotFoundErrorを返す。
	List(ctx context.Context) ([]*model.Activity, error)
	// Get は指定IDのアクティビティを返す。
	Get(ctx context.Context, id int64) (*model.Activity, error)
	// Create はアクティビティを作成する。
	Create(ctx context.Context, name string, difficulty int) (*model.Activity, error)
	// Delete はアクティビティと所有する全サインアップを削除する。
	Delete(ctx context.Context, id int64) error
}

// ActivityHandler はアクティビティ管理のHTTPハンドラー。
type ActivityHandler struct {
	service ActivityServiceInterface
}

// NewActivityHandler はActivityHandlerを生成する。
func NewActivityHandler(service ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// createActivityRequest はアクティビティ作成リクエストのボディ。
type createActivityRequest struct {
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
}

// ListActivities は全アクティビティの概要一覧を返す。
// GET /activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	summaries := make([]activitySummaryResponse, len(activities))
	for i, a := range activities {
		summaries[i] = toActivitySummary(a)
	}

	writeJSON(w, http.StatusOK, summaries)
}

// GetActivity はアクティビティ概要を返す。
// GET /activities/{id}
//
// アクティビティ詳細ビューにsignupsはネストしない（キャンパー詳細と
// サインアップ作成レスポンスのみがネストを持つ）。
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(chi.URLParam(r, "id"))
	if !ok {
		writeNotFound(w, model.NewActivityNotFoundError())
		return
	}

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivitySummary(a))
}

// CreateActivity はアクティビティ作成を処理する。
// POST /activities
//
// nameまたはdifficultyが欠落・空・ゼロの場合はバリデーションエラー
// （元契約のfalsy判定を維持。difficulty=0も欠落として扱う）。
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationErrors(w)
		return
	}

	if req.Name == "" || req.Difficulty == 0 {
		writeValidationErrors(w)
		return
	}

	a, err := h.service.Create(r.Context(), req.Name, req.Difficulty)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toActivitySummary(a))
}

// DeleteActivity はアクティビティとその全サインアップを削除する。
// DELETE /activities/{id}
func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(chi.URLParam(r, "id"))
	if !ok {
		writeNotFound(w, model.NewActivityNotFoundError())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
