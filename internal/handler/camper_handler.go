package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/camproster/internal/camper"
	"github.com/hitoshi/camproster/internal/model"
)

// CamperServiceInterface はキャンパーハンドラーが必要とするサービスインターフェース。
type CamperServiceInterface interface {
	// List は全キャンパーを返す。1件も存在しない場合はNotFoundErrorを返す。
	List(ctx context.Context) ([]*model.Camper, error)
	// Get はキャンパー詳細（サインアップ一覧付き）を返す。
	Get(ctx context.Context, id int64) (*camper.CamperDetail, error)
	// Create はキャンパーを検証のうえ作成する。
	Create(ctx context.Context, name string, age int) (*model.Camper, error)
	// Update は部分フィールドマップでキャンパーを更新する。
	Update(ctx context.Context, id int64, fields map[string]any) (*model.Camper, error)
}

// CamperHandler はキャンパー管理のHTTPハンドラー。
type CamperHandler struct {
	service CamperServiceInterface
}

// NewCamperHandler はCamperHandlerを生成する。
func NewCamperHandler(service CamperServiceInterface) *CamperHandler {
	return &CamperHandler{service: service}
}

// createCamperRequest はキャンパー作成リクエストのボディ。
type createCamperRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// ListCampers は全キャンパーの概要一覧を返す。
// GET /campers
func (h *CamperHandler) ListCampers(w http.ResponseWriter, r *http.Request) {
	campers, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	summaries := make([]camperSummaryResponse, len(campers))
	for i, c := range campers {
		summaries[i] = toCamperSummary(c)
	}

	writeJSON(w, http.StatusOK, summaries)
}

// GetCamper はキャンパー詳細（サインアップとネストしたアクティビティ概要付き）を返す。
// GET /campers/{id}
func (h *CamperHandler) GetCamper(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(chi.URLParam(r, "id"))
	if !ok {
		writeNotFound(w, model.NewCamperNotFoundError())
		return
	}

	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCamperDetail(detail))
}

// CreateCamper はキャンパー作成を処理する。
// POST /campers
//
// nameまたはageが欠落・空・ゼロの場合はバリデーションエラー（元契約のfalsy判定を維持）。
func (h *CamperHandler) CreateCamper(w http.ResponseWriter, r *http.Request) {
	var req createCamperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationErrors(w)
		return
	}

	if req.Name == "" || req.Age == 0 {
		writeValidationErrors(w)
		return
	}

	c, err := h.service.Create(r.Context(), req.Name, req.Age)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCamperSummary(c))
}

// UpdateCamper はキャンパーの部分更新を処理する。
// PATCH /campers/{id}
//
// 成功時は202を返す（現行契約）。ボディが欠落または空の場合は400。
func (h *CamperHandler) UpdateCamper(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(chi.URLParam(r, "id"))
	if !ok {
		writeNotFound(w, model.NewCamperNotFoundError())
		return
	}

	// ボディの不備は存在確認の後に判定する（404が400より優先される現行契約）。
	// 解析できないボディは欠落と同様に扱い、サービス層でバリデーションエラーになる。
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		fields = nil
	}

	c, err := h.service.Update(r.Context(), id, fields)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, toCamperSummary(c))
}
