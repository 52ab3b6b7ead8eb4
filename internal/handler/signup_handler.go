package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/camproster/internal/signup"
)

// SignupServiceInterface はサインアップハンドラーが必要とするサービスインターフェース。
type SignupServiceInterface interface {
	// Create はサインアップを作成する。camper_id/activity_idは事前に解決され、
	// いずれかが存在しない場合はValidationErrorを返す。
	Create(ctx context.Context, camperID, activityID int64, hour int) (*signup.SignupDetail, error)
}

// SignupHandler はサインアップ管理のHTTPハンドラー。
type SignupHandler struct {
	service SignupServiceInterface
}

// NewSignupHandler はSignupHandlerを生成する。
func NewSignupHandler(service SignupServiceInterface) *SignupHandler {
	return &SignupHandler{service: service}
}

// createSignupRequest はサインアップ作成リクエストのボディ。
// Timeはポインタで受け、欠落と0時を区別する（0時は有効な値）。
type createSignupRequest struct {
	CamperID   int64 `json:"camper_id"`
	ActivityID int64 `json:"activity_id"`
	Time       *int  `json:"time"`
}

// CreateSignup はサインアップ作成を処理する。
// POST /signups
//
// camper_id/activity_idの欠落、timeの欠落または整数以外、参照先の不在は
// いずれもバリデーションエラーとして400を返し、レコードは作成されない。
func (h *SignupHandler) CreateSignup(w http.ResponseWriter, r *http.Request) {
	var req createSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// timeが整数以外（小数・文字列）の場合もここで拒否される
		writeValidationErrors(w)
		return
	}

	if req.CamperID == 0 || req.ActivityID == 0 || req.Time == nil {
		writeValidationErrors(w)
		return
	}

	detail, err := h.service.Create(r.Context(), req.CamperID, req.ActivityID, *req.Time)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSignupCreated(detail))
}
