// Package handler はHTTPハンドラーとルーティングを提供する。
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hitoshi/camproster/internal/camper"
	"github.com/hitoshi/camproster/internal/model"
	"github.com/hitoshi/camproster/internal/repository"
	"github.com/hitoshi/camproster/internal/signup"
)

// エンティティグラフは循環参照（Camper → Signup → Camper → …）を含むため、
// シリアライズはビューごとの明示的なレスポンス構造体で行う。
// 到達可能なものをすべて辿る汎用シリアライザは使用しない。

// camperSummaryResponse はキャンパー概要ビュー。
// 一覧・作成・更新レスポンスで使用し、ネストした関連は含まない。
type camperSummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// activitySummaryResponse はアクティビティ概要ビュー。
// ネストされる場合もsignupsは含まない（循環の切断）。
type activitySummaryResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
}

// signupWithActivityResponse はキャンパー詳細ビュー内のサインアップ表現。
// ネストしたアクティビティ概要を含むが、その中にsignupsは含まれない。
type signupWithActivityResponse struct {
	ID         int64                   `json:"id"`
	Time       int                     `json:"time"`
	CamperID   int64                   `json:"camper_id"`
	ActivityID int64                   `json:"activity_id"`
	Activity   activitySummaryResponse `json:"activity"`
}

// camperDetailResponse はキャンパー詳細ビュー。
type camperDetailResponse struct {
	ID      int64                        `json:"id"`
	Name    string                       `json:"name"`
	Age     int                          `json:"age"`
	Signups []signupWithActivityResponse `json:"signups"`
}

// signupCreatedResponse はサインアップ作成レスポンス。
// キャンパー概要とアクティビティ概要の両方をネストする（いずれもsignupsは含まない）。
type signupCreatedResponse struct {
	ID         int64                   `json:"id"`
	CamperID   int64                   `json:"camper_id"`
	ActivityID int64                   `json:"activity_id"`
	Time       int                     `json:"time"`
	Camper     camperSummaryResponse   `json:"camper"`
	Activity   activitySummaryResponse `json:"activity"`
}

// notFoundResponse は404レスポンスのボディ。
type notFoundResponse struct {
	Error string `json:"error"`
}

// validationErrorResponse は400レスポンスのボディ。
// フィールドの内訳は公開せず、常に一般的なメッセージのみを返す。
type validationErrorResponse struct {
	Errors []string `json:"errors"`
}

// toCamperSummary はCamperをキャンパー概要ビューに射影する。
func toCamperSummary(c *model.Camper) camperSummaryResponse {
	return camperSummaryResponse{
		ID:   c.ID,
		Name: c.Name,
		Age:  c.Age,
	}
}

// toActivitySummary はActivityをアクティビティ概要ビューに射影する。
func toActivitySummary(a *model.Activity) activitySummaryResponse {
	return activitySummaryResponse{
		ID:         a.ID,
		Name:       a.Name,
		Difficulty: a.Difficulty,
	}
}

// toCamperDetail はキャンパー詳細をビューに射影する。
// サインアップが存在しない場合もsignupsフィールドは空配列として出力する。
func toCamperDetail(detail *camper.CamperDetail) camperDetailResponse {
	signups := make([]signupWithActivityResponse, len(detail.Signups))
	for i, sw := range detail.Signups {
		signups[i] = toSignupWithActivity(sw)
	}

	return camperDetailResponse{
		ID:      detail.Camper.ID,
		Name:    detail.Camper.Name,
		Age:     detail.Camper.Age,
		Signups: signups,
	}
}

// toSignupWithActivity はサインアップとアクティビティ概要の結合をビューに射影する。
func toSignupWithActivity(sw repository.SignupWithActivity) signupWithActivityResponse {
	return signupWithActivityResponse{
		ID:         sw.ID,
		Time:       sw.Time,
		CamperID:   sw.CamperID,
		ActivityID: sw.ActivityID,
		Activity: activitySummaryResponse{
			ID:         sw.ActivityID,
			Name:       sw.ActivityName,
			Difficulty: sw.ActivityDifficulty,
		},
	}
}

// toSignupCreated はサインアップ作成結果をビューに射影する。
func toSignupCreated(detail *signup.SignupDetail) signupCreatedResponse {
	return signupCreatedResponse{
		ID:         detail.Signup.ID,
		CamperID:   detail.Signup.CamperID,
		ActivityID: detail.Signup.ActivityID,
		Time:       detail.Signup.Time,
		Camper:     toCamperSummary(&detail.Camper),
		Activity:   toActivitySummary(&detail.Activity),
	}
}

// writeJSON はJSONレスポンスを書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// writeNotFound は404レスポンスを書き込む。
func writeNotFound(w http.ResponseWriter, notFound *model.NotFoundError) {
	writeJSON(w, http.StatusNotFound, notFoundResponse{Error: notFound.Error()})
}

// writeValidationErrors は400レスポンスを書き込む。
// 契約により、どのフィールドが失敗したかはクライアントに公開しない。
func writeValidationErrors(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, validationErrorResponse{Errors: []string{"validation errors"}})
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		writeNotFound(w, notFound)
		return
	}

	var validation *model.ValidationError
	if errors.As(err, &validation) {
		// 詳細はログのみに記録する
		slog.Warn("validation failed", slog.String("reason", validation.Reason))
		writeValidationErrors(w)
		return
	}

	// 型付きエラー以外は内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

// parseIDParam はパスパラメータのIDを解析する。
// 整数として解析できないパスは該当エンティティが存在しないものとして扱う。
func parseIDParam(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
