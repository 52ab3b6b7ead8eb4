// Package model はドメインモデルを定義する。
package model

import "fmt"

// NotFoundError は指定されたエンティティが存在しないことを表す。
// APIレイヤーで404レスポンスに変換される。
type NotFoundError struct {
	Entity string // "Camper" / "Activity" など、レスポンスボディに表示するエンティティ名
}

// Error はerrorインターフェースを実装する。
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// ValidationError はフィールド不変条件の違反を表す。
// APIレイヤーで400レスポンスに変換される。Reasonはログ専用であり、
// クライアントには一般的なメッセージのみを返す（フィールドの内訳は公開しない）。
type ValidationError struct {
	Reason string
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// NewValidationError はバリデーションエラーを生成する。
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// NewCamperNotFoundError はキャンパー未検出エラーを生成する。
func NewCamperNotFoundError() *NotFoundError {
	return &NotFoundError{Entity: "Camper"}
}

// NewActivityNotFoundError はアクティビティ未検出エラーを生成する。
func NewActivityNotFoundError() *NotFoundError {
	return &NotFoundError{Entity: "Activity"}
}
