// Package model はドメインモデルを定義する。
package model

import (
	"fmt"
	"time"
)

// サインアップ時刻の制約（時間単位、両端を含む）。
const (
	SignupMinTime = 0
	SignupMaxTime = 23
)

// Signup はキャンパーがアクティビティに参加登録したことを表す。
// CamperID/ActivityIDは非所有の参照であり、参照先の存在確認は
// エンティティ自身ではなくオーケストレーション層（signupサービス）の責務。
type Signup struct {
	ID         int64
	Time       int // 開始時刻（0〜23時）
	CamperID   int64
	ActivityID int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateSignupTime はサインアップ時刻を検証し、受理した値を返す。
// 許容範囲は0〜23時（両端を含む）。
func ValidateSignupTime(hour int) (int, error) {
	if hour < SignupMinTime || hour > SignupMaxTime {
		return 0, NewValidationError(fmt.Sprintf("signup time must be between %d and %d, got %d", SignupMinTime, SignupMaxTime, hour))
	}
	return hour, nil
}

// NewSignup はフィールドバリデータを通過したSignupを構築する。
// IDは永続化時にストレージが割り当てる。
func NewSignup(camperID, activityID int64, hour int) (*Signup, error) {
	hour, err := ValidateSignupTime(hour)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Signup{
		Time:       hour,
		CamperID:   camperID,
		ActivityID: activityID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
