// Package model はドメインモデルを定義する。
package model

import "time"

// Activity はキャンプのアクティビティを表す。
// nameとdifficultyにはエンティティレベルの制約を課さない（現行の契約を維持）。
type Activity struct {
	ID         int64
	Name       string
	Difficulty int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewActivity はActivityを構築する。IDは永続化時にストレージが割り当てる。
func NewActivity(name string, difficulty int) *Activity {
	now := time.Now()
	return &Activity{
		Name:       name,
		Difficulty: difficulty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
