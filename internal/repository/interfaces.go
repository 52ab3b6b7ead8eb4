// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/camproster/internal/model"
)

// CamperRepository はキャンパーデータの永続化インターフェース。
type CamperRepository interface {
	// ListAll は全キャンパーをID昇順で返す。
	ListAll(ctx context.Context) ([]*model.Camper, error)

	// FindByID は指定IDのキャンパーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Camper, error)

	// Create はキャンパーを作成し、ストレージが割り当てたIDをcに反映する。
	Create(ctx context.Context, c *model.Camper) error

	// Update はキャンパーのname/ageを更新する。
	Update(ctx context.Context, c *model.Camper) error

	// DeleteByID は指定IDのキャンパーを削除する。
	// 関連するsignupsはスキーマのON DELETE CASCADEにより同一操作で削除される。
	DeleteByID(ctx context.Context, id int64) error
}

// ActivityRepository はアクティビティデータの永続化インターフェース。
type ActivityRepository interface {
	// ListAll は全アクティビティをID昇順で返す。
	ListAll(ctx context.Context) ([]*model.Activity, error)

	// FindByID は指定IDのアクティビティを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Activity, error)

	// Create はアクティビティを作成し、ストレージが割り当てたIDをaに反映する。
	Create(ctx context.Context, a *model.Activity) error

	// DeleteByID は指定IDのアクティビティを削除する。
	// 関連するsignupsはスキーマのON DELETE CASCADEにより同一操作で削除される。
	DeleteByID(ctx context.Context, id int64) error
}

// SignupRepository はサインアップデータの永続化インターフェース。
type SignupRepository interface {
	// Create はサインアップを作成し、ストレージが割り当てたIDをsに反映する。
	Create(ctx context.Context, s *model.Signup) error

	// ListByCamperID は指定キャンパーのサインアップ一覧を
	// アクティビティ概要とJOINして返す。順序は保証しない。
	ListByCamperID(ctx context.Context, camperID int64) ([]SignupWithActivity, error)

	// CountByActivityID は指定アクティビティのサインアップ数を返す。
	CountByActivityID(ctx context.Context, activityID int64) (int, error)

	// CountByCamperID は指定キャンパーのサインアップ数を返す。
	CountByCamperID(ctx context.Context, camperID int64) (int, error)
}

// SignupWithActivity はサインアップとアクティビティ概要を結合した構造体。
// キャンパー詳細ビューの構築に使用する。
type SignupWithActivity struct {
	model.Signup
	ActivityName       string
	ActivityDifficulty int
}
