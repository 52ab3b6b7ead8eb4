package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/camproster/internal/model"
)

// PostgresActivityRepo はPostgreSQLを使用したアクティビティリポジトリ。
type PostgresActivityRepo struct {
	db *sql.DB
}

// NewPostgresActivityRepo はPostgresActivityRepoを生成する。
func NewPostgresActivityRepo(db *sql.DB) *PostgresActivityRepo {
	return &PostgresActivityRepo{db: db}
}

// ListAll は全アクティビティをID昇順で返す。
func (r *PostgresActivityRepo) ListAll(ctx context.Context) ([]*model.Activity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, difficulty, created_at, updated_at FROM activities ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*model.Activity
	for rows.Next() {
		a := &model.Activity{}
		if err := rows.Scan(&a.ID, &a.Name, &a.Difficulty, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}

	return activities, nil
}

// FindByID は指定IDのアクティビティを取得する。見つからない場合はnilを返す。
func (r *PostgresActivityRepo) FindByID(ctx context.Context, id int64) (*model.Activity, error) {
	a := &model.Activity{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, difficulty, created_at, updated_at FROM activities WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.Difficulty, &a.CreatedAt, &a.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find activity by ID: %w", err)
	}

	return a, nil
}

// Create はアクティビティを作成し、ストレージが割り当てたIDをaに反映する。
func (r *PostgresActivityRepo) Create(ctx context.Context, a *model.Activity) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO activities (name, difficulty, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		a.Name, a.Difficulty, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	return nil
}

// DeleteByID は指定IDのアクティビティを削除する。
// 関連するsignupsはON DELETE CASCADEにより同一ステートメントで削除される。
func (r *PostgresActivityRepo) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM activities WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("activity not found: %d", id)
	}
	return nil
}

// compile-time interface check
var _ ActivityRepository = (*PostgresActivityRepo)(nil)
