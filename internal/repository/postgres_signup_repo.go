package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/camproster/internal/model"
)

// PostgresSignupRepo はPostgreSQLを使用したサインアップリポジトリ。
type PostgresSignupRepo struct {
	db *sql.DB
}

// NewPostgresSignupRepo はPostgresSignupRepoを生成する。
func NewPostgresSignupRepo(db *sql.DB) *PostgresSignupRepo {
	return &PostgresSignupRepo{db: db}
}

// Create はサインアップを作成し、ストレージが割り当てたIDをsに反映する。
// camper_id/activity_idの存在確認は呼び出し側の責務（signupサービスが事前に解決する）。
func (r *PostgresSignupRepo) Create(ctx context.Context, s *model.Signup) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO signups (time, camper_id, activity_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		s.Time, s.CamperID, s.ActivityID, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to insert signup: %w", err)
	}

	return nil
}

// ListByCamperID は指定キャンパーのサインアップ一覧をアクティビティ概要とJOINして返す。
func (r *PostgresSignupRepo) ListByCamperID(ctx context.Context, camperID int64) ([]SignupWithActivity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.time, s.camper_id, s.activity_id, s.created_at, s.updated_at,
		        a.name, a.difficulty
		 FROM signups s
		 JOIN activities a ON a.id = s.activity_id
		 WHERE s.camper_id = $1`,
		camperID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list signups by camper: %w", err)
	}
	defer rows.Close()

	var signups []SignupWithActivity
	for rows.Next() {
		var sw SignupWithActivity
		if err := rows.Scan(
			&sw.ID, &sw.Time, &sw.CamperID, &sw.ActivityID, &sw.CreatedAt, &sw.UpdatedAt,
			&sw.ActivityName, &sw.ActivityDifficulty,
		); err != nil {
			return nil, fmt.Errorf("failed to scan signup: %w", err)
		}
		signups = append(signups, sw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate signups: %w", err)
	}

	return signups, nil
}

// CountByActivityID は指定アクティビティのサインアップ数を返す。
func (r *PostgresSignupRepo) CountByActivityID(ctx context.Context, activityID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM signups WHERE activity_id = $1`,
		activityID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count signups by activity: %w", err)
	}
	return count, nil
}

// CountByCamperID は指定キャンパーのサインアップ数を返す。
func (r *PostgresSignupRepo) CountByCamperID(ctx context.Context, camperID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM signups WHERE camper_id = $1`,
		camperID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count signups by camper: %w", err)
	}
	return count, nil
}

// compile-time interface check
var _ SignupRepository = (*PostgresSignupRepo)(nil)
