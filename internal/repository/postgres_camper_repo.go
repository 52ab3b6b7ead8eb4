package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/camproster/internal/model"
)

// PostgresCamperRepo はPostgreSQLを使用したキャンパーリポジトリ。
type PostgresCamperRepo struct {
	db *sql.DB
}

// NewPostgresCamperRepo はPostgresCamperRepoを生成する。
func NewPostgresCamperRepo(db *sql.DB) *PostgresCamperRepo {
	return &PostgresCamperRepo{db: db}
}

// ListAll は全キャンパーをID昇順で返す。
func (r *PostgresCamperRepo) ListAll(ctx context.Context) ([]*model.Camper, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, age, created_at, updated_at FROM campers ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list campers: %w", err)
	}
	defer rows.Close()

	var campers []*model.Camper
	for rows.Next() {
		c := &model.Camper{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Age, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan camper: %w", err)
		}
		campers = append(campers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate campers: %w", err)
	}

	return campers, nil
}

// FindByID は指定IDのキャンパーを取得する。見つからない場合はnilを返す。
func (r *PostgresCamperRepo) FindByID(ctx context.Context, id int64) (*model.Camper, error) {
	c := &model.Camper{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, age, created_at, updated_at FROM campers WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Age, &c.CreatedAt, &c.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find camper by ID: %w", err)
	}

	return c, nil
}

// Create はキャンパーを作成し、ストレージが割り当てたIDをcに反映する。
func (r *PostgresCamperRepo) Create(ctx context.Context, c *model.Camper) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO campers (name, age, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		c.Name, c.Age, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to insert camper: %w", err)
	}

	return nil
}

// Update はキャンパーのname/ageを更新する。
func (r *PostgresCamperRepo) Update(ctx context.Context, c *model.Camper) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE campers SET name = $1, age = $2, updated_at = $3 WHERE id = $4`,
		c.Name, c.Age, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update camper: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("camper not found: %d", c.ID)
	}
	return nil
}

// DeleteByID は指定IDのキャンパーを削除する。
// 関連するsignupsはON DELETE CASCADEにより同一ステートメントで削除される。
func (r *PostgresCamperRepo) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM campers WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete camper: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("camper not found: %d", id)
	}
	return nil
}

// compile-time interface check
var _ CamperRepository = (*PostgresCamperRepo)(nil)
