// Package camper はキャンパー管理のドメインロジックを提供する。
package camper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/camproster/internal/metrics"
	"github.com/hitoshi/camproster/internal/model"
	"github.com/hitoshi/camproster/internal/repository"
)

// CamperDetail はキャンパーとそのサインアップ一覧（アクティビティ概要付き）を
// 結合したドメインオブジェクト。キャンパー詳細ビューの構築に使用する。
type CamperDetail struct {
	Camper  model.Camper
	Signups []repository.SignupWithActivity
}

// Service はキャンパー管理のサービス層。
// 一覧取得、詳細取得、作成、部分更新、削除のビジネスロジックを提供する。
type Service struct {
	camperRepo repository.CamperRepository
	signupRepo repository.SignupRepository
	collector  metrics.MetricsCollector
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	camperRepo repository.CamperRepository,
	signupRepo repository.SignupRepository,
	collector metrics.MetricsCollector,
) *Service {
	return &Service{
		camperRepo: camperRepo,
		signupRepo: signupRepo,
		collector:  collector,
	}
}

// List は全キャンパーを返す。1件も存在しない場合はNotFoundErrorを返す（現行契約）。
func (s *Service) List(ctx context.Context) ([]*model.Camper, error) {
	campers, err := s.camperRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campers: %w", err)
	}
	if len(campers) == 0 {
		return nil, model.NewCamperNotFoundError()
	}
	return campers, nil
}

// Get はキャンパー詳細（サインアップ一覧付き）を返す。
func (s *Service) Get(ctx context.Context, id int64) (*CamperDetail, error) {
	c, err := s.camperRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find camper: %w", err)
	}
	if c == nil {
		return nil, model.NewCamperNotFoundError()
	}

	signups, err := s.signupRepo.ListByCamperID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}

	return &CamperDetail{Camper: *c, Signups: signups}, nil
}

// Create はキャンパーを検証のうえ作成する。
func (s *Service) Create(ctx context.Context, name string, age int) (*model.Camper, error) {
	c, err := model.NewCamper(name, age)
	if err != nil {
		return nil, err
	}

	if err := s.camperRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create camper: %w", err)
	}

	s.collector.RecordCamperCreated()
	return c, nil
}

// Update は部分フィールドマップでキャンパーを更新する。
// いずれかのフィールドが検証に失敗した場合、ストレージには何も書き込まれない。
func (s *Service) Update(ctx context.Context, id int64, fields map[string]any) (*model.Camper, error) {
	c, err := s.camperRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find camper: %w", err)
	}
	if c == nil {
		return nil, model.NewCamperNotFoundError()
	}

	// ボディの欠落・空は存在確認の後で拒否する（404が400より優先）
	if len(fields) == 0 {
		return nil, model.NewValidationError("update body is missing or empty")
	}

	if err := c.ApplyUpdates(fields); err != nil {
		return nil, err
	}

	if err := s.camperRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update camper: %w", err)
	}

	return c, nil
}

// Delete はキャンパーを削除する。
// 所有する全サインアップはスキーマのON DELETE CASCADEにより同一操作で削除される。
func (s *Service) Delete(ctx context.Context, id int64) error {
	c, err := s.camperRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find camper: %w", err)
	}
	if c == nil {
		return model.NewCamperNotFoundError()
	}

	cascaded, err := s.signupRepo.CountByCamperID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count signups: %w", err)
	}

	if err := s.camperRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete camper: %w", err)
	}

	s.collector.RecordSignupsCascadeDeleted(cascaded)
	slog.Info("キャンパーを削除しました",
		slog.Int64("camper_id", id),
		slog.Int("cascaded_signups", cascaded),
	)
	return nil
}
