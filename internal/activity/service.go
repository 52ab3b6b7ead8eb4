// Package activity はアクティビティ管理のドメインロジックを提供する。
package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/camproster/internal/metrics"
	"github.com/hitoshi/camproster/internal/model"
	"github.com/hitoshi/camproster/internal/repository"
)

// Service はアクティビティ管理のサービス層。
// 一覧取得、取得、作成、カスケード削除のビジネスロジックを提供する。
type Service struct {
	activityRepo repository.ActivityRepository
	signupRepo   repository.SignupRepository
	collector    metrics.MetricsCollector
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	activityRepo repository.ActivityRepository,
	signupRepo repository.SignupRepository,
	collector metrics.MetricsCollector,
) *Service {
	return &Service{
		activityRepo: activityRepo,
		signupRepo:   signupRepo,
		collector:    collector,
	}
}

// List は全アクティビティを返す。1件も存在しない場合はNotFoundErrorを返す（現行契約）。
func (s *Service) List(ctx context.Context) ([]*model.Activity, error) {
	activities, err := s.activityRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	if len(activities) == 0 {
		return nil, model.NewActivityNotFoundError()
	}
	return activities, nil
}

// Get は指定IDのアクティビティを返す。
func (s *Service) Get(ctx context.Context, id int64) (*model.Activity, error) {
	a, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}
	if a == nil {
		return nil, model.NewActivityNotFoundError()
	}
	return a, nil
}

// Create はアクティビティを作成する。
// nameとdifficultyにエンティティレベルの検証は行わない（現行契約）。
func (s *Service) Create(ctx context.Context, name string, difficulty int) (*model.Activity, error) {
	a := model.NewActivity(name, difficulty)

	if err := s.activityRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	s.collector.RecordActivityCreated()
	return a, nil
}

// Delete はアクティビティを削除する。
// 所有する全サインアップはスキーマのON DELETE CASCADEにより同一操作で削除される。
func (s *Service) Delete(ctx context.Context, id int64) error {
	a, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find activity: %w", err)
	}
	if a == nil {
		return model.NewActivityNotFoundError()
	}

	cascaded, err := s.signupRepo.CountByActivityID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count signups: %w", err)
	}

	if err := s.activityRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	s.collector.RecordSignupsCascadeDeleted(cascaded)
	slog.Info("アクティビティを削除しました",
		slog.Int64("activity_id", id),
		slog.Int("cascaded_signups", cascaded),
	)
	return nil
}
