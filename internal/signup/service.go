// Package signup はサインアップ（参加登録）のドメインロジックを提供する。
package signup

import (
	"context"
	"fmt"

	"github.com/hitoshi/camproster/internal/metrics"
	"github.com/hitoshi/camproster/internal/model"
	"github.com/hitoshi/camproster/internal/repository"
)

// SignupDetail はサインアップと参照先のキャンパー・アクティビティを
// 結合したドメインオブジェクト。作成レスポンスのネスト表現に使用する。
type SignupDetail struct {
	Signup   model.Signup
	Camper   model.Camper
	Activity model.Activity
}

// Service はサインアップ管理のサービス層。
type Service struct {
	signupRepo   repository.SignupRepository
	camperRepo   repository.CamperRepository
	activityRepo repository.ActivityRepository
	collector    metrics.MetricsCollector
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	signupRepo repository.SignupRepository,
	camperRepo repository.CamperRepository,
	activityRepo repository.ActivityRepository,
	collector metrics.MetricsCollector,
) *Service {
	return &Service{
		signupRepo:   signupRepo,
		camperRepo:   camperRepo,
		activityRepo: activityRepo,
		collector:    collector,
	}
}

// Create はサインアップを作成する。
//
// 外部キーの解決はエンティティ自身の検証より先に行う:
// camper_id/activity_idのいずれかが存在しない場合はValidationErrorを返し、
// レコードは一切作成されない。
func (s *Service) Create(ctx context.Context, camperID, activityID int64, hour int) (*SignupDetail, error) {
	c, err := s.camperRepo.FindByID(ctx, camperID)
	if err != nil {
		return nil, fmt.Errorf("failed to find camper: %w", err)
	}
	if c == nil {
		return nil, model.NewValidationError(fmt.Sprintf("camper %d does not exist", camperID))
	}

	a, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}
	if a == nil {
		return nil, model.NewValidationError(fmt.Sprintf("activity %d does not exist", activityID))
	}

	sg, err := model.NewSignup(camperID, activityID, hour)
	if err != nil {
		return nil, err
	}

	if err := s.signupRepo.Create(ctx, sg); err != nil {
		return nil, fmt.Errorf("failed to create signup: %w", err)
	}

	s.collector.RecordSignupCreated()
	return &SignupDetail{Signup: *sg, Camper: *c, Activity: *a}, nil
}
