package activity

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/camproster/internal/metrics"
	"github.com/hitoshi/camproster/internal/model"
	"github.com/hitoshi/camproster/internal/repository"
)

// --- モック ---

type mockActivityRepo struct {
	listAllFn    func(ctx context.Context) ([]*model.Activity, error)
	findByIDFn   func(ctx context.Context, id int64) (*model.Activity, error)
	createFn     func(ctx context.Context, a *model.Activity) error
	deleteByIDFn func(ctx context.Context, id int64) error
}

func (m *mockActivityRepo) ListAll(ctx context.Context) ([]*model.Activity, error) {
	return m.listAllFn(ctx)
}
func (m *mockActivityRepo) FindByID(ctx context.Context, id int64) (*model.Activity, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockActivityRepo) Create(ctx context.Context, a *model.Activity) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}
func (m *mockActivityRepo) DeleteByID(ctx context.Context, id int64) error {
	if m.deleteByIDFn != nil {
		return m.deleteByIDFn(ctx, id)
	}
	return nil
}

type mockSignupRepo struct {
	countByActivityIDFn func(ctx context.Context, activityID int64) (int, error)
}

func (m *mockSignupRepo) Create(ctx context.Context, s *model.Signup) error {
	return nil
}
func (m *mockSignupRepo) ListByCamperID(ctx context.Context, camperID int64) ([]repository.SignupWithActivity, error) {
	return nil, nil
}
func (m *mockSignupRepo) CountByActivityID(ctx context.Context, activityID int64) (int, error) {
	if m.countByActivityIDFn != nil {
		return m.countByActivityIDFn(ctx, activityID)
	}
	return 0, nil
}
func (m *mockSignupRepo) CountByCamperID(ctx context.Context, camperID int64) (int, error) {
	return 0, nil
}

type recordingCollector struct {
	metrics.NopCollector
	cascadeDeleted []int
}

func (c *recordingCollector) RecordSignupsCascadeDeleted(count int) {
	c.cascadeDeleted = append(c.cascadeDeleted, count)
}

// --- テスト ---

// TestList_EmptyReturnsNotFound はアクティビティが1件も存在しない場合に
// NotFoundErrorが返る現行契約を検証する。
func TestList_EmptyReturnsNotFound(t *testing.T) {
	repo := &mockActivityRepo{
		listAllFn: func(ctx context.Context) ([]*model.Activity, error) {
			return []*model.Activity{}, nil
		},
	}
	svc := NewService(repo, &mockSignupRepo{}, &metrics.NopCollector{})

	_, err := svc.List(context.Background())
	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
	if notFound.Entity != "Activity" {
		t.Errorf("entity = %q, want %q", notFound.Entity, "Activity")
	}
}

// TestGet_ReturnsActivity は指定IDのアクティビティが返ることを検証する。
func TestGet_ReturnsActivity(t *testing.T) {
	repo := &mockActivityRepo{
		findByIDFn: func(ctx context.Context, id int64) (*model.Activity, error) {
			return &model.Activity{ID: id, Name: "Archery", Difficulty: 2}, nil
		},
	}
	svc := NewService(repo, &mockSignupRepo{}, &metrics.NopCollector{})

	a, err := svc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name != "Archery" || a.Difficulty != 2 {
		t.Errorf("activity = (%q, %d), want (Archery, 2)", a.Name, a.Difficulty)
	}
}

// TestGet_NotFound は存在しないIDでNotFoundErrorが返ることを検証する。
func TestGet_NotFound(t *testing.T) {
	repo := &mockActivityRepo{
		findByIDFn: func(ctx context.Context, id int64) (*model.Activity, error) {
			return nil, nil
		},
	}
	svc := NewService(repo, &mockSignupRepo{}, &metrics.NopCollector{})

	_, err := svc.Get(context.Background(), 999)
	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
}

// TestCreate_AssignsStorageID は作成時にストレージ割り当てIDが反映されることを検証する。
func TestCreate_AssignsStorageID(t *testing.T) {
	repo := &mockActivityRepo{
		createFn: func(ctx context.Context, a *model.Activity) error {
			a.ID = 11
			return nil
		},
	}
	svc := NewService(repo, &mockSignupRepo{}, &metrics.NopCollector{})

	a, err := svc.Create(context.Background(), "Canoeing", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != 11 {
		t.Errorf("ID = %d, want 11", a.ID)
	}
}

// TestDelete_CascadeCountRecorded は削除時に所有サインアップ数が
// カスケード削除メトリクスとして記録されることを検証する。
func TestDelete_CascadeCountRecorded(t *testing.T) {
	deleted := false
	repo := &mockActivityRepo{
		findByIDFn: func(ctx context.Context, id int64) (*model.Activity, error) {
			return &model.Activity{ID: id, Name: "Archery", Difficulty: 2}, nil
		},
		deleteByIDFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	signupRepo := &mockSignupRepo{
		countByActivityIDFn: func(ctx context.Context, activityID int64) (int, error) {
			return 5, nil
		},
	}
	collector := &recordingCollector{}
	svc := NewService(repo, signupRepo, collector)

	if err := svc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("repo.DeleteByID was not called")
	}
	if len(collector.cascadeDeleted) != 1 || collector.cascadeDeleted[0] != 5 {
		t.Errorf("cascadeDeleted = %v, want [5]", collector.cascadeDeleted)
	}
}

// TestDelete_NotFound は存在しないアクティビティの削除でNotFoundErrorが返ることを検証する。
func TestDelete_NotFound(t *testing.T) {
	repo := &mockActivityRepo{
		findByIDFn: func(ctx context.Context, id int64) (*model.Activity, error) {
			return nil, nil
		},
	}
	svc := NewService(repo, &mockSignupRepo{}, &metrics.NopCollector{})

	err := svc.Delete(context.Background(), 999)
	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
}
