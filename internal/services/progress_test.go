package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillhive/skillhive-backend/internal/logger"
	"github.com/skillhive/skillhive-backend/internal/repos"
	"github.com/skillhive/skillhive-backend/internal/types"
)

func newProgressFixture(t *testing.T) (ProgressService, repos.LearningProgressRepo, repos.LearningPlanRepo) {
	t.Helper()
	db := newTestDB(t, &types.LearningProgress{}, &types.LearningPlan{})
	log := logger.NewNop()
	progressRepo := repos.NewLearningProgressRepo(db, log)
	planRepo := repos.NewLearningPlanRepo(db, log)
	planSync := NewPlanSyncService(db, log, planRepo)
	return NewProgressService(db, log, progressRepo, planSync), progressRepo, planRepo
}

func TestProgressCreateComputesPercentageAndSyncsPlan(t *testing.T) {
	svc, _, planRepo := newProgressFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	plan := seedPlan(t, planRepo, userID, "golang", types.PlanTaskList{
		{Title: "basics", Steps: []types.PlanStep{{Name: "tour", Checked: true}}},
	})

	created, err := svc.Create(ctx, &types.LearningProgress{
		UserID:             userID,
		ProgressName:       "golang",
		ProgressPercentage: 1, // client value, must be discarded
		Tasks: types.ProgressTaskList{
			{"title": "basics", "completed": true},
			{"title": "concurrency", "completed": false},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ProgressPercentage != 50 {
		t.Fatalf("expected 50%% got %d", created.ProgressPercentage)
	}
	if created.ID == uuid.Nil || created.CreatedAt.IsZero() {
		t.Fatalf("id and createdAt must be assigned")
	}

	reloaded, _ := planRepo.GetByIDs(ctx, nil, []uuid.UUID{plan.ID})
	if len(reloaded[0].Tasks) != 2 {
		t.Fatalf("plan must be rebuilt from progress tasks, got %+v", reloaded[0].Tasks)
	}
	if len(reloaded[0].Tasks[0].Steps) != 1 {
		t.Fatalf("matching task must keep its steps")
	}
}

func TestProgressUpdateRecomputesAndReturnsNotFoundWhenAbsent(t *testing.T) {
	svc, _, _ := newProgressFixture(t)
	ctx := context.Background()

	if _, err := svc.Update(ctx, uuid.New(), &types.LearningProgress{}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound got %v", err)
	}

	created, err := svc.Create(ctx, &types.LearningProgress{
		UserID:       uuid.New(),
		ProgressName: "sql",
		Tasks:        types.ProgressTaskList{{"title": "joins", "completed": false}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, &types.LearningProgress{
		UserID:       created.UserID,
		ProgressName: "sql",
		Tasks: types.ProgressTaskList{
			{"title": "joins", "completed": true},
			{"title": "indexes", "completed": true},
			{"title": "views", "completed": false},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ProgressPercentage != 67 {
		t.Fatalf("expected 67%% got %d", updated.ProgressPercentage)
	}
}

func TestProgressGetLatestAndCheckDuplicate(t *testing.T) {
	svc, progressRepo, _ := newProgressFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.GetLatest(ctx, userID, "none"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound got %v", err)
	}
	exists, err := svc.CheckDuplicate(ctx, userID, "none")
	if err != nil || exists {
		t.Fatalf("expected no duplicate, got %v %v", exists, err)
	}

	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	older := &types.LearningProgress{ID: uuid.New(), UserID: userID, ProgressName: "golang", CreatedAt: base.Add(-time.Hour)}
	newer := &types.LearningProgress{ID: uuid.New(), UserID: userID, ProgressName: "golang", CreatedAt: base}
	if _, err := progressRepo.Create(ctx, nil, []*types.LearningProgress{older, newer}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	latest, err := svc.GetLatest(ctx, userID, "golang")
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if latest.ID != newer.ID {
		t.Fatalf("expected newest record, got %s", latest.ID)
	}

	exists, err = svc.CheckDuplicate(ctx, userID, "golang")
	if err != nil || !exists {
		t.Fatalf("expected duplicate, got %v %v", exists, err)
	}
}

func TestProgressDeleteCascadesTaskRemovalAndIsSilentWhenAbsent(t *testing.T) {
	svc, _, planRepo := newProgressFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	if err := svc.Delete(ctx, uuid.New()); err != nil {
		t.Fatalf("deleting a missing record must be silent, got %v", err)
	}

	plan := seedPlan(t, planRepo, userID, "react", types.PlanTaskList{
		{Title: "components"},
		{Title: "hooks"},
	})
	created, err := svc.Create(ctx, &types.LearningProgress{
		UserID:       userID,
		ProgressName: "react",
		Tasks:        types.ProgressTaskList{{"title": "hooks"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("record must be gone, got %v", err)
	}
	reloaded, _ := planRepo.GetByIDs(ctx, nil, []uuid.UUID{plan.ID})
	for _, task := range reloaded[0].Tasks {
		if task.Title == "hooks" {
			t.Fatalf("deleted progress titles must be removed from the plan: %+v", reloaded[0].Tasks)
		}
	}
}
