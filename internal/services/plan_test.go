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

func newPlanFixture(t *testing.T) (PlanService, repos.LearningPlanRepo, repos.LearningProgressRepo) {
	t.Helper()
	db := newTestDB(t, &types.LearningPlan{}, &types.LearningProgress{})
	log := logger.NewNop()
	planRepo := repos.NewLearningPlanRepo(db, log)
	progressRepo := repos.NewLearningProgressRepo(db, log)
	return NewPlanService(db, log, planRepo, progressRepo), planRepo, progressRepo
}

func TestPlanCreateDerivesTaskCompletion(t *testing.T) {
	svc, _, _ := newPlanFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &types.LearningPlan{
		UserID:       uuid.New(),
		ProgressName: "golang",
		Title:        "learn go",
		Tasks: types.PlanTaskList{
			{Title: "done", Completed: false, Steps: []types.PlanStep{{Name: "s", Checked: true}}},
			{Title: "pending", Completed: true, Steps: []types.PlanStep{{Name: "s", Checked: false}}},
			{Title: "stepless", Completed: true},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.Tasks[0].Completed {
		t.Fatalf("all-checked task must be complete")
	}
	if created.Tasks[1].Completed || created.Tasks[2].Completed {
		t.Fatalf("unchecked or stepless tasks must be incomplete: %+v", created.Tasks)
	}
}

func TestPlanUpdateReplacesWholesaleAndReturnsNotFound(t *testing.T) {
	svc, _, _ := newPlanFixture(t)
	ctx := context.Background()

	if _, err := svc.Update(ctx, uuid.New(), &types.LearningPlan{}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound got %v", err)
	}

	created, err := svc.Create(ctx, &types.LearningPlan{
		UserID:       uuid.New(),
		ProgressName: "sql",
		Title:        "old title",
		Tasks:        types.PlanTaskList{{Title: "a"}, {Title: "b"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, &types.LearningPlan{
		Title:         "new title",
		Priority:      "high",
		DurationValue: 3,
		DurationUnit:  "weeks",
		Tasks:         types.PlanTaskList{{Title: "c", Steps: []types.PlanStep{{Name: "s", Checked: true}}}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "new title" || updated.Priority != "high" {
		t.Fatalf("fields must be replaced: %+v", updated)
	}
	if len(updated.Tasks) != 1 || updated.Tasks[0].Title != "c" {
		t.Fatalf("task list is replaced, not merged: %+v", updated.Tasks)
	}
	if !updated.Tasks[0].Completed {
		t.Fatalf("completion must be re-derived on update")
	}
}

// The completed flag is driven by the latest progress record for the
// activity name across ALL users, and applied to the plans of whichever user
// owns that record. Another user's plans for the same activity name are left
// alone even when their own progress differs.
func TestUpdateIsCompletedForPlansUsesLatestProgressAcrossUsers(t *testing.T) {
	svc, planRepo, progressRepo := newPlanFixture(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	alicePlan := seedPlan(t, planRepo, alice, "golang", types.PlanTaskList{{Title: "a"}})
	bobPlan := seedPlan(t, planRepo, bob, "golang", types.PlanTaskList{{Title: "b"}})

	base := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	aliceProgress := &types.LearningProgress{
		ID: uuid.New(), UserID: alice, ProgressName: "golang",
		ProgressPercentage: 0, CreatedAt: base.Add(-time.Hour),
	}
	bobProgress := &types.LearningProgress{
		ID: uuid.New(), UserID: bob, ProgressName: "golang",
		ProgressPercentage: 100, CreatedAt: base,
	}
	if _, err := progressRepo.Create(ctx, nil, []*types.LearningProgress{aliceProgress, bobProgress}); err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	if err := svc.UpdateIsCompletedForPlans(ctx, "golang"); err != nil {
		t.Fatalf("update completed: %v", err)
	}

	reloadedBob, _ := planRepo.GetByIDs(ctx, nil, []uuid.UUID{bobPlan.ID})
	if !reloadedBob[0].IsCompleted {
		t.Fatalf("latest progress is at 100%%, bob's plan must be completed")
	}
	reloadedAlice, _ := planRepo.GetByIDs(ctx, nil, []uuid.UUID{alicePlan.ID})
	if reloadedAlice[0].IsCompleted {
		t.Fatalf("alice's plan must be untouched when bob owns the latest record")
	}
}

func TestUpdateIsCompletedForPlansNoProgressIsNoOp(t *testing.T) {
	svc, _, _ := newPlanFixture(t)
	if err := svc.UpdateIsCompletedForPlans(context.Background(), "unknown"); err != nil {
		t.Fatalf("no progress for activity must be a no-op, got %v", err)
	}
}

func TestPlanDeleteIsSilentWhenAbsent(t *testing.T) {
	svc, _, _ := newPlanFixture(t)
	ctx := context.Background()

	deleted, err := svc.Delete(ctx, uuid.New())
	if err != nil || deleted {
		t.Fatalf("expected silent no-op, got %v %v", deleted, err)
	}

	created, err := svc.Create(ctx, &types.LearningPlan{UserID: uuid.New(), ProgressName: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	deleted, err = svc.Delete(ctx, created.ID)
	if err != nil || !deleted {
		t.Fatalf("expected delete, got %v %v", deleted, err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("plan must be gone, got %v", err)
	}
}
