package services

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/skillhive/skillhive-backend/internal/logger"
  "github.com/skillhive/skillhive-backend/internal/repos"
  "github.com/skillhive/skillhive-backend/internal/types"
)

type ProgressChangeKind string

const (
  ProgressCreated ProgressChangeKind = "created"
  ProgressUpdated ProgressChangeKind = "updated"
  ProgressDeleted ProgressChangeKind = "deleted"
)

// ProgressChanged carries everything the plan reconciliation needs about a
// progress mutation. The progress service builds one of these after each
// create, update and delete; nothing else flows between the two aggregates.
type ProgressChanged struct {
  Kind         ProgressChangeKind
  UserID       uuid.UUID
  ProgressName string
  Tasks        types.ProgressTaskList
}

// PlanSyncService keeps the latest plan for a (user, activity) pair aligned
// with the task titles of its governing progress record, without losing step
// detail the user already entered on tasks whose titles are unchanged.
//
// Apply is idempotent: replaying the same event produces the same plan task
// list. It is also best-effort by design — plans and progress records have no
// transactional link, so a failed sync is logged and swallowed and the
// triggering progress operation still succeeds. The two aggregates can
// diverge on partial failure; replaying the event heals them.
type PlanSyncService interface {
  Apply(ctx context.Context, event ProgressChanged)
}

type planSyncService struct {
  db       *gorm.DB
  log      *logger.Logger
  planRepo repos.LearningPlanRepo
}

func NewPlanSyncService(db *gorm.DB, log *logger.Logger, planRepo repos.LearningPlanRepo) PlanSyncService {
  serviceLog := log.With("service", "PlanSyncService")
  return &planSyncService{db: db, log: serviceLog, planRepo: planRepo}
}

func (s *planSyncService) Apply(ctx context.Context, event ProgressChanged) {
  if event.UserID == uuid.Nil || event.ProgressName == "" {
    return
  }

  plans, err := s.planRepo.GetByUserAndProgressName(ctx, nil, event.UserID, event.ProgressName)
  if err != nil {
    s.log.Warn("Plan sync: failed to load plans", "userID", event.UserID, "progressName", event.ProgressName, "error", err)
    return
  }
  plan := types.LatestPlan(plans)
  if plan == nil {
    // no plan to synchronize; not an error
    return
  }

  switch event.Kind {
  case ProgressDeleted:
    if len(event.Tasks) == 0 {
      return
    }
    plan.Tasks = removeTasksByTitle(plan.Tasks, event.Tasks.Titles())
  default:
    if len(event.Tasks) == 0 {
      return
    }
    plan.Tasks = mergeProgressTasks(event.Tasks, plan.Tasks)
  }

  plan.Tasks.DeriveCompletion()
  plan.UpdatedAt = time.Now().UTC()
  if err := s.planRepo.Save(ctx, nil, plan); err != nil {
    s.log.Warn("Plan sync: failed to persist plan", "planID", plan.ID, "error", err)
  }
}

// mergeProgressTasks rebuilds a plan task list in the order of the progress
// record's tasks. A plan task whose title survives keeps its steps; a new
// title starts with an empty step list. Titles absent from the progress
// record are dropped. The completed flag carried on the progress entry is a
// placeholder only: DeriveCompletion overrides it from the steps before the
// plan is persisted.
func mergeProgressTasks(progressTasks types.ProgressTaskList, current types.PlanTaskList) types.PlanTaskList {
  merged := make(types.PlanTaskList, 0, len(progressTasks))
  for _, pt := range progressTasks {
    title := pt.Title()
    task := types.PlanTask{Title: title, Completed: pt.Completed(), Steps: []types.PlanStep{}}
    if existing, ok := current.FindByTitle(title); ok {
      task.Steps = existing.Steps
    }
    merged = append(merged, task)
  }
  return merged
}

func removeTasksByTitle(tasks types.PlanTaskList, titles []string) types.PlanTaskList {
  drop := make(map[string]struct{}, len(titles))
  for _, t := range titles {
    drop[t] = struct{}{}
  }
  kept := make(types.PlanTaskList, 0, len(tasks))
  for _, t := range tasks {
    if _, ok := drop[t.Title]; ok {
      continue
    }
    kept = append(kept, t)
  }
  return kept
}
