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

type PlanService interface {
  Create(ctx context.Context, plan *types.LearningPlan) (*types.LearningPlan, error)
  GetAll(ctx context.Context) ([]*types.LearningPlan, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.LearningPlan, error)
  GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.LearningPlan, error)
  GetByUserAndProgressName(ctx context.Context, userID uuid.UUID, progressName string) ([]*types.LearningPlan, error)
  GetLatest(ctx context.Context, userID uuid.UUID, progressName string) (*types.LearningPlan, error)
  Update(ctx context.Context, id uuid.UUID, updated *types.LearningPlan) (*types.LearningPlan, error)
  UpdateIsCompletedForPlans(ctx context.Context, progressName string) error
  Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type planService struct {
  db           *gorm.DB
  log          *logger.Logger
  planRepo     repos.LearningPlanRepo
  progressRepo repos.LearningProgressRepo
}

func NewPlanService(db *gorm.DB, log *logger.Logger, planRepo repos.LearningPlanRepo, progressRepo repos.LearningProgressRepo) PlanService {
  serviceLog := log.With("service", "PlanService")
  return &planService{
    db:           db,
    log:          serviceLog,
    planRepo:     planRepo,
    progressRepo: progressRepo,
  }
}

func (s *planService) Create(ctx context.Context, plan *types.LearningPlan) (*types.LearningPlan, error) {
  now := time.Now().UTC()
  plan.ID = uuid.New()
  plan.CreatedAt = now
  plan.UpdatedAt = now
  plan.Tasks.DeriveCompletion()

  created, err := s.planRepo.Create(ctx, nil, []*types.LearningPlan{plan})
  if err != nil {
    return nil, err
  }
  return created[0], nil
}

func (s *planService) GetAll(ctx context.Context) ([]*types.LearningPlan, error) {
  return s.planRepo.GetAll(ctx, nil)
}

func (s *planService) GetByID(ctx context.Context, id uuid.UUID) (*types.LearningPlan, error) {
  found, err := s.planRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return nil, err
  }
  if len(found) == 0 {
    return nil, gorm.ErrRecordNotFound
  }
  return found[0], nil
}

func (s *planService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.LearningPlan, error) {
  return s.planRepo.GetByUserID(ctx, nil, userID)
}

func (s *planService) GetByUserAndProgressName(ctx context.Context, userID uuid.UUID, progressName string) ([]*types.LearningPlan, error) {
  return s.planRepo.GetByUserAndProgressName(ctx, nil, userID, progressName)
}

func (s *planService) GetLatest(ctx context.Context, userID uuid.UUID, progressName string) (*types.LearningPlan, error) {
  plans, err := s.planRepo.GetByUserAndProgressName(ctx, nil, userID, progressName)
  if err != nil {
    return nil, err
  }
  latest := types.LatestPlan(plans)
  if latest == nil {
    return nil, gorm.ErrRecordNotFound
  }
  return latest, nil
}

// Update replaces the editable fields wholesale; the task list is replaced,
// not merged, on a direct user edit. Task completion is re-derived from the
// steps before persisting.
func (s *planService) Update(ctx context.Context, id uuid.UUID, updated *types.LearningPlan) (*types.LearningPlan, error) {
  found, err := s.planRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return nil, err
  }
  if len(found) == 0 {
    return nil, gorm.ErrRecordNotFound
  }
  existing := found[0]

  existing.Title = updated.Title
  existing.Description = updated.Description
  existing.DurationValue = updated.DurationValue
  existing.DurationUnit = updated.DurationUnit
  existing.Priority = updated.Priority
  existing.IsCompleted = updated.IsCompleted
  existing.Tasks = updated.Tasks
  existing.Tasks.DeriveCompletion()
  existing.UpdatedAt = time.Now().UTC()

  if err := s.planRepo.Save(ctx, nil, existing); err != nil {
    return nil, err
  }
  return existing, nil
}

// UpdateIsCompletedForPlans propagates the latest progress percentage for an
// activity into the completed flag of that activity's plans. The latest
// progress is resolved by activity name alone, across all users, and the
// plans updated are those of the user owning that latest progress record —
// the join the system has always used, kept for behavioral compatibility
// even though one user's progress can flip another user's plans when
// activity names collide.
func (s *planService) UpdateIsCompletedForPlans(ctx context.Context, progressName string) error {
  records, err := s.progressRepo.GetByProgressName(ctx, nil, progressName)
  if err != nil {
    return err
  }
  latest := types.LatestProgress(records)
  if latest == nil {
    return nil
  }
  completed := latest.ProgressPercentage == 100

  plans, err := s.planRepo.GetByUserAndProgressName(ctx, nil, latest.UserID, progressName)
  if err != nil {
    return err
  }
  for _, plan := range plans {
    plan.IsCompleted = completed
    plan.UpdatedAt = time.Now().UTC()
    if err := s.planRepo.Save(ctx, nil, plan); err != nil {
      return err
    }
  }
  return nil
}

func (s *planService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
  found, err := s.planRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return false, err
  }
  if len(found) == 0 {
    return false, nil
  }
  if err := s.planRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{id}); err != nil {
    return false, err
  }
  return true, nil
}
