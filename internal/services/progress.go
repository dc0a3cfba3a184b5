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

type ProgressService interface {
  Create(ctx context.Context, record *types.LearningProgress) (*types.LearningProgress, error)
  GetAll(ctx context.Context) ([]*types.LearningProgress, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.LearningProgress, error)
  GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.LearningProgress, error)
  GetByUserAndProgressName(ctx context.Context, userID uuid.UUID, progressName string) ([]*types.LearningProgress, error)
  GetLatest(ctx context.Context, userID uuid.UUID, progressName string) (*types.LearningProgress, error)
  CheckDuplicate(ctx context.Context, userID uuid.UUID, progressName string) (bool, error)
  Update(ctx context.Context, id uuid.UUID, updated *types.LearningProgress) (*types.LearningProgress, error)
  Delete(ctx context.Context, id uuid.UUID) error
}

type progressService struct {
  db           *gorm.DB
  log          *logger.Logger
  progressRepo repos.LearningProgressRepo
  planSync     PlanSyncService
}

func NewProgressService(db *gorm.DB, log *logger.Logger, progressRepo repos.LearningProgressRepo, planSync PlanSyncService) ProgressService {
  serviceLog := log.With("service", "ProgressService")
  return &progressService{
    db:           db,
    log:          serviceLog,
    progressRepo: progressRepo,
    planSync:     planSync,
  }
}

func (ps *progressService) Create(ctx context.Context, record *types.LearningProgress) (*types.LearningProgress, error) {
  record.ID = uuid.New()
  record.CreatedAt = time.Now().UTC()
  record.CalculateProgressPercentage()

  created, err := ps.progressRepo.Create(ctx, nil, []*types.LearningProgress{record})
  if err != nil {
    return nil, err
  }

  ps.planSync.Apply(ctx, ProgressChanged{
    Kind:         ProgressCreated,
    UserID:       record.UserID,
    ProgressName: record.ProgressName,
    Tasks:        record.Tasks,
  })
  return created[0], nil
}

func (ps *progressService) GetAll(ctx context.Context) ([]*types.LearningProgress, error) {
  return ps.progressRepo.GetAll(ctx, nil)
}

func (ps *progressService) GetByID(ctx context.Context, id uuid.UUID) (*types.LearningProgress, error) {
  found, err := ps.progressRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return nil, err
  }
  if len(found) == 0 {
    return nil, gorm.ErrRecordNotFound
  }
  return found[0], nil
}

func (ps *progressService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.LearningProgress, error) {
  return ps.progressRepo.GetByUserID(ctx, nil, userID)
}

func (ps *progressService) GetByUserAndProgressName(ctx context.Context, userID uuid.UUID, progressName string) ([]*types.LearningProgress, error) {
  return ps.progressRepo.GetByUserAndProgressName(ctx, nil, userID, progressName)
}

func (ps *progressService) GetLatest(ctx context.Context, userID uuid.UUID, progressName string) (*types.LearningProgress, error) {
  records, err := ps.progressRepo.GetByUserAndProgressName(ctx, nil, userID, progressName)
  if err != nil {
    return nil, err
  }
  latest := types.LatestProgress(records)
  if latest == nil {
    return nil, gorm.ErrRecordNotFound
  }
  return latest, nil
}

func (ps *progressService) CheckDuplicate(ctx context.Context, userID uuid.UUID, progressName string) (bool, error) {
  records, err := ps.progressRepo.GetByUserAndProgressName(ctx, nil, userID, progressName)
  if err != nil {
    return false, err
  }
  return len(records) > 0, nil
}

// Update overwrites the record wholesale, including the owning user and the
// activity name, and recomputes the percentage from the incoming task list.
// The client-supplied percentage is discarded.
func (ps *progressService) Update(ctx context.Context, id uuid.UUID, updated *types.LearningProgress) (*types.LearningProgress, error) {
  found, err := ps.progressRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return nil, err
  }
  if len(found) == 0 {
    return nil, gorm.ErrRecordNotFound
  }
  existing := found[0]

  existing.UserID = updated.UserID
  existing.ProgressName = updated.ProgressName
  existing.NewSkills = updated.NewSkills
  existing.Title = updated.Title
  existing.Description = updated.Description
  existing.Resources = updated.Resources
  existing.Tasks = updated.Tasks
  existing.CalculateProgressPercentage()

  if err := ps.progressRepo.Save(ctx, nil, existing); err != nil {
    return nil, err
  }

  ps.planSync.Apply(ctx, ProgressChanged{
    Kind:         ProgressUpdated,
    UserID:       existing.UserID,
    ProgressName: existing.ProgressName,
    Tasks:        existing.Tasks,
  })
  return existing, nil
}

// Delete is silent when the record is absent. When present, the record's task
// titles are captured before removal so the governing plan can drop them.
func (ps *progressService) Delete(ctx context.Context, id uuid.UUID) error {
  found, err := ps.progressRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return err
  }
  if len(found) == 0 {
    return nil
  }
  record := found[0]

  if err := ps.progressRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{id}); err != nil {
    return err
  }

  ps.planSync.Apply(ctx, ProgressChanged{
    Kind:         ProgressDeleted,
    UserID:       record.UserID,
    ProgressName: record.ProgressName,
    Tasks:        record.Tasks,
  })
  return nil
}
