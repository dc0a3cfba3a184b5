package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/skillhive/skillhive-backend/internal/logger"
  "github.com/skillhive/skillhive-backend/internal/types"
)

type LearningPlanRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rows []*types.LearningPlan) ([]*types.LearningPlan, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.LearningPlan, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.LearningPlan, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningPlan, error)
  GetByUserAndProgressName(ctx context.Context, tx *gorm.DB, userID uuid.UUID, progressName string) ([]*types.LearningPlan, error)
  Save(ctx context.Context, tx *gorm.DB, row *types.LearningPlan) error
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type learningPlanRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLearningPlanRepo(db *gorm.DB, baseLog *logger.Logger) LearningPlanRepo {
  repoLog := baseLog.With("repo", "LearningPlanRepo")
  return &learningPlanRepo{db: db, log: repoLog}
}

func (r *learningPlanRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.LearningPlan) ([]*types.LearningPlan, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.LearningPlan{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (r *learningPlanRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.LearningPlan, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LearningPlan
  if len(ids) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *learningPlanRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.LearningPlan, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LearningPlan
  if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *learningPlanRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningPlan, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LearningPlan
  if userID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *learningPlanRepo) GetByUserAndProgressName(ctx context.Context, tx *gorm.DB, userID uuid.UUID, progressName string) ([]*types.LearningPlan, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LearningPlan
  if userID == uuid.Nil || progressName == "" {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND progress_name = ?", userID, progressName).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *learningPlanRepo) Save(ctx context.Context, tx *gorm.DB, row *types.LearningPlan) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  if err := transaction.WithContext(ctx).Save(row).Error; err != nil {
    return err
  }
  return nil
}

func (r *learningPlanRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(ids) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Delete(&types.LearningPlan{}).Error; err != nil {
    return err
  }
  return nil
}
