package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/skillhive/skillhive-backend/internal/logger"
  "github.com/skillhive/skillhive-backend/internal/types"
)

type LearningProgressRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rows []*types.LearningProgress) ([]*types.LearningProgress, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.LearningProgress, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.LearningProgress, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningProgress, error)
  GetByUserAndProgressName(ctx context.Context, tx *gorm.DB, userID uuid.UUID, progressName string) ([]*types.LearningProgress, error)
  GetByProgressName(ctx context.Context, tx *gorm.DB, progressName string) ([]*types.LearningProgress, error)
  Save(ctx context.Context, tx *gorm.DB, row *types.LearningProgress) error
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type learningProgressRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLearningProgressRepo(db *gorm.DB, baseLog *logger.Logger) LearningProgressRepo {
  repoLog := baseLog.With("repo", "LearningProgressRepo")
  return &learningProgressRepo{db: db, log: repoLog}
}

func (r *learningProgressRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.LearningProgress) ([]*types.LearningProgress, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.LearningProgress{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (r *learningProgressRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.LearningProgress, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LearningProgress
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

func (r *learningProgressRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.LearningProgress, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LearningProgress
  if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *learningProgressRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningProgress, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LearningProgress
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

func (r *learningProgressRepo) GetByUserAndProgressName(ctx context.Context, tx *gorm.DB, userID uuid.UUID, progressName string) ([]*types.LearningProgress, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LearningProgress
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

func (r *learningProgressRepo) GetByProgressName(ctx context.Context, tx *gorm.DB, progressName string) ([]*types.LearningProgress, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LearningProgress
  if progressName == "" {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("progress_name = ?", progressName).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *learningProgressRepo) Save(ctx context.Context, tx *gorm.DB, row *types.LearningProgress) error {
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

func (r *learningProgressRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(ids) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Delete(&types.LearningProgress{}).Error; err != nil {
    return err
  }
  return nil
}
