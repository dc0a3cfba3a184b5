package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/skillhive/skillhive-backend/internal/logger"
  "github.com/skillhive/skillhive-backend/internal/types"
)

type LikeRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rows []*types.Like) ([]*types.Like, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Like, error)
  GetByPostID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) ([]*types.Like, error)
  CountByPostID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (int64, error)
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type likeRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLikeRepo(db *gorm.DB, baseLog *logger.Logger) LikeRepo {
  repoLog := baseLog.With("repo", "LikeRepo")
  return &likeRepo{db: db, log: repoLog}
}

func (r *likeRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Like) ([]*types.Like, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.Like{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (r *likeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Like, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Like
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

func (r *likeRepo) GetByPostID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) ([]*types.Like, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Like
  if postID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("post_id = ?", postID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *likeRepo) CountByPostID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Like{}).
    Where("post_id = ?", postID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (r *likeRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(ids) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Delete(&types.Like{}).Error; err != nil {
    return err
  }
  return nil
}
