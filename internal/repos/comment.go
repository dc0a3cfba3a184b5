package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/skillhive/skillhive-backend/internal/logger"
  "github.com/skillhive/skillhive-backend/internal/types"
)

type CommentRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rows []*types.Comment) ([]*types.Comment, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Comment, error)
  GetByPostID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) ([]*types.Comment, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Comment, error)
  Save(ctx context.Context, tx *gorm.DB, row *types.Comment) error
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type commentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCommentRepo(db *gorm.DB, baseLog *logger.Logger) CommentRepo {
  repoLog := baseLog.With("repo", "CommentRepo")
  return &commentRepo{db: db, log: repoLog}
}

func (r *commentRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Comment) ([]*types.Comment, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.Comment{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (r *commentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Comment, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Comment
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

func (r *commentRepo) GetByPostID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) ([]*types.Comment, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Comment
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

func (r *commentRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Comment, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Comment
  if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *commentRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Comment) error {
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

func (r *commentRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(ids) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Delete(&types.Comment{}).Error; err != nil {
    return err
  }
  return nil
}
