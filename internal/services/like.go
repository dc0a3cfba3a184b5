package services

import (
  "context"
  "fmt"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/skillhive/skillhive-backend/internal/logger"
  "github.com/skillhive/skillhive-backend/internal/repos"
  "github.com/skillhive/skillhive-backend/internal/types"
)

type LikeService interface {
  Create(ctx context.Context, like *types.Like) (*types.Like, error)
  GetByPostID(ctx context.Context, postID uuid.UUID) ([]*types.Like, error)
  CountByPostID(ctx context.Context, postID uuid.UUID) (int64, error)
  Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type likeService struct {
  db                  *gorm.DB
  log                 *logger.Logger
  likeRepo            repos.LikeRepo
  postRepo            repos.PostRepo
  userRepo            repos.UserRepo
  notificationService NotificationService
}

func NewLikeService(db *gorm.DB, log *logger.Logger, likeRepo repos.LikeRepo, postRepo repos.PostRepo, userRepo repos.UserRepo, notificationService NotificationService) LikeService {
  serviceLog := log.With("service", "LikeService")
  return &likeService{
    db:                  db,
    log:                 serviceLog,
    likeRepo:            likeRepo,
    postRepo:            postRepo,
    userRepo:            userRepo,
    notificationService: notificationService,
  }
}

// Create persists the like and notifies the post owner, skipping self-likes.
// Notification failures are logged and do not fail the like.
func (s *likeService) Create(ctx context.Context, like *types.Like) (*types.Like, error) {
  existing, err := s.likeRepo.GetByPostID(ctx, nil, like.PostID)
  if err != nil {
    return nil, err
  }
  for _, l := range existing {
    if l.UserID == like.UserID {
      return l, nil
    }
  }

  like.ID = uuid.New()
  like.CreatedAt = time.Now().UTC()
  created, err := s.likeRepo.Create(ctx, nil, []*types.Like{like})
  if err != nil {
    return nil, err
  }
  row := created[0]

  posts, pErr := s.postRepo.GetByIDs(ctx, nil, []uuid.UUID{row.PostID})
  if pErr != nil || len(posts) == 0 {
    s.log.Warn("could not resolve post for like notification", "error", pErr, "post_id", row.PostID)
    return row, nil
  }
  post := posts[0]
  if post.UserID != row.UserID {
    senderName := "someone"
    if senders, sErr := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{row.UserID}); sErr == nil && len(senders) > 0 {
      senderName = senders[0].Username
    }
    if _, nErr := s.notificationService.Create(ctx, &types.Notification{
      ReceiverUserID: post.UserID,
      SenderUserID:   row.UserID,
      PostID:         post.ID,
      Message:        fmt.Sprintf("%s liked your post", senderName),
    }); nErr != nil {
      s.log.Warn("failed to create like notification", "error", nErr, "post_id", post.ID)
    }
  }
  return row, nil
}

func (s *likeService) GetByPostID(ctx context.Context, postID uuid.UUID) ([]*types.Like, error) {
  return s.likeRepo.GetByPostID(ctx, nil, postID)
}

func (s *likeService) CountByPostID(ctx context.Context, postID uuid.UUID) (int64, error) {
  return s.likeRepo.CountByPostID(ctx, nil, postID)
}

func (s *likeService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
  found, err := s.likeRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return false, err
  }
  if len(found) == 0 {
    return false, nil
  }
  if err := s.likeRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{id}); err != nil {
    return false, err
  }
  return true, nil
}
