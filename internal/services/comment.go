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

type CommentService interface {
  Create(ctx context.Context, comment *types.Comment) (*types.Comment, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Comment, error)
  GetByPostID(ctx context.Context, postID uuid.UUID) ([]*types.Comment, error)
  Update(ctx context.Context, id uuid.UUID, commentText string) (*types.Comment, error)
  Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type commentService struct {
  db                  *gorm.DB
  log                 *logger.Logger
  commentRepo         repos.CommentRepo
  postRepo            repos.PostRepo
  userRepo            repos.UserRepo
  notificationService NotificationService
}

func NewCommentService(db *gorm.DB, log *logger.Logger, commentRepo repos.CommentRepo, postRepo repos.PostRepo, userRepo repos.UserRepo, notificationService NotificationService) CommentService {
  serviceLog := log.With("service", "CommentService")
  return &commentService{
    db:                  db,
    log:                 serviceLog,
    commentRepo:         commentRepo,
    postRepo:            postRepo,
    userRepo:            userRepo,
    notificationService: notificationService,
  }
}

// Create persists the comment and notifies the post owner. Commenting on
// your own post produces no notification. Notification failures are logged
// and do not fail the comment.
func (s *commentService) Create(ctx context.Context, comment *types.Comment) (*types.Comment, error) {
  comment.ID = uuid.New()
  comment.CreatedAt = time.Now().UTC()

  created, err := s.commentRepo.Create(ctx, nil, []*types.Comment{comment})
  if err != nil {
    return nil, err
  }
  row := created[0]
  s.notifyPostOwner(ctx, row)
  return row, nil
}

func (s *commentService) notifyPostOwner(ctx context.Context, comment *types.Comment) {
  posts, err := s.postRepo.GetByIDs(ctx, nil, []uuid.UUID{comment.PostID})
  if err != nil || len(posts) == 0 {
    s.log.Warn("could not resolve post for comment notification", "error", err, "post_id", comment.PostID)
    return
  }
  post := posts[0]
  if post.UserID == comment.UserID {
    return
  }
  senderName := "someone"
  if senders, sErr := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{comment.UserID}); sErr == nil && len(senders) > 0 {
    senderName = senders[0].Username
  }
  _, nErr := s.notificationService.Create(ctx, &types.Notification{
    ReceiverUserID: post.UserID,
    SenderUserID:   comment.UserID,
    PostID:         post.ID,
    Message:        fmt.Sprintf("%s commented on your post", senderName),
  })
  if nErr != nil {
    s.log.Warn("failed to create comment notification", "error", nErr, "post_id", post.ID)
  }
}

func (s *commentService) GetByID(ctx context.Context, id uuid.UUID) (*types.Comment, error) {
  found, err := s.commentRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return nil, err
  }
  if len(found) == 0 {
    return nil, gorm.ErrRecordNotFound
  }
  return found[0], nil
}

func (s *commentService) GetByPostID(ctx context.Context, postID uuid.UUID) ([]*types.Comment, error) {
  return s.commentRepo.GetByPostID(ctx, nil, postID)
}

func (s *commentService) Update(ctx context.Context, id uuid.UUID, commentText string) (*types.Comment, error) {
  comment, err := s.GetByID(ctx, id)
  if err != nil {
    return nil, err
  }
  comment.CommentText = commentText
  if err := s.commentRepo.Save(ctx, nil, comment); err != nil {
    return nil, err
  }
  return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
  found, err := s.commentRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return false, err
  }
  if len(found) == 0 {
    return false, nil
  }
  if err := s.commentRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{id}); err != nil {
    return false, err
  }
  return true, nil
}
