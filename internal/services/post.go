package services

import (
  "context"
  "fmt"
  "io"
  "strings"
  "time"
  "github.com/google/uuid"
  "golang.org/x/sync/errgroup"
  "gorm.io/gorm"
  "github.com/skillhive/skillhive-backend/internal/logger"
  "github.com/skillhive/skillhive-backend/internal/repos"
  "github.com/skillhive/skillhive-backend/internal/types"
)

// PostMedia is one file attached to a post at creation time.
type PostMedia struct {
  Filename    string
  ContentType string
  Content     io.Reader
}

type PostService interface {
  Create(ctx context.Context, userID uuid.UUID, description string, media []PostMedia) (*types.Post, error)
  GetAll(ctx context.Context) ([]*types.Post, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Post, error)
  UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*types.Post, error)
  SearchByHashtag(ctx context.Context, tag string) ([]*types.Post, error)
  Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type postService struct {
  db            *gorm.DB
  log           *logger.Logger
  postRepo      repos.PostRepo
  bucketService BucketService
}

func NewPostService(db *gorm.DB, log *logger.Logger, postRepo repos.PostRepo, bucketService BucketService) PostService {
  serviceLog := log.With("service", "PostService")
  return &postService{
    db:            db,
    log:           serviceLog,
    postRepo:      postRepo,
    bucketService: bucketService,
  }
}

// MediaTypeFromContentType buckets a MIME type into the coarse media kind
// stored alongside each URL.
func MediaTypeFromContentType(contentType string) string {
  switch {
  case strings.HasPrefix(contentType, "image/"):
    return "image"
  case strings.HasPrefix(contentType, "video/"):
    return "video"
  default:
    return "raw"
  }
}

// Create uploads every attached file concurrently and persists the post only
// once all uploads succeed. Each upload writes its URL and media type into
// the slot matching the file's submission order, so the stored lists line up
// with what the client sent. A failed upload aborts the whole create;
// objects already written are not cleaned up.
func (s *postService) Create(ctx context.Context, userID uuid.UUID, description string, media []PostMedia) (*types.Post, error) {
  post := &types.Post{
    ID:          uuid.New(),
    UserID:      userID,
    Description: description,
    MediaUrls:   make([]string, len(media)),
    MediaTypes:  make([]string, len(media)),
    CreatedAt:   time.Now().UTC(),
  }

  g, gctx := errgroup.WithContext(ctx)
  for i, m := range media {
    i, m := i, m
    g.Go(func() error {
      key := fmt.Sprintf("posts/%s/%d-%s", post.ID, i, m.Filename)
      if err := s.bucketService.UploadFile(gctx, key, m.Content); err != nil {
        return fmt.Errorf("failed to upload %q: %w", m.Filename, err)
      }
      post.MediaUrls[i] = s.bucketService.GetPublicURL(key)
      post.MediaTypes[i] = MediaTypeFromContentType(m.ContentType)
      return nil
    })
  }
  if err := g.Wait(); err != nil {
    s.log.Warn("post media upload failed", "error", err, "post_id", post.ID)
    return nil, err
  }

  created, err := s.postRepo.Create(ctx, nil, []*types.Post{post})
  if err != nil {
    return nil, err
  }
  return created[0], nil
}

func (s *postService) GetAll(ctx context.Context) ([]*types.Post, error) {
  return s.postRepo.GetAll(ctx, nil)
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*types.Post, error) {
  found, err := s.postRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return nil, err
  }
  if len(found) == 0 {
    return nil, gorm.ErrRecordNotFound
  }
  return found[0], nil
}

// UpdateDescription is the only post edit; media is immutable after create.
func (s *postService) UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*types.Post, error) {
  post, err := s.GetByID(ctx, id)
  if err != nil {
    return nil, err
  }
  post.Description = description
  if err := s.postRepo.Save(ctx, nil, post); err != nil {
    return nil, err
  }
  return post, nil
}

// SearchByHashtag matches posts whose description contains the tag,
// case-insensitively. A leading '#' on the query is optional.
func (s *postService) SearchByHashtag(ctx context.Context, tag string) ([]*types.Post, error) {
  all, err := s.postRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, err
  }
  needle := strings.ToLower(strings.TrimPrefix(tag, "#"))
  if needle == "" {
    return []*types.Post{}, nil
  }
  matches := make([]*types.Post, 0)
  for _, post := range all {
    if strings.Contains(strings.ToLower(post.Description), "#"+needle) {
      matches = append(matches, post)
    }
  }
  return matches, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
  found, err := s.postRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return false, err
  }
  if len(found) == 0 {
    return false, nil
  }
  if err := s.postRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{id}); err != nil {
    return false, err
  }
  return true, nil
}
