package services

import (
  "context"
  "fmt"
  "io"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/skillhive/skillhive-backend/internal/logger"
  "github.com/skillhive/skillhive-backend/internal/normalization"
  "github.com/skillhive/skillhive-backend/internal/repos"
  "github.com/skillhive/skillhive-backend/internal/sse"
  "github.com/skillhive/skillhive-backend/internal/types"
  "github.com/skillhive/skillhive-backend/internal/utils"
)

type UserService interface {
  Create(ctx context.Context, user *types.User, picture io.Reader, pictureName string) (*types.User, error)
  GetAll(ctx context.Context) ([]*types.User, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.User, error)
  Update(ctx context.Context, id uuid.UUID, updated *types.User) (*types.User, error)
  Delete(ctx context.Context, id uuid.UUID) (bool, error)
  Follow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
  Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
  GetFollowers(ctx context.Context, id uuid.UUID) ([]*types.User, error)
  GetFollowing(ctx context.Context, id uuid.UUID) ([]*types.User, error)
  UpdateSkills(ctx context.Context, id uuid.UUID, skills []string) (*types.User, error)
  SuggestBySkills(ctx context.Context, id uuid.UUID) ([]*types.User, error)
}

type userService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  bucketService BucketService
  hub           *sse.SSEHub
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, bucketService BucketService, hub *sse.SSEHub) UserService {
  serviceLog := log.With("service", "UserService")
  return &userService{
    db:            db,
    log:           serviceLog,
    userRepo:      userRepo,
    bucketService: bucketService,
    hub:           hub,
  }
}

func (s *userService) Create(ctx context.Context, user *types.User, picture io.Reader, pictureName string) (*types.User, error) {
  utils.NormalizeUserFields(user)
  if vErr := utils.ValidateRegistration(ctx, s.userRepo, s.log, user); vErr != nil {
    return nil, vErr
  }
  if hErr := utils.HashPassword(user); hErr != nil {
    return nil, hErr
  }
  now := time.Now().UTC()
  user.ID = uuid.New()
  user.CreatedAt = now
  user.UpdatedAt = now
  if picture != nil {
    key := fmt.Sprintf("profile-pictures/%s/%s", user.ID, pictureName)
    if upErr := s.bucketService.UploadFile(ctx, key, picture); upErr != nil {
      return nil, fmt.Errorf("failed to upload profile picture: %w", upErr)
    }
    user.ProfilePicture = s.bucketService.GetPublicURL(key)
  }
  created, err := s.userRepo.Create(ctx, nil, []*types.User{user})
  if err != nil {
    return nil, err
  }
  return created[0], nil
}

func (s *userService) GetAll(ctx context.Context) ([]*types.User, error) {
  return s.userRepo.GetAll(ctx, nil)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
  found, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return nil, err
  }
  if len(found) == 0 {
    return nil, gorm.ErrRecordNotFound
  }
  return found[0], nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, updated *types.User) (*types.User, error) {
  existing, err := s.GetByID(ctx, id)
  if err != nil {
    return nil, err
  }
  if updated.Username != "" {
    existing.Username = updated.Username
  }
  if updated.Email != "" {
    existing.Email = updated.Email
  }
  existing.Bio = updated.Bio
  if updated.ProfilePicture != "" {
    existing.ProfilePicture = updated.ProfilePicture
  }
  utils.NormalizeUserFields(existing)
  existing.UpdatedAt = time.Now().UTC()
  if err := s.userRepo.Save(ctx, nil, existing); err != nil {
    return nil, err
  }
  return existing, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
  found, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return false, err
  }
  if len(found) == 0 {
    return false, nil
  }
  if err := s.userRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{id}); err != nil {
    return false, err
  }
  return true, nil
}

// Follow adds the follower edge on both users. Returns false without error
// when either user is missing or the edge already exists. The two saves are
// independent, so a failure between them can leave a one-sided edge; a
// repeated follow is rejected by the followers check and never duplicates.
func (s *userService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
  users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{followerID, followeeID})
  if err != nil {
    return false, err
  }
  var follower, followee *types.User
  for _, u := range users {
    switch u.ID {
    case followerID:
      follower = u
    case followeeID:
      followee = u
    }
  }
  if follower == nil || followee == nil {
    return false, nil
  }
  if followee.HasFollower(followerID) {
    return false, nil
  }

  follower.Following = append(follower.Following, followeeID)
  follower.UpdatedAt = time.Now().UTC()
  if err := s.userRepo.Save(ctx, nil, follower); err != nil {
    return false, err
  }
  followee.Followers = append(followee.Followers, followerID)
  followee.UpdatedAt = time.Now().UTC()
  if err := s.userRepo.Save(ctx, nil, followee); err != nil {
    return false, err
  }

  if s.hub != nil {
    s.hub.Broadcast(sse.SSEMessage{
      Channel: sse.UserChannel(followeeID),
      Event:   sse.SSEEventUserFollowed,
      Data:    map[string]any{"followerId": followerID, "followerUsername": follower.Username},
    })
  }
  return true, nil
}

func (s *userService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
  users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{followerID, followeeID})
  if err != nil {
    return err
  }
  for _, u := range users {
    switch u.ID {
    case followerID:
      u.Following = types.RemoveUserID(u.Following, followeeID)
    case followeeID:
      u.Followers = types.RemoveUserID(u.Followers, followerID)
    }
    u.UpdatedAt = time.Now().UTC()
    if err := s.userRepo.Save(ctx, nil, u); err != nil {
      return err
    }
  }
  return nil
}

func (s *userService) GetFollowers(ctx context.Context, id uuid.UUID) ([]*types.User, error) {
  user, err := s.GetByID(ctx, id)
  if err != nil {
    return nil, err
  }
  return s.userRepo.GetByIDs(ctx, nil, user.Followers)
}

func (s *userService) GetFollowing(ctx context.Context, id uuid.UUID) ([]*types.User, error) {
  user, err := s.GetByID(ctx, id)
  if err != nil {
    return nil, err
  }
  return s.userRepo.GetByIDs(ctx, nil, user.Following)
}

func (s *userService) UpdateSkills(ctx context.Context, id uuid.UUID, skills []string) (*types.User, error) {
  user, err := s.GetByID(ctx, id)
  if err != nil {
    return nil, err
  }
  normalized := make([]string, 0, len(skills))
  for _, skill := range skills {
    if trimmed := normalization.TrimInputString(skill); trimmed != "" {
      normalized = append(normalized, trimmed)
    }
  }
  user.Skills = normalized
  user.UpdatedAt = time.Now().UTC()
  if err := s.userRepo.Save(ctx, nil, user); err != nil {
    return nil, err
  }
  return user, nil
}

// SuggestBySkills returns every other user sharing at least one skill with
// the given user. Unordered.
func (s *userService) SuggestBySkills(ctx context.Context, id uuid.UUID) ([]*types.User, error) {
  user, err := s.GetByID(ctx, id)
  if err != nil {
    return nil, err
  }
  all, err := s.userRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, err
  }
  suggestions := make([]*types.User, 0)
  for _, candidate := range all {
    if candidate.ID == id {
      continue
    }
    if user.SkillsIntersect(candidate) {
      suggestions = append(suggestions, candidate)
    }
  }
  return suggestions, nil
}
