package services

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  goredis "github.com/skillhive/skillhive-backend/internal/clients/redis"
  "github.com/skillhive/skillhive-backend/internal/logger"
  "github.com/skillhive/skillhive-backend/internal/repos"
  "github.com/skillhive/skillhive-backend/internal/sse"
  "github.com/skillhive/skillhive-backend/internal/types"
)

type NotificationService interface {
  Create(ctx context.Context, notification *types.Notification) (*types.Notification, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Notification, error)
  GetForUser(ctx context.Context, receiverUserID uuid.UUID) ([]*types.Notification, error)
  Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type notificationService struct {
  db               *gorm.DB
  log              *logger.Logger
  notificationRepo repos.NotificationRepo
  hub              *sse.SSEHub
  bus              goredis.NotificationBus
}

func NewNotificationService(db *gorm.DB, log *logger.Logger, notificationRepo repos.NotificationRepo, hub *sse.SSEHub, bus goredis.NotificationBus) NotificationService {
  serviceLog := log.With("service", "NotificationService")
  return &notificationService{
    db:               db,
    log:              serviceLog,
    notificationRepo: notificationRepo,
    hub:              hub,
    bus:              bus,
  }
}

// Create persists the notification and pushes it to the receiver's stream,
// both to clients on this instance and, when a bus is configured, to clients
// connected to other instances. Delivery failures do not fail the create.
func (s *notificationService) Create(ctx context.Context, notification *types.Notification) (*types.Notification, error) {
  notification.ID = uuid.New()
  notification.CreatedAt = time.Now().UTC()

  created, err := s.notificationRepo.Create(ctx, nil, []*types.Notification{notification})
  if err != nil {
    return nil, err
  }
  row := created[0]

  msg := sse.SSEMessage{
    Channel: sse.UserChannel(row.ReceiverUserID),
    Event:   sse.SSEEventNotificationCreated,
    Data:    row,
  }
  if s.hub != nil {
    s.hub.Broadcast(msg)
  }
  if s.bus != nil {
    if pErr := s.bus.Publish(ctx, msg); pErr != nil {
      s.log.Warn("failed to publish notification to bus", "error", pErr, "notification_id", row.ID)
    }
  }
  return row, nil
}

func (s *notificationService) GetByID(ctx context.Context, id uuid.UUID) (*types.Notification, error) {
  found, err := s.notificationRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return nil, err
  }
  if len(found) == 0 {
    return nil, gorm.ErrRecordNotFound
  }
  return found[0], nil
}

func (s *notificationService) GetForUser(ctx context.Context, receiverUserID uuid.UUID) ([]*types.Notification, error) {
  return s.notificationRepo.GetByReceiverUserID(ctx, nil, receiverUserID)
}

func (s *notificationService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
  found, err := s.notificationRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return false, err
  }
  if len(found) == 0 {
    return false, nil
  }
  if err := s.notificationRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{id}); err != nil {
    return false, err
  }
  return true, nil
}
