package types

import (
  "time"
  "github.com/google/uuid"
)

type Notification struct {
  ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  ReceiverUserID uuid.UUID `gorm:"type:uuid;not null;index;column:receiver_user_id" json:"receiver_user_id"`
  SenderUserID   uuid.UUID `gorm:"type:uuid;column:sender_user_id" json:"sender_user_id"`
  PostID         uuid.UUID `gorm:"type:uuid;column:post_id" json:"post_id"`
  Message        string    `gorm:"column:message" json:"message"`
  CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}

func (Notification) TableName() string {
  return "notification"
}
