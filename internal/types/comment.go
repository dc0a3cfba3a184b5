package types

import (
  "time"
  "github.com/google/uuid"
)

type Comment struct {
  ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  PostID      uuid.UUID `gorm:"type:uuid;not null;index;column:post_id" json:"post_id"`
  UserID      uuid.UUID `gorm:"type:uuid;not null;column:user_id" json:"user_id"`
  CommentText string    `gorm:"column:comment_text" json:"comment_text"`
  CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (Comment) TableName() string {
  return "comment"
}
