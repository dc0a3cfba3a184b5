package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

// MediaUrls and MediaTypes are parallel lists: index i of each describes the
// i-th file as it was submitted, regardless of upload completion order.
type Post struct {
  ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  UserID      uuid.UUID `gorm:"type:uuid;index;column:user_id" json:"user_id"`
  Description string    `gorm:"column:description" json:"description"`
  MediaUrls   datatypes.JSONSlice[string] `json:"mediaUrls"`
  MediaTypes  datatypes.JSONSlice[string] `json:"mediaTypes"`
  CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (Post) TableName() string {
  return "post"
}
