package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

type User struct {
  ID             uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  Username       string      `gorm:"uniqueIndex;not null;column:username" json:"username"`
  Email          string      `gorm:"uniqueIndex;not null;column:email" json:"email"`
  Password       string      `gorm:"not null;column:password" json:"-"`
  Bio            string      `gorm:"column:bio" json:"bio"`
  ProfilePicture string      `gorm:"column:profile_picture" json:"profile_picture"`
  Followers      datatypes.JSONSlice[uuid.UUID] `json:"followers"`
  Following      datatypes.JSONSlice[uuid.UUID] `json:"following"`
  Skills         datatypes.JSONSlice[string]    `json:"skills"`
  CreatedAt      time.Time   `gorm:"not null" json:"created_at"`
  UpdatedAt      time.Time   `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
  return "user"
}

// HasFollower reports whether followerID already appears in the user's
// followers list.
func (u *User) HasFollower(followerID uuid.UUID) bool {
  for _, id := range u.Followers {
    if id == followerID {
      return true
    }
  }
  return false
}

// SkillsIntersect reports whether the two users share at least one skill.
func (u *User) SkillsIntersect(other *User) bool {
  if other == nil {
    return false
  }
  set := make(map[string]struct{}, len(u.Skills))
  for _, s := range u.Skills {
    set[s] = struct{}{}
  }
  for _, s := range other.Skills {
    if _, ok := set[s]; ok {
      return true
    }
  }
  return false
}

func RemoveUserID(ids []uuid.UUID, target uuid.UUID) []uuid.UUID {
  out := ids[:0]
  for _, id := range ids {
    if id != target {
      out = append(out, id)
    }
  }
  return out
}
