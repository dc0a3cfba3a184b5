package types

import (
  "encoding/json"
  "math"
  "sort"
  "time"
  "github.com/google/uuid"
)

// ProgressTask is an open key-value record. Clients are free to attach extra
// fields; the backend only interprets "title" and "completed".
type ProgressTask map[string]any

func (t ProgressTask) Title() string {
  s, _ := t["title"].(string)
  return s
}

func (t ProgressTask) Completed() bool {
  b, _ := t["completed"].(bool)
  return b
}

type ProgressTaskList []ProgressTask

// UnmarshalJSON upgrades historical document shapes on read. Current records
// store a list of objects; the oldest records stored a plain list of task
// titles, which decodes to unchecked tasks.
func (l *ProgressTaskList) UnmarshalJSON(data []byte) error {
  var objs []ProgressTask
  if err := json.Unmarshal(data, &objs); err == nil {
    *l = objs
    return nil
  }
  var titles []string
  if err := json.Unmarshal(data, &titles); err != nil {
    return err
  }
  out := make(ProgressTaskList, 0, len(titles))
  for _, title := range titles {
    out = append(out, ProgressTask{"title": title, "completed": false})
  }
  *l = out
  return nil
}

func (l ProgressTaskList) Titles() []string {
  titles := make([]string, 0, len(l))
  for _, t := range l {
    titles = append(titles, t.Title())
  }
  return titles
}

// Percentage returns round-half-up(100 * completed / total), or 0 for an
// empty list.
func (l ProgressTaskList) Percentage() int {
  if len(l) == 0 {
    return 0
  }
  completed := 0
  for _, t := range l {
    if t.Completed() {
      completed++
    }
  }
  return int(math.Round(float64(completed) / float64(len(l)) * 100))
}

type LearningProgress struct {
  ID                 uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
  UserID             uuid.UUID        `gorm:"type:uuid;not null;index:idx_progress_user_activity;column:user_id" json:"userId"`
  ProgressName       string           `gorm:"not null;index:idx_progress_user_activity;column:progress_name" json:"progressName"`
  NewSkills          string           `gorm:"column:new_skills" json:"newSkills"`
  Title              string           `gorm:"column:title" json:"title"`
  Description        string           `gorm:"column:description" json:"description"`
  Resources          string           `gorm:"column:resources" json:"resources"`
  ProgressPercentage int              `gorm:"column:progress_percentage" json:"progressPercentage"`
  Tasks              ProgressTaskList `gorm:"serializer:json" json:"tasks"`
  CreatedAt          time.Time        `gorm:"not null" json:"createdAt"`
}

func (LearningProgress) TableName() string {
  return "learning_progress"
}

// CalculateProgressPercentage re-derives the stored percentage from the task
// list. Called on every create and update; the client-supplied value is never
// trusted.
func (p *LearningProgress) CalculateProgressPercentage() {
  p.ProgressPercentage = p.Tasks.Percentage()
}

// LatestProgress picks the record with the maximum CreatedAt. Exact timestamp
// ties break on the lexically smallest id so the result is deterministic
// regardless of store iteration order.
func LatestProgress(records []*LearningProgress) *LearningProgress {
  if len(records) == 0 {
    return nil
  }
  sorted := make([]*LearningProgress, len(records))
  copy(sorted, records)
  sort.SliceStable(sorted, func(i, j int) bool {
    if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
      return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
    }
    return sorted[i].ID.String() < sorted[j].ID.String()
  })
  return sorted[0]
}
