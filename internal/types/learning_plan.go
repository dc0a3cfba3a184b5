package types

import (
  "encoding/json"
  "sort"
  "time"
  "github.com/google/uuid"
)

type PlanStep struct {
  Name    string `json:"name"`
  Checked bool   `json:"checked"`
}

// PlanTask groups ordered steps under a title. The title is the identity key
// used when a plan is reconciled against a progress record; Completed is
// always derived from the steps before a plan is persisted.
type PlanTask struct {
  Title     string     `json:"title"`
  Completed bool       `json:"completed"`
  Steps     []PlanStep `json:"steps"`
}

// DeriveCompleted sets Completed true iff the task has at least one step and
// every step is checked. An empty or nil step list is never complete.
func (t *PlanTask) DeriveCompleted() {
  if len(t.Steps) == 0 {
    t.Completed = false
    return
  }
  for _, s := range t.Steps {
    if !s.Checked {
      t.Completed = false
      return
    }
  }
  t.Completed = true
}

type PlanTaskList []PlanTask

// UnmarshalJSON upgrades historical plan documents whose task list was a
// plain []string of titles. Those decode to tasks with no steps, which are
// never complete.
func (l *PlanTaskList) UnmarshalJSON(data []byte) error {
  type taskAlias PlanTask
  var tasks []taskAlias
  if err := json.Unmarshal(data, &tasks); err == nil {
    out := make(PlanTaskList, 0, len(tasks))
    for _, t := range tasks {
      out = append(out, PlanTask(t))
    }
    *l = out
    return nil
  }
  var titles []string
  if err := json.Unmarshal(data, &titles); err != nil {
    return err
  }
  out := make(PlanTaskList, 0, len(titles))
  for _, title := range titles {
    out = append(out, PlanTask{Title: title})
  }
  *l = out
  return nil
}

func (l PlanTaskList) DeriveCompletion() {
  for i := range l {
    l[i].DeriveCompleted()
  }
}

func (l PlanTaskList) FindByTitle(title string) (PlanTask, bool) {
  for _, t := range l {
    if t.Title == title {
      return t, true
    }
  }
  return PlanTask{}, false
}

type LearningPlan struct {
  ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
  UserID        uuid.UUID    `gorm:"type:uuid;not null;index:idx_plan_user_activity;column:user_id" json:"userId"`
  ProgressName  string       `gorm:"not null;index:idx_plan_user_activity;column:progress_name" json:"progressName"`
  Title         string       `gorm:"column:title" json:"title"`
  Description   string       `gorm:"column:description" json:"description"`
  Tasks         PlanTaskList `gorm:"serializer:json" json:"tasks"`
  DurationValue int          `gorm:"column:duration_value" json:"durationValue"`
  DurationUnit  string       `gorm:"column:duration_unit" json:"durationUnit"`
  Priority      string       `gorm:"column:priority" json:"priority"`
  IsCompleted   bool         `gorm:"column:is_completed" json:"isCompleted"`
  CreatedAt     time.Time    `gorm:"not null" json:"createdAt"`
  UpdatedAt     time.Time    `gorm:"not null" json:"updatedAt"`
}

func (LearningPlan) TableName() string {
  return "learning_plan"
}

// LatestPlan picks the plan with the maximum CreatedAt, ties broken by the
// lexically smallest id. Same rule as LatestProgress.
func LatestPlan(plans []*LearningPlan) *LearningPlan {
  if len(plans) == 0 {
    return nil
  }
  sorted := make([]*LearningPlan, len(plans))
  copy(sorted, plans)
  sort.SliceStable(sorted, func(i, j int) bool {
    if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
      return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
    }
    return sorted[i].ID.String() < sorted[j].ID.String()
  })
  return sorted[0]
}
