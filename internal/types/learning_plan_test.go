package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPlanTaskDeriveCompleted(t *testing.T) {
	cases := []struct {
		name  string
		steps []PlanStep
		want  bool
	}{
		{"no steps", nil, false},
		{"empty steps", []PlanStep{}, false},
		{"one unchecked", []PlanStep{{Name: "a", Checked: true}, {Name: "b"}}, false},
		{"all checked", []PlanStep{{Name: "a", Checked: true}, {Name: "b", Checked: true}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := PlanTask{Title: "t", Completed: !tc.want, Steps: tc.steps}
			task.DeriveCompleted()
			if task.Completed != tc.want {
				t.Fatalf("expected %v got %v", tc.want, task.Completed)
			}
		})
	}
}

func TestPlanTaskListUpgradesLegacyTitleList(t *testing.T) {
	var tasks PlanTaskList
	if err := json.Unmarshal([]byte(`["setup env","first commit"]`), &tasks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks got %d", len(tasks))
	}
	if tasks[0].Title != "setup env" || len(tasks[0].Steps) != 0 {
		t.Fatalf("unexpected first task: %+v", tasks[0])
	}
	tasks.DeriveCompletion()
	for _, task := range tasks {
		if task.Completed {
			t.Fatalf("legacy tasks have no steps and can never be complete")
		}
	}
}

func TestPlanTaskListDecodesObjectList(t *testing.T) {
	var tasks PlanTaskList
	raw := `[{"title":"a","completed":false,"steps":[{"name":"s1","checked":true}]}]`
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(tasks) != 1 || len(tasks[0].Steps) != 1 || !tasks[0].Steps[0].Checked {
		t.Fatalf("steps did not survive decode: %+v", tasks)
	}
}

func TestPlanTaskListFindByTitle(t *testing.T) {
	tasks := PlanTaskList{
		{Title: "a"},
		{Title: "b", Steps: []PlanStep{{Name: "s"}}},
	}
	got, ok := tasks.FindByTitle("b")
	if !ok || len(got.Steps) != 1 {
		t.Fatalf("expected to find b with its steps, got %+v ok=%v", got, ok)
	}
	if _, ok := tasks.FindByTitle("missing"); ok {
		t.Fatalf("expected miss for unknown title")
	}
}

func TestLatestPlanPicksNewestThenSmallestID(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	older := &LearningPlan{ID: uuid.New(), CreatedAt: base.Add(-time.Minute)}
	a := &LearningPlan{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), CreatedAt: base}
	b := &LearningPlan{ID: uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"), CreatedAt: base}

	if got := LatestPlan([]*LearningPlan{b, older, a}); got != a {
		t.Fatalf("expected tie to break on smallest id, got %s", got.ID)
	}
	if got := LatestPlan(nil); got != nil {
		t.Fatalf("expected nil for empty input")
	}
}
