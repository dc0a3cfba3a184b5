package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestProgressTaskListPercentage(t *testing.T) {
	cases := []struct {
		name  string
		tasks ProgressTaskList
		want  int
	}{
		{"empty", ProgressTaskList{}, 0},
		{"none completed", ProgressTaskList{
			{"title": "a", "completed": false},
			{"title": "b", "completed": false},
		}, 0},
		{"two of three rounds up", ProgressTaskList{
			{"title": "a", "completed": true},
			{"title": "b", "completed": true},
			{"title": "c", "completed": false},
		}, 67},
		{"one of three rounds down", ProgressTaskList{
			{"title": "a", "completed": true},
			{"title": "b", "completed": false},
			{"title": "c", "completed": false},
		}, 33},
		{"all completed", ProgressTaskList{
			{"title": "a", "completed": true},
			{"title": "b", "completed": true},
		}, 100},
		{"half rounds up", ProgressTaskList{
			{"title": "a", "completed": true},
			{"title": "b", "completed": false},
		}, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tasks.Percentage(); got != tc.want {
				t.Fatalf("expected %d got %d", tc.want, got)
			}
		})
	}
}

func TestProgressTaskListUpgradesLegacyTitleList(t *testing.T) {
	var tasks ProgressTaskList
	if err := json.Unmarshal([]byte(`["read docs","write code"]`), &tasks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks got %d", len(tasks))
	}
	if tasks[0].Title() != "read docs" || tasks[0].Completed() {
		t.Fatalf("unexpected first task: %+v", tasks[0])
	}
	if tasks.Percentage() != 0 {
		t.Fatalf("legacy tasks must start incomplete, got %d%%", tasks.Percentage())
	}
}

func TestProgressTaskListDecodesObjectList(t *testing.T) {
	var tasks ProgressTaskList
	raw := `[{"title":"a","completed":true,"note":"extra"},{"title":"b","completed":false}]`
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !tasks[0].Completed() || tasks[1].Completed() {
		t.Fatalf("completed flags wrong: %+v", tasks)
	}
	if tasks[0]["note"] != "extra" {
		t.Fatalf("extra fields must survive decode")
	}
}

func TestLatestProgressPicksNewestThenSmallestID(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	older := &LearningProgress{ID: uuid.New(), CreatedAt: base.Add(-time.Hour)}
	a := &LearningProgress{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), CreatedAt: base}
	b := &LearningProgress{ID: uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"), CreatedAt: base}

	if got := LatestProgress([]*LearningProgress{older, b, a}); got != a {
		t.Fatalf("expected tie to break on smallest id, got %s", got.ID)
	}
	if got := LatestProgress([]*LearningProgress{a, b, older}); got != a {
		t.Fatalf("result must not depend on input order, got %s", got.ID)
	}
	if got := LatestProgress(nil); got != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func TestCalculateProgressPercentageOverwritesClientValue(t *testing.T) {
	p := &LearningProgress{
		ProgressPercentage: 99,
		Tasks: ProgressTaskList{
			{"title": "a", "completed": true},
			{"title": "b", "completed": false},
		},
	}
	p.CalculateProgressPercentage()
	if p.ProgressPercentage != 50 {
		t.Fatalf("expected 50 got %d", p.ProgressPercentage)
	}
}
