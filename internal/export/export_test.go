// ABOUTME: Tests for the export formats and JSON restore.
// ABOUTME: Checks report layout against the original FitLog export shape.
package export

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

func sampleState() *models.AppState {
	state := models.DefaultAppState()
	state.RemindersEnabled = true

	w, f := 75.5, 18.0
	l := models.NewDailyLog()
	l.ID = "log-1"
	l.Date = time.Date(2026, 3, 5, 19, 0, 0, 0, time.Local)
	l.Mood = "💪"
	l.Notes = "状态不错"
	l.Weight = &w
	l.BodyFat = &f
	l.Exercises = []models.WorkoutExercise{{
		ExerciseID:   "7",
		ExerciseName: "深蹲",
		Group:        models.GroupLegs,
		Sets: []models.SetRecord{
			{ID: "s1", Weight: 100, Reps: 5, Completed: true},
			{ID: "s2", Weight: 102.5, Reps: 3, Completed: false},
		},
	}}
	state.Logs = append(state.Logs, l)
	state.CustomExercises = append(state.CustomExercises,
		models.Exercise{ID: "c1", Name: "臀桥", Group: models.GroupLegs, IsCustom: true})
	return state
}

func TestReport(t *testing.T) {
	got := Report(sampleState())

	wantLines := []string{
		"# FitLog 健身记录导出",
		"## 2026/03/05 💪",
		"体重: 75.5kg | 体脂: 18%",
		"### 深蹲 (腿)",
		"- 第 1 组: 100kg x 5次 ✅",
		"- 第 2 组: 102.5kg x 3次 ❌",
		"笔记: 状态不错",
		"---",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("report missing %q\n%s", line, got)
		}
	}
}

func TestReportSkipsAbsentMetrics(t *testing.T) {
	state := models.DefaultAppState()
	l := models.NewDailyLog()
	state.Logs = append(state.Logs, l)

	got := Report(state)
	if strings.Contains(got, "体重") {
		t.Error("report should omit the body line when no weight is recorded")
	}
}

func TestJSONBackupRoundTrip(t *testing.T) {
	state := sampleState()

	data, err := JSON(state)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(string(data), `"version": "1.0"`) {
		t.Error("backup envelope missing version")
	}

	got, err := ImportJSON(data)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(got.Logs) != 1 || got.Logs[0].ID != "log-1" {
		t.Errorf("logs lost in round trip: %+v", got.Logs)
	}
	if len(got.CustomExercises) != 1 || got.CustomExercises[0].Name != "臀桥" {
		t.Errorf("customs lost in round trip: %+v", got.CustomExercises)
	}
	if !got.RemindersEnabled {
		t.Error("reminder flag lost in round trip")
	}
}

func TestYAMLExport(t *testing.T) {
	data, err := YAML(sampleState())
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	for _, want := range []string{"version:", "tool: fitlog", "深蹲"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("yaml missing %q", want)
		}
	}
}

func TestImportJSONInvalid(t *testing.T) {
	if _, err := ImportJSON([]byte("{not json")); err == nil {
		t.Error("expected error for malformed input")
	}
	if _, err := ImportJSON([]byte(`{"version":"1.0"}`)); err == nil {
		t.Error("expected error for backup without state")
	}
}

func TestImportJSONBackfillsNilSlices(t *testing.T) {
	got, err := ImportJSON([]byte(`{"version":"1.0","state":{}}`))
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got.Logs == nil || got.CustomExercises == nil {
		t.Error("expected nil slices to be backfilled")
	}
	if got.ReminderTime != models.DefaultReminderTime {
		t.Errorf("ReminderTime = %s, want default", got.ReminderTime)
	}
}
