// ABOUTME: Export formats for the fitness log: text report plus
// ABOUTME: JSON and YAML backup envelopes, and JSON restore.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/fitlog/internal/models"
)

// Backup is the full-state export envelope.
type Backup struct {
	Version    string           `json:"version" yaml:"version"`
	ExportedAt time.Time        `json:"exported_at" yaml:"exported_at"`
	Tool       string           `json:"tool" yaml:"tool"`
	State      *models.AppState `json:"state" yaml:"state"`
}

func newBackup(state *models.AppState) *Backup {
	return &Backup{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fitlog",
		State:      state,
	}
}

// JSON exports the full state as indented JSON.
func JSON(state *models.AppState) ([]byte, error) {
	return json.MarshalIndent(newBackup(state), "", "  ")
}

// YAML exports the full state as YAML.
func YAML(state *models.AppState) ([]byte, error) {
	return yaml.Marshal(newBackup(state))
}

// ImportJSON restores an AppState from a JSON backup.
func ImportJSON(data []byte) (*models.AppState, error) {
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("unmarshal backup: %w", err)
	}
	if b.State == nil {
		return nil, fmt.Errorf("backup has no state")
	}
	if b.State.Logs == nil {
		b.State.Logs = []models.DailyLog{}
	}
	if b.State.CustomExercises == nil {
		b.State.CustomExercises = []models.Exercise{}
	}
	if b.State.ReminderTime == "" {
		b.State.ReminderTime = models.DefaultReminderTime
	}
	return b.State, nil
}

// Report renders the human-readable training report: one section per
// log in stored order, matching the original FitLog export layout.
func Report(state *models.AppState) string {
	var sb strings.Builder
	sb.WriteString("# FitLog 健身记录导出\n\n")

	for _, l := range state.Logs {
		sb.WriteString(fmt.Sprintf("## %s %s\n", l.Date.Local().Format("2006/01/02"), l.Mood))
		if l.Weight != nil {
			sb.WriteString(fmt.Sprintf("体重: %skg | 体脂: %s%%\n", formatNumber(*l.Weight), formatOptional(l.BodyFat)))
		}
		for _, ex := range l.Exercises {
			sb.WriteString(fmt.Sprintf("### %s (%s)\n", ex.ExerciseName, ex.Group))
			for i, set := range ex.Sets {
				mark := "❌"
				if set.Completed {
					mark = "✅"
				}
				sb.WriteString(fmt.Sprintf("- 第 %d 组: %skg x %d次 %s\n", i+1, formatNumber(set.Weight), set.Reps, mark))
			}
		}
		if l.Notes != "" {
			sb.WriteString(fmt.Sprintf("笔记: %s\n", l.Notes))
		}
		sb.WriteString("\n---\n\n")
	}
	return sb.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "--"
	}
	return formatNumber(*v)
}
