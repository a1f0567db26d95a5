// ABOUTME: Pure read-side analytics over a snapshot of the log collection.
// ABOUTME: Personal records, volume trend, muscle distribution, body series.
package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/harperreed/fitlog/internal/models"
)

const (
	volumeTrendLimit = 15
	bodySeriesLimit  = 10

	// dateLabel formats trend axis labels as month-day.
	dateLabel = "01-02"
)

// Substring patterns identifying the three powerlifting categories.
// Matching is case-sensitive substring containment, so 深蹲跳 also
// counts toward the squat record.
const (
	squatPattern    = "深蹲"
	benchPattern    = "卧推"
	deadliftPattern = "硬拉"
)

// PersonalRecords holds the max completed-set weight per SBD category.
type PersonalRecords struct {
	Squat    float64
	Bench    float64
	Deadlift float64
}

// SBDRecords extracts squat/bench/deadlift records across all logs.
// Only completed sets can set a record; incomplete sets contribute 0.
func SBDRecords(logs []models.DailyLog) PersonalRecords {
	var prs PersonalRecords
	for _, l := range logs {
		for _, ex := range l.Exercises {
			var maxWeight float64
			for _, s := range ex.Sets {
				if s.Completed && s.Weight > maxWeight {
					maxWeight = s.Weight
				}
			}
			if strings.Contains(ex.ExerciseName, squatPattern) {
				prs.Squat = math.Max(prs.Squat, maxWeight)
			}
			if strings.Contains(ex.ExerciseName, benchPattern) {
				prs.Bench = math.Max(prs.Bench, maxWeight)
			}
			if strings.Contains(ex.ExerciseName, deadliftPattern) {
				prs.Deadlift = math.Max(prs.Deadlift, maxWeight)
			}
		}
	}
	return prs
}

// LogVolume is the training load of one session: sum of weight×reps
// over completed sets.
func LogVolume(l models.DailyLog) float64 {
	var v float64
	for _, ex := range l.Exercises {
		for _, s := range ex.Sets {
			if s.Completed {
				v += s.Weight * float64(s.Reps)
			}
		}
	}
	return v
}

// VolumePoint is one session on the volume trend axis.
type VolumePoint struct {
	Date   string
	Volume float64
}

// VolumeTrend produces a time-ascending volume series truncated to the
// most recent sessions. Date ties keep collection order (stable sort).
func VolumeTrend(logs []models.DailyLog) []VolumePoint {
	sorted := sortedByDate(logs)
	points := make([]VolumePoint, 0, len(sorted))
	for _, l := range sorted {
		points = append(points, VolumePoint{
			Date:   l.Date.Format(dateLabel),
			Volume: math.Round(LogVolume(l)),
		})
	}
	if len(points) > volumeTrendLimit {
		points = points[len(points)-volumeTrendLimit:]
	}
	return points
}

// GroupCount is the completed-set tally for one muscle group.
type GroupCount struct {
	Group models.MuscleGroup
	Sets  int
}

// MuscleDistribution counts completed sets per muscle group across all
// logs, in fixed group order. Groups with zero sets are omitted.
func MuscleDistribution(logs []models.DailyLog) []GroupCount {
	counts := make(map[models.MuscleGroup]int, len(models.AllMuscleGroups))
	for _, l := range logs {
		for _, ex := range l.Exercises {
			for _, s := range ex.Sets {
				if s.Completed {
					counts[ex.Group]++
				}
			}
		}
	}

	var out []GroupCount
	for _, g := range models.AllMuscleGroups {
		if counts[g] > 0 {
			out = append(out, GroupCount{Group: g, Sets: counts[g]})
		}
	}
	return out
}

// BodyPoint is one body-metric snapshot on the trend axis.
type BodyPoint struct {
	Date    string
	Weight  float64
	BodyFat *float64
}

// BodyMetricSeries is the time-ascending weight / body-fat series over
// logs that recorded a weight, truncated to the most recent entries.
func BodyMetricSeries(logs []models.DailyLog) []BodyPoint {
	sorted := sortedByDate(logs)
	var points []BodyPoint
	for _, l := range sorted {
		if l.Weight == nil {
			continue
		}
		points = append(points, BodyPoint{
			Date:    l.Date.Format(dateLabel),
			Weight:  *l.Weight,
			BodyFat: l.BodyFat,
		})
	}
	if len(points) > bodySeriesLimit {
		points = points[len(points)-bodySeriesLimit:]
	}
	return points
}

// Summary aggregates the dashboard headline numbers.
type Summary struct {
	TotalWorkouts int
	StreakDays    int
	TopExercise   string
}

// Summarize computes total sessions, the consecutive-day streak ending
// at the most recent session day, and the exercise with the most
// completed sets.
func Summarize(logs []models.DailyLog) Summary {
	s := Summary{TotalWorkouts: len(logs)}
	if len(logs) == 0 {
		return s
	}

	days := make(map[string]bool, len(logs))
	var latest models.DailyLog
	setCounts := make(map[string]int)
	for _, l := range logs {
		days[dayKey(l)] = true
		if l.Date.After(latest.Date) {
			latest = l
		}
		for _, ex := range l.Exercises {
			for _, set := range ex.Sets {
				if set.Completed {
					setCounts[ex.ExerciseName]++
				}
			}
		}
	}

	// Walk backwards day by day from the latest session.
	day := latest.Date
	for days[day.Format("2006-01-02")] {
		s.StreakDays++
		day = day.AddDate(0, 0, -1)
	}

	var topCount int
	names := make([]string, 0, len(setCounts))
	for name := range setCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if setCounts[name] > topCount {
			topCount = setCounts[name]
			s.TopExercise = name
		}
	}
	return s
}

func sortedByDate(logs []models.DailyLog) []models.DailyLog {
	out := make([]models.DailyLog, len(logs))
	copy(out, logs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func dayKey(l models.DailyLog) string {
	return l.Date.Format("2006-01-02")
}
