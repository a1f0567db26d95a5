// ABOUTME: DailyLog, WorkoutExercise and SetRecord models for training sessions.
// ABOUTME: Exercise name/group are denormalized into the log at add-time.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMood is the mood a fresh session starts with.
const DefaultMood = "😊"

// SetRecord is one performed set of one exercise in one session.
// Weight and reps may legitimately be 0 while a set is un-filled.
type SetRecord struct {
	ID        string  `json:"id"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

// NewSetRecord creates an empty, uncompleted set.
func NewSetRecord() SetRecord {
	return SetRecord{ID: uuid.New().String()}
}

// WorkoutExercise is one exercise performed within a session.
// ExerciseName and Group are frozen copies taken when the exercise is
// added, so the session renders correctly even if the library entry is
// deleted later. ExerciseId is a weak reference with no integrity
// enforcement; never follow it for display.
type WorkoutExercise struct {
	ExerciseID   string      `json:"exerciseId"`
	ExerciseName string      `json:"exerciseName"`
	Group        MuscleGroup `json:"group"`
	Sets         []SetRecord `json:"sets"`
}

// DailyLog is one recorded workout session. Weight and BodyFat are
// optional body-metric snapshots, independent of the exercise data.
type DailyLog struct {
	ID        string            `json:"id"`
	Date      time.Time         `json:"date"`
	Exercises []WorkoutExercise `json:"exercises"`
	Mood      string            `json:"mood"`
	Notes     string            `json:"notes"`
	Weight    *float64          `json:"weight,omitempty"`
	BodyFat   *float64          `json:"bodyFat,omitempty"`
}

// NewDailyLog creates a fresh session dated now.
func NewDailyLog() DailyLog {
	return DailyLog{
		ID:        uuid.New().String(),
		Date:      time.Now(),
		Exercises: []WorkoutExercise{},
		Mood:      DefaultMood,
	}
}

// Clone returns a deep copy of the log.
func (l DailyLog) Clone() DailyLog {
	out := l
	out.Exercises = make([]WorkoutExercise, len(l.Exercises))
	for i, ex := range l.Exercises {
		cp := ex
		cp.Sets = make([]SetRecord, len(ex.Sets))
		copy(cp.Sets, ex.Sets)
		out.Exercises[i] = cp
	}
	if l.Weight != nil {
		w := *l.Weight
		out.Weight = &w
	}
	if l.BodyFat != nil {
		f := *l.BodyFat
		out.BodyFat = &f
	}
	return out
}
