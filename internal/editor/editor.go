// ABOUTME: In-progress edit buffer for one DailyLog, independent of the
// ABOUTME: log book until committed. Auto-saves to the draft side channel.
package editor

import (
	"math"
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

// DraftSaver persists the draft after each edit. The write is
// best-effort; a failed draft save never blocks an edit.
type DraftSaver interface {
	SaveDraft(*models.DailyLog) error
	ClearDraft() error
}

// Draft wraps exactly one DailyLog as a mutable edit buffer.
type Draft struct {
	log   models.DailyLog
	saver DraftSaver
}

// Begin starts an edit session. With an existing log it edits a deep
// copy; with nil it creates a fresh session dated now.
func Begin(existing *models.DailyLog, saver DraftSaver) *Draft {
	var l models.DailyLog
	if existing != nil {
		l = existing.Clone()
	} else {
		l = models.NewDailyLog()
	}
	d := &Draft{log: l, saver: saver}
	d.autosave()
	return d
}

// Resume wraps a previously saved draft without resetting it.
func Resume(saved models.DailyLog, saver DraftSaver) *Draft {
	return &Draft{log: saved, saver: saver}
}

// Log returns a deep copy of the draft's current content.
func (d *Draft) Log() models.DailyLog {
	return d.log.Clone()
}

// AddExercise appends the exercise to the session, copying its name and
// group, seeded with one empty set.
func (d *Draft) AddExercise(ex models.Exercise) {
	d.log.Exercises = append(d.log.Exercises, models.WorkoutExercise{
		ExerciseID:   ex.ID,
		ExerciseName: ex.Name,
		Group:        ex.Group,
		Sets:         []models.SetRecord{models.NewSetRecord()},
	})
	d.autosave()
}

// RemoveExercise removes the whole exercise entry at exIdx.
func (d *Draft) RemoveExercise(exIdx int) error {
	if exIdx < 0 || exIdx >= len(d.log.Exercises) {
		return models.Invalid("no exercise #%d in this session", exIdx+1)
	}
	d.log.Exercises = append(d.log.Exercises[:exIdx], d.log.Exercises[exIdx+1:]...)
	d.autosave()
	return nil
}

// AddSet appends a set to the exercise at exIdx. Weight and reps carry
// forward from the preceding set; completed always starts false.
func (d *Draft) AddSet(exIdx int) error {
	if exIdx < 0 || exIdx >= len(d.log.Exercises) {
		return models.Invalid("no exercise #%d in this session", exIdx+1)
	}
	ex := &d.log.Exercises[exIdx]
	set := models.NewSetRecord()
	if n := len(ex.Sets); n > 0 {
		set.Weight = ex.Sets[n-1].Weight
		set.Reps = ex.Sets[n-1].Reps
	}
	ex.Sets = append(ex.Sets, set)
	d.autosave()
	return nil
}

// RemoveSet removes one set. An exercise left with zero sets stays in
// the session; it is not auto-removed.
func (d *Draft) RemoveSet(exIdx, setIdx int) error {
	ex, err := d.exercise(exIdx)
	if err != nil {
		return err
	}
	if setIdx < 0 || setIdx >= len(ex.Sets) {
		return models.Invalid("no set #%d on exercise #%d", setIdx+1, exIdx+1)
	}
	ex.Sets = append(ex.Sets[:setIdx], ex.Sets[setIdx+1:]...)
	d.autosave()
	return nil
}

// SetPatch carries the fields of one set to merge. Nil fields keep the
// existing value.
type SetPatch struct {
	Weight    *float64
	Reps      *int
	Completed *bool
}

// UpdateSet merges the patch into the set at exIdx/setIdx. Numeric
// input is coerced so the stored weight and reps are always well-formed
// non-negative numbers; NaN, infinities and negatives become 0.
func (d *Draft) UpdateSet(exIdx, setIdx int, patch SetPatch) error {
	ex, err := d.exercise(exIdx)
	if err != nil {
		return err
	}
	if setIdx < 0 || setIdx >= len(ex.Sets) {
		return models.Invalid("no set #%d on exercise #%d", setIdx+1, exIdx+1)
	}

	set := &ex.Sets[setIdx]
	if patch.Weight != nil {
		set.Weight = coerceWeight(*patch.Weight)
	}
	if patch.Reps != nil {
		set.Reps = coerceReps(*patch.Reps)
	}
	if patch.Completed != nil {
		set.Completed = *patch.Completed
	}
	d.autosave()
	return nil
}

// SetMood sets the session mood tag.
func (d *Draft) SetMood(mood string) {
	d.log.Mood = mood
	d.autosave()
}

// SetNotes sets the free-form session notes.
func (d *Draft) SetNotes(notes string) {
	d.log.Notes = notes
	d.autosave()
}

// SetDate moves the session to another timestamp.
func (d *Draft) SetDate(t time.Time) {
	d.log.Date = t
	d.autosave()
}

// SetBodyMetrics records the optional weight / body-fat snapshot.
// Nil clears a metric; invalid numbers are dropped rather than stored.
func (d *Draft) SetBodyMetrics(weight, bodyFat *float64) {
	d.log.Weight = sanitizeMetric(weight)
	d.log.BodyFat = sanitizeMetric(bodyFat)
	d.autosave()
}

// Commit finishes the session and returns it for the caller to upsert.
// No validation blocks commit; an empty session is a legal log.
func (d *Draft) Commit() models.DailyLog {
	if d.saver != nil {
		_ = d.saver.ClearDraft()
	}
	return d.log.Clone()
}

// Discard abandons the session and clears the side channel.
func (d *Draft) Discard() {
	if d.saver != nil {
		_ = d.saver.ClearDraft()
	}
}

func (d *Draft) exercise(exIdx int) (*models.WorkoutExercise, error) {
	if exIdx < 0 || exIdx >= len(d.log.Exercises) {
		return nil, models.Invalid("no exercise #%d in this session", exIdx+1)
	}
	return &d.log.Exercises[exIdx], nil
}

func (d *Draft) autosave() {
	if d.saver != nil {
		_ = d.saver.SaveDraft(&d.log)
	}
}

func coerceWeight(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0
	}
	return w
}

func coerceReps(r int) int {
	if r < 0 {
		return 0
	}
	return r
}

func sanitizeMetric(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return nil
	}
	cp := *v
	return &cp
}
