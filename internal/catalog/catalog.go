// ABOUTME: Exercise catalog merging the fixed builtin library with
// ABOUTME: user-defined custom exercises stored in AppState.
package catalog

import (
	"errors"
	"strings"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/store"
)

// ErrNotFound is returned when no exercise matches a lookup.
var ErrNotFound = errors.New("exercise not found")

// Saver persists the full AppState after a mutation.
type Saver interface {
	SaveState(*models.AppState) error
}

// Catalog owns the custom-exercise set inside AppState. Builtins come
// from the fixed table in models and can never be removed.
type Catalog struct {
	state *models.AppState
	saver Saver
}

// New creates a catalog over the given state.
func New(state *models.AppState, saver Saver) *Catalog {
	return &Catalog{state: state, saver: saver}
}

// All returns builtins first, then customs in creation order.
func (c *Catalog) All() []models.Exercise {
	out := models.BuiltinExercises()
	return append(out, c.state.CustomExercises...)
}

// Find looks up an exercise by id or exact name.
func (c *Catalog) Find(idOrName string) (models.Exercise, error) {
	for _, ex := range c.All() {
		if ex.ID == idOrName || ex.Name == idOrName {
			return ex, nil
		}
	}
	return models.Exercise{}, ErrNotFound
}

// AddCustom creates a custom exercise with a fresh unique id and
// appends it to the custom set. The name must be non-empty after
// trimming and the group must be one of the seven fixed tags.
func (c *Catalog) AddCustom(name string, group models.MuscleGroup) (models.Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Exercise{}, models.Invalid("exercise name must not be empty")
	}
	if !models.IsValidMuscleGroup(string(group)) {
		return models.Exercise{}, models.Invalid("unknown muscle group: %s", group)
	}

	ex := models.NewCustomExercise(name, group)
	c.state.CustomExercises = append(c.state.CustomExercises, ex)
	if err := c.saver.SaveState(c.state); err != nil {
		return ex, &store.WriteError{Err: err}
	}
	return ex, nil
}

// RemoveCustom deletes a custom exercise by id. Unknown ids are a
// no-op. Builtin ids are rejected; the builtin library is immutable.
// Existing logs keep their denormalized name/group untouched.
func (c *Catalog) RemoveCustom(id string) error {
	if models.IsBuiltinExerciseID(id) {
		return models.Invalid("builtin exercise %s cannot be removed", id)
	}

	for i, ex := range c.state.CustomExercises {
		if ex.ID == id {
			c.state.CustomExercises = append(c.state.CustomExercises[:i], c.state.CustomExercises[i+1:]...)
			if err := c.saver.SaveState(c.state); err != nil {
				return &store.WriteError{Err: err}
			}
			return nil
		}
	}
	return nil
}
