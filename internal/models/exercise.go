// ABOUTME: Exercise model and the fixed builtin exercise table.
// ABOUTME: Builtin ids and names match the original FitLog data.
package models

import (
	"github.com/google/uuid"
)

// Exercise is one entry in the exercise library.
// Builtins are immutable; customs are user-created and deletable.
type Exercise struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Group    MuscleGroup `json:"group"`
	IsCustom bool        `json:"isCustom"`
}

// builtinExercises is the fixed library every install ships with.
// Ids stay "1".."12" for compatibility with existing blobs.
var builtinExercises = []Exercise{
	{ID: "1", Name: "杠铃卧推", Group: GroupChest},
	{ID: "2", Name: "哑铃飞鸟", Group: GroupChest},
	{ID: "3", Name: "推举", Group: GroupShoulders},
	{ID: "4", Name: "侧平举", Group: GroupShoulders},
	{ID: "5", Name: "引体向上", Group: GroupBack},
	{ID: "6", Name: "划船", Group: GroupBack},
	{ID: "7", Name: "深蹲", Group: GroupLegs},
	{ID: "8", Name: "硬拉", Group: GroupLegs},
	{ID: "9", Name: "杠铃弯举", Group: GroupArms},
	{ID: "10", Name: "三头下压", Group: GroupArms},
	{ID: "11", Name: "卷腹", Group: GroupCore},
	{ID: "12", Name: "跑步", Group: GroupCardio},
}

// BuiltinExercises returns a copy of the fixed builtin library.
func BuiltinExercises() []Exercise {
	out := make([]Exercise, len(builtinExercises))
	copy(out, builtinExercises)
	return out
}

// IsBuiltinExerciseID reports whether id belongs to a builtin exercise.
func IsBuiltinExerciseID(id string) bool {
	for _, e := range builtinExercises {
		if e.ID == id {
			return true
		}
	}
	return false
}

// NewCustomExercise creates a user-defined exercise with a generated id.
func NewCustomExercise(name string, group MuscleGroup) Exercise {
	return Exercise{
		ID:       uuid.New().String(),
		Name:     name,
		Group:    group,
		IsCustom: true,
	}
}
