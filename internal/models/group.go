// ABOUTME: MuscleGroup enum with the seven fixed body-region tags.
// ABOUTME: Tag values match the original FitLog data for blob compatibility.
package models

// MuscleGroup classifies an exercise by body region.
type MuscleGroup string

const (
	GroupChest     MuscleGroup = "胸"
	GroupShoulders MuscleGroup = "肩"
	GroupBack      MuscleGroup = "背"
	GroupLegs      MuscleGroup = "腿"
	GroupArms      MuscleGroup = "胳膊"
	GroupCore      MuscleGroup = "核心"
	GroupCardio    MuscleGroup = "有氧"
)

// AllMuscleGroups lists the seven groups in display order.
var AllMuscleGroups = []MuscleGroup{
	GroupChest, GroupShoulders, GroupBack, GroupLegs,
	GroupArms, GroupCore, GroupCardio,
}

// GroupLabels maps each group to its English display label.
var GroupLabels = map[MuscleGroup]string{
	GroupChest:     "chest",
	GroupShoulders: "shoulders",
	GroupBack:      "back",
	GroupLegs:      "legs",
	GroupArms:      "arms",
	GroupCore:      "core",
	GroupCardio:    "cardio",
}

// IsValidMuscleGroup checks if s is one of the seven fixed tags.
func IsValidMuscleGroup(s string) bool {
	for _, g := range AllMuscleGroups {
		if string(g) == s {
			return true
		}
	}
	return false
}

// ParseMuscleGroup resolves either a tag value or an English label.
// Returns false if s matches neither.
func ParseMuscleGroup(s string) (MuscleGroup, bool) {
	for _, g := range AllMuscleGroups {
		if string(g) == s || GroupLabels[g] == s {
			return g, true
		}
	}
	return "", false
}
