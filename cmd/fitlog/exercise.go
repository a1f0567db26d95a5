// ABOUTME: CLI commands for the exercise library.
// ABOUTME: Builtins are fixed; customs can be added and removed.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fitlog/internal/models"
)

var exerciseGroup string

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage the exercise library",
	Long: `Browse and extend the exercise library.

The library ships with 12 builtin exercises across 7 muscle groups:
chest, shoulders, back, legs, arms, core, cardio. Builtins cannot be
removed. Custom exercises are yours to add and delete; deleting one
never touches sessions that already reference it.`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		for _, ex := range library.All() {
			marker := ""
			if ex.IsCustom {
				marker = faint.Sprint(" (custom)")
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprint(padRight(shortID(ex.ID), 8)),
				padRight(groupTag(ex.Group), 20),
				ex.Name,
				marker)
		}
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom exercise",
	Long: `Add a custom exercise to the library.

Examples:
  fitlog exercise add 臀桥 --group legs
  fitlog exercise add "Face Pull" --group shoulders`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group, ok := models.ParseMuscleGroup(exerciseGroup)
		if !ok {
			return fmt.Errorf("unknown muscle group: %s (use chest, shoulders, back, legs, arms, core, or cardio)", exerciseGroup)
		}

		ex, err := library.AddCustom(args[0], group)
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid exercise: %s", verr.Reason)
		}
		if err := warnIfWriteFailed(err); err != nil {
			return err
		}

		color.Green("✓ Added %s (%s)", ex.Name, groupTag(ex.Group))
		fmt.Printf("  ID: %s\n", shortID(ex.ID))
		return nil
	},
}

var exerciseRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a custom exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, name, ok := resolveExercise(args[0])
		if !ok {
			fmt.Printf("No exercise matching %s; nothing removed.\n", args[0])
			return nil
		}

		err := library.RemoveCustom(id)
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%s", verr.Reason)
		}
		if err := warnIfWriteFailed(err); err != nil {
			return err
		}
		color.Green("✓ Removed %s (past sessions keep their records)", name)
		return nil
	},
}

// resolveExercise maps an id prefix or exact name to a full id.
func resolveExercise(idOrName string) (id, name string, ok bool) {
	for _, ex := range library.All() {
		if ex.ID == idOrName || ex.Name == idOrName ||
			(len(idOrName) >= 8 && strings.HasPrefix(ex.ID, idOrName)) {
			return ex.ID, ex.Name, true
		}
	}
	return "", "", false
}

func init() {
	exerciseAddCmd.Flags().StringVarP(&exerciseGroup, "group", "g", "", "muscle group (required)")
	_ = exerciseAddCmd.MarkFlagRequired("group")

	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseRemoveCmd)
	rootCmd.AddCommand(exerciseCmd)
}
