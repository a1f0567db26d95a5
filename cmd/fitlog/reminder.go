// ABOUTME: CLI commands for the daily reminder preference.
// ABOUTME: Stores an on/off flag and an HH:MM time; no scheduler is involved.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage the daily reminder preference",
	Long: `Manage the daily workout reminder preference.

This stores a flag and a time of day alongside your training data so
that clients with notification support can honor it. Nothing in this
tool schedules notifications itself.`,
}

var reminderStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current reminder setting",
	RunE: func(cmd *cobra.Command, args []string) error {
		if appState.RemindersEnabled {
			fmt.Printf("Reminders are on, daily at %s.\n", appState.ReminderTime)
		} else {
			fmt.Printf("Reminders are off (time set to %s).\n", appState.ReminderTime)
		}
		return nil
	},
}

var reminderOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable the daily reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		appState.RemindersEnabled = true
		if err := warnIfWriteFailed(st.SaveState(appState)); err != nil {
			return err
		}
		color.Green("✓ Reminders on, daily at %s", appState.ReminderTime)
		return nil
	},
}

var reminderOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable the daily reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		appState.RemindersEnabled = false
		if err := warnIfWriteFailed(st.SaveState(appState)); err != nil {
			return err
		}
		color.Green("✓ Reminders off")
		return nil
	},
}

var reminderTimeCmd = &cobra.Command{
	Use:   "time <HH:MM>",
	Short: "Set the reminder time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := time.Parse("15:04", args[0]); err != nil {
			return fmt.Errorf("invalid time: %s (use HH:MM, e.g. 18:00)", args[0])
		}
		appState.ReminderTime = args[0]
		if err := warnIfWriteFailed(st.SaveState(appState)); err != nil {
			return err
		}
		color.Green("✓ Reminder time set to %s", appState.ReminderTime)
		return nil
	},
}

func init() {
	reminderCmd.AddCommand(reminderStatusCmd)
	reminderCmd.AddCommand(reminderOnCmd)
	reminderCmd.AddCommand(reminderOffCmd)
	reminderCmd.AddCommand(reminderTimeCmd)
	rootCmd.AddCommand(reminderCmd)
}
