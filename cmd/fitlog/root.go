// ABOUTME: Root Cobra command for fitlog CLI.
// ABOUTME: Opens the store and loads state via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/fitlog/internal/catalog"
	"github.com/harperreed/fitlog/internal/config"
	"github.com/harperreed/fitlog/internal/logbook"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/store"
)

var (
	st       *store.Store
	appState *models.AppState
	book     *logbook.Book
	library  *catalog.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "Personal fitness log",
	Long: `Fitlog is a CLI tool for recording workout sessions.

WHAT IT TRACKS:

  Sessions    exercises, sets (weight × reps, done/not done), mood, notes
  Body        optional per-session weight and body-fat snapshot
  Library     12 builtin exercises across 7 muscle groups, plus your own

QUICK START:

  $ fitlog log new                    # Start a session
  $ fitlog log exercise 深蹲          # Add an exercise to it
  $ fitlog log set 1 1 -w 100 -r 5 --done
  $ fitlog log save                   # Commit the session
  $ fitlog list                       # See recent sessions
  $ fitlog stats                      # PRs, volume trend, distribution
  $ fitlog calendar                   # Month view of training days

EDIT SESSIONS:

  A session in progress is saved as a draft after every edit, so it
  survives between invocations. Finish with 'log save' or abandon with
  'log discard'.

DATA STORAGE:

  Everything lives in a local key-value store under ~/.local/share/fitlog.
  The whole state is written back after every change; there is no server
  and no sync.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that don't touch the store
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		st, err = store.Open(cfg.GetDataDir())
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		appState, err = st.LoadState()
		if err != nil {
			_ = st.Close()
			return fmt.Errorf("failed to load state: %w", err)
		}

		book = logbook.New(appState, st)
		library = catalog.New(appState, st)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			return st.Close()
		}
		return nil
	},
}
