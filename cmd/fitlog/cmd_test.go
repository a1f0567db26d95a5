// ABOUTME: Tests for CLI helper functions and command wiring.
// ABOUTME: Includes end-to-end command runs against a temp store.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/store"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string no truncation", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world this is a long string", 10, "hello w..."},
		{"empty string", "", 10, ""},
		{"very short maxLen", "hello", 3, "..."},
		{"cjk within limit", "深蹲硬拉", 10, "深蹲硬拉"},
		{"cjk truncated on rune boundary", "深蹲硬拉卧推状态不错非常好", 8, "深蹲硬拉卧..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{"needs padding", "hi", 5, "hi   "},
		{"exact length", "hello", 5, "hello"},
		{"longer than length", "hello world", 5, "hello world"},
		{"empty string", "", 5, "     "},
		{"zero length", "hello", 0, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.length)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{100, "100"},
		{62.5, "62.5"},
		{0, "0"},
		{102.25, "102.25"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.input); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"12", 11, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseIndex(tt.input, "exercise")
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseIndex(%q) expected error, got nil", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseIndex(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseIndex(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a1", "a1"},
		{"12345678", "12345678"},
		{"123456789abcdef", "12345678"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := shortID(tt.input); got != tt.want {
			t.Errorf("shortID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "fitlog" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "fitlog")
	}
	if rootCmd.Short == "" {
		t.Error("Expected rootCmd.Short to be non-empty")
	}
	if rootCmd.Long == "" {
		t.Error("Expected rootCmd.Long to be non-empty")
	}
}

func TestListCmdFlags(t *testing.T) {
	limitFlag := listCmd.Flags().Lookup("limit")
	if limitFlag == nil {
		t.Fatal("Expected --limit flag on list command")
	}
	if limitFlag.DefValue != "20" {
		t.Errorf("Expected default limit 20, got %s", limitFlag.DefValue)
	}
}

func TestLogSetCmdFlags(t *testing.T) {
	for _, name := range []string{"weight", "reps", "done", "todo"} {
		if logSetCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on log set command", name)
		}
	}
}

func TestLogBodyCmdFlags(t *testing.T) {
	for _, name := range []string{"weight", "fat"} {
		if logBodyCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on log body command", name)
		}
	}
}

func TestExerciseAddCmdFlags(t *testing.T) {
	groupFlag := exerciseAddCmd.Flags().Lookup("group")
	if groupFlag == nil {
		t.Fatal("Expected --group flag on exercise add command")
	}
}

func TestListCmdAliases(t *testing.T) {
	expectedAliases := map[string]bool{"ls": false, "l": false}
	for _, alias := range listCmd.Aliases {
		if _, ok := expectedAliases[alias]; ok {
			expectedAliases[alias] = true
		}
	}
	for alias, found := range expectedAliases {
		if !found {
			t.Errorf("Expected alias %q for listCmd", alias)
		}
	}
}

func TestDeleteCmdAliases(t *testing.T) {
	found := false
	for _, alias := range deleteCmd.Aliases {
		if alias == "rm" {
			found = true
		}
	}
	if !found {
		t.Error("Expected 'rm' alias for deleteCmd")
	}
}

func TestLogCmdSubcommands(t *testing.T) {
	expected := []string{
		"new", "edit", "exercise", "add-set", "set", "rm-set", "rm-exercise",
		"mood", "notes", "date", "body", "show", "save", "discard",
	}

	cmdNames := make(map[string]bool)
	for _, cmd := range logCmd.Commands() {
		cmdNames[cmd.Name()] = true
	}

	for _, name := range expected {
		if !cmdNames[name] {
			t.Errorf("Expected log subcommand %q not found", name)
		}
	}
}

func TestReminderCmdSubcommands(t *testing.T) {
	expected := []string{"status", "on", "off", "time"}

	cmdNames := make(map[string]bool)
	for _, cmd := range reminderCmd.Commands() {
		cmdNames[cmd.Name()] = true
	}

	for _, name := range expected {
		if !cmdNames[name] {
			t.Errorf("Expected reminder subcommand %q not found", name)
		}
	}
}

func TestTopLevelCommandsRegistered(t *testing.T) {
	expected := []string{
		"log", "list", "show", "delete", "exercise", "stats",
		"calendar", "export", "import", "reminder", "mcp",
	}

	cmdNames := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdNames[cmd.Name()] = true
	}

	for _, name := range expected {
		if !cmdNames[name] {
			t.Errorf("Expected command %q to be registered", name)
		}
	}
}

// setupTestCLI redirects the store and config to temp directories.
func setupTestCLI(t *testing.T) func() {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "fitlog-cli-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	originalData := os.Getenv("XDG_DATA_HOME")
	originalConfig := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_DATA_HOME", tmpDir)
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	return func() {
		os.RemoveAll(tmpDir)
		os.Setenv("XDG_DATA_HOME", originalData)
		os.Setenv("XDG_CONFIG_HOME", originalConfig)
	}
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestLogWorkflowEndToEnd(t *testing.T) {
	cleanup := setupTestCLI(t)
	defer cleanup()

	steps := [][]string{
		{"log", "new"},
		{"log", "exercise", "深蹲"},
		{"log", "set", "1", "1", "--weight", "100", "--reps", "5", "--done"},
		{"log", "add-set", "1"},
		{"log", "set", "1", "2", "--done"},
		{"log", "notes", "leg", "day"},
		{"log", "save"},
	}
	for _, step := range steps {
		if err := execute(t, step...); err != nil {
			t.Fatalf("%v failed: %v", step, err)
		}
	}

	// Verify the committed state directly in the store.
	dataDir := filepath.Join(os.Getenv("XDG_DATA_HOME"), "fitlog")
	s, err := store.Open(dataDir)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s.Close()

	state, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if len(state.Logs) != 1 {
		t.Fatalf("Expected 1 saved session, got %d", len(state.Logs))
	}
	l := state.Logs[0]
	if l.Notes != "leg day" {
		t.Errorf("Notes = %q, want %q", l.Notes, "leg day")
	}
	if len(l.Exercises) != 1 || len(l.Exercises[0].Sets) != 2 {
		t.Fatalf("session shape wrong: %+v", l.Exercises)
	}
	// Carry-forward filled set 2 with set 1's numbers.
	if l.Exercises[0].Sets[1].Weight != 100 || l.Exercises[0].Sets[1].Reps != 5 {
		t.Errorf("set 2 = %+v, want 100kg x 5", l.Exercises[0].Sets[1])
	}

	if _, err := s.LoadDraft(); err != store.ErrNoDraft {
		t.Error("Expected draft to be cleared after save")
	}
}

func TestLogNewRejectsSecondDraft(t *testing.T) {
	cleanup := setupTestCLI(t)
	defer cleanup()

	if err := execute(t, "log", "new"); err != nil {
		t.Fatalf("log new failed: %v", err)
	}
	if err := execute(t, "log", "new"); err == nil {
		t.Error("Expected error starting a second draft")
	}
	if err := execute(t, "log", "discard"); err != nil {
		t.Errorf("log discard failed: %v", err)
	}
}

func TestExerciseAddAndListCmd(t *testing.T) {
	cleanup := setupTestCLI(t)
	defer cleanup()

	if err := execute(t, "exercise", "add", "臀桥", "--group", "legs"); err != nil {
		t.Fatalf("exercise add failed: %v", err)
	}
	if err := execute(t, "exercise", "list"); err != nil {
		t.Errorf("exercise list failed: %v", err)
	}

	dataDir := filepath.Join(os.Getenv("XDG_DATA_HOME"), "fitlog")
	s, err := store.Open(dataDir)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s.Close()

	state, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if len(state.CustomExercises) != 1 || state.CustomExercises[0].Name != "臀桥" {
		t.Errorf("custom exercises = %+v", state.CustomExercises)
	}
	if state.CustomExercises[0].Group != models.GroupLegs {
		t.Errorf("group = %s, want %s", state.CustomExercises[0].Group, models.GroupLegs)
	}
}

func TestExerciseRemoveBuiltinRejected(t *testing.T) {
	cleanup := setupTestCLI(t)
	defer cleanup()

	if err := execute(t, "exercise", "remove", "深蹲"); err == nil {
		t.Error("Expected error removing a builtin exercise")
	}
}

func TestExerciseRemoveMissingIsNoOp(t *testing.T) {
	cleanup := setupTestCLI(t)
	defer cleanup()

	if err := execute(t, "exercise", "remove", "nonexistent"); err != nil {
		t.Errorf("removing an unknown exercise should not error: %v", err)
	}
}

func TestListAndShowSurviveShortLogIDs(t *testing.T) {
	cleanup := setupTestCLI(t)
	defer cleanup()

	// Imported backups may carry ids shorter than the display prefix.
	dataDir := filepath.Join(os.Getenv("XDG_DATA_HOME"), "fitlog")
	s, err := store.Open(dataDir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	state := models.DefaultAppState()
	l := models.NewDailyLog()
	l.ID = "a1"
	state.Logs = append(state.Logs, l)
	if err := s.SaveState(state); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	if err := execute(t, "list"); err != nil {
		t.Errorf("list with short log id failed: %v", err)
	}
	if err := execute(t, "show", "a1"); err != nil {
		t.Errorf("show with short log id failed: %v", err)
	}
	if err := execute(t, "delete", "a1"); err != nil {
		t.Errorf("delete with short log id failed: %v", err)
	}
}

func TestDeleteCmdMissingIDIsNoOp(t *testing.T) {
	cleanup := setupTestCLI(t)
	defer cleanup()

	if err := execute(t, "delete", "nonexistent"); err != nil {
		t.Errorf("delete of missing id should not error: %v", err)
	}
}

func TestStatsAndCalendarOnEmptyStore(t *testing.T) {
	cleanup := setupTestCLI(t)
	defer cleanup()

	if err := execute(t, "stats"); err != nil {
		t.Errorf("stats on empty store failed: %v", err)
	}
	if err := execute(t, "calendar"); err != nil {
		t.Errorf("calendar on empty store failed: %v", err)
	}
	if err := execute(t, "list"); err != nil {
		t.Errorf("list on empty store failed: %v", err)
	}
}

func TestReminderCmds(t *testing.T) {
	cleanup := setupTestCLI(t)
	defer cleanup()

	if err := execute(t, "reminder", "on"); err != nil {
		t.Fatalf("reminder on failed: %v", err)
	}
	if err := execute(t, "reminder", "time", "07:30"); err != nil {
		t.Fatalf("reminder time failed: %v", err)
	}
	if err := execute(t, "reminder", "time", "25:99"); err == nil {
		t.Error("Expected error for invalid reminder time")
	}

	dataDir := filepath.Join(os.Getenv("XDG_DATA_HOME"), "fitlog")
	s, err := store.Open(dataDir)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s.Close()

	state, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if !state.RemindersEnabled || state.ReminderTime != "07:30" {
		t.Errorf("reminder state = %v/%s", state.RemindersEnabled, state.ReminderTime)
	}
}

func TestExportCmdToFile(t *testing.T) {
	cleanup := setupTestCLI(t)
	defer cleanup()

	exportOutput = ""
	tmpFile := filepath.Join(t.TempDir(), "backup.json")

	if err := execute(t, "export", "json", "--output", tmpFile); err != nil {
		t.Fatalf("export json failed: %v", err)
	}
	if _, err := os.Stat(tmpFile); os.IsNotExist(err) {
		t.Error("Expected export file to be created")
	}

	if err := execute(t, "import", tmpFile); err != nil {
		t.Errorf("import failed: %v", err)
	}
}

func TestExportCmdInvalidFormat(t *testing.T) {
	cleanup := setupTestCLI(t)
	defer cleanup()

	exportOutput = ""
	if err := execute(t, "export", "xml"); err == nil {
		t.Error("Expected error for unknown export format")
	}
}
