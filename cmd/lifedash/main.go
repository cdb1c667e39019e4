package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/julianstephens/lifedash/internal/cli"
	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/dashboard"
	"github.com/julianstephens/lifedash/internal/notify"
	"github.com/julianstephens/lifedash/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data file path; .json selects the JSON store, anything else SQLite." type:"path" default:"~/.config/lifedash/lifedash.db"`

	Init  cli.InitCmd  `cmd:"" help:"Set up your dashboard."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Stats cli.StatsCmd `cmd:"" help:"Show today's overview and insights."`
	Quote cli.QuoteCmd `cmd:"" help:"Print the quote of the day."`
	Focus cli.FocusCmd `cmd:"" help:"Run a focus session timer."`

	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a habit."`
		Toggle cli.HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits with streaks."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`

	Journal struct {
		Write cli.JournalWriteCmd `cmd:"" help:"Write or rewrite a day's entry."`
		List  cli.JournalListCmd  `cmd:"" help:"List recent entries."`
	} `cmd:"" help:"Manage journal entries."`

	Expense struct {
		Add  cli.ExpenseAddCmd  `cmd:"" help:"Record an expense or income."`
		List cli.ExpenseListCmd `cmd:"" help:"Show this month's money summary."`
	} `cmd:"" help:"Manage finances."`

	Health struct {
		Log  cli.HealthLogCmd  `cmd:"" help:"Record or rewrite a day's health log."`
		List cli.HealthListCmd `cmd:"" help:"List recent health logs."`
	} `cmd:"" help:"Manage health logs."`

	Goal struct {
		Add       cli.GoalAddCmd       `cmd:"" help:"Add a goal."`
		List      cli.GoalListCmd      `cmd:"" help:"List goals with progress."`
		Progress  cli.GoalProgressCmd  `cmd:"" help:"Set a goal's progress."`
		Milestone cli.GoalMilestoneCmd `cmd:"" help:"Toggle a milestone."`
	} `cmd:"" help:"Manage goals."`

	Task struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a task."`
		Status cli.TaskStatusCmd `cmd:"" help:"Change a task's status."`
		List   cli.TaskListCmd   `cmd:"" help:"List tasks."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`

	Settings struct {
		Show   cli.SettingsShowCmd   `cmd:"" help:"Show current settings."`
		Theme  cli.SettingsThemeCmd  `cmd:"" help:"Toggle light/dark theme."`
		Module cli.SettingsModuleCmd `cmd:"" help:"Enable or disable a module."`
	} `cmd:"" help:"Manage settings."`

	Export cli.ExportCmd `cmd:"" help:"Export all data to a JSON file."`
	Import cli.ImportCmd `cmd:"" help:"Import data from a JSON export."`
	Clear  cli.ClearCmd  `cmd:"" help:"Delete all data (settings are kept)."`

	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Write a backup beside the data file."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups, newest first."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup (current state is backed up first)."`
	} `cmd:"" help:"Manage backups."`
}

// setupLogging routes the log to a file beside the data file so it never
// interleaves with TUI output. Logging failures fall back to a no-op logger.
func setupLogging(dataPath string) func() {
	logPath := filepath.Join(filepath.Dir(dataPath), "lifedash.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		log.Logger = zerolog.Nop()
		return func() {}
	}

	logFile, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(0o600))
	if err != nil {
		log.Logger = zerolog.Nop()
		return func() {}
	}

	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05", NoColor: true,
	})
	return func() { logFile.Close() }
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description(constants.AppDescription),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	closeLog := setupLogging(CLI.Data)
	defer closeLog()

	store := storage.Open(CLI.Data)
	defer store.Close()

	appCtx := &cli.Context{
		Dashboard: dashboard.Open(store),
		Notify:    notify.NewConsole(),
		DataPath:  CLI.Data,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
