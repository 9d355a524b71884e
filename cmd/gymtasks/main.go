package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/backup"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/cli"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/constants"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/errors"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/generator"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/logger"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/routine"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/storage/sqlite"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/timeline"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." default:"~/.config/gymtasks/gymtasks.db"`
	Owner   string `help:"Owner the commands act for." default:"local" env:"GYMTASKS_OWNER"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd `cmd:"" help:"Initialize storage."`
	Routine struct {
		Add     cli.RoutineAddCmd     `cmd:"" help:"Add a routine projected virtually over its weekdays."`
		List    cli.RoutineListCmd    `cmd:"" help:"List routines."`
		Edit    cli.RoutineEditCmd    `cmd:"" help:"Edit a routine's definition."`
		Restore cli.RoutineRestoreCmd `cmd:"" help:"Reactivate a deactivated routine."`
		Done    cli.RoutineDoneCmd    `cmd:"" help:"Complete a routine for a day."`
		Undone  cli.RoutineUndoneCmd  `cmd:"" help:"Undo a completion."`
		Skip    cli.RoutineSkipCmd    `cmd:"" help:"Skip a routine on a day."`
		Unskip  cli.RoutineUnskipCmd  `cmd:"" help:"Remove a skip."`
		Delete  cli.RoutineDeleteCmd  `cmd:"" help:"Deactivate or permanently delete a routine."`
	} `cmd:"" help:"Manage routines."`
	Task struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a standalone task."`
		List   cli.TaskListCmd   `cmd:"" help:"List tasks in a date range."`
		Done   cli.TaskDoneCmd   `cmd:"" help:"Complete a task."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage standalone tasks."`
	Recurring struct {
		Add    cli.RecurringAddCmd    `cmd:"" help:"Add a recurring task that materializes into rows."`
		List   cli.RecurringListCmd   `cmd:"" help:"List recurring tasks."`
		Edit   cli.RecurringEditCmd   `cmd:"" help:"Edit a recurring task (retracts and regenerates its window)."`
		Delete cli.RecurringDeleteCmd `cmd:"" help:"Delete a recurring task and its generated rows."`
	} `cmd:"" help:"Manage materializing recurring tasks."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Snapshot the database."`
		List    cli.BackupListCmd    `cmd:"" help:"List available snapshots."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the database from a snapshot."`
	} `cmd:"" help:"Back up and restore the database."`
	Generate cli.GenerateCmd      `cmd:"" help:"Materialize recurring tasks over a window."`
	Timeline cli.TimelineCmd      `cmd:"" help:"Show the merged timeline for a date range."`
	Rewards  cli.RewardBalanceCmd `cmd:"" help:"Show the reward balance."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Recurring-task companion: routines, one-off tasks and a merged timeline"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	dbPath := expandPath(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(dbPath)}); err != nil {
		errors.Fatal(err)
	}

	store := sqlite.NewStore(dbPath)
	if kctx.Command() != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	routines := routine.NewService(store)
	gen := generator.New(store, generator.Config{HorizonDays: constants.DefaultHorizonDays})

	ctx := &cli.Context{
		Store:     store,
		Routines:  routines,
		Generator: gen,
		Timeline:  timeline.New(store, routines),
		Backup:    backup.NewManager(dbPath),
		Owner:     CLI.Owner,
	}

	errors.Fatal(kctx.Run(ctx))
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
