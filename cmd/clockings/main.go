package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/julianstephens/clockings/internal/classifier"
	"github.com/julianstephens/clockings/internal/cli"
	"github.com/julianstephens/clockings/internal/cli/archives"
	"github.com/julianstephens/clockings/internal/cli/reports"
	"github.com/julianstephens/clockings/internal/cli/sources"
	"github.com/julianstephens/clockings/internal/cli/system"
	"github.com/julianstephens/clockings/internal/config"
	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/errors"
	"github.com/julianstephens/clockings/internal/logger"
	"github.com/julianstephens/clockings/internal/utils"
)

var CLI struct {
	Version    kong.VersionFlag
	Verbose    bool   `name:"debug" help:"Write debug logs to stderr as well as the log file."`
	Dir        string `help:"Directory holding the clockings file and the reports." type:"path" default:"${dir}"`
	Timezone   string `help:"IANA timezone that decides today's date." default:"${timezone}"`
	Vocabulary string `help:"Classifier vocabulary file (YAML). Defaults to the one written by init, else the built-in table." default:"${vocabulary}"`

	Report  reports.ReportCmd  `cmd:"" help:"Build the monthly report from the clockings file." default:"withargs"`
	Extract sources.ExtractCmd `cmd:"" help:"Extract clockings from a saved grid page."`
	View    reports.ViewCmd    `cmd:"" help:"Browse the month's report interactively."`
	Watch   reports.WatchCmd   `cmd:"" help:"Rebuild the report whenever the clockings file changes."`
	Archive struct {
		List    archives.ListCmd    `cmd:"" help:"List archived reports." default:"1"`
		Restore archives.RestoreCmd `cmd:"" help:"Restore an archived report."`
	} `cmd:"" help:"Manage archived reports."`
	Init     system.InitCmd   `cmd:"" help:"Write the default vocabulary and reminders files."`
	Doctor   system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Diagnose system.DebugCmd  `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		errors.Fatal(err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Monthly worked-time report from attendance terminal clockings"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":    constants.Version,
			"dir":        cfg.Dir,
			"input":      cfg.Input,
			"reminders":  cfg.Reminders,
			"vocabulary": cfg.Vocabulary,
			"timezone":   cfg.Timezone,
			"leave":      strconv.Itoa(cfg.Leave),
			"selector":   constants.DefaultGridSelector,
		},
	)

	// Flags win over the environment
	cfg.Dir = CLI.Dir
	cfg.Timezone = CLI.Timezone
	cfg.Vocabulary = CLI.Vocabulary
	if !utils.ValidateTimezone(cfg.Timezone) {
		errors.Fatalf("invalid timezone %q", cfg.Timezone)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Verbose,
		ConfigDir: cfg.ConfigDir,
		RunID:     uuid.New().String(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("Starting", "version", constants.Version, "command", ctx.Command(), "dir", cfg.Dir)

	appCtx, err := cli.NewContext(cfg)
	if err != nil {
		// init and doctor must still run when the vocabulary is broken
		switch ctx.Command() {
		case "init", "doctor":
			logger.Warn("Falling back to the built-in vocabulary", "error", err)
			appCtx = &cli.Context{Config: cfg, Classifier: classifier.Default(), Out: os.Stdout}
		default:
			errors.Fatal(err)
		}
	}

	errors.Fatal(ctx.Run(appCtx))
}
