package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/clockings/internal/cli"
	"github.com/julianstephens/clockings/internal/clockings"
)

type DebugCmd struct {
	Paths    *DebugPathsCmd    `cmd:"" help:"Show resolved file paths."`
	Classify *DebugClassifyCmd `cmd:"" help:"Show the direction a description is classified as."`
	Events   *DebugEventsCmd   `cmd:"" help:"Dump the classified events of the clockings file as JSON."`
}

type DebugPathsCmd struct{}

func (cmd *DebugPathsCmd) Run(ctx *cli.Context) error {
	vocabulary := cli.VocabularyPath(ctx.Config)
	if vocabulary == "" {
		vocabulary = "built-in"
	}
	output := map[string]string{
		"dir":        ctx.Config.Dir,
		"input":      ctx.Config.Resolve(ctx.Config.Input),
		"reminders":  ctx.Config.Resolve(ctx.Config.Reminders),
		"vocabulary": vocabulary,
		"config_dir": ctx.Config.ConfigDir,
		"archives":   ctx.Archives().GetArchiveDir(),
	}
	return printJSON(ctx, output)
}

type DebugClassifyCmd struct {
	Description string `arg:"" help:"Terminal description, e.g. \"HO Main Staff IN\"."`
}

func (cmd *DebugClassifyCmd) Run(ctx *cli.Context) error {
	ctx.Println(ctx.Classifier.Classify(cmd.Description).String())
	return nil
}

type DebugEventsCmd struct {
	Input string `short:"i" help:"Clockings file to read." default:"${input}"`
}

func (cmd *DebugEventsCmd) Run(ctx *cli.Context) error {
	events, err := clockings.ReadFile(ctx.Config.Resolve(cmd.Input), ctx.Classifier)
	if err != nil {
		return err
	}
	return printJSON(ctx, events)
}

func printJSON(ctx *cli.Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}
