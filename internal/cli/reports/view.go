package reports

import (
	"github.com/julianstephens/clockings/internal/cli"
	"github.com/julianstephens/clockings/internal/tui"
)

var runViewer = tui.Run

type ViewCmd struct {
	Input string `short:"i" help:"Clockings file to read." default:"${input}"`
	Leave int    `short:"l" help:"Days of leave taken this month (prompted for when unset)." default:"${leave}"`
}

// Run opens the interactive viewer. Nothing is written to disk.
func (c *ViewCmd) Run(ctx *cli.Context) error {
	today, err := ctx.Today()
	if err != nil {
		return err
	}
	leave, err := ResolveLeave(c.Leave, today)
	if err != nil {
		return err
	}
	res, err := Build(ctx, c.Input, leave, today)
	if err != nil {
		return err
	}
	return runViewer(res)
}
