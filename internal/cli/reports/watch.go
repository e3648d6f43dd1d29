package reports

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/clockings/internal/cli"
	"github.com/julianstephens/clockings/internal/logger"
	"github.com/julianstephens/clockings/internal/watcher"
)

var watchContext = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

type WatchCmd struct {
	Input    string        `short:"i" help:"Clockings file to watch." default:"${input}"`
	Leave    int           `short:"l" help:"Days of leave taken this month (prompted for when unset)." default:"${leave}"`
	XLSX     bool          `name:"xlsx" help:"Also write the report as a spreadsheet."`
	Notify   bool          `help:"Show a desktop notification after every regeneration."`
	Debounce time.Duration `help:"Quiet period before regenerating." default:"500ms"`
}

// Run regenerates the report every time the clockings file changes, until
// interrupted. A bad clockings file is reported and watching continues.
func (c *WatchCmd) Run(ctx *cli.Context) error {
	today, err := ctx.Today()
	if err != nil {
		return err
	}
	leave, err := ResolveLeave(c.Leave, today)
	if err != nil {
		return err
	}

	w, err := watcher.New(ctx.Config.Resolve(c.Input), c.Debounce)
	if err != nil {
		return err
	}

	opts := Options{XLSX: c.XLSX, Notify: c.Notify}
	regenerate := func() error {
		today, err := ctx.Today()
		if err != nil {
			return err
		}
		if _, err := Publish(ctx, c.Input, leave, today, opts); err != nil {
			ctx.Printf("⚠ %v\n", err)
			return err
		}
		return nil
	}

	if _, err := os.Stat(w.Path()); err == nil {
		if err := regenerate(); err != nil {
			logger.Warn("Initial report failed", "error", err)
		}
	}

	runCtx, stop := watchContext()
	defer stop()

	ctx.Printf("Watching %s (Ctrl+C to stop)\n", w.Path())
	logger.Info("Watching clockings file", "path", w.Path(), "leave", leave)
	return w.Run(runCtx, regenerate)
}
