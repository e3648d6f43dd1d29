package sources

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/clockings/internal/cli"
	"github.com/julianstephens/clockings/internal/extractor"
	"github.com/julianstephens/clockings/internal/logger"
)

type ExtractCmd struct {
	Page      string `arg:"" help:"Saved clockings grid page (HTML), or - for stdin."`
	Output    string `short:"o" help:"Clockings file to write." default:"${input}"`
	Reminders string `short:"r" help:"Reminders text appended to the clockings file." default:"${reminders}"`
	Selector  string `help:"CSS selector of the grid rows." default:"${selector}"`
}

func (c *ExtractCmd) Run(ctx *cli.Context) error {
	today, err := ctx.Today()
	if err != nil {
		return err
	}

	reminders, err := extractor.LoadReminders(ctx.Config.Resolve(c.Reminders))
	if err != nil {
		return err
	}

	page, closePage, err := c.openPage()
	if err != nil {
		return err
	}
	defer closePage()

	var buf bytes.Buffer
	n, err := extractor.Extract(page, &buf, extractor.Options{
		Selector:  c.Selector,
		Reminders: reminders,
		Today:     today,
	})
	if err != nil {
		return err
	}

	out := ctx.Config.Resolve(c.Output)
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write clockings file: %w", err)
	}
	logger.Info("Clockings extracted", "rows", n, "path", out)

	ctx.Printf("✓ Extracted %d clockings to %s\n", n, out)
	if n == 0 {
		ctx.Printf("⚠ No clockings fell in the extraction range; check the saved page.\n")
	}
	return nil
}

func (c *ExtractCmd) openPage() (io.Reader, func(), error) {
	if c.Page == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(c.Page)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open grid page: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close grid page", "path", c.Page, "error", err)
		}
	}, nil
}
