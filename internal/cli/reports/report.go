package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/clockings/internal/cli"
	"github.com/julianstephens/clockings/internal/export"
	"github.com/julianstephens/clockings/internal/logger"
	"github.com/julianstephens/clockings/internal/notifier"
	"github.com/julianstephens/clockings/internal/report"
)

// Options selects the extras produced alongside the text report.
type Options struct {
	XLSX   bool
	Notify bool
	Print  bool
}

type ReportCmd struct {
	Input  string `short:"i" help:"Clockings file to read." default:"${input}"`
	Leave  int    `short:"l" help:"Days of leave taken this month (prompted for when unset)." default:"${leave}"`
	XLSX   bool   `name:"xlsx" help:"Also write the report as a spreadsheet."`
	Notify bool   `help:"Show a desktop notification once the report is written."`
	Print  bool   `short:"p" help:"Print the full report instead of the summary."`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	today, err := ctx.Today()
	if err != nil {
		return err
	}
	leave, err := ResolveLeave(c.Leave, today)
	if err != nil {
		return err
	}
	_, err = Publish(ctx, c.Input, leave, today, Options{XLSX: c.XLSX, Notify: c.Notify, Print: c.Print})
	return err
}

// Build reads the clockings file and generates the report in memory.
func Build(ctx *cli.Context, input string, leave int, today time.Time) (report.Result, error) {
	path := ctx.Config.Resolve(input)
	f, err := os.Open(path)
	if err != nil {
		return report.Result{}, fmt.Errorf("failed to open clockings file: %w", err)
	}
	defer f.Close()

	res, err := report.Generate(f, ctx.Classifier, leave, today)
	if err != nil {
		return report.Result{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return res, nil
}

// Publish builds the report and writes it to the report directory, archiving
// the previous version of the same month.
func Publish(ctx *cli.Context, input string, leave int, today time.Time, opts Options) (report.Result, error) {
	res, err := Build(ctx, input, leave, today)
	if err != nil {
		return res, err
	}

	archived, err := ctx.Archives().Replace(res.Filename, []byte(res.Text))
	if err != nil {
		return res, err
	}
	reportPath := filepath.Join(ctx.Config.Dir, res.Filename)
	logger.Info("Report written",
		"path", reportPath,
		"leave", leave,
		"worked_days", res.Summary.WorkedDays,
		"status", res.Summary.Status(),
		"variance", report.FormatDuration(res.Summary.Variance))

	if opts.Print {
		ctx.Printf("%s", res.Text)
	} else {
		ctx.Printf("%s", Summary(res, reportPath))
	}
	if archived != "" {
		logger.Info("Previous report archived", "archive", archived)
		ctx.Printf("Previous version archived as %s\n", filepath.Base(archived))
	}

	if opts.XLSX {
		xlsxPath := strings.TrimSuffix(reportPath, filepath.Ext(reportPath)) + ".xlsx"
		if err := export.WriteXLSX(xlsxPath, res.Summary); err != nil {
			return res, err
		}
		ctx.Printf("Spreadsheet written to %s\n", xlsxPath)
	}

	if opts.Notify {
		notifier.NotifyReport(res.Filename, res.Summary)
	}
	return res, nil
}
