package report

import (
	"io"
	"time"

	"github.com/julianstephens/clockings/internal/clockings"
	"github.com/julianstephens/clockings/internal/models"
	"github.com/julianstephens/clockings/internal/utils"
)

// Result is the outcome of one report run.
type Result struct {
	Filename string
	Text     string
	Summary  models.MonthlySummary
}

// Generate reads clockings from input and builds the month's report. It does
// no file I/O of its own: the output is a function of the input, leave and
// today (which only picks the file name).
func Generate(input io.Reader, c clockings.Classifier, leave int, today time.Time) (Result, error) {
	events, err := clockings.Read(input, c)
	if err != nil {
		return Result{}, err
	}
	summary, err := Summarize(events, leave)
	if err != nil {
		return Result{}, err
	}
	year, month := utils.ReportingPeriod(today)
	return Result{
		Filename: utils.ReportFilename(year, month, ".txt"),
		Text:     Render(summary),
		Summary:  summary,
	}, nil
}
