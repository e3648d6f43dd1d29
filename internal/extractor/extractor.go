package extractor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/julianstephens/clockings/internal/clockings"
	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/logger"
	"github.com/julianstephens/clockings/internal/utils"
)

// Filter keeps the rows whose timestamp parses and falls on a date within
// [start, end]. Only the calendar date of start and end is considered.
func Filter(rows []Row, start, end time.Time) []Row {
	from := calendarDay(start)
	to := calendarDay(end)

	var kept []Row
	for _, r := range rows {
		ts, err := clockings.ParseTimestamp(r.Timestamp)
		if err != nil {
			logger.Debug("Skipping grid row", "timestamp", r.Timestamp, "error", err)
			continue
		}
		d := calendarDay(ts)
		if d.Before(from) || d.After(to) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LoadReminders reads the reminders text appended to every clockings file.
func LoadReminders(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &MissingResourceError{Resource: "reminders file", Path: path, Err: err}
		}
		return "", fmt.Errorf("failed to read reminders: %w", err)
	}
	return string(data), nil
}

// Write emits rows as tab-separated lines followed by the reminders trailer.
func Write(w io.Writer, rows []Row, reminders string) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", r.Timestamp, r.Description); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "\n%s\n%s\n%s", constants.RemindersMarker, constants.RemindersSeparator, reminders); err != nil {
		return err
	}
	return bw.Flush()
}

// Options configures one extraction run.
type Options struct {
	Selector  string
	Reminders string
	Today     time.Time
}

// Extract parses a saved clockings page, keeps the rows of the current
// extraction range and writes the clockings file to w. It returns the number
// of rows written.
func Extract(page io.Reader, w io.Writer, opts Options) (int, error) {
	rows, err := ParseGrid(page, opts.Selector)
	if err != nil {
		return 0, err
	}

	start, end := utils.ExtractionRange(opts.Today)
	kept := Filter(rows, start, end)
	logger.Info("Filtered clockings grid",
		"rows", len(rows), "kept", len(kept),
		"from", start.Format(constants.DateFormat), "to", end.Format(constants.DateFormat))

	if err := Write(w, kept, opts.Reminders); err != nil {
		return 0, fmt.Errorf("failed to write clockings: %w", err)
	}
	return len(kept), nil
}
