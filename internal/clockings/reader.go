package clockings

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/logger"
	"github.com/julianstephens/clockings/internal/models"
)

// Classifier maps a terminal description to a badge direction.
type Classifier interface {
	Classify(description string) models.Direction
}

// ParseTimestamp reads a terminal timestamp such as "2024/03/05 Tue 08:02:17".
// Timestamps are wall-clock values and are returned in UTC so that
// subtraction never crosses a DST transition.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(constants.ClockingLayout, strings.TrimSpace(s), time.UTC)
}

// Read parses a clockings file. Blank lines and lines whose description
// does not classify are skipped; reading stops at the reminders trailer.
// A classified line with a bad timestamp aborts with a *ParseError.
func Read(r io.Reader, c Classifier) ([]models.ClockEvent, error) {
	var events []models.ClockEvent
	skipped := 0

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("failed to read clockings: %w", readErr)
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNo++

		line := strings.TrimSpace(raw)
		if line == constants.RemindersMarker {
			break
		}
		if line != "" {
			dir, ev, err := parseLine(line, lineNo, c)
			if err != nil {
				return nil, err
			}
			if dir == models.DirectionUnknown {
				skipped++
			} else {
				events = append(events, ev)
			}
		}
		if readErr == io.EOF {
			break
		}
	}

	logger.Debug("Read clockings", "events", len(events), "skipped", skipped)

	if len(events) == 0 {
		return nil, ErrEmptyInput
	}
	return events, nil
}

func parseLine(line string, lineNo int, c Classifier) (models.Direction, models.ClockEvent, error) {
	stamp, description, _ := strings.Cut(line, "\t")
	if i := strings.IndexByte(description, '\t'); i >= 0 {
		description = description[:i]
	}

	dir := c.Classify(description)
	if dir == models.DirectionUnknown {
		return dir, models.ClockEvent{}, nil
	}

	ts, err := ParseTimestamp(stamp)
	if err != nil {
		return dir, models.ClockEvent{}, &ParseError{Line: lineNo, Value: stamp, Err: err}
	}
	return dir, models.ClockEvent{
		Timestamp:   ts,
		Direction:   dir,
		Description: description,
	}, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, c Classifier) ([]models.ClockEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open clockings file: %w", err)
	}
	defer f.Close()
	return Read(f, c)
}
