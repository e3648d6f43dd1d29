package reports

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/julianstephens/clockings/internal/config"
	"github.com/julianstephens/clockings/internal/logger"
	"github.com/julianstephens/clockings/internal/utils"
)

// Replaced in tests.
var (
	stdinIsTerminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	promptLeave = promptLeaveForm
)

// ResolveLeave returns the number of leave days to subtract from the month's
// working days. An unset value is asked for on a terminal and is 0 otherwise.
func ResolveLeave(leave int, today time.Time) (int, error) {
	if leave < config.LeaveUnset {
		return 0, fmt.Errorf("invalid leave %d: must not be negative", leave)
	}
	if leave != config.LeaveUnset {
		return leave, nil
	}
	if !stdinIsTerminal() {
		logger.Debug("No leave given and stdin is not a terminal, assuming 0")
		return 0, nil
	}

	year, month := utils.ReportingPeriod(today)
	n, err := promptLeave(fmt.Sprintf("%s %d", month, year))
	if err != nil {
		return 0, fmt.Errorf("failed to read leave days: %w", err)
	}
	return n, nil
}

func promptLeaveForm(period string) (int, error) {
	value := "0"
	err := huh.NewInput().
		Title(fmt.Sprintf("Days of leave in %s", period)).
		Description("Weekdays not worked: annual leave, sick leave, public holidays.").
		Value(&value).
		Validate(validateLeave).
		Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(value))
}

func validateLeave(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole number of days")
	}
	return nil
}
