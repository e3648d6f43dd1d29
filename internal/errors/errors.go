package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/clockings/internal/clockings"
	"github.com/julianstephens/clockings/internal/extractor"
	"github.com/julianstephens/clockings/internal/logger"
	"github.com/julianstephens/clockings/internal/report"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint suggests what to do about a known failure, or returns "".
func Hint(err error) string {
	var (
		parseErr   *clockings.ParseError
		missingErr *extractor.MissingResourceError
		mixedErr   *report.MixedMonthError
	)
	switch {
	case stderrors.Is(err, clockings.ErrEmptyInput):
		return "the clockings file has no recognised events; run 'clockings extract' or check the vocabulary"
	case stderrors.As(err, &parseErr):
		return "the clockings file looks corrupted; extract it again"
	case stderrors.As(err, &missingErr):
		return "run 'clockings init' to create the default files"
	case stderrors.As(err, &mixedErr):
		return "extract a single month of clockings before reporting"
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		if hint := Hint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "       %s\n", hint)
		}
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
