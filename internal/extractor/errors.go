package extractor

import "fmt"

// MissingResourceError reports a file the extractor needs but could not find.
type MissingResourceError struct {
	Resource string
	Path     string
	Err      error
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("%s not found at %s", e.Resource, e.Path)
}

func (e *MissingResourceError) Unwrap() error {
	return e.Err
}
