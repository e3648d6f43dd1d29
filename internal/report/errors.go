package report

import (
	"fmt"
	"time"
)

// MixedMonthError is returned when the input spans more than one calendar month.
type MixedMonthError struct {
	Expected time.Time
	Found    time.Time
}

func (e *MixedMonthError) Error() string {
	return fmt.Sprintf("clockings span more than one month: found %s while reporting on %s",
		e.Found.Format("January 2006"), e.Expected.Format("January 2006"))
}
