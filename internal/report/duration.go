package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders d as HH:MM:SS truncated to the second. Hours are not
// wrapped at 24 and negative values carry a leading "-".
func FormatDuration(d time.Duration) string {
	sign := ""
	secs := int64(d / time.Second)
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}

// ParseDuration is the inverse of FormatDuration.
func ParseDuration(s string) (time.Duration, error) {
	raw := strings.TrimSpace(s)
	neg := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid duration %q: want HH:MM:SS", s)
	}
	var fields [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q: bad field %q", s, p)
		}
		if i > 0 && n > 59 {
			return 0, fmt.Errorf("invalid duration %q: field %q out of range", s, p)
		}
		fields[i] = n
	}

	d := time.Duration(fields[0])*time.Hour + time.Duration(fields[1])*time.Minute + time.Duration(fields[2])*time.Second
	if neg {
		d = -d
	}
	return d, nil
}
