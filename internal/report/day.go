package report

import (
	"sort"
	"time"

	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/models"
)

// AggregateDay derives one day's worked time from its events. The events
// may arrive in any order. A day without an incoming event followed by a
// later outgoing event is returned with Valid false and zero durations.
func AggregateDay(date time.Time, events []models.ClockEvent) models.DayLog {
	sorted := make([]models.ClockEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	day := models.DayLog{Date: date, Events: sorted}

	var firstIn, lastOut time.Time
	for _, e := range sorted {
		if e.Direction == models.DirectionIncoming {
			firstIn = e.Timestamp
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Direction == models.DirectionOutgoing {
			lastOut = sorted[i].Timestamp
			break
		}
	}
	if firstIn.IsZero() || lastOut.IsZero() || !lastOut.After(firstIn) {
		return day
	}

	day.Valid = true
	day.FirstIncoming = firstIn
	day.LastOutgoing = lastOut
	day.TotalOnSite = lastOut.Sub(firstIn)
	day.TotalBreak = breakTime(sorted, firstIn, lastOut)
	day.Deducted = max(day.TotalBreak, constants.MandatoryDeduction)
	day.ActualWorked = day.TotalOnSite - day.Deducted
	return day
}

// breakTime sums every outgoing-then-incoming gap strictly inside (start, end).
func breakTime(sorted []models.ClockEvent, start, end time.Time) time.Duration {
	var total time.Duration
	var prev *models.ClockEvent
	for i := range sorted {
		e := &sorted[i]
		if !e.Timestamp.After(start) || !e.Timestamp.Before(end) {
			continue
		}
		if prev != nil && prev.Direction == models.DirectionOutgoing && e.Direction == models.DirectionIncoming {
			total += e.Timestamp.Sub(prev.Timestamp)
		}
		prev = e
	}
	return total
}
