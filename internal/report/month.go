package report

import (
	"sort"
	"time"

	"github.com/julianstephens/clockings/internal/clockings"
	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/logger"
	"github.com/julianstephens/clockings/internal/models"
	"github.com/julianstephens/clockings/internal/utils"
)

// Summarize groups events by calendar day, aggregates each day and totals
// the valid ones against the month's target. leave is subtracted from the
// month's weekday count; the result may go negative.
func Summarize(events []models.ClockEvent, leave int) (models.MonthlySummary, error) {
	if len(events) == 0 {
		return models.MonthlySummary{}, clockings.ErrEmptyInput
	}

	ref := events[0].Date()
	byDate := make(map[time.Time][]models.ClockEvent)
	for _, e := range events {
		d := e.Date()
		if d.Year() != ref.Year() || d.Month() != ref.Month() {
			return models.MonthlySummary{}, &MixedMonthError{Expected: ref, Found: d}
		}
		byDate[d] = append(byDate[d], e)
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	workingDays := utils.WeekdaysInMonth(ref.Year(), ref.Month()) - leave
	s := models.MonthlySummary{
		Year:          ref.Year(),
		Month:         ref.Month(),
		Leave:         leave,
		WorkingDays:   workingDays,
		DailyTarget:   constants.DailyTarget,
		MonthlyTarget: time.Duration(workingDays) * constants.DailyTarget,
		Days:          make([]models.DayLog, 0, len(dates)),
	}

	for _, d := range dates {
		day := AggregateDay(d, byDate[d])
		s.Days = append(s.Days, day)
		if !day.Valid {
			s.IncompleteDays++
			logger.Warn("Incomplete clockings", "date", d.Format(constants.DateFormat), "events", len(day.Events))
			continue
		}
		if day.Negative() {
			s.NegativeDays++
			logger.Warn("Day shorter than mandatory deduction", "date", d.Format(constants.DateFormat), "on_site", day.TotalOnSite)
		}
		s.WorkedDays++
		s.TotalOnSite += day.TotalOnSite
		s.TotalDeducted += day.Deducted
		s.ActualWorked += day.ActualWorked
	}

	s.ExpectedSoFar = time.Duration(s.WorkedDays) * constants.DailyTarget
	s.ExpectedDeducted = time.Duration(s.WorkedDays) * constants.MandatoryDeduction
	s.Variance = s.ActualWorked - s.ExpectedSoFar
	return s, nil
}
