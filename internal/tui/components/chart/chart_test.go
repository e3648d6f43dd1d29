package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/models"
)

func TestSeries(t *testing.T) {
	s := models.MonthlySummary{
		DailyTarget: constants.DailyTarget,
		Days: []models.DayLog{
			{Valid: true, ActualWorked: 8 * time.Hour},
			{Valid: false},
			{Valid: true, ActualWorked: 6*time.Hour + 30*time.Minute},
		},
	}
	worked, target := Series(s)
	if len(worked) != 2 || worked[0] != 8 || worked[1] != 6.5 {
		t.Errorf("worked = %v", worked)
	}
	if len(target) != 2 || target[0] != 7.5 || target[1] != 7.5 {
		t.Errorf("target = %v", target)
	}
}

func TestRender(t *testing.T) {
	s := models.MonthlySummary{
		Year:        2024,
		Month:       time.March,
		DailyTarget: constants.DailyTarget,
		Days:        []models.DayLog{{Valid: true, ActualWorked: 8 * time.Hour}},
	}
	out := Render(s, 40, 5)
	if !strings.Contains(out, "Hours worked per day, March 2024") {
		t.Errorf("chart missing caption:\n%s", out)
	}

	if empty := Render(models.MonthlySummary{}, 40, 5); !strings.Contains(empty, "No complete days") {
		t.Errorf("empty chart = %q", empty)
	}
}
