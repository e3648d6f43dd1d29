package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/models"
)

func testSummary() models.MonthlySummary {
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }
	clock := func(d, h, m int) time.Time { return time.Date(2024, time.March, d, h, m, 0, 0, time.UTC) }
	return models.MonthlySummary{
		Year:          2024,
		Month:         time.March,
		WorkingDays:   21,
		DailyTarget:   constants.DailyTarget,
		MonthlyTarget: 21 * constants.DailyTarget,
		WorkedDays:    2,
		ExpectedSoFar: 2 * constants.DailyTarget,
		ActualWorked:  15*time.Hour + 30*time.Minute,
		Variance:      30 * time.Minute,
		NegativeDays:  0,
		Days: []models.DayLog{
			{
				Date: day(4), Valid: true,
				FirstIncoming: clock(4, 8, 0), LastOutgoing: clock(4, 17, 0),
				TotalOnSite: 9 * time.Hour, TotalBreak: 30 * time.Minute,
				Deducted: 30 * time.Minute, ActualWorked: 8*time.Hour + 30*time.Minute,
			},
			{Date: day(5)},
			{
				Date: day(6), Valid: true,
				FirstIncoming: clock(6, 8, 0), LastOutgoing: clock(6, 8, 20),
				TotalOnSite: 20 * time.Minute, Deducted: 30 * time.Minute,
				ActualWorked: -10 * time.Minute,
			},
		},
		IncompleteDays: 1,
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "March - 2024.xlsx")
	if err := WriteXLSX(path, testSummary()); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != SummarySheet || sheets[1] != DaysSheet {
		t.Fatalf("sheets = %v", sheets)
	}

	summary := map[string]string{}
	rows, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range rows[1:] {
		if len(row) == 2 {
			summary[row[0]] = row[1]
		}
	}
	wantSummary := map[string]string{
		"Month":              "March 2024",
		"Working Days":       "21",
		"Target per Day":     "07:30:00",
		"Monthly Target":     "157:30:00",
		"Actual Time Worked": "15:30:00",
		"Difference":         "00:30:00",
		"Status":             constants.StatusAhead,
		"Incomplete Days":    "1",
	}
	for label, want := range wantSummary {
		if got := summary[label]; got != want {
			t.Errorf("summary %q = %q, want %q", label, got, want)
		}
	}

	days, err := f.GetRows(DaysSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 4 {
		t.Fatalf("got %d day rows, want 4 (header + 3)", len(days))
	}
	if days[0][0] != "Date" || len(days[0]) != len(DayHeaders) {
		t.Errorf("header row = %v", days[0])
	}
	if got := days[1]; got[0] != "2024-03-04" || got[1] != "OK" || got[2] != "08:00:00" || got[7] != "08:30:00" {
		t.Errorf("valid day row = %v", got)
	}
	if got := days[2]; len(got) != 2 || got[1] != "Incomplete" {
		t.Errorf("incomplete day row = %v", got)
	}
	if got := days[3]; got[1] != "Negative" || got[7] != "-00:10:00" {
		t.Errorf("negative day row = %v", got)
	}
}

func TestWriteXLSXBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.xlsx")
	if err := WriteXLSX(path, testSummary()); err == nil {
		t.Error("WriteXLSX should fail when the directory does not exist")
	}
}
