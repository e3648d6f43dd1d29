// Package export writes monthly summaries to spreadsheet files.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/models"
	"github.com/julianstephens/clockings/internal/report"
)

const (
	SummarySheet = "Summary"
	DaysSheet    = "Days"
)

// DayHeaders are the column titles of the Days sheet.
var DayHeaders = []string{
	"Date", "Status", "Start Time", "End Time", "Total Time On Site",
	"Breaks Taken", "Deducted Time", "Actual Worked Time",
}

// WriteXLSX writes s to path as a workbook with a Summary and a Days sheet.
// Durations are written in the same HH:MM:SS form as the text report.
func WriteXLSX(path string, s models.MonthlySummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if _, err := f.NewSheet(DaysSheet); err != nil {
		return fmt.Errorf("failed to create days sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSummary(f, s, headerStyle); err != nil {
		return err
	}
	if err := writeDays(f, s.Days, headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, s models.MonthlySummary, headerStyle int) error {
	rows := [][]any{
		{"Field", "Value"},
		{report.LabelMonth, fmt.Sprintf("%s %d", s.Month, s.Year)},
		{report.LabelWorkingDays, s.WorkingDays},
		{report.LabelTargetPerDay, report.FormatDuration(s.DailyTarget)},
		{report.LabelMonthlyTarget, report.FormatDuration(s.MonthlyTarget)},
		{report.LabelWorkedDays, s.WorkedDays},
		{report.LabelExpectedTime, report.FormatDuration(s.ExpectedSoFar)},
		{report.LabelTotalOnSite, report.FormatDuration(s.TotalOnSite)},
		{report.LabelExpectedDeducted, report.FormatDuration(s.ExpectedDeducted)},
		{report.LabelTotalDeducted, report.FormatDuration(s.TotalDeducted)},
		{report.LabelActualWorked, report.FormatDuration(s.ActualWorked)},
		{report.LabelDifference, report.FormatDuration(s.Variance)},
		{"Status", s.Status()},
		{report.LabelIncompleteDays, s.IncompleteDays},
		{report.LabelNegativeDays, s.NegativeDays},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "B1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "A", "B", 26)
}

func writeDays(f *excelize.File, days []models.DayLog, headerStyle int) error {
	if err := f.SetSheetRow(DaysSheet, "A1", &DayHeaders); err != nil {
		return fmt.Errorf("failed to write day headers: %w", err)
	}

	for i, d := range days {
		row := []any{d.Date.Format(constants.DateFormat), "Incomplete"}
		if d.Valid {
			status := "OK"
			if d.Negative() {
				status = "Negative"
			}
			row = []any{
				d.Date.Format(constants.DateFormat),
				status,
				d.FirstIncoming.Format(constants.TimeFormat),
				d.LastOutgoing.Format(constants.TimeFormat),
				report.FormatDuration(d.TotalOnSite),
				report.FormatDuration(d.TotalBreak),
				report.FormatDuration(d.Deducted),
				report.FormatDuration(d.ActualWorked),
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(DaysSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write day %s: %w", d.Date.Format(constants.DateFormat), err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(DayHeaders))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(DaysSheet, "A1", last+"1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(DaysSheet, "A", last, 18)
}
