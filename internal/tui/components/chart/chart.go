package chart

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/julianstephens/clockings/internal/models"
)

var emptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	Italic(true)

// Series returns the worked hours of each valid day and the daily target in
// hours, one point per valid day.
func Series(s models.MonthlySummary) ([]float64, []float64) {
	var worked, target []float64
	for _, d := range s.ValidDays() {
		worked = append(worked, d.ActualWorked.Hours())
		target = append(target, s.DailyTarget.Hours())
	}
	return worked, target
}

// Render plots worked hours per valid day against the daily target.
func Render(s models.MonthlySummary, width, height int) string {
	worked, target := Series(s)
	if len(worked) == 0 {
		return emptyStyle.Render("No complete days to chart")
	}

	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	// asciigraph needs two points to draw a line
	if len(worked) == 1 {
		worked = append(worked, worked[0])
		target = append(target, target[0])
	}

	return asciigraph.PlotMany([][]float64{worked, target},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("Hours worked per day, %s %d (target %.1fh)", s.Month, s.Year, s.DailyTarget.Hours())),
		asciigraph.SeriesColors(
			asciigraph.Green,
			asciigraph.Red,
		),
	)
}
