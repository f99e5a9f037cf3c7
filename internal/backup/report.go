package backup

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/mstanic/ironlog/internal/stats"
)

// WriteWeeklyReportPDF renders the statistics rollup as a one-page PDF.
func WriteWeeklyReportPDF(path string, statistics *stats.Statistics, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Workout Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Workout Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, now.Format("Monday, 2 January 2006"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Trailing windows")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	windowRow(pdf, "Gym sessions", statistics.Gym7d, statistics.Gym30d, statistics.Gym90d)
	windowRow(pdf, "Cardio sessions", statistics.Cardio7d, statistics.Cardio30d, statistics.Cardio90d)
	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Average per week: %.1f    per month: %.1f",
		statistics.AvgSessionsPerWeek, statistics.AvgSessionsPerMonth))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "By session")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, id := range stats.SessionIdentities {
		counts := statistics.BySession[id]
		pdf.Cell(0, 6, fmt.Sprintf("%-12s total %-4d 7d %-3d 30d %-3d 90d %d",
			id, counts.Total, counts.Last7Days, counts.Last30Days, counts.Last90Days))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Weekly summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	weeks := statistics.Weekly
	if len(weeks) > 12 {
		weeks = weeks[:12]
	}
	for _, w := range weeks {
		pdf.Cell(0, 6, fmt.Sprintf("Week of %s: %d gym, %d cardio",
			w.WeekStart.Format("2006-01-02"), w.Gym, w.Cardio))
		pdf.Ln(6)
	}

	return pdf.OutputFileAndClose(path)
}

func windowRow(pdf *fpdf.Fpdf, label string, d7, d30, d90 int) {
	pdf.Cell(0, 6, fmt.Sprintf("%-16s 7d: %-4d 30d: %-4d 90d: %d", label, d7, d30, d90))
	pdf.Ln(6)
}
