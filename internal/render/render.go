package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/file-quality/fqcheck/internal/report"
)

//go:embed templates/report.html
var reportTemplate string

// ordinalDate returns a string with the ordinal number of the day
// helper function for html template
func ordinalDate(day int) string {
	suffix := "th"
	switch day {
	case 1, 21, 31:
		suffix = "st"
	case 2, 22:
		suffix = "nd"
	case 3, 23:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// formatDateTime formats a time.Time object into the specified string format.
// helper function for html template
func formatDateTime(t time.Time) string {
	day := ordinalDate(t.Day())
	return fmt.Sprintf("%s %s %d %02d:%02d:%02d", day, t.Month(), t.Year(), t.Hour(), t.Minute(), t.Second())
}

// formatScore renders the aggregate score with one decimal place.
func formatScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}

func newTemplate() (*template.Template, error) {
	return template.New("report.html").
		Funcs(template.FuncMap{
			"formatDateTime": formatDateTime,
			"formatScore":    formatScore,
			"worstOffenders": func(r *report.RunReport) []report.FileResult { return r.WorstOffenders(10) },
		}).
		Parse(reportTemplate)
}

// WriteHTML renders the run report as a standalone HTML page.
func WriteHTML(w io.Writer, runReport *report.RunReport, title string) error {
	tmpl, err := newTemplate()
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	data := struct {
		Title  string
		Report *report.RunReport
	}{
		Title:  title,
		Report: runReport,
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
