package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/file-quality/fqcheck/internal/report"
	"github.com/file-quality/fqcheck/internal/rules"
)

func TestWriteHTML(t *testing.T) {
	runReport := &report.RunReport{
		RunID:          "run-1",
		Timestamp:      time.Date(2025, time.March, 3, 10, 30, 0, 0, time.UTC),
		Root:           "/data",
		RuleSetVersion: "v1",
		Files: []report.FileResult{
			{
				Path:   "/data/a.txt",
				Score:  67,
				Status: report.StatusFail,
				Findings: []rules.Finding{
					{RuleID: "encoding", Severity: rules.SeverityError, Message: "invalid utf-8 sequence", ByteOffset: 12},
				},
			},
			{Path: "/data/b.txt", Score: 100, Status: report.StatusPass},
		},
		AggregateScore: 83.5,
		Totals:         report.Totals{Files: 2, Pass: 1, Fail: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, runReport, "Quality Report"))

	out := buf.String()
	assert.Contains(t, out, "Quality Report")
	assert.Contains(t, out, "/data/a.txt")
	assert.Contains(t, out, "/data/b.txt")
	assert.Contains(t, out, "invalid utf-8 sequence")
	assert.Contains(t, out, "83.5")
	assert.Contains(t, out, "3rd March 2025")
}

func TestWriteHTMLEscapesContent(t *testing.T) {
	runReport := &report.RunReport{
		Timestamp: time.Now().UTC(),
		Root:      "/data",
		Files: []report.FileResult{
			{
				Path:   "/data/<script>.txt",
				Status: report.StatusFail,
				Findings: []rules.Finding{
					{RuleID: "naming", Severity: rules.SeverityWarning, Message: "<script>alert(1)</script>"},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, runReport, "t"))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}

func TestOrdinalDate(t *testing.T) {
	assert.Equal(t, "1st", ordinalDate(1))
	assert.Equal(t, "2nd", ordinalDate(2))
	assert.Equal(t, "3rd", ordinalDate(3))
	assert.Equal(t, "4th", ordinalDate(4))
	assert.Equal(t, "11th", ordinalDate(11))
	assert.Equal(t, "21st", ordinalDate(21))
	assert.Equal(t, "22nd", ordinalDate(22))
	assert.Equal(t, "23rd", ordinalDate(23))
}
