package report

import (
	"time"

	"github.com/file-quality/fqcheck/internal/rules"
)

// File statuses derived from the score threshold. "n/a" marks files whose
// content could not be read, so no meaningful score exists.
const (
	StatusPass = "pass"
	StatusFail = "fail"
	StatusNA   = "n/a"
)

// FileResult is the complete outcome for one analyzed file. It is created by
// the analyzer and never mutated in place; re-analysis produces a fresh value.
type FileResult struct {
	Path        string `json:"path"`
	Fingerprint string `json:"fingerprint"`
	// NormalizedFingerprint keys duplicate grouping; it equals Fingerprint
	// when whitespace normalization is disabled and is empty for unreadable
	// files, which never join a duplicate group.
	NormalizedFingerprint string          `json:"normalized_fingerprint,omitempty"`
	Findings              []rules.Finding `json:"findings"`
	Score                 int             `json:"score"`
	Status                string          `json:"status"`
}

// Totals summarizes the run for the dashboard's headline counters.
type Totals struct {
	Files int `json:"files"`
	Pass  int `json:"pass"`
	Fail  int `json:"fail"`
}

// RunReport is the immutable snapshot of one complete analysis pass. Its JSON
// form is the contract the presentation layer consumes; a new run always
// produces a new report.
type RunReport struct {
	RunID          string    `json:"run_id"`
	Timestamp      time.Time `json:"timestamp"`
	Root           string    `json:"root"`
	RuleSetVersion string    `json:"ruleset_version"`
	// Incomplete marks a run that was cancelled before every discovered file
	// was analyzed; completed results are retained.
	Incomplete        bool             `json:"incomplete,omitempty"`
	Files             []FileResult     `json:"files"`
	DiscoveryFindings []rules.Finding  `json:"discovery_findings,omitempty"`
	AggregateScore    float64          `json:"aggregate_score"`
	SeverityCounts    map[string]int   `json:"severity_counts"`
	Totals            Totals           `json:"totals"`
}

// FilesBySeverity returns the results that carry at least one finding of the
// given severity, preserving report order.
func (r *RunReport) FilesBySeverity(severity rules.Severity) []FileResult {
	var matched []FileResult
	for _, file := range r.Files {
		for _, finding := range file.Findings {
			if finding.Severity == severity {
				matched = append(matched, file)
				break
			}
		}
	}
	return matched
}

// WorstOffenders returns up to n results ordered by ascending score, ties
// broken by path so the order is deterministic.
func (r *RunReport) WorstOffenders(n int) []FileResult {
	offenders := make([]FileResult, len(r.Files))
	copy(offenders, r.Files)
	sortByScoreThenPath(offenders)
	if n > 0 && len(offenders) > n {
		offenders = offenders[:n]
	}
	return offenders
}
