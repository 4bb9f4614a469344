package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/file-quality/fqcheck/internal/rules"
)

// RunMeta carries the run-level facts the aggregator stamps onto the report.
type RunMeta struct {
	Root           string
	RuleSetVersion string
	Incomplete     bool
	// Duplication enables the deferred cross-file duplicate check.
	Duplication bool
}

// Aggregate combines per-file results into a run report. Results are sorted
// by path first, so the report is deterministic regardless of worker
// completion order; the duplicate check then runs over the sorted set, and
// every injected finding triggers a rescore of the affected file. Everything
// except RunID and Timestamp is reproducible for identical input.
func Aggregate(results []FileResult, discoveryFindings []rules.Finding, opts ScoreOptions, meta RunMeta) *RunReport {
	files := make([]FileResult, len(results))
	copy(files, results)
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	if meta.Duplication {
		injectDuplicateFindings(files, opts)
	}

	severityCounts := map[string]int{
		string(rules.SeverityNote):    0,
		string(rules.SeverityWarning): 0,
		string(rules.SeverityError):   0,
	}
	totals := Totals{Files: len(files)}
	scoreSum := 0
	for _, file := range files {
		for _, finding := range file.Findings {
			severityCounts[string(finding.Severity)]++
		}
		switch file.Status {
		case StatusPass:
			totals.Pass++
		case StatusFail:
			totals.Fail++
		}
		scoreSum += file.Score
	}
	for _, finding := range discoveryFindings {
		severityCounts[string(finding.Severity)]++
	}

	aggregateScore := float64(opts.Baseline)
	if len(files) > 0 {
		aggregateScore = float64(scoreSum) / float64(len(files))
	}

	return &RunReport{
		RunID:             uuid.NewString(),
		Timestamp:         time.Now().UTC(),
		Root:              meta.Root,
		RuleSetVersion:    meta.RuleSetVersion,
		Incomplete:        meta.Incomplete,
		Files:             files,
		DiscoveryFindings: discoveryFindings,
		AggregateScore:    aggregateScore,
		SeverityCounts:    severityCounts,
		Totals:            totals,
	}
}

// injectDuplicateFindings groups files by normalized fingerprint and flags
// every group member except the lexically-first path, which is canonical.
// The input must already be sorted by path.
func injectDuplicateFindings(files []FileResult, opts ScoreOptions) {
	groups := make(map[string][]int)
	for i, file := range files {
		if file.NormalizedFingerprint == "" {
			continue
		}
		groups[file.NormalizedFingerprint] = append(groups[file.NormalizedFingerprint], i)
	}

	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		canonical := files[members[0]].Path
		for _, i := range members[1:] {
			// Copy before append: cached results may share finding slices.
			findings := make([]rules.Finding, len(files[i].Findings), len(files[i].Findings)+1)
			copy(findings, files[i].Findings)
			findings = append(findings, rules.Finding{
				RuleID:   rules.RuleIDDuplication,
				Severity: rules.SeverityError,
				Message:  fmt.Sprintf("content duplicates %s", canonical),
			})
			files[i].Findings = findings
			files[i].Score = opts.Score(findings)
			files[i].Status = opts.Status(files[i].Score)
		}
	}
}

func sortByScoreThenPath(files []FileResult) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].Score != files[j].Score {
			return files[i].Score < files[j].Score
		}
		return files[i].Path < files[j].Path
	})
}
