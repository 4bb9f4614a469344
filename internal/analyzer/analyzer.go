package analyzer

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/file-quality/fqcheck/internal/cache"
	"github.com/file-quality/fqcheck/internal/discover"
	"github.com/file-quality/fqcheck/internal/report"
	"github.com/file-quality/fqcheck/internal/rules"
)

// Analyzer evaluates discovered files against the registry's rule set,
// consulting the result cache first. Files are independent, so a bounded
// worker pool runs them in parallel; the cross-file duplicate check is
// deferred to aggregation, keeping per-file work free of shared state.
type Analyzer struct {
	registry *rules.Registry
	cache    cache.Store
	scoring  report.ScoreOptions
	workers  int
	logger   hclog.Logger
}

func New(registry *rules.Registry, store cache.Store, scoring report.ScoreOptions, workers int, logger hclog.Logger) *Analyzer {
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{
		registry: registry,
		cache:    store,
		scoring:  scoring,
		workers:  workers,
		logger:   logger,
	}
}

// Run analyzes every file in the listing and returns results ordered exactly
// as the listing orders paths, regardless of worker completion order. On
// cancellation dispatch stops, completed results are kept, and the returned
// incomplete flag is set.
func (a *Analyzer) Run(ctx context.Context, listing *discover.Listing) ([]report.FileResult, bool) {
	slots := make([]*report.FileResult, len(listing.Paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	dispatched := 0
	for i, path := range listing.Paths {
		if gctx.Err() != nil {
			break
		}
		dispatched++
		i, path := i, path
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			result := a.analyzeFile(listing.Root, path)
			slots[i] = &result
			return nil
		})
	}
	g.Wait()

	results := make([]report.FileResult, 0, dispatched)
	for _, slot := range slots {
		if slot != nil {
			results = append(results, *slot)
		}
	}

	incomplete := len(results) < len(listing.Paths)
	if incomplete {
		a.logger.Warn("run cancelled before all files were analyzed",
			"analyzed", len(results), "discovered", len(listing.Paths))
	}
	return results, incomplete
}

// analyzeFile produces the FileResult for one path: fingerprint, cache gate,
// rule evaluation in registration order, score. An unreadable file degrades
// to a single finding and the run proceeds.
func (a *Analyzer) analyzeFile(root, path string) report.FileResult {
	content, err := os.ReadFile(path)
	if err != nil {
		a.logger.Debug("file is unreadable", "path", path, "error", err)
		return report.FileResult{
			Path: path,
			Findings: []rules.Finding{{
				RuleID:   rules.RuleIDUnreadableFile,
				Severity: rules.SeverityError,
				Message:  err.Error(),
			}},
			Score:  0,
			Status: report.StatusNA,
		}
	}

	fingerprint := Fingerprint(content)
	version := a.registry.Version()

	if cached, ok := a.cache.Get(path, fingerprint, version); ok {
		a.logger.Trace("cache hit", "path", path)
		return *cached
	}

	target := rules.Target{
		Path:    path,
		RelPath: relSlashPath(root, path),
		Size:    int64(len(content)),
		Content: content,
	}

	var findings []rules.Finding
	for _, rule := range a.registry.Applicable(target) {
		findings = append(findings, rules.SafeEvaluate(rule, target)...)
	}

	score := a.scoring.Score(findings)
	result := report.FileResult{
		Path:                  path,
		Fingerprint:           fingerprint,
		NormalizedFingerprint: NormalizedFingerprint(content, a.registry.DuplicationIgnoresWhitespace()),
		Findings:              findings,
		Score:                 score,
		Status:                a.scoring.Status(score),
	}

	if err := a.cache.Put(path, fingerprint, version, result); err != nil {
		a.logger.Warn("failed to store cache entry", "path", path, "error", err)
	}
	return result
}

func relSlashPath(root, path string) string {
	if root == "" {
		return filepath.ToSlash(filepath.Base(path))
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(filepath.Base(path))
	}
	return filepath.ToSlash(rel)
}
