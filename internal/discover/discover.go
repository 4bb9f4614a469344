package discover

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/hashicorp/go-hclog"

	"github.com/file-quality/fqcheck/internal/rules"
	"github.com/file-quality/fqcheck/pkg/shared/config"
	sherrors "github.com/file-quality/fqcheck/pkg/shared/errors"
)

// Listing is the discovery outcome for one run: the normalized candidate
// paths plus any run-level findings recorded for skipped subtrees.
type Listing struct {
	Root  string
	Paths []string
	// Findings records unreadable subpaths and missing list entries; they
	// join the run report without aborting the run.
	Findings []rules.Finding
}

// Discoverer walks a root path and yields candidate files filtered by
// include/exclude globs, depth and optional gitignore rules. The output
// order is lexical by absolute path, so identical filesystem state always
// produces an identical listing.
type Discoverer struct {
	include          []string
	exclude          []string
	maxDepth         int
	respectGitignore bool
	logger           hclog.Logger
}

func New(cfg *config.Config, logger hclog.Logger) *Discoverer {
	return &Discoverer{
		include:          cfg.Engine.Include,
		exclude:          cfg.Engine.Exclude,
		maxDepth:         cfg.Engine.MaxDepth,
		respectGitignore: cfg.Engine.RespectGitignore,
		logger:           logger,
	}
}

// Discover walks root and returns the listing. An unreadable root is fatal;
// unreadable subpaths are skipped and surfaced as findings. On cancellation
// the partial listing is returned together with the context error.
func (d *Discoverer) Discover(ctx context.Context, root string) (*Listing, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, sherrors.NewAccessError(root, err)
	}
	if _, err := os.Stat(absRoot); err != nil {
		return nil, sherrors.NewAccessError(absRoot, err)
	}

	var matcher gitignore.Matcher
	if d.respectGitignore {
		patterns, err := gitignore.ReadPatterns(osfs.New(absRoot), nil)
		if err != nil {
			d.logger.Warn("failed to read gitignore patterns, continuing without them", "root", absRoot, "error", err)
		} else {
			matcher = gitignore.NewMatcher(patterns)
		}
	}

	listing := &Listing{Root: absRoot}
	seen := make(map[string]struct{})

	walkErr := filepath.WalkDir(absRoot, func(path string, entry fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if path == absRoot {
				return sherrors.NewAccessError(absRoot, err)
			}
			d.logger.Debug("skipping unreadable path", "path", path, "error", err)
			listing.Findings = append(listing.Findings, accessFinding(path, err))
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if entry.IsDir() {
			if d.maxDepth > 0 && pathDepth(rel) >= d.maxDepth {
				return fs.SkipDir
			}
			if d.excluded(rel + "/") {
				return fs.SkipDir
			}
			if matcher != nil && matcher.Match(strings.Split(rel, "/"), true) {
				return fs.SkipDir
			}
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			listing.Findings = append(listing.Findings, accessFinding(path, err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		if d.excluded(rel) || !d.included(rel) {
			return nil
		}
		if matcher != nil && matcher.Match(strings.Split(rel, "/"), false) {
			return nil
		}

		abs := filepath.Clean(path)
		if _, ok := seen[abs]; ok {
			return nil
		}
		seen[abs] = struct{}{}
		listing.Paths = append(listing.Paths, abs)
		return nil
	})

	sort.Strings(listing.Paths)

	if walkErr != nil {
		if sherrors.IsAccessError(walkErr) {
			return nil, walkErr
		}
		// Cancellation: hand back what was found so far.
		return listing, walkErr
	}
	return listing, nil
}

// FromList builds a listing from an explicit file list instead of a walk.
// Paths are normalized, deduplicated and sorted the same way Discover sorts
// them; entries that cannot be read become findings rather than errors.
func (d *Discoverer) FromList(paths []string) *Listing {
	listing := &Listing{}
	seen := make(map[string]struct{})

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			listing.Findings = append(listing.Findings, accessFinding(path, err))
			continue
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			listing.Findings = append(listing.Findings, accessFinding(abs, err))
			continue
		}
		if !info.Mode().IsRegular() {
			listing.Findings = append(listing.Findings, accessFinding(abs, fmt.Errorf("not a regular file")))
			continue
		}

		if _, ok := seen[abs]; ok {
			continue
		}
		seen[abs] = struct{}{}
		listing.Paths = append(listing.Paths, abs)
	}

	sort.Strings(listing.Paths)
	return listing
}

func (d *Discoverer) included(rel string) bool {
	for _, pattern := range d.include {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func (d *Discoverer) excluded(rel string) bool {
	for _, pattern := range d.exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		// A directory pattern like ".git/**" must also prune the directory itself.
		if strings.HasSuffix(rel, "/") {
			if ok, err := doublestar.Match(pattern, rel+"*"); err == nil && ok {
				return true
			}
		}
	}
	return false
}

func pathDepth(rel string) int {
	return strings.Count(rel, "/") + 1
}

func accessFinding(path string, err error) rules.Finding {
	return rules.Finding{
		RuleID:   rules.RuleIDDiscoveryAccess,
		Severity: rules.SeverityWarning,
		Message:  fmt.Sprintf("skipped %s: %v", path, err),
	}
}
