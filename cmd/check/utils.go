package check

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/file-quality/fqcheck/internal/cache"
	"github.com/file-quality/fqcheck/internal/discover"
	"github.com/file-quality/fqcheck/pkg/shared/config"
	"github.com/file-quality/fqcheck/pkg/shared/files"
)

// Mode constants
const (
	ModeSinglePath = "single-path"
	ModeInputFile  = "input-file"
)

// determineMode determines the mode based on the provided arguments.
func determineMode(args []string) string {
	if len(args) > 0 {
		return ModeSinglePath
	}
	return ModeInputFile
}

// prepareListing discovers the analysis targets for the validated arguments.
func prepareListing(ctx context.Context, cfg *config.Config, options *RunOptionsCheck, args []string, logger hclog.Logger) (*discover.Listing, error) {
	d := discover.New(cfg, logger)

	switch determineMode(args) {
	case ModeSinglePath:
		return d.Discover(ctx, args[0])
	case ModeInputFile:
		paths, err := files.ReadPathList(options.InputFile)
		if err != nil {
			return nil, fmt.Errorf("error parsing the input file %s: %w", options.InputFile, err)
		}
		return d.FromList(paths), nil
	default:
		return nil, fmt.Errorf("invalid check mode")
	}
}

// openCache returns the persistent result cache, or a no-op store when
// caching is disabled by configuration or the --no-cache flag.
func openCache(cfg *config.Config, options *RunOptionsCheck, logger hclog.Logger) (cache.Store, error) {
	if options.NoCache || !config.GetBoolValue(cfg.Engine, "CacheEnabled", true) {
		logger.Debug("result cache disabled")
		return cache.Nop{}, nil
	}
	return cache.Open(cacheDBPath(cfg), logger)
}
