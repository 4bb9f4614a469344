package check

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/file-quality/fqcheck/internal/analyzer"
	"github.com/file-quality/fqcheck/internal/report"
	"github.com/file-quality/fqcheck/internal/rules"
	"github.com/file-quality/fqcheck/pkg/shared"
	"github.com/file-quality/fqcheck/pkg/shared/config"
	"github.com/file-quality/fqcheck/pkg/shared/files"
	"github.com/file-quality/fqcheck/pkg/shared/logger"
)

// RunOptionsCheck holds the arguments for the check command.
type RunOptionsCheck struct {
	InputFile  string
	OutputPath string
	Workers    int
	NoCache    bool
}

// Global variables for configuration and command arguments
var (
	AppConfig         *config.Config
	checkOptions      RunOptionsCheck
	exampleCheckUsage = `  # Analyzing a directory tree
  fqcheck check /path/to/my_project

  # Analyzing an explicit list of files
  fqcheck check --input-file /path/to/list.txt

  # Analyzing with eight concurrent workers, ignoring the result cache
  fqcheck check -j 8 --no-cache /path/to/my_project

  # Analyzing a directory and choosing where the report artifact lands
  fqcheck check /path/to/my_project --output /path/to/report.json`
)

// CheckCmd represents the check command.
var CheckCmd = &cobra.Command{
	Use:                   "check [-j WORKERS] [--no-cache] [--output/-o PATH] {--input-file/-i PATH | PATH}",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleCheckUsage,
	Short:                 "Runs the quality analysis over a file tree and writes a run report",
	RunE:                  runCheckCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runCheckCommand executes the check command.
func runCheckCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-check")

	if checkOptions.Workers == 0 {
		checkOptions.Workers = AppConfig.Engine.Workers
	}
	if err := validateCheckArgs(&checkOptions, args); err != nil {
		logger.Error("invalid check arguments", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	registry, err := rules.NewRegistry(AppConfig)
	if err != nil {
		logger.Error("failed to build rule registry", "error", err)
		return err
	}
	logger.Debug("rule registry ready", "rules", len(registry.Rules()), "version", registry.Version())

	store, err := openCache(AppConfig, &checkOptions, logger)
	if err != nil {
		logger.Error("failed to open result cache", "error", err)
		return err
	}
	defer store.Close()

	listing, err := prepareListing(ctx, AppConfig, &checkOptions, args, logger)
	discoveryInterrupted := false
	if err != nil {
		if listing == nil {
			logger.Error("discovery failed", "error", err)
			return err
		}
		// Cancelled mid-walk: carry the partial listing into a partial report.
		logger.Warn("discovery interrupted, continuing with a partial listing", "error", err)
		discoveryInterrupted = true
	}
	logger.Info("discovery finished", "files", len(listing.Paths), "skipped", len(listing.Findings))

	scoring := report.ScoreOptionsFromConfig(AppConfig)
	a := analyzer.New(registry, store, scoring, checkOptions.Workers, logger)
	results, incomplete := a.Run(ctx, listing)

	runReport := report.Aggregate(results, listing.Findings, scoring, report.RunMeta{
		Root:           listing.Root,
		RuleSetVersion: registry.Version(),
		Incomplete:     incomplete || discoveryInterrupted,
		Duplication:    registry.DuplicationEnabled(),
	})

	reportPath, err := writeReportArtifact(AppConfig, &checkOptions, runReport)
	if err != nil {
		logger.Error("failed to write report artifact", "error", err)
		return err
	}

	logger.Info("check command completed",
		"files", runReport.Totals.Files,
		"pass", runReport.Totals.Pass,
		"fail", runReport.Totals.Fail,
		"aggregate_score", fmt.Sprintf("%.1f", runReport.AggregateScore),
		"incomplete", runReport.Incomplete,
		"report", reportPath,
	)
	return nil
}

// writeReportArtifact serializes the report to the requested output path, or
// to the results folder under a timestamped name.
func writeReportArtifact(cfg *config.Config, options *RunOptionsCheck, runReport *report.RunReport) (string, error) {
	nameTemplate := fmt.Sprintf("fqcheck_report_%s.json", runReport.Timestamp.Format("20060102_150405"))

	outputPath := options.OutputPath
	if outputPath == "" {
		outputPath = config.GetResultsHome(cfg)
	}
	fullPath, _, err := files.DetermineFileFullPath(outputPath, nameTemplate)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(runReport, "", "    ")
	if err != nil {
		return "", fmt.Errorf("error marshaling the run report: %w", err)
	}
	if err := files.WriteJSONFile(fullPath, data); err != nil {
		return "", err
	}
	return fullPath, nil
}

func cacheDBPath(cfg *config.Config) string {
	return filepath.Join(config.GetCacheHome(cfg), "results.duckdb")
}
