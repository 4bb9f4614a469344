package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/file-quality/fqcheck/pkg/shared/files"
)

// ValidateConfig checks the loaded configuration, fills in defaults and
// resolves the application folders. It must be called once before any
// component consumes the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := validateFqcheckConfig(cfg); err != nil {
		return fmt.Errorf("YAML global config: fqcheck directive is invalid: %w", err)
	}
	if err := validateEngineConfig(&cfg.Engine); err != nil {
		return fmt.Errorf("YAML global config: engine directive is invalid: %w", err)
	}
	if err := validateScoringConfig(&cfg.Scoring); err != nil {
		return fmt.Errorf("YAML global config: scoring directive is invalid: %w", err)
	}
	if err := validateRulesConfig(&cfg.Rules); err != nil {
		return fmt.Errorf("YAML global config: rules directive is invalid: %w", err)
	}
	return nil
}

func validateFqcheckConfig(cfg *Config) error {
	if err := updateHome(cfg); err != nil {
		return fmt.Errorf("failed to update home folder: %w", err)
	}
	if err := updateFolder(&cfg.Fqcheck.ResultsFolder, "FQCHECK_RESULTS_FOLDER", "results", cfg); err != nil {
		return fmt.Errorf("failed to update results folder: %w", err)
	}
	if err := updateFolder(&cfg.Fqcheck.CacheFolder, "FQCHECK_CACHE_FOLDER", "cache", cfg); err != nil {
		return fmt.Errorf("failed to update cache folder: %w", err)
	}
	return nil
}

func validateEngineConfig(engine *Engine) error {
	if engine.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", engine.Workers)
	}
	engine.Workers = SetThen(engine.Workers, DefaultWorkers)
	if engine.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative: %d", engine.MaxDepth)
	}
	if len(engine.Include) == 0 {
		engine.Include = []string{"**"}
	}
	if engine.Exclude == nil {
		engine.Exclude = []string{".git/**"}
	}
	return nil
}

func validateScoringConfig(scoring *Scoring) error {
	scoring.Baseline = SetThen(scoring.Baseline, DefaultBaseline)
	scoring.PassThreshold = SetThen(scoring.PassThreshold, DefaultPassThreshold)
	if scoring.Baseline < 0 {
		return fmt.Errorf("baseline must not be negative: %d", scoring.Baseline)
	}
	if scoring.PassThreshold < 0 || scoring.PassThreshold > scoring.Baseline {
		return fmt.Errorf("pass_threshold must be between 0 and the baseline %d: %d", scoring.Baseline, scoring.PassThreshold)
	}
	if scoring.SeverityWeights == nil {
		scoring.SeverityWeights = map[string]int{"note": 1, "warning": 3, "error": 10}
	}
	for severity, weight := range scoring.SeverityWeights {
		switch severity {
		case "note", "warning", "error":
		default:
			return fmt.Errorf("unknown severity %q in severity_weights", severity)
		}
		if weight < 0 {
			return fmt.Errorf("severity weight for %q must not be negative: %d", severity, weight)
		}
	}
	return nil
}

func validateRulesConfig(rules *Rules) error {
	if rules.MaxFileSize.MaxFileSizeBytes < 0 {
		return fmt.Errorf("max_file_size_bytes must not be negative: %d", rules.MaxFileSize.MaxFileSizeBytes)
	}
	rules.MaxFileSize.MaxFileSizeBytes = SetThen(rules.MaxFileSize.MaxFileSizeBytes, int64(DefaultMaxFileSizeBytes))

	rules.Encoding.ExpectedEncoding = SetThen(rules.Encoding.ExpectedEncoding, DefaultExpectedEncoding)

	if len(rules.LineHygiene.AllowedLineEndings) == 0 {
		rules.LineHygiene.AllowedLineEndings = []string{"lf"}
	}
	for _, style := range rules.LineHygiene.AllowedLineEndings {
		switch strings.ToLower(style) {
		case "lf", "crlf":
		default:
			return fmt.Errorf("unknown line ending style %q, expected lf or crlf", style)
		}
	}
	if rules.LineHygiene.MaxFindingsPerFile < 0 {
		return fmt.Errorf("max_findings_per_file must not be negative: %d", rules.LineHygiene.MaxFindingsPerFile)
	}
	rules.LineHygiene.MaxFindingsPerFile = SetThen(rules.LineHygiene.MaxFindingsPerFile, DefaultMaxFindingsPerFile)

	rules.Naming.NamingPattern = SetThen(rules.Naming.NamingPattern, DefaultNamingPattern)
	if _, err := regexp.Compile(rules.Naming.NamingPattern); err != nil {
		return fmt.Errorf("naming_pattern does not compile: %w", err)
	}
	return nil
}

// updateHome updates the HomeFolder from environment variables or sets a default value.
func updateHome(cfg *Config) error {
	if fqcheckHomeFolder := os.Getenv("FQCHECK_HOME"); fqcheckHomeFolder != "" {
		cfg.Fqcheck.HomeFolder = fqcheckHomeFolder
	} else if cfg.Fqcheck.HomeFolder == "" {
		homeFolder, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("unable to get user home folder: %w", err)
		}
		cfg.Fqcheck.HomeFolder = filepath.Join(homeFolder, ".fqcheck")
	}

	expandedHomePath, err := files.ExpandPath(cfg.Fqcheck.HomeFolder)
	if err != nil {
		return fmt.Errorf("failed to expand new home path %q: %w", cfg.Fqcheck.HomeFolder, err)
	}
	cfg.Fqcheck.HomeFolder = expandedHomePath

	if err := files.CreateFolderIfNotExists(expandedHomePath); err != nil {
		return fmt.Errorf("failed to create home folder %q: %w", cfg.Fqcheck.HomeFolder, err)
	}
	return nil
}

// updateFolder updates a folder path in the Fqcheck configuration.
func updateFolder(folder *string, envVar, defaultSubFolder string, cfg *Config) error {
	if envVarValue := os.Getenv(envVar); envVarValue != "" {
		*folder = envVarValue
	} else if *folder == "" {
		*folder = filepath.Join(GetFqcheckHome(cfg), defaultSubFolder)
	}

	expandedPath, err := files.ExpandPath(*folder)
	if err != nil {
		return fmt.Errorf("failed to expand path %q: %w", *folder, err)
	}
	*folder = expandedPath

	if err := files.CreateFolderIfNotExists(expandedPath); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", expandedPath, err)
	}
	return nil
}
