package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Logger  Logger  `yaml:"logger"`
	Fqcheck Fqcheck `yaml:"fqcheck"`
	Engine  Engine  `yaml:"engine"`
	Scoring Scoring `yaml:"scoring"`
	Rules   Rules   `yaml:"rules"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// Fqcheck holds application home folders. Empty values are resolved during
// validation from environment variables or defaults under the home folder.
type Fqcheck struct {
	HomeFolder    string `yaml:"home_folder"`
	ResultsFolder string `yaml:"results_folder"`
	CacheFolder   string `yaml:"cache_folder"`
}

// Engine holds discovery and scheduling settings for one analysis run.
type Engine struct {
	Workers          int      `yaml:"workers"`
	CacheEnabled     *bool    `yaml:"cache_enabled"`
	Include          []string `yaml:"include"`
	Exclude          []string `yaml:"exclude"`
	MaxDepth         int      `yaml:"max_depth"`
	RespectGitignore bool     `yaml:"respect_gitignore"`
}

// Scoring controls how findings translate into per-file scores and statuses.
type Scoring struct {
	Baseline        int            `yaml:"baseline"`
	PassThreshold   int            `yaml:"pass_threshold"`
	SeverityWeights map[string]int `yaml:"severity_weights"`
}

type Rules struct {
	MaxFileSize MaxFileSizeRule `yaml:"max_file_size"`
	Encoding    EncodingRule    `yaml:"encoding"`
	LineHygiene LineHygieneRule `yaml:"line_hygiene"`
	Naming      NamingRule      `yaml:"naming"`
	Duplication DuplicationRule `yaml:"duplication"`
}

type MaxFileSizeRule struct {
	Enabled          *bool `yaml:"enabled"`
	MaxFileSizeBytes int64 `yaml:"max_file_size_bytes"`
}

type EncodingRule struct {
	Enabled          *bool  `yaml:"enabled"`
	ExpectedEncoding string `yaml:"expected_encoding"`
}

type LineHygieneRule struct {
	Enabled                *bool    `yaml:"enabled"`
	AllowedLineEndings     []string `yaml:"allowed_line_endings"`
	FlagTrailingWhitespace *bool    `yaml:"flag_trailing_whitespace"`
	MaxFindingsPerFile     int      `yaml:"max_findings_per_file"`
}

type NamingRule struct {
	Enabled       *bool  `yaml:"enabled"`
	NamingPattern string `yaml:"naming_pattern"`
}

type DuplicationRule struct {
	Enabled          *bool `yaml:"enabled"`
	IgnoreWhitespace *bool `yaml:"ignore_whitespace"`
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the YAML configuration from configPath. A missing file is
// not an error: the engine runs with defaults, which validation fills in.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}
