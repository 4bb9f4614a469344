package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/file-quality/fqcheck/cmd/check"
	"github.com/file-quality/fqcheck/cmd/publish"
	"github.com/file-quality/fqcheck/cmd/report"
	"github.com/file-quality/fqcheck/cmd/version"
	"github.com/file-quality/fqcheck/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "fqcheck [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Fqcheck analyzes a file tree for quality issues and produces scored reports.",
		Long: `Fqcheck is a file quality analysis engine: it discovers files under a root
	path, evaluates a configurable set of quality rules per file, computes
	per-file and run-level scores, and writes an immutable run report for the
	quality dashboard.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(check.CheckCmd)
	rootCmd.AddCommand(report.ReportCmd)
	rootCmd.AddCommand(publish.PublishCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Printf("initializing config file function is crashed - %v \n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	check.Init(AppConfig)
	report.Init(AppConfig)
	publish.Init(AppConfig)
}
