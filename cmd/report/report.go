package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/file-quality/fqcheck/internal/render"
	enginereport "github.com/file-quality/fqcheck/internal/report"
	"github.com/file-quality/fqcheck/internal/sarifexport"
	"github.com/file-quality/fqcheck/pkg/shared/config"
	"github.com/file-quality/fqcheck/pkg/shared/logger"
)

// RunOptionsReport holds the arguments for the report command.
type RunOptionsReport struct {
	Input      string
	Format     string
	OutputFile string
	Title      string
}

var (
	AppConfig     *config.Config
	reportOptions RunOptionsReport
)

// ReportCmd renders a stored run report into a presentation format.
var ReportCmd = &cobra.Command{
	Use:                   "report --input/-i PATH --format/-f html|sarif [--output/-o PATH]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Short:                 "Renders a stored run report as HTML or SARIF",
	Example: `  # Rendering an HTML page for the dashboard
  fqcheck report -i ~/.fqcheck/results/fqcheck_report_20260826_120000.json -f html -o report.html

  # Converting a run report to SARIF
  fqcheck report -i report.json -f sarif -o report.sarif`,
	RunE: runReportCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func runReportCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-report")

	if err := validateReportArgs(&reportOptions); err != nil {
		logger.Error("invalid report arguments", "error", err)
		return err
	}

	runReport, err := readRunReport(reportOptions.Input)
	if err != nil {
		logger.Error("failed to read run report", "error", err)
		return err
	}

	file, err := os.Create(reportOptions.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", reportOptions.OutputFile, err)
	}
	defer file.Close()

	switch strings.ToLower(reportOptions.Format) {
	case "html":
		err = render.WriteHTML(file, runReport, reportOptions.Title)
	case "sarif":
		err = sarifexport.Write(runReport, file)
	}
	if err != nil {
		logger.Error("failed to render report", "format", reportOptions.Format, "error", err)
		return err
	}

	logger.Info("report rendered", "format", reportOptions.Format, "output", reportOptions.OutputFile)
	return nil
}

// readRunReport loads and parses a stored run report artifact.
func readRunReport(inputPath string) (*enginereport.RunReport, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read report artifact %q: %w", inputPath, err)
	}

	var runReport enginereport.RunReport
	if err := json.Unmarshal(data, &runReport); err != nil {
		return nil, fmt.Errorf("failed to parse report artifact %q: %w", inputPath, err)
	}
	return &runReport, nil
}

func validateReportArgs(options *RunOptionsReport) error {
	if options.Input == "" {
		return fmt.Errorf("the 'input' flag must be specified")
	}
	switch strings.ToLower(options.Format) {
	case "html", "sarif":
	default:
		return fmt.Errorf("unsupported format %q, expected html or sarif", options.Format)
	}
	if options.OutputFile == "" {
		return fmt.Errorf("the 'output' flag must be specified")
	}
	return nil
}

func init() {
	ReportCmd.Flags().StringVarP(&reportOptions.Input, "input", "i", "", "Path to the stored run report JSON.")
	ReportCmd.Flags().StringVarP(&reportOptions.Format, "format", "f", "html", "Output format: html or sarif.")
	ReportCmd.Flags().StringVarP(&reportOptions.OutputFile, "output", "o", "", "Path for the rendered output file.")
	ReportCmd.Flags().StringVar(&reportOptions.Title, "title", "Fqcheck Report", "Title for the generated HTML page.")
}
