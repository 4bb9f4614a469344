package publish

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	enginepublish "github.com/file-quality/fqcheck/internal/publish"
	"github.com/file-quality/fqcheck/pkg/shared/config"
	"github.com/file-quality/fqcheck/pkg/shared/logger"
)

// RunOptionsPublish holds the arguments for the publish command.
type RunOptionsPublish struct {
	Input  string
	Bucket string
	Key    string
	Region string
}

var (
	AppConfig      *config.Config
	publishOptions RunOptionsPublish
)

// PublishCmd uploads a run report artifact to S3 for the dashboard.
var PublishCmd = &cobra.Command{
	Use:                   "publish --input/-i PATH --bucket/-b BUCKET [--key KEY] [--region REGION]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Short:                 "Uploads a run report artifact to S3 for the dashboard",
	Example: `  # Publishing the latest report
  fqcheck publish -i ~/.fqcheck/results/fqcheck_report_20260826_120000.json -b my-dashboard-bucket

  # Publishing under an explicit key
  fqcheck publish -i report.json -b my-dashboard-bucket --key dashboards/team-a/report.json`,
	RunE: runPublishCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func runPublishCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-publish")

	if err := validatePublishArgs(&publishOptions); err != nil {
		logger.Error("invalid publish arguments", "error", err)
		return err
	}

	location, err := enginepublish.Upload(logger, publishOptions.Input, enginepublish.Options{
		Bucket: publishOptions.Bucket,
		Key:    publishOptions.Key,
		Region: publishOptions.Region,
	})
	if err != nil {
		logger.Error("publish command failed", "error", err)
		return err
	}

	logger.Info("publish command completed successfully", "location", location)
	return nil
}

func validatePublishArgs(options *RunOptionsPublish) error {
	if options.Input == "" {
		return fmt.Errorf("the 'input' flag must be specified")
	}
	if options.Bucket == "" {
		return fmt.Errorf("the 'bucket' flag must be specified")
	}
	if options.Region == "" {
		return fmt.Errorf("the 'region' flag or AWS_REGION must be specified")
	}
	return nil
}

func init() {
	PublishCmd.Flags().StringVarP(&publishOptions.Input, "input", "i", "", "Path to the run report JSON to upload.")
	PublishCmd.Flags().StringVarP(&publishOptions.Bucket, "bucket", "b", "", "Target S3 bucket.")
	PublishCmd.Flags().StringVar(&publishOptions.Key, "key", "", "Target S3 key (defaults to fqcheck/<artifact name>).")
	PublishCmd.Flags().StringVar(&publishOptions.Region, "region", os.Getenv("AWS_REGION"), "AWS region of the bucket.")
}
