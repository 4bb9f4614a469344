package publish

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/hashicorp/go-hclog"

	"github.com/file-quality/fqcheck/pkg/shared/files"
)

// Options describes one report upload.
type Options struct {
	Bucket string
	Key    string
	Region string
}

// Upload sends a report artifact to S3 so the dashboard can read it. The key
// defaults to fqcheck/<artifact basename>. Returns the uploaded location.
func Upload(logger hclog.Logger, reportPath string, opts Options) (string, error) {
	if err := files.ValidatePath(reportPath); err != nil {
		return "", fmt.Errorf("report artifact is not readable: %w", err)
	}

	key := opts.Key
	if key == "" {
		key = path.Join("fqcheck", filepath.Base(reportPath))
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(opts.Region),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create AWS session: %w", err)
	}
	uploader := s3manager.NewUploader(sess)

	f, err := os.Open(reportPath)
	if err != nil {
		return "", fmt.Errorf("failed to open report artifact %q: %w", reportPath, err)
	}
	defer f.Close()

	logger.Info("uploading report", "bucket", opts.Bucket, "key", key)
	result, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(opts.Bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	logger.Info("report uploaded", "location", result.Location)
	return result.Location, nil
}
