package check

import (
	"fmt"
	"os"
)

// validateCheckArgs validates the arguments provided to the check command.
func validateCheckArgs(options *RunOptionsCheck, args []string) error {
	if len(args) == 0 && options.InputFile == "" {
		return fmt.Errorf("either 'input-file' flag or a target path must be specified")
	}

	if len(args) > 1 {
		return fmt.Errorf("only one target path may be specified, got %d", len(args))
	}

	if len(args) == 1 {
		if options.InputFile != "" {
			return fmt.Errorf("you cannot use an 'input-file' flag and a target path at the same time")
		}
		targetPath := args[0]
		if _, err := os.Stat(targetPath); os.IsNotExist(err) {
			return fmt.Errorf("the target path does not exist: %v", targetPath)
		}
	}

	if options.Workers <= 0 {
		return fmt.Errorf("the 'workers' flag must be a positive integer")
	}

	return nil
}

// Initialize flags for the check command.
func init() {
	CheckCmd.Flags().StringVarP(&checkOptions.InputFile, "input-file", "i", "", "Path to a file containing a newline-separated list of files to analyze.")
	CheckCmd.Flags().StringVarP(&checkOptions.OutputPath, "output", "o", "", "Path to the output file or directory where the run report will be saved.")
	CheckCmd.Flags().IntVarP(&checkOptions.Workers, "workers", "j", 0, "Number of concurrent workers to use (defaults to the configured value).")
	CheckCmd.Flags().BoolVar(&checkOptions.NoCache, "no-cache", false, "Re-evaluate every file, ignoring the persistent result cache.")
	CheckCmd.Flags().BoolP("help", "h", false, "Show help for the check command.")
}
