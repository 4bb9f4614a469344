package check

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCheckArgs(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "fqcheck_example")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	tmpFile, err := os.CreateTemp(tmpDir, "fqcheck_testfile")
	assert.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	tests := []struct {
		name     string
		options  RunOptionsCheck
		args     []string
		wantMode string
		wantErr  string
	}{
		{
			// valid: fqcheck check /path/to/target
			name:     "Valid target path",
			options:  RunOptionsCheck{Workers: 4},
			args:     []string{tmpDir},
			wantMode: ModeSinglePath,
			wantErr:  "",
		},
		{
			// valid: fqcheck check --input-file /path/to/input.file
			name:     "Valid input file",
			options:  RunOptionsCheck{InputFile: tmpFile.Name(), Workers: 4},
			args:     []string{},
			wantMode: ModeInputFile,
			wantErr:  "",
		},
		{
			// fail: fqcheck check
			name:     "Missing both input file and target path",
			options:  RunOptionsCheck{Workers: 4},
			args:     []string{},
			wantMode: "",
			wantErr:  "either 'input-file' flag or a target path must be specified",
		},
		{
			// fail: fqcheck check --input-file /path/to/input.file /path/to/target
			name:     "Both input file and target path provided",
			options:  RunOptionsCheck{InputFile: tmpFile.Name(), Workers: 4},
			args:     []string{tmpDir},
			wantMode: "",
			wantErr:  "you cannot use an 'input-file' flag and a target path at the same time",
		},
		{
			// fail: fqcheck check /path/a /path/b
			name:     "Multiple target paths",
			options:  RunOptionsCheck{Workers: 4},
			args:     []string{tmpDir, tmpDir},
			wantMode: "",
			wantErr:  "only one target path may be specified, got 2",
		},
		{
			// fail: fqcheck check /invalid/path/to/target
			name:     "Invalid target path",
			options:  RunOptionsCheck{Workers: 4},
			args:     []string{"/invalid/path/to/target"},
			wantMode: "",
			wantErr:  "the target path does not exist: /invalid/path/to/target",
		},
		{
			// fail: fqcheck check -j -1 /path/to/target
			name:     "Non-positive workers",
			options:  RunOptionsCheck{Workers: -1},
			args:     []string{tmpDir},
			wantMode: "",
			wantErr:  "the 'workers' flag must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCheckArgs(&tt.options, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMode, determineMode(tt.args))
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}
