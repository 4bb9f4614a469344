package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineFileFullPath(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "existing.json")
	require.NoError(t, os.WriteFile(existingFile, []byte("{}"), 0o644))

	tests := []struct {
		name         string
		path         string
		nameTemplate string
		wantFull     string
		wantFolder   string
	}{
		{
			name:         "existing directory gets template appended",
			path:         tmpDir,
			nameTemplate: "report.json",
			wantFull:     filepath.Join(tmpDir, "report.json"),
			wantFolder:   tmpDir,
		},
		{
			name:         "missing extension-less path treated as directory",
			path:         filepath.Join(tmpDir, "out"),
			nameTemplate: "report.json",
			wantFull:     filepath.Join(tmpDir, "out", "report.json"),
			wantFolder:   filepath.Join(tmpDir, "out"),
		},
		{
			name:         "path with extension used as-is",
			path:         filepath.Join(tmpDir, "custom.json"),
			nameTemplate: "report.json",
			wantFull:     filepath.Join(tmpDir, "custom.json"),
			wantFolder:   tmpDir,
		},
		{
			name:         "existing file used as-is",
			path:         existingFile,
			nameTemplate: "report.json",
			wantFull:     existingFile,
			wantFolder:   tmpDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFull, gotFolder, err := DetermineFileFullPath(tt.path, tt.nameTemplate)
			if err != nil {
				t.Fatalf("DetermineFileFullPath(%q) returned error: %v", tt.path, err)
			}
			if gotFull != tt.wantFull {
				t.Errorf("full path = %q, want %q", gotFull, tt.wantFull)
			}
			if gotFolder != tt.wantFolder {
				t.Errorf("folder = %q, want %q", gotFolder, tt.wantFolder)
			}
		})
	}
}

func TestWriteJSONFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "nested", "report.json")
	require.NoError(t, WriteJSONFile(outputFile, []byte(`{"ok":true}`)))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(data))

	// No temporary files may survive a successful write.
	entries, err := os.ReadDir(filepath.Dir(outputFile))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.json", entries[0].Name())
}

func TestWriteJSONFileOverwrites(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSONFile(outputFile, []byte("first")))
	require.NoError(t, WriteJSONFile(outputFile, []byte("second")))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestReadPathList(t *testing.T) {
	listFile := filepath.Join(t.TempDir(), "paths.txt")
	content := "/data/a.txt\n\n# a comment\n  /data/b.txt  \n"
	require.NoError(t, os.WriteFile(listFile, []byte(content), 0o644))

	paths, err := ReadPathList(listFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/a.txt", "/data/b.txt"}, paths)
}

func TestReadPathListMissingFile(t *testing.T) {
	_, err := ReadPathList(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestValidatePath(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.NoError(t, ValidatePath(file))
	assert.Error(t, ValidatePath(tmpDir), "directories are not readable inputs")
	assert.Error(t, ValidatePath(filepath.Join(tmpDir, "missing.txt")))
}
