package cache

import (
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/file-quality/fqcheck/internal/report"
	"github.com/file-quality/fqcheck/internal/rules"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "results.duckdb"), hclog.NewNullLogger())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleResult(path string) report.FileResult {
	return report.FileResult{
		Path:                  path,
		Fingerprint:           "fp1",
		NormalizedFingerprint: "norm1",
		Findings: []rules.Finding{
			{RuleID: "max-file-size", Severity: rules.SeverityWarning, Message: "too big"},
		},
		Score:  97,
		Status: report.StatusPass,
	}
}

func TestCacheRoundTrip(t *testing.T) {
	db := openTestDB(t)
	result := sampleResult("/p/a.txt")

	require.NoError(t, db.Put("/p/a.txt", "fp1", "v1", result))

	got, ok := db.Get("/p/a.txt", "fp1", "v1")
	require.True(t, ok)
	assert.Equal(t, result, *got)
}

func TestCacheMissOnUnknownPath(t *testing.T) {
	db := openTestDB(t)
	_, ok := db.Get("/p/unknown.txt", "fp1", "v1")
	assert.False(t, ok)
}

func TestCacheGatedByFingerprintAndVersion(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Put("/p/a.txt", "fp1", "v1", sampleResult("/p/a.txt")))

	_, ok := db.Get("/p/a.txt", "fp2", "v1")
	assert.False(t, ok, "changed content must force re-evaluation")

	_, ok = db.Get("/p/a.txt", "fp1", "v2")
	assert.False(t, ok, "changed rule set must force re-evaluation")

	_, ok = db.Get("/p/a.txt", "fp1", "v1")
	assert.True(t, ok)
}

func TestCachePutReplacesEntry(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Put("/p/a.txt", "fp1", "v1", sampleResult("/p/a.txt")))

	updated := sampleResult("/p/a.txt")
	updated.Fingerprint = "fp2"
	updated.Score = 100
	updated.Findings = nil
	require.NoError(t, db.Put("/p/a.txt", "fp2", "v1", updated))

	_, ok := db.Get("/p/a.txt", "fp1", "v1")
	assert.False(t, ok, "old fingerprint must be gone after overwrite")

	got, ok := db.Get("/p/a.txt", "fp2", "v1")
	require.True(t, ok)
	assert.Equal(t, 100, got.Score)
}

func TestCachePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.duckdb")

	db, err := Open(dbPath, hclog.NewNullLogger())
	require.NoError(t, err)
	require.NoError(t, db.Put("/p/a.txt", "fp1", "v1", sampleResult("/p/a.txt")))
	require.NoError(t, db.Close())

	reopened, err := Open(dbPath, hclog.NewNullLogger())
	require.NoError(t, err)
	defer reopened.Close()

	_, ok := reopened.Get("/p/a.txt", "fp1", "v1")
	assert.True(t, ok, "entries must survive process restarts")
}

func TestNopStoreNeverHits(t *testing.T) {
	store := Nop{}
	require.NoError(t, store.Put("/p/a.txt", "fp1", "v1", sampleResult("/p/a.txt")))
	_, ok := store.Get("/p/a.txt", "fp1", "v1")
	assert.False(t, ok)
	assert.NoError(t, store.Close())
}
