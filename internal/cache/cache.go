package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	_ "github.com/marcboeker/go-duckdb/v2"

	"github.com/file-quality/fqcheck/internal/report"
	sherrors "github.com/file-quality/fqcheck/pkg/shared/errors"
)

// Store is the result cache consulted by the analyzer. A lookup hits only
// when both the content fingerprint and the rule-set version of the stored
// entry match the current file and configuration; correctness is strictly
// fingerprint- and version-gated, never time-based.
type Store interface {
	Get(path, fingerprint, rulesetVersion string) (*report.FileResult, bool)
	Put(path, fingerprint, rulesetVersion string, result report.FileResult) error
	Close() error
}

// DB is a DuckDB-backed Store persisted between invocations, keyed by path
// with one row per file so an entry can be replaced without touching others.
type DB struct {
	db     *sql.DB
	logger hclog.Logger
}

// Open opens (or creates) the cache database at dbPath.
func Open(dbPath string, logger hclog.Logger) (*DB, error) {
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening cache database: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS results (
		path VARCHAR PRIMARY KEY,
		fingerprint VARCHAR NOT NULL,
		ruleset_version VARCHAR NOT NULL,
		result VARCHAR NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating cache table: %w", err)
	}

	logger.Debug("cache database initialized", "path", dbPath)
	return &DB{db: db, logger: logger}, nil
}

// Get returns the cached result for path if both fingerprint and rule-set
// version match. A corrupt row is reported as a miss and left for the next
// Put to overwrite.
func (c *DB) Get(path, fingerprint, rulesetVersion string) (*report.FileResult, bool) {
	var storedFingerprint, storedVersion, storedResult string
	row := c.db.QueryRow(
		"SELECT fingerprint, ruleset_version, result FROM results WHERE path = ?", path)
	if err := row.Scan(&storedFingerprint, &storedVersion, &storedResult); err != nil {
		if err != sql.ErrNoRows {
			c.logger.Warn("cache lookup failed, treating as miss", "path", path, "error", err)
		}
		return nil, false
	}

	if storedFingerprint != fingerprint || storedVersion != rulesetVersion {
		return nil, false
	}

	var result report.FileResult
	if err := json.Unmarshal([]byte(storedResult), &result); err != nil {
		corruption := sherrors.NewCacheCorruptionError(path, err.Error())
		c.logger.Warn("treating corrupt cache entry as miss", "error", corruption)
		return nil, false
	}
	return &result, true
}

// Put stores the result for path, replacing any previous entry.
func (c *DB) Put(path, fingerprint, rulesetVersion string, result report.FileResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error marshaling result for %q: %w", path, err)
	}

	_, err = c.db.Exec(`
		INSERT INTO results (path, fingerprint, ruleset_version, result, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
		fingerprint = excluded.fingerprint,
		ruleset_version = excluded.ruleset_version,
		result = excluded.result,
		updated_at = excluded.updated_at
	`, path, fingerprint, rulesetVersion, string(data), time.Now())
	if err != nil {
		return fmt.Errorf("error storing cache entry for %q: %w", path, err)
	}
	return nil
}

// Close closes the underlying database.
func (c *DB) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Nop is a Store that never hits; it backs runs with caching disabled.
type Nop struct{}

func (Nop) Get(string, string, string) (*report.FileResult, bool) { return nil, false }

func (Nop) Put(string, string, string, report.FileResult) error { return nil }

func (Nop) Close() error { return nil }
