package errors

import (
	"errors"
	"fmt"
)

// AccessError reports that the configured analysis root (or an explicitly
// listed target) could not be read at all. It is the only error class a run
// escalates to the caller; unreadable subpaths degrade to findings instead.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("path %q is not accessible: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// NewAccessError wraps err as an AccessError for the given path.
func NewAccessError(path string, err error) error {
	return &AccessError{Path: path, Err: err}
}

// IsAccessError reports whether err is (or wraps) an AccessError.
func IsAccessError(err error) bool {
	var accessErr *AccessError
	return errors.As(err, &accessErr)
}

// CacheCorruptionError reports an unreadable or inconsistent cache entry.
// Callers treat it as a cache miss and overwrite the entry; it is never fatal.
type CacheCorruptionError struct {
	Path   string
	Reason string
}

func (e *CacheCorruptionError) Error() string {
	return fmt.Sprintf("cache entry for %q is corrupt: %s", e.Path, e.Reason)
}

// NewCacheCorruptionError creates a CacheCorruptionError for the given cache key.
func NewCacheCorruptionError(path, reason string) error {
	return &CacheCorruptionError{Path: path, Reason: reason}
}
