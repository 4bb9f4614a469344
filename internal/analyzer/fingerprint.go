package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"unicode"
)

// Fingerprint returns the hex sha256 digest of content. It keys cache
// entries and exact duplicate detection.
func Fingerprint(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// NormalizedFingerprint digests content with all whitespace stripped, so two
// files differing only in spacing land in the same duplicate group. With
// ignoreWhitespace disabled it equals Fingerprint.
func NormalizedFingerprint(content []byte, ignoreWhitespace bool) string {
	if !ignoreWhitespace {
		return Fingerprint(content)
	}

	hash := sha256.New()
	start := -1
	for i, b := range content {
		if unicode.IsSpace(rune(b)) {
			if start >= 0 {
				hash.Write(content[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		hash.Write(content[start:])
	}
	return hex.EncodeToString(hash.Sum(nil))
}
