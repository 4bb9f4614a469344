package rules

import "bytes"

// Target carries everything a rule may inspect about one file. Content is
// read once per file by the analyzer and shared read-only across rules.
type Target struct {
	// Path is the normalized absolute path of the file.
	Path string
	// RelPath is the slash-separated path relative to the analysis root.
	RelPath string
	Size    int64
	Content []byte
}

// Rule is an independent quality check. Implementations must be stateless
// with respect to a run and must not retain or mutate the target; cross-file
// state (duplicate grouping) is owned by the aggregation step, not by rules.
type Rule interface {
	ID() string
	// Applicable reports whether the rule runs on the given file.
	Applicable(target Target) bool
	// Evaluate returns zero or more findings for the file.
	Evaluate(target Target) []Finding
}

const binarySniffLen = 8 << 10

// isTextContent reports whether content looks like text. A NUL byte within
// the leading window marks the file as binary.
func isTextContent(content []byte) bool {
	window := content
	if len(window) > binarySniffLen {
		window = window[:binarySniffLen]
	}
	return !bytes.ContainsRune(window, 0)
}
