package rules

import "fmt"

// maxFileSizeRule flags files above a configured byte threshold. A file
// exactly at the threshold is clean; severity escalates once the file is
// more than twice the allowed size.
type maxFileSizeRule struct {
	maxBytes int64
}

func newMaxFileSizeRule(maxBytes int64) *maxFileSizeRule {
	return &maxFileSizeRule{maxBytes: maxBytes}
}

func (r *maxFileSizeRule) ID() string {
	return "max-file-size"
}

func (r *maxFileSizeRule) Applicable(Target) bool {
	return true
}

func (r *maxFileSizeRule) Evaluate(target Target) []Finding {
	if target.Size <= r.maxBytes {
		return nil
	}

	severity := SeverityWarning
	if target.Size > 2*r.maxBytes {
		severity = SeverityError
	}

	return []Finding{{
		RuleID:   r.ID(),
		Severity: severity,
		Message:  fmt.Sprintf("file size %d bytes exceeds the limit of %d bytes by %d", target.Size, r.maxBytes, target.Size-r.maxBytes),
	}}
}
