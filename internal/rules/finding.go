package rules

// Severity classifies how strongly a finding penalizes a file's score.
type Severity string

const (
	SeverityNote    Severity = "note"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rule IDs for findings the engine synthesizes itself rather than a rule
// producing them through Evaluate.
const (
	RuleIDUnreadableFile  = "unreadable-file"
	RuleIDRuleFailure     = "rule-failure"
	RuleIDDiscoveryAccess = "discovery-access"
	RuleIDDuplication     = "duplication"
)

// Finding is a single reported quality issue for a file. Findings are values:
// a file's finding set is recomputed whole on every evaluation, never patched.
type Finding struct {
	RuleID     string   `json:"rule_id"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Line       int      `json:"line,omitempty"`
	ByteOffset int      `json:"byte_offset,omitempty"`
}
