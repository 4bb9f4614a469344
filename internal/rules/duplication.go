package rules

// duplicationRule represents the cross-file duplicate-content check. It is
// registered so its configuration participates in the rule-set version, but
// per-file evaluation never runs: duplicate grouping needs every file's
// fingerprint, so the aggregation step performs it after analysis and injects
// RuleIDDuplication findings into every group member except the
// lexically-first path.
type duplicationRule struct {
	ignoreWhitespace bool
}

func newDuplicationRule(ignoreWhitespace bool) *duplicationRule {
	return &duplicationRule{ignoreWhitespace: ignoreWhitespace}
}

func (r *duplicationRule) ID() string {
	return RuleIDDuplication
}

func (r *duplicationRule) Applicable(Target) bool {
	return false
}

func (r *duplicationRule) Evaluate(Target) []Finding {
	return nil
}
