package rules

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/file-quality/fqcheck/pkg/shared/config"
)

// Registry holds the ordered set of enabled rules for one analysis run plus a
// version identifier derived from their configuration. A registry is built
// once per run and never mutated while the run is in flight, so every file is
// evaluated against one consistent rule set.
type Registry struct {
	rules               []Rule
	version             string
	duplicationEnabled  bool
	duplicationIgnoreWS bool
}

// NewRegistry builds the registry from configuration. Rule order is fixed by
// registration, which is also the order findings appear in per file.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	r := &Registry{}

	ruleCfg := cfg.Rules
	if config.GetBoolValue(ruleCfg, "MaxFileSize.Enabled", true) {
		r.rules = append(r.rules, newMaxFileSizeRule(ruleCfg.MaxFileSize.MaxFileSizeBytes))
	}
	if config.GetBoolValue(ruleCfg, "Encoding.Enabled", true) {
		rule, err := newEncodingRule(ruleCfg.Encoding.ExpectedEncoding)
		if err != nil {
			return nil, fmt.Errorf("building encoding rule: %w", err)
		}
		r.rules = append(r.rules, rule)
	}
	if config.GetBoolValue(ruleCfg, "LineHygiene.Enabled", true) {
		r.rules = append(r.rules, newLineHygieneRule(
			ruleCfg.LineHygiene.AllowedLineEndings,
			config.GetBoolValue(ruleCfg, "LineHygiene.FlagTrailingWhitespace", true),
			ruleCfg.LineHygiene.MaxFindingsPerFile,
		))
	}
	if config.GetBoolValue(ruleCfg, "Naming.Enabled", true) {
		rule, err := newNamingRule(ruleCfg.Naming.NamingPattern)
		if err != nil {
			return nil, fmt.Errorf("building naming rule: %w", err)
		}
		r.rules = append(r.rules, rule)
	}
	if config.GetBoolValue(ruleCfg, "Duplication.Enabled", true) {
		r.rules = append(r.rules, newDuplicationRule(
			config.GetBoolValue(ruleCfg, "Duplication.IgnoreWhitespace", true),
		))
		r.duplicationEnabled = true
		r.duplicationIgnoreWS = config.GetBoolValue(ruleCfg, "Duplication.IgnoreWhitespace", true)
	}

	version, err := computeVersion(cfg, r.rules)
	if err != nil {
		return nil, fmt.Errorf("computing rule-set version: %w", err)
	}
	r.version = version

	return r, nil
}

// Version identifies the enabled rule set and its configuration. It changes
// whenever a rule is added, removed or reconfigured, and whenever scoring
// settings change, since cached results embed computed scores.
func (r *Registry) Version() string {
	return r.version
}

// Rules returns the enabled rules in registration order.
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Applicable returns the rules that run on the given file, in registration order.
func (r *Registry) Applicable(target Target) []Rule {
	var applicable []Rule
	for _, rule := range r.rules {
		if rule.Applicable(target) {
			applicable = append(applicable, rule)
		}
	}
	return applicable
}

// DuplicationEnabled reports whether the cross-file duplicate check runs
// during aggregation.
func (r *Registry) DuplicationEnabled() bool {
	return r.duplicationEnabled
}

// DuplicationIgnoresWhitespace reports whether duplicate grouping compares
// whitespace-normalized content.
func (r *Registry) DuplicationIgnoresWhitespace() bool {
	return r.duplicationIgnoreWS
}

// SafeEvaluate runs one rule on one file and contains any internal failure:
// a panicking rule yields exactly one synthetic finding instead of aborting
// the file or the run.
func SafeEvaluate(rule Rule, target Target) (findings []Finding) {
	defer func() {
		if recovered := recover(); recovered != nil {
			findings = []Finding{{
				RuleID:   RuleIDRuleFailure,
				Severity: SeverityError,
				Message:  fmt.Sprintf("rule %q failed on this file: %v", rule.ID(), recovered),
			}}
		}
	}()
	return rule.Evaluate(target)
}

// computeVersion hashes the enabled rule IDs together with the rules and
// scoring configuration into a stable identifier.
func computeVersion(cfg *config.Config, rules []Rule) (string, error) {
	ids := make([]string, 0, len(rules))
	for _, rule := range rules {
		ids = append(ids, rule.ID())
	}

	canonical, err := json.Marshal(struct {
		RuleIDs []string       `json:"rule_ids"`
		Rules   config.Rules   `json:"rules"`
		Scoring config.Scoring `json:"scoring"`
	}{ids, cfg.Rules, cfg.Scoring})
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
