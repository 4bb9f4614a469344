package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// namingRule flags file and directory names under the analysis root that do
// not match the configured pattern. It never reads file content.
type namingRule struct {
	pattern *regexp.Regexp
}

func newNamingRule(pattern string) (*namingRule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("naming pattern %q does not compile: %w", pattern, err)
	}
	return &namingRule{pattern: re}, nil
}

func (r *namingRule) ID() string {
	return "naming"
}

func (r *namingRule) Applicable(Target) bool {
	return true
}

func (r *namingRule) Evaluate(target Target) []Finding {
	var findings []Finding
	for _, element := range strings.Split(target.RelPath, "/") {
		if element == "" || r.pattern.MatchString(element) {
			continue
		}
		findings = append(findings, Finding{
			RuleID:   r.ID(),
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("path element %q does not match naming pattern %q", element, r.pattern.String()),
		})
	}
	return findings
}
