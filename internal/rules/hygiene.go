package rules

import (
	"bytes"
	"fmt"
	"strings"
)

// lineHygieneRule flags mixed line-ending styles within one file, line
// endings outside the allowed set, and trailing whitespace per line. The
// per-line findings are capped to bound output size on degenerate files.
type lineHygieneRule struct {
	allowCRLF      bool
	allowLF        bool
	flagTrailing   bool
	maxFindingsCap int
}

func newLineHygieneRule(allowedStyles []string, flagTrailing bool, maxFindings int) *lineHygieneRule {
	r := &lineHygieneRule{
		flagTrailing:   flagTrailing,
		maxFindingsCap: maxFindings,
	}
	for _, style := range allowedStyles {
		switch strings.ToLower(style) {
		case "lf":
			r.allowLF = true
		case "crlf":
			r.allowCRLF = true
		}
	}
	return r
}

func (r *lineHygieneRule) ID() string {
	return "line-hygiene"
}

func (r *lineHygieneRule) Applicable(target Target) bool {
	return isTextContent(target.Content)
}

func (r *lineHygieneRule) Evaluate(target Target) []Finding {
	var findings []Finding

	crlf, lf := countLineEndings(target.Content)
	switch {
	case crlf > 0 && lf > 0:
		findings = append(findings, Finding{
			RuleID:   r.ID(),
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("mixed line endings: %d crlf and %d lf", crlf, lf),
		})
	case crlf > 0 && !r.allowCRLF:
		findings = append(findings, Finding{
			RuleID:   r.ID(),
			Severity: SeverityWarning,
			Message:  "crlf line endings are not allowed",
		})
	case lf > 0 && !r.allowLF:
		findings = append(findings, Finding{
			RuleID:   r.ID(),
			Severity: SeverityWarning,
			Message:  "lf line endings are not allowed",
		})
	}

	if !r.flagTrailing {
		return findings
	}

	capped := false
	perLine := 0
	for i, line := range bytes.Split(target.Content, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) == 0 {
			continue
		}
		last := line[len(line)-1]
		if last != ' ' && last != '\t' {
			continue
		}
		if perLine >= r.maxFindingsCap {
			capped = true
			break
		}
		perLine++
		findings = append(findings, Finding{
			RuleID:   r.ID(),
			Severity: SeverityNote,
			Message:  "trailing whitespace",
			Line:     i + 1,
		})
	}
	if capped {
		findings = append(findings, Finding{
			RuleID:   r.ID(),
			Severity: SeverityNote,
			Message:  fmt.Sprintf("further trailing whitespace findings suppressed after the first %d", r.maxFindingsCap),
		})
	}

	return findings
}

// countLineEndings returns how many crlf and bare lf terminators appear.
func countLineEndings(content []byte) (crlf, lf int) {
	crlf = bytes.Count(content, []byte("\r\n"))
	lf = bytes.Count(content, []byte("\n")) - crlf
	return crlf, lf
}
