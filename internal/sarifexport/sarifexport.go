package sarifexport

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/file-quality/fqcheck/internal/report"
	"github.com/file-quality/fqcheck/internal/rules"
)

const informationURI = "https://github.com/file-quality/fqcheck"

// Convert renders a run report as a SARIF 2.1.0 document with one run, one
// reporting descriptor per distinct rule and one result per finding.
func Convert(runReport *report.RunReport) (*sarif.Report, error) {
	sarifReport, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("fqcheck", informationURI)

	addedRules := make(map[string]bool)
	addFinding := func(path string, finding rules.Finding) {
		if !addedRules[finding.RuleID] {
			run.AddRule(finding.RuleID).
				WithDescription(ruleDescription(finding.RuleID)).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{
					Level: toSarifLevel(finding.Severity),
				})
			addedRules[finding.RuleID] = true
		}

		physical := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().WithUri(path))
		if finding.Line > 0 {
			physical = physical.WithRegion(sarif.NewRegion().WithStartLine(finding.Line))
		}
		location := sarif.NewLocation().WithPhysicalLocation(physical)

		result := sarif.NewRuleResult(finding.RuleID).
			WithMessage(sarif.NewTextMessage(finding.Message)).
			WithLevel(toSarifLevel(finding.Severity)).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}

	for _, file := range runReport.Files {
		for _, finding := range file.Findings {
			addFinding(file.Path, finding)
		}
	}
	for _, finding := range runReport.DiscoveryFindings {
		addFinding(runReport.Root, finding)
	}

	sarifReport.AddRun(run)
	return sarifReport, nil
}

// Write converts the run report and pretty-prints the SARIF document to w.
func Write(runReport *report.RunReport, w io.Writer) error {
	sarifReport, err := Convert(runReport)
	if err != nil {
		return err
	}
	return sarifReport.PrettyWrite(w)
}

func toSarifLevel(severity rules.Severity) string {
	switch severity {
	case rules.SeverityError:
		return "error"
	case rules.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

func ruleDescription(ruleID string) string {
	switch ruleID {
	case "max-file-size":
		return "File exceeds the configured size threshold"
	case "encoding":
		return "File content is not valid under the expected encoding"
	case "line-hygiene":
		return "Line-ending style or trailing whitespace issue"
	case "naming":
		return "File or directory name violates the naming convention"
	case rules.RuleIDDuplication:
		return "File content duplicates another file in the run"
	case rules.RuleIDUnreadableFile:
		return "File could not be read"
	case rules.RuleIDRuleFailure:
		return "A rule failed internally while evaluating the file"
	case rules.RuleIDDiscoveryAccess:
		return "A path was skipped during discovery"
	default:
		return ruleID
	}
}
