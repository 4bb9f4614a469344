package report

import (
	"github.com/file-quality/fqcheck/internal/rules"
	"github.com/file-quality/fqcheck/pkg/shared/config"
)

// ScoreOptions is the scoring configuration frozen for one run.
type ScoreOptions struct {
	Baseline      int
	PassThreshold int
	Weights       map[rules.Severity]int
}

// ScoreOptionsFromConfig translates the validated configuration into score
// options. Unknown severities default to the warning weight.
func ScoreOptionsFromConfig(cfg *config.Config) ScoreOptions {
	weights := make(map[rules.Severity]int, len(cfg.Scoring.SeverityWeights))
	for severity, weight := range cfg.Scoring.SeverityWeights {
		weights[rules.Severity(severity)] = weight
	}
	return ScoreOptions{
		Baseline:      cfg.Scoring.Baseline,
		PassThreshold: cfg.Scoring.PassThreshold,
		Weights:       weights,
	}
}

// Score computes the deterministic per-file score: the baseline minus the
// summed severity weights of all findings, floored at zero.
func (o ScoreOptions) Score(findings []rules.Finding) int {
	penalty := 0
	for _, finding := range findings {
		penalty += o.Weights[finding.Severity]
	}
	score := o.Baseline - penalty
	if score < 0 {
		score = 0
	}
	return score
}

// Status maps a score onto the pass/fail threshold.
func (o ScoreOptions) Status(score int) string {
	if score >= o.PassThreshold {
		return StatusPass
	}
	return StatusFail
}
