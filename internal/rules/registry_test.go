package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/file-quality/fqcheck/pkg/shared/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("FQCHECK_HOME", t.TempDir())
	cfg := &config.Config{}
	require.NoError(t, config.ValidateConfig(cfg))
	return cfg
}

func TestNewRegistryEnablesDefaultRules(t *testing.T) {
	registry, err := NewRegistry(testConfig(t))
	require.NoError(t, err)

	var ids []string
	for _, rule := range registry.Rules() {
		ids = append(ids, rule.ID())
	}
	assert.Equal(t, []string{"max-file-size", "encoding", "line-hygiene", "naming", "duplication"}, ids)
	assert.True(t, registry.DuplicationEnabled())
	assert.NotEmpty(t, registry.Version())
}

func TestNewRegistrySkipsDisabledRules(t *testing.T) {
	cfg := testConfig(t)
	disabled := false
	cfg.Rules.Naming.Enabled = &disabled
	cfg.Rules.Duplication.Enabled = &disabled

	registry, err := NewRegistry(cfg)
	require.NoError(t, err)

	for _, rule := range registry.Rules() {
		assert.NotEqual(t, "naming", rule.ID())
		assert.NotEqual(t, RuleIDDuplication, rule.ID())
	}
	assert.False(t, registry.DuplicationEnabled())
}

func TestRegistryVersionTracksConfiguration(t *testing.T) {
	cfg := testConfig(t)
	base, err := NewRegistry(cfg)
	require.NoError(t, err)

	same, err := NewRegistry(cfg)
	require.NoError(t, err)
	assert.Equal(t, base.Version(), same.Version(), "identical configuration must produce an identical version")

	cfg.Rules.MaxFileSize.MaxFileSizeBytes = 42
	reconfigured, err := NewRegistry(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, base.Version(), reconfigured.Version(), "changing a rule threshold must change the version")

	cfg2 := testConfig(t)
	cfg2.Scoring.PassThreshold = 10
	rescored, err := NewRegistry(cfg2)
	require.NoError(t, err)
	assert.NotEqual(t, base.Version(), rescored.Version(), "changing scoring must change the version, since cached results embed scores")

	cfg3 := testConfig(t)
	disabled := false
	cfg3.Rules.Encoding.Enabled = &disabled
	smaller, err := NewRegistry(cfg3)
	require.NoError(t, err)
	assert.NotEqual(t, base.Version(), smaller.Version(), "removing a rule must change the version")
}

func TestRegistryApplicableRespectsOrder(t *testing.T) {
	registry, err := NewRegistry(testConfig(t))
	require.NoError(t, err)

	target := Target{Path: "/tmp/a.txt", RelPath: "a.txt", Size: 3, Content: []byte("ok\n")}
	applicable := registry.Applicable(target)

	var ids []string
	for _, rule := range applicable {
		ids = append(ids, rule.ID())
	}
	// Duplication never applies per file; it runs during aggregation.
	assert.Equal(t, []string{"max-file-size", "encoding", "line-hygiene", "naming"}, ids)
}

type panickingRule struct{}

func (panickingRule) ID() string              { return "panicking" }
func (panickingRule) Applicable(Target) bool  { return true }
func (panickingRule) Evaluate(Target) []Finding {
	panic("boom")
}

func TestSafeEvaluateContainsPanics(t *testing.T) {
	findings := SafeEvaluate(panickingRule{}, Target{})
	require.Len(t, findings, 1)
	assert.Equal(t, RuleIDRuleFailure, findings[0].RuleID)
	assert.Equal(t, SeverityError, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "panicking")
}

func TestSafeEvaluatePassesThroughFindings(t *testing.T) {
	rule := newMaxFileSizeRule(10)
	findings := SafeEvaluate(rule, Target{Size: 100})
	require.Len(t, findings, 1)
	assert.Equal(t, "max-file-size", findings[0].RuleID)
}
