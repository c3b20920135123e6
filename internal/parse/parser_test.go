package parse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlefebvre/contraudit/internal/schema"
)

const wellFormed = `{
  "score": 72,
  "executiveSummary": "Overall the contract covers most obligations.",
  "generalClauses": ["The provider commits to all applicable regulation."],
  "recommendedClauses": ["Add a global audit cooperation clause."],
  "items": [
    {"requirementId": "I.1", "status": "COMPLIANT", "comment": "Article 2 defines the services.", "foundClause": "The Provider shall deliver the Services described in Annex 1."},
    {"requirementId": "I.2", "status": "PARTIAL", "comment": "SLA lacks measurable targets.", "proposedClause": "Availability shall be at least 99.9% per calendar month."},
    {"requirementId": "III.1", "status": "ABSENT", "comment": "No on-site audit right found."}
  ]
}`

func TestAnalysisStrict(t *testing.T) {
	t.Run("clean JSON round-trips every item", func(t *testing.T) {
		a, err := Analysis(wellFormed)
		require.NoError(t, err)
		assert.False(t, a.Partial)
		assert.Equal(t, 72, a.Score)
		assert.Equal(t, "Overall the contract covers most obligations.", a.ExecutiveSummary)
		require.Len(t, a.Items, 3)
		assert.Equal(t, "I.1", a.Items[0].RequirementID)
		assert.Equal(t, schema.StatusCompliant, a.Items[0].Status)
		assert.Equal(t, "The Provider shall deliver the Services described in Annex 1.", a.Items[0].FoundClause)
		assert.Equal(t, "Availability shall be at least 99.9% per calendar month.", a.Items[1].ProposedClause)
		assert.Len(t, a.GeneralClauses, 1)
		assert.Len(t, a.RecommendedClauses, 1)
	})

	t.Run("fenced block with surrounding commentary", func(t *testing.T) {
		raw := "Here is my analysis of the contract:\n\n```json\n" + wellFormed + "\n```\n\nLet me know if you need detail."
		a, err := Analysis(raw)
		require.NoError(t, err)
		assert.False(t, a.Partial)
		assert.Equal(t, 72, a.Score)
		assert.Len(t, a.Items, 3)
	})

	t.Run("bare fence without language tag", func(t *testing.T) {
		raw := "```\n" + wellFormed + "\n```"
		a, err := Analysis(raw)
		require.NoError(t, err)
		assert.Len(t, a.Items, 3)
	})

	t.Run("fractional score is rounded", func(t *testing.T) {
		a, err := Analysis(`{"score": 71.6, "executiveSummary": "s", "items": [{"requirementId": "I.1", "status": "NA", "comment": "c"}]}`)
		require.NoError(t, err)
		assert.Equal(t, 72, a.Score)
	})

	t.Run("out-of-range score is clamped", func(t *testing.T) {
		a, err := Analysis(`{"score": 250, "items": [{"requirementId": "I.1", "status": "NA", "comment": "c"}]}`)
		require.NoError(t, err)
		assert.Equal(t, 100, a.Score)
	})
}

func TestAnalysisRecovery(t *testing.T) {
	t.Run("truncation mid-array recovers the complete items", func(t *testing.T) {
		truncated := `{
  "score": 80,
  "executiveSummary": "Solid contract overall.",
  "items": [
    {"requirementId": "I.1", "status": "COMPLIANT", "comment": "covered"},
    {"requirementId": "I.2", "status": "ABSENT", "comment": "not found"},
    {"requirementId": "I.3", "status": "PARTIAL", "comment": "incomple`
		a, err := Analysis(truncated)
		require.NoError(t, err)
		assert.True(t, a.Partial)
		assert.Equal(t, 2, a.RecoveredCount)
		require.Len(t, a.Items, 2)
		assert.Equal(t, "I.1", a.Items[0].RequirementID)
		assert.Equal(t, "I.2", a.Items[1].RequirementID)
		assert.Contains(t, a.ExecutiveSummary, "[PARTIAL ANALYSIS:")
		assert.Contains(t, a.ExecutiveSummary, "2 requirement item(s) recovered")
		assert.Contains(t, a.ExecutiveSummary, "Solid contract overall.")
	})

	t.Run("recovered score is computed, not the asserted one", func(t *testing.T) {
		// Both items use unknown ids so each weighs 1:
		// (100 + 0) / 200 -> 50, regardless of the asserted 95.
		truncated := `{"score": 95, "items": [
			{"requirementId": "X.1", "status": "COMPLIANT", "comment": "c"},
			{"requirementId": "X.2", "status": "ABSENT", "comment": "c"},
			{"requirementId": "X.3", "status":`
		a, err := Analysis(truncated)
		require.NoError(t, err)
		assert.True(t, a.Partial)
		assert.Equal(t, 50, a.Score)
	})

	t.Run("escaped quotes inside recovered fields survive", func(t *testing.T) {
		raw := `{"items": [{"requirementId": "I.1", "status": "PARTIAL", "comment": "clause says \"best efforts\" only", "foundClause": "the \"Services\""},
			{"requirementId": "I.2", "status":`
		a, err := Analysis(raw)
		require.NoError(t, err)
		require.Len(t, a.Items, 1)
		assert.Equal(t, `clause says "best efforts" only`, a.Items[0].Comment)
		assert.Equal(t, `the "Services"`, a.Items[0].FoundClause)
	})

	t.Run("null optional fields recover as empty", func(t *testing.T) {
		raw := `{"items": [{"requirementId": "I.1", "status": "ABSENT", "comment": "c", "foundClause": null, "proposedClause": null}`
		a, err := Analysis(raw)
		require.NoError(t, err)
		require.Len(t, a.Items, 1)
		assert.Empty(t, a.Items[0].FoundClause)
		assert.Empty(t, a.Items[0].ProposedClause)
	})

	t.Run("invalid status values do not match recovery", func(t *testing.T) {
		raw := `{"items": [
			{"requirementId": "I.1", "status": "MAYBE", "comment": "c"},
			{"requirementId": "I.2", "status": "COMPLIANT", "comment": "c"}`
		a, err := Analysis(raw)
		require.NoError(t, err)
		require.Len(t, a.Items, 1)
		assert.Equal(t, "I.2", a.Items[0].RequirementID)
	})

	t.Run("missing top-level score forces recovery", func(t *testing.T) {
		raw := `{"executiveSummary": "s", "items": [{"requirementId": "I.1", "status": "COMPLIANT", "comment": "c"}]}`
		a, err := Analysis(raw)
		require.NoError(t, err)
		assert.True(t, a.Partial)
		assert.Equal(t, 100, a.Score)
	})
}

func TestAnalysisUnparseable(t *testing.T) {
	cases := []string{
		"",
		"I could not analyze this document.",
		`{"score": 50, "items": []}`,
		"```json\n{broken",
	}
	for i, raw := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			_, err := Analysis(raw)
			assert.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}
