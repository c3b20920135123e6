package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlefebvre/contraudit/internal/schema"
)

func analysisFixture() *schema.ContractAnalysis {
	return &schema.ContractAnalysis{
		Score:            55,
		ExecutiveSummary: "The contract covers the basics.",
		GeneralClauses:   []string{"The provider commits to all applicable regulation."},
		Items: []schema.AnalysisResultItem{
			{RequirementID: "I.1", Status: schema.StatusCompliant, Comment: "covered", FoundClause: "Article 2."},
			{RequirementID: "I.7", Status: schema.StatusPartial, Comment: "audit right limited to annual visits"},
			{RequirementID: "II.1", Status: schema.StatusAbsent, Comment: "nothing found"},
			{RequirementID: "IV.2", Status: schema.StatusNA, Comment: "no subcontracting permitted"},
			{RequirementID: "Z.9", Status: schema.StatusImplicit, Comment: "general clause only"},
		},
	}
}

func TestTransform(t *testing.T) {
	rep := Transform(analysisFixture(), "anthropic:claude-sonnet-4-5", "1.2.0")

	t.Run("metadata", func(t *testing.T) {
		assert.Equal(t, "contraudit", rep.Tool)
		assert.Equal(t, "1.2.0", rep.Version)
		assert.Equal(t, "anthropic:claude-sonnet-4-5", rep.Model)
		assert.Equal(t, 55, rep.OverallScore)
		assert.False(t, rep.Partial)
		assert.False(t, rep.CreatedAt.IsZero())
	})

	t.Run("status mapping", func(t *testing.T) {
		require.Len(t, rep.Findings, 5)
		assert.Equal(t, schema.FindingCompliant, rep.Findings[0].Status)
		assert.Equal(t, schema.FindingPartial, rep.Findings[1].Status)
		assert.Equal(t, schema.FindingNonCompliant, rep.Findings[2].Status)
		assert.Equal(t, schema.FindingNotApplicable, rep.Findings[3].Status)
		assert.Equal(t, schema.FindingImplicit, rep.Findings[4].Status)
	})

	t.Run("catalog enrichment", func(t *testing.T) {
		f := rep.Findings[1]
		assert.Equal(t, "I.7", f.RequirementID)
		assert.NotEqual(t, "I.7", f.Name)
		assert.NotEmpty(t, f.Reference)
		assert.Equal(t, "I", f.Section)
		assert.Equal(t, "CRITICAL", f.Criticality)
	})

	t.Run("unknown id degrades to the raw id", func(t *testing.T) {
		f := rep.Findings[4]
		assert.Equal(t, "Z.9", f.RequirementID)
		assert.Equal(t, "Z.9", f.Name)
		assert.Empty(t, f.Reference)
		assert.Empty(t, f.Criticality)
	})

	t.Run("recommendations only on non-compliant applicable findings", func(t *testing.T) {
		assert.Empty(t, rep.Findings[0].Recommendation) // compliant
		assert.Empty(t, rep.Findings[3].Recommendation) // not-applicable
		assert.NotEmpty(t, rep.Findings[1].Recommendation)
		assert.NotEmpty(t, rep.Findings[2].Recommendation)
		// Implicit findings get a recommendation only when the model proposed one.
		assert.Empty(t, rep.Findings[4].Recommendation)
	})

	t.Run("model proposed clause wins over synthesis", func(t *testing.T) {
		a := analysisFixture()
		a.Items[2].ProposedClause = "The Provider shall implement ISO 27001 controls."
		rep := Transform(a, "m", "v")
		assert.Equal(t, "The Provider shall implement ISO 27001 controls.", rep.Findings[2].Recommendation)
	})

	t.Run("summary counts applicability", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(rep.Summary, "The contract covers the basics."))
		assert.Contains(t, rep.Summary, "4 of 5 requirements applicable; 1 excluded as not applicable.")
	})

	t.Run("partial flag propagates", func(t *testing.T) {
		a := analysisFixture()
		a.Partial = true
		assert.True(t, Transform(a, "m", "v").Partial)
	})
}

func TestRenderers(t *testing.T) {
	rep := Transform(analysisFixture(), "anthropic:claude-sonnet-4-5", "1.2.0")

	t.Run("json renders the full report", func(t *testing.T) {
		r, err := NewRenderer("json")
		require.NoError(t, err)
		out, err := r.Render(rep)
		require.NoError(t, err)

		var decoded schema.Report
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Equal(t, rep.OverallScore, decoded.OverallScore)
		assert.Len(t, decoded.Findings, 5)
	})

	t.Run("markdown renders headers and findings", func(t *testing.T) {
		r, err := NewRenderer("md")
		require.NoError(t, err)
		out, err := r.Render(rep)
		require.NoError(t, err)

		md := string(out)
		assert.Contains(t, md, "# Contract Compliance Report")
		assert.Contains(t, md, "**Overall score:** 55/100")
		assert.Contains(t, md, "## Findings")
		assert.Contains(t, md, "I.7")
		assert.Contains(t, md, "> Article 2.")
	})

	t.Run("unknown format errors", func(t *testing.T) {
		_, err := NewRenderer("xml")
		assert.Error(t, err)
	})
}
