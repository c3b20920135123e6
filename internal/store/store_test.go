package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlefebvre/contraudit/internal/schema"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "audits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func reportFixture() *schema.Report {
	return &schema.Report{
		Tool:         "contraudit",
		Version:      "1.0.0",
		Model:        "anthropic:claude-sonnet-4-5",
		CreatedAt:    time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		OverallScore: 62,
		Summary:      "Adequate coverage with gaps in audit rights.",
		Partial:      false,
		Findings: []schema.Finding{
			{
				RequirementID: "I.1",
				Name:          "Description of the outsourced function",
				Reference:     "EBA/GL/2019/02 §75(a)",
				Section:       "I",
				Criticality:   "MAJOR",
				Status:        schema.FindingCompliant,
				Comment:       "Article 2 defines the services.",
				FoundClause:   "The Provider shall deliver the Services.",
			},
			{
				RequirementID:  "III.1",
				Name:           "Unrestricted on-site inspection and audit right",
				Reference:      "EBA/GL/2019/02 §87(a)",
				Section:        "III",
				Criticality:    "CRITICAL",
				Status:         schema.FindingNonCompliant,
				Comment:        "No audit clause found.",
				Recommendation: "[HIGH PRIORITY] Draft a clause covering on-site audit rights.",
			},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	s := openTempStore(t)

	id, err := s.Save(reportFixture())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.GetAnalysis(id)
	require.NoError(t, err)

	assert.Equal(t, "contraudit", got.Tool)
	assert.Equal(t, "anthropic:claude-sonnet-4-5", got.Model)
	assert.Equal(t, 62, got.OverallScore)
	assert.Equal(t, "Adequate coverage with gaps in audit rights.", got.Summary)
	assert.False(t, got.Partial)

	require.Len(t, got.Findings, 2)
	assert.Equal(t, "I.1", got.Findings[0].RequirementID)
	assert.Equal(t, schema.FindingCompliant, got.Findings[0].Status)
	assert.Equal(t, "The Provider shall deliver the Services.", got.Findings[0].FoundClause)
	assert.Equal(t, "III.1", got.Findings[1].RequirementID)
	assert.Equal(t, schema.FindingNonCompliant, got.Findings[1].Status)
	assert.Contains(t, got.Findings[1].Recommendation, "[HIGH PRIORITY]")
}

func TestGetMissingAnalysis(t *testing.T) {
	s := openTempStore(t)
	_, err := s.GetAnalysis("no-such-id")
	assert.Error(t, err)
}

func TestListAnalyses(t *testing.T) {
	s := openTempStore(t)

	first := reportFixture()
	first.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := reportFixture()
	second.CreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	second.Partial = true

	_, err := s.Save(first)
	require.NoError(t, err)
	secondID, err := s.Save(second)
	require.NoError(t, err)

	rows, err := s.ListAnalyses(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Newest first.
	assert.Equal(t, secondID, rows[0].ID)
	assert.True(t, rows[0].Partial)
	assert.False(t, rows[1].Partial)
	assert.Equal(t, 62, rows[0].Score)

	t.Run("limit applies", func(t *testing.T) {
		rows, err := s.ListAnalyses(1)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}

func TestOpenCreatesSchemaIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audits.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Save(reportFixture())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	rows, err := s2.ListAnalyses(0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
