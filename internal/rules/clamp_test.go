package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlefebvre/contraudit/internal/catalog"
	"github.com/mlefebvre/contraudit/internal/schema"
)

func TestClampCritical(t *testing.T) {
	t.Run("IMPLICIT on a never-IMPLICIT id becomes PARTIAL with a warning", func(t *testing.T) {
		a := &schema.ContractAnalysis{Items: []schema.AnalysisResultItem{
			{RequirementID: "I.7", Status: schema.StatusImplicit, Comment: "covered by a general clause"},
		}}
		out := ClampCritical(a)
		require.Len(t, out.Items, 1)
		assert.Equal(t, schema.StatusPartial, out.Items[0].Status)
		assert.True(t, strings.HasPrefix(out.Items[0].Comment, "Warning: requirement I.7"))
		assert.True(t, strings.HasSuffix(out.Items[0].Comment, "covered by a general clause"))
	})

	t.Run("every never-IMPLICIT id is clamped", func(t *testing.T) {
		var items []schema.AnalysisResultItem
		for _, id := range catalog.NeverImplicitIDs() {
			items = append(items, schema.AnalysisResultItem{RequirementID: id, Status: schema.StatusImplicit})
		}
		out := ClampCritical(&schema.ContractAnalysis{Items: items})
		for _, it := range out.Items {
			assert.Equal(t, schema.StatusPartial, it.Status, it.RequirementID)
		}
	})

	t.Run("IMPLICIT on other ids passes through", func(t *testing.T) {
		a := &schema.ContractAnalysis{Items: []schema.AnalysisResultItem{
			{RequirementID: "I.1", Status: schema.StatusImplicit, Comment: "general clause"},
			{RequirementID: "X.unknown", Status: schema.StatusImplicit, Comment: "general clause"},
		}}
		out := ClampCritical(a)
		for _, it := range out.Items {
			assert.Equal(t, schema.StatusImplicit, it.Status, it.RequirementID)
			assert.Equal(t, "general clause", it.Comment)
		}
	})

	t.Run("non-IMPLICIT statuses on never-IMPLICIT ids pass through", func(t *testing.T) {
		a := &schema.ContractAnalysis{Items: []schema.AnalysisResultItem{
			{RequirementID: "I.7", Status: schema.StatusCompliant, Comment: "explicit clause"},
			{RequirementID: "V.1", Status: schema.StatusAbsent, Comment: "nothing found"},
		}}
		out := ClampCritical(a)
		assert.Equal(t, schema.StatusCompliant, out.Items[0].Status)
		assert.Equal(t, schema.StatusAbsent, out.Items[1].Status)
		assert.Equal(t, "explicit clause", out.Items[0].Comment)
	})

	t.Run("idempotent", func(t *testing.T) {
		a := &schema.ContractAnalysis{Items: []schema.AnalysisResultItem{
			{RequirementID: "VI.1", Status: schema.StatusImplicit, Comment: "general clause"},
		}}
		once := ClampCritical(a)
		twice := ClampCritical(once)
		assert.Equal(t, once, twice)
	})

	t.Run("input untouched", func(t *testing.T) {
		a := &schema.ContractAnalysis{Items: []schema.AnalysisResultItem{
			{RequirementID: "III.1", Status: schema.StatusImplicit, Comment: "original"},
		}}
		_ = ClampCritical(a)
		assert.Equal(t, schema.StatusImplicit, a.Items[0].Status)
		assert.Equal(t, "original", a.Items[0].Comment)
	})
}
