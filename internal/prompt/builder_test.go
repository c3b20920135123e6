package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlefebvre/contraudit/internal/catalog"
)

func TestBuildSystem(t *testing.T) {
	sys := BuildSystem()

	assert.Contains(t, sys, "compliance auditor")
	assert.Contains(t, sys, "COMPLIANT=100, IMPLICIT=70, PARTIAL=30, ABSENT=0")
	assert.Contains(t, sys, "CRITICAL=3, MAJOR=2, MINOR=1")
	assert.Contains(t, sys, "can NEVER be IMPLICIT")
	// The never-IMPLICIT ids are injected from the catalog, not hardcoded.
	assert.Contains(t, sys, strings.Join(catalog.NeverImplicitIDs(), ", "))
	assert.NotContains(t, sys, "%s")
}

func TestBuildUser(t *testing.T) {
	contract := "ARTICLE 1. The Provider shall deliver the Services."
	user := BuildUser(contract, catalog.All())

	t.Run("contract is wrapped in tags", func(t *testing.T) {
		assert.Contains(t, user, "<contract>\n"+contract+"\n</contract>")
	})

	t.Run("every requirement appears once", func(t *testing.T) {
		for _, r := range catalog.All() {
			assert.Equal(t, 1, strings.Count(user, "["+r.ID+"] "), r.ID)
		}
	})

	t.Run("checklist carries the audit metadata", func(t *testing.T) {
		req, ok := catalog.ByID("I.7")
		require.True(t, ok)
		assert.Contains(t, user, req.Reference)
		assert.Contains(t, user, req.VerificationCriteria)
		assert.Contains(t, user, "criticality: CRITICAL")
		assert.Contains(t, user, "applicability: CRITICAL_FUNCTION")
	})

	t.Run("schema example closes the prompt", func(t *testing.T) {
		assert.Contains(t, user, `"requirementId": "I.1"`)
		assert.Contains(t, user, `"proposedClause"`)
		idx := strings.Index(user, "</checklist>")
		require.GreaterOrEqual(t, idx, 0)
		assert.Contains(t, user[idx:], `"score"`)
	})

	t.Run("trailing newline is not duplicated", func(t *testing.T) {
		withNL := BuildUser("contract text\n", nil)
		assert.Contains(t, withNL, "<contract>\ncontract text\n</contract>")
	})
}
