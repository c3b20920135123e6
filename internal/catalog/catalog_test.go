package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	require.NoError(t, Validate())
	assert.Equal(t, 35, Count())
	assert.Len(t, All(), 35)
}

func TestSectionDistribution(t *testing.T) {
	want := map[string]int{"I": 9, "II": 7, "III": 6, "IV": 5, "V": 4, "VI": 4}
	for section, n := range want {
		assert.Len(t, BySection(section), n, "section %s", section)
	}
	assert.Empty(t, BySection("VII"))
}

func TestByID(t *testing.T) {
	r, ok := ByID("I.7")
	require.True(t, ok)
	assert.Equal(t, "I", r.Section)
	assert.Equal(t, CriticalityCritical, r.Criticality)
	assert.NotEmpty(t, r.Name)
	assert.NotEmpty(t, r.Reference)
	assert.NotEmpty(t, r.VerificationCriteria)

	_, ok = ByID("IX.99")
	assert.False(t, ok)
}

func TestAllReturnsACopy(t *testing.T) {
	a := All()
	a[0].Name = "mutated"
	b := All()
	assert.NotEqual(t, "mutated", b[0].Name)
}

func TestWeights(t *testing.T) {
	assert.Equal(t, 3, CriticalityCritical.Weight())
	assert.Equal(t, 2, CriticalityMajor.Weight())
	assert.Equal(t, 1, CriticalityMinor.Weight())
	assert.Equal(t, 1, Criticality("").Weight())
	assert.Equal(t, 1, Criticality("SEVERE").Weight())
}

func TestNeverImplicit(t *testing.T) {
	ids := NeverImplicitIDs()
	assert.Equal(t, []string{"I.7", "III.1", "V.1", "VI.1"}, ids)
	assert.True(t, sort.StringsAreSorted(ids))

	for _, id := range ids {
		assert.True(t, IsNeverImplicit(id), id)
		_, ok := ByID(id)
		assert.True(t, ok, "never-IMPLICIT id %s must resolve", id)
	}
	assert.False(t, IsNeverImplicit("I.1"))
	assert.False(t, IsNeverImplicit(""))
}

func TestByCriticalityAndApplicability(t *testing.T) {
	total := len(ByCriticality(CriticalityCritical)) +
		len(ByCriticality(CriticalityMajor)) +
		len(ByCriticality(CriticalityMinor))
	assert.Equal(t, Count(), total)

	total = len(ByApplicability(ApplicabilityAll)) + len(ByApplicability(ApplicabilityCriticalFunction))
	assert.Equal(t, Count(), total)

	for _, r := range ByApplicability(ApplicabilityCriticalFunction) {
		assert.Equal(t, ApplicabilityCriticalFunction, r.Applicability, r.ID)
	}
}

func TestEveryRequirementIsComplete(t *testing.T) {
	for _, r := range All() {
		assert.NotEmpty(t, r.Name, r.ID)
		assert.NotEmpty(t, r.Reference, r.ID)
		assert.NotEmpty(t, r.Section, r.ID)
		assert.NotEmpty(t, r.SectionName, r.ID)
		assert.NotEmpty(t, r.VerificationCriteria, r.ID)
		assert.Contains(t, []Criticality{CriticalityCritical, CriticalityMajor, CriticalityMinor}, r.Criticality, r.ID)
	}
}
