// Package rules re-validates a ContractAnalysis against the business rules
// the prompt already states in natural language. The completion service is
// untrusted and non-deterministic despite temperature 0, so every rule is
// enforced here regardless of what the model produced. All transforms are
// pure: they return corrected copies and never mutate their input.
package rules

import (
	"math"

	"github.com/mlefebvre/contraudit/internal/catalog"
	"github.com/mlefebvre/contraudit/internal/schema"
)

// StatusValue returns the compliance-degree value of a status.
// NA has no value; callers exclude NA items before calling.
func StatusValue(s schema.Status) int {
	switch s {
	case schema.StatusCompliant:
		return 100
	case schema.StatusImplicit:
		return 70
	case schema.StatusPartial:
		return 30
	default:
		return 0
	}
}

// ComputeScore computes the criticality-weighted score over all non-NA
// items: round(100 * sum(statusValue*weight) / sum(100*weight)).
// Items referencing unknown requirement ids weigh 1. An empty or all-NA
// item list scores 0.
func ComputeScore(items []schema.AnalysisResultItem) int {
	var num, den int
	for _, item := range items {
		if item.Status == schema.StatusNA {
			continue
		}
		weight := 1
		if req, ok := catalog.ByID(item.RequirementID); ok {
			weight = req.Criticality.Weight()
		}
		num += StatusValue(item.Status) * weight
		den += 100 * weight
	}
	if den == 0 {
		return 0
	}
	return int(math.Round(100 * float64(num) / float64(den)))
}

// ConservativeScore returns the reported overall score: the minimum of the
// model-asserted score and the recomputed weighted score. The model cannot
// inflate compliance by asserting an optimistic top-level number while the
// item-level detail tells a worse story.
func ConservativeScore(asserted int, items []schema.AnalysisResultItem) int {
	recomputed := ComputeScore(items)
	if asserted < recomputed {
		return asserted
	}
	return recomputed
}

// Validate applies the full rule pipeline to a parsed analysis and returns
// the corrected instance: the critical-requirement clamp first, then the
// conservative score over the clamped items.
func Validate(a *schema.ContractAnalysis) *schema.ContractAnalysis {
	out := ClampCritical(a)
	out.Score = ConservativeScore(a.Score, out.Items)
	return out
}
