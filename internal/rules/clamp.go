package rules

import (
	"fmt"

	"github.com/mlefebvre/contraudit/internal/catalog"
	"github.com/mlefebvre/contraudit/internal/schema"
)

// ClampCritical enforces the never-IMPLICIT rule: any item whose
// requirement id belongs to the fixed never-IMPLICIT set and whose status
// is IMPLICIT is rewritten to PARTIAL, with a warning prepended to its
// comment. Membership is checked by id identity. All other items pass
// through unchanged. Applying the clamp twice is a no-op after the first
// pass, since clamped items are no longer IMPLICIT.
func ClampCritical(a *schema.ContractAnalysis) *schema.ContractAnalysis {
	out := *a
	out.Items = make([]schema.AnalysisResultItem, len(a.Items))
	copy(out.Items, a.Items)

	for i, item := range out.Items {
		if item.Status != schema.StatusImplicit || !catalog.IsNeverImplicit(item.RequirementID) {
			continue
		}
		out.Items[i].Status = schema.StatusPartial
		out.Items[i].Comment = clampWarning(item.RequirementID) + item.Comment
	}
	return &out
}

func clampWarning(id string) string {
	name := id
	if req, ok := catalog.ByID(id); ok {
		name = req.Name
	}
	return fmt.Sprintf(
		"Warning: requirement %s (%s) cannot be satisfied by a general compliance clause; specific contractual language is required. ",
		id, name)
}
