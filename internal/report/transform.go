// Package report maps a rule-validated ContractAnalysis into the
// externally consumed Report shape, enriching each finding with catalog
// metadata and rendering the result as JSON or markdown.
package report

import (
	"fmt"
	"time"

	"github.com/mlefebvre/contraudit/internal/catalog"
	"github.com/mlefebvre/contraudit/internal/rules"
	"github.com/mlefebvre/contraudit/internal/schema"
)

// Transform builds the external Report from a validated analysis. An item
// referencing an unknown requirement id degrades to using the raw id as
// its display name; a single unknown id never fails the whole report.
func Transform(a *schema.ContractAnalysis, model, version string) *schema.Report {
	findings := make([]schema.Finding, 0, len(a.Items))
	applicable, excluded := 0, 0

	for _, item := range a.Items {
		req, known := catalog.ByID(item.RequirementID)

		f := schema.Finding{
			RequirementID: item.RequirementID,
			Name:          item.RequirementID,
			Status:        externalStatus(item.Status),
			Comment:       item.Comment,
			FoundClause:   item.FoundClause,
		}
		if known {
			f.Name = req.Name
			f.Reference = req.Reference
			f.Section = req.Section
			f.Criticality = string(req.Criticality)
		}

		if f.Status != schema.FindingCompliant && f.Status != schema.FindingNotApplicable {
			if item.ProposedClause != "" {
				f.Recommendation = item.ProposedClause
			} else {
				f.Recommendation = rules.Recommend(item, req, known)
			}
		}

		if item.Status == schema.StatusNA {
			excluded++
		} else {
			applicable++
		}
		findings = append(findings, f)
	}

	summary := a.ExecutiveSummary
	if summary != "" {
		summary += " "
	}
	summary += fmt.Sprintf("%d of %d requirements applicable; %d excluded as not applicable.",
		applicable, len(a.Items), excluded)

	return &schema.Report{
		Tool:               "contraudit",
		Version:            version,
		Model:              model,
		CreatedAt:          time.Now().UTC(),
		OverallScore:       a.Score,
		Summary:            summary,
		Partial:            a.Partial,
		Findings:           findings,
		GeneralClauses:     a.GeneralClauses,
		RecommendedClauses: a.RecommendedClauses,
	}
}

// externalStatus maps the internal 5-value status to the display
// vocabulary the report consumers render.
func externalStatus(s schema.Status) schema.FindingStatus {
	switch s {
	case schema.StatusCompliant:
		return schema.FindingCompliant
	case schema.StatusImplicit:
		return schema.FindingImplicit
	case schema.StatusPartial:
		return schema.FindingPartial
	case schema.StatusNA:
		return schema.FindingNotApplicable
	default:
		return schema.FindingNonCompliant
	}
}
