package schema

import "time"

// Status is the compliance status the model assigns to one requirement.
type Status string

const (
	StatusCompliant Status = "COMPLIANT"
	StatusImplicit  Status = "IMPLICIT"
	StatusPartial   Status = "PARTIAL"
	StatusAbsent    Status = "ABSENT"
	StatusNA        Status = "NA"
)

// IsValidStatus reports whether s is one of the 5 defined statuses.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusCompliant, StatusImplicit, StatusPartial, StatusAbsent, StatusNA:
		return true
	}
	return false
}

// AnalysisResultItem is the model's verdict for a single requirement.
// RequirementID may reference an id that does not exist in the catalog;
// downstream consumers must treat that as non-fatal.
type AnalysisResultItem struct {
	RequirementID  string `json:"requirementId"`
	Status         Status `json:"status"`
	Comment        string `json:"comment"`
	FoundClause    string `json:"foundClause,omitempty"`
	ProposedClause string `json:"proposedClause,omitempty"`
}

// ContractAnalysis is the structured form of one model response, before
// rule validation.
type ContractAnalysis struct {
	Score              int                  `json:"score"`
	ExecutiveSummary   string               `json:"executiveSummary"`
	GeneralClauses     []string             `json:"generalClauses,omitempty"`
	RecommendedClauses []string             `json:"recommendedClauses,omitempty"`
	Items              []AnalysisResultItem `json:"items"`

	// Partial is set when the response could not be parsed strictly and
	// items were recovered individually from a truncated or malformed payload.
	Partial        bool `json:"partial,omitempty"`
	RecoveredCount int  `json:"recoveredCount,omitempty"`
}

// FindingStatus is the externally reported status vocabulary.
type FindingStatus string

const (
	FindingCompliant     FindingStatus = "compliant"
	FindingPartial       FindingStatus = "partial"
	FindingImplicit      FindingStatus = "implicit"
	FindingNonCompliant  FindingStatus = "non-compliant"
	FindingNotApplicable FindingStatus = "not-applicable"
)

// Finding is the reported outcome for one requirement in one analysis,
// enriched with catalog metadata.
type Finding struct {
	RequirementID  string        `json:"requirement_id"`
	Name           string        `json:"name"`
	Reference      string        `json:"reference,omitempty"`
	Section        string        `json:"section,omitempty"`
	Criticality    string        `json:"criticality,omitempty"`
	Status         FindingStatus `json:"status"`
	Comment        string        `json:"comment"`
	FoundClause    string        `json:"found_clause,omitempty"`
	Recommendation string        `json:"recommendation,omitempty"`
}

// Report is the top-level output structure consumed by the CLI and the
// persistence layer.
type Report struct {
	Tool         string    `json:"tool"`
	Version      string    `json:"version"`
	Model        string    `json:"model"`
	CreatedAt    time.Time `json:"created_at"`
	OverallScore int       `json:"overall_score"`
	Summary      string    `json:"summary"`
	Partial      bool      `json:"partial"`
	Findings     []Finding `json:"findings"`

	GeneralClauses     []string `json:"general_clauses,omitempty"`
	RecommendedClauses []string `json:"recommended_clauses,omitempty"`
}
