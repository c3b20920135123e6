// Package catalog holds the static regulatory checklist the auditor works
// from: 35 ICT outsourcing requirements distilled from DORA, the EBA
// outsourcing guidelines (EBA/GL/2019/02) and the French ACPR decree.
// The catalog is immutable and built once at process start; every accessor
// is read-only.
package catalog

import (
	"fmt"
	"sort"
)

// Criticality is the severity weight class of a requirement.
type Criticality string

const (
	CriticalityCritical Criticality = "CRITICAL"
	CriticalityMajor    Criticality = "MAJOR"
	CriticalityMinor    Criticality = "MINOR"
)

// Weight returns the scoring multiplier for a criticality.
// Unknown values weigh 1 so that an item referencing a requirement with
// missing metadata still counts in the score.
func (c Criticality) Weight() int {
	switch c {
	case CriticalityCritical:
		return 3
	case CriticalityMajor:
		return 2
	default:
		return 1
	}
}

// Applicability gates which contracts a requirement applies to.
type Applicability string

const (
	// ApplicabilityAll applies to every ICT outsourcing contract.
	ApplicabilityAll Applicability = "ALL"
	// ApplicabilityCriticalFunction applies only to contracts supporting a
	// critical or important function as defined by DORA Art. 3.
	ApplicabilityCriticalFunction Applicability = "CRITICAL_FUNCTION"
)

// Requirement is one auditable regulatory obligation.
type Requirement struct {
	ID            string
	Name          string
	Reference     string
	Section       string
	SectionName   string
	Criticality   Criticality
	Applicability Applicability

	// VerificationCriteria tells the model what contractual language counts
	// as satisfying the requirement. Consumed only by the prompt builder.
	VerificationCriteria string
	// RegulatoryText quotes the underlying regulatory source.
	RegulatoryText string
	Keywords       []string
}

// neverImplicit lists the requirement ids for which coverage by a general
// compliance clause is never sufficient evidence. Membership is checked by
// id identity, never by any computed property of the requirement.
var neverImplicit = map[string]bool{
	"I.7":   true,
	"III.1": true,
	"V.1":   true,
	"VI.1":  true,
}

var byID = buildIndex()

func buildIndex() map[string]Requirement {
	idx := make(map[string]Requirement, len(requirements))
	for _, r := range requirements {
		idx[r.ID] = r
	}
	return idx
}

// All returns every requirement in canonical section order.
func All() []Requirement {
	out := make([]Requirement, len(requirements))
	copy(out, requirements)
	return out
}

// Count returns the number of requirements in the catalog.
func Count() int { return len(requirements) }

// ByID looks up a requirement by its id. The ok result is false for ids
// absent from the catalog; callers must treat that as non-fatal because
// model output can reference unknown ids.
func ByID(id string) (Requirement, bool) {
	r, ok := byID[id]
	return r, ok
}

// BySection returns the requirements of one section in canonical order.
func BySection(section string) []Requirement {
	var out []Requirement
	for _, r := range requirements {
		if r.Section == section {
			out = append(out, r)
		}
	}
	return out
}

// ByCriticality returns the requirements with the given criticality.
func ByCriticality(c Criticality) []Requirement {
	var out []Requirement
	for _, r := range requirements {
		if r.Criticality == c {
			out = append(out, r)
		}
	}
	return out
}

// ByApplicability returns the requirements with the given applicability gate.
func ByApplicability(a Applicability) []Requirement {
	var out []Requirement
	for _, r := range requirements {
		if r.Applicability == a {
			out = append(out, r)
		}
	}
	return out
}

// IsNeverImplicit reports whether id belongs to the fixed set of
// requirements that can never receive the IMPLICIT status.
func IsNeverImplicit(id string) bool { return neverImplicit[id] }

// NeverImplicitIDs returns the fixed never-IMPLICIT id set, sorted.
func NeverImplicitIDs() []string {
	ids := make([]string, 0, len(neverImplicit))
	for id := range neverImplicit {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks catalog integrity: id uniqueness and that every
// never-IMPLICIT id resolves to a catalog entry.
func Validate() error {
	seen := make(map[string]bool, len(requirements))
	for _, r := range requirements {
		if r.ID == "" {
			return fmt.Errorf("requirement with empty id (name %q)", r.Name)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate requirement id %q", r.ID)
		}
		seen[r.ID] = true
	}
	for id := range neverImplicit {
		if !seen[id] {
			return fmt.Errorf("never-IMPLICIT id %q has no catalog entry", id)
		}
	}
	return nil
}
