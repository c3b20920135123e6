// Package prompt serializes the requirement catalog and the contract text
// into the instruction payload for the completion gateway. The business
// rules stated here in natural language (scoring formula, never-IMPLICIT
// requirements) steer the model toward rule-compliant output; the rules
// engine re-validates all of them afterwards because the model is
// untrusted even at temperature 0.
package prompt

import (
	"fmt"
	"strings"

	"github.com/mlefebvre/contraudit/internal/catalog"
)

const systemPromptBase = `You are a compliance auditor for ICT outsourcing contracts in the European financial sector. You audit a contract against a fixed checklist of regulatory requirements drawn from DORA, the EBA outsourcing guidelines (EBA/GL/2019/02) and the French arrêté du 3 novembre 2014.

For every requirement in the checklist you assign exactly one status:
- COMPLIANT: the contract contains explicit language satisfying the requirement in full
- IMPLICIT: the requirement is only covered by a general compliance or best-efforts clause, not by specific language
- PARTIAL: the contract addresses the requirement but one or more verification elements are missing
- ABSENT: the contract contains no language addressing the requirement
- NA: the requirement does not apply to this contract (e.g. it is gated on critical or important functions the contract does not support)

Scoring (computed over all non-NA items):
- status values: COMPLIANT=100, IMPLICIT=70, PARTIAL=30, ABSENT=0
- criticality weights: CRITICAL=3, MAJOR=2, MINOR=1
- score = round(100 * sum(statusValue * weight) / sum(100 * weight))
Report this weighted score as the top-level "score".

Special rule: requirements %s can NEVER be IMPLICIT. A general compliance clause is insufficient evidence for them; if only general language covers one of these, report PARTIAL and say so in the comment.

The input may concatenate several documents (main agreement, annexes, amendments). Treat them as one single logical contract.

Output rules:
- Return JSON only - no prose, no markdown fences, no explanation
- "foundClause" must quote the contract verbatim; omit it when no clause was found
- "proposedClause" is optional remediation wording for PARTIAL and ABSENT items
- Every checklist requirement must appear exactly once in "items"`

const schemaExample = `{
  "score": 72,
  "executiveSummary": "Two to four sentences summarizing the contract's overall compliance posture.",
  "generalClauses": ["General compliance commitments found in the contract, one string each"],
  "recommendedClauses": ["Contract-wide drafting recommendations, one string each"],
  "items": [
    {
      "requirementId": "I.1",
      "status": "PARTIAL",
      "comment": "Why this status was assigned, citing the contract",
      "foundClause": "exact quote from the contract, when one exists",
      "proposedClause": "suggested contractual language, for PARTIAL/ABSENT only"
    }
  ]
}`

// BuildSystem constructs the rules part of the instruction payload.
func BuildSystem() string {
	ids := catalog.NeverImplicitIDs()
	return fmt.Sprintf(systemPromptBase, strings.Join(ids, ", "))
}

// BuildUser constructs the data part: the contract text followed by the
// serialized checklist and the output schema example.
func BuildUser(contractText string, reqs []catalog.Requirement) string {
	var sb strings.Builder

	sb.WriteString("Audit the following contract against the checklist below.\n\n")

	sb.WriteString("<contract>\n")
	sb.WriteString(contractText)
	if !strings.HasSuffix(contractText, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("</contract>\n\n")

	sb.WriteString("<checklist>\n")
	for _, r := range reqs {
		writeRequirement(&sb, r)
	}
	sb.WriteString("</checklist>\n")

	sb.WriteString("\nReturn your analysis as JSON with this structure:\n")
	sb.WriteString(schemaExample)

	return sb.String()
}

func writeRequirement(sb *strings.Builder, r catalog.Requirement) {
	fmt.Fprintf(sb, "[%s] %s\n", r.ID, r.Name)
	fmt.Fprintf(sb, "  reference: %s\n", r.Reference)
	fmt.Fprintf(sb, "  section: %s (%s)\n", r.Section, r.SectionName)
	fmt.Fprintf(sb, "  criticality: %s\n", r.Criticality)
	fmt.Fprintf(sb, "  applicability: %s\n", r.Applicability)
	fmt.Fprintf(sb, "  verification: %s\n", r.VerificationCriteria)
	if len(r.Keywords) > 0 {
		fmt.Fprintf(sb, "  keywords: %s\n", strings.Join(r.Keywords, ", "))
	}
}
