package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mlefebvre/contraudit/internal/catalog"
	"github.com/mlefebvre/contraudit/internal/schema"
)

// maxElements caps how many missing elements a synthesized recommendation
// names, whether mined from the comment or diffed from the criteria.
const maxElements = 3

// shortCriteriaRunes is the threshold under which verification criteria
// are considered too thin to be actionable on their own; below it the
// recommendation quotes the regulatory source text instead.
const shortCriteriaRunes = 40

// enumPattern matches the parenthesized numerals and letters used to
// enumerate sub-items inside verification criteria: (1), (a), (iv), ...
var enumPattern = regexp.MustCompile(`\((?:\d{1,2}|[a-z]|[ivx]{1,4})\)`)

// missingCues are the linguistic markers a model comment uses to name a
// missing element. Order matters: longer, more specific cues first so the
// mined phrase starts after the most informative marker.
var missingCues = []string{
	"does not specify",
	"no specific",
	"is missing",
	"fails to",
	"absence of",
	"lacks",
	"missing",
	"without",
}

// fuzzy is the matcher used to decide whether a criteria element is
// evidenced inside a model comment. Bitap tolerates small spelling and
// inflection differences that a plain substring check would miss.
var fuzzy = diffmatchpatch.New()

// Recommend synthesizes remediation text for one analysis item. Only
// ABSENT and PARTIAL items receive a synthesized recommendation; every
// other status returns the empty string. The req argument carries the
// catalog entry when known is true; unknown ids fall back to generic
// wording built from the raw item.
func Recommend(item schema.AnalysisResultItem, req catalog.Requirement, known bool) string {
	switch item.Status {
	case schema.StatusAbsent:
		return recommendAbsent(item, req, known)
	case schema.StatusPartial:
		return recommendPartial(item, req, known)
	default:
		return ""
	}
}

func recommendAbsent(item schema.AnalysisResultItem, req catalog.Requirement, known bool) string {
	if !known {
		return fmt.Sprintf("Draft a clause covering requirement %s.", item.RequirementID)
	}

	var sb strings.Builder
	sb.WriteString(urgencyPrefix(req.Criticality))
	fmt.Fprintf(&sb, "Draft a clause covering %s (%s).", req.Name, req.Reference)

	criteria := strings.TrimSpace(req.VerificationCriteria)
	switch {
	case enumPattern.MatchString(criteria):
		sb.WriteString(" The clause must address each of the following points: ")
		sb.WriteString(strings.Join(splitElements(criteria), "; "))
		sb.WriteString(".")
	case len([]rune(criteria)) < shortCriteriaRunes && req.RegulatoryText != "":
		fmt.Fprintf(&sb, " Regulatory basis: %q", req.RegulatoryText)
	default:
		fmt.Fprintf(&sb, " Expected content: %s", criteria)
	}
	return sb.String()
}

func recommendPartial(item schema.AnalysisResultItem, req catalog.Requirement, known bool) string {
	if !known {
		return fmt.Sprintf("Complete the existing clause for requirement %s.", item.RequirementID)
	}

	// First choice: the model's own commentary often names what is missing.
	missing := mineMissing(item.Comment)

	// Second choice: diff the criteria sub-elements against the comment.
	if len(missing) == 0 {
		for _, el := range splitElements(req.VerificationCriteria) {
			if !evidenced(item.Comment, el) {
				missing = append(missing, el)
				if len(missing) == maxElements {
					break
				}
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Sprintf("Complete the clause for %s (%s); missing elements: %s.",
			req.Name, req.Reference, strings.Join(missing, "; "))
	}
	return fmt.Sprintf("Complete the existing clause to fully satisfy %s. Expected content: %s",
		req.Reference, strings.TrimSpace(req.VerificationCriteria))
}

// urgencyPrefix maps criticality to the drafting-priority marker.
func urgencyPrefix(c catalog.Criticality) string {
	switch c {
	case catalog.CriticalityCritical:
		return "[HIGH PRIORITY] "
	case catalog.CriticalityMajor:
		return "[MEDIUM PRIORITY] "
	default:
		return ""
	}
}

// splitElements breaks verification criteria into its enumerated
// sub-elements. Criteria without enumeration markers yield a single
// element: the whole trimmed text.
func splitElements(criteria string) []string {
	criteria = strings.TrimSpace(criteria)
	locs := enumPattern.FindAllStringIndex(criteria, -1)
	if len(locs) == 0 {
		if criteria == "" {
			return nil
		}
		return []string{criteria}
	}

	var out []string
	for i, loc := range locs {
		start := loc[1]
		end := len(criteria)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		el := strings.Trim(criteria[start:end], " \t\n.,;")
		el = strings.TrimSuffix(el, " and")
		el = strings.Trim(el, " \t\n.,;")
		if el != "" {
			out = append(out, el)
		}
	}
	return out
}

// mineMissing extracts up to maxElements "missing element" phrases from a
// model comment by scanning for the fixed linguistic cues.
func mineMissing(comment string) []string {
	lower := strings.ToLower(comment)
	var out []string
	seen := make(map[string]bool)

	for _, cue := range missingCues {
		rest := lower
		offset := 0
		for {
			idx := strings.Index(rest, cue)
			if idx < 0 {
				break
			}
			start := offset + idx + len(cue)
			phrase := phraseAfter(comment, start)
			key := strings.ToLower(phrase)
			if phrase != "" && !seen[key] {
				seen[key] = true
				out = append(out, phrase)
				if len(out) == maxElements {
					return out
				}
			}
			offset = start
			rest = lower[offset:]
		}
	}
	return out
}

// phraseAfter captures the phrase starting at offset up to the next
// sentence or clause boundary, capped at 80 runes.
func phraseAfter(comment string, offset int) string {
	if offset >= len(comment) {
		return ""
	}
	rest := comment[offset:]
	if idx := strings.IndexAny(rest, ".;\n"); idx >= 0 {
		rest = rest[:idx]
	}
	rest = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ":"))
	r := []rune(rest)
	if len(r) > 80 {
		rest = string(r[:80])
	}
	return strings.TrimSpace(rest)
}

// evidenced reports whether a criteria element is plausibly covered by the
// comment: any of its significant tokens fuzzy-matches into the comment.
func evidenced(comment, element string) bool {
	lowerComment := strings.ToLower(comment)
	if lowerComment == "" {
		return false
	}
	for _, token := range significantTokens(element) {
		if strings.Contains(lowerComment, token) {
			return true
		}
		// Bitap patterns are limited to 32 runes; tokens always fit.
		if fuzzy.MatchMain(lowerComment, token, 0) >= 0 {
			return true
		}
	}
	return false
}

// significantTokens returns up to 4 lowercase tokens of 5+ runes from an
// element, the words most likely to reappear in a comment that covers it.
func significantTokens(element string) []string {
	var out []string
	for _, w := range strings.FieldsFunc(strings.ToLower(element), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '-'
	}) {
		if len([]rune(w)) >= 5 {
			out = append(out, w)
			if len(out) == 4 {
				break
			}
		}
	}
	return out
}
