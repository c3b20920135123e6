// Package parse converts the gateway's raw model text into a
// ContractAnalysis. Two composable stages: a strict JSON parse, then a
// permissive per-item recovery scan for truncated or malformed payloads.
// Cosmetic variance (fences, surrounding commentary, whitespace) never
// fails; the only terminal failure is zero salvageable items.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/mlefebvre/contraudit/internal/rules"
	"github.com/mlefebvre/contraudit/internal/schema"
)

// ErrUnparseable is returned when not a single requirement item could be
// salvaged from the model response.
var ErrUnparseable = errors.New("model response could not be parsed: no requirement items found; the document may be too long or too complex")

// itemPattern matches one well-formed item object even when the enclosing
// document is not valid JSON (e.g. truncated mid-array). The status is
// restricted to the closed enum so arbitrary objects cannot match.
var itemPattern = regexp.MustCompile(
	`\{\s*"requirementId"\s*:\s*"((?:[^"\\]|\\.)*)"\s*,` +
		`\s*"status"\s*:\s*"(COMPLIANT|IMPLICIT|PARTIAL|ABSENT|NA)"\s*,` +
		`\s*"comment"\s*:\s*"((?:[^"\\]|\\.)*)"` +
		`(?:\s*,\s*"foundClause"\s*:\s*(?:"((?:[^"\\]|\\.)*)"|null))?` +
		`(?:\s*,\s*"proposedClause"\s*:\s*(?:"((?:[^"\\]|\\.)*)"|null))?` +
		`\s*\}`)

var (
	summaryPattern        = regexp.MustCompile(`"executiveSummary"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	generalClausesPattern = regexp.MustCompile(`"generalClauses"\s*:\s*(\[[^\]]*\])`)
	recommendedPattern    = regexp.MustCompile(`"recommendedClauses"\s*:\s*(\[[^\]]*\])`)
)

// wireAnalysis mirrors the JSON shape the prompt asks for. Score is a
// pointer so a missing field is distinguishable from zero.
type wireAnalysis struct {
	Score              *float64                    `json:"score"`
	ExecutiveSummary   string                      `json:"executiveSummary"`
	GeneralClauses     []string                    `json:"generalClauses"`
	RecommendedClauses []string                    `json:"recommendedClauses"`
	Items              []schema.AnalysisResultItem `json:"items"`
}

// Analysis parses raw model output into a ContractAnalysis, attempting
// strict JSON first and falling back to per-item recovery.
func Analysis(raw string) (*schema.ContractAnalysis, error) {
	candidate := extractCandidate(raw)

	if a, ok := strictParse(candidate); ok {
		return a, nil
	}
	return recoverItems(candidate)
}

// extractCandidate strips a single enclosing fenced code block if present,
// then narrows to the first '{' .. last '}' substring to drop any leading
// or trailing commentary from the model.
func extractCandidate(raw string) string {
	s := stripFences(raw)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// stripFences removes leading/trailing markdown code fences
// (```json ... ``` or ``` ... ```).
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		// Remove first line (the fence opener)
		idx := strings.Index(s, "\n")
		if idx >= 0 {
			s = s[idx+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		idx := strings.LastIndex(s, "\n```")
		if idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// strictParse attempts a full JSON decode and shape validation. The ok
// result is false for any deviation; the caller then tries recovery.
func strictParse(candidate string) (*schema.ContractAnalysis, bool) {
	var w wireAnalysis
	if err := json.Unmarshal([]byte(candidate), &w); err != nil {
		return nil, false
	}
	if w.Score == nil || len(w.Items) == 0 {
		return nil, false
	}
	for _, item := range w.Items {
		if item.RequirementID == "" || !schema.IsValidStatus(item.Status) {
			return nil, false
		}
	}

	return &schema.ContractAnalysis{
		Score:              clampScore(*w.Score),
		ExecutiveSummary:   w.ExecutiveSummary,
		GeneralClauses:     w.GeneralClauses,
		RecommendedClauses: w.RecommendedClauses,
		Items:              w.Items,
	}, true
}

// recoverItems scans the candidate for individually well-formed item
// objects and best-effort narrative fields. The score is recomputed from
// the recovered items; a truncated top-level score field is never trusted.
func recoverItems(candidate string) (*schema.ContractAnalysis, error) {
	matches := itemPattern.FindAllStringSubmatch(candidate, -1)
	if len(matches) == 0 {
		return nil, ErrUnparseable
	}

	items := make([]schema.AnalysisResultItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, schema.AnalysisResultItem{
			RequirementID:  unescape(m[1]),
			Status:         schema.Status(m[2]),
			Comment:        unescape(m[3]),
			FoundClause:    unescape(m[4]),
			ProposedClause: unescape(m[5]),
		})
	}

	a := &schema.ContractAnalysis{
		Items:              items,
		Score:              rules.ComputeScore(items),
		GeneralClauses:     recoverStringArray(generalClausesPattern, candidate),
		RecommendedClauses: recoverStringArray(recommendedPattern, candidate),
		Partial:            true,
		RecoveredCount:     len(items),
	}

	summary := ""
	if m := summaryPattern.FindStringSubmatch(candidate); m != nil {
		summary = unescape(m[1])
	}
	a.ExecutiveSummary = fmt.Sprintf(
		"[PARTIAL ANALYSIS: response was truncated or malformed, %d requirement item(s) recovered] %s",
		len(items), summary)

	return a, nil
}

// recoverStringArray extracts a JSON string array by pattern; malformed
// content yields nil rather than an error.
func recoverStringArray(re *regexp.Regexp, candidate string) []string {
	m := re.FindStringSubmatch(candidate)
	if m == nil {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(m[1]), &out); err != nil {
		return nil
	}
	return out
}

// unescape resolves JSON escape sequences in a string captured by regex.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err == nil {
		return out
	}
	// Invalid escape somewhere; resolve the usual sequences manually.
	r := strings.NewReplacer(
		`\"`, `"`,
		`\\`, `\`,
		`\/`, `/`,
		`\n`, "\n",
		`\r`, "\r",
		`\t`, "\t",
	)
	return r.Replace(s)
}

// clampScore bounds a model-asserted score to [0,100] and rounds it.
func clampScore(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	n := int(math.Round(f))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
