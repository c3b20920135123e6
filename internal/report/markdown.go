package report

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/mlefebvre/contraudit/internal/schema"
)

type markdownRenderer struct{}

var mdTemplate = template.Must(template.New("report").Parse(`# Contract Compliance Report

**Overall score:** {{ .OverallScore }}/100{{ if .Partial }}
**Partial result:** the model response was incomplete; findings below cover the recovered items only.{{ end }}

{{ .Summary }}
{{ if .Findings }}
---

## Findings
{{ range .Findings }}
### {{ .RequirementID }} · {{ .Name }}{{ if .Criticality }} · {{ .Criticality }}{{ end }}
**Status:** {{ .Status }}{{ if .Reference }} | **Reference:** {{ .Reference }}{{ end }}

{{ .Comment }}
{{ if .FoundClause }}
> {{ .FoundClause }}
{{ end }}{{ if .Recommendation }}
**Recommendation:** {{ .Recommendation }}
{{ end }}{{ end }}{{ end }}{{ if .GeneralClauses }}
---

## General compliance clauses
{{ range .GeneralClauses }}
- {{ . }}{{ end }}
{{ end }}{{ if .RecommendedClauses }}
---

## Contract-wide recommendations
{{ range .RecommendedClauses }}
- {{ . }}{{ end }}
{{ end }}
---
*Model: {{ .Model }} | Generated: {{ .CreatedAt.Format "2006-01-02 15:04 MST" }}*
`))

func (r *markdownRenderer) Render(report *schema.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
