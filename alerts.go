package adaptable

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var alertTypes = map[string]struct{}{
	"info":    {},
	"success": {},
	"warning": {},
	"danger":  {},
}

// RenderedAlert is an enabled Alert with its markdown converted to sanitized
// HTML.
type RenderedAlert struct {
	Type string
	HTML template.HTML
}

func newAlertPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span", "strong", "em")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

func renderAlerts(alerts []Alert) ([]RenderedAlert, error) {
	md := goldmark.New()
	policy := newAlertPolicy()
	var results []RenderedAlert
	for pos, alert := range alerts {
		if !alert.Enabled || strings.TrimSpace(alert.Text) == "" {
			continue
		}
		var buf bytes.Buffer
		if err := md.Convert([]byte(alert.Text), &buf); err != nil {
			return nil, fmt.Errorf("error converting alert %d: %w", pos, err)
		}
		kind := alert.Type
		if _, ok := alertTypes[kind]; !ok {
			kind = "info"
		}
		results = append(results, RenderedAlert{
			Type: kind,
			HTML: template.HTML(strings.TrimSpace(policy.Sanitize(buf.String()))), // #nosec G203
		})
	}
	return results, nil
}
