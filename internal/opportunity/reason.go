package opportunity

import (
	"fmt"
	"strings"
	"text/template"
)

// DefaultReasonTemplate is used for entries without their own reason template.
const DefaultReasonTemplate = `Matches your {{join .Skills " and "}} skills and {{join .Interests " and "}} interests`

// ReasonFuncs are available inside reason templates.
var ReasonFuncs = template.FuncMap{
	"join": func(items []string, sep string) string {
		return strings.Join(items, sep)
	},
	"has": func(items []string, label string) bool {
		for _, item := range items {
			if item == label {
				return true
			}
		}
		return false
	},
}

// ParseReason compiles a reason template. An empty body yields the default template.
func ParseReason(name, body string) (*template.Template, error) {
	if strings.TrimSpace(body) == "" {
		body = DefaultReasonTemplate
	}
	tmpl, err := template.New(name).Funcs(ReasonFuncs).Option("missingkey=error").Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse reason template %q: %w", name, err)
	}
	return tmpl, nil
}
