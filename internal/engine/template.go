package engine

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides sprig's utility functions to every expanded
// message template, mirroring the teacher's commands.templateFuncs.
var templateFuncs = sprig.TxtFuncMap()

// expandTemplate renders tmplStr against data. Every facade message that
// interpolates item/slot/effect names goes through here instead of ad hoc
// fmt.Sprintf, matching internal/commands/template.go's ExpandTemplate.
func expandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing message template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing message template: %w", err)
	}

	return buf.String(), nil
}

// mustExpand renders tmplStr and falls back to the raw template text if
// expansion fails — a facade message is never worth failing a command over.
func mustExpand(tmplStr string, data any) string {
	s, err := expandTemplate(tmplStr, data)
	if err != nil {
		return tmplStr
	}
	return s
}

const (
	tmplUseTool       = "You use {{.Item}}."
	tmplUseDefault    = "Nothing happens when you use {{.Item}}."
	tmplUseConsumable = "You use {{.Item}}."
	tmplEffectRestore = "You feel your {{.Effect | lower}} restored by {{.Amount}}."
)
