package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const TemplateVerification = "verification"

// Built-in templates; the set is small enough that shipping them in the
// binary beats a templates directory.
var builtinTemplates = map[string]string{
	TemplateVerification: `
<html>
<body style="font-family: sans-serif;">
  <h2>Welcome to MentorHub, {{.Name}}!</h2>
  <p>Use the code below to verify your account:</p>
  <p style="font-size: 24px; letter-spacing: 2px;"><b>{{.Token}}</b></p>
  <p>If you did not create an account, you can ignore this message.</p>
</body>
</html>`,
}

// TemplateManager caches parsed HTML templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, body := range builtinTemplates {
		// Built-ins are static; a parse failure is a programming error.
		tm.templates[name] = template.Must(template.New(name).Parse(body))
	}
	return tm
}

// Render executes a named template with the given data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// AddTemplate registers or replaces a template at runtime.
func (tm *TemplateManager) AddTemplate(name, body string) error {
	tpl, err := template.New(name).Parse(body)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
