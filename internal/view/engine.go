package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

// Engine renders embedded html templates
type Engine struct {
	templates *template.Template
}

// NewEngine parses embedded templates, translator is exposed to templates as trans function
func NewEngine(translator Translator) (*Engine, error) {
	funcMap := template.FuncMap{
		"trans": translator.Trans,
	}

	tpl, err := template.New("view").Funcs(funcMap).ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse view templates - %w", err)
	}
	return &Engine{templates: tpl}, nil
}

// Render executes template with provided name
func (e *Engine) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render template %s - %w", name, err)
	}
	return buf.String(), nil
}
