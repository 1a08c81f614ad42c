// Package prompts holds the prompt templates sent to the chat-completion API.
// Templates are embedded at compile time.
package prompts

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

//go:embed *.tmpl
var templateFiles embed.FS

var (
	parseOnce sync.Once
	templates *template.Template
	parseErr  error
)

func load() (*template.Template, error) {
	parseOnce.Do(func() {
		templates, parseErr = template.ParseFS(templateFiles, "*.tmpl")
	})
	return templates, parseErr
}

func render(name string, data any) (string, error) {
	t, err := load()
	if err != nil {
		return "", fmt.Errorf("failed to parse prompt templates: %w", err)
	}
	var sb strings.Builder
	if err := t.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %s: %w", name, err)
	}
	return strings.TrimSpace(sb.String()), nil
}

// System returns the system message framing the reviewer persona.
func System() (string, error) {
	return render("system.tmpl", nil)
}

// Review returns the user message asking for a structured critique of resumeText.
func Review(resumeText string) (string, error) {
	return render("review.tmpl", struct{ ResumeText string }{ResumeText: resumeText})
}
