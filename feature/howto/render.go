package howto

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"

	"guidegen/core/assets"

	"go.uber.org/zap"
)

//go:embed templates/guide.html
var embeddedGuideTemplate string

// Renderer renders guides to HTML.
type Renderer struct {
	tmpl   *template.Template
	origin string
}

// NewRenderer loads the guide template, preferring a copy on the asset
// search path over the embedded one so operators can restyle guides without
// rebuilding.
func NewRenderer(logg *zap.Logger) (*Renderer, error) {
	source := embeddedGuideTemplate
	origin := "embedded"

	if path, ok := assets.Resolve("templates/guide.html"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			logg.Warn("Guide template unreadable, using embedded copy",
				zap.String("path", path), zap.Error(err))
		} else {
			source = string(data)
			origin = path
		}
	}

	tmpl, err := template.New("guide.html").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse guide template: %w", err)
	}

	return &Renderer{tmpl: tmpl, origin: origin}, nil
}

// Origin reports where the template was loaded from.
func (r *Renderer) Origin() string {
	return r.origin
}

// Render produces the HTML page for a guide.
func (r *Renderer) Render(guide Guide) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, guide); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Check renders a sample guide. The startup template probe runs it.
func (r *Renderer) Check() (string, error) {
	if _, err := r.Render(FallbackGuide("render check")); err != nil {
		return "", err
	}
	return "template ok (" + r.origin + ")", nil
}
