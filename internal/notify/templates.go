package notify

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"go-gin-event-commerce/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Render produces the HTML body for a notification kind.
func Render(n *model.Notification) (string, error) {
	name := string(n.Kind) + ".html"
	if templates.Lookup(name) == nil {
		return "", fmt.Errorf("no template for notification kind %q", n.Kind)
	}
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, n.Data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return body.String(), nil
}
