package views

import (
	"bytes"
	"embed"
	"html/template"

	models "acdoc-dashboard/app/models/dataset"
)

//go:embed dashboard.html
var files embed.FS

var dashboardTmpl = template.Must(template.ParseFS(files, "dashboard.html"))

// RenderDashboard renders the page. It runs once at startup; requests are served from
// the returned bytes.
func RenderDashboard(page models.Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
