package service

import (
	models "acdoc-dashboard/app/models/dataset"
)

const PageTitle = "Dashboard Cursos AcDOC"

// ComposeView lays out one panel per chart, in the order given.
func ComposeView(charts []models.ChartSpec) models.Page {
	page := models.Page{
		Title:  PageTitle,
		Panels: make([]models.Panel, 0, len(charts)),
	}
	for _, c := range charts {
		page.Panels = append(page.Panels, models.Panel{
			ControlID:  ExportControlID(c.ID),
			DownloadID: "download-" + c.ID,
			GraphID:    "graph-" + c.ID,
			Chart:      c,
		})
	}
	return page
}

// ExportControlID is the id of the export button bound to a panel.
func ExportControlID(panel string) string {
	return "export-button-" + panel
}
