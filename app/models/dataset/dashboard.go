package models

import "github.com/google/uuid"

type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSpec describes one horizontal bar chart. Points keep the order of the source table.
type ChartSpec struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	YAxis         string       `json:"yAxis"`
	Orientation   string       `json:"orientation"`
	Color         string       `json:"color"`
	TextPosition  string       `json:"textPosition"`
	HoverTemplate string       `json:"hoverTemplate,omitempty"`
	Points        []ChartPoint `json:"points"`
}

type Panel struct {
	ControlID  string    `json:"controlId"`
	DownloadID string    `json:"downloadId"`
	GraphID    string    `json:"graphId"`
	Chart      ChartSpec `json:"chart"`
}

type Page struct {
	Title  string  `json:"title"`
	Panels []Panel `json:"panels"`
}

// DashboardData is built once at startup and only read afterwards.
type DashboardData struct {
	Enrollments  *Table
	Accesses     *Table
	Certificates *Table
	// CertificateCounts has columns curso, certificados_emitidos.
	CertificateCounts *Table

	Charts []ChartSpec
	Page   Page
}

// Chart returns the chart with the given id.
func (d *DashboardData) Chart(id string) (ChartSpec, bool) {
	for _, c := range d.Charts {
		if c.ID == id {
			return c, true
		}
	}
	return ChartSpec{}, false
}

// ExportArtifact is a generated spreadsheet ready to be downloaded.
type ExportArtifact struct {
	ID          uuid.UUID
	Filename    string
	ContentType string
	Data        []byte
}
