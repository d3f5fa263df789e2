package service

import (
	"bytes"
	"fmt"

	models "acdoc-dashboard/app/models/dataset"
	"acdoc-dashboard/utils"

	"github.com/google/uuid"
)

// ExportError is returned when a table could not be turned into a workbook.
// It only affects the request that triggered it.
type ExportError struct {
	ControlID string
	Err       error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.ControlID, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ExportHandler serializes one filtered table on demand.
type ExportHandler struct {
	ControlID string
	Filename  string
	Table     *models.Table
}

// Handle builds a fresh artifact for every activation. A nil counter means the control
// was never activated, in which case nothing is produced.
func (h ExportHandler) Handle(counter *int) (*models.ExportArtifact, error) {
	if counter == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := utils.WriteWorkbook(&buf, h.Table); err != nil {
		return nil, &ExportError{ControlID: h.ControlID, Err: err}
	}

	return &models.ExportArtifact{
		ID:          uuid.New(),
		Filename:    h.Filename,
		ContentType: utils.XLSXContentType,
		Data:        buf.Bytes(),
	}, nil
}

// ExportRegistry maps an export control id to its handler.
type ExportRegistry map[string]ExportHandler

// NewExportRegistry binds the three export controls to their tables.
func NewExportRegistry(data *models.DashboardData) ExportRegistry {
	reg := ExportRegistry{}
	reg.Register(ExportHandler{
		ControlID: ExportControlID(PanelInscritos),
		Filename:  "AcDOC-Inscritos.xlsx",
		Table:     data.Enrollments,
	})
	reg.Register(ExportHandler{
		ControlID: ExportControlID(PanelAcessos),
		Filename:  "AcDOC-Acessos.xlsx",
		Table:     data.Accesses,
	})
	reg.Register(ExportHandler{
		ControlID: ExportControlID(PanelCertificados),
		Filename:  "AcDOC-Certificados.xlsx",
		Table:     data.Certificates,
	})
	return reg
}

func (r ExportRegistry) Register(h ExportHandler) {
	r[h.ControlID] = h
}

func (r ExportRegistry) Lookup(controlID string) (ExportHandler, bool) {
	h, ok := r[controlID]
	return h, ok
}

// Handlers returns the registered handlers in panel order.
func (r ExportRegistry) Handlers() []ExportHandler {
	out := make([]ExportHandler, 0, len(r))
	for _, p := range []string{PanelInscritos, PanelAcessos, PanelCertificados} {
		if h, ok := r[ExportControlID(p)]; ok {
			out = append(out, h)
		}
	}
	return out
}
