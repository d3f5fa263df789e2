package service

import (
	"errors"
	"fmt"
	"strconv"

	models "acdoc-dashboard/app/models/dataset"
	"acdoc-dashboard/views"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var errInvalidActivation = errors.New("n_clicks must be a non-negative integer")

type DashboardService struct {
	data    *models.DashboardData
	exports ExportRegistry
	page    []byte
	log     *zap.Logger
}

// NewDashboardService renders the page once and wires the export handlers to data.
func NewDashboardService(data *models.DashboardData, log *zap.Logger) (*DashboardService, error) {
	page, err := views.RenderDashboard(data.Page)
	if err != nil {
		return nil, fmt.Errorf("render dashboard: %w", err)
	}
	return &DashboardService{
		data:    data,
		exports: NewExportRegistry(data),
		page:    page,
		log:     log,
	}, nil
}

// === Page ===
func (s *DashboardService) Index(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(s.page)
}

// === Charts API ===
func (s *DashboardService) GetCharts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": s.data.Charts})
}

func (s *DashboardService) GetChart(c *fiber.Ctx) error {
	chart, ok := s.data.Chart(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Chart not found"})
	}
	return c.JSON(fiber.Map{"data": chart})
}

// === Export ===
func (s *DashboardService) Export(c *fiber.Ctx) error {
	controlID := c.Params("control")
	h, ok := s.exports.Lookup(controlID)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Unknown export control"})
	}

	counter, err := parseActivation(c.Query("n_clicks"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	artifact, err := h.Handle(counter)
	if err != nil {
		s.log.Error("export failed", zap.String("control", controlID), zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build spreadsheet"})
	}
	if artifact == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	s.log.Info("export served",
		zap.String("control", controlID),
		zap.String("export_id", artifact.ID.String()),
		zap.Int("clicks", *counter),
		zap.Int("rows", h.Table.Len()),
		zap.Int("bytes", len(artifact.Data)),
	)

	c.Attachment(artifact.Filename)
	c.Set(fiber.HeaderContentType, artifact.ContentType)
	c.Set("X-Export-ID", artifact.ID.String())
	return c.Send(artifact.Data)
}

// parseActivation returns nil when the control has not been activated yet.
func parseActivation(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, errInvalidActivation
	}
	return &n, nil
}
