package service

import (
	"context"

	models "acdoc-dashboard/app/models/dataset"
	repo "acdoc-dashboard/app/repository/jsonfile"
)

// Chart and control identifiers used by the page and the export routes.
const (
	PanelInscritos    = "inscritos"
	PanelAcessos      = "acessos"
	PanelCertificados = "certificados"
)

// BuildDashboard loads the three datasets and derives everything the page needs.
// Any load error is returned as-is; the dashboard cannot be served without data.
func BuildDashboard(ctx context.Context, r repo.DatasetRepository) (*models.DashboardData, error) {
	// 1. Load
	certificates, err := r.Load(ctx, models.CertificatesDataset)
	if err != nil {
		return nil, err
	}
	enrollments, err := r.Load(ctx, models.EnrollmentsDataset)
	if err != nil {
		return nil, err
	}
	accesses, err := r.Load(ctx, models.AccessesDataset)
	if err != nil {
		return nil, err
	}

	// 2. Filter
	allow := models.CourseAllowList()
	data := &models.DashboardData{
		Certificates: FilterCourses(certificates, models.CertificatesDataset.CourseField, allow),
		Enrollments:  FilterCourses(enrollments, models.EnrollmentsDataset.CourseField, allow),
		Accesses:     FilterCourses(accesses, models.AccessesDataset.CourseField, allow),
	}

	// 3. Aggregate
	data.CertificateCounts = CountIssuedCertificates(data.Certificates)

	// 4. Charts
	certChart := BuildBarChart(PanelCertificados, data.CertificateCounts,
		models.FieldCurso, models.FieldCertificados,
		"Quantidade de Certificados Emitidos por Curso")
	certChart.HoverTemplate = "%{text} certificados emitidos"

	data.Charts = []models.ChartSpec{
		BuildBarChart(PanelInscritos, data.Enrollments,
			models.EnrollmentsDataset.CourseField, models.FieldAlunosInscritos,
			"Quantidade de Inscritos por Curso"),
		BuildBarChart(PanelAcessos, data.Accesses,
			models.AccessesDataset.CourseField, models.FieldAlunosAcessaram,
			"Quantidade de Acessos por Curso"),
		certChart,
	}

	// 5. View
	data.Page = ComposeView(data.Charts)
	return data, nil
}
