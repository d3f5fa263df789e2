package service

import (
	"encoding/json"
	"sort"
	"strconv"

	models "acdoc-dashboard/app/models/dataset"
)

// CountIssuedCertificates counts, per course, the rows whose certificate status is
// "Emitiu Certificado". Courses are ordered by descending count; ties keep the order in
// which the course first appeared.
func CountIssuedCertificates(t *models.Table) *models.Table {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, rec := range t.Rows {
		status, _ := rec.String(models.FieldStatusCertificado)
		if status != models.StatusIssuedCertificate {
			continue
		}
		course, ok := rec.String(models.FieldCurso)
		if !ok {
			continue
		}
		if _, exists := counts[course]; !exists {
			order = append(order, course)
		}
		counts[course]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	out := &models.Table{
		Name:    "certificados_por_curso",
		Columns: []string{models.FieldCurso, models.FieldCertificados},
		Rows:    make([]models.Record, 0, len(order)),
	}
	for _, course := range order {
		out.Rows = append(out.Rows, models.Record{
			models.FieldCurso:        course,
			models.FieldCertificados: json.Number(strconv.Itoa(counts[course])),
		})
	}
	return out
}
