package service_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	models "acdoc-dashboard/app/models/dataset"
	service "acdoc-dashboard/app/service/dashboard"
)

func enrollmentTable() *models.Table {
	return &models.Table{
		Name:    "qtd_inscritos",
		Columns: []string{"nome_curso", "alunos_inscritos"},
		Rows: []models.Record{
			{"nome_curso": "AcDOC - Metaverso", "alunos_inscritos": json.Number("10")},
			{"nome_curso": "Outro Curso", "alunos_inscritos": json.Number("99")},
			{"nome_curso": "AcDOC - Curadoria", "alunos_inscritos": json.Number("7")},
			{"alunos_inscritos": json.Number("3")},
			{"nome_curso": json.Number("1"), "alunos_inscritos": json.Number("4")},
		},
	}
}

func TestFilterCourses(t *testing.T) {
	t.Run("Success: Keeps allowed rows in order", func(t *testing.T) {
		src := enrollmentTable()
		out := service.FilterCourses(src, models.FieldNomeCurso, models.CourseAllowList())

		assert.Equal(t, src.Columns, out.Columns)
		assert.Equal(t, []models.Record{src.Rows[0], src.Rows[2]}, out.Rows)
		assert.Len(t, src.Rows, 5, "source table must not change")
	})

	t.Run("Success: Filtering twice changes nothing", func(t *testing.T) {
		allow := models.CourseAllowList()
		once := service.FilterCourses(enrollmentTable(), models.FieldNomeCurso, allow)
		twice := service.FilterCourses(once, models.FieldNomeCurso, allow)

		assert.Equal(t, once, twice)
	})

	t.Run("Success: No match gives an empty table with the same columns", func(t *testing.T) {
		out := service.FilterCourses(enrollmentTable(), models.FieldNomeCurso, []string{"Nenhum"})

		assert.Equal(t, 0, out.Len())
		assert.Equal(t, []string{"nome_curso", "alunos_inscritos"}, out.Columns)
	})

	t.Run("Success: Wrong course field matches nothing", func(t *testing.T) {
		out := service.FilterCourses(enrollmentTable(), models.FieldCurso, models.CourseAllowList())
		assert.Equal(t, 0, out.Len())
	})
}
