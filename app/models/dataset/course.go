package models

// Course names shown on the dashboard. Any row outside this list is dropped.
var courseAllowList = []string{
	"AcDOC - Capacitação em Pesquisa",
	"AcDOC - Como evitar a dispersão: foco e disciplina",
	"AcDOC - Curadoria",
	"AcDOC - Descomplicando o Instrumento de Avaliação de Cursos",
	"AcDOC - Lifelong Learning",
	"AcDOC - Metaverso",
	"AcDOC - Neurociência da Aprendizagem",
	"AcDOC - Reskilling: Aprendendo A Aprender",
}

var courseSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(courseAllowList))
	for _, c := range courseAllowList {
		m[c] = struct{}{}
	}
	return m
}()

// CourseAllowList returns a copy of the allowed course names.
func CourseAllowList() []string {
	out := make([]string, len(courseAllowList))
	copy(out, courseAllowList)
	return out
}

// IsAllowedCourse reports whether name is one of the dashboard courses.
func IsAllowedCourse(name string) bool {
	_, ok := courseSet[name]
	return ok
}

// Field names used by the source files.
const (
	FieldCurso             = "curso"
	FieldNomeCurso         = "nome_curso"
	FieldStatusCertificado = "status_certificado"
	FieldAlunosInscritos   = "alunos_inscritos"
	FieldAlunosAcessaram   = "alunos_acessaram"
	FieldCertificados      = "certificados_emitidos"

	StatusIssuedCertificate = "Emitiu Certificado"
)

// DatasetSpec binds a source file to the field holding its course name.
// The files disagree on that name (curso vs nome_curso), so it is configured per table.
type DatasetSpec struct {
	Name        string
	File        string
	CourseField string
	ValueField  string
}

var (
	CertificatesDataset = DatasetSpec{
		Name:        "acesso_e_certificados",
		File:        "acesso_e_certificados.json",
		CourseField: FieldCurso,
		ValueField:  FieldStatusCertificado,
	}
	EnrollmentsDataset = DatasetSpec{
		Name:        "qtd_inscritos",
		File:        "qtd_inscritos.json",
		CourseField: FieldNomeCurso,
		ValueField:  FieldAlunosInscritos,
	}
	AccessesDataset = DatasetSpec{
		Name:        "qtd_acessos",
		File:        "qtd_acessos.json",
		CourseField: FieldNomeCurso,
		ValueField:  FieldAlunosAcessaram,
	}
)
