package repository_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "acdoc-dashboard/app/models/dataset"
	repository "acdoc-dashboard/app/repository/jsonfile"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	t.Run("Success: Keeps column and row order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "qtd_inscritos.json", `[
			{"nome_curso": "AcDOC - Curadoria", "alunos_inscritos": 10},
			{"alunos_inscritos": 2.5, "nome_curso": "AcDOC - Metaverso", "ativo": true, "obs": null}
		]`)

		table, err := repository.NewDatasetRepository(dir).Load(context.Background(), models.EnrollmentsDataset)
		require.NoError(t, err)

		assert.Equal(t, "qtd_inscritos", table.Name)
		assert.Equal(t, []string{"nome_curso", "alunos_inscritos", "ativo", "obs"}, table.Columns)
		require.Equal(t, 2, table.Len())
		assert.Equal(t, models.Record{"nome_curso": "AcDOC - Curadoria", "alunos_inscritos": json.Number("10")}, table.Rows[0])
		assert.Equal(t, json.Number("2.5"), table.Rows[1]["alunos_inscritos"])
		assert.Equal(t, true, table.Rows[1]["ativo"])
		assert.Nil(t, table.Rows[1]["obs"])
	})

	t.Run("Success: Empty array", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "qtd_acessos.json", `[]`)

		table, err := repository.NewDatasetRepository(dir).Load(context.Background(), models.AccessesDataset)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
		assert.Empty(t, table.Columns)
	})

	t.Run("Error: Missing file", func(t *testing.T) {
		_, err := repository.NewDatasetRepository(t.TempDir()).Load(context.Background(), models.AccessesDataset)

		var loadErr *repository.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.ErrorIs(t, err, repository.ErrDatasetNotFound)
		assert.Equal(t, "qtd_acessos", loadErr.Dataset)
		assert.True(t, strings.HasSuffix(loadErr.Path, "qtd_acessos.json"))
	})

	t.Run("Error: Invalid documents", func(t *testing.T) {
		for name, content := range map[string]string{
			"malformed":  `[{"curso": }]`,
			"object":     `{"curso": "AcDOC - Curadoria"}`,
			"scalars":    `[1, 2, 3]`,
			"truncated":  `[{"curso": "AcDOC - Curadoria"}`,
			"empty file": ``,
		} {
			dir := t.TempDir()
			writeFile(t, dir, "acesso_e_certificados.json", content)

			_, err := repository.NewDatasetRepository(dir).Load(context.Background(), models.CertificatesDataset)

			var loadErr *repository.LoadError
			assert.ErrorAs(t, err, &loadErr, name)
		}
	})

	t.Run("Error: Canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := repository.NewDatasetRepository(t.TempDir()).Load(ctx, models.AccessesDataset)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecodeTable(t *testing.T) {
	_, err := repository.DecodeTable(strings.NewReader(`[[1]]`))
	assert.ErrorIs(t, err, repository.ErrInvalidDataset)
}
