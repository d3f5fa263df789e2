package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	models "acdoc-dashboard/app/models/dataset"
)

var (
	ErrDatasetNotFound = errors.New("dataset file not found")
	ErrInvalidDataset  = errors.New("dataset is not an array of objects")
)

// LoadError is returned when a dataset file cannot be read or decoded.
type LoadError struct {
	Dataset string
	Path    string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %q (%s): %v", e.Dataset, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type DatasetRepository interface {
	Load(ctx context.Context, spec models.DatasetSpec) (*models.Table, error)
}

type datasetRepository struct {
	dir string
}

func NewDatasetRepository(dir string) DatasetRepository {
	return &datasetRepository{dir: dir}
}

func (r *datasetRepository) Load(ctx context.Context, spec models.DatasetSpec) (*models.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(r.dir, spec.File)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrDatasetNotFound
		}
		return nil, &LoadError{Dataset: spec.Name, Path: path, Err: err}
	}
	defer f.Close()

	table, err := DecodeTable(f)
	if err != nil {
		return nil, &LoadError{Dataset: spec.Name, Path: path, Err: err}
	}
	table.Name = spec.Name
	return table, nil
}

// DecodeTable reads a JSON array of objects. Columns are ordered by first appearance,
// so the exported spreadsheet follows the layout of the source file.
func DecodeTable(r io.Reader) (*models.Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}

	table := &models.Table{Columns: []string{}, Rows: []models.Record{}}
	seen := make(map[string]struct{})

	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, err
		}
		rec := make(models.Record)
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected token %v", ErrInvalidDataset, tok)
			}
			var v any
			if err := dec.Decode(&v); err != nil {
				return nil, err
			}
			rec[key] = v
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				table.Columns = append(table.Columns, key)
			}
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, rec)
	}

	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return table, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected end of input", ErrInvalidDataset)
		}
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrInvalidDataset, want, tok)
	}
	return nil
}
