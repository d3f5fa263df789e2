package models

// Record is one row of a dataset. Values keep their JSON shape:
// string, json.Number, bool or nil.
type Record map[string]any

// Table is an ordered set of records with the column order taken from the source file.
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    []Record `json:"rows"`
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether col is part of the table schema.
func (t *Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// String returns the value of col as a string when it holds one.
func (r Record) String(col string) (string, bool) {
	s, ok := r[col].(string)
	return s, ok
}
