package service

import (
	models "acdoc-dashboard/app/models/dataset"
)

// FilterCourses keeps the rows whose field value is one of allow, in their original order.
// The column set is left untouched; an empty result is valid.
func FilterCourses(t *models.Table, field string, allow []string) *models.Table {
	set := make(map[string]struct{}, len(allow))
	for _, a := range allow {
		set[a] = struct{}{}
	}

	out := &models.Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]models.Record, 0, len(t.Rows)),
	}
	for _, rec := range t.Rows {
		name, ok := rec.String(field)
		if !ok {
			continue
		}
		if _, ok := set[name]; ok {
			out.Rows = append(out.Rows, rec)
		}
	}
	return out
}
