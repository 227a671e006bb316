// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheets

// Sheet names
const (
	Anniversary = "anniversary"
	Checklist   = "checklist"
	Customs     = "customs"
	Wishlist    = "wishlist"
)

// Sheet is a named tab with a fixed column order. Columns[0] is always "id".
type Sheet struct {
	Name    string
	Columns []string
}

// Header returns the sheet's header row.
func (s Sheet) Header() Row {
	header := make(Row, len(s.Columns))
	copy(header, s.Columns)
	return header
}

var catalogue = []Sheet{
	{Name: Anniversary, Columns: []string{"id", "title", "series", "release_date", "anniversary_date", "notes"}},
	{Name: Checklist, Columns: []string{"id", "title", "series", "owned", "condition", "notes"}},
	{Name: Customs, Columns: []string{"id", "title", "base_figure", "artist", "price", "status", "notes"}},
	{Name: Wishlist, Columns: []string{"id", "title", "series", "priority", "target_price", "url", "notes"}},
}

// All returns every known sheet in a stable order.
func All() []Sheet {
	out := make([]Sheet, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup finds a sheet by name.
func Lookup(name string) (Sheet, bool) {
	for _, s := range catalogue {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}
