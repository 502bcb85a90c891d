// Package datatable implements the server-side table pipeline used by the
// list and export endpoints: rows pass through filter, search, sort, and
// paginate stages in that fixed order. Exports run the same pipeline minus
// pagination, so a download always matches what the table shows across all
// pages.
package datatable

import (
	"sort"
	"strings"
	"time"
)

type Direction int

const (
	DirNone Direction = iota
	DirAsc
	DirDesc
)

// Column describes one table column: how to render a row's value, whether
// the search stage looks at it, and whether it accepts a sort.
type Column[T any] struct {
	Key        string
	Title      string
	Value      func(T) string
	Searchable bool
	Sortable   bool

	// Export overrides Value in file exports, e.g. a raw timestamp behind
	// a friendly display date. Nil falls back to the rendered value.
	Export func(T) any

	// Less orders two rows for this column. Columns without a Less func
	// fall back to comparing rendered values.
	Less func(a, b T) bool
}

// State is the client's view of the table: search text, named filter
// values, the sort column with its direction, and the current page.
type State struct {
	Search   string
	Filters  map[string]string
	SortKey  string
	SortDir  Direction
	Page     int
	PageSize int
}

// NewState returns a state on page 1 with the given page size.
func NewState(pageSize int) State {
	if pageSize < 1 {
		pageSize = 10
	}
	return State{Filters: map[string]string{}, Page: 1, PageSize: pageSize}
}

// WithSearch sets the search text. Changing it snaps the view back to the
// first page; re-submitting the same text leaves the page alone.
func (s State) WithSearch(search string) State {
	if s.Search != search {
		s.Page = 1
	}
	s.Search = search
	return s
}

// WithFilter sets a named filter value, resetting to the first page when
// the value changes. An empty value clears the filter.
func (s State) WithFilter(key, value string) State {
	filters := make(map[string]string, len(s.Filters)+1)
	for k, v := range s.Filters {
		filters[k] = v
	}
	if s.Filters[key] != value {
		s.Page = 1
	}
	if value == "" {
		delete(filters, key)
	} else {
		filters[key] = value
	}
	s.Filters = filters
	return s
}

// ToggleSort cycles a column through ascending, descending, and unsorted.
// Toggling a different column starts that column at ascending. Two toggles
// on the same column followed by a third restore the unsorted order.
func (s State) ToggleSort(key string) State {
	if s.SortKey != key {
		s.SortKey = key
		s.SortDir = DirAsc
		return s
	}
	switch s.SortDir {
	case DirNone:
		s.SortDir = DirAsc
	case DirAsc:
		s.SortDir = DirDesc
	case DirDesc:
		s.SortKey = ""
		s.SortDir = DirNone
	}
	return s
}

// WithPageSize changes the page size, snapping back to the first page when
// the size changes. Sizes below 1 fall back to the default of 10.
func (s State) WithPageSize(size int) State {
	if size < 1 {
		size = 10
	}
	if s.PageSize != size {
		s.Page = 1
	}
	s.PageSize = size
	return s
}

// WithPage moves to the given page, clamping below at 1. Bounds above are
// clamped at run time once the filtered row count is known.
func (s State) WithPage(page int) State {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// Table binds columns to named filter predicates. Filter predicates decide
// whether a row matches the filter's current value.
type Table[T any] struct {
	Columns []Column[T]
	Filters map[string]func(row T, value string) bool
}

// Result is one page of the pipeline's output plus the pagination frame
// the client needs to render controls.
type Result[T any] struct {
	Rows       []T
	TotalRows  int
	Page       int
	PageSize   int
	TotalPages int
}

// Run executes filter, search, sort, and paginate over rows and returns
// the requested page. Rows is never mutated; sorting is stable so clearing
// the sort restores the input order.
func (t *Table[T]) Run(rows []T, st State) Result[T] {
	filtered := t.Apply(rows, st)

	pageSize := st.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := st.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result[T]{
		Rows:       filtered[start:end],
		TotalRows:  len(filtered),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Apply runs the pipeline without pagination. Exports call this so the
// output covers every matching row, not just the visible page.
func (t *Table[T]) Apply(rows []T, st State) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if t.matchesFilters(row, st.Filters) && t.matchesSearch(row, st.Search) {
			out = append(out, row)
		}
	}
	t.sortRows(out, st)
	return out
}

// FilterAll is the sentinel value meaning a categorical filter is inactive.
const FilterAll = "all"

func (t *Table[T]) matchesFilters(row T, filters map[string]string) bool {
	for key, value := range filters {
		if value == "" || value == FilterAll {
			continue
		}
		predicate, ok := t.Filters[key]
		if !ok {
			continue
		}
		if !predicate(row, value) {
			return false
		}
	}
	return true
}

// matchesSearch checks the searchable columns, or every column when none
// is marked searchable.
func (t *Table[T]) matchesSearch(row T, search string) bool {
	search = strings.TrimSpace(strings.ToLower(search))
	if search == "" {
		return true
	}
	anySearchable := false
	for _, col := range t.Columns {
		if col.Searchable {
			anySearchable = true
			break
		}
	}
	for _, col := range t.Columns {
		if anySearchable && !col.Searchable {
			continue
		}
		if strings.Contains(strings.ToLower(col.Value(row)), search) {
			return true
		}
	}
	return false
}

func (t *Table[T]) sortRows(rows []T, st State) {
	if st.SortDir == DirNone || st.SortKey == "" {
		return
	}
	col, ok := t.column(st.SortKey)
	if !ok || !col.Sortable {
		return
	}

	less := col.Less
	if less == nil {
		less = func(a, b T) bool {
			return strings.ToLower(col.Value(a)) < strings.ToLower(col.Value(b))
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if st.SortDir == DirDesc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

func (t *Table[T]) column(key string) (Column[T], bool) {
	for _, col := range t.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column[T]{}, false
}

// DateRange reports whether a timestamp falls inside [start, end]. Both
// bounds are inclusive; a zero bound is open on that side. A row stamped
// exactly on the start bound is in, one stamped the day before is out.
func DateRange(ts, start, end time.Time) bool {
	if !start.IsZero() && ts.Before(start) {
		return false
	}
	if !end.IsZero() && ts.After(end) {
		return false
	}
	return true
}
