package datatable

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type row struct {
	Name       string
	Status     string
	EnrolledAt time.Time
}

type DatatableTestSuite struct {
	suite.Suite
	table *Table[row]
	rows  []row
}

func (s *DatatableTestSuite) SetupTest() {
	s.table = &Table[row]{
		Columns: []Column[row]{
			{Key: "name", Title: "Name", Value: func(r row) string { return r.Name }, Searchable: true, Sortable: true},
			{Key: "status", Title: "Status", Value: func(r row) string { return r.Status }},
			{
				Key:      "enrolled_at",
				Title:    "Enrolled",
				Value:    func(r row) string { return r.EnrolledAt.Format("2006-01-02") },
				Sortable: true,
				Less:     func(a, b row) bool { return a.EnrolledAt.Before(b.EnrolledAt) },
			},
		},
		Filters: map[string]func(row, string) bool{
			"status": func(r row, value string) bool { return r.Status == value },
		},
	}

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	s.rows = []row{
		{Name: "Carol", Status: "ACTIVE", EnrolledAt: base.AddDate(0, 0, 2)},
		{Name: "Alice", Status: "ACTIVE", EnrolledAt: base},
		{Name: "Bob", Status: "INACTIVE", EnrolledAt: base.AddDate(0, 0, 1)},
		{Name: "Dave", Status: "ACTIVE", EnrolledAt: base.AddDate(0, 0, 3)},
	}
}

func TestDatatable(t *testing.T) {
	suite.Run(t, new(DatatableTestSuite))
}

func (s *DatatableTestSuite) TestSearchChangeResetsPage() {
	st := NewState(10).WithPage(3)

	st = st.WithSearch("ali")
	s.Equal(1, st.Page)

	// Re-submitting the same search keeps the current page.
	st = st.WithPage(2).WithSearch("ali")
	s.Equal(2, st.Page)
}

func (s *DatatableTestSuite) TestFilterChangeResetsPage() {
	st := NewState(10).WithPage(4)

	st = st.WithFilter("status", "ACTIVE")
	s.Equal(1, st.Page)

	st = st.WithPage(2).WithFilter("status", "ACTIVE")
	s.Equal(2, st.Page)

	// Clearing the filter is a change too.
	st = st.WithFilter("status", "")
	s.Equal(1, st.Page)
	s.NotContains(st.Filters, "status")
}

func (s *DatatableTestSuite) TestToggleSortCycle() {
	st := NewState(10)

	st = st.ToggleSort("name")
	s.Equal("name", st.SortKey)
	s.Equal(DirAsc, st.SortDir)

	st = st.ToggleSort("name")
	s.Equal(DirDesc, st.SortDir)

	st = st.ToggleSort("name")
	s.Equal("", st.SortKey)
	s.Equal(DirNone, st.SortDir)

	// Toggling a different column starts it at ascending.
	st = st.ToggleSort("name").ToggleSort("enrolled_at")
	s.Equal("enrolled_at", st.SortKey)
	s.Equal(DirAsc, st.SortDir)
}

func (s *DatatableTestSuite) TestSortAndClearedSortRestoresInputOrder() {
	st := NewState(10).ToggleSort("name")

	sorted := s.table.Apply(s.rows, st)
	s.Equal([]string{"Alice", "Bob", "Carol", "Dave"}, names(sorted))

	st = st.ToggleSort("name")
	descending := s.table.Apply(s.rows, st)
	s.Equal([]string{"Dave", "Carol", "Bob", "Alice"}, names(descending))

	st = st.ToggleSort("name")
	cleared := s.table.Apply(s.rows, st)
	s.Equal([]string{"Carol", "Alice", "Bob", "Dave"}, names(cleared))
}

func (s *DatatableTestSuite) TestFilterAllSentinelIsInactive() {
	st := NewState(10).WithFilter("status", FilterAll)

	matched := s.table.Apply(s.rows, st)
	s.Len(matched, 4)
}

func (s *DatatableTestSuite) TestNonSortableColumnIgnoresToggle() {
	st := NewState(10).ToggleSort("status")

	matched := s.table.Apply(s.rows, st)
	s.Equal([]string{"Carol", "Alice", "Bob", "Dave"}, names(matched))
}

func (s *DatatableTestSuite) TestSearchFallsBackToAllColumnsWhenNoneSearchable() {
	table := &Table[row]{
		Columns: []Column[row]{
			{Key: "name", Title: "Name", Value: func(r row) string { return r.Name }},
			{Key: "status", Title: "Status", Value: func(r row) string { return r.Status }},
		},
	}
	st := NewState(10).WithSearch("inactive")

	matched := table.Apply(s.rows, st)
	s.Equal([]string{"Bob"}, names(matched))
}

func (s *DatatableTestSuite) TestSortByTimeColumnUsesLess() {
	st := NewState(10).ToggleSort("enrolled_at")

	sorted := s.table.Apply(s.rows, st)
	s.Equal([]string{"Alice", "Bob", "Carol", "Dave"}, names(sorted))
}

func (s *DatatableTestSuite) TestPipelineOrderFilterThenSearch() {
	st := NewState(10).WithFilter("status", "ACTIVE").WithSearch("a")

	matched := s.table.Apply(s.rows, st)
	// Bob carries an "a" nowhere and is INACTIVE anyway; Carol, Alice and
	// Dave all contain an "a" and survive the status filter.
	s.Equal([]string{"Carol", "Alice", "Dave"}, names(matched))
}

func (s *DatatableTestSuite) TestSearchIsCaseInsensitive() {
	st := NewState(10).WithSearch("ALICE")

	matched := s.table.Apply(s.rows, st)
	s.Equal([]string{"Alice"}, names(matched))
}

func (s *DatatableTestSuite) TestSearchSkipsNonSearchableColumns() {
	st := NewState(10).WithSearch("ACTIVE")

	// Status is not searchable, so matching its value finds nothing.
	s.Empty(s.table.Apply(s.rows, st))
}

func (s *DatatableTestSuite) TestRunPaginates() {
	st := NewState(2)

	result := s.table.Run(s.rows, st)
	s.Equal(4, result.TotalRows)
	s.Equal(2, result.TotalPages)
	s.Equal(1, result.Page)
	s.Equal([]string{"Carol", "Alice"}, names(result.Rows))

	result = s.table.Run(s.rows, st.WithPage(2))
	s.Equal([]string{"Bob", "Dave"}, names(result.Rows))
}

func (s *DatatableTestSuite) TestRunClampsPageToLastPage() {
	st := NewState(2).WithPage(99)

	result := s.table.Run(s.rows, st)
	s.Equal(2, result.Page)
	s.Equal([]string{"Bob", "Dave"}, names(result.Rows))
}

func (s *DatatableTestSuite) TestRunEmptyInput() {
	result := s.table.Run(nil, NewState(10))
	s.Empty(result.Rows)
	s.Equal(0, result.TotalRows)
	s.Equal(1, result.Page)
	s.Equal(1, result.TotalPages)
}

func (s *DatatableTestSuite) TestDateRangeBoundsInclusive() {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC)

	s.True(DateRange(start, start, end))
	s.True(DateRange(end, start, end))
	s.False(DateRange(start.AddDate(0, 0, -1), start, end))
	s.False(DateRange(end.Add(time.Second), start, end))

	// A zero bound leaves that side open.
	s.True(DateRange(start.AddDate(0, 0, -30), time.Time{}, end))
	s.True(DateRange(end.AddDate(0, 1, 0), start, time.Time{}))
}

func (s *DatatableTestSuite) TestExportCSVIgnoresPagination() {
	// Page 2 of a 2-row page size; the export must still cover every
	// matching row.
	st := NewState(2).WithFilter("status", "ACTIVE").WithPage(2)

	var buf bytes.Buffer
	err := s.table.ExportCSV(&buf, s.rows, st)
	s.NoError(err)

	records, err := csv.NewReader(&buf).ReadAll()
	s.NoError(err)
	s.Len(records, 4) // header + 3 ACTIVE rows
	s.Equal([]string{"Name", "Status", "Enrolled"}, records[0])
	s.Equal("Carol", records[1][0])
}

func (s *DatatableTestSuite) TestExportCSVAppliesSearchAndSort() {
	st := NewState(10).WithSearch("a").ToggleSort("name")

	var buf bytes.Buffer
	err := s.table.ExportCSV(&buf, s.rows, st)
	s.NoError(err)

	records, err := csv.NewReader(&buf).ReadAll()
	s.NoError(err)
	s.Len(records, 4)
	s.Equal("Alice", records[1][0])
	s.Equal("Carol", records[2][0])
	s.Equal("Dave", records[3][0])
}

func (s *DatatableTestSuite) TestExportXLSXProducesWorkbook() {
	st := NewState(10)

	var buf bytes.Buffer
	err := s.table.ExportXLSX(&buf, s.rows, st, "Students")
	s.NoError(err)
	s.NotZero(buf.Len())
	// XLSX files are zip archives.
	s.Equal([]byte{'P', 'K'}, buf.Bytes()[:2])
}

func (s *DatatableTestSuite) TestExportPDFProducesDocument() {
	st := NewState(10)

	var buf bytes.Buffer
	err := s.table.ExportPDF(&buf, s.rows, st, "Students")
	s.NoError(err)
	s.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func (s *DatatableTestSuite) TestPageSizeChangeResetsPage() {
	st := NewState(10).WithPage(3)

	st = st.WithPageSize(25)
	s.Equal(1, st.Page)
	s.Equal(25, st.PageSize)

	// Re-submitting the same size keeps the current page.
	st = st.WithPage(2).WithPageSize(25)
	s.Equal(2, st.Page)

	st = st.WithPageSize(0)
	s.Equal(10, st.PageSize)
	s.Equal(1, st.Page)
}

func (s *DatatableTestSuite) TestExportFormatterOverridesDisplayValue() {
	s.table.Columns[2].Export = func(r row) any { return r.EnrolledAt.Format(time.RFC3339) }
	st := NewState(10).WithFilter("status", "INACTIVE")

	var buf bytes.Buffer
	s.NoError(s.table.ExportCSV(&buf, s.rows, st))

	records, err := csv.NewReader(&buf).ReadAll()
	s.NoError(err)
	s.Len(records, 2)
	// The name column has no Export func and keeps its rendered value.
	s.Equal("Bob", records[1][0])
	s.Equal("2026-03-02T00:00:00Z", records[1][2])
}
