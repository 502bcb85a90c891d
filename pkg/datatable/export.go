package datatable

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

// exportValue renders a row's cell for file output, preferring the
// column's Export formatter over its display value.
func (t *Table[T]) exportValue(col Column[T], row T) any {
	if col.Export != nil {
		return col.Export(row)
	}
	return col.Value(row)
}

// ExportCSV writes the filtered, searched, and sorted rows as CSV with a
// header row. Pagination is skipped so every matching row is included.
func (t *Table[T]) ExportCSV(w io.Writer, rows []T, st State) error {
	matched := t.Apply(rows, st)

	cw := csv.NewWriter(w)
	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Title
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(t.Columns))
	for _, row := range matched {
		for i, col := range t.Columns {
			record[i] = fmt.Sprint(t.exportValue(col, row))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportXLSX writes the matching rows as a spreadsheet with a single named
// sheet.
func (t *Table[T]) ExportXLSX(w io.Writer, rows []T, st State, sheet string) error {
	matched := t.Apply(rows, st)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.Title); err != nil {
			return err
		}
	}

	for r, row := range matched {
		for i, col := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, t.exportValue(col, row)); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ExportPDF writes the matching rows as a landscape table with a title and
// a shaded header row. Columns share the printable width evenly.
func (t *Table[T]) ExportPDF(w io.Writer, rows []T, st State, title string) error {
	matched := t.Apply(rows, st)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(t.Columns))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range t.Columns {
		pdf.CellFormat(colWidth, 8, col.Title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range matched {
		for _, col := range t.Columns {
			pdf.CellFormat(colWidth, 7, fmt.Sprint(t.exportValue(col, row)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
