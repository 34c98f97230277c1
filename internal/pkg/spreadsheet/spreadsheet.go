package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet is returned when the first sheet has no header row
var ErrEmptySheet = errors.New("spreadsheet has no header row")

// Table is the content of one sheet. Every row has len(Headers) cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Read loads the first sheet of an .xlsx workbook. The first row is the header.
// Rows with no value in any cell are skipped.
func Read(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	table := &Table{Headers: make([]string, len(rows[0]))}
	for i, h := range rows[0] {
		table.Headers[i] = strings.TrimSpace(h)
	}

	for _, row := range rows[1:] {
		cells := make([]string, len(table.Headers))
		empty := true
		for i := range cells {
			if i < len(row) {
				cells[i] = strings.TrimSpace(row[i])
			}
			if cells[i] != "" {
				empty = false
			}
		}
		if !empty {
			table.Rows = append(table.Rows, cells)
		}
	}
	return table, nil
}

// Write renders headers and rows as a single-sheet workbook
func Write(w io.Writer, sheetName string, headers []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}
