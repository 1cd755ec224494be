package timeseries

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// XLSXOptions holds options for spreadsheet loading.
type XLSXOptions struct {
	LoadOptions
	Sheet     string // Sheet name (default: first sheet)
	HeaderRow int    // 1-based row holding column names (default: 1)
}

// LoadXLSX loads a frame from an Excel workbook.
func LoadXLSX(filename string, opts *XLSXOptions) (*Frame, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return loadWorkbook(f, opts)
}

// LoadXLSXFromReader loads a frame from a workbook read from r.
func LoadXLSXFromReader(r io.Reader, opts *XLSXOptions) (*Frame, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return loadWorkbook(f, opts)
}

func loadWorkbook(f *excelize.File, opts *XLSXOptions) (*Frame, error) {
	if opts == nil {
		opts = &XLSXOptions{}
	}
	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &ParseError{Err: fmt.Errorf("workbook has no sheets")}
		}
		sheet = sheets[0]
	}

	// Raw values keep numbers unformatted; date cells then arrive as serials.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	headerRow := opts.HeaderRow
	if headerRow <= 0 {
		headerRow = 1
	}
	if len(rows) < headerRow {
		return nil, &ParseError{Column: sheet, Err: fmt.Errorf("missing header row %d", headerRow)}
	}

	table := RawTable{Header: rows[headerRow-1]}
	for _, row := range rows[headerRow:] {
		if isBlankRow(row) {
			continue
		}
		table.Rows = append(table.Rows, row)
	}

	loadOpts := opts.LoadOptions
	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}
	loadOpts.dateFallback = func(s string) (time.Time, bool) {
		serial, err := strconv.ParseFloat(s, 64)
		if err != nil || serial <= 0 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return Load(table, &loadOpts)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
