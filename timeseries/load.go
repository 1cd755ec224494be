package timeseries

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/rs/zerolog"
)

// RawTable is tabular input as text cells, as produced by a CSV or
// spreadsheet reader.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// LoadOptions controls how a RawTable becomes a Frame.
type LoadOptions struct {
	Name       string   // Label for the frame (optional)
	DateColumn string   // Column holding dates (default: first of Date, date, ds, Datetime)
	DateFormat string   // Go layout or strftime pattern; empty means auto-detect
	Fields     []string // Numeric columns to keep (default: every other column)
	Logger     *zerolog.Logger

	// dateFallback converts cells no layout accepted, e.g. spreadsheet serials.
	dateFallback func(string) (time.Time, bool)
}

// DateLayouts are the layouts tried, in order, when no format is given.
var DateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"Jan 2, 2006",
	"2006",
}

var dateColumnNames = []string{"Date", "date", "ds", "Datetime", "datetime"}

// Load parses a RawTable into a Frame. Every date must parse under the
// configured format, or under a single auto-detected layout; a missing or
// malformed date fails with a *ParseError instead of dropping the row.
// Numeric cells that are empty, NA, NaN or null load as nulls. Rows are
// sorted by date and, on duplicate dates, the last row wins.
func Load(table RawTable, opts *LoadOptions) (*Frame, error) {
	if opts == nil {
		opts = &LoadOptions{}
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	header := make([]string, len(table.Header))
	for i, h := range table.Header {
		header[i] = strings.TrimSpace(strings.Trim(h, "\""))
	}

	dateIdx := findDateColumn(header, opts.DateColumn)
	if dateIdx < 0 {
		name := opts.DateColumn
		if name == "" {
			name = strings.Join(dateColumnNames, "|")
		}
		return nil, &ParseError{Column: name, Err: errors.New("date column not found")}
	}
	dateName := header[dateIdx]

	fieldIdx, err := selectFields(header, dateIdx, opts.Fields)
	if err != nil {
		return nil, err
	}

	rawDates := make([]string, len(table.Rows))
	for r, record := range table.Rows {
		if dateIdx < len(record) {
			rawDates[r] = strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
		}
	}
	dates, err := parseDates(rawDates, dateName, opts)
	if err != nil {
		return nil, err
	}

	type row struct {
		date   time.Time
		values []float64
	}
	rows := make([]row, len(table.Rows))
	for r, record := range table.Rows {
		values := make([]float64, len(fieldIdx))
		for j, c := range fieldIdx {
			cell := ""
			if c < len(record) {
				cell = record[c]
			}
			v, err := parseValue(cell)
			if err != nil {
				return nil, &ParseError{Row: r + 1, Column: header[c], Value: cell, Err: err}
			}
			values[j] = v
		}
		rows[r] = row{date: dates[r], values: values}
	}

	sorted := sort.SliceIsSorted(rows, func(i, j int) bool { return rows[i].date.Before(rows[j].date) })
	if !sorted {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].date.Before(rows[j].date) })
		log.Debug().Str("frame", opts.Name).Msg("input rows not in date order, sorted")
	}

	index := make([]time.Time, 0, len(rows))
	columns := make([][]float64, len(fieldIdx))
	dups := 0
	for _, rw := range rows {
		if n := len(index); n > 0 && index[n-1].Equal(rw.date) {
			for j := range columns {
				columns[j][n-1] = rw.values[j]
			}
			dups++
			continue
		}
		index = append(index, rw.date)
		for j := range columns {
			columns[j] = append(columns[j], rw.values[j])
		}
	}
	if dups > 0 {
		log.Debug().Str("frame", opts.Name).Int("duplicates", dups).Msg("duplicate dates collapsed, last row kept")
	}

	fields := make([]Field, len(fieldIdx))
	for j, c := range fieldIdx {
		vals := columns[j]
		if vals == nil {
			vals = []float64{}
		}
		fields[j] = Field{Name: header[c], Values: vals}
	}
	frame, err := NewFrame(index, fields...)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("frame", opts.Name).Int("rows", frame.Len()).Int("fields", len(fields)).Msg("frame loaded")
	return frame.Named(opts.Name), nil
}

func findDateColumn(header []string, want string) int {
	if want != "" {
		for i, h := range header {
			if h == want {
				return i
			}
		}
		for i, h := range header {
			if strings.EqualFold(h, want) {
				return i
			}
		}
		return -1
	}
	for _, name := range dateColumnNames {
		for i, h := range header {
			if h == name {
				return i
			}
		}
	}
	return -1
}

func selectFields(header []string, dateIdx int, want []string) ([]int, error) {
	if len(want) == 0 {
		idx := make([]int, 0, len(header)-1)
		for i := range header {
			if i != dateIdx {
				idx = append(idx, i)
			}
		}
		return idx, nil
	}
	idx := make([]int, 0, len(want))
	for _, name := range want {
		found := -1
		for i, h := range header {
			if h == name && i != dateIdx {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("%w: field %q not in header", ErrKeyNotFound, name)
		}
		idx = append(idx, found)
	}
	return idx, nil
}

// parseDates parses every cell with one layout. An explicit format is used
// as is; otherwise the first layout of DateLayouts that accepts every cell
// wins. The fallback, if any, is only consulted after no layout alone fits.
func parseDates(raw []string, column string, opts *LoadOptions) ([]time.Time, error) {
	for r, s := range raw {
		if s == "" {
			return nil, &ParseError{Row: r + 1, Column: column, Err: errors.New("missing date")}
		}
	}

	if opts.DateFormat != "" {
		layout, err := goLayout(opts.DateFormat)
		if err != nil {
			return nil, &ParseError{Column: column, Value: opts.DateFormat, Err: err}
		}
		dates, bad := parseWith(raw, layout, opts.dateFallback)
		if bad >= 0 {
			return nil, &ParseError{Row: bad + 1, Column: column, Value: raw[bad],
				Err: fmt.Errorf("does not match format %q", opts.DateFormat)}
		}
		return dates, nil
	}

	if len(raw) == 0 {
		return nil, nil
	}
	fallbacks := []func(string) (time.Time, bool){nil}
	if opts.dateFallback != nil {
		fallbacks = append(fallbacks, opts.dateFallback)
	}
	worst := 0
	for _, fallback := range fallbacks {
		for _, layout := range DateLayouts {
			dates, bad := parseWith(raw, layout, fallback)
			if bad < 0 {
				return dates, nil
			}
			worst = max(worst, bad)
		}
	}
	return nil, &ParseError{Row: worst + 1, Column: column, Value: raw[worst],
		Err: errors.New("no known date layout fits the column")}
}

// parseWith returns the parsed dates and -1, or nil and the position of the
// first cell that does not parse.
func parseWith(raw []string, layout string, fallback func(string) (time.Time, bool)) ([]time.Time, int) {
	dates := make([]time.Time, len(raw))
	for i, s := range raw {
		t, err := time.Parse(layout, s)
		if err != nil {
			if fallback == nil {
				return nil, i
			}
			var ok bool
			if t, ok = fallback(s); !ok {
				return nil, i
			}
		}
		dates[i] = ToDate(t)
	}
	return dates, -1
}

// goLayout accepts either a Go reference layout or a strftime pattern such
// as "%m/%d/%Y".
func goLayout(format string) (string, error) {
	if !strings.Contains(format, "%") {
		return format, nil
	}
	return strftime.Layout(format)
}

func parseValue(cell string) (float64, error) {
	s := strings.TrimSpace(strings.Trim(cell, "\""))
	switch s {
	case "", "NA", "N/A", "NaN", "nan", "null", "NULL":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
