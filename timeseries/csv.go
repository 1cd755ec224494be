package timeseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	LoadOptions
	Delimiter rune // Field delimiter (default: ',')
	SkipRows  int  // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
	}
}

// LoadCSV loads a frame from a CSV file with a header row.
func LoadCSV(filename string, opts *CSVOptions) (*Frame, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a frame from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Frame, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("skip row %d: %w", i+1, err)
		}
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Err: fmt.Errorf("missing header row")}
	}
	if err != nil {
		return nil, err
	}

	table := RawTable{Header: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, record)
	}

	return Load(table, &opts.LoadOptions)
}

// WriteCSV writes the frame with a Date column first. Nulls are written as
// empty cells.
func (f *Frame) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := append([]string{"Date"}, f.fields...)
	if err := writer.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for i, d := range f.index {
		record[0] = d.Format(time.DateOnly)
		for j, name := range f.fields {
			record[j+1] = formatValue(f.data[name][i])
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSV writes the series as Date,<name> rows. Nulls are written as
// empty cells.
func (s *Series) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	name := s.Name
	if name == "" {
		name = "value"
	}
	if err := writer.Write([]string{"Date", name}); err != nil {
		return err
	}
	for i, v := range s.Values {
		date := ""
		if i < len(s.Timestamps) {
			date = s.Timestamps[i].Format(time.DateOnly)
		}
		if err := writer.Write([]string{date, formatValue(v)}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
