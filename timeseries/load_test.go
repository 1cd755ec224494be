package timeseries

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		table   RawTable
		opts    *LoadOptions
		wantRow int
	}{
		{
			name:    "missing date",
			table:   RawTable{Header: []string{"Date", "Close"}, Rows: [][]string{{"2013-01-01", "1"}, {"", "2"}}},
			wantRow: 2,
		},
		{
			name:    "malformed date",
			table:   RawTable{Header: []string{"Date", "Close"}, Rows: [][]string{{"2013-01-01", "1"}, {"2013-13-45", "2"}}},
			wantRow: 2,
		},
		{
			name:    "format mismatch",
			table:   RawTable{Header: []string{"Date", "Close"}, Rows: [][]string{{"08/06/2012", "1"}, {"2012-08-07", "2"}}},
			opts:    &LoadOptions{DateFormat: "%m/%d/%Y"},
			wantRow: 2,
		},
		{
			name:    "non numeric value",
			table:   RawTable{Header: []string{"Date", "Close"}, Rows: [][]string{{"2013-01-01", "abc"}}},
			wantRow: 1,
		},
		{
			name:  "no date column",
			table: RawTable{Header: []string{"Day", "Close"}, Rows: [][]string{{"2013-01-01", "1"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.table, tt.opts)
			require.ErrorIs(t, err, ErrParse)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.wantRow, perr.Row)
		})
	}
}

func TestLoadSortsAndKeepsLastDuplicate(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)

	table := RawTable{
		Header: []string{"Date", "Close"},
		Rows: [][]string{
			{"2013-01-03", "3"},
			{"2013-01-01", "1"},
			{"2013-01-02", "2"},
			{"2013-01-01", "10"},
		},
	}

	frame, err := Load(table, &LoadOptions{Name: "AMZN", Logger: &logger})
	require.NoError(t, err)

	assert.Equal(t, "AMZN", frame.Name())
	assert.Equal(t, []time.Time{
		Date(2013, time.January, 1),
		Date(2013, time.January, 2),
		Date(2013, time.January, 3),
	}, frame.Index())

	row, err := frame.At(Date(2013, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, 10.0, row["Close"])

	assert.Contains(t, logs.String(), "duplicate dates collapsed")
	assert.Contains(t, logs.String(), `"duplicates":1`)
}

func TestLoadDateColumnOption(t *testing.T) {
	table := RawTable{
		Header: []string{"Timestamp", "Close"},
		Rows:   [][]string{{"2013-01-01", "1"}},
	}

	frame, err := Load(table, &LoadOptions{DateColumn: "timestamp"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Close"}, frame.Fields())
}

func TestLoadEmptyTable(t *testing.T) {
	frame, err := Load(RawTable{Header: []string{"Date", "Close"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, frame.Len())
	assert.Equal(t, []string{"Close"}, frame.Fields())
}
