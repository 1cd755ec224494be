package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tsframe/timeseries"
)

const msftCSV = `Date,Open,Adj Close
08/06/2012,30.0,25.0
08/07/2012,30.5,
01/02/2013,27.2,23.0
01/03/2013,27.6,23.0
01/04/2013,27.3,24.0
07/07/2014,41.9,38.0
05/05/2015,47.6,44.0
`

const amznCSV = `Date,Close
2013-01-02,100
2013-01-03,110
2013-01-04,99
2013-01-07,100
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	configFile, verbose, dateFormat, dateColumn, keepNulls = "", false, "", "", false
	describeField = ""
	sliceFrom, sliceTo, sliceAt, sliceDrops = "", "", "", nil
	compareList = false
	returnsField, returnsLag, returnsAlignWith, returnsKeepNaN = "Close", 0, "", false
	resampleField, resamplePeriod, resampleReducer = "", "M", "mean"
	exportOut, exportReturns = "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func fixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	msft := filepath.Join(dir, "MSFT.csv")
	amzn := filepath.Join(dir, "AMZN.csv")
	require.NoError(t, os.WriteFile(msft, []byte(msftCSV), 0o644))
	require.NoError(t, os.WriteFile(amzn, []byte(amznCSV), 0o644))
	return msft, amzn
}

func TestDescribe(t *testing.T) {
	msft, _ := fixtures(t)

	out, err := run(t, "describe", msft, "--date-format", "%m/%d/%Y", "--field", "Adj Close")
	require.NoError(t, err)

	assert.Contains(t, out, "MSFT")
	assert.Contains(t, out, "rows          6", "null row dropped")
	assert.Contains(t, out, "2013-01-02, 2013-01-03", "tied minimum dates")
	assert.Contains(t, out, "2015-05-05")
	assert.Contains(t, out, "above mean")
}

func TestSlice(t *testing.T) {
	msft, _ := fixtures(t)

	out, err := run(t, "slice", msft, "--date-format", "%m/%d/%Y", "--from", "2013", "--to", "2014")
	require.NoError(t, err)
	assert.Equal(t, "Date,Open,Adj Close\n2013-01-02,27.2,23\n2013-01-03,27.6,23\n2013-01-04,27.3,24\n2014-07-07,41.9,38\n", out)

	out, err = run(t, "slice", msft, "--date-format", "%m/%d/%Y", "--drop", "2012-08-06", "--to", "2012")
	require.NoError(t, err)
	assert.Equal(t, "Date,Open,Adj Close\n", out)

	_, err = run(t, "slice", msft, "--date-format", "%m/%d/%Y", "--drop", "2012-08-07")
	assert.ErrorIs(t, err, timeseries.ErrKeyNotFound, "null row was already dropped")

	out, err = run(t, "slice", msft, "--date-format", "%m/%d/%Y", "--at", "2015-05-05")
	require.NoError(t, err)
	assert.Contains(t, out, "47.6000")
}

func TestCompare(t *testing.T) {
	msft, amzn := fixtures(t)

	out, err := run(t, "compare", msft, amzn, "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "common        3")
	assert.Contains(t, out, "only in AMZN  1")
	assert.Contains(t, out, "AMZN - MSFT   2013-01-07")

	out, err = run(t, "compare", amzn, amzn)
	require.NoError(t, err)
	assert.Contains(t, out, "common        4")
}

func TestReturns(t *testing.T) {
	_, amzn := fixtures(t)

	out, err := run(t, "returns", amzn, "--field", "Close")
	require.NoError(t, err)
	assert.Contains(t, out, "Date,Close_pct_change\n2013-01-03,0.1\n")

	out, err = run(t, "returns", amzn, "--field", "Close", "--lag", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "2013-01-03,")
	assert.NotContains(t, out, "2013-01-07")

	_, err = run(t, "returns", amzn, "--field", "Volume")
	assert.ErrorIs(t, err, timeseries.ErrKeyNotFound)
}

func TestResample(t *testing.T) {
	_, amzn := fixtures(t)

	out, err := run(t, "resample", amzn, "--field", "Close", "--period", "W", "--reducer", "max")
	require.NoError(t, err)
	assert.Equal(t, "Date,Close_week_max\n2013-01-06,110\n2013-01-13,100\n", out)

	out, err = run(t, "resample", amzn, "--period", "Y", "--reducer", "sum")
	require.NoError(t, err)
	assert.Equal(t, "Date,Close\n2013-01-07,409\n", out)

	out, err = run(t, "resample", amzn, "--field", "Close", "--period", "5D", "--reducer", "first")
	require.NoError(t, err)
	assert.Equal(t, "Date,Close_5days_first\n2013-01-02,100\n2013-01-07,100\n", out)

	_, err = run(t, "resample", amzn, "--period", "Q")
	assert.ErrorIs(t, err, timeseries.ErrInvalidArgument)
}

func TestExport(t *testing.T) {
	_, amzn := fixtures(t)
	outPath := filepath.Join(t.TempDir(), "plot.json")

	_, err := run(t, "export", amzn, "--returns", "--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var doc PlotData
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Series, 2)
	assert.Equal(t, "AMZN", doc.Series[0].Dataset)
	assert.Len(t, doc.Series[0].Dates, 4)
	assert.Equal(t, "Close_pct_change", doc.Series[1].Name)
	assert.Len(t, doc.Series[1].Values, 3)
}

func TestConfiguredDataset(t *testing.T) {
	msft, _ := fixtures(t)
	cfgPath := filepath.Join(t.TempDir(), "tsa.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"datasets:\n  - name: MSFT\n    path: "+msft+"\n    date_format: \"%m/%d/%Y\"\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "describe", "MSFT")
	require.NoError(t, err)
	assert.Contains(t, out, "first date    2012-08-06")
}
