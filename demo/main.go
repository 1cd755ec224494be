// Package main walks through loading, cleaning, comparing, resampling and
// differencing two stock price histories, then exports the results as JSON
// for plotting.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sartorproj/tsframe/align"
	"github.com/sartorproj/tsframe/internal/catalog"
	"github.com/sartorproj/tsframe/internal/config"
	"github.com/sartorproj/tsframe/internal/logger"
	"github.com/sartorproj/tsframe/resample"
	"github.com/sartorproj/tsframe/returns"
	"github.com/sartorproj/tsframe/timeseries"
)

// Walkthrough configuration: the two datasets compared and the field used.
const (
	primary   = "MSFT"
	secondary = "AMZN"
	field     = "Close"
)

// SeriesResult is one chartable line.
type SeriesResult struct {
	Name   string    `json:"name"`
	Dates  []string  `json:"dates"`
	Values []float64 `json:"values"`
}

// DatasetResult holds analysis results for a dataset
type DatasetResult struct {
	Name      string             `json:"name"`
	NObs      int                `json:"n_obs"`
	Mean      map[string]float64 `json:"mean"`
	Min       map[string]float64 `json:"min"`
	Max       map[string]float64 `json:"max"`
	MinDates  []string           `json:"min_dates"`
	MaxDates  []string           `json:"max_dates"`
	Price     SeriesResult       `json:"price"`
	Returns   SeriesResult       `json:"returns"`
	Monthly   []SeriesResult     `json:"monthly"`
	Yearly    []SeriesResult     `json:"yearly"`
	FiveDay   SeriesResult       `json:"five_day"`
	DiffLag1  SeriesResult       `json:"diff_lag1"`
	DiffLead1 SeriesResult       `json:"diff_lead1"`
}

// OutputData holds all results for visualization
type OutputData struct {
	Datasets    []DatasetResult `json:"datasets"`
	CommonDates int             `json:"common_dates"`
	OnlyPrimary []string        `json:"only_primary"`
	OnlySecond  []string        `json:"only_secondary"`
}

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("tsframe walkthrough - load, clean, compare, resample, returns")
	fmt.Println(strings.Repeat("=", 80))

	cfg, err := config.Load(os.Getenv("TSA_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log).WithField("program", "demo")

	dataDir := findDataDir()
	if dataDir == "" {
		log.Error("data directory with MSFT.csv and AMZN.csv not found")
		os.Exit(1)
	}
	fmt.Printf("\nData directory: %s\n", dataDir)

	datasets := []config.Dataset{
		{Name: primary, Path: filepath.Join(dataDir, primary+".csv")},
		{Name: secondary, Path: filepath.Join(dataDir, secondary+".csv")},
	}
	cat, err := catalog.Load(context.Background(), datasets, cfg.Data, log)
	if err != nil {
		log.WithError(err).Error("loading datasets failed")
		os.Exit(1)
	}
	a, _ := cat.Get(primary)
	b, _ := cat.Get(secondary)

	section("DATE COMPARISON")
	common := align.CommonDates(a, b)
	onlyB := align.DateDifference(a, b) // secondary minus primary
	onlyA := align.DateDifference(b, a)
	fmt.Printf("Common dates: %d, only in %s: %d, only in %s: %d\n",
		len(common), secondary, len(onlyB), primary, len(onlyA))

	a, b = align.TruncateToCommon(a, b)
	rs := resample.Resampler{WeekEnd: cfg.Data.Weekday()}

	output := OutputData{
		CommonDates: len(common),
		OnlyPrimary: dateStrings(onlyA),
		OnlySecond:  dateStrings(onlyB),
	}
	for _, f := range []*timeseries.Frame{a, b} {
		section(f.Name())
		result, err := analyze(f, rs)
		if err != nil {
			log.WithError(err).WithField("dataset", f.Name()).Warn("analysis skipped")
			continue
		}
		output.Datasets = append(output.Datasets, *result)
	}

	section("EXPORTING RESULTS")
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.WithError(err).Error("encoding results failed")
		os.Exit(1)
	}
	if err := os.WriteFile("analysis_results.json", data, 0644); err != nil {
		log.WithError(err).Error("writing results failed")
		os.Exit(1)
	}
	fmt.Printf("Exported %d datasets to analysis_results.json\n", len(output.Datasets))
	fmt.Println(strings.Repeat("=", 80))
}

// analyze runs the descriptive steps on one aligned frame.
func analyze(f *timeseries.Frame, rs resample.Resampler) (*DatasetResult, error) {
	mean, err := f.Mean()
	if err != nil {
		return nil, err
	}
	lo, err := f.Min()
	if err != nil {
		return nil, err
	}
	hi, err := f.Max()
	if err != nil {
		return nil, err
	}
	lows, err := f.ArgMin(field)
	if err != nil {
		return nil, err
	}
	highs, err := f.ArgMax(field)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Rows: %d  mean %s: %.4f  min at %s  max at %s\n",
		f.Len(), field, mean[field], strings.Join(dateStrings(lows), ","), strings.Join(dateStrings(highs), ","))

	above, err := f.Where(field, func(v float64) bool { return v > mean[field] })
	if err != nil {
		return nil, err
	}
	if r, err := timeseries.ParseDateRange("2013", "2013"); err == nil {
		fmt.Printf("Days above mean: %d  rows in 2013: %d\n", above.Len(), f.Slice(r).Len())
	}

	price, err := f.Column(field)
	if err != nil {
		return nil, err
	}
	pct, err := returns.PercentChange(f, field)
	if err != nil {
		return nil, err
	}
	pct = returns.DropNaN(pct)
	lag1, err := returns.Diff(pct, 1)
	if err != nil {
		return nil, err
	}
	lead1, err := returns.Diff(pct, -1)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Returns: %d  mean %.6f\n", pct.Len(), pct.Mean())

	result := &DatasetResult{
		Name:      f.Name(),
		NObs:      f.Len(),
		Mean:      finite(mean),
		Min:       finite(lo),
		Max:       finite(hi),
		MinDates:  dateStrings(lows),
		MaxDates:  dateStrings(highs),
		Price:     toResult(price),
		Returns:   toResult(pct),
		DiffLag1:  toResult(lag1),
		DiffLead1: toResult(lead1),
	}

	for _, red := range []resample.Reducer{resample.Mean, resample.Median} {
		s, err := rs.Resample(f, field, resample.Month, red)
		if err != nil {
			return nil, err
		}
		result.Monthly = append(result.Monthly, toResult(s))
	}
	fmt.Printf("Monthly buckets: %d\n", len(result.Monthly[0].Dates))

	fiveDay, err := rs.Resample(f, field, resample.Days(5), resample.First)
	if err != nil {
		return nil, err
	}
	result.FiveDay = toResult(fiveDay)

	// Yearly extremes of the returns, for marking on the returns plot.
	rf, err := timeseries.NewFrame(pct.Timestamps, timeseries.Field{Name: "returns", Values: pct.Values})
	if err != nil {
		return nil, err
	}
	for _, red := range []resample.Reducer{resample.Max, resample.Min, resample.Mean} {
		s, err := rs.Resample(rf, "returns", resample.Year, red)
		if err != nil {
			return nil, err
		}
		result.Yearly = append(result.Yearly, toResult(s))
	}
	return result, nil
}

// finite drops the fields whose statistic is NaN, which JSON cannot encode.
func finite(stats map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(stats))
	for name, v := range stats {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[name] = v
	}
	return out
}

// toResult drops NaN points, which JSON cannot encode.
func toResult(s *timeseries.Series) SeriesResult {
	r := SeriesResult{Name: s.Name}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		r.Dates = append(r.Dates, s.Timestamps[i].Format(time.DateOnly))
		r.Values = append(r.Values, v)
	}
	return r
}

func dateStrings(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(time.DateOnly)
	}
	return out
}

func section(title string) {
	fmt.Printf("\n%s\n%s\n%s\n", strings.Repeat("=", 80), title, strings.Repeat("=", 80))
}

// findDataDir locates the data directory
func findDataDir() string {
	for _, p := range []string{"data", "./data", "../data"} {
		if _, err := os.Stat(filepath.Join(p, primary+".csv")); err == nil {
			return p
		}
	}
	return ""
}
