// Package tsframe loads, aligns and compares date-indexed numeric tables.
//
// It targets daily price histories such as stock quotes: a table keyed by
// calendar date with one column per quantity (Open, High, Low, Close and
// so on). Missing cells are represented as NaN.
//
// # Features
//
//   - Loading from CSV and Excel workbooks with explicit or detected date formats
//   - Dropping nulls and dates, slicing by date range, filtering by predicate
//   - Per-field mean, median, min, max and argmin/argmax
//   - Common dates, date difference and truncation of two tables
//   - Percentage change and lag/lead differencing
//   - Resampling by day, week, month or year with a choice of reducer
//
// # Quick Start
//
//	frame, _ := timeseries.LoadCSV("MSFT.csv", timeseries.DefaultCSVOptions())
//	frame = frame.DropNulls()
//	pct, _ := returns.PercentChange(frame, "Close")
//	monthly, _ := resample.Resample(frame, "Close", resample.Month, resample.Mean)
//
// # Packages
//
//   - timeseries: Series, Frame, loaders and descriptive statistics
//   - align: Comparing and truncating the date indexes of two frames
//   - returns: Percentage change, NaN filtering and differencing
//   - resample: Calendar bucketing and reduction
//
// The tsa command in cmd/tsa exposes the same operations from the shell.
package tsframe
