// Package timeseries provides date-indexed data structures and loaders.
//
// A Frame is a table of numeric fields (Open, Close, Volume, ...) indexed by
// unique, ascending calendar dates. A Series is a single derived sequence of
// values keyed by date, such as returns or a resampled field. Neither is
// modified after construction: slicing, dropping rows and every other
// transformation returns a new value.
//
// # Loading
//
// Load a CSV file whose Date column uses US month/day/year dates:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.DateFormat = "%m/%d/%Y" // or the Go layout "01/02/2006"
//	msft, err := timeseries.LoadCSV("MSFT.csv", opts)
//
// Without a DateFormat the first layout of DateLayouts that parses every
// date is used. A date that cannot be parsed fails the whole load with a
// *ParseError; rows are never dropped silently. Spreadsheets load through
// LoadXLSX, and any other source can build a RawTable and call Load.
//
// # Cleaning and Selection
//
//	clean := msft.DropNulls()
//	clean, err = clean.DropDate(timeseries.Date(2012, time.August, 6))
//
//	r, _ := timeseries.ParseDateRange("2013-01", "2014-07")
//	sub := clean.Slice(r)
//	row, err := clean.At(timeseries.Date(2015, time.May, 5))
//
// # Descriptive Statistics
//
//	means, err := clean.Mean()
//	lows, err := clean.ArgMin("Adj Close")
//	above, err := clean.Where("Adj Close", func(v float64) bool { return v > means["Adj Close"] })
//
// # Errors
//
// Failures match ErrParse, ErrKeyNotFound, ErrEmptySeries or
// ErrInvalidArgument through errors.Is. The align, returns and resample
// packages report their failures with the same values.
package timeseries
