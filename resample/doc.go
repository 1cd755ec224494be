// Package resample groups a frame into calendar buckets and reduces each
// bucket to a single value.
//
// Buckets are calendar aligned and keyed by their end:
//
//   - Day: each date is its own bucket.
//   - Days(n): runs of n calendar days counted from the first date of the
//     frame, keyed by the start of the run.
//   - Week: weeks end on Resampler.WeekEnd (Sunday by default) and are keyed
//     by that weekday's date, even when no row falls on it.
//   - Month, Year: keyed by the last date present in the month or year.
//
// A period without rows produces no bucket, never a zero or NaN row.
// Reducers ignore nulls; a bucket whose values are all null reduces to NaN.
//
//	monthly, err := resample.Resample(msft, "Adj Close", resample.Month, resample.Median)
//	weekly, err := resample.ResampleFrame(msft, resample.Week, resample.First)
//	summary, err := resample.Aggregate(msft, resample.Week, map[string]resample.Reducer{
//	    "Close": resample.Mean, "High": resample.Max, "Low": resample.Min, "Volume": resample.Sum,
//	})
package resample
