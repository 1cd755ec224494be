// Package returns derives percentage change and lagged difference series.
//
// Returns are computed positionally: the predecessor of a row is the
// previous row of the frame, not the previous calendar day, so a weekend or
// holiday gap is treated as adjacent trading days.
//
//	r, err := returns.PercentChange(amzn, "Close")
//	r = returns.DropNaN(r)
//
//	lag1, err := returns.Diff(r, 1)   // r[t] - r[t-1]
//	lead1, err := returns.Diff(r, -1) // r[t] - r[t+1]
package returns
