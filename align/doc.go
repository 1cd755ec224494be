// Package align compares the date indices of two frames.
//
// Two price histories rarely cover the same days: listings start at
// different times, exchanges close on different holidays. Before comparing
// them positionally, restrict both to the dates they share:
//
//	amzn, bmw = align.TruncateToCommon(amzn, bmw)
//
// DateDifference is asymmetric. DateDifference(msft, amzn) lists the days
// present in amzn but missing from msft:
//
//	extra := align.DateDifference(msft, amzn) // amzn minus msft
package align
