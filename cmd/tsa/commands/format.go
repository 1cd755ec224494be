package commands

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/fatih/color"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	label   = color.New(color.FgYellow)
	muted   = color.New(color.FgHiBlack)
)

func printHeading(w io.Writer, format string, args ...interface{}) {
	heading.Fprintf(w, format+"\n", args...)
}

func printKV(w io.Writer, key string, value interface{}) {
	label.Fprintf(w, "  %-14s", key)
	fmt.Fprintln(w, value)
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatDates(dates []time.Time) string {
	if len(dates) == 0 {
		return muted.Sprint("(none)")
	}
	out := ""
	for i, d := range dates {
		if i > 0 {
			out += ", "
		}
		out += d.Format(time.DateOnly)
	}
	return out
}

// printStats writes one line per field with the value of every reduction.
func printStats(w io.Writer, fields []string, stats map[string]map[string]float64, order []string) {
	label.Fprintf(w, "  %-14s", "field")
	for _, name := range order {
		label.Fprintf(w, "%14s", name)
	}
	fmt.Fprintln(w)
	for _, f := range fields {
		fmt.Fprintf(w, "  %-14s", f)
		for _, name := range order {
			fmt.Fprintf(w, "%14s", formatFloat(stats[name][f]))
		}
		fmt.Fprintln(w)
	}
}
