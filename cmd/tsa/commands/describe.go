package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sartorproj/tsframe/timeseries"
)

var describeField string

var describeCmd = &cobra.Command{
	Use:   "describe <dataset>",
	Short: "Descriptive statistics of every field",
	Long: `Prints the row count, date span and mean, median, min and max of every
field. With --field, also lists the dates holding that field's minimum and
maximum, and how many rows lie above its mean.

Example:
  tsa describe MSFT.csv --field "Adj Close"`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().StringVar(&describeField, "field", "", "field for argmin/argmax")
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	frames, err := loadFrames(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	f := frames[0]
	w := cmd.OutOrStdout()

	printHeading(w, "%s", f.Name())
	printKV(w, "rows", f.Len())
	if f.Len() == 0 {
		return nil
	}
	idx := f.Index()
	printKV(w, "first date", idx[0].Format(time.DateOnly))
	printKV(w, "last date", idx[len(idx)-1].Format(time.DateOnly))
	fmt.Fprintln(w)

	stats := make(map[string]map[string]float64)
	reductions := []struct {
		name string
		fn   func() (map[string]float64, error)
	}{
		{"mean", f.Mean},
		{"median", f.Median},
		{"min", f.Min},
		{"max", f.Max},
	}
	order := make([]string, 0, len(reductions))
	for _, r := range reductions {
		values, err := r.fn()
		if err != nil {
			return err
		}
		stats[r.name] = values
		order = append(order, r.name)
	}
	printStats(w, f.Fields(), stats, order)

	if describeField == "" {
		return nil
	}
	return describeExtremes(cmd, f, describeField, stats["mean"][describeField])
}

func describeExtremes(cmd *cobra.Command, f *timeseries.Frame, field string, mean float64) error {
	w := cmd.OutOrStdout()
	lows, err := f.ArgMin(field)
	if err != nil {
		return err
	}
	highs, err := f.ArgMax(field)
	if err != nil {
		return err
	}
	above, err := f.Where(field, func(v float64) bool { return v > mean })
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	printHeading(w, "%s", field)
	printKV(w, "min at", formatDates(lows))
	printKV(w, "max at", formatDates(highs))
	printKV(w, "above mean", fmt.Sprintf("%d of %d rows", above.Len(), f.Len()))
	return nil
}
