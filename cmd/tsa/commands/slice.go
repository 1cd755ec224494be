package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sartorproj/tsframe/timeseries"
)

var (
	sliceFrom  string
	sliceTo    string
	sliceAt    string
	sliceDrops []string
)

var sliceCmd = &cobra.Command{
	Use:   "slice <dataset>",
	Short: "Select rows by date and write them as CSV",
	Long: `Writes the rows between --from and --to (both inclusive) as CSV. Bounds
are a year (2013), a month (2013-01) or a day (2013-01-01). --drop removes
single dates first and fails if a date is not present. --at prints the one
row at a date instead.

Examples:
  tsa slice MSFT.csv --from 2013 --to 2014
  tsa slice MSFT.csv --drop 2012-08-06 --drop 2012-08-07 --from 2012-08
  tsa slice MSFT.csv --at 2015-05-05`,
	Args: cobra.ExactArgs(1),
	RunE: runSlice,
}

func init() {
	sliceCmd.Flags().StringVar(&sliceFrom, "from", "", "first date, year or month (inclusive)")
	sliceCmd.Flags().StringVar(&sliceTo, "to", "", "last date, year or month (inclusive)")
	sliceCmd.Flags().StringVar(&sliceAt, "at", "", "print the row at this date")
	sliceCmd.Flags().StringArrayVar(&sliceDrops, "drop", nil, "date to remove (repeatable)")
	rootCmd.AddCommand(sliceCmd)
}

func runSlice(cmd *cobra.Command, args []string) error {
	frames, err := loadFrames(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	f := frames[0]

	for _, s := range sliceDrops {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return fmt.Errorf("--drop %q: %w", s, timeseries.ErrParse)
		}
		if f, err = f.DropDate(d); err != nil {
			return err
		}
	}

	if sliceAt != "" {
		d, err := time.Parse(time.DateOnly, sliceAt)
		if err != nil {
			return fmt.Errorf("--at %q: %w", sliceAt, timeseries.ErrParse)
		}
		row, err := f.At(d)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		printHeading(w, "%s %s", f.Name(), d.Format(time.DateOnly))
		for _, name := range f.Fields() {
			printKV(w, name, formatFloat(row[name]))
		}
		return nil
	}

	r, err := timeseries.ParseDateRange(sliceFrom, sliceTo)
	if err != nil {
		return err
	}
	sub := f.Slice(r)
	log.WithFields(map[string]interface{}{"range": r.String(), "rows": sub.Len()}).Debug("frame sliced")
	return sub.WriteCSV(cmd.OutOrStdout())
}
