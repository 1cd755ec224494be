package commands

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/tsframe/resample"
)

var (
	resampleField   string
	resamplePeriod  string
	resampleReducer string
)

var resampleCmd = &cobra.Command{
	Use:   "resample <dataset>",
	Short: "Reduce a dataset per day, week, month or year",
	Long: `Groups rows into calendar periods and reduces each period with one of
first, last, mean, median, max, min or sum. Weeks end on the configured
week_end day (Sunday by default). A day count such as 5D groups runs of
days starting at the first date. Periods without rows are skipped. Without
--field every field is reduced.

Examples:
  tsa resample MSFT.csv --field "Adj Close" --period M --reducer median
  tsa resample MSFT.csv --period W --reducer first
  tsa resample MSFT.csv --period 5D --reducer first`,
	Args: cobra.ExactArgs(1),
	RunE: runResample,
}

func init() {
	resampleCmd.Flags().StringVar(&resampleField, "field", "", "field to reduce (default: all)")
	resampleCmd.Flags().StringVar(&resamplePeriod, "period", "M", "D, W, M, Y or a day count such as 5D")
	resampleCmd.Flags().StringVar(&resampleReducer, "reducer", "mean", "first, last, mean, median, max, min or sum")
	rootCmd.AddCommand(resampleCmd)
}

func runResample(cmd *cobra.Command, args []string) error {
	period, err := resample.ParsePeriod(resamplePeriod)
	if err != nil {
		return err
	}
	reducer, err := resample.ParseReducer(resampleReducer)
	if err != nil {
		return err
	}
	frames, err := loadFrames(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	rs := resample.Resampler{WeekEnd: cfg.Data.Weekday()}
	if resampleField == "" {
		out, err := rs.ResampleFrame(frames[0], period, reducer)
		if err != nil {
			return err
		}
		return out.WriteCSV(cmd.OutOrStdout())
	}
	s, err := rs.Resample(frames[0], resampleField, period, reducer)
	if err != nil {
		return err
	}
	return s.WriteCSV(cmd.OutOrStdout())
}
