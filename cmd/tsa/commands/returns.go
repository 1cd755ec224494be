package commands

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/tsframe/align"
	"github.com/sartorproj/tsframe/returns"
)

var (
	returnsField     string
	returnsLag       int
	returnsAlignWith string
	returnsKeepNaN   bool
)

var returnsCmd = &cobra.Command{
	Use:   "returns <dataset>",
	Short: "Percentage change of a field, optionally differenced",
	Long: `Writes the percentage change of --field as CSV, with undefined
positions removed. --align-with first restricts the dataset to the dates it
shares with another one. --lag then differences the returns: a positive lag
looks back, a negative lag looks ahead.

Example:
  tsa returns AMZN.csv --field Close --align-with BMW.csv --lag 2`,
	Args: cobra.ExactArgs(1),
	RunE: runReturns,
}

func init() {
	returnsCmd.Flags().StringVar(&returnsField, "field", "Close", "field to compute returns on")
	returnsCmd.Flags().IntVar(&returnsLag, "lag", 0, "difference the returns at this lag (negative for a lead)")
	returnsCmd.Flags().StringVar(&returnsAlignWith, "align-with", "", "dataset to align dates with first")
	returnsCmd.Flags().BoolVar(&returnsKeepNaN, "keep-nan", false, "keep undefined returns")
	rootCmd.AddCommand(returnsCmd)
}

func runReturns(cmd *cobra.Command, args []string) error {
	names := []string{args[0]}
	if returnsAlignWith != "" {
		names = append(names, returnsAlignWith)
	}
	frames, err := loadFrames(cmd.Context(), names...)
	if err != nil {
		return err
	}
	f := frames[0]
	if len(frames) == 2 {
		f, _ = align.TruncateToCommon(f, frames[1])
		log.WithFields(map[string]interface{}{"with": frames[1].Name(), "rows": f.Len()}).Debug("dates aligned")
	}

	r, err := returns.PercentChange(f, returnsField)
	if err != nil {
		return err
	}
	if !returnsKeepNaN {
		r = returns.DropNaN(r)
	}
	if returnsLag != 0 {
		if r, err = returns.Diff(r, returnsLag); err != nil {
			return err
		}
	}
	return r.WriteCSV(cmd.OutOrStdout())
}
