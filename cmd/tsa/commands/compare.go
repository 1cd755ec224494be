package commands

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/tsframe/align"
)

var compareList bool

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compare the dates of two datasets",
	Long: `Counts the dates both datasets share and the dates only one of them
has. "only in b" is b minus a: the days b has that a lacks.

Example:
  tsa compare MSFT.csv AMZN.csv --list`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareList, "list", false, "list the dates unique to each dataset")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	frames, err := loadFrames(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	a, b := frames[0], frames[1]
	w := cmd.OutOrStdout()

	common := align.CommonDates(a, b)
	onlyB := align.DateDifference(a, b)
	onlyA := align.DateDifference(b, a)

	printHeading(w, "%s vs %s", a.Name(), b.Name())
	printKV(w, a.Name()+" rows", a.Len())
	printKV(w, b.Name()+" rows", b.Len())
	printKV(w, "common", len(common))
	printKV(w, "only in "+b.Name(), len(onlyB))
	printKV(w, "only in "+a.Name(), len(onlyA))

	if compareList {
		printKV(w, b.Name()+" - "+a.Name(), formatDates(onlyB))
		printKV(w, a.Name()+" - "+b.Name(), formatDates(onlyA))
	}
	return nil
}
