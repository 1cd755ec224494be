// Package commands implements the tsa command line.
package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sartorproj/tsframe/internal/catalog"
	"github.com/sartorproj/tsframe/internal/config"
	"github.com/sartorproj/tsframe/internal/logger"
	"github.com/sartorproj/tsframe/timeseries"
)

var (
	// Global flags
	configFile string
	verbose    bool
	dateFormat string
	dateColumn string
	keepNulls  bool

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tsa",
	Short: "Explore and compare date-indexed price series",
	Long: `tsa loads date-indexed CSV or XLSX price data and runs the usual
exploratory steps on it: slicing, descriptive statistics, resampling,
returns, and comparing the dates of two series.

A dataset argument is either a name from the config file or a file path.

Examples:
  tsa describe MSFT.csv --field "Adj Close"
  tsa slice MSFT.csv --from 2013-01 --to 2014-07
  tsa compare MSFT.csv AMZN.csv --list
  tsa returns AMZN.csv --field Close --align-with BMW.csv --lag -1
  tsa resample MSFT.csv --field "Adj Close" --period M --reducer median`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&dateFormat, "date-format", "", `date format, Go layout or strftime (e.g. "%m/%d/%Y"); auto-detected when empty`)
	rootCmd.PersistentFlags().StringVar(&dateColumn, "date-column", "", "name of the date column")
	rootCmd.PersistentFlags().BoolVar(&keepNulls, "keep-nulls", false, "keep rows with missing values")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}
	if dateFormat != "" {
		cfg.Data.DateFormat = dateFormat
	}
	if dateColumn != "" {
		cfg.Data.DateColumn = dateColumn
	}
	if keepNulls {
		cfg.Data.DropNulls = false
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	log = logger.New(cfg.Log).WithField("command", cmd.Name())
	return nil
}

// loadFrames resolves each argument to a configured dataset or a file path
// and loads them concurrently. Frames are returned in argument order.
func loadFrames(ctx context.Context, args ...string) ([]*timeseries.Frame, error) {
	datasets := make([]config.Dataset, len(args))
	used := make(map[string]bool, len(args))
	for i, arg := range args {
		ds, ok := cfg.Dataset(arg)
		if !ok {
			ds = config.Dataset{Name: strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg)), Path: arg}
		}
		if used[ds.Name] {
			ds.Name = fmt.Sprintf("%s#%d", ds.Name, i+1)
		}
		used[ds.Name] = true
		datasets[i] = ds
	}

	c, err := catalog.Load(ctx, datasets, cfg.Data, log)
	if err != nil {
		return nil, err
	}
	frames := make([]*timeseries.Frame, len(datasets))
	for i, ds := range datasets {
		if frames[i], err = c.Get(ds.Name); err != nil {
			return nil, err
		}
	}
	return frames, nil
}
