package commands

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sartorproj/tsframe/returns"
	"github.com/sartorproj/tsframe/timeseries"
)

var (
	exportOut     string
	exportReturns bool
)

// PlotSeries is one line of a chart: dates and values of equal length.
// Nulls are exported as JSON null.
type PlotSeries struct {
	Dataset string     `json:"dataset"`
	Name    string     `json:"name"`
	Dates   []string   `json:"dates"`
	Values  []*float64 `json:"values"`
}

// PlotData is the document written by export.
type PlotData struct {
	Series []PlotSeries `json:"series"`
}

var exportCmd = &cobra.Command{
	Use:   "export <dataset>...",
	Short: "Write datasets as JSON for a charting tool",
	Long: `Writes every field of every dataset as a {dates, values} pair. With
--returns, the percentage change of each field is added.

Example:
  tsa export AMZN.csv BMW.csv --returns --out plot.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: stdout)")
	exportCmd.Flags().BoolVar(&exportReturns, "returns", false, "include percentage change series")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	frames, err := loadFrames(cmd.Context(), args...)
	if err != nil {
		return err
	}

	var doc PlotData
	for _, f := range frames {
		for _, field := range f.Fields() {
			col, err := f.Column(field)
			if err != nil {
				return err
			}
			doc.Series = append(doc.Series, toPlot(f.Name(), col))
			if exportReturns {
				r, err := returns.PercentChange(f, field)
				if err != nil {
					return err
				}
				doc.Series = append(doc.Series, toPlot(f.Name(), returns.DropNaN(r)))
			}
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if exportOut == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return err
	}
	log.WithFields(map[string]interface{}{"path": exportOut, "series": len(doc.Series)}).Info("plot data exported")
	return nil
}

// toPlot converts a series for JSON, NaN becoming null.
func toPlot(dataset string, s *timeseries.Series) PlotSeries {
	p := PlotSeries{
		Dataset: dataset,
		Name:    s.Name,
		Dates:   make([]string, len(s.Values)),
		Values:  make([]*float64, len(s.Values)),
	}
	for i, v := range s.Values {
		p.Dates[i] = s.Timestamps[i].Format(time.DateOnly)
		if !math.IsNaN(v) {
			v := v
			p.Values[i] = &v
		}
	}
	return p
}
