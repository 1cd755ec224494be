// Package catalog loads named datasets into frames, several at a time.
package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/tsframe/internal/config"
	"github.com/sartorproj/tsframe/internal/logger"
	"github.com/sartorproj/tsframe/timeseries"
)

// Catalog holds loaded frames by dataset name.
type Catalog struct {
	names  []string
	frames map[string]*timeseries.Frame
}

// Load reads every dataset concurrently, at most data.Workers at a time.
// The first failure cancels the loads still pending and is returned.
func Load(ctx context.Context, datasets []config.Dataset, data config.DataConfig, log *logger.Logger) (*Catalog, error) {
	if log == nil {
		log = logger.Nop()
	}
	frames := make([]*timeseries.Frame, len(datasets))

	g, ctx := errgroup.WithContext(ctx)
	if data.Workers > 0 {
		g.SetLimit(data.Workers)
	}
	for i, ds := range datasets {
		i, ds := i, ds
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := LoadDataset(ds, data, log)
			if err != nil {
				return err
			}
			frames[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Catalog{frames: make(map[string]*timeseries.Frame, len(datasets))}
	for i, ds := range datasets {
		if _, dup := c.frames[ds.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate dataset %q", timeseries.ErrInvalidArgument, ds.Name)
		}
		c.names = append(c.names, ds.Name)
		c.frames[ds.Name] = frames[i]
	}
	return c, nil
}

// LoadDataset reads one dataset. Spreadsheets (.xlsx, .xlsm) go through the
// workbook loader, anything else is read as CSV. Dataset settings take
// precedence over the data defaults. When data.DropNulls is set, rows with a
// null field are removed after loading.
func LoadDataset(ds config.Dataset, data config.DataConfig, log *logger.Logger) (*timeseries.Frame, error) {
	if log == nil {
		log = logger.Nop()
	}
	dlog := log.WithFields(map[string]interface{}{"dataset": ds.Name, "path": ds.Path})

	opts := timeseries.LoadOptions{
		Name:       ds.Name,
		DateColumn: firstNonEmpty(ds.DateColumn, data.DateColumn),
		DateFormat: firstNonEmpty(ds.DateFormat, data.DateFormat),
		Fields:     ds.Fields,
		Logger:     dlog.Zerolog(),
	}

	var (
		frame *timeseries.Frame
		err   error
	)
	switch strings.ToLower(filepath.Ext(ds.Path)) {
	case ".xlsx", ".xlsm":
		frame, err = timeseries.LoadXLSX(ds.Path, &timeseries.XLSXOptions{LoadOptions: opts, Sheet: ds.Sheet})
	default:
		csvOpts := timeseries.DefaultCSVOptions()
		csvOpts.LoadOptions = opts
		frame, err = timeseries.LoadCSV(ds.Path, csvOpts)
	}
	if err != nil {
		dlog.WithError(err).Error("dataset load failed")
		return nil, fmt.Errorf("load %s: %w", ds.Name, err)
	}

	if data.DropNulls {
		before := frame.Len()
		frame = frame.DropNulls()
		if dropped := before - frame.Len(); dropped > 0 {
			dlog.WithField("dropped", dropped).Debug("null rows dropped")
		}
	}
	dlog.WithField("rows", frame.Len()).Info("dataset loaded")
	return frame, nil
}

// Names returns the dataset names in load order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Get returns the frame loaded for name.
func (c *Catalog) Get(name string) (*timeseries.Frame, error) {
	f, ok := c.frames[name]
	if !ok {
		return nil, fmt.Errorf("%w: dataset %q", timeseries.ErrKeyNotFound, name)
	}
	return f, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
