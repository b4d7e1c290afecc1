// Package lineage wires configuration, demographic tables and tree
// generation behind the interactive query menu.
package lineage

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/katalvlaran/lineage/config"
	"github.com/katalvlaran/lineage/dataset"
	"github.com/katalvlaran/lineage/demography"
	"github.com/katalvlaran/lineage/tree"
)

// ParseConfig overlays command-line flags on base, which normally comes from
// config.Load.
func ParseConfig(fs *flag.FlagSet, args []string, base config.Config) (config.Config, error) {
	cfg := base
	fs.StringVar(&cfg.DataDir, "data", base.DataDir, "directory with the table CSVs (default: embedded dataset)")
	fs.IntVar(&cfg.Horizon, "horizon", base.Horizon, "last birth year to generate")
	fs.TextVar(&cfg.LogLevel, "log-level", base.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", base.LogFormat, "log format (text, json)")
	fs.Func("seed", "random seed for reproducibility (default: time-based)", func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		cfg.Seed = &v
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// Run loads the tables, grows a tree and serves the menu on in/out until the
// user quits or input ends. Logs go to errOut.
func Run(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) error {
	if errOut == nil {
		errOut = io.Discard
	}
	logger, err := cfg.Logger(errOut)
	if err != nil {
		return err
	}
	logger = logger.With("run", uuid.NewString())

	fmt.Fprintln(out, "Reading files...")
	tables, err := loadTables(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}
	logger.Debug("tables loaded", "source", sourceName(cfg.DataDir), "decades", len(tables.Rate))

	opts := []tree.Option{tree.WithLogger(logger), tree.WithHorizon(cfg.Horizon)}
	if cfg.Seed != nil {
		opts = append(opts, tree.WithSeed(*cfg.Seed))
	}
	tr, err := tree.New(tables, opts...)
	if err != nil {
		return err
	}
	if seed, ok := tr.Seed(); ok {
		logger.Info("random source ready", "seed", seed)
	}

	fmt.Fprintln(out, "Generating family tree...")
	if err = tr.Generate(); err != nil {
		return err
	}

	return NewMenu(tr, out).Serve(ctx, in)
}

func loadTables(dir string) (*demography.Tables, error) {
	if dir == "" {
		return demography.Load(dataset.FS())
	}
	return demography.LoadDir(dir)
}

func sourceName(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}
