// Command wfc generates a bitmap that locally resembles a sample bitmap,
// using the overlapping Wave Function Collapse model.
//
//	wfc -dir samples -sample Flowers.png -out out/flowers.png -n 3 -ground -preview
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/wfc/overlap"
	"github.com/katalvlaran/wfc/preview"
	"github.com/katalvlaran/wfc/sample"
	"github.com/katalvlaran/wfc/wfc"
	"go.uber.org/zap"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

type config struct {
	dir, sample, out string

	n, symmetry   int
	periodicInput bool

	width, height int
	periodic      bool
	ground        bool
	heuristic     wfc.Heuristic

	seed     int64
	attempts int
	workers  int
	limit    int
	timeout  time.Duration

	preview bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dir, "dir", "samples", "Directory samples are read from and outputs written to")
	flag.StringVar(&cfg.sample, "sample", "", "Sample PNG, relative to -dir")
	flag.StringVar(&cfg.out, "out", "", "Output PNG, relative to -dir (default <sample>.out.png)")
	flag.IntVar(&cfg.n, "n", 3, "Pattern size")
	flag.IntVar(&cfg.symmetry, "symmetry", 8, "Number of dihedral variants per window (1-8)")
	flag.BoolVar(&cfg.periodicInput, "periodic-input", true, "Wrap windows around the sample edges")
	flag.IntVar(&cfg.width, "width", 48, "Output width")
	flag.IntVar(&cfg.height, "height", 48, "Output height")
	flag.BoolVar(&cfg.periodic, "periodic", false, "Wrap the output around its edges")
	flag.BoolVar(&cfg.ground, "ground", false, "Pin the last learnt pattern to the bottom row")
	heuristic := flag.String("heuristic", "entropy", "Cell selection: entropy, mrv or scanline")
	flag.Int64Var(&cfg.seed, "seed", time.Now().UnixNano(), "Parent seed for the attempts")
	flag.IntVar(&cfg.attempts, "attempts", 10, "Maximum number of attempts")
	flag.IntVar(&cfg.workers, "workers", 1, "Attempts run in parallel")
	flag.IntVar(&cfg.limit, "limit", wfc.Unbounded, "Collapse limit per attempt (-1 for none)")
	flag.DurationVar(&cfg.timeout, "timeout", time.Minute, "Stop starting new attempts after this long; a running attempt is not interrupted")
	flag.BoolVar(&cfg.preview, "preview", false, "Show the result in the terminal")
	verbose := flag.Bool("verbose", false, "Log every collapse")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.heuristic, err = wfc.ParseHeuristic(*heuristic); err != nil {
		logger.Fatal("bad flag", zap.Error(err))
	}
	if cfg.sample == "" {
		logger.Fatal("bad flag", zap.String("flag", "sample"), zap.String("reason", "required"))
	}
	if cfg.out == "" {
		cfg.out = cfg.sample + ".out.png"
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// run loads the sample, learns its patterns, solves and saves the output.
func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	store := &sample.Store{FS: osfs.New(cfg.dir)}

	img, err := store.LoadImage(cfg.sample)
	if err != nil {
		return err
	}
	s, err := overlap.FromImage(img)
	if err != nil {
		return err
	}
	set, err := overlap.Extract(s, overlap.Options{
		N:             cfg.n,
		Symmetry:      cfg.symmetry,
		PeriodicInput: cfg.periodicInput,
	})
	if err != nil {
		return err
	}
	logger.Info("patterns extracted",
		zap.String("sample", cfg.sample),
		zap.Int("colors", len(s.Palette)),
		zap.Int("patterns", len(set.Patterns)),
	)

	if !cfg.periodic && (cfg.width < cfg.n || cfg.height < cfg.n) {
		return fmt.Errorf("output %dx%d is smaller than the %dx%d pattern", cfg.width, cfg.height, cfg.n, cfg.n)
	}

	opts := []wfc.Option{
		wfc.WithSize(cfg.width, cfg.height),
		wfc.WithPeriodic(cfg.periodic),
		wfc.WithHeuristic(cfg.heuristic),
		wfc.WithOnCollapse(func(cell, pattern int) {
			logger.Debug("collapse", zap.Int("cell", cell), zap.Int("pattern", pattern))
		}),
		wfc.WithOnContradiction(func(cell int) {
			logger.Debug("contradiction", zap.Int("cell", cell))
		}),
	}
	if cfg.ground {
		opts = append(opts, wfc.WithGround(set.Ground()))
	}
	build := func() (*wfc.Model, error) {
		return set.NewModel(opts...)
	}

	start := time.Now()
	res, err := wfc.Attempts(ctx, build, wfc.AttemptOptions{
		Seed:     cfg.seed,
		Attempts: cfg.attempts,
		Workers:  cfg.workers,
		Limit:    cfg.limit,
	})
	if err != nil {
		return err
	}
	logger.Info("solved",
		zap.Int("attempt", res.Attempt),
		zap.Int64("seed", res.Seed),
		zap.Duration("elapsed", time.Since(start)),
	)

	out := overlap.Render(set, res.Model)
	if err := store.SaveImage(cfg.out, out); err != nil {
		return err
	}
	logger.Info("saved", zap.String("out", cfg.out))

	if cfg.preview {
		return preview.Show(out)
	}

	return nil
}
