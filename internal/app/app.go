package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ironsheep/image-colors/internal/imaging"
	"github.com/ironsheep/image-colors/internal/palette"
	"github.com/ironsheep/image-colors/internal/present"
)

// Logger is the logging surface the pipeline needs.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}

// App runs the color extraction pipeline for one image.
type App struct {
	cfg Config
	log Logger
	out io.Writer
}

// New creates an App writing results to out. A nil logger discards logs.
func New(cfg Config, logger Logger, out io.Writer) *App {
	if logger == nil {
		logger = nopLogger{}
	}
	return &App{cfg: cfg, log: logger, out: out}
}

// Result is what a run produced before formatting.
type Result struct {
	Entries  []palette.Entry
	Samples  int
	Distinct int
}

// Analyze decodes the image and ranks its colors without printing anything.
//
// Returns:
//   - *Result: The top Config.NumColors entries plus sampling statistics.
//   - error: An *ArgumentError for an invalid Config (including a region
//     that does not fit the image), or an *imaging.DecodeError when the file
//     cannot be read or decoded.
//
// # Pipeline
//
//  1. Read the image header for debug logging (failures are ignored here and
//     reported by the decode step).
//  2. Decode, crop and downscale to a packed RGB buffer.
//  3. Sample every Config.Depth-th pixel into a histogram.
//  4. Rank the histogram and keep the top Config.NumColors entries.
func (a *App) Analyze() (*Result, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	if info, err := imaging.Info(a.cfg.Path); err == nil {
		a.log.Debugf("%s: %dx%d %s, %d bytes", a.cfg.Path, info.Width, info.Height, info.Format, info.FileSizeBytes)
	}

	px, err := imaging.Load(a.cfg.Path, imaging.LoadOptions{
		Region:       a.cfg.Region,
		MaxDimension: a.cfg.MaxDimension,
	})
	if err != nil {
		var de *imaging.DecodeError
		if errors.As(err, &de) {
			return nil, err
		}
		return nil, &ArgumentError{Msg: "invalid --region", Err: err}
	}
	a.log.Debugf("decoded %s: %d pixels (%dx%d) in %s", px.Format, px.Len(), px.Width, px.Height, time.Since(start))

	sampler, err := palette.NewSampler(px.Pix, px.Channels, a.cfg.Depth)
	if err != nil {
		return nil, &ArgumentError{Msg: "invalid --depth", Err: err}
	}
	hist := palette.BuildHistogram(sampler)
	entries := palette.TopK(hist, a.cfg.NumColors)

	a.log.Infof("sampled %d pixels at depth %d: %d distinct colors, showing %d",
		sampler.Count(), a.cfg.Depth, len(hist), len(entries))

	return &Result{
		Entries:  entries,
		Samples:  sampler.Count(),
		Distinct: len(hist),
	}, nil
}

// Run analyzes the image and prints the ranked colors.
func (a *App) Run() error {
	res, err := a.Analyze()
	if err != nil {
		return err
	}

	p := present.New(a.out, present.Options{
		Swatch:    a.cfg.Swatch,
		Delimiter: a.cfg.Delimiter,
		Mode:      a.cfg.Mode,
	})
	if a.cfg.JSON {
		err = p.WriteJSON(res.Entries, uint64(res.Samples))
	} else {
		err = p.Write(res.Entries)
	}
	if err != nil {
		return fmt.Errorf("failed to print colors: %w", err)
	}
	return nil
}
