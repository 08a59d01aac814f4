package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/ironsheep/image-colors/internal/imaging"
	"github.com/ironsheep/image-colors/internal/palette"
	"github.com/ironsheep/image-colors/internal/present"
)

// DefaultNumColors is the number of colors printed when none is requested.
const DefaultNumColors = 5

// ArgumentError reports unusable command-line input.
type ArgumentError struct {
	Msg string
	Err error
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Config holds everything a run needs.
type Config struct {
	// Path is the image file to analyze.
	Path string

	// NumColors is how many ranked colors to print.
	NumColors int

	// Depth is the sampling stride in pixels; 1 samples every pixel.
	Depth int

	// Swatch prefixes each line with a 24-bit colored block.
	Swatch bool

	// Mode selects hex, rgb or hsl display.
	Mode present.Mode

	// Delimiter goes between color and count. Empty means the default.
	Delimiter string

	// JSON prints a JSON report instead of text lines.
	JSON bool

	// Region restricts sampling to part of the image.
	Region *imaging.Region

	// MaxDimension downscales large images before sampling. 0 disables it.
	MaxDimension int

	// LogLevel overrides the IMAGE_COLORS_LOG_LEVEL environment variable.
	LogLevel string

	ShowVersion bool
	ShowHelp    bool
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		NumColors: DefaultNumColors,
		Depth:     1,
		Mode:      present.ModeHex,
	}
}

// Validate checks the fields ParseArgs cannot check on its own.
func (c *Config) Validate() error {
	if c.Path == "" {
		return &ArgumentError{Msg: "missing required argument <path>"}
	}
	if c.NumColors < 0 {
		return &ArgumentError{Msg: fmt.Sprintf("num-colors must not be negative, got %d", c.NumColors)}
	}
	if c.Depth < 1 {
		return &ArgumentError{
			Msg: "invalid --depth",
			Err: fmt.Errorf("%w: depth must be at least 1, got %d", palette.ErrInvalidArgument, c.Depth),
		}
	}
	if c.MaxDimension < 0 {
		return &ArgumentError{Msg: fmt.Sprintf("max-dim must not be negative, got %d", c.MaxDimension)}
	}
	return nil
}

// ParseArgs builds a Config from command-line arguments (without the program
// name). Flags may appear before, between or after the positional
// <path> and [num-colors] arguments. Flag errors are written to stderr.
//
// An argument that parses as a negative integer is taken as a positional
// value rather than a flag, so "img.png -3" reports a negative num-colors
// instead of an unknown flag.
//
// -h/--help and -v/--version set ShowHelp and ShowVersion and skip
// validation.
func ParseArgs(args []string, stderr io.Writer) (*Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("image-colors", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	fs.IntVar(&cfg.Depth, "depth", cfg.Depth, "sample every Nth pixel")
	fs.IntVar(&cfg.Depth, "d", cfg.Depth, "shorthand for --depth")
	fs.BoolVar(&cfg.Swatch, "colors", false, "show a color swatch before each color")
	fs.BoolVar(&cfg.Swatch, "c", false, "shorthand for --colors")
	rgb := fs.Bool("rgb", false, "display rgb components instead of hex")
	fs.BoolVar(rgb, "r", false, "shorthand for --rgb")
	hsl := fs.Bool("hsl", false, "display hsl instead of hex")
	fs.StringVar(&cfg.Delimiter, "delimiter", "", "text between color and count")
	fs.StringVar(&cfg.Delimiter, "l", "", "shorthand for --delimiter")
	fs.BoolVar(&cfg.JSON, "json", false, "print a JSON report")
	region := fs.String("region", "", "only sample the region x1,y1,x2,y2")
	fs.IntVar(&cfg.MaxDimension, "max-dim", 0, "downscale so neither side exceeds N pixels")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "log level (debug, info, warning, error)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version information")
	fs.BoolVar(&cfg.ShowVersion, "v", false, "shorthand for --version")

	var positional []string
	rest := args
	for {
		if len(rest) > 0 && isNegativeInt(rest[0]) {
			positional = append(positional, rest[0])
			rest = rest[1:]
			continue
		}
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				cfg.ShowHelp = true
				return &cfg, nil
			}
			return nil, &ArgumentError{Msg: "invalid flags", Err: err}
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}

	if cfg.ShowVersion {
		return &cfg, nil
	}

	switch len(positional) {
	case 0:
	case 1:
		cfg.Path = positional[0]
	case 2:
		cfg.Path = positional[0]
		n, err := strconv.Atoi(positional[1])
		if err != nil {
			return nil, &ArgumentError{Msg: fmt.Sprintf("num-colors must be an integer, got %q", positional[1]), Err: err}
		}
		cfg.NumColors = n
	default:
		return nil, &ArgumentError{Msg: fmt.Sprintf("too many arguments: %v", positional[2:])}
	}

	switch {
	case *rgb && *hsl:
		return nil, &ArgumentError{Msg: "--rgb and --hsl are mutually exclusive"}
	case *rgb:
		cfg.Mode = present.ModeRGB
	case *hsl:
		cfg.Mode = present.ModeHSL
	}

	if *region != "" {
		r, err := imaging.ParseRegion(*region)
		if err != nil {
			return nil, &ArgumentError{Msg: "invalid --region", Err: err}
		}
		cfg.Region = r
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func isNegativeInt(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n < 0
}
