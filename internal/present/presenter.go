package present

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ironsheep/image-colors/internal/palette"
)

// DefaultDelimiter separates the color from its count when Options.Delimiter
// is empty.
const DefaultDelimiter = " has a pixel count of: "

// Mode selects how a color is written.
type Mode int

const (
	// ModeHex writes "#RRGGBB".
	ModeHex Mode = iota
	// ModeRGB writes "r:R g:G b:B" with decimal channels.
	ModeRGB
	// ModeHSL writes "h:H s:S% l:L%" with rounded values.
	ModeHSL
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeHex:
		return "hex"
	case ModeRGB:
		return "rgb"
	case ModeHSL:
		return "hsl"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Options configures a Presenter.
type Options struct {
	// Swatch prefixes each line with a colored block and a space.
	Swatch bool

	// Delimiter goes between the color and its count. Empty means
	// DefaultDelimiter.
	Delimiter string

	// Mode selects the color display.
	Mode Mode

	// Swatcher renders the swatch. Nil means TrueColorSwatch.
	Swatcher Swatcher
}

// Presenter writes ranked colors to an output stream.
type Presenter struct {
	w    io.Writer
	opts Options
}

// New creates a Presenter writing to w.
func New(w io.Writer, opts Options) *Presenter {
	if opts.Delimiter == "" {
		opts.Delimiter = DefaultDelimiter
	}
	if opts.Swatcher == nil {
		opts.Swatcher = TrueColorSwatch
	}
	return &Presenter{w: w, opts: opts}
}

// Format renders a single entry without a trailing newline.
func (p *Presenter) Format(e palette.Entry) string {
	var sb strings.Builder
	if p.opts.Swatch {
		sb.WriteString(p.opts.Swatcher(e.Color, SwatchGlyph))
		sb.WriteByte(' ')
	}
	sb.WriteString(Display(e.Color, p.opts.Mode))
	sb.WriteString(p.opts.Delimiter)
	sb.WriteString(strconv.FormatUint(e.Count, 10))
	return sb.String()
}

// Write prints one line per entry, in the order given.
//
// Parameters:
//   - entries: Ranked colors, usually the output of palette.TopK.
//
// Returns:
//   - error: Non-nil if the underlying writer fails. Lines written before the
//     failure are not retracted.
//
// # Line Format
//
// Each line is Format(e) followed by "\n":
//
//	[swatch ]<display><delimiter><count>
//
// An empty slice writes nothing.
func (p *Presenter) Write(entries []palette.Entry) error {
	for _, e := range entries {
		if _, err := io.WriteString(p.w, p.Format(e)+"\n"); err != nil {
			return fmt.Errorf("failed to write color line: %w", err)
		}
	}
	return nil
}

// Display renders c in the given mode.
func Display(c palette.Color, mode Mode) string {
	switch mode {
	case ModeRGB:
		return fmt.Sprintf("r:%d g:%d b:%d", c.R, c.G, c.B)
	case ModeHSL:
		h, s, l := c.Colorful().Hsl()
		return fmt.Sprintf("h:%d s:%d%% l:%d%%", roundInt(h), roundInt(s*100), roundInt(l*100))
	default:
		return c.Hex()
	}
}

func roundInt(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}

// ColorCount is the JSON form of a ranked entry.
type ColorCount struct {
	Hex        string        `json:"hex"`        // Hex color "#RRGGBB"
	RGB        palette.Color `json:"rgb"`        // RGB components
	Count      uint64        `json:"count"`      // Number of samples with this color
	Percentage float64       `json:"percentage"` // Share of all samples (0-100)
}

// Report is the JSON document written by WriteJSON.
type Report struct {
	Colors       []ColorCount `json:"colors"`        // Colors in ranked order
	TotalSamples uint64       `json:"total_samples"` // Pixels sampled from the image
}

// NewReport builds a Report. total is the number of samples the ranking was
// built from; zero leaves every percentage at 0.
func NewReport(entries []palette.Entry, total uint64) *Report {
	colors := make([]ColorCount, 0, len(entries))
	for _, e := range entries {
		var pct float64
		if total > 0 {
			pct = float64(e.Count) / float64(total) * 100
		}
		colors = append(colors, ColorCount{
			Hex:        e.Color.Hex(),
			RGB:        e.Color,
			Count:      e.Count,
			Percentage: pct,
		})
	}
	return &Report{Colors: colors, TotalSamples: total}
}

// WriteJSON prints entries as a single indented JSON Report.
//
// Parameters:
//   - entries: Ranked colors in the order they should appear.
//   - total: Number of samples the ranking was built from, used for each
//     entry's percentage.
//
// Returns:
//   - error: Non-nil if encoding or writing fails.
//
// # Example Output
//
//	{
//	  "colors": [
//	    {
//	      "hex": "#282C34",
//	      "rgb": {"r": 40, "g": 44, "b": 52},
//	      "count": 3,
//	      "percentage": 75
//	    }
//	  ],
//	  "total_samples": 4
//	}
//
// Swatch, Delimiter and Mode do not affect JSON output.
func (p *Presenter) WriteJSON(entries []palette.Entry, total uint64) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReport(entries, total)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
