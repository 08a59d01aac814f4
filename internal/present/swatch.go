package present

import (
	"fortio.org/terminal/ansipixels/tcolor"

	"github.com/ironsheep/image-colors/internal/palette"
)

// SwatchGlyph is the block drawn in front of each color.
const SwatchGlyph = "█"

// Swatcher wraps glyph in whatever escape sequences paint it as c.
type Swatcher func(c palette.Color, glyph string) string

// TrueColorSwatch paints glyph with a 24-bit foreground color and resets the
// terminal attributes after it.
func TrueColorSwatch(c palette.Color, glyph string) string {
	return tcolor.RGBColor{R: c.R, G: c.G, B: c.B}.Foreground() + glyph + tcolor.Reset
}
