package palette

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidArgument is returned for parameters the pipeline cannot work with,
// such as a zero sampling depth.
var ErrInvalidArgument = errors.New("invalid argument")

// Color is an exact 24-bit RGB triple.
//
// Color is comparable and is used directly as a histogram key.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// ColorKey packs a Color as 0x00RRGGBB.
type ColorKey uint32

// Key returns the packed form of c.
func (c Color) Key() ColorKey {
	return ColorKey(c.R)<<16 | ColorKey(c.G)<<8 | ColorKey(c.B)
}

// ColorFromKey unpacks k. Bits above the low 24 are ignored.
func ColorFromKey(k ColorKey) Color {
	return Color{R: uint8(k >> 16), G: uint8(k >> 8), B: uint8(k)}
}

// Hex returns c as "#RRGGBB" with uppercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c.Key()))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Colorful converts c to a go-colorful value for color space conversions.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
