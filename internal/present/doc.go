// Package present renders ranked colors for people.
//
// Each ranked entry becomes one line of the form
//
//	[swatch ]<display><delimiter><count>
//
// where display is "#RRGGBB", "r:R g:G b:B" or "h:H s:S% l:L%" depending on
// the Mode, and swatch is a colored block drawn with 24-bit terminal escape
// sequences. WriteJSON offers the same data in a machine-readable form.
package present
