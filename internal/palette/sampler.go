package palette

import "fmt"

// MinChannels is the smallest pixel size a Sampler accepts (R, G, B).
const MinChannels = 3

// Sampler yields the colors of a flat interleaved pixel buffer.
//
// Each pixel occupies channels bytes; only the first three (R, G, B) are
// read and anything after them (alpha, padding) is ignored. After each sample
// the read offset advances by channels*depth bytes, so depth 1 visits every
// pixel, depth 2 every other pixel, and so on.
//
// Iteration stops as soon as fewer than three bytes remain at the current
// offset, which means the last complete pixel of the buffer is sampled.
// A Sampler cannot be restarted.
type Sampler struct {
	buf    []byte
	step   int
	offset int
	count  int
}

// NewSampler creates a Sampler over buf.
//
// Parameters:
//   - buf: Interleaved pixel bytes. The buffer is borrowed, not copied, and
//     must not be modified while sampling.
//   - channels: Bytes per pixel in buf (3 for RGB, 4 for RGBA). Only the
//     first three bytes of each pixel are read.
//   - depth: Pixel stride between samples. 1 samples every pixel.
//
// Returns:
//   - *Sampler: A single-use iterator positioned at the first pixel.
//   - error: Wraps ErrInvalidArgument if depth < 1 or channels < 3.
//
// # Large Strides
//
// A depth that steps past the end of buf after the first pixel is clamped,
// so any positive depth is accepted and samples exactly one pixel from a
// non-empty buffer.
func NewSampler(buf []byte, channels, depth int) (*Sampler, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: depth must be at least 1, got %d", ErrInvalidArgument, depth)
	}
	if channels < MinChannels {
		return nil, fmt.Errorf("%w: pixels need at least %d channels, got %d", ErrInvalidArgument, MinChannels, channels)
	}
	if maxDepth := len(buf)/channels + 1; depth > maxDepth {
		depth = maxDepth
	}
	return &Sampler{buf: buf, step: channels * depth}, nil
}

// Next returns the next sampled color. The second result is false once the
// buffer is exhausted.
func (s *Sampler) Next() (Color, bool) {
	if s.offset > len(s.buf)-MinChannels {
		return Color{}, false
	}
	i := s.offset
	c := Color{R: s.buf[i], G: s.buf[i+1], B: s.buf[i+2]}
	if s.step > len(s.buf)-s.offset {
		s.offset = len(s.buf)
	} else {
		s.offset += s.step
	}
	s.count++
	return c, true
}

// Count returns the number of colors emitted so far.
func (s *Sampler) Count() int {
	return s.count
}
