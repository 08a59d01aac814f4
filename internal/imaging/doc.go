// Package imaging decodes image files into flat interleaved RGB buffers.
//
// This package is the boundary between image file formats and the color
// histogram pipeline. It decodes a file, optionally crops and downscales the
// result, and hands back a tightly packed byte slice with three bytes per
// pixel (R, G, B) in row-major order.
//
// # Supported Formats
//
// The format is detected from the file contents, not its extension.
// github.com/disintegration/imaging registers decoders for PNG, JPEG, GIF,
// TIFF and BMP, and WebP is registered from golang.org/x/image. Cropping,
// downscaling and NRGBA conversion also go through imaging. EXIF orientation
// is not applied: the buffer holds the pixels exactly as the file stores them.
//
// # Coordinate System
//
// Regions use 0-based pixel coordinates with the origin at the top-left
// corner. (X1, Y1) is inclusive and (X2, Y2) is exclusive.
//
// # Color Representation
//
// Alpha is dropped. Channel values are the non-premultiplied 8-bit values, so
// a translucent pixel keeps the RGB bytes it was stored with. 16-bit images
// are reduced to their high byte.
//
// # Error Handling
//
// Every failure to produce pixel data (missing file, I/O error, unsupported
// or corrupt format) is reported as a *DecodeError carrying the path and the
// underlying cause.
package imaging
