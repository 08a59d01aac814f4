package imaging

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Channels is the number of bytes per pixel in Pixels.Pix.
const Channels = 3

// DecodeError reports that an image file could not be turned into pixel data.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Pixels is a decoded image flattened to interleaved channel bytes.
type Pixels struct {
	// Pix holds Channels bytes per pixel (R, G, B), rows top to bottom.
	Pix []byte

	// Channels is the number of bytes per pixel in Pix.
	Channels int

	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Format is the decoder's format name ("png", "jpeg", "gif", "webp", ...),
	// detected from the file contents. Empty for images that did not come
	// from a file.
	Format string
}

// Len returns the number of pixels in p.
func (p *Pixels) Len() int {
	return p.Width * p.Height
}

// LoadOptions controls what part of an image Load returns.
type LoadOptions struct {
	// Region restricts the pixels to a rectangle. Nil means the whole image.
	Region *Region

	// MaxDimension downscales the image (after cropping) so neither side
	// exceeds it. Zero or negative disables downscaling.
	MaxDimension int
}

// Load decodes the image at path and returns its pixels.
//
// Parameters:
//   - path: Path to the image file.
//   - opts: Optional region crop and downscale applied after decoding.
//
// Returns:
//   - *Pixels: Packed RGB pixel data and the detected file format.
//   - error: A *DecodeError if the file cannot be read or decoded, or a plain
//     error if opts.Region does not fit inside the image.
//
// # Downscaling
//
// Downscaling uses nearest-neighbor resampling so every output pixel is a
// color that exists in the source image. Interpolating filters would blend
// neighbors and invent colors the histogram would then count.
func Load(path string, opts LoadOptions) (*Pixels, error) {
	img, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	if opts.Region != nil {
		img, err = CropRegion(img, *opts.Region)
		if err != nil {
			return nil, err
		}
	}

	if opts.MaxDimension > 0 {
		b := img.Bounds()
		if b.Dx() > opts.MaxDimension || b.Dy() > opts.MaxDimension {
			img = imaging.Fit(img, opts.MaxDimension, opts.MaxDimension, imaging.NearestNeighbor)
		}
	}

	px := FromImage(img)
	px.Format = format
	return px, nil
}

// decodeFile decodes path with whichever registered decoder matches its
// contents. Decoders for PNG, JPEG, GIF, TIFF and BMP are registered by
// github.com/disintegration/imaging, WebP by golang.org/x/image/webp.
func decodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}
	return img, format, nil
}

// FromImage flattens img into packed RGB bytes.
func FromImage(img image.Image) *Pixels {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()

	pix := make([]byte, 0, w*h*Channels)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			pix = append(pix, row[i], row[i+1], row[i+2])
		}
	}

	return &Pixels{
		Pix:      pix,
		Channels: Channels,
		Width:    w,
		Height:   h,
	}
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format name reported by the registered decoder,
	// e.g. "png", "jpeg", "gif", "webp".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Info reads an image header without decoding pixel data.
//
// Failures are reported as *DecodeError.
func Info(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("failed to stat file: %w", err)}
	}

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return &ImageInfo{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
