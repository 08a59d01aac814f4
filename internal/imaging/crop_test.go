package imaging

import (
	"image/color"
	"testing"
)

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("1, 2,30,40")
	if err != nil {
		t.Fatalf("ParseRegion failed: %v", err)
	}
	want := Region{X1: 1, Y1: 2, X2: 30, Y2: 40}
	if *r != want {
		t.Errorf("got %+v, want %+v", *r, want)
	}
	if r.String() != "1,2,30,40" {
		t.Errorf("String: got %s", r.String())
	}
}

func TestParseRegion_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too few", "1,2,3"},
		{"too many", "1,2,3,4,5"},
		{"not a number", "a,2,3,4"},
		{"x1 equals x2", "5,0,5,10"},
		{"y1 greater than y2", "0,10,5,2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRegion(tt.input); err == nil {
				t.Errorf("ParseRegion(%q) should fail", tt.input)
			}
		})
	}
}

func TestCropRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	cropped, err := CropRegion(img, Region{X1: 0, Y1: 0, X2: 50, Y2: 50})
	if err != nil {
		t.Fatalf("CropRegion failed: %v", err)
	}

	b := cropped.Bounds()
	if b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", b.Dx(), b.Dy())
	}

	r, g, bl, _ := cropped.At(b.Min.X+10, b.Min.Y+10).RGBA()
	if r>>8 != 255 || g>>8 != 0 || bl>>8 != 0 {
		t.Errorf("expected red in top-left crop, got (%d,%d,%d)", r>>8, g>>8, bl>>8)
	}
}

func TestCropRegion_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name   string
		region Region
	}{
		{"x1 negative", Region{-1, 0, 50, 50}},
		{"y1 negative", Region{0, -1, 50, 50}},
		{"x2 too large", Region{0, 0, 101, 50}},
		{"y2 too large", Region{0, 0, 50, 101}},
		{"all out of bounds", Region{-1, -1, 200, 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropRegion(img, tt.region); err == nil {
				t.Error("CropRegion should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestCropRegion_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name   string
		region Region
	}{
		{"x1 equals x2", Region{50, 0, 50, 50}},
		{"y1 equals y2", Region{0, 50, 50, 50}},
		{"x1 greater than x2", Region{60, 0, 50, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropRegion(img, tt.region); err == nil {
				t.Error("CropRegion should fail for invalid region")
			}
		})
	}
}
