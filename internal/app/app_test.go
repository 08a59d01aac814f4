package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/image-colors/internal/imaging"
	"github.com/ironsheep/image-colors/internal/present"
)

// recordingLogger keeps every formatted message.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, "DEBUG "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.lines = append(l.lines, "INFO "+fmt.Sprintf(format, args...))
}

// createEditorImage writes a 2x2 PNG with three (40,44,52) pixels and one red one.
func createEditorImage(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{40, 44, 52, 255})
	img.Set(1, 0, color.RGBA{255, 0, 0, 255})
	img.Set(0, 1, color.RGBA{40, 44, 52, 255})
	img.Set(1, 1, color.RGBA{40, 44, 52, 255})

	path := filepath.Join(t.TempDir(), "editor.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func runApp(t *testing.T, cfg Config) string {
	t.Helper()
	var out bytes.Buffer
	if err := New(cfg, nil, &out).Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func TestRun_Hex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = createEditorImage(t)
	cfg.NumColors = 1

	got := runApp(t, cfg)
	want := "#282C34 has a pixel count of: 3\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRun_RGB(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = createEditorImage(t)
	cfg.NumColors = 1
	cfg.Mode = present.ModeRGB

	got := runApp(t, cfg)
	want := "r:40 g:44 b:52 has a pixel count of: 3\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRun_AllColors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = createEditorImage(t)
	cfg.Delimiter = " "

	got := runApp(t, cfg)
	want := "#282C34 3\n#FF0000 1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRun_ZeroColors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = createEditorImage(t)
	cfg.NumColors = 0

	if got := runApp(t, cfg); got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}

func TestRun_Swatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = createEditorImage(t)
	cfg.NumColors = 1
	cfg.Swatch = true

	got := runApp(t, cfg)
	if !strings.Contains(got, "38;2;40;44;52") {
		t.Errorf("expected a 24-bit swatch in %q", got)
	}
	if !strings.HasSuffix(got, " #282C34 has a pixel count of: 3\n") {
		t.Errorf("unexpected line %q", got)
	}
}

func TestRun_JSON(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = createEditorImage(t)
	cfg.JSON = true

	var report present.Report
	if err := json.Unmarshal([]byte(runApp(t, cfg)), &report); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if report.TotalSamples != 4 {
		t.Errorf("TotalSamples: got %d, want 4", report.TotalSamples)
	}
	if len(report.Colors) != 2 || report.Colors[0].Hex != "#282C34" {
		t.Errorf("unexpected colors: %+v", report.Colors)
	}
}

func TestRun_Region(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = createEditorImage(t)
	cfg.Region = &imaging.Region{X1: 1, Y1: 0, X2: 2, Y2: 1}

	got := runApp(t, cfg)
	want := "#FF0000 has a pixel count of: 1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAnalyze_Depth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = createEditorImage(t)
	cfg.Depth = 2

	res, err := New(cfg, nil, &bytes.Buffer{}).Analyze()
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// Pixels 0 and 2 in row-major order: both (40,44,52).
	if res.Samples != 2 {
		t.Errorf("Samples: got %d, want 2", res.Samples)
	}
	if res.Distinct != 1 || res.Entries[0].Count != 2 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestAnalyze_Logs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = createEditorImage(t)
	logger := &recordingLogger{}

	if _, err := New(cfg, logger, &bytes.Buffer{}).Analyze(); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	joined := strings.Join(logger.lines, "\n")
	if !strings.Contains(joined, "decoded png: 4 pixels (2x2)") {
		t.Errorf("expected decode summary in logs:\n%s", joined)
	}
	if !strings.Contains(joined, "2x2 png") {
		t.Errorf("expected image info in logs:\n%s", joined)
	}
	if !strings.Contains(joined, "INFO sampled 4 pixels at depth 1: 2 distinct colors, showing 2") {
		t.Errorf("expected sampling summary in logs:\n%s", joined)
	}
}

func TestRun_DecodeError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = filepath.Join(t.TempDir(), "missing.png")

	var out bytes.Buffer
	err := New(cfg, nil, &out).Run()
	var de *imaging.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *imaging.DecodeError, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output on error, got %q", out.String())
	}
}

func TestRun_RegionOutsideImage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = createEditorImage(t)
	cfg.Region = &imaging.Region{X1: 0, Y1: 0, X2: 5, Y2: 5}

	err := New(cfg, nil, &bytes.Buffer{}).Run()
	var ae *ArgumentError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *ArgumentError, got %v", err)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = createEditorImage(t)
	cfg.Depth = 0

	err := New(cfg, nil, &bytes.Buffer{}).Run()
	var ae *ArgumentError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *ArgumentError, got %v", err)
	}
}
