package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fortio.org/log"

	"github.com/ironsheep/image-colors/internal/app"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const usage = `image-colors - list the most common colors of an image

Usage: image-colors [options] <path> [num-colors]

Arguments:
  <path>          Image file (png, jpeg, gif, tiff, bmp, webp)
  [num-colors]    Number of colors to print (default 5)

Options:
  -c, --colors            Show a 24-bit color swatch before each color
  -r, --rgb               Display rgb components instead of hex
      --hsl               Display hsl instead of hex
  -l, --delimiter STR     Text between color and count (default " has a pixel count of: ")
  -d, --depth N           Sample every Nth pixel (default 1)
      --region X1,Y1,X2,Y2
                          Only sample this region
      --max-dim N         Downscale so neither side exceeds N pixels
      --json              Print a JSON report
      --log-level LEVEL   Log level: debug, info, warning, error
  -v, --version           Print version information
  -h, --help              Print this help message

Environment variables:
  IMAGE_COLORS_LOG_LEVEL=debug    Enable debug logging
`

// fortioLogger adapts fortio's package-level logging functions to app.Logger.
type fortioLogger struct{}

func (fortioLogger) Debugf(format string, args ...any) { log.Debugf(format, args...) }
func (fortioLogger) Infof(format string, args ...any)  { log.Infof(format, args...) }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code:
// 0 on success, 2 for argument errors, 1 for everything else.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := app.ParseArgs(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, usage)
		return 2
	}

	if cfg.ShowHelp {
		fmt.Fprint(stdout, usage)
		return 0
	}
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "image-colors %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	}

	if err := configureLogging(cfg.LogLevel); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, usage)
		return 2
	}
	log.Debugf("image-colors %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	log.Debugf("config: %+v", *cfg)

	if err := app.New(*cfg, fortioLogger{}, stdout).Run(); err != nil {
		var ae *app.ArgumentError
		if errors.As(err, &ae) {
			fmt.Fprintf(stderr, "Error: %v\n\n%s", err, usage)
			return 2
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// configureLogging sets the log level from the flag, falling back to
// IMAGE_COLORS_LOG_LEVEL and then to warnings only. Logs go to stderr so
// stdout carries nothing but results.
func configureLogging(level string) error {
	if level == "" {
		level = os.Getenv("IMAGE_COLORS_LOG_LEVEL")
	}
	if level == "" {
		level = "warning"
	}
	if err := log.SetLogLevelStr(level); err != nil {
		return &app.ArgumentError{Msg: "invalid log level", Err: err}
	}
	return nil
}
