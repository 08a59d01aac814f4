// Package app wires the color extraction pipeline together.
//
// It turns command-line arguments into a Config, validates it, and runs
// decode → sample → histogram → rank → print in a single synchronous pass.
//
// # Error Handling
//
// Problems with the arguments are reported as *ArgumentError so callers can
// print usage and exit with a distinct status. Decode failures surface as
// *imaging.DecodeError. Nothing is written to the output until ranking has
// finished, so a failed run produces no partial results.
//
// # Logging
//
// Progress is reported through the Logger interface passed to New. The
// package never configures or reaches for a global logger.
package app
