// Package palette counts exact colors in a raw pixel buffer and ranks them.
//
// The pipeline has three stages, each consuming the previous one's output:
//
//  1. Sampler walks an interleaved channel buffer (R, G, B, then any extra
//     channels) at a configurable pixel stride and yields Color values.
//  2. BuildHistogram drains a Sampler into a Histogram of per-color counts.
//  3. TopK sorts the histogram by count and truncates it.
//
// # Exact Colors
//
// Colors are never quantized or clustered. Two pixels fall into the same
// histogram bucket only when all three channels are identical.
//
// # Ordering
//
// Ties in count are broken by ColorKey ascending, so rankings are reproducible
// regardless of map iteration order.
//
// # Thread Safety
//
// A Sampler is single-use and not safe for concurrent use. Histograms built
// independently (for example over disjoint slices of one buffer) can be
// combined with Merge; the result does not depend on merge order.
package palette
