package palette

// Histogram maps each sampled color to its occurrence count.
// Colors that were never sampled have no entry.
type Histogram map[Color]uint64

// Add records one occurrence of c.
func (h Histogram) Add(c Color) {
	h[c]++
}

// Total returns the sum of all counts.
func (h Histogram) Total() uint64 {
	var n uint64
	for _, cnt := range h {
		n += cnt
	}
	return n
}

// Merge adds every count in other to h.
func (h Histogram) Merge(other Histogram) {
	for c, cnt := range other {
		h[c] += cnt
	}
}

// BuildHistogram drains s and counts each color it yields.
//
// The sum of the returned counts equals s.Count() after the call. An
// exhausted or empty sampler produces an empty, non-nil Histogram.
func BuildHistogram(s *Sampler) Histogram {
	h := make(Histogram)
	for {
		c, ok := s.Next()
		if !ok {
			return h
		}
		h.Add(c)
	}
}
