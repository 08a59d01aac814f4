package palette

import "sort"

// Entry is one ranked histogram bucket.
type Entry struct {
	Color Color  `json:"color"`
	Count uint64 `json:"count"`
}

// Rank returns every histogram entry ordered by count descending, with ties
// broken by ColorKey ascending.
func Rank(h Histogram) []Entry {
	entries := make([]Entry, 0, len(h))
	for c, cnt := range h {
		entries = append(entries, Entry{Color: c, Count: cnt})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Color.Key() < entries[j].Color.Key()
	})

	return entries
}

// TopK returns the k most frequent colors of a histogram.
//
// Parameters:
//   - h: The histogram to rank. It is only read; callers may discard it
//     afterwards.
//   - k: Maximum number of entries to return. k <= 0 yields an empty slice.
//
// Returns:
//   - []Entry: min(k, len(h)) entries, never nil and never padded with colors
//     that were not sampled.
//
// # Ordering
//
// Entries are sorted by Count descending. Entries with equal counts are
// ordered by ColorKey ascending, so #0A0A0A precedes #282C34 when both were
// seen once. The result is identical for repeated calls on the same
// histogram.
func TopK(h Histogram, k int) []Entry {
	if k <= 0 {
		return []Entry{}
	}
	entries := Rank(h)
	if len(entries) > k {
		entries = entries[:k]
	}
	return entries
}
