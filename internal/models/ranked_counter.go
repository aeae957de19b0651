package models

import "sort"

// RankedCount is one (key, count) pair of a ranking.
type RankedCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// RankedCounter counts occurrences per key and remembers the order in which keys
// were first seen, so rankings break count ties first-seen-first-ranked.
type RankedCounter struct {
	index   map[string]int
	entries []RankedCount
}

func NewRankedCounter() *RankedCounter {
	return &RankedCounter{index: make(map[string]int)}
}

// Inc adds one to key, creating it at zero first if absent.
func (c *RankedCounter) Inc(key string) {
	i, ok := c.index[key]
	if !ok {
		i = len(c.entries)
		c.index[key] = i
		c.entries = append(c.entries, RankedCount{Key: key})
	}
	c.entries[i].Count++
}

// Count returns the count of key, 0 when never seen.
func (c *RankedCounter) Count(key string) int64 {
	if i, ok := c.index[key]; ok {
		return c.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct keys.
func (c *RankedCounter) Len() int {
	return len(c.entries)
}

// Top returns at most limit entries sorted by count descending.
// limit <= 0 yields an empty slice.
func (c *RankedCounter) Top(limit int) []RankedCount {
	if limit <= 0 {
		return []RankedCount{}
	}

	ranked := make([]RankedCount, len(c.entries))
	copy(ranked, c.entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}
