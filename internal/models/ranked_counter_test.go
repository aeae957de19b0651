package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRankedCounter_Inc(t *testing.T) {
	t.Parallel()

	counter := NewRankedCounter()
	counter.Inc("/a")
	counter.Inc("/b")
	counter.Inc("/a")

	assert.Equal(t, 2, counter.Len())
	assert.Equal(t, int64(2), counter.Count("/a"))
	assert.Equal(t, int64(1), counter.Count("/b"))
	assert.Equal(t, int64(0), counter.Count("/missing"))
}

func TestRankedCounter_Top(t *testing.T) {
	t.Parallel()

	counter := NewRankedCounter()
	for _, key := range []string{"c", "a", "b", "a", "d", "b", "a", "e"} {
		counter.Inc(key)
	}

	tests := []struct {
		name  string
		limit int
		want  []RankedCount
	}{
		{
			name:  "ties keep first seen order",
			limit: 5,
			want: []RankedCount{
				{Key: "a", Count: 3},
				{Key: "b", Count: 2},
				{Key: "c", Count: 1},
				{Key: "d", Count: 1},
				{Key: "e", Count: 1},
			},
		},
		{
			name:  "truncated",
			limit: 3,
			want: []RankedCount{
				{Key: "a", Count: 3},
				{Key: "b", Count: 2},
				{Key: "c", Count: 1},
			},
		},
		{
			name:  "limit above distinct keys",
			limit: 100,
			want: []RankedCount{
				{Key: "a", Count: 3},
				{Key: "b", Count: 2},
				{Key: "c", Count: 1},
				{Key: "d", Count: 1},
				{Key: "e", Count: 1},
			},
		},
		{
			name:  "zero limit",
			limit: 0,
			want:  []RankedCount{},
		},
		{
			name:  "negative limit",
			limit: -2,
			want:  []RankedCount{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := counter.Top(tt.limit)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Top(%d) mismatch (-want +got):\n%s", tt.limit, diff)
			}
		})
	}
}

func TestRankedCounter_TopDoesNotReorderCounter(t *testing.T) {
	t.Parallel()

	counter := NewRankedCounter()
	counter.Inc("x")
	counter.Inc("y")
	counter.Inc("y")

	_ = counter.Top(1)
	counter.Inc("x")

	// x was seen first, so after catching up it ranks first again
	assert.Equal(t, []RankedCount{{Key: "x", Count: 2}, {Key: "y", Count: 2}}, counter.Top(2))
}

func TestRankedCounter_Empty(t *testing.T) {
	t.Parallel()

	counter := NewRankedCounter()

	assert.Equal(t, 0, counter.Len())
	assert.Empty(t, counter.Top(3))
	assert.NotNil(t, counter.Top(3))
}

func TestAggregateState_LinesProcessed(t *testing.T) {
	t.Parallel()

	state := NewAggregateState()
	state.AddressCounts.Inc("10.0.0.1")
	state.AddressCounts.Inc("10.0.0.1")
	state.AddressCounts.Inc("10.0.0.2")
	state.UnmatchedLines = append(state.UnmatchedLines, "garbage")

	assert.Equal(t, int64(4), state.LinesProcessed())
}
