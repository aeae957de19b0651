package models

// AggregateState holds the running statistics of one report run.
// It starts empty, is filled by a single load pass and is only read afterwards.
//
// Every input line either adds one to both AddressCounts and URLCounts or is
// appended to UnmatchedLines, never both. UserAgentCounts only sees matched
// lines that carry a user agent.
type AggregateState struct {
	AddressCounts   *RankedCounter
	URLCounts       *RankedCounter
	UserAgentCounts *RankedCounter
	UnmatchedLines  []string
}

func NewAggregateState() *AggregateState {
	return &AggregateState{
		AddressCounts:   NewRankedCounter(),
		URLCounts:       NewRankedCounter(),
		UserAgentCounts: NewRankedCounter(),
		UnmatchedLines:  []string{},
	}
}

// LinesProcessed returns the number of lines seen so far.
func (s *AggregateState) LinesProcessed() int64 {
	var matched int64
	for _, entry := range s.AddressCounts.entries {
		matched += entry.Count
	}
	return matched + int64(len(s.UnmatchedLines))
}
