package aggregators

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"log-report/internal/models"
	"log-report/internal/parsers"
	"log-report/internal/shared/loggers"
	"log-report/internal/shared/metrics"

	"github.com/mileusna/useragent"
)

//go:generate mockgen -source=aggregator.go -destination=./mocks/aggregator_mock.go -package=mocks
type Aggregator interface {
	// Load reads source to the end and adds every line to the state.
	// Load is meant to be called once per run: a second call counts the
	// same lines again.
	Load(ctx context.Context, source io.Reader) error
	UniqueAddressCount() int
	TopURLs(limit int) []models.RankedCount
	TopAddresses(limit int) []models.RankedCount
	TopUserAgents(limit int) []models.RankedCount
	UnmatchedLines() []string
	State() *models.AggregateState
}

type aggregator struct {
	recordParser parsers.RecordParser
	state        *models.AggregateState
}

func NewAggregator(recordParser parsers.RecordParser) Aggregator {
	return &aggregator{
		recordParser: recordParser,
		state:        models.NewAggregateState(),
	}
}

func (a *aggregator) Load(ctx context.Context, source io.Reader) error {
	logger := loggers.Ctx(ctx)

	reader := bufio.NewReader(source)
	var lineNumber, matched, unmatched int64
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errReadFailed(lineNumber+1, err)
		}
		// a final line without terminator still counts, an empty tail does not
		if line != "" {
			lineNumber++
			line = trimLineTerminator(line)
			if a.add(line) {
				matched++
			} else {
				unmatched++
				logger.Debug().
					Int64(loggers.FieldLineNumber, lineNumber).
					Msg("line does not match the log line grammar")
			}
		}
		if err != nil {
			break
		}
	}

	logger.Debug().
		Int64(loggers.FieldMatched, matched).
		Int64(loggers.FieldUnmatched, unmatched).
		Int(loggers.FieldUniqueAddrs, a.state.AddressCounts.Len()).
		Msg("finished loading log source")

	return nil
}

// add records one line and reports whether it matched.
func (a *aggregator) add(line string) bool {
	record, ok := a.recordParser.Parse(line)
	if !ok {
		a.state.UnmatchedLines = append(a.state.UnmatchedLines, line)
		metricLinesProcessedTotal.WithLabelValues(metrics.ValueUnmatched).Inc()
		return false
	}

	a.state.AddressCounts.Inc(record.ClientAddress)
	a.state.URLCounts.Inc(record.URL)
	if family := normalizeUserAgent(record.UserAgent()); family != "" {
		a.state.UserAgentCounts.Inc(family)
	}
	metricLinesProcessedTotal.WithLabelValues(metrics.ValueMatched).Inc()
	return true
}

func (a *aggregator) UniqueAddressCount() int {
	return a.state.AddressCounts.Len()
}

func (a *aggregator) TopURLs(limit int) []models.RankedCount {
	return a.state.URLCounts.Top(limit)
}

func (a *aggregator) TopAddresses(limit int) []models.RankedCount {
	return a.state.AddressCounts.Top(limit)
}

func (a *aggregator) TopUserAgents(limit int) []models.RankedCount {
	return a.state.UserAgentCounts.Top(limit)
}

func (a *aggregator) UnmatchedLines() []string {
	return a.state.UnmatchedLines
}

func (a *aggregator) State() *models.AggregateState {
	return a.state
}

// normalizeUserAgent parses user agent to extract family, or returns original if parsing fails.
// Empty and "-" user agents yield "".
func normalizeUserAgent(ua string) string {
	ua = strings.TrimSpace(ua)
	if ua == "" || ua == "-" {
		return ""
	}

	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}

func trimLineTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
