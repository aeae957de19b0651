package reporters

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"log-report/internal/aggregators"
	"log-report/internal/models"
	"log-report/internal/shared/loggers"
	"log-report/internal/shared/metrics"
	"log-report/internal/shared/svcerrors"
)

const (
	bannerStart = "*** Log Report ***"
	bannerEnd   = "*** End of Log Report ***"
	indent      = "  "
)

// Options controls what the report prints.
type Options struct {
	TopLimit       int
	ShowUserAgents bool
}

//go:generate mockgen -source=reporter.go -destination=./mocks/reporter_mock.go -package=mocks
type Reporter interface {
	// Run loads the log file at logfilePath into the aggregator and prints the report.
	// Nothing is printed when the file cannot be opened or read.
	Run(ctx context.Context, logfilePath string) error
}

type openFunc func(path string) (io.ReadCloser, error)

type reporter struct {
	aggregator aggregators.Aggregator
	out        io.Writer
	opts       Options
	open       openFunc
	now        func() time.Time
}

func NewReporter(aggregator aggregators.Aggregator, out io.Writer, opts Options) Reporter {
	return newReporter(aggregator, out, opts, openLogFile, time.Now)
}

func newReporter(aggregator aggregators.Aggregator, out io.Writer, opts Options, open openFunc, now func() time.Time) *reporter {
	return &reporter{
		aggregator: aggregator,
		out:        out,
		opts:       opts,
		open:       open,
		now:        now,
	}
}

func openLogFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (r *reporter) Run(ctx context.Context, logfilePath string) error {
	logger := loggers.Ctx(ctx)
	start := r.now()

	var report bytes.Buffer
	fmt.Fprintln(&report, bannerStart)

	if err := r.load(ctx, logfilePath); err != nil {
		r.observe(start, err)
		return err
	}

	limit := r.opts.TopLimit
	fmt.Fprintf(&report, "Number of unique IP addresses: %d\n", r.aggregator.UniqueAddressCount())
	writeRanking(&report, fmt.Sprintf("Top %d most visited URLs:", limit), r.aggregator.TopURLs(limit))
	writeRanking(&report, fmt.Sprintf("Top %d most active IP addresses:", limit), r.aggregator.TopAddresses(limit))
	if r.opts.ShowUserAgents {
		writeRanking(&report, fmt.Sprintf("Top %d most common user agents:", limit), r.aggregator.TopUserAgents(limit))
	}

	// the count only, unmatched content stays out of the report
	if unmatched := len(r.aggregator.UnmatchedLines()); unmatched > 0 {
		fmt.Fprintf(&report, "Warning: unable to match %d row(s)\n", unmatched)
		logger.Warn().Int(loggers.FieldUnmatched, unmatched).Msg("some rows did not match the log line grammar")
	}

	elapsed := r.now().Sub(start)
	fmt.Fprintf(&report, "Report total elapse time: %s\n", elapsed)
	fmt.Fprintln(&report, bannerEnd)

	if _, err := report.WriteTo(r.out); err != nil {
		svcErr := errWriteFailed(err)
		r.observe(start, svcErr)
		return svcErr
	}

	logger.Info().
		Str(loggers.FieldLogFile, logfilePath).
		Int64(loggers.FieldDuration, elapsed.Milliseconds()).
		Msg("report completed")
	r.observe(start, nil)
	return nil
}

// load opens the log file and hands it to the aggregator. The file is closed
// whether or not the read succeeds.
func (r *reporter) load(ctx context.Context, logfilePath string) error {
	file, err := r.open(logfilePath)
	if err != nil {
		return errOpenFailed(logfilePath, err)
	}
	defer file.Close()

	loggers.Ctx(ctx).Debug().Str(loggers.FieldLogFile, logfilePath).Msg("loading log file")

	if err := r.aggregator.Load(ctx, file); err != nil {
		if _, ok := svcerrors.AsServiceError(err); ok {
			return err
		}
		return errLoadFailed(logfilePath, err)
	}
	return nil
}

func (r *reporter) observe(start time.Time, err error) {
	errorCode := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		errorCode = svcErr.Code
	}
	metricReportRunsTotal.WithLabelValues(errorCode).Inc()
	metricReportDuration.WithLabelValues(errorCode).Observe(r.now().Sub(start).Seconds())
}

// writeRanking prints title followed by one indented "key(count)" line per entry.
func writeRanking(w io.Writer, title string, ranking []models.RankedCount) {
	fmt.Fprintln(w, title)
	for _, entry := range ranking {
		fmt.Fprintf(w, "%s%s(%d)\n", indent, entry.Key, entry.Count)
	}
}
