package app

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"

	"log-report/internal/aggregators"
	"log-report/internal/parsers"
	"log-report/internal/reporters"
	"log-report/internal/shared/configs"
	"log-report/internal/shared/loggers"
	"log-report/internal/shared/metrics"
	"log-report/internal/shared/svcerrors"
	"log-report/internal/shared/ulid"
)

// App holds all dependencies of one report run.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	reporter  reporters.Reporter
}

// New creates and initializes a new App instance.
// The report is written to stdout, logs to stderr.
func New(config *configs.Config, stdout, stderr io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-report").
		Logger()

	// Aggregation state is fresh per App, nothing is shared between runs
	recordParser := parsers.NewRecordParser()
	aggregator := aggregators.NewAggregator(recordParser)
	reporter := reporters.NewReporter(aggregator, stdout, reporters.Options{
		TopLimit:       config.Report.TopLimit,
		ShowUserAgents: config.Report.ShowUserAgents,
	})

	return newApp(config, appLogger, reporter), nil
}

func newApp(config *configs.Config, appLogger loggers.Logger, reporter reporters.Reporter) *App {
	return &App{
		config:    config,
		appLogger: appLogger,
		reporter:  reporter,
	}
}

// Run produces the report for the configured log file.
func (app *App) Run(ctx context.Context) (err error) {
	runLogger := app.appLogger.With().
		Str(loggers.FieldRunID, ulid.NewULID()).
		Str(loggers.FieldComponent, "reporter").
		Logger()
	ctx = runLogger.WithContext(ctx)

	defer func() {
		if p := recover(); p != nil {
			runLogger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("report panic recovered: %v", p)

			// Convert panic value to error
			var panicErr error
			if e, ok := p.(error); ok {
				panicErr = e
			} else {
				panicErr = fmt.Errorf("%v", p)
			}
			err = svcerrors.NewInternalErrorPanic(panicErr)
		}
	}()

	runLogger.Debug().
		Msgf("Starting log report (log_file=%s, top_limit=%d, log_level=%s)",
			app.config.Report.LogFile,
			app.config.Report.TopLimit,
			app.config.Log.Level)

	err = app.reporter.Run(ctx, app.config.Report.LogFile)
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
			err = svcErr
		}
		runLogger.Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Str(loggers.FieldLogFile, app.config.Report.LogFile).
			Msg(svcErr.Message)
	}

	app.exportMetrics(runLogger)
	return err
}

// exportMetrics writes the textfile when configured. A failed export is logged
// and never changes the outcome of the run.
func (app *App) exportMetrics(logger loggers.Logger) {
	path := app.config.Metrics.Textfile
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		logger.Error().
			Err(err).
			Str(loggers.FieldMetricsPath, path).
			Msg("failed to write metrics textfile")
		return
	}
	logger.Debug().Str(loggers.FieldMetricsPath, path).Msg("metrics textfile written")
}
