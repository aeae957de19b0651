package cmd

import (
	"fmt"
	"io"
	"os"

	"log-report/internal/app"
	"log-report/internal/shared/configs"
	"log-report/internal/shared/svcerrors"

	"github.com/spf13/cobra"
)

const (
	codeInvalidConfig = "CLI_1000"
	codeInitFailed    = "CLI_9000"
)

// NewRootCommand builds the logreport command writing the report to stdout and logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "logreport [logfile]",
		Short: "Summarize a web server access log",
		Long: `logreport reads an access log in common/combined log format and prints
the number of unique client addresses, the most visited URLs and the most
active client addresses.

Lines that do not follow the log format are skipped and only counted.

Examples:
  logreport
  logreport /var/log/nginx/access.log
  logreport access.log --top 10 --user-agents
  logreport --config logreport.yml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configs.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return svcerrors.NewInvalidArgumentError(codeInvalidConfig, "invalid configuration", err)
			}
			if len(args) == 1 {
				cfg.Report.LogFile = args[0]
			}

			application, err := app.New(cfg, stdout, stderr)
			if err != nil {
				return svcerrors.NewInternalError(codeInitFailed, err)
			}
			return application.Run(cmd.Context())
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "yaml config file (default: none, built-in defaults)")
	flags.StringP("log-level", "l", "warn", "diagnostic log level written to stderr")
	flags.IntP("top", "n", 3, "number of entries in each ranking")
	flags.Bool("user-agents", false, "also rank user agent families")
	flags.String("metrics-textfile", "", "write prometheus metrics to this file after the run")

	return rootCmd
}

// Execute runs the root command and exits with the error's exit code on failure.
func Execute() {
	rootCmd := NewRootCommand(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(svcerrors.ExitCode(err))
	}
}
