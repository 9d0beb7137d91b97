// Package cli implements the ventas command: one-shot listing, export and
// editing commands, the interactive table browser and a local mock backend.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ventas-admin/internal/observability/logging"
	"ventas-admin/internal/observability/tracing"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	version    string
	configPath string
	apiURL     string
	output     string
	logFile    string
	debug      bool
	trace      bool
}

// NewRootCmd creates the root command. Logs go to stderr (or --log-file) so
// that stdout carries only command output.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{version: version}
	var cleanup []func()

	cmd := &cobra.Command{
		Use:           "ventas",
		Short:         "Browse and manage the sales administration backend",
		Long:          "ventas lists, exports and edits vendedores, productos, proveedores, planes de venta and logística through the backend REST API.",
		Version:       version,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(opts.output); err != nil {
				return err
			}

			var w io.Writer = cmd.ErrOrStderr()
			if opts.logFile != "" {
				// #nosec G304 -- the path is chosen by the operator via --log-file.
				f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				cleanup = append(cleanup, func() { _ = f.Close() })
				w = f
			}

			level := logging.LevelFromEnv()
			if opts.debug {
				level = slog.LevelDebug
			}
			logger := logging.NewTextLoggerAt(w, level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

			if opts.trace {
				shutdown := tracing.InstallLogProvider(logger)
				cleanup = append(cleanup, func() {
					if err := shutdown(context.Background()); err != nil {
						logger.Warn("tracer shutdown failed", slog.Any("error", err))
					}
				})
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			for i := len(cleanup) - 1; i >= 0; i-- {
				cleanup[i]()
			}
			cleanup = nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&opts.apiURL, "api-url", "", "backend base URL (overrides config and VENTAS_API_URL)")
	flags.StringVarP(&opts.output, "output", "o", formatTable, "output format: table, json or yaml")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.trace, "trace", false, "log a span for every backend request (spans are logged at debug level)")

	cmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newDeleteCmd(opts),
		newExportCmd(opts),
		newBrowseCmd(opts),
		newMockServerCmd(opts),
	)
	return cmd
}

const rootCmdExample = `  # Start a local backend with sample data
  ventas mock-server --addr :8080

  # Show the second page of sellers
  ventas list vendedores --page 2

  # Export every product as JSON
  ventas export productos -o json > productos.json

  # Browse shipments interactively, reloading every 30 seconds
  VENTAS_REFRESH_SCHEDULE="@every 30s" ventas browse logistica`
