package cmd

import (
	"context"
	"fmt"
	"os"

	"nathanbeddoewebdev/envaudit/internal/config"
	"nathanbeddoewebdev/envaudit/internal/datadog"
	"nathanbeddoewebdev/envaudit/internal/environment"
	"nathanbeddoewebdev/envaudit/internal/logging"
	"nathanbeddoewebdev/envaudit/internal/report"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// newInventory builds the inventory client. Replaced in tests.
var newInventory = func(creds config.Credentials, logger zerolog.Logger) report.Searcher {
	return datadog.NewClient(creds.APIKey, creds.AppKey, datadog.WithLogger(logger))
}

// loggingVars documents the optional logging settings in the help text.
var loggingVars = []config.VarSpec{
	{Name: "LOG_LEVEL", Description: "Diagnostic log level (default: warn)"},
	{Name: "LOG_FORMAT", Description: "Diagnostic log format: auto, console or json (default: auto)"},
}

// rootCmd represents the base command. It has no subcommands: running it
// performs the audit.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "envaudit",
		Short: "Report how Datadog hosts map onto deployment environments",
		Long: `envaudit lists every host known to Datadog, infers each host's
environment from its name and prints the number of hosts per environment.

Hosts are matched against the environments prod, demo, staging, dev, end2end
and presales, in that order; the first name found in the host name wins.
Hosts that match none are listed separately.

` + config.VarsHelp(loggingVars...),
		Args:          cobra.NoArgs,
		RunE:          runAudit,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	return cmd
}

func runAudit(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.FromEnv(os.Getenv), cmd.ErrOrStderr())

	creds, err := config.Load()
	if err != nil {
		return err
	}

	catalog := environment.DefaultCatalog()
	logger.Debug().Strs("catalog", catalog).Msg("starting host environment audit")

	return report.Run(cmd.Context(), newInventory(creds, logger), catalog, cmd.OutOrStdout())
}

// Execute runs the root command. It is the only place that turns an error
// into a non-zero exit status.
func Execute() {
	var root = rootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}
}
