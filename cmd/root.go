package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/OTrepse/jsoncrack.com/internal/config"
	"github.com/OTrepse/jsoncrack.com/pkg/logger"
	"github.com/OTrepse/jsoncrack.com/pkg/settings"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	debug      bool
	quiet      bool
	configFile string
}

// newRootCmd builds the command tree. Each call returns fresh flag state so
// tests can run commands independently.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   settings.CliBinaryName,
		Short: "View and edit single nodes of a JSON document by path",
		Long: `nodeedit addresses one node of a JSON document by path, prints its
content or canonical path, and rewrites the document with a new value for it.

Paths may be written as $["customer"][0]["id"], customer.0.id or
customer[0]["id"].`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.prepare(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress success messages")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config-file", "", "path to a YAML config file")

	rootCmd.AddCommand(
		newPathCmd(),
		newViewCmd(),
		newSetCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// prepare resolves run settings from config and flags and attaches them, with
// a command-scoped logger, to the command context.
func (o *rootOptions) prepare(cmd *cobra.Command) error {
	run := settings.NewCliParams()
	if path := config.ResolvePath(o.configFile); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg.Apply(run)
	}
	if o.debug {
		run.MinLogLevel = -1
	}
	run.IsQuiet = o.quiet

	lgr := logger.Get(run.MinLogLevel)
	lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithLogger(ctx, lgr)
	ctx = settings.IntoContext(ctx, run)
	cmd.SetContext(ctx)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print nodeedit version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
			return err
		},
	}
}

func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)",
		settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}
