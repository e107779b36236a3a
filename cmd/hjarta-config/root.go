package main

import (
	"log/slog"
	"time"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/parser/script"
	"github.com/0xalexb/hjarta-config/logging"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel      string
	scriptTimeout time.Duration
	logger        *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hjarta-config",
		Short: "Read and query configuration files",
		Long: `hjarta-config loads JSON, INI, YAML and JavaScript data files and
addresses values inside them with dotted paths such as "db.host".

The format is chosen from the file extension.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = logging.NewLogger(logging.LoggerConfig{
				Level:  opts.logLevel,
				Format: logging.FormatText,
			}, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().DurationVar(&opts.scriptTimeout, "script-timeout", script.DefaultTimeout,
		"maximum evaluation time for .js files")

	cmd.AddCommand(
		newGetCmd(opts),
		newKeysCmd(opts),
		newDumpCmd(opts),
		newEvalCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

func (o *rootOptions) load(path string) (*config.Config, error) {
	loader := config.NewLoader(
		config.WithLogger(o.logger),
		config.WithParser(config.FormatScript, script.NewParser(script.WithTimeout(o.scriptTimeout))),
	)

	return loader.Load(path)
}
