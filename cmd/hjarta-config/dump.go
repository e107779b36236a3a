package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

var errInvalidAssignment = errors.New("invalid assignment, expected path=value")

func newDumpCmd(root *rootOptions) *cobra.Command {
	var (
		assignments []string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the whole document",
		Long: `Print the whole document in the chosen output format.

--set path=value adds string values before printing. Paths that already hold a
value keep it; missing intermediate levels are created.`,
		Example: `  hjarta-config dump app.ini --output json
  hjarta-config dump app.yaml --set db.user=admin --set db.pool.size=10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			cfg, err := root.load(args[0])
			if err != nil {
				return err
			}

			for _, assignment := range assignments {
				path, value, ok := strings.Cut(assignment, "=")
				if !ok || path == "" {
					return fmt.Errorf("%w: %q", errInvalidAssignment, assignment)
				}

				if _, exists := cfg.Lookup(path); exists {
					root.logger.Warn("path already set, keeping existing value", slog.String("path", path))
				}

				cfg.Set(path, value)
			}

			return writeValue(cmd.OutOrStdout(), cfg.Data(), output)
		},
	}

	cmd.Flags().StringArrayVar(&assignments, "set", nil, "path=value to add before printing (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "output format (yaml, json)")

	return cmd
}
