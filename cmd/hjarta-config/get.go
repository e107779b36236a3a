package main

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config"

	"github.com/spf13/cobra"
)

func newGetCmd(root *rootOptions) *cobra.Command {
	var (
		def    string
		output string
	)

	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a dotted path",
		Long: `Print the value at a dotted path. Mappings and lists are encoded with --output.

Without --default a missing path is an error.`,
		Example: `  hjarta-config get app.yaml db.host
  hjarta-config get app.ini server --output json
  hjarta-config get app.json db.user --default admin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			cfg, err := root.load(args[0])
			if err != nil {
				return err
			}

			value, ok := cfg.Lookup(args[1])
			if !ok {
				if !cmd.Flags().Changed("default") {
					return fmt.Errorf("%w: %s", config.ErrPathNotFound, args[1])
				}

				value = def
			}

			return writeValue(cmd.OutOrStdout(), value, output)
		},
	}

	cmd.Flags().StringVar(&def, "default", "", "value printed when the path is missing")
	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "output format (yaml, json)")

	return cmd
}
