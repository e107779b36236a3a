package main

import (
	"github.com/0xalexb/hjarta-config/query"

	"github.com/spf13/cobra"
)

func newEvalCmd(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "eval <file> <expression>",
		Short: "Evaluate an expression against the document",
		Long: `Evaluate an expr-lang expression against the document. Top-level keys are
variables, and get("a.b", default) reads any dotted path.`,
		Example: `  hjarta-config eval app.yaml 'db.port > 1000'
  hjarta-config eval app.json 'get("feature-flags.beta", false)'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			cfg, err := root.load(args[0])
			if err != nil {
				return err
			}

			result, err := query.Evaluate(cfg, args[1])
			if err != nil {
				return err
			}

			return writeValue(cmd.OutOrStdout(), result, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "output format (yaml, json)")

	return cmd
}
