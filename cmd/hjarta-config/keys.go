package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeysCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <file>",
		Short: "List the dotted path of every leaf value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(args[0])
			if err != nil {
				return err
			}

			for _, key := range cfg.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}

			return nil
		},
	}
}
