package main

import (
	"fmt"

	hjarta "github.com/0xalexb/hjarta-config"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "hjarta-config %s\n", hjarta.Version)
			fmt.Fprintf(out, "Commit:     %s\n", hjarta.Commit)
			fmt.Fprintf(out, "Built:      %s\n", hjarta.CompiledAt)
		},
	}
}
