package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quark/internal/expr"
)

func newConcernsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concerns",
		Short: "List the concerns available to chain expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tSLOT\tSTEPS")

			for _, name := range expr.Names() {
				factory, ok := expr.Lookup(name)
				if !ok {
					continue
				}
				steps := "<color>"
				if !factory.Color {
					steps = strings.Join(factory.Steps, ", ")
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\n", name, factory.Slot, steps)
			}

			return writer.Flush()
		},
	}

	return cmd
}
