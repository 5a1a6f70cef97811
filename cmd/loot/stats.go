package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loot/internal/engine"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "List the stat ids the engine knows",
	// Needs no catalogs.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry := buildRegistry()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STAT\tDEFAULT OP")
		for _, id := range registry.KnownStatIDs() {
			op, _ := registry.DefaultOperation(id)
			fmt.Fprintf(w, "%s\t%s\n", id, op)
		}
		return w.Flush()
	},
}

func buildRegistry() *engine.Registry {
	return engine.NewDefaultRegistry()
}
