package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loot/internal/catalog"
)

var migrateOut string

var migrateCmd = &cobra.Command{
	Use:   "migrate [equipment-file]",
	Short: "Rewrite an equipment catalog from flat legacy stats to entry lists",
	Args:  cobra.ExactArgs(1),
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateOut, "out", "o", "", "output path, stdout when empty")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	var doc catalog.EquipmentFile
	if err := catalog.DecodeFile(args[0], &doc); err != nil {
		return err
	}

	migrated, changed := catalog.MigrateEquipmentFile(doc)
	slog.InfoContext(cmd.Context(), "migrated equipment catalog",
		"path", args[0],
		"items", len(migrated.Items),
		"changed", changed)

	format := catalog.FormatFromPath(args[0])
	if migrateOut != "" {
		format = catalog.FormatFromPath(migrateOut)
	}

	return writeOutput(cmd.OutOrStdout(), migrateOut, format, migrated)
}

// writeOutput encodes v to path, or to stdout when path is empty
func writeOutput(stdout io.Writer, path string, format catalog.Format, v any) (err error) {
	if path == "" {
		return catalog.Encode(stdout, format, v)
	}

	f, err := os.Create(path) // #nosec G304 -- output path comes from the operator
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return catalog.Encode(f, format, v)
}
