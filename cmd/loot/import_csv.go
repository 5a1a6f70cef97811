package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loot/internal/catalog"
)

var importOut string

var importCSVCmd = &cobra.Command{
	Use:   "import-csv [csv-file]",
	Short: "Convert a spreadsheet export into an equipment catalog",
	Long: `import-csv reads a CSV with id, displayName, description, slot, tags and
iconResourcePath columns followed by one column per stat, named statId or
statId:operation, and writes an equipment catalog document.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportCSV,
}

func init() {
	importCSVCmd.Flags().StringVarP(&importOut, "out", "o", "", "output path, YAML on stdout when empty")
}

func runImportCSV(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0]) // #nosec G304 -- input path comes from the operator
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	records, err := catalog.ImportEquipmentCSV(f)
	if err != nil {
		return err
	}

	// Validate against the catalog loader before writing anything.
	registry := buildRegistry()
	if _, _, err := catalog.LoadEquipment(records, &catalog.Options{KnownStat: registry.IsKnown}); err != nil {
		return err
	}

	slog.InfoContext(cmd.Context(), "imported equipment", "path", args[0], "items", len(records))

	format := catalog.FormatYAML
	if importOut != "" {
		format = catalog.FormatFromPath(importOut)
	}
	return writeOutput(cmd.OutOrStdout(), importOut, format, catalog.EquipmentFile{Items: records})
}
