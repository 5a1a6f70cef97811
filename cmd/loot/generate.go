package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loot/internal/catalog"
	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/orchestrators/generator"
)

var (
	generateLevel  int
	generateRarity string
	generateCount  int
	generateFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate [template-id]",
	Short: "Generate items from an equipment template",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateLevel, "level", 1, "item level")
	generateCmd.Flags().StringVar(&generateRarity, "rarity", "magic", "common, magic, rare, epic or legendary")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "number of items")
	generateCmd.Flags().StringVar(&generateFormat, "format", "json", "output format: json or yaml")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	rarity, ok := equipment.RarityFromString(generateRarity)
	if !ok {
		return fmt.Errorf("unknown rarity %q", generateRarity)
	}
	if generateCount < 1 {
		return fmt.Errorf("count must be positive, got %d", generateCount)
	}

	d, err := buildDeps(cfg)
	if err != nil {
		return err
	}

	items := make([]*equipment.Item, 0, generateCount)
	for range generateCount {
		out, err := d.generator.Generate(cmd.Context(), &generator.GenerateInput{
			TemplateID: args[0],
			Level:      generateLevel,
			Rarity:     rarity,
		})
		if err != nil {
			return err
		}
		items = append(items, out.Item)
	}

	return catalog.Encode(cmd.OutOrStdout(), outputFormat(generateFormat), items)
}

func outputFormat(name string) catalog.Format {
	if name == "yaml" || name == "yml" {
		return catalog.FormatYAML
	}
	return catalog.FormatJSON
}
