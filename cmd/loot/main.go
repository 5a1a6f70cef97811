// Package main is the entry point for the loot command line tool
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loot/internal/config"
)

var (
	cfg *config.Config

	flagEquipment string
	flagAffixes   string
	flagRarities  string
	flagRedisAddr string
	flagOwnerID   string
	flagSeed      uint64
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "loot",
	Short: "Equipment generation and crafting tools",
	Long: `loot generates randomized equipment from data catalogs, simulates equipping
and crafting against a character stat sheet, and converts catalog files.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagEquipment, "equipment", "", "equipment catalog path (LOOT_EQUIPMENT_CATALOG)")
	flags.StringVar(&flagAffixes, "affixes", "", "affix catalog path (LOOT_AFFIX_CATALOG)")
	flags.StringVar(&flagRarities, "rarities", "", "rarity table path (LOOT_RARITY_TABLE)")
	flags.StringVar(&flagRedisAddr, "redis", "", "redis address for the currency ledger (LOOT_REDIS_ADDR)")
	flags.StringVar(&flagOwnerID, "owner", "", "ledger owner id (LOOT_OWNER_ID)")
	flags.Uint64Var(&flagSeed, "seed", 0, "random seed, 0 for time based (LOOT_SEED)")
	flags.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (LOOT_LOG_LEVEL)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCSVCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadConfig reads the environment, lets explicitly set flags win and
// installs the process logger
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("equipment") {
		loaded.EquipmentCatalog = flagEquipment
	}
	if flags.Changed("affixes") {
		loaded.AffixCatalog = flagAffixes
	}
	if flags.Changed("rarities") {
		loaded.RarityTable = flagRarities
	}
	if flags.Changed("redis") {
		loaded.RedisAddr = flagRedisAddr
	}
	if flags.Changed("owner") {
		loaded.OwnerID = flagOwnerID
	}
	if flags.Changed("seed") {
		loaded.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = flagLogLevel
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: loaded.SlogLevel(),
	})))

	cfg = loaded
	return nil
}
