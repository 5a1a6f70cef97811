package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loot/internal/catalog"
	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/orchestrators/crafting"
	"github.com/KirkDiggler/rpg-loot/internal/orchestrators/generator"
	"github.com/KirkDiggler/rpg-loot/internal/orchestrators/loadout"
)

var (
	simulateLevel   int
	simulateRarity  string
	simulateRounds  int
	simulateOrbs    int
	simulateShards  int
	simulateFormat  string
	simulateNoFunds bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [template-id...]",
	Short: "Equip generated items and spend currency crafting them",
	Long: `simulate generates one item per template (every catalog template when none
are given), equips them on a fresh character and then spends the ledger's
currency rerolling and augmenting random pieces. The final loadout and stat
sheet are printed.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simulateLevel, "level", 1, "item level")
	simulateCmd.Flags().StringVar(&simulateRarity, "rarity", "magic", "rarity of the generated items")
	simulateCmd.Flags().IntVar(&simulateRounds, "rounds", 10, "crafting attempts")
	simulateCmd.Flags().IntVar(&simulateOrbs, "reroll-orbs", 5, "reroll currency deposited before the run")
	simulateCmd.Flags().IntVar(&simulateShards, "augment-shards", 9, "augment currency deposited before the run")
	simulateCmd.Flags().StringVar(&simulateFormat, "format", "json", "output format: json or yaml")
	simulateCmd.Flags().BoolVar(&simulateNoFunds, "no-deposit", false, "use the ledger balance as is")
}

// player is the event source for the simulated character
type player struct {
	id string
}

func (p *player) GetID() string   { return p.id }
func (p *player) GetType() string { return "player" }

var _ core.Entity = (*player)(nil)

// loggingBus logs every event before handing it to the real bus
type loggingBus struct {
	events.EventBus
}

func (b *loggingBus) Publish(ctx context.Context, event events.Event) error {
	slog.InfoContext(ctx, "event", "type", event.Type())
	return b.EventBus.Publish(ctx, event)
}

type simulationReport struct {
	Owner   string                             `json:"owner" yaml:"owner"`
	Items   map[equipment.Slot]*equipment.Item `json:"items" yaml:"items"`
	Sheet   *stats.Sheet                       `json:"sheet" yaml:"sheet"`
	Balance map[string]int                     `json:"balance" yaml:"balance"`
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rarity, ok := equipment.RarityFromString(simulateRarity)
	if !ok {
		return fmt.Errorf("unknown rarity %q", simulateRarity)
	}

	d, err := buildDeps(cfg)
	if err != nil {
		return err
	}

	account, err := buildLedger(ctx, cfg)
	if err != nil {
		return err
	}
	if !simulateNoFunds {
		if err := account.Deposit(ctx, cfg.RerollCurrency, simulateOrbs); err != nil {
			return err
		}
		if err := account.Deposit(ctx, cfg.AugmentCurrency, simulateShards); err != nil {
			return err
		}
	}

	owner := &player{id: cfg.OwnerID}
	bus := &loggingBus{EventBus: events.NewBus()}

	character, err := loadout.New(&loadout.Config{
		Sheet:    stats.NewSheet(),
		Applier:  d.registry,
		EventBus: bus,
		Owner:    owner,
	})
	if err != nil {
		return err
	}

	crafter, err := crafting.NewOrchestrator(&crafting.Config{
		Generator:       d.generator,
		Ledger:          account,
		Loadout:         character,
		EventBus:        bus,
		Owner:           owner,
		Random:          d.random,
		RerollCurrency:  cfg.RerollCurrency,
		RerollCost:      cfg.RerollCost,
		AugmentCurrency: cfg.AugmentCurrency,
		AugmentCost:     cfg.AugmentCost,
	})
	if err != nil {
		return err
	}

	templateIDs := args
	if len(templateIDs) == 0 {
		for _, t := range d.equipment.All() {
			templateIDs = append(templateIDs, t.ID)
		}
	}

	if err := equipAll(ctx, d.generator, character, templateIDs, rarity); err != nil {
		return err
	}

	craft(ctx, d, character, crafter)

	report := &simulationReport{
		Owner:   owner.id,
		Items:   character.Items(),
		Sheet:   character.Sheet(),
		Balance: make(map[string]int),
	}
	for _, currency := range []string{cfg.RerollCurrency, cfg.AugmentCurrency} {
		balance, err := account.Balance(ctx, currency)
		if err != nil {
			return err
		}
		report.Balance[currency] = balance
	}

	return catalog.Encode(cmd.OutOrStdout(), outputFormat(simulateFormat), report)
}

// equipAll generates one item per template and equips it. Ring templates fill
// the first free ring slot.
func equipAll(ctx context.Context, gen generator.Service, character *loadout.Loadout, templateIDs []string, rarity equipment.Rarity) error {
	for _, id := range templateIDs {
		out, err := gen.Generate(ctx, &generator.GenerateInput{
			TemplateID: id,
			Level:      simulateLevel,
			Rarity:     rarity,
		})
		if err != nil {
			return err
		}

		slot := out.Item.Slot
		if slot.IsRing() {
			slot = freeRingSlot(character, slot)
		}

		if _, err := character.Equip(ctx, slot, out.Item); err != nil {
			return err
		}
		slog.InfoContext(ctx, "equipped", "slot", slot.String(), "item", out.Item.DisplayName)
	}
	return nil
}

func freeRingSlot(character *loadout.Loadout, fallback equipment.Slot) equipment.Slot {
	for _, slot := range equipment.AllSlots() {
		if !slot.IsRing() {
			continue
		}
		if _, taken := character.Equipped(slot); !taken {
			return slot
		}
	}
	return fallback
}

// craft augments a random equipped item each round, falling back to a reroll
// when the item cannot take another affix. It stops early once both
// currencies run dry.
func craft(ctx context.Context, d *deps, character *loadout.Loadout, crafter crafting.Service) {
	items := make([]*equipment.Item, 0)
	for _, slot := range equipment.AllSlots() {
		if item, ok := character.Equipped(slot); ok {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return
	}

	for round := 1; round <= simulateRounds; round++ {
		if ctx.Err() != nil {
			return
		}

		item := items[d.random.IntN(len(items))]

		_, err := crafter.Augment(ctx, &crafting.AugmentInput{Item: item})
		if err == nil {
			slog.InfoContext(ctx, "round", "n", round, "action", "augment", "item", item.DisplayName)
			continue
		}
		augmentBroke := errors.IsResourceExhausted(err)

		_, err = crafter.Reroll(ctx, &crafting.RerollInput{Item: item})
		if err == nil {
			slog.InfoContext(ctx, "round", "n", round, "action", "reroll", "item", item.DisplayName)
			continue
		}

		if augmentBroke && errors.IsResourceExhausted(err) {
			slog.InfoContext(ctx, "out of currency", "round", round)
			return
		}
		slog.DebugContext(ctx, "round skipped", "n", round, "item", item.ID, "error", err)
	}
}
