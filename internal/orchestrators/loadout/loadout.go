// Package loadout tracks the items one character has equipped and keeps the
// character's stat sheet in sync with them.
//
// A Loadout is not safe for concurrent use. Calls for one character must be
// serialized by the caller.
package loadout

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-loot/internal/engine"
	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// Event types published on the configured bus
const (
	EventItemEquipped   = "loot.item.equipped"
	EventItemUnequipped = "loot.item.unequipped"
)

// Event context keys
const (
	ContextKeySlot = "slot"
)

// Config holds the dependencies for a loadout
type Config struct {
	Sheet   *stats.Sheet
	Applier engine.StatApplier

	// EventBus is optional. When set, equip and unequip events are published.
	EventBus events.EventBus
	// Owner is the event source, usually the character wearing the items.
	Owner core.Entity
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Sheet == nil {
		vb.RequiredField("Sheet")
	}
	if c.Applier == nil {
		vb.RequiredField("Applier")
	}

	return vb.Build()
}

// Loadout is the set of items equipped by one character
type Loadout struct {
	sheet    *stats.Sheet
	applier  engine.StatApplier
	eventBus events.EventBus
	owner    core.Entity

	items map[equipment.Slot]*equipment.Item
	// applied holds the exact modifier pushed onto the sheet for each slot,
	// so reversal is independent of later changes to the item.
	applied map[equipment.Slot]stats.Modifier
}

// New creates an empty loadout over cfg.Sheet
func New(cfg *Config) (*Loadout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Loadout{
		sheet:    cfg.Sheet,
		applier:  cfg.Applier,
		eventBus: cfg.EventBus,
		owner:    cfg.Owner,
		items:    make(map[equipment.Slot]*equipment.Item),
		applied:  make(map[equipment.Slot]stats.Modifier),
	}, nil
}

// Sheet returns the stat sheet this loadout writes to
func (l *Loadout) Sheet() *stats.Sheet {
	return l.sheet
}

// Equip places item into slot, replacing whatever was there, and returns the
// previous occupant. A nil item clears the slot.
// Returns errors.InvalidArgument for an unknown slot or an item built for a
// different slot. Ring items fit any ring slot.
func (l *Loadout) Equip(ctx context.Context, slot equipment.Slot, item *equipment.Item) (*equipment.Item, error) {
	if !slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown equipment slot %q", slot)
	}
	if item != nil && !fits(item, slot) {
		return nil, errors.InvalidArgumentf("item %s belongs in %s, not %s", item.ID, item.Slot, slot).
			WithMeta("item_id", item.ID).
			WithMeta("slot", slot.String())
	}

	// An item can only be worn once; equipping it elsewhere moves it.
	if item != nil {
		if other, ok := l.SlotOf(item); ok && other != slot {
			l.clear(other)
			l.publish(ctx, EventItemUnequipped, other, item)
		}
	}

	previous := l.clear(slot)

	if item != nil {
		l.apply(slot, item)
	}

	if previous != nil && previous != item {
		l.publish(ctx, EventItemUnequipped, slot, previous)
	}
	if item != nil {
		l.publish(ctx, EventItemEquipped, slot, item)
	}

	slog.DebugContext(ctx, "equipment slot updated",
		"slot", slot.String(),
		"item_id", itemID(item),
		"previous_item_id", itemID(previous))

	return previous, nil
}

// Unequip clears slot and returns the item that was there, if any
func (l *Loadout) Unequip(ctx context.Context, slot equipment.Slot) (*equipment.Item, error) {
	return l.Equip(ctx, slot, nil)
}

// Resync reapplies item if it is currently equipped, picking up any change
// to its modifier. It reports whether the item was found.
func (l *Loadout) Resync(ctx context.Context, item *equipment.Item) (bool, error) {
	if item == nil {
		return false, errors.InvalidArgument("item is required")
	}

	slot, ok := l.SlotOf(item)
	if !ok {
		return false, nil
	}

	if _, err := l.Equip(ctx, slot, item); err != nil {
		return false, err
	}
	return true, nil
}

// ReapplyAll reverses everything this loadout has applied and applies the
// current modifiers of the equipped items again
func (l *Loadout) ReapplyAll(ctx context.Context) {
	slots := equipment.AllSlots()

	for i := len(slots) - 1; i >= 0; i-- {
		if m, ok := l.applied[slots[i]]; ok {
			l.applier.ApplyModifier(l.sheet, m, engine.SignReverse)
			delete(l.applied, slots[i])
		}
	}

	for _, slot := range slots {
		if item, ok := l.items[slot]; ok {
			l.apply(slot, item)
		}
	}

	slog.DebugContext(ctx, "reapplied equipment modifiers", "equipped", len(l.items))
}

// Equipped returns the item in slot
func (l *Loadout) Equipped(slot equipment.Slot) (*equipment.Item, bool) {
	item, ok := l.items[slot]
	return item, ok
}

// SlotOf finds the slot holding item, compared by identity
func (l *Loadout) SlotOf(item *equipment.Item) (equipment.Slot, bool) {
	for _, slot := range equipment.AllSlots() {
		if l.items[slot] == item {
			return slot, true
		}
	}
	return "", false
}

// Items returns the equipped items keyed by slot
func (l *Loadout) Items() map[equipment.Slot]*equipment.Item {
	out := make(map[equipment.Slot]*equipment.Item, len(l.items))
	for slot, item := range l.items {
		out[slot] = item
	}
	return out
}

// Applied returns the aggregate of everything currently applied, in slot order
func (l *Loadout) Applied() stats.Modifier {
	total := stats.NewModifier()
	for _, slot := range equipment.AllSlots() {
		if m, ok := l.applied[slot]; ok {
			total.AddEntriesFrom(m)
		}
	}
	return total
}

func (l *Loadout) clear(slot equipment.Slot) *equipment.Item {
	previous := l.items[slot]

	if m, ok := l.applied[slot]; ok {
		l.applier.ApplyModifier(l.sheet, m, engine.SignReverse)
	}

	delete(l.applied, slot)
	delete(l.items, slot)

	return previous
}

func (l *Loadout) apply(slot equipment.Slot, item *equipment.Item) {
	snapshot := item.Modifier.Clone()
	l.applier.ApplyModifier(l.sheet, snapshot, engine.SignApply)
	l.applied[slot] = snapshot
	l.items[slot] = item
}

func (l *Loadout) publish(ctx context.Context, eventType string, slot equipment.Slot, item *equipment.Item) {
	if l.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, l.owner, item)
	event.Context().Set(ContextKeySlot, slot.String())

	if err := l.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish loadout event",
			"event", eventType,
			"item_id", item.ID,
			"error", err)
	}
}

func fits(item *equipment.Item, slot equipment.Slot) bool {
	if item.Slot == slot {
		return true
	}
	return item.Slot.IsRing() && slot.IsRing()
}

func itemID(item *equipment.Item) string {
	if item == nil {
		return ""
	}
	return item.ID
}
