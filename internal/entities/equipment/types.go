// Package equipment holds equipment templates, affix definitions and
// generated item types.
package equipment

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
)

// Slot represents an equipment attachment point
type Slot string

// Define all available equipment slots
const (
	SlotHelmet   Slot = "helmet"
	SlotMainHand Slot = "main_hand"
	SlotOffHand  Slot = "off_hand"
	SlotBoots    Slot = "boots"
	SlotGloves   Slot = "gloves"
	SlotPants    Slot = "pants"
	SlotRing1    Slot = "ring1"
	SlotRing2    Slot = "ring2"
	SlotRing3    Slot = "ring3"
	SlotRing4    Slot = "ring4"
	SlotRing5    Slot = "ring5"
	SlotRing6    Slot = "ring6"
	SlotRing7    Slot = "ring7"
	SlotRing8    Slot = "ring8"
	SlotRing9    Slot = "ring9"
	SlotRing10   Slot = "ring10"
)

// String returns the string representation of the slot
func (s Slot) String() string {
	return string(s)
}

// IsValid checks if the slot is valid
func (s Slot) IsValid() bool {
	return slices.Contains(AllSlots(), s)
}

// IsRing reports whether the slot is one of the ring slots
func (s Slot) IsRing() bool {
	return s.IsValid() && strings.HasPrefix(string(s), "ring")
}

// UnmarshalText accepts slot names case-insensitively
func (s *Slot) UnmarshalText(text []byte) error {
	slot, ok := SlotFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown equipment slot %q", string(text))
	}
	*s = slot
	return nil
}

// AllSlots returns a slice of all valid equipment slots
func AllSlots() []Slot {
	return []Slot{
		SlotHelmet,
		SlotMainHand,
		SlotOffHand,
		SlotBoots,
		SlotGloves,
		SlotPants,
		SlotRing1,
		SlotRing2,
		SlotRing3,
		SlotRing4,
		SlotRing5,
		SlotRing6,
		SlotRing7,
		SlotRing8,
		SlotRing9,
		SlotRing10,
	}
}

// SlotFromString converts a string to a Slot
// Returns the slot and true if valid, empty slot and false if invalid
func SlotFromString(s string) (Slot, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	// "mainhand" and "offhand" appear in older data files
	switch normalized {
	case "mainhand":
		normalized = string(SlotMainHand)
	case "offhand":
		normalized = string(SlotOffHand)
	}
	slot := Slot(normalized)
	if slot.IsValid() {
		return slot, true
	}
	return "", false
}

// Template is a static catalog entry an item is generated from
type Template struct {
	ID               string         `json:"id"`
	DisplayName      string         `json:"displayName"`
	Description      string         `json:"description,omitempty"`
	IconResourcePath string         `json:"iconResourcePath,omitempty"`
	Slot             Slot           `json:"slot"`
	Tags             []string       `json:"tags,omitempty"`
	BaseModifier     stats.Modifier `json:"baseModifier"`
}

// HasTag reports whether the template carries tag, ignoring case
func (t *Template) HasTag(tag string) bool {
	return containsFold(t.Tags, tag)
}

// StatRoll is the range one affix stat is drawn from
type StatRoll struct {
	StatID    string          `json:"statId"`
	MinValue  float64         `json:"minValue"`
	MaxValue  float64         `json:"maxValue"`
	Operation stats.Operation `json:"operation"`
}

// AffixDefinition is a rollable modifier definition. Definitions are loaded
// once and never mutated.
type AffixDefinition struct {
	ID           string     `json:"id"`
	DisplayName  string     `json:"displayName,omitempty"`
	Description  string     `json:"description,omitempty"`
	Weight       float64    `json:"weight"`
	MinLevel     int        `json:"minLevel"`
	MaxLevel     int        `json:"maxLevel"`
	AllowedSlots []Slot     `json:"allowedSlots,omitempty"`
	RequiredTags []string   `json:"requiredTags,omitempty"`
	ExcludedTags []string   `json:"excludedTags,omitempty"`
	StatRolls    []StatRoll `json:"statRolls"`
}

// AffixInstance is the frozen result of rolling an AffixDefinition
type AffixInstance struct {
	AffixID     string        `json:"affixId" yaml:"affixId"`
	DisplayName string        `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Entries     []stats.Entry `json:"entries" yaml:"entries"`
}

// Modifier returns the instance's entries as a modifier
func (a *AffixInstance) Modifier() stats.Modifier {
	return stats.NewModifier(a.Entries...)
}

// Clone returns a deep copy
func (a *AffixInstance) Clone() *AffixInstance {
	if a == nil {
		return nil
	}
	return &AffixInstance{
		AffixID:     a.AffixID,
		DisplayName: a.DisplayName,
		Description: a.Description,
		Entries:     slices.Clone(a.Entries),
	}
}

// Item is a concrete generated piece of equipment
type Item struct {
	ID          string           `json:"id" yaml:"id"`
	TemplateID  string           `json:"templateId" yaml:"templateId"`
	DisplayName string           `json:"displayName" yaml:"displayName"`
	Slot        Slot             `json:"slot" yaml:"slot"`
	ItemLevel   int              `json:"itemLevel" yaml:"itemLevel"`
	Rarity      Rarity           `json:"rarity" yaml:"rarity"`
	Affixes     []*AffixInstance `json:"affixes" yaml:"affixes"`
	Modifier    stats.Modifier   `json:"modifier" yaml:"modifier"`
	GeneratedAt time.Time        `json:"generatedAt" yaml:"generatedAt"`
}

// GetID returns the item's instance ID
func (i *Item) GetID() string {
	return i.ID
}

// GetType returns the entity type for rpg-toolkit
func (i *Item) GetType() string {
	return "equipment_item"
}

// AffixIDs returns the definition ids of the item's affixes in order. Nil
// entries are skipped.
func (i *Item) AffixIDs() []string {
	ids := make([]string, 0, len(i.Affixes))
	for _, a := range i.Affixes {
		if a == nil {
			continue
		}
		ids = append(ids, a.AffixID)
	}
	return ids
}

// HasAffix reports whether an affix with the given definition id is present
func (i *Item) HasAffix(affixID string) bool {
	for _, a := range i.Affixes {
		if a != nil && a.AffixID == affixID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	if i.Affixes != nil {
		c.Affixes = make([]*AffixInstance, 0, len(i.Affixes))
		for _, a := range i.Affixes {
			c.Affixes = append(c.Affixes, a.Clone())
		}
	}
	c.Modifier = i.Modifier.Clone()
	return &c
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
