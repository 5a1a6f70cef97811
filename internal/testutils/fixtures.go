package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-loot/internal/catalog"
	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
)

// Template and affix ids used by the fixtures
const (
	TemplateBow    = "bow"
	TemplateHelmet = "iron_helmet"
	TemplateRing   = "gold_ring"

	AffixOfFire   = "of_fire"
	AffixOfFrost  = "of_frost"
	AffixSturdy   = "sturdy"
	AffixSwift    = "swift"
	AffixDeadly   = "deadly"
	AffixOfTitans = "of_titans"

	TestOwnerID = "owner-test-001"
)

// CreateTestBow creates a ranged main hand template with +5 base damage
func CreateTestBow() *equipment.Template {
	return &equipment.Template{
		ID:           TemplateBow,
		DisplayName:  "Bow",
		Slot:         equipment.SlotMainHand,
		Tags:         []string{"ranged", "bow"},
		BaseModifier: stats.NewModifier(stats.NewEntry(stats.BaseDamage, 5, stats.OperationAdd)),
	}
}

// CreateTestHelmet creates a heavy helmet template with +10 armor
func CreateTestHelmet() *equipment.Template {
	return &equipment.Template{
		ID:           TemplateHelmet,
		DisplayName:  "Iron Helmet",
		Slot:         equipment.SlotHelmet,
		Tags:         []string{"armor", "heavy"},
		BaseModifier: stats.NewModifier(stats.NewEntry(stats.Armor, 10, stats.OperationAdd)),
	}
}

// CreateTestRing creates a ring template with a small health bonus
func CreateTestRing() *equipment.Template {
	return &equipment.Template{
		ID:           TemplateRing,
		DisplayName:  "Gold Ring",
		Slot:         equipment.SlotRing1,
		Tags:         []string{"jewelry"},
		BaseModifier: stats.NewModifier(stats.NewEntry(stats.MaxHealth, 5, stats.OperationAdd)),
	}
}

// CreateTestAffix creates an affix eligible everywhere from level 1 to 1000
func CreateTestAffix(id string, weight float64, rolls ...equipment.StatRoll) *equipment.AffixDefinition {
	return &equipment.AffixDefinition{
		ID:          id,
		DisplayName: id,
		Weight:      weight,
		MinLevel:    catalog.DefaultAffixMinLevel,
		MaxLevel:    catalog.DefaultAffixMaxLevel,
		StatRolls:   rolls,
	}
}

// Roll is shorthand for an equipment.StatRoll
func Roll(statID string, minValue, maxValue float64, op stats.Operation) equipment.StatRoll {
	return equipment.StatRoll{StatID: statID, MinValue: minValue, MaxValue: maxValue, Operation: op}
}

// CreateTestAffixPool creates a mixed pool of affixes
func CreateTestAffixPool() []*equipment.AffixDefinition {
	fire := CreateTestAffix(AffixOfFire, 1, Roll(stats.FireDamageMin, 1, 3, stats.OperationAdd))
	fire.DisplayName = "Fiery"

	frost := CreateTestAffix(AffixOfFrost, 1, Roll(stats.ColdDamageMin, 2, 4, stats.OperationAdd))
	frost.DisplayName = "Frozen"
	frost.ExcludedTags = []string{"fire"}

	sturdy := CreateTestAffix(AffixSturdy, 2, Roll(stats.Armor, 5, 10, stats.OperationAdd))
	sturdy.DisplayName = "Sturdy"
	sturdy.AllowedSlots = []equipment.Slot{equipment.SlotHelmet}

	swift := CreateTestAffix(AffixSwift, 1, Roll(stats.MoveSpeed, 0.1, 0.2, stats.OperationMultiply))
	swift.DisplayName = "Swift"

	deadly := CreateTestAffix(AffixDeadly, 1, Roll(stats.CritChance, 0.01, 0.05, stats.OperationDefault))
	deadly.DisplayName = "Deadly"
	deadly.RequiredTags = []string{"ranged"}

	titans := CreateTestAffix(AffixOfTitans, 1, Roll(stats.MaxHealth, 10, 20, stats.OperationAdd))
	titans.DisplayName = "Titanic"
	titans.MinLevel = 10

	return []*equipment.AffixDefinition{fire, frost, sturdy, swift, deadly, titans}
}

// NewTestEquipmentCatalog builds an equipment catalog and fails the test on
// any warning
func NewTestEquipmentCatalog(t *testing.T, templates ...*equipment.Template) *catalog.EquipmentCatalog {
	t.Helper()
	if len(templates) == 0 {
		templates = []*equipment.Template{CreateTestBow(), CreateTestHelmet(), CreateTestRing()}
	}
	cat, warnings := catalog.NewEquipmentCatalog(templates...)
	require.Empty(t, warnings)
	return cat
}

// NewTestAffixCatalog builds an affix catalog and fails the test on any warning
func NewTestAffixCatalog(t *testing.T, defs ...*equipment.AffixDefinition) *catalog.AffixCatalog {
	t.Helper()
	if len(defs) == 0 {
		defs = CreateTestAffixPool()
	}
	cat, warnings := catalog.NewAffixCatalog(defs...)
	require.Empty(t, warnings)
	return cat
}

// CreateTestItem builds an item from template with extra entries appended to
// its base modifier, without going through the generator
func CreateTestItem(id string, template *equipment.Template, extra ...stats.Entry) *equipment.Item {
	m := template.BaseModifier.Clone()
	m.Append(extra...)
	return &equipment.Item{
		ID:          id,
		TemplateID:  template.ID,
		DisplayName: template.DisplayName,
		Slot:        template.Slot,
		ItemLevel:   1,
		Rarity:      equipment.RarityMagic,
		Modifier:    m,
	}
}
