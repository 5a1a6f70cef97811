package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-loot/internal/catalog"
	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
)

func TestMigrateModifierIsPure(t *testing.T) {
	original := catalog.ModifierRecord{
		Entries: []stats.Entry{stats.NewEntry(stats.BaseDamage, 2, stats.OperationAdd)},
		LegacyModifier: catalog.LegacyModifier{
			MaxHealth:       25,
			ProjectileCount: 1,
			WeaponDamageMax: 3.5,
		},
	}

	migrated, changed := catalog.MigrateModifier(original)

	require.True(t, changed)
	require.Len(t, migrated.Entries, 4)
	assert.Equal(t, stats.BaseDamage, migrated.Entries[0].StatID)
	assert.Equal(t, stats.MaxHealth, migrated.Entries[1].StatID)
	assert.Equal(t, stats.ProjectileCount, migrated.Entries[2].StatID)
	assert.Equal(t, stats.WeaponDamageMax, migrated.Entries[3].StatID)
	assert.Equal(t, stats.OperationDefault, migrated.Entries[1].Operation)
	assert.Equal(t, catalog.LegacyModifier{}, migrated.LegacyModifier)

	assert.Len(t, original.Entries, 1, "input must not change")
	assert.InDelta(t, 25.0, original.MaxHealth, 1e-9)
}

func TestMigrateModifierWithoutLegacyFields(t *testing.T) {
	rec := catalog.ModifierRecord{Entries: []stats.Entry{stats.NewEntry(stats.Armor, 1, stats.OperationAdd)}}

	migrated, changed := catalog.MigrateModifier(rec)

	assert.False(t, changed)
	assert.Equal(t, rec.Entries, migrated.Entries)
}

func TestMigrateEquipmentFileFoldsOldKey(t *testing.T) {
	doc := catalog.EquipmentFile{Items: []catalog.EquipmentRecord{
		{ID: "new", Slot: "boots"},
		{
			ID:   "old",
			Slot: "gloves",
			Modifiers: &catalog.ModifierRecord{
				Entries:        []stats.Entry{stats.NewEntry(stats.CritChance, 0.05, stats.OperationAdd)},
				LegacyModifier: catalog.LegacyModifier{Armor: 2},
			},
		},
	}}

	migrated, changed := catalog.MigrateEquipmentFile(doc)

	assert.Equal(t, 1, changed)
	old := migrated.Items[1]
	assert.Nil(t, old.Modifiers)
	require.Len(t, old.BaseModifier.Entries, 2)
	assert.Equal(t, stats.CritChance, old.BaseModifier.Entries[0].StatID)
	assert.Equal(t, stats.Armor, old.BaseModifier.Entries[1].StatID)
	assert.NotNil(t, doc.Items[1].Modifiers, "input must not change")
}

func TestImportEquipmentCSV(t *testing.T) {
	input := strings.Join([]string{
		"id,DisplayName,description,slot,tags,iconResourcePath,baseDamage,moveSpeed:multiply,armor",
		"bow,Bow,A simple bow,main_hand,ranged|bow,Icons/bow,5,,0",
		",,,,,,,,",
		"cap,Leather Cap,,helmet,armor| light ,,,0.1,3",
	}, "\n")

	records, err := catalog.ImportEquipmentCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	bow := records[0]
	assert.Equal(t, "bow", bow.ID)
	assert.Equal(t, "Bow", bow.DisplayName)
	assert.Equal(t, "main_hand", bow.Slot)
	assert.Equal(t, []string{"ranged", "bow"}, bow.Tags)
	assert.Equal(t, "Icons/bow", bow.IconResourcePath)
	require.Len(t, bow.BaseModifier.Entries, 1)
	assert.Equal(t, stats.NewEntry(stats.BaseDamage, 5, stats.OperationDefault), bow.BaseModifier.Entries[0])

	leatherCap := records[1]
	assert.Equal(t, []string{"armor", "light"}, leatherCap.Tags)
	require.Len(t, leatherCap.BaseModifier.Entries, 2)
	assert.Equal(t, stats.NewEntry(stats.MoveSpeed, 0.1, stats.OperationMultiply), leatherCap.BaseModifier.Entries[0])
	assert.Equal(t, stats.Armor, leatherCap.BaseModifier.Entries[1].StatID)
}

func TestImportEquipmentCSVErrors(t *testing.T) {
	_, err := catalog.ImportEquipmentCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = catalog.ImportEquipmentCSV(strings.NewReader("id,armor:divide\nx,1"))
	assert.Error(t, err)

	_, err = catalog.ImportEquipmentCSV(strings.NewReader("id,armor\nx,lots"))
	assert.Error(t, err)
}
