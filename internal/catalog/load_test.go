package catalog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-loot/internal/catalog"
	"github.com/KirkDiggler/rpg-loot/internal/engine"
	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

type LoadTestSuite struct {
	suite.Suite
}

func TestLoadTestSuite(t *testing.T) {
	suite.Run(t, new(LoadTestSuite))
}

const equipmentJSON = `{
  "items": [
    {
      "id": "bow",
      "displayName": "Bow",
      "slot": "main_hand",
      "tags": ["ranged"],
      "baseModifier": {"entries": [{"statId": "baseDamage", "value": 5, "operation": "add"}]}
    },
    {
      "id": "bow",
      "displayName": "Second Bow",
      "slot": "main_hand"
    },
    {
      "id": "",
      "displayName": "Nameless",
      "slot": "boots"
    },
    {
      "id": "old_helmet",
      "displayName": "Old Helmet",
      "slot": "Helmet",
      "modifiers": {"entries": [], "armor": 4, "chainCount": 1}
    }
  ]
}`

func (s *LoadTestSuite) TestLoadEquipmentJSON() {
	var doc catalog.EquipmentFile
	s.Require().NoError(catalog.Decode(strings.NewReader(equipmentJSON), catalog.FormatJSON, &doc))

	cat, warnings, err := catalog.LoadEquipment(doc.Items, nil)
	s.Require().NoError(err)

	s.Equal(2, cat.Len())
	bow, ok := cat.Get("bow")
	s.Require().True(ok)
	s.Equal("Bow", bow.DisplayName, "first occurrence wins")
	s.InDelta(5.0, bow.BaseModifier.Sum(stats.BaseDamage), 1e-9)

	helmet, ok := cat.Get("old_helmet")
	s.Require().True(ok)
	s.Equal(equipment.SlotHelmet, helmet.Slot)
	s.InDelta(4.0, helmet.BaseModifier.Sum(stats.Armor), 1e-9)
	s.InDelta(1.0, helmet.BaseModifier.Sum(stats.ChainCount), 1e-9)

	kinds := make([]catalog.WarningKind, 0, len(warnings))
	for _, w := range warnings {
		kinds = append(kinds, w.Kind)
	}
	s.Equal([]catalog.WarningKind{
		catalog.WarningDuplicateID,
		catalog.WarningEmptyID,
		catalog.WarningLegacyFields,
	}, kinds)
}

func (s *LoadTestSuite) TestUnknownSlotAbortsLoad() {
	records := []catalog.EquipmentRecord{{ID: "cape", Slot: "cloak"}}

	cat, _, err := catalog.LoadEquipment(records, nil)

	s.Nil(cat)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *LoadTestSuite) TestUnparsableRecordAbortsLoad() {
	var doc catalog.EquipmentFile
	err := catalog.Decode(strings.NewReader(`{"items": [{"id": 12}]}`), catalog.FormatJSON, &doc)

	s.Require().Error(err)
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
}

func (s *LoadTestSuite) TestUnknownOperationAbortsDecode() {
	var doc catalog.EquipmentFile
	err := catalog.Decode(strings.NewReader(`{"items": [{"id": "x", "slot": "boots",
		"baseModifier": {"entries": [{"statId": "armor", "value": 1, "operation": "divide"}]}}]}`),
		catalog.FormatJSON, &doc)

	s.Error(err)
}

func (s *LoadTestSuite) TestUnknownStatWarnsButKeepsRecord() {
	records := []catalog.EquipmentRecord{{
		ID:   "boots",
		Slot: "boots",
		BaseModifier: catalog.ModifierRecord{Entries: []stats.Entry{
			stats.NewEntry("jumpHeight", 1, stats.OperationAdd),
		}},
	}}
	opts := &catalog.Options{KnownStat: func(id string) bool { return id != "jumpHeight" }}

	cat, warnings, err := catalog.LoadEquipment(records, opts)

	s.Require().NoError(err)
	s.Equal(1, cat.Len())
	s.Require().Len(warnings, 1)
	s.Equal(catalog.WarningUnknownStat, warnings[0].Kind)
}

const affixYAML = `
affixes:
  - id: of_fire
    displayName: Fiery
    weight: 2
    statRolls:
      - statId: fireDamageMin
        minValue: 1
        maxValue: 3
        operation: add
  - id: sturdy
    allowedSlots: [helmet, BOOTS]
    excludedTags: [light]
    statRolls:
      - statId: armor
        minValue: 5
        maxValue: 10
  - id: hollow
    statRolls: []
  - id: backwards
    minLevel: 20
    maxLevel: 10
    statRolls:
      - statId: armor
        minValue: 1
        maxValue: 2
`

func (s *LoadTestSuite) TestLoadAffixesYAML() {
	var doc catalog.AffixFile
	s.Require().NoError(catalog.Decode(strings.NewReader(affixYAML), catalog.FormatYAML, &doc))

	cat, warnings, err := catalog.LoadAffixes(doc.Affixes, nil)
	s.Require().NoError(err)

	s.Equal(2, cat.Len())

	fire, ok := cat.Get("of_fire")
	s.Require().True(ok)
	s.InDelta(2.0, fire.Weight, 1e-9)
	s.Equal(catalog.DefaultAffixMinLevel, fire.MinLevel)
	s.Equal(catalog.DefaultAffixMaxLevel, fire.MaxLevel)
	s.Equal(stats.OperationAdd, fire.StatRolls[0].Operation)

	sturdy, ok := cat.Get("sturdy")
	s.Require().True(ok)
	s.InDelta(catalog.DefaultAffixWeight, sturdy.Weight, 1e-9)
	s.Equal([]equipment.Slot{equipment.SlotHelmet, equipment.SlotBoots}, sturdy.AllowedSlots)
	s.Equal(stats.OperationDefault, sturdy.StatRolls[0].Operation)

	s.Require().Len(warnings, 2)
	s.Equal(catalog.WarningNoStatRolls, warnings[0].Kind)
	s.Equal("hollow", warnings[0].ID)
	s.Equal(catalog.WarningBadRange, warnings[1].Kind)
}

func (s *LoadTestSuite) TestUnknownAllowedSlotAbortsLoad() {
	records := []catalog.AffixRecord{{
		ID:           "odd",
		AllowedSlots: []string{"tail"},
		StatRolls:    []catalog.StatRollRecord{{StatID: stats.Armor, MinValue: 1, MaxValue: 2}},
	}}

	_, _, err := catalog.LoadAffixes(records, nil)

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *LoadTestSuite) TestLoadFilesFromDisk() {
	dir := s.T().TempDir()
	equipmentPath := filepath.Join(dir, "equipment.json")
	affixPath := filepath.Join(dir, "affixes.yml")
	s.Require().NoError(os.WriteFile(equipmentPath, []byte(equipmentJSON), 0o600))
	s.Require().NoError(os.WriteFile(affixPath, []byte(affixYAML), 0o600))

	equipCat, _, err := catalog.LoadEquipmentFile(equipmentPath, nil)
	s.Require().NoError(err)
	s.Equal(2, equipCat.Len())

	affixCat, _, err := catalog.LoadAffixFile(affixPath, nil)
	s.Require().NoError(err)
	s.Equal(2, affixCat.Len())

	_, _, err = catalog.LoadAffixFile(filepath.Join(dir, "missing.yaml"), nil)
	s.True(errors.IsNotFound(err))
}

func (s *LoadTestSuite) TestRarityTableOverride() {
	table, err := catalog.NewRarityTable([]catalog.RarityRecord{{Rarity: "Rare", MinAffixes: 1, MaxAffixes: 1}})
	s.Require().NoError(err)

	rare, ok := table.Get(equipment.RarityRare)
	s.Require().True(ok)
	s.Equal(1, rare.MaxAffixes)

	magic, ok := table.Get(equipment.RarityMagic)
	s.Require().True(ok)
	s.Equal(2, magic.MaxAffixes, "unlisted rarities keep defaults")

	_, err = catalog.NewRarityTable([]catalog.RarityRecord{{Rarity: "mythic"}})
	s.Error(err)

	_, err = catalog.NewRarityTable([]catalog.RarityRecord{{Rarity: "epic", MinAffixes: 3, MaxAffixes: 2}})
	s.Error(err)
}

func (s *LoadTestSuite) TestEncodeYAMLMigratedFile() {
	doc := catalog.EquipmentFile{Items: []catalog.EquipmentRecord{{
		ID:           "boots",
		Slot:         "boots",
		BaseModifier: catalog.ModifierRecord{LegacyModifier: catalog.LegacyModifier{MoveSpeed: 0.5}},
	}}}

	migrated, changed := catalog.MigrateEquipmentFile(doc)
	s.Equal(1, changed)

	var buf bytes.Buffer
	s.Require().NoError(catalog.Encode(&buf, catalog.FormatYAML, migrated))

	var decoded catalog.EquipmentFile
	s.Require().NoError(catalog.Decode(&buf, catalog.FormatYAML, &decoded))
	s.Require().Len(decoded.Items, 1)
	s.Require().Len(decoded.Items[0].BaseModifier.Entries, 1)
	s.Equal(stats.MoveSpeed, decoded.Items[0].BaseModifier.Entries[0].StatID)
	s.InDelta(0.0, decoded.Items[0].BaseModifier.MoveSpeed, 1e-9)
}

func (s *LoadTestSuite) TestBundledCatalogsLoadCleanly() {
	registry := engine.NewDefaultRegistry()
	opts := &catalog.Options{KnownStat: registry.IsKnown}

	items, warnings, err := catalog.LoadEquipmentFile(filepath.Join("..", "..", "data", "equipment.yaml"), opts)
	s.Require().NoError(err)
	s.Empty(warnings)
	s.Positive(items.Len())

	affixes, warnings, err := catalog.LoadAffixFile(filepath.Join("..", "..", "data", "affixes.yaml"), opts)
	s.Require().NoError(err)
	s.Empty(warnings)

	for _, t := range items.All() {
		s.NotEmpty(affixes.GetEligibleAffixes(t, 1), "template %s has no affixes at level 1", t.ID)
	}
}
