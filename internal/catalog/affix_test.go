package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-loot/internal/catalog"
	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/random"
	"github.com/KirkDiggler/rpg-loot/internal/testutils"
)

type AffixCatalogTestSuite struct {
	suite.Suite
	bow    *equipment.Template
	helmet *equipment.Template
	src    random.Source
}

func TestAffixCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(AffixCatalogTestSuite))
}

func (s *AffixCatalogTestSuite) SetupTest() {
	s.bow = testutils.CreateTestBow()
	s.helmet = testutils.CreateTestHelmet()
	s.src = random.NewSeeded(1234)
}

func (s *AffixCatalogTestSuite) TestLevelBoundsAreInclusive() {
	affix := testutils.CreateTestAffix("ranged", 1, testutils.Roll(stats.BaseDamage, 1, 2, stats.OperationAdd))
	affix.MinLevel = 5
	affix.MaxLevel = 10

	testCases := []struct {
		level int
		want  bool
	}{
		{level: 4, want: false},
		{level: 5, want: true},
		{level: 7, want: true},
		{level: 10, want: true},
		{level: 11, want: false},
	}

	for _, tc := range testCases {
		s.Equal(tc.want, catalog.IsEligible(affix, s.bow, tc.level), "level %d", tc.level)
	}
}

func (s *AffixCatalogTestSuite) TestExcludedTagWinsOverRequired() {
	fireBow := testutils.CreateTestBow()
	fireBow.Tags = append(fireBow.Tags, "Fire")

	affix := testutils.CreateTestAffix("frost", 1, testutils.Roll(stats.ColdDamageMin, 1, 2, stats.OperationAdd))
	affix.ExcludedTags = []string{"fire"}
	affix.RequiredTags = []string{"ranged", "fire"}

	s.False(catalog.IsEligible(affix, fireBow, 1))
}

func (s *AffixCatalogTestSuite) TestRequiredTagsIgnoreCase() {
	affix := testutils.CreateTestAffix("deadly", 1, testutils.Roll(stats.CritChance, 0.01, 0.02, stats.OperationAdd))
	affix.RequiredTags = []string{"RANGED", "Bow"}

	s.True(catalog.IsEligible(affix, s.bow, 1))
	s.False(catalog.IsEligible(affix, s.helmet, 1))
}

func (s *AffixCatalogTestSuite) TestAllowedSlots() {
	affix := testutils.CreateTestAffix("sturdy", 1, testutils.Roll(stats.Armor, 1, 2, stats.OperationAdd))
	affix.AllowedSlots = []equipment.Slot{equipment.SlotHelmet}

	s.True(catalog.IsEligible(affix, s.helmet, 1))
	s.False(catalog.IsEligible(affix, s.bow, 1))
}

func (s *AffixCatalogTestSuite) TestNoStatRollsIsIneligible() {
	affix := testutils.CreateTestAffix("empty", 1)

	s.False(catalog.IsEligible(affix, s.bow, 1))
}

func (s *AffixCatalogTestSuite) TestGetEligibleAffixes() {
	cat := testutils.NewTestAffixCatalog(s.T())

	ids := func(defs []*equipment.AffixDefinition) []string {
		out := make([]string, 0, len(defs))
		for _, d := range defs {
			out = append(out, d.ID)
		}
		return out
	}

	s.Equal([]string{testutils.AffixOfFire, testutils.AffixOfFrost, testutils.AffixSwift, testutils.AffixDeadly},
		ids(cat.GetEligibleAffixes(s.bow, 1)))
	s.Equal([]string{testutils.AffixOfFire, testutils.AffixOfFrost, testutils.AffixSturdy, testutils.AffixSwift, testutils.AffixOfTitans},
		ids(cat.GetEligibleAffixes(s.helmet, 10)))
}

func (s *AffixCatalogTestSuite) TestNewAffixCatalogWarnings() {
	first := testutils.CreateTestAffix("dup", 1, testutils.Roll(stats.Armor, 1, 2, stats.OperationAdd))
	second := testutils.CreateTestAffix("dup", 5, testutils.Roll(stats.Armor, 1, 2, stats.OperationAdd))
	empty := testutils.CreateTestAffix("hollow", 1)
	noID := testutils.CreateTestAffix("", 1, testutils.Roll(stats.Armor, 1, 2, stats.OperationAdd))

	cat, warnings := catalog.NewAffixCatalog(first, second, empty, noID)

	s.Equal(1, cat.Len())
	got, ok := cat.Get("dup")
	s.Require().True(ok)
	s.Same(first, got)

	s.Require().Len(warnings, 3)
	s.Equal(catalog.WarningDuplicateID, warnings[0].Kind)
	s.Equal(1, warnings[0].Index)
	s.Equal(catalog.WarningNoStatRolls, warnings[1].Kind)
	s.Equal(catalog.WarningEmptyID, warnings[2].Kind)
}

func (s *AffixCatalogTestSuite) TestCreateInstanceRollsWithinRange() {
	affix := testutils.CreateTestAffix("mixed", 1,
		testutils.Roll(stats.FireDamageMin, 3, 1, stats.OperationAdd),
		testutils.Roll("", 1, 2, stats.OperationAdd),
		testutils.Roll(stats.MoveSpeed, 0.1, 0.2, stats.OperationMultiply),
	)

	for i := 0; i < 100; i++ {
		instance := catalog.CreateInstance(s.src, affix)

		s.Require().Len(instance.Entries, 2)
		s.Equal("mixed", instance.AffixID)
		s.Equal(stats.FireDamageMin, instance.Entries[0].StatID)
		s.GreaterOrEqual(instance.Entries[0].Value, 1.0)
		s.LessOrEqual(instance.Entries[0].Value, 3.0)
		s.Equal(stats.OperationMultiply, instance.Entries[1].Operation)
		s.GreaterOrEqual(instance.Entries[1].Value, 0.1)
		s.LessOrEqual(instance.Entries[1].Value, 0.2)
	}
}

func (s *AffixCatalogTestSuite) TestDrawWeightedDistribution() {
	a := testutils.CreateTestAffix("a", 1, testutils.Roll(stats.Armor, 1, 1, stats.OperationAdd))
	b := testutils.CreateTestAffix("b", 3, testutils.Roll(stats.Armor, 1, 1, stats.OperationAdd))
	candidates := []*equipment.AffixDefinition{a, b}

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		chosen := catalog.DrawWeighted(s.src, candidates)
		s.Require().NotNil(chosen)
		counts[chosen.ID]++
	}

	s.Require().Positive(counts["a"])
	ratio := float64(counts["b"]) / float64(counts["a"])
	s.GreaterOrEqual(ratio, 2.5)
	s.LessOrEqual(ratio, 3.5)
}

func (s *AffixCatalogTestSuite) TestDrawWeightedSkipsNonPositiveWeights() {
	zero := testutils.CreateTestAffix("zero", 0, testutils.Roll(stats.Armor, 1, 1, stats.OperationAdd))
	negative := testutils.CreateTestAffix("negative", -2, testutils.Roll(stats.Armor, 1, 1, stats.OperationAdd))
	only := testutils.CreateTestAffix("only", 0.5, testutils.Roll(stats.Armor, 1, 1, stats.OperationAdd))

	for i := 0; i < 100; i++ {
		s.Same(only, catalog.DrawWeighted(s.src, []*equipment.AffixDefinition{zero, only, negative}))
	}
	s.Nil(catalog.DrawWeighted(s.src, []*equipment.AffixDefinition{zero, negative}))
	s.Nil(catalog.DrawWeighted(s.src, nil))
}
