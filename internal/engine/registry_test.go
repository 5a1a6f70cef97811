package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-loot/internal/engine"
	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
)

const tolerance = 1e-4

type RegistryTestSuite struct {
	suite.Suite
	registry *engine.Registry
	sheet    *stats.Sheet
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	s.registry = engine.NewDefaultRegistry()
	s.sheet = stats.NewSheet()
	s.sheet.BaseDamage = 10
	s.sheet.Armor = 7.5
}

func (s *RegistryTestSuite) TestUnknownStatIsNotApplied() {
	before := s.sheet.Clone()

	ok := s.registry.Apply(s.sheet, stats.NewEntry("manaRegen", 5, stats.OperationAdd), engine.SignApply)

	s.False(ok)
	s.Equal(before, s.sheet)
}

func (s *RegistryTestSuite) TestInvalidSignIsNotApplied() {
	ok := s.registry.Apply(s.sheet, stats.NewEntry(stats.BaseDamage, 5, stats.OperationAdd), engine.Sign(2))

	s.False(ok)
	s.InDelta(10.0, s.sheet.BaseDamage, tolerance)
}

func (s *RegistryTestSuite) TestAdd() {
	s.True(s.registry.Apply(s.sheet, stats.NewEntry(stats.BaseDamage, 5, stats.OperationAdd), engine.SignApply))
	s.InDelta(15.0, s.sheet.BaseDamage, tolerance)

	s.True(s.registry.Apply(s.sheet, stats.NewEntry(stats.BaseDamage, 5, stats.OperationAdd), engine.SignReverse))
	s.InDelta(10.0, s.sheet.BaseDamage, tolerance)
}

func (s *RegistryTestSuite) TestMultiply() {
	s.True(s.registry.Apply(s.sheet, stats.NewEntry(stats.BaseDamage, 0.5, stats.OperationMultiply), engine.SignApply))
	s.InDelta(15.0, s.sheet.BaseDamage, tolerance)

	s.True(s.registry.Apply(s.sheet, stats.NewEntry(stats.BaseDamage, 0.5, stats.OperationMultiply), engine.SignReverse))
	s.InDelta(10.0, s.sheet.BaseDamage, tolerance)
}

func (s *RegistryTestSuite) TestDefaultOperationResolvesToRegistered() {
	s.True(s.registry.Apply(s.sheet, stats.NewEntry(stats.Armor, 2.5, stats.OperationDefault), engine.SignApply))
	s.InDelta(10.0, s.sheet.Armor, tolerance)

	op, ok := s.registry.DefaultOperation(stats.Armor)
	s.True(ok)
	s.Equal(stats.OperationAdd, op)
}

func (s *RegistryTestSuite) TestRegisterOverridesLastWins() {
	s.registry.Register(stats.Armor, stats.OperationMultiply, engine.FloatStat(func(sh *stats.Sheet) *float64 {
		return &sh.DodgeChance
	}))

	s.True(s.registry.Apply(s.sheet, stats.NewEntry(stats.Armor, 1, stats.OperationDefault), engine.SignApply))

	s.InDelta(7.5, s.sheet.Armor, tolerance)
	s.InDelta(0.0, s.sheet.DodgeChance, tolerance, "0 * (1+1) is still 0")
	op, _ := s.registry.DefaultOperation(stats.Armor)
	s.Equal(stats.OperationMultiply, op)
}

func (s *RegistryTestSuite) TestReversibilityAcrossRepeatedCycles() {
	modifier := stats.NewModifier(
		stats.NewEntry(stats.BaseDamage, 5, stats.OperationAdd),
		stats.NewEntry(stats.BaseDamage, 0.25, stats.OperationMultiply),
		stats.NewEntry(stats.MaxHealth, -0.3, stats.OperationMultiply),
		stats.NewEntry(stats.MoveSpeed, 1.5, stats.OperationAdd),
		stats.NewEntry(stats.WeaponDamage, 3, stats.OperationAdd),
		stats.NewEntry(stats.CritChance, 0.05, stats.OperationDefault),
		stats.NewEntry(stats.ProjectileCount, 2, stats.OperationAdd),
	)
	before := s.sheet.Clone()

	for i := 0; i < 10; i++ {
		applied := s.registry.ApplyModifier(s.sheet, modifier, engine.SignApply)
		s.Equal(modifier.Len(), applied)
		s.registry.ApplyModifier(s.sheet, modifier, engine.SignReverse)
	}

	s.InDelta(before.BaseDamage, s.sheet.BaseDamage, tolerance)
	s.InDelta(before.MaxHealth, s.sheet.MaxHealth, tolerance)
	s.InDelta(before.MoveSpeed, s.sheet.MoveSpeed, tolerance)
	s.InDelta(before.WeaponDamageMin, s.sheet.WeaponDamageMin, tolerance)
	s.InDelta(before.WeaponDamageMax, s.sheet.WeaponDamageMax, tolerance)
	s.InDelta(before.CritChance, s.sheet.CritChance, tolerance)
	s.Equal(before.ProjectileCount, s.sheet.ProjectileCount)
}

func (s *RegistryTestSuite) TestWeaponDamageAppliesToBothBounds() {
	s.True(s.registry.Apply(s.sheet, stats.NewEntry(stats.WeaponDamage, 4, stats.OperationAdd), engine.SignApply))

	s.InDelta(4.0, s.sheet.WeaponDamageMin, tolerance)
	s.InDelta(4.0, s.sheet.WeaponDamageMax, tolerance)
}

func (s *RegistryTestSuite) TestIntegerStatRounds() {
	s.True(s.registry.Apply(s.sheet, stats.NewEntry(stats.ChainCount, 1.6, stats.OperationAdd), engine.SignApply))
	s.Equal(2, s.sheet.ChainCount)
}

func (s *RegistryTestSuite) TestDegenerateMultiplierDoesNotDivideByZero() {
	entry := stats.NewEntry(stats.BaseDamage, -1, stats.OperationMultiply)

	s.True(s.registry.Apply(s.sheet, entry, engine.SignApply))
	s.True(s.registry.Apply(s.sheet, entry, engine.SignReverse))

	s.InDelta(10.0, s.sheet.BaseDamage, tolerance)
}

func (s *RegistryTestSuite) TestAllowedSkillTags() {
	entry := stats.Entry{StatID: stats.AllowedSkillTags, Text: "Fire"}

	s.True(s.registry.Apply(s.sheet, entry, engine.SignApply))
	s.True(s.registry.Apply(s.sheet, stats.Entry{StatID: stats.AllowedSkillTags, Text: "fire"}, engine.SignApply))
	s.Equal([]string{"Fire"}, s.sheet.AllowedSkillTags)

	s.True(s.registry.Apply(s.sheet, entry, engine.SignReverse))
	s.Empty(s.sheet.AllowedSkillTags)
}

func (s *RegistryTestSuite) TestKnownStatIDsSorted() {
	ids := s.registry.KnownStatIDs()

	s.Len(ids, 29)
	s.IsNonDecreasing(ids)
	s.Contains(ids, stats.AllowedSkillTags)
	s.Contains(ids, stats.WeaponDamage)
}
