package stats_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
)

type ModifierTestSuite struct {
	suite.Suite
}

func TestModifierTestSuite(t *testing.T) {
	suite.Run(t, new(ModifierTestSuite))
}

func (s *ModifierTestSuite) TestParseOperation() {
	testCases := []struct {
		name    string
		input   string
		want    stats.Operation
		wantErr bool
	}{
		{name: "empty is default", input: "", want: stats.OperationDefault},
		{name: "add", input: "add", want: stats.OperationAdd},
		{name: "mixed case", input: "Multiply", want: stats.OperationMultiply},
		{name: "short multiply", input: "mul", want: stats.OperationMultiply},
		{name: "unknown", input: "divide", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := stats.ParseOperation(tc.input)
			if tc.wantErr {
				s.Error(err)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

func (s *ModifierTestSuite) TestAddEntriesFromKeepsDuplicates() {
	a := stats.NewModifier(stats.NewEntry(stats.BaseDamage, 5, stats.OperationAdd))
	b := stats.NewModifier(
		stats.NewEntry(stats.BaseDamage, 2, stats.OperationAdd),
		stats.NewEntry(stats.CritChance, 0.1, stats.OperationDefault),
	)

	a.AddEntriesFrom(b)

	s.Equal(3, a.Len())
	s.InDelta(7.0, a.Sum(stats.BaseDamage), 1e-9)
	s.Equal(2, b.Len(), "source modifier must not change")
}

func (s *ModifierTestSuite) TestCloneIsIndependent() {
	original := stats.NewModifier(stats.NewEntry(stats.Armor, 10, stats.OperationAdd))
	clone := original.Clone()

	clone.AddEntry(stats.Armor, 5, stats.OperationAdd)

	s.Equal(1, original.Len())
	s.Equal(2, clone.Len())
}

func (s *ModifierTestSuite) TestEntriesReturnsCopy() {
	m := stats.NewModifier(stats.NewEntry(stats.MoveSpeed, 1, stats.OperationAdd))

	entries := m.Entries()
	entries[0].Value = 99

	s.InDelta(1.0, m.Entries()[0].Value, 1e-9)
}

func (s *ModifierTestSuite) TestSumIgnoresMultiply() {
	m := stats.NewModifier(
		stats.NewEntry(stats.MaxHealth, 10, stats.OperationAdd),
		stats.NewEntry(stats.MaxHealth, 0.5, stats.OperationMultiply),
	)

	s.InDelta(10.0, m.Sum(stats.MaxHealth), 1e-9)
}

func (s *ModifierTestSuite) TestJSONShape() {
	m := stats.NewModifier(stats.NewEntry(stats.BaseDamage, 5, stats.OperationAdd))

	data, err := json.Marshal(m)
	s.Require().NoError(err)
	s.JSONEq(`{"entries":[{"statId":"baseDamage","value":5,"operation":"add"}]}`, string(data))

	var decoded stats.Modifier
	s.Require().NoError(json.Unmarshal([]byte(`{"entries":[{"statId":"armor","value":3,"operation":"MULTIPLY"}]}`), &decoded))
	s.Require().Equal(1, decoded.Len())
	s.Equal(stats.OperationMultiply, decoded.Entries()[0].Operation)
}

func (s *ModifierTestSuite) TestSheetClone() {
	sheet := stats.NewSheet()
	sheet.AllowedSkillTags = []string{"fire"}

	clone := sheet.Clone()
	clone.AllowedSkillTags[0] = "cold"
	clone.MaxHealth = 1

	s.Equal("fire", sheet.AllowedSkillTags[0])
	s.InDelta(100.0, sheet.MaxHealth, 1e-9)
	s.Equal(1, sheet.ProjectileCount)
}
