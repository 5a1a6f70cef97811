package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("Ledger", "is required")
	ve.AddFieldError("Generator", "is required")

	s.True(ve.HasErrors())
	s.Equal("validation failed: Generator: is required; Ledger: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Registry").
		InvalidField("Rarities", "duplicate rarity magic").
		Fieldf("RerollCost", "must be at least %d", 1)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Registry: is required")
	s.Contains(err.Error(), "Rarities: is invalid: duplicate rarity magic")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestHelpers() {
	testCases := []struct {
		name      string
		apply     func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required present", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("id", "bow", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("id", "  ", vb) }, true},
		{"non-negative zero", func(vb *errors.ValidationBuilder) { errors.ValidateNonNegative("cost", 0, vb) }, false},
		{"non-negative negative", func(vb *errors.ValidationBuilder) { errors.ValidateNonNegative("cost", -1, vb) }, true},
		{"range inside", func(vb *errors.ValidationBuilder) { errors.ValidateRange("level", 5, 1, 10, vb) }, false},
		{"range outside", func(vb *errors.ValidationBuilder) { errors.ValidateRange("level", 11, 1, 10, vb) }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.apply(vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
