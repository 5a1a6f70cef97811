// Package errors provides the structured error type used across rpg-loot.
//
// Every public operation of the loot core returns an error instead of a bare
// boolean. A nil error is success; a non-nil error means the operation did not
// mutate any state (no currency consumed, no item rebuilt, no stats applied).
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("template not found")
//	err := errors.InvalidArgumentf("unknown slot: %s", slot)
//
// Adding metadata:
//
//	err := errors.InsufficientResourcef("not enough %s", currencyID).
//	    WithMeta("currency_id", currencyID).
//	    WithMeta("cost", cost)
//
// Wrapping errors:
//
//	if err := ledger.Consume(ctx, id, cost); err != nil {
//	    return errors.Wrap(err, "failed to consume currency")
//	}
//
// # Error Kinds
//
// The loot core reports four kinds of failure:
//   - InvalidArgument: unknown template id, empty or duplicate id, nil or
//     non-generated item, malformed catalog data
//   - ResourceExhausted: currency balance below the operation cost
//   - NoEligibleOptions: no affix is left to add to an item
//   - FailedPrecondition: the item already carries its rarity's maximum
//     affix count
//
// Non-fatal data problems found while loading catalogs (duplicate ids, affixes
// without stat rolls) are not errors; the catalog package returns them as
// warnings and keeps loading.
//
// # Error Checking
//
//	if errors.IsResourceExhausted(err) {
//	    // prompt for more currency
//	}
//
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Ledger == nil {
//	    vb.RequiredField("Ledger")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
