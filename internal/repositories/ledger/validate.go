package ledger

import "github.com/KirkDiggler/rpg-loot/internal/errors"

func validateRequest(currencyID string, amount int) error {
	if currencyID == "" {
		return errors.InvalidArgument(errCurrencyIDEmpty)
	}
	if amount < 0 {
		return errors.InvalidArgument(errAmountNegative).WithMeta("amount", amount)
	}
	return nil
}
