// Package ledger provides the currency balance collaborator used to pay for
// crafting operations
package ledger

//go:generate mockgen -destination=mock/mock_ledger.go -package=ledgermock github.com/KirkDiggler/rpg-loot/internal/repositories/ledger Ledger

import "context"

// Ledger is the narrow view crafting has of a currency balance
type Ledger interface {
	// ContainsAtLeast reports whether the balance of currencyID is at least amount
	// Returns errors.InvalidArgument for an empty currency id or negative amount
	// Returns errors.Internal for storage failures
	ContainsAtLeast(ctx context.Context, currencyID string, amount int) (bool, error)

	// Consume removes amount of currencyID if the balance covers it. The check
	// and the decrement happen atomically; false means nothing was removed.
	// Returns errors.InvalidArgument for an empty currency id or negative amount
	// Returns errors.Internal for storage failures
	Consume(ctx context.Context, currencyID string, amount int) (bool, error)
}

// Account is a Ledger that can also be funded and inspected
type Account interface {
	Ledger

	// Deposit adds amount of currencyID
	// Returns errors.InvalidArgument for an empty currency id or negative amount
	Deposit(ctx context.Context, currencyID string, amount int) error

	// Balance returns the current balance of currencyID, zero when unknown
	Balance(ctx context.Context, currencyID string) (int, error)
}

const (
	errCurrencyIDEmpty = "currency ID cannot be empty"
	errAmountNegative  = "amount cannot be negative"
)
