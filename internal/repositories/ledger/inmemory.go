package ledger

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// InMemoryAccount implements Account using in-memory storage
type InMemoryAccount struct {
	mu       sync.Mutex
	balances map[string]int
}

var _ Account = (*InMemoryAccount)(nil)

// NewInMemory creates an empty in-memory account
func NewInMemory() *InMemoryAccount {
	return &InMemoryAccount{balances: make(map[string]int)}
}

// ContainsAtLeast reports whether the balance covers amount
func (a *InMemoryAccount) ContainsAtLeast(_ context.Context, currencyID string, amount int) (bool, error) {
	if err := validateRequest(currencyID, amount); err != nil {
		return false, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balances[currencyID] >= amount, nil
}

// Consume removes amount when the balance covers it
func (a *InMemoryAccount) Consume(_ context.Context, currencyID string, amount int) (bool, error) {
	if err := validateRequest(currencyID, amount); err != nil {
		return false, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balances[currencyID] < amount {
		return false, nil
	}
	a.balances[currencyID] -= amount
	return true, nil
}

// Deposit adds amount to the balance
func (a *InMemoryAccount) Deposit(_ context.Context, currencyID string, amount int) error {
	if err := validateRequest(currencyID, amount); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balances[currencyID] += amount
	return nil
}

// Balance returns the current balance
func (a *InMemoryAccount) Balance(_ context.Context, currencyID string) (int, error) {
	if currencyID == "" {
		return 0, errors.InvalidArgument(errCurrencyIDEmpty)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balances[currencyID], nil
}
