// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	ledgermock "github.com/KirkDiggler/rpg-loot/internal/repositories/ledger/mock"
)

// ExpectPayment sets up a successful balance check followed by a successful
// consume of cost
func ExpectPayment(ctx context.Context, mockLedger *ledgermock.MockLedger, currencyID string, cost int) {
	gomock.InOrder(
		mockLedger.EXPECT().
			ContainsAtLeast(ctx, currencyID, cost).
			Return(true, nil),
		mockLedger.EXPECT().
			Consume(ctx, currencyID, cost).
			Return(true, nil),
	)
}

// ExpectInsufficientBalance sets up a failing balance check and forbids any consume
func ExpectInsufficientBalance(ctx context.Context, mockLedger *ledgermock.MockLedger, currencyID string, cost int) {
	mockLedger.EXPECT().
		ContainsAtLeast(ctx, currencyID, cost).
		Return(false, nil)
	mockLedger.EXPECT().
		Consume(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)
}

// ExpectNoLedgerCalls forbids every ledger call
func ExpectNoLedgerCalls(mockLedger *ledgermock.MockLedger) {
	mockLedger.EXPECT().
		ContainsAtLeast(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)
	mockLedger.EXPECT().
		Consume(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)
}
