package ports

import (
	"context"

	"github.com/bnema/slotguard/internal/domain"
)

type Ledger interface {
	HasBalance(ctx context.Context, user domain.UserID, amount float64) (bool, error)
	Withdraw(ctx context.Context, user domain.UserID, amount float64) error
}
