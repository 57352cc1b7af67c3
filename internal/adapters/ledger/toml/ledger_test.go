package toml

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerDepositWithdrawRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ledger.toml")
	ledger, err := NewLedger(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, ledger.Deposit(ctx, "steve", 100))
	require.NoError(t, ledger.Withdraw(ctx, "steve", 30))

	balance, err := ledger.Balance(ctx, "steve")
	require.NoError(t, err)
	assert.InDelta(t, 70, balance, 0.001)

	reopened, err := NewLedger(path)
	require.NoError(t, err)
	ok, err := reopened.HasBalance(ctx, "steve", 70)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = reopened.HasBalance(ctx, "steve", 70.01)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLedgerWithdrawRefusesOverdraft(t *testing.T) {
	t.Parallel()

	ledger, err := NewLedger(filepath.Join(t.TempDir(), "ledger.toml"))
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, ledger.Deposit(ctx, "alex", 10))

	err = ledger.Withdraw(ctx, "alex", 25)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	balance, err := ledger.Balance(ctx, "alex")
	require.NoError(t, err)
	assert.InDelta(t, 10, balance, 0.001)
}

func TestLedgerUnknownUser(t *testing.T) {
	t.Parallel()

	ledger, err := NewLedger(filepath.Join(t.TempDir(), "ledger.toml"))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = ledger.Balance(ctx, "ghost")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	ok, err := ledger.HasBalance(ctx, "ghost", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = ledger.HasBalance(ctx, "ghost", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	err = ledger.Withdraw(ctx, "ghost", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestLedgerRejectsInvalidAmounts(t *testing.T) {
	t.Parallel()

	ledger, err := NewLedger(filepath.Join(t.TempDir(), "ledger.toml"))
	require.NoError(t, err)

	assert.Error(t, ledger.Deposit(context.Background(), "steve", 0))
	assert.Error(t, ledger.Withdraw(context.Background(), "steve", -5))
}

func TestLedgerRejectsFutureSchema(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ledger.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 3\n"), 0o600))
	ledger, err := NewLedger(path)
	require.NoError(t, err)

	_, err = ledger.Balance(context.Background(), "steve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported ledger schema version 3")
}

func TestLedgerConcurrentDepositsAreSerialized(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ledger.toml")
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ledger, err := NewLedger(path)
			if !assert.NoError(t, err) {
				return
			}
			assert.NoError(t, ledger.Deposit(ctx, "steve", 1))
		}()
	}
	wg.Wait()

	ledger, err := NewLedger(path)
	require.NoError(t, err)
	_, users, err := ledger.Accounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.UserID{"steve"}, users)

	balance, err := ledger.Balance(ctx, "steve")
	require.NoError(t, err)
	assert.InDelta(t, 20, balance, 0.001)
}

func TestLedgerHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ledger, err := NewLedger(filepath.Join(t.TempDir(), "ledger.toml"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ledger.Deposit(ctx, "steve", 1), context.Canceled)
}
