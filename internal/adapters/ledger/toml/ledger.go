package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/bnema/slotguard/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	ledgerFileMode  = 0o600
	ledgerDirMode   = 0o700
	tempFilePattern = ".ledger-*.toml.tmp"
)

// Ledger keeps user balances in a TOML file. Every call reads the file so edits made while the
// process runs are honored.
type Ledger struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.Ledger = (*Ledger)(nil)

func NewLedger(path string) (*Ledger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("ledger path is empty")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve ledger path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Ledger{path: absPath, mu: lockForPath(absPath)}, nil
}

func (l *Ledger) Balance(ctx context.Context, user domain.UserID) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	file, err := l.readSchema()
	if err != nil {
		return 0, err
	}

	for _, entry := range file.Accounts {
		if entry.User == string(user) {
			return entry.Balance, nil
		}
	}

	return 0, fmt.Errorf("balance of %q: %w", user, domain.ErrAccountNotFound)
}

// HasBalance treats unknown users as holding nothing.
func (l *Ledger) HasBalance(ctx context.Context, user domain.UserID, amount float64) (bool, error) {
	balance, err := l.Balance(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return amount <= 0, nil
		}
		return false, err
	}

	return balance >= amount, nil
}

func (l *Ledger) Withdraw(ctx context.Context, user domain.UserID, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("withdraw %.2f: negative amount", amount)
	}

	return l.update(ctx, user, func(balance float64) (float64, error) {
		if balance < amount {
			return 0, fmt.Errorf("withdraw %.2f from %q: %w", amount, user, domain.ErrInsufficientBalance)
		}
		return balance - amount, nil
	})
}

func (l *Ledger) Deposit(ctx context.Context, user domain.UserID, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit %.2f: amount must be positive", amount)
	}

	return l.update(ctx, user, func(balance float64) (float64, error) {
		return balance + amount, nil
	})
}

// Accounts lists every known balance ordered by user.
func (l *Ledger) Accounts(ctx context.Context) (map[domain.UserID]float64, []domain.UserID, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	file, err := l.readSchema()
	if err != nil {
		return nil, nil, err
	}

	balances := make(map[domain.UserID]float64, len(file.Accounts))
	users := make([]domain.UserID, 0, len(file.Accounts))
	for _, entry := range file.Accounts {
		balances[domain.UserID(entry.User)] = entry.Balance
		users = append(users, domain.UserID(entry.User))
	}
	slices.Sort(users)

	return balances, users, nil
}

func (l *Ledger) update(ctx context.Context, user domain.UserID, apply func(float64) (float64, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(string(user)) == "" {
		return errors.New("user is empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := l.readSchema()
	if err != nil {
		return err
	}

	index := slices.IndexFunc(file.Accounts, func(entry accountSchema) bool { return entry.User == string(user) })
	if index < 0 {
		file.Accounts = append(file.Accounts, accountSchema{User: string(user)})
		index = len(file.Accounts) - 1
	}

	next, err := apply(file.Accounts[index].Balance)
	if err != nil {
		return err
	}
	file.Accounts[index].Balance = next

	if err := ctx.Err(); err != nil {
		return err
	}

	return l.writeSchema(file)
}

func (l *Ledger) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read ledger file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode ledger file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (l *Ledger) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(l.path), ledgerDirMode); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode ledger file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(l.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp ledger file: %w", err)
	}

	if err := tempFile.Chmod(ledgerFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp ledger file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp ledger file: %w", err)
	}

	if err := os.Rename(tempName, l.path); err != nil {
		return fmt.Errorf("replace ledger file: %w", err)
	}

	cleanup = false
	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
