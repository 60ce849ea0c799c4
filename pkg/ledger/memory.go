// Package ledger provides an in-memory home ledger for development and tests.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

// ErrInsufficientFunds is returned when an account cannot cover a lock or the
// vault cannot cover a payout.
var ErrInsufficientFunds = errors.New("insufficient vault balance")

// Entry is one movement of value recorded by the ledger.
type Entry struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Amount htlc.Amount `json:"amount"`
	At     time.Time   `json:"at"`
}

// VaultAccount names the engine's own holding account in the transfer log.
const VaultAccount = "vault"

// Memory holds account balances and the engine vault.
//
// Value enters the vault when the engine locks a sender's balance at escrow,
// fill or cross-chain request creation. Accounts start empty unless credited,
// so every open obligation is backed by value already in the vault. Payouts
// move value from the vault to the recipient.
type Memory struct {
	mu       sync.Mutex
	vault    htlc.Amount
	balances map[string]htlc.Amount
	log      []Entry
	logger   *zap.Logger
	now      func() time.Time
}

// NewMemory creates a ledger whose vault starts at vault.
func NewMemory(vault htlc.Amount, logger *zap.Logger) *Memory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Memory{
		vault:    vault,
		balances: make(map[string]htlc.Amount),
		logger:   logger,
		now:      time.Now,
	}
}

// Credit adds amount to account.
func (m *Memory) Credit(account string, amount htlc.Amount) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := m.balances[account].Add(amount)
	if err != nil {
		return err
	}
	m.balances[account] = next
	return nil
}

// Transfer pays amount out of the vault to the given account.
func (m *Memory) Transfer(ctx context.Context, to string, amount htlc.Amount) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if to == "" {
		return fmt.Errorf("%w: empty recipient", htlc.ErrInvalidAccount)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	vault, err := m.vault.Sub(amount)
	if err != nil {
		return fmt.Errorf("%w: vault holds %s, payout needs %s", ErrInsufficientFunds, m.vault, amount)
	}
	balance, err := m.balances[to].Add(amount)
	if err != nil {
		return err
	}
	m.vault = vault
	m.balances[to] = balance
	m.log = append(m.log, Entry{From: VaultAccount, To: to, Amount: amount, At: m.now()})
	m.logger.Debug("Paid out of vault",
		zap.String("to", to),
		zap.String("amount", amount.String()),
		zap.String("vault", vault.String()),
	)
	return nil
}

// Lock moves amount from the account into the vault. It implements
// engine.Locker and fails without side effects when the balance is short.
func (m *Memory) Lock(ctx context.Context, from string, amount htlc.Amount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rest, err := m.balances[from].Sub(amount)
	if err != nil {
		return fmt.Errorf("%w: %s holds %s, lock needs %s", ErrInsufficientFunds, from, m.balances[from], amount)
	}
	vault, err := m.vault.Add(amount)
	if err != nil {
		return err
	}
	m.balances[from] = rest
	m.vault = vault
	m.log = append(m.log, Entry{From: from, To: VaultAccount, Amount: amount, At: m.now()})
	m.logger.Debug("Locked funds",
		zap.String("from", from),
		zap.String("amount", amount.String()),
		zap.String("vault", vault.String()),
	)
	return nil
}

// Unlock returns a lock that was never committed.
func (m *Memory) Unlock(_ context.Context, from string, amount htlc.Amount) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	vault, err := m.vault.Sub(amount)
	if err != nil {
		return fmt.Errorf("%w: vault holds %s, unlock needs %s", ErrInsufficientFunds, m.vault, amount)
	}
	balance, err := m.balances[from].Add(amount)
	if err != nil {
		return err
	}
	m.vault = vault
	m.balances[from] = balance
	m.log = append(m.log, Entry{From: VaultAccount, To: from, Amount: amount, At: m.now()})
	return nil
}

// Vault returns the value currently held for open obligations.
func (m *Memory) Vault() htlc.Amount {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vault
}

func (m *Memory) Balance(account string) htlc.Amount {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[account]
}

// Balances returns a copy of all account balances.
func (m *Memory) Balances() map[string]htlc.Amount {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]htlc.Amount, len(m.balances))
	for k, v := range m.balances {
		out[k] = v
	}
	return out
}

// Entries returns the transfer log in order.
func (m *Memory) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.log...)
}
