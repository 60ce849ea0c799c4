package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chainsafe/htlc-escrow/pkg/htlc"
	"github.com/chainsafe/htlc-escrow/pkg/htlc/engine"
)

func TestMemory_TransferDebitsVault(t *testing.T) {
	m := NewMemory(htlc.NewAmount(100), nil)

	if err := m.Transfer(context.Background(), "bob", htlc.NewAmount(60)); err != nil {
		t.Fatalf("Transfer() failed: %v", err)
	}
	if !m.Vault().Equal(htlc.NewAmount(40)) || !m.Balance("bob").Equal(htlc.NewAmount(60)) {
		t.Fatalf("unexpected balances: vault=%s bob=%s", m.Vault(), m.Balance("bob"))
	}

	err := m.Transfer(context.Background(), "bob", htlc.NewAmount(41))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if !m.Vault().Equal(htlc.NewAmount(40)) {
		t.Fatalf("failed transfer changed the vault: %s", m.Vault())
	}

	if err := m.Transfer(context.Background(), "", htlc.NewAmount(1)); !errors.Is(err, htlc.ErrInvalidAccount) {
		t.Fatalf("expected ErrInvalidAccount, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.Transfer(ctx, "bob", htlc.NewAmount(1)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	entries := m.Entries()
	if len(entries) != 1 || entries[0].From != VaultAccount || entries[0].To != "bob" {
		t.Fatalf("unexpected transfer log: %+v", entries)
	}
}

func TestMemory_LockAndUnlock(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(htlc.Amount{}, nil)
	if err := m.Credit("alice", htlc.NewAmount(50)); err != nil {
		t.Fatalf("Credit() failed: %v", err)
	}

	if err := m.Lock(ctx, "alice", htlc.NewAmount(30)); err != nil {
		t.Fatalf("Lock() failed: %v", err)
	}
	if !m.Vault().Equal(htlc.NewAmount(30)) || !m.Balance("alice").Equal(htlc.NewAmount(20)) {
		t.Fatalf("unexpected balances: vault=%s alice=%s", m.Vault(), m.Balance("alice"))
	}

	// Overdrawn and unknown accounts are refused without side effects.
	if err := m.Lock(ctx, "alice", htlc.NewAmount(21)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if err := m.Lock(ctx, "stranger", htlc.NewAmount(1)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds for unknown account, got %v", err)
	}
	if !m.Vault().Equal(htlc.NewAmount(30)) || !m.Balance("alice").Equal(htlc.NewAmount(20)) {
		t.Fatalf("refused lock changed balances: vault=%s alice=%s", m.Vault(), m.Balance("alice"))
	}

	if err := m.Unlock(ctx, "alice", htlc.NewAmount(30)); err != nil {
		t.Fatalf("Unlock() failed: %v", err)
	}
	if !m.Vault().IsZero() || !m.Balance("alice").Equal(htlc.NewAmount(50)) {
		t.Fatalf("unexpected balances after unlock: vault=%s alice=%s", m.Vault(), m.Balance("alice"))
	}
	if err := m.Unlock(ctx, "alice", htlc.NewAmount(1)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds unlocking an empty vault, got %v", err)
	}
	if got := len(m.Entries()); got != 2 {
		t.Fatalf("expected 2 log entries, got %d", got)
	}
}

func TestMemory_UncoveredLockDoesNotDrainOtherEscrows(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(htlc.Amount{}, nil)
	if err := m.Credit("carol", htlc.NewAmount(100)); err != nil {
		t.Fatalf("Credit() failed: %v", err)
	}
	if err := m.Credit("alice", htlc.NewAmount(10)); err != nil {
		t.Fatalf("Credit() failed: %v", err)
	}
	eng, err := engine.New("operator", m)
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}

	deadline := time.Now().Add(time.Hour)
	carolEscrow, err := eng.CreateEscrow(ctx, engine.CreateEscrowParams{
		Sender: "carol", Receiver: "dave", Amount: htlc.NewAmount(100),
		Commitment: htlc.HashSecret([]byte("carol")), Deadline: deadline,
	})
	if err != nil {
		t.Fatalf("CreateEscrow(carol) failed: %v", err)
	}

	_, err = eng.CreateEscrow(ctx, engine.CreateEscrowParams{
		Sender: "alice", Receiver: "bob", Amount: htlc.NewAmount(100),
		Commitment: htlc.HashSecret([]byte("alice")), Deadline: deadline,
	})
	if !errors.Is(err, htlc.ErrInvalidAmount) || !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInvalidAmount wrapping ErrInsufficientFunds, got %v", err)
	}
	if s := eng.Stats(); s.Escrows != 1 {
		t.Fatalf("expected only carol's escrow, got %d", s.Escrows)
	}
	if !m.Vault().Equal(htlc.NewAmount(100)) || !m.Balance("alice").Equal(htlc.NewAmount(10)) {
		t.Fatalf("unexpected balances: vault=%s alice=%s", m.Vault(), m.Balance("alice"))
	}

	// carol's escrow is still fully backed.
	p, err := eng.Claim(ctx, carolEscrow.ID, []byte("carol"), "dave")
	if err != nil {
		t.Fatalf("Claim() failed: %v", err)
	}
	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.Wait(waitCtx); err != nil {
		t.Fatalf("payout failed: %v", err)
	}
	if !m.Balance("dave").Equal(htlc.NewAmount(100)) || !m.Vault().IsZero() {
		t.Fatalf("unexpected balances: dave=%s vault=%s", m.Balance("dave"), m.Vault())
	}
}

func TestMemory_BacksEngineEndToEnd(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(htlc.Amount{}, nil)
	if err := m.Credit("alice", htlc.NewAmount(1000)); err != nil {
		t.Fatalf("Credit() failed: %v", err)
	}
	eng, err := engine.New("operator", m)
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}

	secret := []byte("end-to-end")
	esc, err := eng.CreateEscrow(ctx, engine.CreateEscrowParams{
		Sender:     "alice",
		Receiver:   "bob",
		Amount:     htlc.NewAmount(400),
		Commitment: htlc.HashSecret(secret),
		Deadline:   time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateEscrow() failed: %v", err)
	}
	if !m.Vault().Equal(htlc.NewAmount(400)) {
		t.Fatalf("expected 400 locked, got %s", m.Vault())
	}

	p, err := eng.Claim(ctx, esc.ID, secret, "bob")
	if err != nil {
		t.Fatalf("Claim() failed: %v", err)
	}
	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.Wait(waitCtx); err != nil {
		t.Fatalf("payout failed: %v", err)
	}

	if !m.Vault().IsZero() || !m.Balance("bob").Equal(htlc.NewAmount(400)) || !m.Balance("alice").Equal(htlc.NewAmount(600)) {
		t.Fatalf("unexpected balances: vault=%s alice=%s bob=%s", m.Vault(), m.Balance("alice"), m.Balance("bob"))
	}
}
