package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/htlc-escrow/pkg/app/errors"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
	"github.com/chainsafe/htlc-escrow/pkg/htlc/engine"
)

const (
	owner = "owner"
	alice = "alice"
	bob   = "bob"

	foreignRecipient = "0x52908400098527886E0F7030069857D2E4169EE7"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testLedger blocks every transfer until release is closed (when set) and
// then returns err.
type testLedger struct {
	release chan struct{}
	err     error
}

func (l *testLedger) Transfer(ctx context.Context, _ string, _ htlc.Amount) error {
	if l.release != nil {
		select {
		case <-l.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return l.err
}

func newTestService(t *testing.T, ledger engine.Ledger, wait time.Duration) (Service, *engine.Engine, *testClock) {
	t.Helper()
	clock := &testClock{now: t0}
	eng, err := engine.New(owner, ledger, engine.WithClock(clock.Now))
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = eng.Drain(ctx)
	})
	return NewService(eng, wait, zap.NewNop()), eng, clock
}

func secretPair(name string) (string, string) {
	secret := []byte("preimage-" + name)
	return hex.EncodeToString(secret), htlc.HashSecret(secret).String()
}

func statusOf(t *testing.T, err error) (int, string) {
	t.Helper()
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %T: %v", err, err)
	}
	return svcErr.StatusCode(), svcErr.Reason
}

func TestService_EscrowClaimSettles(t *testing.T) {
	svc, _, _ := newTestService(t, &testLedger{}, time.Second)
	ctx := context.Background()
	secret, commitment := secretPair("escrow")

	esc, err := svc.CreateEscrow(ctx, alice, &CreateEscrowRequest{
		Receiver:   bob,
		Amount:     "1000",
		Commitment: "0x" + commitment,
		Deadline:   Deadline{TimelockSeconds: 3600},
	})
	if err != nil {
		t.Fatalf("CreateEscrow() failed: %v", err)
	}
	if !esc.Deadline.Equal(t0.Add(time.Hour)) {
		t.Fatalf("expected deadline relative to engine clock, got %s", esc.Deadline)
	}
	if esc.Sender != alice || !esc.Claimable || esc.Refundable {
		t.Fatalf("unexpected escrow status: %+v", esc)
	}

	resp, err := svc.ClaimEscrow(ctx, bob, esc.ID, &SecretRequest{Secret: secret})
	if err != nil {
		t.Fatalf("ClaimEscrow() failed: %v", err)
	}
	if resp.TransferStatus != string(engine.PayoutSettled) || resp.Recipient != bob || resp.Amount.String() != "1000" {
		t.Fatalf("unexpected payout response: %+v", resp)
	}
	if resp.Kind != string(engine.PayoutEscrowClaim) {
		t.Fatalf("expected kind %s, got %s", engine.PayoutEscrowClaim, resp.Kind)
	}

	got, err := svc.GetEscrow(ctx, esc.ID)
	if err != nil {
		t.Fatalf("GetEscrow() failed: %v", err)
	}
	if got.State != htlc.StateClaimed || got.RevealedSecret.String() != secret {
		t.Fatalf("unexpected escrow after claim: %+v", got)
	}

	_, err = svc.ClaimEscrow(ctx, bob, esc.ID, &SecretRequest{Secret: secret})
	code, reason := statusOf(t, err)
	if code != http.StatusConflict || reason != string(htlc.KindAlreadyFinalized) {
		t.Fatalf("expected 409 AlreadyFinalized, got %d %s", code, reason)
	}
}

func TestService_PayoutPendingAndFailed(t *testing.T) {
	ctx := context.Background()

	t.Run("pending when ledger is slow", func(t *testing.T) {
		ledger := &testLedger{release: make(chan struct{})}
		svc, eng, _ := newTestService(t, ledger, 10*time.Millisecond)
		secret, commitment := secretPair("slow")

		esc, err := svc.CreateEscrow(ctx, alice, &CreateEscrowRequest{
			Receiver: bob, Amount: "5", Commitment: commitment, Deadline: Deadline{TimelockSeconds: 60},
		})
		if err != nil {
			t.Fatalf("CreateEscrow() failed: %v", err)
		}
		resp, err := svc.ClaimEscrow(ctx, bob, esc.ID, &SecretRequest{Secret: secret})
		if err != nil {
			t.Fatalf("ClaimEscrow() failed: %v", err)
		}
		if resp.TransferStatus != string(engine.PayoutPending) {
			t.Fatalf("expected pending transfer, got %s", resp.TransferStatus)
		}

		// The claim is guarded until the transfer returns.
		_, err = svc.ClaimEscrow(ctx, bob, esc.ID, &SecretRequest{Secret: secret})
		code, reason := statusOf(t, err)
		if code != http.StatusLocked || reason != string(htlc.KindConcurrentClaim) {
			t.Fatalf("expected 423 ConcurrentClaim, got %d %s", code, reason)
		}

		close(ledger.release)
		drainCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := eng.Drain(drainCtx); err != nil {
			t.Fatalf("Drain() failed: %v", err)
		}
	})

	t.Run("failed transfer keeps the state change", func(t *testing.T) {
		svc, _, _ := newTestService(t, &testLedger{err: errors.New("ledger offline")}, time.Second)
		secret, commitment := secretPair("failed")

		esc, err := svc.CreateEscrow(ctx, alice, &CreateEscrowRequest{
			Receiver: bob, Amount: "5", Commitment: commitment, Deadline: Deadline{TimelockSeconds: 60},
		})
		if err != nil {
			t.Fatalf("CreateEscrow() failed: %v", err)
		}
		resp, err := svc.ClaimEscrow(ctx, bob, esc.ID, &SecretRequest{Secret: secret})
		if err != nil {
			t.Fatalf("ClaimEscrow() failed: %v", err)
		}
		if resp.TransferStatus != string(engine.PayoutFailed) || resp.TransferError != "ledger offline" {
			t.Fatalf("unexpected payout response: %+v", resp)
		}
		got, err := svc.GetEscrow(ctx, esc.ID)
		if err != nil {
			t.Fatalf("GetEscrow() failed: %v", err)
		}
		if got.State != htlc.StateClaimed {
			t.Fatalf("expected claimed escrow, got %s", got.State)
		}
	})
}

func TestService_ValidationErrors(t *testing.T) {
	svc, _, _ := newTestService(t, &testLedger{}, 0)
	ctx := context.Background()
	_, commitment := secretPair("v")

	tests := []struct {
		name       string
		req        *CreateEscrowRequest
		wantCode   int
		wantReason string
	}{
		{
			name:       "missing receiver",
			req:        &CreateEscrowRequest{Amount: "1", Commitment: commitment, Deadline: Deadline{TimelockSeconds: 60}},
			wantCode:   http.StatusBadRequest,
			wantReason: reasonInvalidRequest,
		},
		{
			name:       "missing deadline",
			req:        &CreateEscrowRequest{Receiver: bob, Amount: "1", Commitment: commitment},
			wantCode:   http.StatusBadRequest,
			wantReason: reasonInvalidRequest,
		},
		{
			name:       "negative amount",
			req:        &CreateEscrowRequest{Receiver: bob, Amount: "-1", Commitment: commitment, Deadline: Deadline{TimelockSeconds: 60}},
			wantCode:   http.StatusBadRequest,
			wantReason: string(htlc.KindInvalidAmount),
		},
		{
			name:       "zero amount",
			req:        &CreateEscrowRequest{Receiver: bob, Amount: "0", Commitment: commitment, Deadline: Deadline{TimelockSeconds: 60}},
			wantCode:   http.StatusBadRequest,
			wantReason: string(htlc.KindInvalidAmount),
		},
		{
			name:       "short commitment",
			req:        &CreateEscrowRequest{Receiver: bob, Amount: "1", Commitment: "abcd", Deadline: Deadline{TimelockSeconds: 60}},
			wantCode:   http.StatusBadRequest,
			wantReason: string(htlc.KindInvalidCommitment),
		},
		{
			name:       "timelock beyond ten years",
			req:        &CreateEscrowRequest{Receiver: bob, Amount: "1", Commitment: commitment, Deadline: Deadline{TimelockSeconds: 1e10}},
			wantCode:   http.StatusBadRequest,
			wantReason: reasonInvalidRequest,
		},
		{
			name:       "timelock at the ten year bound",
			req:        &CreateEscrowRequest{Receiver: bob, Amount: "1", Commitment: commitment, Deadline: Deadline{TimelockSeconds: MaxTimelockSeconds}},
			wantCode:   http.StatusCreated,
		},
		{
			name: "deadline in the past",
			req: func() *CreateEscrowRequest {
				past := t0.Add(-time.Minute)
				return &CreateEscrowRequest{Receiver: bob, Amount: "1", Commitment: commitment, Deadline: Deadline{At: &past}}
			}(),
			wantCode:   http.StatusForbidden,
			wantReason: string(htlc.KindExpired),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEscrow(ctx, alice, tt.req)
			if tt.wantCode == http.StatusCreated {
				if err != nil {
					t.Fatalf("CreateEscrow() failed: %v", err)
				}
				return
			}
			code, reason := statusOf(t, err)
			if code != tt.wantCode || reason != tt.wantReason {
				t.Fatalf("expected %d %s, got %d %s", tt.wantCode, tt.wantReason, code, reason)
			}
		})
	}

	_, err := svc.ClaimEscrow(ctx, bob, "missing", &SecretRequest{Secret: "zz"})
	if code, reason := statusOf(t, err); code != http.StatusBadRequest || reason != string(htlc.KindInvalidSecret) {
		t.Fatalf("expected 400 InvalidSecret for non-hex secret, got %d %s", code, reason)
	}

	_, err = svc.ListFills(ctx, "", Page{Limit: 10})
	if code, _ := statusOf(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for fills without account, got %d", code)
	}
}

func TestService_OrderFillFlow(t *testing.T) {
	svc, _, clock := newTestService(t, &testLedger{}, time.Second)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, alice, &CreateOrderRequest{
		Receiver:    bob,
		TotalAmount: "100",
		Deadline:    Deadline{TimelockSeconds: 600},
	})
	if err != nil {
		t.Fatalf("CreateOrder() failed: %v", err)
	}

	s1, c1 := secretPair("fill-1")
	_, c2 := secretPair("fill-2")
	fill1, err := svc.CreateFill(ctx, "resolver", order.ID, &CreateFillRequest{FillAmount: "60", Attached: "60", Commitment: c1})
	if err != nil {
		t.Fatalf("CreateFill() failed: %v", err)
	}
	fill2, err := svc.CreateFill(ctx, "resolver", order.ID, &CreateFillRequest{FillAmount: "40", Attached: "40", Commitment: c2})
	if err != nil {
		t.Fatalf("CreateFill() failed: %v", err)
	}

	_, err = svc.CreateFill(ctx, "resolver", order.ID, &CreateFillRequest{FillAmount: "1", Attached: "1", Commitment: c2})
	if code, reason := statusOf(t, err); code != http.StatusConflict || reason != string(htlc.KindAlreadyFinalized) {
		t.Fatalf("expected 409 for a filled order, got %d %s", code, reason)
	}

	progress, err := svc.GetProgress(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetProgress() failed: %v", err)
	}
	if !progress.Completed || progress.FillPercentage != 100 || progress.FillCount != 2 {
		t.Fatalf("unexpected progress: %+v", progress)
	}

	resp, err := svc.CompleteFill(ctx, bob, fill1.ID, &CompleteFillRequest{Secret: s1, ForeignReference: "0xtx"})
	if err != nil {
		t.Fatalf("CompleteFill() failed: %v", err)
	}
	if resp.Recipient != bob || resp.Amount.String() != "60" {
		t.Fatalf("unexpected payout: %+v", resp)
	}

	clock.Advance(time.Hour)
	refund, err := svc.RefundFill(ctx, "resolver", fill2.ID)
	if err != nil {
		t.Fatalf("RefundFill() failed: %v", err)
	}
	if refund.Recipient != "resolver" || refund.Amount.String() != "40" {
		t.Fatalf("unexpected refund payout: %+v", refund)
	}

	list, err := svc.ListOrderFills(ctx, order.ID)
	if err != nil {
		t.Fatalf("ListOrderFills() failed: %v", err)
	}
	if len(list.Fills) != 2 || list.Fills[0].ID != fill1.ID || !list.Fills[1].IsExpired {
		t.Fatalf("unexpected fills: %+v", list.Fills)
	}

	byAccount, err := svc.ListFills(ctx, "resolver", Page{Limit: 10})
	if err != nil {
		t.Fatalf("ListFills() failed: %v", err)
	}
	if len(byAccount.Fills) != 2 {
		t.Fatalf("expected 2 fills for resolver, got %d", len(byAccount.Fills))
	}
}

func TestService_RegistryAndAdmin(t *testing.T) {
	svc, _, clock := newTestService(t, &testLedger{}, time.Second)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		_, commitment := secretPair(fmt.Sprintf("req-%d", i))
		req, err := svc.RequestSwap(ctx, alice, &SwapRequest{
			ForeignRecipient:      foreignRecipient,
			Amount:                "10",
			ForeignTokenReference: "0xToken",
			Commitment:            commitment,
			Deadline:              Deadline{TimelockSeconds: 60},
		})
		if err != nil {
			t.Fatalf("RequestSwap() failed: %v", err)
		}
		ids = append(ids, req.ID)
	}

	list, err := svc.ListRequests(ctx, alice, Page{Limit: 10})
	if err != nil {
		t.Fatalf("ListRequests() failed: %v", err)
	}
	if len(list.Requests) != 3 || list.Requests[0].ID != ids[0] {
		t.Fatalf("unexpected requests: %+v", list.Requests)
	}

	secret0, _ := secretPair("req-0")
	valid, err := svc.CheckSecret(ctx, &CheckSecretRequest{ID: ids[0], Secret: secret0})
	if err != nil || !valid.Valid {
		t.Fatalf("expected secret to match request, got %v, %v", valid, err)
	}

	clock.Advance(2 * time.Minute)

	_, err = svc.RefundExpiredRequests(ctx, alice, &RefundExpiredRequest{})
	if code, reason := statusOf(t, err); code != http.StatusForbidden || reason != string(htlc.KindUnauthorized) {
		t.Fatalf("expected 403 Unauthorized for non-resolver sweep, got %d %s", code, reason)
	}

	if _, err := svc.SetResolver(ctx, owner, "sweeper", &SetResolverRequest{Enabled: true}); err != nil {
		t.Fatalf("SetResolver() failed: %v", err)
	}
	res, err := svc.GetResolver(ctx, "sweeper")
	if err != nil || !res.Authorized {
		t.Fatalf("expected sweeper to be authorized, got %v, %v", res, err)
	}

	batch, err := svc.RefundExpiredRequests(ctx, "sweeper", &RefundExpiredRequest{Limit: 2})
	if err != nil {
		t.Fatalf("RefundExpiredRequests() failed: %v", err)
	}
	if len(batch.Refunded) != 2 || batch.Refunded[0].Recipient != alice {
		t.Fatalf("unexpected batch refund: %+v", batch.Refunded)
	}

	single, err := svc.RefundRequest(ctx, ids[2])
	if err != nil {
		t.Fatalf("RefundRequest() failed: %v", err)
	}
	if single.ID != ids[2] || single.Kind != string(engine.PayoutRequestRefund) {
		t.Fatalf("unexpected refund: %+v", single)
	}

	_, err = svc.Pause(ctx, alice)
	if code, _ := statusOf(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner pause, got %d", code)
	}
	paused, err := svc.Pause(ctx, owner)
	if err != nil || !paused.Paused {
		t.Fatalf("expected engine to pause, got %v, %v", paused, err)
	}
	_, commitment := secretPair("while-paused")
	_, err = svc.RequestSwap(ctx, alice, &SwapRequest{
		ForeignRecipient: foreignRecipient, Amount: "1", Commitment: commitment, Deadline: Deadline{TimelockSeconds: 60},
	})
	if code, reason := statusOf(t, err); code != http.StatusLocked || reason != string(htlc.KindPaused) {
		t.Fatalf("expected 423 Paused, got %d %s", code, reason)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if !stats.Paused || stats.PendingRequests != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	ownerResp, _ := svc.Owner(ctx)
	if ownerResp.Owner != owner {
		t.Fatalf("expected owner %q, got %q", owner, ownerResp.Owner)
	}
}

func TestToServiceError(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{htlc.ErrNotFound, http.StatusNotFound},
		{htlc.ErrAlreadyFinalized, http.StatusConflict},
		{htlc.ErrConflict, http.StatusConflict},
		{htlc.ErrExpired, http.StatusForbidden},
		{htlc.ErrNotYetExpired, http.StatusForbidden},
		{htlc.ErrUnauthorized, http.StatusForbidden},
		{htlc.ErrInvalidSecret, http.StatusBadRequest},
		{htlc.ErrAmountMismatch, http.StatusBadRequest},
		{htlc.ErrInvalidForeignAddress, http.StatusBadRequest},
		{htlc.ErrConcurrentClaim, http.StatusLocked},
		{htlc.ErrPaused, http.StatusLocked},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			err := toServiceError(fmt.Errorf("op: %w", tt.err))
			code, reason := statusOf(t, err)
			if code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, code)
			}
			if reason != string(htlc.KindOf(tt.err)) {
				t.Fatalf("expected reason %s, got %s", htlc.KindOf(tt.err), reason)
			}
			if !errors.Is(err, tt.err) {
				t.Fatal("expected the domain error to stay reachable with errors.Is")
			}
		})
	}
	if toServiceError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}
