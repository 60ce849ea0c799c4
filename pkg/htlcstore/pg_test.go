package htlcstore_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/chainsafe/htlc-escrow/pkg/events"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
	"github.com/chainsafe/htlc-escrow/pkg/htlc/engine"
	"github.com/chainsafe/htlc-escrow/pkg/htlcstore"
	"github.com/chainsafe/htlc-escrow/pkg/migrations/htlcdb"
	"github.com/chainsafe/htlc-escrow/pkg/pgutil"
)

const (
	owner            = "owner"
	alice            = "alice"
	bob              = "bob"
	foreignRecipient = "0x52908400098527886E0F7030069857D2E4169EE7"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type nopLedger struct {
	mu    sync.Mutex
	count int
}

func (l *nopLedger) Transfer(context.Context, string, htlc.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count++
	return nil
}

func setupStore(t *testing.T) (context.Context, *htlcstore.Store) {
	t.Helper()

	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)
	pgutil.MigrateTestDB(t, db, htlcdb.Migrations)
	return context.Background(), htlcstore.NewStore(db)
}

func newEngine(t *testing.T, store *htlcstore.Store, now *time.Time, snap *engine.Snapshot) *engine.Engine {
	t.Helper()
	eng, err := engine.New(owner, &nopLedger{},
		engine.WithPersister(store),
		engine.WithClock(func() time.Time { return *now }),
		engine.WithSnapshot(snap),
	)
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = eng.Drain(ctx)
	})
	return eng
}

func TestStore_PersistAndLoad(t *testing.T) {
	ctx, store := setupStore(t)
	now := t0
	eng := newEngine(t, store, &now, nil)

	escrowSecret := []byte("escrow-secret")
	esc, err := eng.CreateEscrow(ctx, engine.CreateEscrowParams{
		Sender:     alice,
		Receiver:   bob,
		Amount:     htlc.MustParseAmount("340282366920938463463374607431768211455"),
		Commitment: htlc.HashSecret(escrowSecret),
		Deadline:   t0.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateEscrow() failed: %v", err)
	}
	if _, err := eng.Claim(ctx, esc.ID, escrowSecret, bob); err != nil {
		t.Fatalf("Claim() failed: %v", err)
	}

	order, err := eng.CreateOrder(ctx, engine.CreateOrderParams{
		Sender:      alice,
		Receiver:    bob,
		TotalAmount: htlc.NewAmount(100),
		Deadline:    t0.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateOrder() failed: %v", err)
	}
	fillSecret := []byte("fill-secret")
	fill, err := eng.CreateFill(ctx, engine.CreateFillParams{
		OrderID:    order.ID,
		Sender:     owner,
		Commitment: htlc.HashSecret(fillSecret),
		FillAmount: htlc.NewAmount(40),
		Attached:   htlc.NewAmount(40),
	})
	if err != nil {
		t.Fatalf("CreateFill() failed: %v", err)
	}
	if _, err := eng.CompleteFill(ctx, fill.ID, fillSecret, bob, "0xabc"); err != nil {
		t.Fatalf("CompleteFill() failed: %v", err)
	}

	kept, err := eng.RequestSwap(ctx, engine.RequestParams{
		Initiator:             alice,
		ForeignRecipient:      foreignRecipient,
		Amount:                htlc.NewAmount(7),
		ForeignTokenReference: "0xToken",
		Commitment:            htlc.HashSecret([]byte("kept")),
		Deadline:              t0.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("RequestSwap() failed: %v", err)
	}
	doneSecret := []byte("done")
	done, err := eng.RequestSwap(ctx, engine.RequestParams{
		Initiator:             alice,
		ForeignRecipient:      foreignRecipient,
		Amount:                htlc.NewAmount(9),
		ForeignTokenReference: "0xToken",
		Commitment:            htlc.HashSecret(doneSecret),
		Deadline:              t0.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("RequestSwap() failed: %v", err)
	}
	if _, err := eng.CompleteRequest(ctx, done.ID, doneSecret, bob, owner); err != nil {
		t.Fatalf("CompleteRequest() failed: %v", err)
	}

	if err := eng.SetAuthorizedResolver(ctx, owner, "resolver-1", true); err != nil {
		t.Fatalf("SetAuthorizedResolver() failed: %v", err)
	}
	if err := eng.Pause(ctx, owner); err != nil {
		t.Fatalf("Pause() failed: %v", err)
	}

	snap, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(snap.Escrows) != 1 || len(snap.Orders) != 1 || len(snap.Fills) != 1 {
		t.Fatalf("unexpected snapshot sizes: %d escrows, %d orders, %d fills",
			len(snap.Escrows), len(snap.Orders), len(snap.Fills))
	}
	if len(snap.Requests) != 1 || snap.Requests[0].ID != kept.ID {
		t.Fatalf("expected only the pending request to survive, got %+v", snap.Requests)
	}
	if len(snap.Resolvers) != 1 || snap.Resolvers[0] != "resolver-1" {
		t.Fatalf("unexpected resolvers: %v", snap.Resolvers)
	}
	if !snap.Paused {
		t.Fatal("expected paused flag to be persisted")
	}
	if snap.LastSeq < done.Seq {
		t.Fatalf("expected last_seq >= %d, got %d", done.Seq, snap.LastSeq)
	}

	gotEscrow := snap.Escrows[0]
	if gotEscrow.State != htlc.StateClaimed || string(gotEscrow.RevealedSecret) != string(escrowSecret) {
		t.Fatalf("unexpected escrow row: %+v", gotEscrow)
	}
	if !gotEscrow.Amount.Equal(esc.Amount) || gotEscrow.Commitment != esc.Commitment {
		t.Fatalf("escrow amount or commitment changed: %+v", gotEscrow)
	}
	if !gotEscrow.Deadline.Equal(esc.Deadline) || !gotEscrow.CreatedAt.Equal(esc.CreatedAt) {
		t.Fatalf("escrow timestamps changed: %+v", gotEscrow)
	}

	gotOrder := snap.Orders[0]
	if gotOrder.FilledAmount.String() != "40" || gotOrder.RemainingAmount.String() != "60" || gotOrder.FillCount != 1 {
		t.Fatalf("unexpected order row: %+v", gotOrder)
	}
	if snap.Fills[0].State != htlc.StateCompleted || snap.Fills[0].ForeignReference != "0xabc" {
		t.Fatalf("unexpected fill row: %+v", snap.Fills[0])
	}

	// A new engine restored from the store continues where the first one stopped.
	restored := newEngine(t, store, &now, snap)
	if !restored.Paused() || !restored.IsAuthorizedResolver("resolver-1") {
		t.Fatal("expected admin state to be restored")
	}
	if _, err := restored.GetRequest(done.ID); err == nil {
		t.Fatal("expected completed request to stay deleted")
	}
	status, err := restored.EscrowStatus(esc.ID)
	if err != nil {
		t.Fatalf("EscrowStatus() failed: %v", err)
	}
	if status.State != htlc.StateClaimed {
		t.Fatalf("expected claimed escrow, got %s", status.State)
	}

	if err := restored.Unpause(ctx, owner); err != nil {
		t.Fatalf("Unpause() failed: %v", err)
	}
	next, err := restored.CreateEscrow(ctx, engine.CreateEscrowParams{
		Sender:     alice,
		Receiver:   bob,
		Amount:     htlc.NewAmount(1),
		Commitment: htlc.HashSecret([]byte("next")),
		Deadline:   t0.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateEscrow() after restore failed: %v", err)
	}
	if next.Seq <= snap.LastSeq {
		t.Fatalf("expected new seq above %d, got %d", snap.LastSeq, next.Seq)
	}
}

func TestStore_ListEvents(t *testing.T) {
	ctx, store := setupStore(t)
	now := t0
	eng := newEngine(t, store, &now, nil)

	secret := []byte("s")
	esc, err := eng.CreateEscrow(ctx, engine.CreateEscrowParams{
		Sender:     alice,
		Receiver:   bob,
		Amount:     htlc.NewAmount(5),
		Commitment: htlc.HashSecret(secret),
		Deadline:   t0.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateEscrow() failed: %v", err)
	}
	if _, err := eng.Claim(ctx, esc.ID, secret, bob); err != nil {
		t.Fatalf("Claim() failed: %v", err)
	}

	records, err := store.ListEvents(ctx, 0, 10)
	if err != nil {
		t.Fatalf("ListEvents() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 events, got %d", len(records))
	}
	if records[0].Type != events.TypeSwapInitiated || records[1].Type != events.TypeSwapClaimed {
		t.Fatalf("unexpected event order: %s, %s", records[0].Type, records[1].Type)
	}
	if records[0].Sequence >= records[1].Sequence {
		t.Fatalf("expected increasing sequences, got %d then %d", records[0].Sequence, records[1].Sequence)
	}
	if records[0].SubjectID != esc.ID || !records[0].EmittedAt.Equal(t0) {
		t.Fatalf("unexpected record: %+v", records[0])
	}

	var payload struct {
		ID     string `json:"id"`
		Amount string `json:"amount"`
	}
	if err := json.Unmarshal(records[0].Payload, &payload); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if payload.ID != esc.ID || payload.Amount != "5" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	after, err := store.ListEvents(ctx, records[0].Sequence, 10)
	if err != nil {
		t.Fatalf("ListEvents() failed: %v", err)
	}
	if len(after) != 1 || after[0].ID != records[1].ID {
		t.Fatalf("expected only the claim event after cursor, got %+v", after)
	}

	empty, err := store.ListEvents(ctx, 0, 0)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty page for zero limit, got %v, %v", empty, err)
	}
}

func TestStore_Ping(t *testing.T) {
	ctx, store := setupStore(t)
	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping() failed: %v", err)
	}
}
