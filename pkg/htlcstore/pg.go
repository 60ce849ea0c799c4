// Package htlcstore persists engine state in PostgreSQL.
package htlcstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/htlc-escrow/pkg/events"
	"github.com/chainsafe/htlc-escrow/pkg/htlc/engine"
)

const engineStateID = 1

// Store is the postgres implementation of engine.Persister and events.Feed.
type Store struct {
	db *bun.DB
}

// NewStore creates a new postgres store
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

// Persist writes every row, deletion, resolver change, flag and event of cs
// in one transaction.
func (s *Store) Persist(ctx context.Context, cs *engine.Changeset) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := upsertEscrows(ctx, tx, cs); err != nil {
			return err
		}
		if err := upsertOrders(ctx, tx, cs); err != nil {
			return err
		}
		if err := upsertFills(ctx, tx, cs); err != nil {
			return err
		}
		if err := upsertRequests(ctx, tx, cs); err != nil {
			return err
		}
		if len(cs.DeletedRequests) > 0 {
			if _, err := tx.NewDelete().
				Model((*RequestDao)(nil)).
				Where("id IN (?)", bun.In(cs.DeletedRequests)).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to delete requests: %w", err)
			}
		}
		if err := applyResolvers(ctx, tx, cs.Resolvers); err != nil {
			return err
		}
		if err := updateEngineState(ctx, tx, cs); err != nil {
			return err
		}
		return insertEvents(ctx, tx, cs.Events)
	})
}

func upsertEscrows(ctx context.Context, tx bun.Tx, cs *engine.Changeset) error {
	if len(cs.Escrows) == 0 {
		return nil
	}
	daos := make([]EscrowDao, 0, len(cs.Escrows))
	for _, row := range cs.Escrows {
		daos = append(daos, toEscrowDao(row))
	}
	_, err := tx.NewInsert().
		Model(&daos).
		On("CONFLICT (id) DO UPDATE").
		Set("state = EXCLUDED.state").
		Set("revealed_secret = EXCLUDED.revealed_secret").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert escrows: %w", err)
	}
	return nil
}

func upsertOrders(ctx context.Context, tx bun.Tx, cs *engine.Changeset) error {
	if len(cs.Orders) == 0 {
		return nil
	}
	daos := make([]OrderDao, 0, len(cs.Orders))
	for _, row := range cs.Orders {
		daos = append(daos, toOrderDao(row))
	}
	_, err := tx.NewInsert().
		Model(&daos).
		On("CONFLICT (id) DO UPDATE").
		Set("filled_amount = EXCLUDED.filled_amount").
		Set("remaining_amount = EXCLUDED.remaining_amount").
		Set("completed = EXCLUDED.completed").
		Set("fill_count = EXCLUDED.fill_count").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert orders: %w", err)
	}
	return nil
}

func upsertFills(ctx context.Context, tx bun.Tx, cs *engine.Changeset) error {
	if len(cs.Fills) == 0 {
		return nil
	}
	daos := make([]FillDao, 0, len(cs.Fills))
	for _, row := range cs.Fills {
		daos = append(daos, toFillDao(row))
	}
	_, err := tx.NewInsert().
		Model(&daos).
		On("CONFLICT (id) DO UPDATE").
		Set("state = EXCLUDED.state").
		Set("revealed_secret = EXCLUDED.revealed_secret").
		Set("foreign_reference = EXCLUDED.foreign_reference").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert fills: %w", err)
	}
	return nil
}

func upsertRequests(ctx context.Context, tx bun.Tx, cs *engine.Changeset) error {
	if len(cs.Requests) == 0 {
		return nil
	}
	daos := make([]RequestDao, 0, len(cs.Requests))
	for _, row := range cs.Requests {
		daos = append(daos, toRequestDao(row))
	}
	// Requests are never updated in place.
	_, err := tx.NewInsert().Model(&daos).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert requests: %w", err)
	}
	return nil
}

func applyResolvers(ctx context.Context, tx bun.Tx, changes []engine.ResolverChange) error {
	for _, rc := range changes {
		var err error
		if rc.Enabled {
			_, err = tx.NewInsert().
				Model(&ResolverDao{Account: rc.Account}).
				On("CONFLICT (account) DO NOTHING").
				Exec(ctx)
		} else {
			_, err = tx.NewDelete().
				Model((*ResolverDao)(nil)).
				Where("account = ?", rc.Account).
				Exec(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to update resolver %s: %w", rc.Account, err)
		}
	}
	return nil
}

func updateEngineState(ctx context.Context, tx bun.Tx, cs *engine.Changeset) error {
	maxSeq := maxSeqOf(cs)
	if maxSeq == 0 && cs.Paused == nil {
		return nil
	}

	q := tx.NewUpdate().
		Model((*EngineStateDao)(nil)).
		Set("updated_at = current_timestamp").
		Where("id = ?", engineStateID)
	if maxSeq > 0 {
		q = q.Set("last_seq = GREATEST(last_seq, ?)", maxSeq)
	}
	if cs.Paused != nil {
		q = q.Set("paused = ?", *cs.Paused)
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update engine state: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.New("engine state row is missing; run migrations")
	}
	return nil
}

func maxSeqOf(cs *engine.Changeset) int64 {
	var max uint64
	for _, r := range cs.Escrows {
		if r.Seq > max {
			max = r.Seq
		}
	}
	for _, r := range cs.Orders {
		if r.Seq > max {
			max = r.Seq
		}
	}
	for _, r := range cs.Fills {
		if r.Seq > max {
			max = r.Seq
		}
	}
	for _, r := range cs.Requests {
		if r.Seq > max {
			max = r.Seq
		}
	}
	return int64(max)
}

func insertEvents(ctx context.Context, tx bun.Tx, envs []events.Envelope) error {
	if len(envs) == 0 {
		return nil
	}
	daos := make([]EventDao, 0, len(envs))
	for _, env := range envs {
		dao, err := toEventDao(env)
		if err != nil {
			return err
		}
		daos = append(daos, dao)
	}
	if _, err := tx.NewInsert().Model(&daos).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert events: %w", err)
	}
	return nil
}

// Load reads the full engine state in insertion order.
func (s *Store) Load(ctx context.Context) (*engine.Snapshot, error) {
	snap := &engine.Snapshot{}

	var escrows []EscrowDao
	if err := s.db.NewSelect().Model(&escrows).Order("seq ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load escrows: %w", err)
	}
	for i := range escrows {
		row, err := toEscrow(&escrows[i])
		if err != nil {
			return nil, err
		}
		snap.Escrows = append(snap.Escrows, row)
	}

	var orders []OrderDao
	if err := s.db.NewSelect().Model(&orders).Order("seq ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	for i := range orders {
		row, err := toOrder(&orders[i])
		if err != nil {
			return nil, err
		}
		snap.Orders = append(snap.Orders, row)
	}

	var fills []FillDao
	if err := s.db.NewSelect().Model(&fills).Order("seq ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load fills: %w", err)
	}
	for i := range fills {
		row, err := toFill(&fills[i])
		if err != nil {
			return nil, err
		}
		snap.Fills = append(snap.Fills, row)
	}

	var requests []RequestDao
	if err := s.db.NewSelect().Model(&requests).Order("seq ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load requests: %w", err)
	}
	for i := range requests {
		row, err := toRequest(&requests[i])
		if err != nil {
			return nil, err
		}
		snap.Requests = append(snap.Requests, row)
	}

	var resolvers []ResolverDao
	if err := s.db.NewSelect().Model(&resolvers).Order("account ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load resolvers: %w", err)
	}
	for _, r := range resolvers {
		snap.Resolvers = append(snap.Resolvers, r.Account)
	}

	state := new(EngineStateDao)
	err := s.db.NewSelect().Model(state).Where("id = ?", engineStateID).Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("failed to load engine state: %w", err)
	default:
		snap.Paused = state.Paused
		snap.LastSeq = uint64(state.LastSeq)
	}
	return snap, nil
}

// ListEvents implements events.Feed over the outbox table.
func (s *Store) ListEvents(ctx context.Context, after int64, limit int) ([]events.Record, error) {
	if limit <= 0 {
		return []events.Record{}, nil
	}
	var daos []EventDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("sequence > ?", after).
		Order("sequence ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	out := make([]events.Record, 0, len(daos))
	for i := range daos {
		out = append(out, toRecord(&daos[i]))
	}
	return out, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
