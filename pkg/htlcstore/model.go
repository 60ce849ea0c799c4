package htlcstore

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/htlc-escrow/pkg/events"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

// EscrowDao maps to the 'escrows' table.
type EscrowDao struct {
	bun.BaseModel    `bun:"table:escrows,alias:e"`
	ID               string    `bun:"id,pk,type:varchar(64)"`
	Seq              int64     `bun:"seq,notnull"`
	Sender           string    `bun:"sender,notnull,type:varchar(255)"`
	Receiver         string    `bun:"receiver,notnull,type:varchar(255)"`
	Amount           string    `bun:"amount,notnull,type:numeric(39,0)"`
	Commitment       string    `bun:"commitment,notnull,type:varchar(64)"`
	Deadline         time.Time `bun:"deadline,notnull"`
	RevealedSecret   []byte    `bun:"revealed_secret,nullzero,type:bytea"`
	State            string    `bun:"state,notnull,type:varchar(16)"`
	ForeignReference string    `bun:"foreign_reference,type:text"`
	CreatedAt        time.Time `bun:"created_at,notnull"`
}

// OrderDao maps to the 'orders' table.
type OrderDao struct {
	bun.BaseModel         `bun:"table:orders,alias:o"`
	ID                    string    `bun:"id,pk,type:varchar(64)"`
	Seq                   int64     `bun:"seq,notnull"`
	Sender                string    `bun:"sender,notnull,type:varchar(255)"`
	Receiver              string    `bun:"receiver,notnull,type:varchar(255)"`
	TotalAmount           string    `bun:"total_amount,notnull,type:numeric(39,0)"`
	FilledAmount          string    `bun:"filled_amount,notnull,type:numeric(39,0)"`
	RemainingAmount       string    `bun:"remaining_amount,notnull,type:numeric(39,0)"`
	Deadline              time.Time `bun:"deadline,notnull"`
	Completed             bool      `bun:"completed,notnull"`
	FillCount             int64     `bun:"fill_count,notnull"`
	ForeignTokenReference string    `bun:"foreign_token_reference,type:text"`
	CreatedAt             time.Time `bun:"created_at,notnull"`
}

// FillDao maps to the 'fills' table.
type FillDao struct {
	bun.BaseModel    `bun:"table:fills,alias:f"`
	ID               string    `bun:"id,pk,type:varchar(64)"`
	Seq              int64     `bun:"seq,notnull"`
	ParentID         string    `bun:"parent_id,notnull,type:varchar(64)"`
	Index            int64     `bun:"fill_index,notnull"`
	Sender           string    `bun:"sender,notnull,type:varchar(255)"`
	Receiver         string    `bun:"receiver,notnull,type:varchar(255)"`
	FillAmount       string    `bun:"fill_amount,notnull,type:numeric(39,0)"`
	Commitment       string    `bun:"commitment,notnull,type:varchar(64)"`
	Deadline         time.Time `bun:"deadline,notnull"`
	State            string    `bun:"state,notnull,type:varchar(16)"`
	RevealedSecret   []byte    `bun:"revealed_secret,nullzero,type:bytea"`
	ForeignReference string    `bun:"foreign_reference,type:text"`
	CreatedAt        time.Time `bun:"created_at,notnull"`
}

// RequestDao maps to the 'cross_chain_requests' table. Rows are deleted on completion or refund.
type RequestDao struct {
	bun.BaseModel         `bun:"table:cross_chain_requests,alias:r"`
	ID                    string    `bun:"id,pk,type:varchar(64)"`
	Seq                   int64     `bun:"seq,notnull"`
	Initiator             string    `bun:"initiator,notnull,type:varchar(255)"`
	ForeignRecipient      string    `bun:"foreign_recipient,notnull,type:varchar(42)"`
	Amount                string    `bun:"amount,notnull,type:numeric(39,0)"`
	ForeignTokenReference string    `bun:"foreign_token_reference,type:text"`
	Commitment            string    `bun:"commitment,notnull,type:varchar(64)"`
	Deadline              time.Time `bun:"deadline,notnull"`
	AuxiliaryParams       string    `bun:"auxiliary_params,type:text"`
	CreatedAt             time.Time `bun:"created_at,notnull"`
}

// ResolverDao maps to the 'resolvers' table.
type ResolverDao struct {
	bun.BaseModel `bun:"table:resolvers,alias:rs"`
	Account       string    `bun:"account,pk,type:varchar(255)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// EngineStateDao is the singleton row holding engine-wide flags.
type EngineStateDao struct {
	bun.BaseModel `bun:"table:engine_state,alias:es"`
	ID            int       `bun:"id,pk"`
	Paused        bool      `bun:"paused,notnull"`
	LastSeq       int64     `bun:"last_seq,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// EventDao maps to the 'events' outbox table.
type EventDao struct {
	bun.BaseModel `bun:"table:events,alias:ev"`
	Sequence      int64     `bun:"sequence,pk,autoincrement"`
	EventID       uuid.UUID `bun:"event_id,notnull,unique,type:uuid"`
	Type          string    `bun:"type,notnull,type:varchar(64)"`
	SubjectID     string    `bun:"subject_id,notnull,type:varchar(255)"`
	EmittedAt     time.Time `bun:"emitted_at,notnull"`
	Payload       string    `bun:"payload,notnull,type:jsonb"`
}

func toEscrowDao(e htlc.Escrow) EscrowDao {
	return EscrowDao{
		ID:               e.ID,
		Seq:              int64(e.Seq),
		Sender:           e.Sender,
		Receiver:         e.Receiver,
		Amount:           e.Amount.String(),
		Commitment:       e.Commitment.String(),
		Deadline:         e.Deadline.UTC(),
		RevealedSecret:   e.RevealedSecret,
		State:            string(e.State),
		ForeignReference: e.ForeignReference,
		CreatedAt:        e.CreatedAt.UTC(),
	}
}

func toEscrow(dao *EscrowDao) (htlc.Escrow, error) {
	amount, err := htlc.ParseAmount(dao.Amount)
	if err != nil {
		return htlc.Escrow{}, fmt.Errorf("escrow %s: %w", dao.ID, err)
	}
	commitment, err := htlc.ParseCommitment(dao.Commitment)
	if err != nil {
		return htlc.Escrow{}, fmt.Errorf("escrow %s: %w", dao.ID, err)
	}
	return htlc.Escrow{
		ID:               dao.ID,
		Sender:           dao.Sender,
		Receiver:         dao.Receiver,
		Amount:           amount,
		Commitment:       commitment,
		Deadline:         dao.Deadline.UTC(),
		RevealedSecret:   dao.RevealedSecret,
		State:            htlc.State(dao.State),
		ForeignReference: dao.ForeignReference,
		CreatedAt:        dao.CreatedAt.UTC(),
		Seq:              uint64(dao.Seq),
	}, nil
}

func toOrderDao(o htlc.Order) OrderDao {
	return OrderDao{
		ID:                    o.ID,
		Seq:                   int64(o.Seq),
		Sender:                o.Sender,
		Receiver:              o.Receiver,
		TotalAmount:           o.TotalAmount.String(),
		FilledAmount:          o.FilledAmount.String(),
		RemainingAmount:       o.RemainingAmount.String(),
		Deadline:              o.Deadline.UTC(),
		Completed:             o.Completed,
		FillCount:             int64(o.FillCount),
		ForeignTokenReference: o.ForeignTokenReference,
		CreatedAt:             o.CreatedAt.UTC(),
	}
}

func toOrder(dao *OrderDao) (htlc.Order, error) {
	total, err := htlc.ParseAmount(dao.TotalAmount)
	if err != nil {
		return htlc.Order{}, fmt.Errorf("order %s: %w", dao.ID, err)
	}
	filled, err := htlc.ParseAmount(dao.FilledAmount)
	if err != nil {
		return htlc.Order{}, fmt.Errorf("order %s: %w", dao.ID, err)
	}
	remaining, err := htlc.ParseAmount(dao.RemainingAmount)
	if err != nil {
		return htlc.Order{}, fmt.Errorf("order %s: %w", dao.ID, err)
	}
	return htlc.Order{
		ID:                    dao.ID,
		Sender:                dao.Sender,
		Receiver:              dao.Receiver,
		TotalAmount:           total,
		FilledAmount:          filled,
		RemainingAmount:       remaining,
		Deadline:              dao.Deadline.UTC(),
		Completed:             dao.Completed,
		FillCount:             uint64(dao.FillCount),
		ForeignTokenReference: dao.ForeignTokenReference,
		CreatedAt:             dao.CreatedAt.UTC(),
		Seq:                   uint64(dao.Seq),
	}, nil
}

func toFillDao(f htlc.Fill) FillDao {
	return FillDao{
		ID:               f.ID,
		Seq:              int64(f.Seq),
		ParentID:         f.ParentID,
		Index:            int64(f.Index),
		Sender:           f.Sender,
		Receiver:         f.Receiver,
		FillAmount:       f.FillAmount.String(),
		Commitment:       f.Commitment.String(),
		Deadline:         f.Deadline.UTC(),
		State:            string(f.State),
		RevealedSecret:   f.RevealedSecret,
		ForeignReference: f.ForeignReference,
		CreatedAt:        f.CreatedAt.UTC(),
	}
}

func toFill(dao *FillDao) (htlc.Fill, error) {
	amount, err := htlc.ParseAmount(dao.FillAmount)
	if err != nil {
		return htlc.Fill{}, fmt.Errorf("fill %s: %w", dao.ID, err)
	}
	commitment, err := htlc.ParseCommitment(dao.Commitment)
	if err != nil {
		return htlc.Fill{}, fmt.Errorf("fill %s: %w", dao.ID, err)
	}
	return htlc.Fill{
		ID:               dao.ID,
		ParentID:         dao.ParentID,
		Index:            uint64(dao.Index),
		Sender:           dao.Sender,
		Receiver:         dao.Receiver,
		FillAmount:       amount,
		Commitment:       commitment,
		Deadline:         dao.Deadline.UTC(),
		State:            htlc.State(dao.State),
		RevealedSecret:   dao.RevealedSecret,
		ForeignReference: dao.ForeignReference,
		CreatedAt:        dao.CreatedAt.UTC(),
		Seq:              uint64(dao.Seq),
	}, nil
}

func toRequestDao(r htlc.CrossChainRequest) RequestDao {
	return RequestDao{
		ID:                    r.ID,
		Seq:                   int64(r.Seq),
		Initiator:             r.Initiator,
		ForeignRecipient:      r.ForeignRecipient,
		Amount:                r.Amount.String(),
		ForeignTokenReference: r.ForeignTokenReference,
		Commitment:            r.Commitment.String(),
		Deadline:              r.Deadline.UTC(),
		AuxiliaryParams:       r.AuxiliaryParams,
		CreatedAt:             r.CreatedAt.UTC(),
	}
}

func toRequest(dao *RequestDao) (htlc.CrossChainRequest, error) {
	amount, err := htlc.ParseAmount(dao.Amount)
	if err != nil {
		return htlc.CrossChainRequest{}, fmt.Errorf("request %s: %w", dao.ID, err)
	}
	commitment, err := htlc.ParseCommitment(dao.Commitment)
	if err != nil {
		return htlc.CrossChainRequest{}, fmt.Errorf("request %s: %w", dao.ID, err)
	}
	return htlc.CrossChainRequest{
		ID:                    dao.ID,
		Initiator:             dao.Initiator,
		ForeignRecipient:      dao.ForeignRecipient,
		Amount:                amount,
		ForeignTokenReference: dao.ForeignTokenReference,
		Commitment:            commitment,
		Deadline:              dao.Deadline.UTC(),
		AuxiliaryParams:       dao.AuxiliaryParams,
		CreatedAt:             dao.CreatedAt.UTC(),
		Seq:                   uint64(dao.Seq),
	}, nil
}

func toEventDao(env events.Envelope) (EventDao, error) {
	rec, err := events.ToRecord(env, 0)
	if err != nil {
		return EventDao{}, fmt.Errorf("failed to encode event %s: %w", env.ID, err)
	}
	return EventDao{
		EventID:   rec.ID,
		Type:      rec.Type,
		SubjectID: rec.SubjectID,
		EmittedAt: rec.EmittedAt.UTC(),
		Payload:   string(rec.Payload),
	}, nil
}

func toRecord(dao *EventDao) events.Record {
	return events.Record{
		Sequence:  dao.Sequence,
		ID:        dao.EventID,
		Type:      dao.Type,
		SubjectID: dao.SubjectID,
		EmittedAt: dao.EmittedAt.UTC(),
		Payload:   []byte(dao.Payload),
	}
}
