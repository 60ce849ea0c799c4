package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// NoopEmitter discards all events.
type NoopEmitter struct{}

// Emit implements the Emitter interface.
func (NoopEmitter) Emit(Envelope) {}

// Multi fans an envelope out to every emitter in order.
type Multi []Emitter

func (m Multi) Emit(env Envelope) {
	for _, e := range m {
		if e != nil {
			e.Emit(env)
		}
	}
}

// LogEmitter writes each event to a zap logger.
type LogEmitter struct {
	logger *zap.Logger
}

func NewLogEmitter(logger *zap.Logger) *LogEmitter {
	return &LogEmitter{logger: logger}
}

func (l *LogEmitter) Emit(env Envelope) {
	l.logger.Info("Event emitted",
		zap.String("event_id", env.ID.String()),
		zap.String("type", env.Type),
		zap.String("subject_id", env.SubjectID),
		zap.Time("emitted_at", env.EmittedAt),
	)
}

// Feed pages through an event log by sequence number.
type Feed interface {
	ListEvents(ctx context.Context, after int64, limit int) ([]Record, error)
}

// Recorder keeps the most recent events in memory and serves them as a Feed.
// It backs the event feed when no database is configured and doubles as a test sink.
type Recorder struct {
	mu       sync.RWMutex
	capacity int
	next     int64
	records  []Record
	envs     []Envelope
}

// NewRecorder creates a recorder retaining at most capacity events (0 = unbounded).
func NewRecorder(capacity int) *Recorder {
	return &Recorder{capacity: capacity, next: 1}
}

func (r *Recorder) Emit(env Envelope) {
	rec, err := ToRecord(env, 0)
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec.Sequence = r.next
	r.next++
	r.records = append(r.records, rec)
	r.envs = append(r.envs, env)
	if r.capacity > 0 && len(r.records) > r.capacity {
		drop := len(r.records) - r.capacity
		r.records = append([]Record(nil), r.records[drop:]...)
		r.envs = append([]Envelope(nil), r.envs[drop:]...)
	}
}

// Envelopes returns the retained envelopes in emission order.
func (r *Recorder) Envelopes() []Envelope {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Envelope(nil), r.envs...)
}

// Types returns the retained event types in emission order.
func (r *Recorder) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.envs))
	for i, env := range r.envs {
		out[i] = env.Type
	}
	return out
}

// ListEvents implements Feed.
func (r *Recorder) ListEvents(_ context.Context, after int64, limit int) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, 0)
	for _, rec := range r.records {
		if rec.Sequence <= after {
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, rec)
	}
	return out, nil
}
