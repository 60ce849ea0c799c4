package engine

// table is an insertion-ordered map keyed by record id.
// Iteration order is stable across calls and survives replacement of a row.
type table[T any] struct {
	rows map[string]T
	keys []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) has(id string) bool {
	_, ok := t.rows[id]
	return ok
}

// put inserts or replaces a row. New rows go to the end.
func (t *table[T]) put(id string, row T) {
	if _, ok := t.rows[id]; !ok {
		t.keys = append(t.keys, id)
	}
	t.rows[id] = row
}

func (t *table[T]) remove(id string) {
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	for i, k := range t.keys {
		if k == id {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

func (t *table[T]) len() int { return len(t.keys) }

// each visits rows in insertion order until fn returns false.
func (t *table[T]) each(fn func(T) bool) {
	for _, k := range t.keys {
		if !fn(t.rows[k]) {
			return
		}
	}
}

// page returns rows matching keep, skipping offset matches and returning at most limit.
func (t *table[T]) page(offset, limit int, keep func(T) bool) []T {
	out := make([]T, 0)
	if limit <= 0 {
		return out
	}
	if offset < 0 {
		offset = 0
	}
	skipped := 0
	t.each(func(row T) bool {
		if keep != nil && !keep(row) {
			return true
		}
		if skipped < offset {
			skipped++
			return true
		}
		out = append(out, row)
		return len(out) < limit
	})
	return out
}
