package engine

// guard tracks ids whose payout has been committed but not yet settled.
// It is only touched while the engine mutex is held.
type guard struct {
	inFlight map[string]struct{}
}

func newGuard() *guard {
	return &guard{inFlight: make(map[string]struct{})}
}

func (g *guard) held(id string) bool {
	_, ok := g.inFlight[id]
	return ok
}

func (g *guard) acquire(id string) {
	g.inFlight[id] = struct{}{}
}

func (g *guard) release(id string) {
	delete(g.inFlight, id)
}
