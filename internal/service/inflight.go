package service

import "sync"

// Operation names guarded by InFlight.
const (
	OpSelection = "selection"
	OpCart      = "cart"
	OpProduct   = "product"
)

// InFlight hands out one token per (operation, key). A second Acquire while a token is held is rejected,
// never queued.
type InFlight struct {
	held sync.Map
}

// NewInFlight creates an empty guard.
func NewInFlight() *InFlight {
	return &InFlight{}
}

// Acquire takes the token for op and key. The returned release must be called exactly once;
// extra calls are ignored.
func (g *InFlight) Acquire(op, key string) (release func(), err error) {
	k := op + ":" + key
	if _, loaded := g.held.LoadOrStore(k, struct{}{}); loaded {
		return nil, ErrOperationInFlight
	}
	var once sync.Once
	return func() {
		once.Do(func() { g.held.Delete(k) })
	}, nil
}

// Held reports whether the token for op and key is currently taken.
func (g *InFlight) Held(op, key string) bool {
	_, ok := g.held.Load(op + ":" + key)
	return ok
}
