package pages

import "sync"

// guard lets at most one invocation of each action run at a time.
type guard struct {
	locks sync.Map
}

func (g *guard) run(action string, fn func() error) error {
	v, _ := g.locks.LoadOrStore(action, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	if !mu.TryLock() {
		return ErrInFlight
	}
	defer mu.Unlock()
	return fn()
}
