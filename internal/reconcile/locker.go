package reconcile

import "sync"

// Locker hands out one mutex per product ID. Entries are dropped once no
// goroutine holds or waits on them.
type Locker struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewLocker() *Locker {
	return &Locker{locks: make(map[int64]*entry)}
}

// Lock blocks until id is free and returns the matching unlock function.
func (l *Locker) Lock(id int64) func() {
	l.mu.Lock()
	e, ok := l.locks[id]
	if !ok {
		e = &entry{}
		l.locks[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func (l *Locker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
