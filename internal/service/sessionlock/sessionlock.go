// Package sessionlock serializes operations on the same customer session.
package sessionlock

import (
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// Locks hands out one mutex per session id. A mutex is dropped once nobody holds or waits for it.
type Locks struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *Locks {
	return &Locks{entries: map[string]*entry{}}
}

// Lock locks the session and returns its unlock function.
func (l *Locks) Lock(sessionID string) func() {
	l.mu.Lock()
	e, ok := l.entries[sessionID]
	if !ok {
		e = &entry{}
		l.entries[sessionID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.entries, sessionID)
		}
		l.mu.Unlock()
	}
}

func (l *Locks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}
