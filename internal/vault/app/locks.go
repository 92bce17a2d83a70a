package app

import (
	"sync"

	"github.com/relaysms/vault/internal/domain"
)

// entityLocks serializes mutations per entity. Waiters block until the
// holder releases; there is no contention abort. Lock entries are pruned on
// entity deletion so the map does not grow with deleted entities.
type entityLocks struct {
	mu    sync.Mutex
	locks map[domain.EID]*sync.Mutex
}

func newEntityLocks() *entityLocks {
	return &entityLocks{locks: make(map[domain.EID]*sync.Mutex)}
}

// Acquire locks the entity's mutex and returns the release function.
func (l *entityLocks) Acquire(eid domain.EID) (release func()) {
	l.mu.Lock()
	m, ok := l.locks[eid]
	if !ok {
		m = &sync.Mutex{}
		l.locks[eid] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// Prune drops the entity's lock entry. Callers must hold the entity lock
// and release it after pruning; a racing Acquire simply creates a fresh
// mutex for an entity that no longer exists.
func (l *entityLocks) Prune(eid domain.EID) {
	l.mu.Lock()
	delete(l.locks, eid)
	l.mu.Unlock()
}

// Len reports the number of tracked entities.
func (l *entityLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
