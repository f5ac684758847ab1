package admin

import "sync"

// entityLocks serializes mutations per entity id so concurrent admin actions
// on the same booking or washer cannot interleave and lose updates. Actions
// on different entities stay independent.
type entityLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// acquire locks the mutex for a key and returns its release func.
// Callers touching both a booking and a washer always acquire the booking
// lock first, which keeps lock ordering consistent.
func (l *entityLocks) acquire(key string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
