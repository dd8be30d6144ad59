package keylock

import (
	"sync"
)

// KeyedMutex serializes operations that share a key, such as every
// status-affecting operation on one room. Entries are reference counted and
// removed once the last holder releases, so the map does not grow with the
// key space.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyedMutex {
	return &KeyedMutex{
		locks: map[string]*entry{},
	}
}

// Lock blocks until the lock for key is held and returns the release func.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()

	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}

	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--

		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
