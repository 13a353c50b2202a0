// Package lock serializes work per user inside one process.
package lock

import (
	"sync"

	"plantcare/internal/domain/service"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex hands out one mutex per user id. Entries are dropped once no
// goroutine holds or waits for them.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[uint64]*entry
}

// NewUserLocker returns an empty KeyedMutex as a service.UserLocker.
func NewUserLocker() service.UserLocker {
	return NewKeyedMutex()
}

// NewKeyedMutex returns an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[uint64]*entry)}
}

// Lock blocks until the lock for userID is held. The returned func releases it
// and must be called exactly once.
func (k *KeyedMutex) Lock(userID uint64) func() {
	k.mu.Lock()
	e, ok := k.entries[userID]
	if !ok {
		e = &entry{}
		k.entries[userID] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	var once sync.Once

	return func() {
		once.Do(func() {
			e.mu.Unlock()

			k.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(k.entries, userID)
			}
			k.mu.Unlock()
		})
	}
}

// Len reports how many users currently have a held or awaited lock.
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.entries)
}
