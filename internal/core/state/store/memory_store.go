package store

import (
	"sync"
	"time"

	"github.com/kwhalen/nfl-edge/internal/core/state/game"
)

// MemoryStore is a thread-safe map of per-game derived memory, keyed by the
// away@home game key.
//
// The RWMutex protects the map itself. Each game is touched by exactly one
// goroutine per poll cycle, so per-key read-modify-write is atomic as long
// as Get hands out a copy and Put stores a fresh record — which is what the
// poller does.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]*game.Memory
}

func New() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]*game.Memory),
	}
}

// Get returns a copy of the memory for a game key, or nil if none exists.
func (s *MemoryStore) Get(gameKey string) *game.Memory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games[gameKey].Clone()
}

// Put stores the memory for a game key, stamping UpdatedAt.
func (s *MemoryStore) Put(gameKey string, m *game.Memory) {
	if m == nil {
		return
	}
	m.UpdatedAt = time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[gameKey] = m
}

// Prune drops every key not present in active. Called once per poll cycle
// so memory rolls over when the feed's slate changes (new day / new week).
// Returns the number of keys removed.
func (s *MemoryStore) Prune(active map[string]bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key := range s.games {
		if !active[key] {
			delete(s.games, key)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
