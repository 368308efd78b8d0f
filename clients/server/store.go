// store.go — Challenge answer storage for the HTTP service.
package server

import (
	"strings"
	"sync"
	"time"
)

// Store keeps issued challenge answers until they are verified or expire.
type Store interface {
	// Set registers the answer for a challenge id.
	Set(id, answer string)
	// Verify checks an answer. When clear is true a successful match
	// consumes the challenge, making each captcha single-use.
	Verify(id, answer string, clear bool) bool
}

type storedAnswer struct {
	answer  string
	expires time.Time
}

// memoryStore is an in-process Store with per-entry TTL. Expired entries
// are dropped lazily on access and swept opportunistically on writes.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]storedAnswer
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore returns a Store keeping answers for the given TTL.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		entries: make(map[string]storedAnswer),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *memoryStore) Set(id, answer string) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	// Sweep a handful of expired entries so the map cannot grow without
	// bound under generate-only traffic.
	swept := 0
	for k, v := range s.entries {
		if now.After(v.expires) {
			delete(s.entries, k)
			if swept++; swept >= 16 {
				break
			}
		}
	}

	s.entries[id] = storedAnswer{
		answer:  normalizeAnswer(answer),
		expires: now.Add(s.ttl),
	}
}

func (s *memoryStore) Verify(id, answer string, clear bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return false
	}
	if s.now().After(e.expires) {
		delete(s.entries, id)
		return false
	}

	ok = e.answer == normalizeAnswer(answer)
	if ok && clear {
		delete(s.entries, id)
	}
	return ok
}

// normalizeAnswer makes verification case-insensitive — the rendered
// glyphs for some letter pairs are hard to tell apart at captcha sizes.
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
