// pkg/mem/destination_slugs.go
package mem

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// SlugLoader fetches the full destination name/id -> slug mapping from the
// catalog. Called at most once per cache lifetime.
type SlugLoader func(ctx context.Context) (map[string]string, error)

// DestinationSlugs is the one piece of process-wide shared state: a lazily
// populated, read-mostly cache of canonical destination slugs. Concurrent
// first users share a single catalog fetch via singleflight; there is no TTL,
// only an explicit ForceClear after which the next access repopulates.
type DestinationSlugs struct {
	mu     sync.RWMutex
	slugs  map[string]string
	loaded bool

	group singleflight.Group
	load  SlugLoader
}

func NewDestinationSlugs(load SlugLoader) *DestinationSlugs {
	return &DestinationSlugs{load: load}
}

// Slug resolves a destination name or id to its canonical slug. Lookup keys
// are case-insensitive. Returns ("", false) for unknown destinations.
func (s *DestinationSlugs) Slug(ctx context.Context, nameOrID string) (string, bool, error) {
	if err := s.ensure(ctx); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	slug, ok := s.slugs[strings.ToLower(nameOrID)]
	return slug, ok, nil
}

// ForceClear drops the cache; the next access runs a fresh catalog fetch.
func (s *DestinationSlugs) ForceClear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slugs = nil
	s.loaded = false
}

func (s *DestinationSlugs) ensure(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := s.group.Do("populate", func() (interface{}, error) {
		// Re-check under the group: a caller that queued behind the
		// populating fetch sees the fresh state without a second fetch.
		s.mu.RLock()
		done := s.loaded
		s.mu.RUnlock()
		if done {
			return nil, nil
		}

		fetched, err := s.load(ctx)
		if err != nil {
			return nil, err
		}

		normalized := make(map[string]string, len(fetched))
		for k, v := range fetched {
			normalized[strings.ToLower(k)] = v
		}

		s.mu.Lock()
		s.slugs = normalized
		s.loaded = true
		s.mu.Unlock()
		return nil, nil
	})
	return err
}
