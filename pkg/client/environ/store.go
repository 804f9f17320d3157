// Package environ keeps the mapping from environment variable names to the
// URLs of systems DBM links to (CMDB, node manager and so on).
package environ

import (
	"context"
	"maps"
	"slices"
	"sync"

	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/sources"
	"terraform-provider-dbm/pkg/client/session"
)

type FetchFunc func(ctx context.Context) (entities.SystemEnviron, error)

// FromSession fetches the environ through the DBM API.
func FromSession(s *session.Session) FetchFunc {
	return func(ctx context.Context) (entities.SystemEnviron, error) {
		return sources.GetSystemEnviron(ctx, s)
	}
}

// Store is empty until the first successful Fetch or Set. It is safe for
// concurrent use; the last write wins.
type Store struct {
	fetch FetchFunc

	mu        sync.RWMutex
	environ   entities.SystemEnviron
	populated bool
}

func NewStore(fetch FetchFunc) *Store {
	return &Store{
		fetch:   fetch,
		environ: entities.SystemEnviron{URLs: map[string]string{}},
	}
}

// Fetch replaces the whole mapping with the backend's. On error the current
// mapping is kept.
func (s *Store) Fetch(ctx context.Context) error {
	environ, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	s.replace(environ)
	return nil
}

// Set replaces the whole environ with urls. Keys missing from urls and any
// affinity options from an earlier Fetch are dropped.
func (s *Store) Set(urls map[string]string) {
	s.replace(entities.SystemEnviron{URLs: urls})
}

func (s *Store) replace(environ entities.SystemEnviron) {
	environ = environ.Clone()
	if environ.URLs == nil {
		environ.URLs = map[string]string{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.environ = environ
	s.populated = true
}

// URLs returns a copy of the current mapping.
func (s *Store) URLs() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.environ.URLs)
}

func (s *Store) URL(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	url, ok := s.environ.URLs[key]
	return url, ok
}

func (s *Store) Affinity() []entities.AffinityOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.environ.Affinity)
}

func (s *Store) Populated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.populated
}
