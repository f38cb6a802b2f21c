// Package repository exposes the per-entity persistence facades for
// places, posts, and events. Repositories are thin: a querySpec declares
// the entity's column whitelists once, the builder turns caller criteria
// into parameterized SQL, and the bound backend executes it. Errors from
// the backend propagate unchanged; zero-row lookups return nil.
package repository

import (
	"context"

	"github.com/kolocal/kolocal-api/internal/config"
	"github.com/kolocal/kolocal-api/internal/pkg/database"
)

// Store bundles the three entity repositories bound to one backend handle.
type Store struct {
	Places *PlaceRepository
	Posts  *PostRepository
	Events *EventRepository

	conn database.Conn
}

// NewStore binds repositories to an explicitly provided backend handle.
func NewStore(conn database.Conn) *Store {
	return &Store{
		Places: NewPlaceRepository(conn),
		Posts:  NewPostRepository(conn),
		Events: NewEventRepository(conn),
		conn:   conn,
	}
}

// Open resolves a backend through the selector and binds repositories to
// it. When no backend is configured this fails fast with a configuration
// error instead of handing out repositories that return empty results.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	conn, err := database.Select(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewStore(conn), nil
}

// Conn returns the backend handle the store is bound to.
func (s *Store) Conn() database.Conn {
	return s.conn
}
