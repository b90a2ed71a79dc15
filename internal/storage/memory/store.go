// Package memory is an in-process store used by the HTTP test suite and by
// STORE=memory runs. It enforces the same foreign keys as the MySQL schema.
package memory

import (
	"context"
	"sync"

	"trybe_hotel/internal/domain"
)

// table keeps rows in insertion order plus an id index.
type table[T any] struct {
	rows   []T
	byID   map[int64]int
	nextID int64
}

func newTable[T any]() table[T] {
	return table[T]{byID: map[int64]int{}, nextID: 1}
}

func (t *table[T]) insert(build func(id int64) T) T {
	id := t.nextID
	t.nextID++
	row := build(id)
	t.byID[id] = len(t.rows)
	t.rows = append(t.rows, row)
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	i, ok := t.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.rows[i], true
}

type Store struct {
	mu     sync.RWMutex
	cities table[domain.City]
	hotels table[domain.Hotel]
	rooms  table[domain.Room]
}

func New() *Store {
	return &Store{
		cities: newTable[domain.City](),
		hotels: newTable[domain.Hotel](),
		rooms:  newTable[domain.Room](),
	}
}

var _ domain.Store = (*Store)(nil)

// Open returns a session over the shared tables. Sessions hold no resources.
func (s *Store) Open(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &session{s: s}, nil
}

type session struct{ s *Store }

func (ss *session) Close() error { return nil }

// hotelView resolves the city for h; callers hold at least a read lock.
func (s *Store) hotelView(h domain.Hotel) domain.HotelView {
	c, _ := s.cities.get(h.CityID)
	return domain.HotelView{Hotel: h, CityName: c.Name}
}
