package memory

import (
	"context"

	"trybe_hotel/internal/domain"
)

func (ss *session) ListCities(ctx context.Context) ([]domain.City, error) {
	ss.s.mu.RLock()
	defer ss.s.mu.RUnlock()
	out := make([]domain.City, len(ss.s.cities.rows))
	copy(out, ss.s.cities.rows)
	return out, nil
}

func (ss *session) GetCity(ctx context.Context, id int64) (domain.City, error) {
	ss.s.mu.RLock()
	defer ss.s.mu.RUnlock()
	c, ok := ss.s.cities.get(id)
	if !ok {
		return domain.City{}, &domain.NotFoundError{Entity: "city", ID: id}
	}
	return c, nil
}

func (ss *session) CreateCity(ctx context.Context, name string) (domain.City, error) {
	if err := ctx.Err(); err != nil {
		return domain.City{}, err
	}
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()
	return ss.s.cities.insert(func(id int64) domain.City {
		return domain.City{ID: id, Name: name}
	}), nil
}
