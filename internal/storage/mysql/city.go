package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trybe_hotel/internal/domain"
)

func (r *Repo) ListCities(ctx context.Context) ([]domain.City, error) {
	rows, err := r.q.QueryContext(ctx, listCitiesSQL)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	out := []domain.City{}
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return out, nil
}

func (r *Repo) GetCity(ctx context.Context, id int64) (domain.City, error) {
	var c domain.City
	if err := r.q.QueryRowContext(ctx, getCitySQL, id).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.City{}, &domain.NotFoundError{Entity: "city", ID: id}
		}
		return domain.City{}, fmt.Errorf("get city %d: %w", id, err)
	}
	return c, nil
}

func (r *Repo) CreateCity(ctx context.Context, name string) (domain.City, error) {
	res, err := r.q.ExecContext(ctx, insertCitySQL, name)
	if err != nil {
		return domain.City{}, fmt.Errorf("insert city: %w", err)
	}
	id, err := insertID(res)
	if err != nil {
		return domain.City{}, err
	}
	return domain.City{ID: id, Name: name}, nil
}
