package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trybe_hotel/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHotelView(s rowScanner) (domain.HotelView, error) {
	var hv domain.HotelView
	err := s.Scan(&hv.ID, &hv.Name, &hv.Address, &hv.CityID, &hv.CityName)
	return hv, err
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.HotelView, error) {
	rows, err := r.q.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	out := []domain.HotelView{}
	for rows.Next() {
		hv, err := scanHotelView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		out = append(out, hv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return out, nil
}

func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.HotelView, error) {
	hv, err := scanHotelView(r.q.QueryRowContext(ctx, getHotelSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.HotelView{}, &domain.NotFoundError{Entity: "hotel", ID: id}
		}
		return domain.HotelView{}, fmt.Errorf("get hotel %d: %w", id, err)
	}
	return hv, nil
}

// CreateHotel relies on fk_hotels_city; the engine rejects unknown cities.
func (r *Repo) CreateHotel(ctx context.Context, h domain.NewHotel) (domain.HotelView, error) {
	res, err := r.q.ExecContext(ctx, insertHotelSQL, h.Name, h.Address, h.CityID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.HotelView{}, &domain.ReferenceError{Entity: "city", ID: h.CityID}
		}
		return domain.HotelView{}, fmt.Errorf("insert hotel: %w", err)
	}
	id, err := insertID(res)
	if err != nil {
		return domain.HotelView{}, err
	}
	return r.GetHotel(ctx, id)
}
