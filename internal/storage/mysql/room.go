package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trybe_hotel/internal/domain"
)

func (r *Repo) GetRoom(ctx context.Context, id int64) (domain.RoomView, error) {
	var rv domain.RoomView
	err := r.q.QueryRowContext(ctx, getRoomSQL, id).Scan(
		&rv.ID,
		&rv.Name,
		&rv.Capacity,
		&rv.Image,
		&rv.HotelID,
		&rv.Hotel.Name,
		&rv.Hotel.Address,
		&rv.Hotel.CityID,
		&rv.Hotel.CityName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RoomView{}, &domain.NotFoundError{Entity: "room", ID: id}
		}
		return domain.RoomView{}, fmt.Errorf("get room %d: %w", id, err)
	}
	rv.Hotel.ID = rv.HotelID
	return rv, nil
}

func (r *Repo) ListRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	rows, err := r.q.QueryContext(ctx, listRoomsByHotelSQL, hotelID)
	if err != nil {
		return nil, fmt.Errorf("list rooms of hotel %d: %w", hotelID, err)
	}
	defer rows.Close()

	found := false
	out := []domain.Room{}
	for rows.Next() {
		found = true
		var (
			id, capacity sql.NullInt64
			name, image  sql.NullString
		)
		if err := rows.Scan(&id, &name, &capacity, &image); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		if !id.Valid {
			continue // hotel exists but has no rooms
		}
		out = append(out, domain.Room{
			ID:       id.Int64,
			Name:     name.String,
			Capacity: int(capacity.Int64),
			Image:    image.String,
			HotelID:  hotelID,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rooms of hotel %d: %w", hotelID, err)
	}
	if !found {
		return nil, &domain.NotFoundError{Entity: "hotel", ID: hotelID}
	}
	return out, nil
}

// CreateRoom relies on fk_rooms_hotel; the engine rejects unknown hotels.
func (r *Repo) CreateRoom(ctx context.Context, nr domain.NewRoom) (domain.RoomView, error) {
	res, err := r.q.ExecContext(ctx, insertRoomSQL, nr.Name, nr.Capacity, nr.Image, nr.HotelID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.RoomView{}, &domain.ReferenceError{Entity: "hotel", ID: nr.HotelID}
		}
		if isRangeViolation(err) {
			return domain.RoomView{}, &domain.ValidationError{Fields: []domain.FieldError{{Field: "capacity", Error: "out of range"}}}
		}
		return domain.RoomView{}, fmt.Errorf("insert room: %w", err)
	}
	id, err := insertID(res)
	if err != nil {
		return domain.RoomView{}, err
	}
	return r.GetRoom(ctx, id)
}
