package memory

import (
	"context"

	"trybe_hotel/internal/domain"
)

func (ss *session) GetRoom(ctx context.Context, id int64) (domain.RoomView, error) {
	ss.s.mu.RLock()
	defer ss.s.mu.RUnlock()
	r, ok := ss.s.rooms.get(id)
	if !ok {
		return domain.RoomView{}, &domain.NotFoundError{Entity: "room", ID: id}
	}
	h, _ := ss.s.hotels.get(r.HotelID)
	return domain.RoomView{Room: r, Hotel: ss.s.hotelView(h)}, nil
}

func (ss *session) ListRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	ss.s.mu.RLock()
	defer ss.s.mu.RUnlock()
	if _, ok := ss.s.hotels.get(hotelID); !ok {
		return nil, &domain.NotFoundError{Entity: "hotel", ID: hotelID}
	}
	out := []domain.Room{}
	for _, r := range ss.s.rooms.rows {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (ss *session) CreateRoom(ctx context.Context, nr domain.NewRoom) (domain.RoomView, error) {
	if err := ctx.Err(); err != nil {
		return domain.RoomView{}, err
	}
	if nr.Capacity <= 0 || nr.Capacity > domain.MaxRoomCapacity {
		return domain.RoomView{}, &domain.ValidationError{Fields: []domain.FieldError{{Field: "capacity", Error: "out of range"}}}
	}
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()
	h, ok := ss.s.hotels.get(nr.HotelID)
	if !ok {
		return domain.RoomView{}, &domain.ReferenceError{Entity: "hotel", ID: nr.HotelID}
	}
	r := ss.s.rooms.insert(func(id int64) domain.Room {
		return domain.Room{ID: id, Name: nr.Name, Capacity: nr.Capacity, Image: nr.Image, HotelID: nr.HotelID}
	})
	return domain.RoomView{Room: r, Hotel: ss.s.hotelView(h)}, nil
}
