package memory

import (
	"context"

	"trybe_hotel/internal/domain"
)

func (ss *session) ListHotels(ctx context.Context) ([]domain.HotelView, error) {
	ss.s.mu.RLock()
	defer ss.s.mu.RUnlock()
	out := make([]domain.HotelView, 0, len(ss.s.hotels.rows))
	for _, h := range ss.s.hotels.rows {
		out = append(out, ss.s.hotelView(h))
	}
	return out, nil
}

func (ss *session) GetHotel(ctx context.Context, id int64) (domain.HotelView, error) {
	ss.s.mu.RLock()
	defer ss.s.mu.RUnlock()
	h, ok := ss.s.hotels.get(id)
	if !ok {
		return domain.HotelView{}, &domain.NotFoundError{Entity: "hotel", ID: id}
	}
	return ss.s.hotelView(h), nil
}

func (ss *session) CreateHotel(ctx context.Context, nh domain.NewHotel) (domain.HotelView, error) {
	if err := ctx.Err(); err != nil {
		return domain.HotelView{}, err
	}
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()
	if _, ok := ss.s.cities.get(nh.CityID); !ok {
		return domain.HotelView{}, &domain.ReferenceError{Entity: "city", ID: nh.CityID}
	}
	h := ss.s.hotels.insert(func(id int64) domain.Hotel {
		return domain.Hotel{ID: id, Name: nh.Name, Address: nh.Address, CityID: nh.CityID}
	})
	return ss.s.hotelView(h), nil
}
