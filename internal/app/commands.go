package app

import (
	"context"

	"trybe_hotel/internal/domain"
)

func (s *CatalogService) CreateCity(ctx context.Context, name string) (domain.City, error) {
	var out domain.City
	err := s.withSession(ctx, "create_city", func(sess domain.Session) (err error) {
		out, err = sess.CreateCity(ctx, name)
		return err
	})
	if err != nil {
		return domain.City{}, err
	}
	s.invalidate(ctx, keyCities)
	return out, nil
}

func (s *CatalogService) CreateHotel(ctx context.Context, h domain.NewHotel) (domain.HotelView, error) {
	var out domain.HotelView
	err := s.withSession(ctx, "create_hotel", func(sess domain.Session) (err error) {
		out, err = sess.CreateHotel(ctx, h)
		return err
	})
	if err != nil {
		return domain.HotelView{}, err
	}
	s.invalidate(ctx, keyHotels)
	return out, nil
}

func (s *CatalogService) CreateRoom(ctx context.Context, r domain.NewRoom) (domain.RoomView, error) {
	var out domain.RoomView
	err := s.withSession(ctx, "create_room", func(sess domain.Session) (err error) {
		out, err = sess.CreateRoom(ctx, r)
		return err
	})
	if err != nil {
		return domain.RoomView{}, err
	}
	s.invalidate(ctx, keyHotelRooms(r.HotelID))
	return out, nil
}
