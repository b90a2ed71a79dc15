package app

import (
	"context"

	"trybe_hotel/internal/domain"
)

func (s *CatalogService) ListCities(ctx context.Context) ([]domain.City, error) {
	var out []domain.City
	if s.cacheGet(ctx, keyCities, &out) {
		return out, nil
	}
	err := s.withSession(ctx, "list_cities", func(sess domain.Session) (err error) {
		out, err = sess.ListCities(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, keyCities, out)
	return out, nil
}

func (s *CatalogService) GetCity(ctx context.Context, id int64) (domain.City, error) {
	var out domain.City
	if s.cacheGet(ctx, keyCity(id), &out) {
		return out, nil
	}
	err := s.withSession(ctx, "get_city", func(sess domain.Session) (err error) {
		out, err = sess.GetCity(ctx, id)
		return err
	})
	if err != nil {
		return domain.City{}, err
	}
	s.cacheSet(ctx, keyCity(id), out)
	return out, nil
}

func (s *CatalogService) ListHotels(ctx context.Context) ([]domain.HotelView, error) {
	var out []domain.HotelView
	if s.cacheGet(ctx, keyHotels, &out) {
		return out, nil
	}
	err := s.withSession(ctx, "list_hotels", func(sess domain.Session) (err error) {
		out, err = sess.ListHotels(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, keyHotels, out)
	return out, nil
}

func (s *CatalogService) GetHotel(ctx context.Context, id int64) (domain.HotelView, error) {
	var out domain.HotelView
	if s.cacheGet(ctx, keyHotel(id), &out) {
		return out, nil
	}
	err := s.withSession(ctx, "get_hotel", func(sess domain.Session) (err error) {
		out, err = sess.GetHotel(ctx, id)
		return err
	})
	if err != nil {
		return domain.HotelView{}, err
	}
	s.cacheSet(ctx, keyHotel(id), out)
	return out, nil
}

func (s *CatalogService) ListRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var out []domain.Room
	if s.cacheGet(ctx, keyHotelRooms(hotelID), &out) {
		return out, nil
	}
	err := s.withSession(ctx, "list_rooms_by_hotel", func(sess domain.Session) (err error) {
		out, err = sess.ListRoomsByHotel(ctx, hotelID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, keyHotelRooms(hotelID), out)
	return out, nil
}

func (s *CatalogService) GetRoom(ctx context.Context, id int64) (domain.RoomView, error) {
	var out domain.RoomView
	if s.cacheGet(ctx, keyRoom(id), &out) {
		return out, nil
	}
	err := s.withSession(ctx, "get_room", func(sess domain.Session) (err error) {
		out, err = sess.GetRoom(ctx, id)
		return err
	})
	if err != nil {
		return domain.RoomView{}, err
	}
	s.cacheSet(ctx, keyRoom(id), out)
	return out, nil
}
