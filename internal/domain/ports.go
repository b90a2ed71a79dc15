package domain

import "context"

type CityRepository interface {
	ListCities(ctx context.Context) ([]City, error)
	GetCity(ctx context.Context, id int64) (City, error)
	CreateCity(ctx context.Context, name string) (City, error)
}

type HotelRepository interface {
	ListHotels(ctx context.Context) ([]HotelView, error)
	GetHotel(ctx context.Context, id int64) (HotelView, error)
	CreateHotel(ctx context.Context, h NewHotel) (HotelView, error)
}

type RoomRepository interface {
	GetRoom(ctx context.Context, id int64) (RoomView, error)
	ListRoomsByHotel(ctx context.Context, hotelID int64) ([]Room, error)
	CreateRoom(ctx context.Context, r NewRoom) (RoomView, error)
}

// Session is a request-scoped handle to a backing store. Callers must Close it.
type Session interface {
	CityRepository
	HotelRepository
	RoomRepository
	Close() error
}

// Store hands out sessions; the MySQL and in-memory stores both implement it.
type Store interface {
	Open(ctx context.Context) (Session, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, keys ...string) error
}
