package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"trybe_hotel/internal/domain"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Open(ctx context.Context) (domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Session), args.Error(1)
}

type MockSession struct {
	mock.Mock
}

func (m *MockSession) ListCities(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *MockSession) GetCity(ctx context.Context, id int64) (domain.City, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.City), args.Error(1)
}

func (m *MockSession) CreateCity(ctx context.Context, name string) (domain.City, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.City), args.Error(1)
}

func (m *MockSession) ListHotels(ctx context.Context) ([]domain.HotelView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HotelView), args.Error(1)
}

func (m *MockSession) GetHotel(ctx context.Context, id int64) (domain.HotelView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.HotelView), args.Error(1)
}

func (m *MockSession) CreateHotel(ctx context.Context, h domain.NewHotel) (domain.HotelView, error) {
	args := m.Called(ctx, h)
	return args.Get(0).(domain.HotelView), args.Error(1)
}

func (m *MockSession) GetRoom(ctx context.Context, id int64) (domain.RoomView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.RoomView), args.Error(1)
}

func (m *MockSession) ListRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockSession) CreateRoom(ctx context.Context, r domain.NewRoom) (domain.RoomView, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.RoomView), args.Error(1)
}

func (m *MockSession) Close() error {
	args := m.Called()
	return args.Error(0)
}
