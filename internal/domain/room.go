package domain

import "math"

// MaxRoomCapacity is the largest capacity the rooms.capacity INT column holds.
const MaxRoomCapacity = math.MaxInt32

type Room struct {
	ID       int64  `json:"roomId"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Image    string `json:"image"`   // URL or path
	HotelID  int64  `json:"hotelId"` // FK -> hotels.id
}

// RoomView resolves the owning hotel and, through it, the city.
type RoomView struct {
	Room
	Hotel HotelView `json:"hotel"`
}

type NewRoom struct {
	Name     string
	Capacity int
	Image    string
	HotelID  int64
}
