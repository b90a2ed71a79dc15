package app

import "fmt"

const (
	keyCities = "cities"
	keyHotels = "hotels"
)

func keyCity(id int64) string       { return fmt.Sprintf("city:%d", id) }
func keyHotel(id int64) string      { return fmt.Sprintf("hotel:%d", id) }
func keyHotelRooms(id int64) string { return fmt.Sprintf("hotel:%d:rooms", id) }
func keyRoom(id int64) string       { return fmt.Sprintf("room:%d", id) }
