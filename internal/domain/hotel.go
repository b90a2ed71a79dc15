package domain

type Hotel struct {
	ID      int64  `json:"hotelId"`
	Name    string `json:"name"`
	Address string `json:"address"`
	CityID  int64  `json:"cityId"` // FK -> cities.id
}

// HotelView is a Hotel with its City resolved by a join, for display.
type HotelView struct {
	Hotel
	CityName string `json:"cityName"`
}

// City rebuilds the resolved City from the flattened view.
func (v HotelView) City() City { return City{ID: v.CityID, Name: v.CityName} }

type NewHotel struct {
	Name    string
	Address string
	CityID  int64
}
