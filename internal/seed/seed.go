// Package seed loads catalog fixtures into a store through the same create
// operations the API uses, so foreign keys and cache invalidation apply.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"trybe_hotel/internal/domain"
)

//go:embed fixture.json
var defaultFixture []byte

// Fixture ids are local to the file; parents are referenced by them and
// translated to store-assigned ids while seeding.
type Fixture struct {
	Cities []FixtureCity  `json:"cities"`
	Hotels []FixtureHotel `json:"hotels"`
	Rooms  []FixtureRoom  `json:"rooms"`
}

type FixtureCity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type FixtureHotel struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	CityID  int64  `json:"cityId"`
}

type FixtureRoom struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Image    string `json:"image"`
	HotelID  int64  `json:"hotelId"`
}

// Creator is the write side of the catalog service.
type Creator interface {
	CreateCity(ctx context.Context, name string) (domain.City, error)
	CreateHotel(ctx context.Context, h domain.NewHotel) (domain.HotelView, error)
	CreateRoom(ctx context.Context, r domain.NewRoom) (domain.RoomView, error)
}

type Result struct {
	Cities, Hotels, Rooms int
}

// Default returns the embedded fixture: two cities, three hotels, nine rooms.
func Default() Fixture {
	f, err := Parse(defaultFixture)
	if err != nil {
		panic(fmt.Sprintf("embedded fixture: %v", err))
	}
	return f
}

func Parse(b []byte) (Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(b, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	return f, nil
}

// Load reads a fixture file; an empty path yields the default fixture.
func Load(path string) (Fixture, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(b)
}

// Apply inserts cities, hotels and rooms in fixture order, one at a time, so
// store-assigned ids follow the fixture and listings come back in that order.
// Every parent reference is checked before anything is written.
func Apply(ctx context.Context, c Creator, f Fixture) (Result, error) {
	var res Result
	if err := f.check(); err != nil {
		return res, err
	}

	cityIDs := make(map[int64]int64, len(f.Cities))
	for _, fc := range f.Cities {
		city, err := c.CreateCity(ctx, fc.Name)
		if err != nil {
			return res, fmt.Errorf("seed city %q: %w", fc.Name, err)
		}
		cityIDs[fc.ID] = city.ID
		res.Cities++
	}

	hotelIDs := make(map[int64]int64, len(f.Hotels))
	for _, fh := range f.Hotels {
		h, err := c.CreateHotel(ctx, domain.NewHotel{Name: fh.Name, Address: fh.Address, CityID: cityIDs[fh.CityID]})
		if err != nil {
			return res, fmt.Errorf("seed hotel %q: %w", fh.Name, err)
		}
		hotelIDs[fh.ID] = h.ID
		res.Hotels++
	}

	for _, fr := range f.Rooms {
		nr := domain.NewRoom{Name: fr.Name, Capacity: fr.Capacity, Image: fr.Image, HotelID: hotelIDs[fr.HotelID]}
		if _, err := c.CreateRoom(ctx, nr); err != nil {
			return res, fmt.Errorf("seed room %q: %w", fr.Name, err)
		}
		res.Rooms++
	}

	log.Info().
		Int("cities", res.Cities).
		Int("hotels", res.Hotels).
		Int("rooms", res.Rooms).
		Msg("seed applied")
	return res, nil
}

// check resolves every fixture-local parent id.
func (f Fixture) check() error {
	cities := make(map[int64]bool, len(f.Cities))
	for _, fc := range f.Cities {
		cities[fc.ID] = true
	}
	hotels := make(map[int64]bool, len(f.Hotels))
	for _, fh := range f.Hotels {
		if !cities[fh.CityID] {
			return fmt.Errorf("seed hotel %q: %w", fh.Name, &domain.ReferenceError{Entity: "city", ID: fh.CityID})
		}
		hotels[fh.ID] = true
	}
	for _, fr := range f.Rooms {
		if !hotels[fr.HotelID] {
			return fmt.Errorf("seed room %q: %w", fr.Name, &domain.ReferenceError{Entity: "hotel", ID: fr.HotelID})
		}
	}
	return nil
}
