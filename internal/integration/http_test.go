package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	server "trybe_hotel/internal/adapters/http_server"
	"trybe_hotel/internal/app"
	"trybe_hotel/internal/domain"
	"trybe_hotel/internal/seed"
	"trybe_hotel/internal/storage/memory"
)

// newAPI seeds st with the default fixture and serves the full router over it.
func newAPI(t *testing.T, st domain.Store) *httptest.Server {
	t.Helper()
	svc := app.NewCatalogService(st, nil, 0)
	_, err := seed.Apply(context.Background(), svc, seed.Default())
	require.NoError(t, err)

	srv := server.New(server.Options{})
	srv.MountHandlers(&server.Handlers{C: svc})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, dst any) int {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	if dst != nil && res.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(res.Body).Decode(dst))
	}
	return res.StatusCode
}

func postJSON(t *testing.T, url string, body any, dst any) int {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	defer res.Body.Close()
	if dst != nil && res.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(res.Body).Decode(dst))
	}
	return res.StatusCode
}

// runCatalogSuite drives the seeded API through every endpoint.
func runCatalogSuite(t *testing.T, base string) {
	t.Run("list cities", func(t *testing.T) {
		var cities []domain.City
		require.Equal(t, http.StatusOK, getJSON(t, base+"/city", &cities))
		require.Len(t, cities, 2)
		assert.Equal(t, "Manaus", cities[0].Name)
		assert.Equal(t, "Palmas", cities[1].Name)
	})

	t.Run("list hotels", func(t *testing.T) {
		var hotels []domain.HotelView
		require.Equal(t, http.StatusOK, getJSON(t, base+"/hotel", &hotels))
		require.Len(t, hotels, 3)
		assert.Equal(t, "Trybe Hotel Manaus", hotels[0].Name)
		assert.Equal(t, "Manaus", hotels[0].City().Name)
		assert.Equal(t, "Palmas", hotels[1].CityName)
		assert.Equal(t, "Addres 3", hotels[2].Address)
	})

	t.Run("get room resolves hotel and city", func(t *testing.T) {
		var rv domain.RoomView
		require.Equal(t, http.StatusOK, getJSON(t, base+"/room/1", &rv))
		assert.Equal(t, int64(1), rv.ID)
		assert.Equal(t, "Room 1", rv.Name)
		assert.Equal(t, 2, rv.Capacity)
		assert.Equal(t, "Image 1", rv.Image)
		assert.Equal(t, int64(1), rv.HotelID)
		assert.Equal(t, int64(1), rv.Hotel.ID)
		assert.Equal(t, "Trybe Hotel Manaus", rv.Hotel.Name)
		assert.Equal(t, domain.City{ID: 1, Name: "Manaus"}, rv.Hotel.City())
	})

	t.Run("missing room is 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, getJSON(t, base+"/room/999", nil))
		assert.Equal(t, http.StatusNotFound, getJSON(t, base+"/city/999", nil))
		assert.Equal(t, http.StatusNotFound, getJSON(t, base+"/hotel/999", nil))
		assert.Equal(t, http.StatusNotFound, getJSON(t, base+"/hotel/999/rooms", nil))
	})

	t.Run("rooms of hotel", func(t *testing.T) {
		var rooms []domain.Room
		require.Equal(t, http.StatusOK, getJSON(t, base+"/hotel/2/rooms", &rooms))
		require.Len(t, rooms, 3)
		for i, r := range rooms {
			assert.Equal(t, int64(2), r.HotelID)
			assert.Equal(t, int64(i+4), r.ID)
			assert.Equal(t, fmt.Sprintf("Room %d", i+4), r.Name)
		}
	})

	t.Run("create city", func(t *testing.T) {
		var c domain.City
		require.Equal(t, http.StatusCreated, postJSON(t, base+"/city", map[string]any{"Name": "Rio de Janeiro"}, &c))
		assert.Positive(t, c.ID)
		assert.Equal(t, "Rio de Janeiro", c.Name)

		var got domain.City
		require.Equal(t, http.StatusOK, getJSON(t, fmt.Sprintf("%s/city/%d", base, c.ID), &got))
		assert.Equal(t, c, got)
	})

	t.Run("create hotel", func(t *testing.T) {
		var hv domain.HotelView
		code := postJSON(t, base+"/hotel", map[string]any{"Name": "Trybe Hotel RJ", "Address": "Address 4", "CityId": 2}, &hv)
		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, int64(2), hv.CityID)
		assert.Equal(t, "Palmas", hv.CityName)

		code = postJSON(t, base+"/hotel", map[string]any{"Name": "Nowhere", "Address": "Address 5", "CityId": 999}, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("create room", func(t *testing.T) {
		var rv domain.RoomView
		code := postJSON(t, base+"/room", map[string]any{"Name": "Room 10", "Capacity": 5, "Image": "Image 10", "HotelId": 2}, &rv)
		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, int64(2), rv.HotelID)
		assert.Equal(t, "Room 10", rv.Name)
		assert.Equal(t, int64(10), rv.ID)
		assert.Equal(t, 5, rv.Capacity)
		assert.Equal(t, "Trybe Hotel Palmas", rv.Hotel.Name)

		code = postJSON(t, base+"/room", map[string]any{"Name": "Room 11", "Capacity": 2, "Image": "Image 11", "HotelId": 999}, nil)
		assert.Equal(t, http.StatusNotFound, code)

		code = postJSON(t, base+"/room", map[string]any{"Name": "Room 12", "Capacity": 0, "Image": "Image 12", "HotelId": 2}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("failed creates persist nothing", func(t *testing.T) {
		var hotels []domain.HotelView
		require.Equal(t, http.StatusOK, getJSON(t, base+"/hotel", &hotels))
		assert.Len(t, hotels, 4)

		var rooms []domain.Room
		require.Equal(t, http.StatusOK, getJSON(t, base+"/hotel/2/rooms", &rooms))
		assert.Len(t, rooms, 4)
	})
}

func TestHTTP_MemoryStore(t *testing.T) {
	ts := newAPI(t, memory.New())
	runCatalogSuite(t, ts.URL)
}
