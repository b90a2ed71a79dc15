package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"trybe_hotel/internal/domain"
)

// Catalog is what the handlers need from the application layer.
type Catalog interface {
	ListCities(ctx context.Context) ([]domain.City, error)
	GetCity(ctx context.Context, id int64) (domain.City, error)
	CreateCity(ctx context.Context, name string) (domain.City, error)
	ListHotels(ctx context.Context) ([]domain.HotelView, error)
	GetHotel(ctx context.Context, id int64) (domain.HotelView, error)
	CreateHotel(ctx context.Context, h domain.NewHotel) (domain.HotelView, error)
	ListRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	GetRoom(ctx context.Context, id int64) (domain.RoomView, error)
	CreateRoom(ctx context.Context, r domain.NewRoom) (domain.RoomView, error)
}

type Handlers struct{ C Catalog }

type problem struct {
	Type   string              `json:"type"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Detail string              `json:"detail,omitempty"`
	Errors []domain.FieldError `json:"errors,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/city", func(r chi.Router) {
		r.Get("/", h.listCities)
		r.Post("/", h.createCity)
		r.Get("/{id}", h.getCity)
	})
	s.mux.Route("/hotel", func(r chi.Router) {
		r.Get("/", h.listHotels)
		r.Post("/", h.createHotel)
		r.Get("/{id}", h.getHotel)
		r.Get("/{id}/rooms", h.listHotelRooms)
	})
	s.mux.Route("/room", func(r chi.Router) {
		r.Post("/", h.createRoom)
		r.Get("/{id}", h.getRoom)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string, fields []domain.FieldError) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Errors: fields}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblem(w, http.StatusBadRequest, "Bad Request", ve.Error(), ve.Fields)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrReference):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error(), nil)
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to send
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("request canceled")
	default:
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "internal error", nil)
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body, nil
}

// writeJSON sends v with a weak ETag and answers 304 when the client has it.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	etag, body, err := calcETagAndBody(v)
	if err != nil {
		writeError(w, r, fmt.Errorf("encode response: %w", err))
		return
	}
	w.Header().Set("ETag", etag)
	if r.Method == http.MethodGet {
		if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Fields: []domain.FieldError{{Field: "id", Error: "must be a positive integer"}}}
	}
	return id, nil
}

// ---- city ----

func (h *Handlers) listCities(w http.ResponseWriter, r *http.Request) {
	out, err := h.C.ListCities(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *Handlers) getCity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out, err := h.C.GetCity(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *Handlers) createCity(w http.ResponseWriter, r *http.Request) {
	var req createCityRequest
	if err := bind(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	out, err := h.C.CreateCity(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/city/%d", out.ID))
	writeJSON(w, r, http.StatusCreated, out)
}

// ---- hotel ----

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	out, err := h.C.ListHotels(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out, err := h.C.GetHotel(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *Handlers) listHotelRooms(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out, err := h.C.ListRoomsByHotel(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var req createHotelRequest
	if err := bind(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	out, err := h.C.CreateHotel(r.Context(), domain.NewHotel{Name: req.Name, Address: req.Address, CityID: req.CityID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/hotel/%d", out.ID))
	writeJSON(w, r, http.StatusCreated, out)
}

// ---- room ----

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out, err := h.C.GetRoom(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := bind(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	out, err := h.C.CreateRoom(r.Context(), domain.NewRoom{
		Name:     req.Name,
		Capacity: req.Capacity,
		Image:    req.Image,
		HotelID:  req.HotelID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/room/%d", out.ID))
	writeJSON(w, r, http.StatusCreated, out)
}
