package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"trybe_hotel/internal/domain"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type createCityRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}

type createHotelRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=255"`
	Address string `json:"address" validate:"required,notblank,max=255"`
	CityID  int64  `json:"cityId" validate:"required,gt=0"`
}

// capacity is stored in a signed 32-bit INT column (domain.MaxRoomCapacity)
type createRoomRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=255"`
	Capacity int    `json:"capacity" validate:"required,gt=0,lte=2147483647"`
	Image    string `json:"image" validate:"required,notblank,max=1024"`
	HotelID  int64  `json:"hotelId" validate:"required,gt=0"`
}

// bind decodes a JSON body into dst and validates it. Every failure comes
// back as *domain.ValidationError. JSON keys match case-insensitively, so
// {"Name": ...} and {"name": ...} both bind.
func bind(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if err := validate.Struct(dst); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			return fieldErrors(ves)
		}
		return err
	}
	return nil
}

func decodeError(err error) *domain.ValidationError {
	var (
		typeErr *json.UnmarshalTypeError
		syntax  *json.SyntaxError
		tooBig  *http.MaxBytesError
	)
	fe := domain.FieldError{Field: "body"}
	switch {
	case errors.As(err, &typeErr):
		fe.Field = typeErr.Field
		fe.Error = "must be a " + typeErr.Type.String()
	case errors.As(err, &syntax), errors.Is(err, io.ErrUnexpectedEOF):
		fe.Error = "malformed JSON"
	case errors.Is(err, io.EOF):
		fe.Error = "is required"
	case errors.As(err, &tooBig):
		fe.Error = fmt.Sprintf("must not exceed %d bytes", tooBig.Limit)
	default:
		fe.Error = err.Error()
	}
	return &domain.ValidationError{Fields: []domain.FieldError{fe}}
}

func fieldErrors(ves validator.ValidationErrors) *domain.ValidationError {
	out := &domain.ValidationError{}
	for _, fe := range ves {
		var msg string
		switch fe.Tag() {
		case "required", "notblank":
			msg = "is required"
		case "gt":
			msg = "must be greater than " + fe.Param()
		case "lte":
			msg = "must be at most " + fe.Param()
		case "max":
			msg = "must not exceed " + fe.Param() + " characters"
		default:
			msg = "failed " + fe.Tag()
		}
		out.Fields = append(out.Fields, domain.FieldError{Field: fe.Field(), Error: msg})
	}
	return out
}
