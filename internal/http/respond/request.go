package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MrJamesThe3rd/biztime/internal/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// A NullString counts as present once its key was decoded, null included.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if ns, ok := field.Interface().(NullString); ok && ns.Set {
			return true
		}

		return nil
	}, NullString{})

	return v
}

// NullString is a string field that may be sent as JSON null. Set records
// whether the key appeared in the body at all.
type NullString struct {
	Value *string
	Set   bool
}

func (ns *NullString) UnmarshalJSON(data []byte) error {
	ns.Set = true

	if string(data) == "null" {
		ns.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	ns.Value = &s

	return nil
}

// Decode reads a single JSON value from the body into dst and checks its
// `validate` tags. Required fields are declared as pointers (or NullString)
// so that presence, not zero-ness, is what gets checked. Failures are
// returned as apperr bad requests.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return decodeError(err)
		}

		return apperr.BadRequest("request body must contain a single JSON object")
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}

			return apperr.BadRequest("missing required fields: " + strings.Join(fields, ", "))
		}

		return apperr.BadRequest("invalid request body").Wrap(err)
	}

	return nil
}

func decodeError(err error) error {
	var maxErr *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return apperr.BadRequest("request body is required")
	case errors.As(err, &maxErr):
		return apperr.BadRequest("request body too large").Wrap(err)
	default:
		return apperr.BadRequest("invalid JSON body").Wrap(err)
	}
}
