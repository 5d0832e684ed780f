// Package payload decodes ingest bodies into structs of pointer fields so a
// missing key and a wrongly typed key can be told apart.
package payload

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"

	"eggfarm/pkg/apperror"
)

const msgInvalidJSON = "Invalid JSON body"

// Decode reads one JSON object from r into v. An empty body is reported as
// missing fields, a type mismatch as an invalid field, anything else as an
// invalid body. Unknown keys are ignored; trailing data after the object is not.
func Decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	err := dec.Decode(v)
	if err == nil {
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return apperror.Validation(msgInvalidJSON)
		}
		return nil
	}
	if errors.Is(err, io.EOF) {
		return apperror.MissingFields()
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return apperror.InvalidField(te.Field)
	}
	return apperror.Validation(msgInvalidJSON)
}

// Flag is a boolean that also accepts the integers 0 and 1, matching how the
// value is stored.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	default:
		return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf(Flag(false))}
	}
	return nil
}

// Int converts the flag to its stored 0/1 form.
func (f Flag) Int() int {
	if f {
		return 1
	}
	return 0
}
