package payload

import "errors"

var (
	// ErrMalformedJSON is returned when input text is not valid JSON.
	ErrMalformedJSON = errors.New("malformed JSON")

	// ErrNotObject is returned when valid JSON input is not a JSON object.
	ErrNotObject = errors.New("JSON value is not an object")
)
