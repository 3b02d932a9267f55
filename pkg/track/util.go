// Package track exposes the tracker's utility surface: timestamps, event
// identifiers, payload conversions and payload file I/O, grouped behind a
// single facade with an injected logger.
package track

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/beaconkit/beaconkit/pkg/blob"
	"github.com/beaconkit/beaconkit/pkg/payload"
)

// ErrInvalidArgument is the sentinel wrapped by Require failures.
var ErrInvalidArgument = errors.New("invalid argument")

// Utils is the tracker utility facade. Every operation is stateless and safe
// for concurrent use. Operational failures are logged once at error level on
// the injected logger and returned to the caller; nothing panics.
type Utils struct {
	log zerolog.Logger
}

// New creates a facade that reports failures to log. Pass zerolog.Nop() to
// silence it.
func New(log zerolog.Logger) *Utils {
	return &Utils{log: log}
}

// NowMillis returns the current wall-clock time in milliseconds since the
// Unix epoch.
func (u *Utils) NowMillis() int64 {
	return time.Now().UnixMilli()
}

// NewEventID returns a random UUID string suitable as a globally unique
// event identifier.
func (u *Utils) NewEventID() string {
	return uuid.New().String()
}

// PayloadToJSON encodes p as JSON text with keys in insertion order.
func (u *Utils) PayloadToJSON(p *payload.Payload) (string, error) {
	text, err := p.ToJSON()
	if err != nil {
		u.log.Error().Err(err).Msg("failed to encode payload as JSON")
		return "", err
	}
	return text, nil
}

// PayloadFromJSON parses JSON text into a payload, preserving key order.
func (u *Utils) PayloadFromJSON(text string) (*payload.Payload, error) {
	p, err := payload.FromJSON(text)
	if err != nil {
		u.log.Error().Err(err).Msg("failed to decode JSON payload")
		return nil, err
	}
	return p, nil
}

// UTF8Length returns the number of bytes text occupies in UTF-8.
func (u *Utils) UTF8Length(text string) int {
	return len(text)
}

// UTF8Bytes returns the raw UTF-8 bytes of text.
func (u *Utils) UTF8Bytes(text string) []byte {
	return []byte(text)
}

// Base64Encode returns the standard base64 encoding of text's UTF-8 bytes.
func (u *Utils) Base64Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// QueryString encodes p as a "?k=v&..." query string in insertion order.
func (u *Utils) QueryString(p *payload.Payload) string {
	return p.QueryString()
}

// SerializePayload encodes p into the versioned binary blob format.
func (u *Utils) SerializePayload(p *payload.Payload) ([]byte, error) {
	data, err := blob.Marshal(p)
	if err != nil {
		u.log.Error().Err(err).Msg("failed to serialize payload")
		return nil, err
	}
	return data, nil
}

// DeserializePayload decodes a blob produced by SerializePayload. Malformed
// or foreign input yields a typed error from the blob package.
func (u *Utils) DeserializePayload(data []byte) (*payload.Payload, error) {
	p, err := blob.Unmarshal(data)
	if err != nil {
		u.log.Error().Err(err).Msg("failed to deserialize payload")
		return nil, err
	}
	return p, nil
}

// WritePayloadFile serializes p and writes it to path atomically.
func (u *Utils) WritePayloadFile(path string, p *payload.Payload) error {
	if err := blob.WriteFile(path, p); err != nil {
		u.log.Error().Err(err).Str("path", path).Msg("failed to write payload file")
		return err
	}
	return nil
}

// ReadPayloadFile reads and deserializes the payload stored at path.
func (u *Utils) ReadPayloadFile(path string) (*payload.Payload, error) {
	p, err := blob.ReadFile(path)
	if err != nil {
		u.log.Error().Err(err).Str("path", path).Msg("failed to read payload file")
		return nil, err
	}
	return p, nil
}

// InRange reports whether start lies within span milliseconds before check,
// i.e. start > check-span. Used to decide whether a stored timestamp is
// still fresh.
func (u *Utils) InRange(start, check, span int64) bool {
	return start > check-span
}

// Require returns nil when cond holds and an ErrInvalidArgument-wrapped
// error carrying msg otherwise.
func Require(cond bool, msg string) error {
	if cond {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}
