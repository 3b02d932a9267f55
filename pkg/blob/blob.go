// Package blob implements the versioned binary encoding of a payload and its
// on-disk file form.
//
// The format is:
//   - 4 bytes: magic "BPL1"
//   - 1 byte:  format version (currently 1)
//   - 1 byte:  flags (bit 0: body is Snappy-compressed)
//   - 4 bytes: uncompressed body length (uint32, little-endian)
//   - 4 bytes: murmur3-32 checksum of the uncompressed body (little-endian)
//   - remaining: body, a JSON object with keys in payload insertion order
//
// Decoding validates magic, version, length and checksum before any JSON
// parsing, so foreign or corrupt input fails with a typed error instead of
// producing a garbage payload.
package blob

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang/snappy"
	"github.com/spaolacci/murmur3"

	"github.com/beaconkit/beaconkit/pkg/payload"
)

const (
	// Version is the current blob format version.
	Version = 1

	headerSize = 14

	flagSnappy = 1 << 0
)

var magic = [4]byte{'B', 'P', 'L', '1'}

var (
	// ErrTruncated is returned when input is too short to hold a header or
	// the body the header describes.
	ErrTruncated = errors.New("blob: truncated input")

	// ErrBadMagic is returned when input does not start with the blob magic.
	ErrBadMagic = errors.New("blob: bad magic")

	// ErrUnsupportedVersion is returned for a version this build cannot read.
	ErrUnsupportedVersion = errors.New("blob: unsupported format version")

	// ErrChecksumMismatch is returned when the body checksum does not match
	// the header.
	ErrChecksumMismatch = errors.New("blob: checksum mismatch")
)

// Marshal encodes the payload with a Snappy-compressed body.
func Marshal(p *payload.Payload) ([]byte, error) {
	return marshal(p, true)
}

// MarshalNoCompress encodes the payload with an uncompressed body. The output
// is readable by the same Unmarshal.
func MarshalNoCompress(p *payload.Payload) ([]byte, error) {
	return marshal(p, false)
}

func marshal(p *payload.Payload, compress bool) ([]byte, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("blob: failed to encode payload: %w", err)
	}

	sum := murmur3.Sum32(body)

	var flags byte
	out := body
	if compress {
		flags |= flagSnappy
		out = snappy.Encode(nil, body)
	}

	buf := make([]byte, headerSize+len(out))
	copy(buf[0:4], magic[:])
	buf[4] = Version
	buf[5] = flags
	binary.LittleEndian.PutUint32(buf[6:10], uint32(len(body)))
	binary.LittleEndian.PutUint32(buf[10:14], sum)
	copy(buf[headerSize:], out)

	return buf, nil
}

// Unmarshal decodes a blob produced by Marshal or MarshalNoCompress.
func Unmarshal(data []byte) (*payload.Payload, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	if [4]byte(data[0:4]) != magic {
		return nil, ErrBadMagic
	}
	if data[4] != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[4])
	}

	flags := data[5]
	bodyLen := binary.LittleEndian.Uint32(data[6:10])
	sum := binary.LittleEndian.Uint32(data[10:14])

	body := data[headerSize:]
	if flags&flagSnappy != 0 {
		decoded, err := snappy.Decode(nil, body)
		if err != nil {
			return nil, fmt.Errorf("blob: snappy decompress failed: %w", err)
		}
		body = decoded
	}

	if len(body) != int(bodyLen) {
		return nil, fmt.Errorf("%w: header says %d body bytes, got %d", ErrTruncated, bodyLen, len(body))
	}
	if murmur3.Sum32(body) != sum {
		return nil, ErrChecksumMismatch
	}

	p := payload.New()
	if err := p.UnmarshalJSON(body); err != nil {
		return nil, fmt.Errorf("blob: failed to decode body: %w", err)
	}
	return p, nil
}
