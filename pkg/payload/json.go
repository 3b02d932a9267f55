package payload

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// MarshalJSON encodes the payload as a JSON object with keys in insertion
// order. encoding/json would sort map keys, so the object is assembled here
// and only individual values are delegated to the standard encoder.
func (p *Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("payload: failed to encode key %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, fmt.Errorf("payload: failed to encode value for %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the payload, preserving the
// document's key order. Numbers decode as float64, matching encoding/json
// semantics. Existing entries are replaced.
func (p *Payload) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrMalformedJSON
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return ErrNotObject
	}
	p.keys = p.keys[:0]
	p.values = make(map[string]any)
	doc.ForEach(func(key, value gjson.Result) bool {
		p.Add(key.String(), value.Value())
		return true
	})
	return nil
}

// FromJSON parses text into a new payload. It returns ErrMalformedJSON for
// invalid JSON and ErrNotObject when the document is not an object.
func FromJSON(text string) (*Payload, error) {
	p := New()
	if err := p.UnmarshalJSON([]byte(text)); err != nil {
		return nil, err
	}
	return p, nil
}

// ToJSON encodes the payload as JSON text.
func (p *Payload) ToJSON() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
