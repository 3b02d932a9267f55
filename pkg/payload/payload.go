// Package payload provides the ordered key-value event payload used by the
// tracker. A Payload preserves the order in which keys were added, which the
// query-string encoding depends on.
package payload

import (
	"reflect"
	"sort"
)

// Payload is an insertion-ordered mapping from string keys to scalar values.
// A zero Payload is not usable; construct one with New.
type Payload struct {
	keys   []string
	values map[string]any
}

// New creates an empty payload.
func New() *Payload {
	return &Payload{
		values: make(map[string]any),
	}
}

// Add sets key to value. A new key is appended after all existing keys; an
// existing key keeps its position and has its value replaced. Empty keys are
// ignored.
func (p *Payload) Add(key string, value any) {
	if key == "" {
		return
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// AddMap adds every entry of m. Map iteration order is unspecified in Go, so
// entries are added in sorted key order to keep the resulting payload
// deterministic. Callers that need a specific position should call Add.
func (p *Payload) AddMap(m map[string]any) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		p.Add(key, m[key])
	}
}

// Get returns the value stored under key and whether it is present.
func (p *Payload) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Payload) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Del removes key if present, preserving the order of the remaining keys.
func (p *Payload) Del(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (p *Payload) Len() int {
	return len(p.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (p *Payload) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Map returns the entries as a plain map. Order is lost; use Keys to recover
// it.
func (p *Payload) Map() map[string]any {
	out := make(map[string]any, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Equal reports whether p and other hold the same entries in the same order.
func (p *Payload) Equal(other *Payload) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.keys) != len(other.keys) {
		return false
	}
	for i, k := range p.keys {
		if other.keys[i] != k {
			return false
		}
		if !reflect.DeepEqual(p.values[k], other.values[k]) {
			return false
		}
	}
	return true
}
