package payload

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildPayload zips keys and values into a payload. Duplicate keys collapse
// per Add semantics, which is exactly what the round-trip laws must survive.
func buildPayload(keys []string, values []string) *Payload {
	p := New()
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		p.Add(keys[i], values[i])
	}
	return p
}

func TestProperty_JSONRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("decode(encode(P)) preserves entries and order for string values", prop.ForAll(
		func(keys []string, values []string) bool {
			p := buildPayload(keys, values)

			text, err := p.ToJSON()
			if err != nil {
				return false
			}
			rt, err := FromJSON(text)
			if err != nil {
				return false
			}
			return p.Equal(rt)
		},
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.AnyString()),
	))

	properties.Property("decode(encode(P)) preserves bool and float64 scalars", prop.ForAll(
		func(s string, b bool, f float64) bool {
			p := New()
			p.Add("s", s)
			p.Add("b", b)
			p.Add("f", f)

			text, err := p.ToJSON()
			if err != nil {
				return false
			}
			rt, err := FromJSON(text)
			if err != nil {
				return false
			}
			return p.Equal(rt)
		},
		gen.AnyString(),
		gen.Bool(),
		gen.Float64Range(-1e12, 1e12),
	))

	properties.TestingRun(t)
}

func TestProperty_QueryStringOrder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("query string lists keys in insertion order", prop.ForAll(
		func(keys []string) bool {
			p := New()
			for _, k := range keys {
				p.Add(k, "v")
			}

			qs := p.QueryString()
			if !strings.HasPrefix(qs, "?") {
				return false
			}
			if p.Len() == 0 {
				return qs == "?"
			}

			var got []string
			for _, pair := range strings.Split(qs[1:], "&") {
				got = append(got, strings.SplitN(pair, "=", 2)[0])
			}
			want := p.Keys()
			if len(got) != len(want) {
				return false
			}
			for i := range want {
				if got[i] != want[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.TestingRun(t)
}
