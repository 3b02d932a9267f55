package blob

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/beaconkit/beaconkit/pkg/payload"
)

func TestProperty_BlobRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	roundTrip := func(p *payload.Payload, compress bool) bool {
		var (
			data []byte
			err  error
		)
		if compress {
			data, err = Marshal(p)
		} else {
			data, err = MarshalNoCompress(p)
		}
		if err != nil {
			return false
		}
		rt, err := Unmarshal(data)
		if err != nil {
			return false
		}
		return p.Equal(rt)
	}

	properties.Property("Unmarshal(Marshal(P)) == P", prop.ForAll(
		func(keys []string, values []string, compress bool) bool {
			p := payload.New()
			n := len(keys)
			if len(values) < n {
				n = len(values)
			}
			for i := 0; i < n; i++ {
				p.Add(keys[i], values[i])
			}
			return roundTrip(p, compress)
		},
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.AnyString()),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
