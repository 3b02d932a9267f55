package payload

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// QueryString encodes the payload as an HTTP query string of the form
// "?k1=v1&k2=v2" with entries in insertion order. url.Values would sort keys,
// so pairs are assembled by hand. Keys and values are percent-encoded.
//
// Values are stringified: strings pass through, booleans and numbers use
// their canonical formatting, anything else falls back to fmt.Sprint.
func (p *Payload) QueryString() string {
	var b strings.Builder
	b.WriteByte('?')
	for i, key := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(stringify(p.values[key])))
	}
	return b.String()
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
