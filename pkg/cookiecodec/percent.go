package cookiecodec

import (
	"fmt"

	"github.com/dmitrymomot/cookiewire/pkg/octet"
	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
)

const upperhex = "0123456789ABCDEF"

type percentCodec struct{}

// Encode escapes every octet the grammar does not allow, plus '%' itself,
// in both name and value.
func (percentCodec) Encode(c DecodedCookie) (rawcookie.RawCookie, error) {
	return validated(rawcookie.RawCookie{
		Name:  escape([]byte(c.Name), octet.IsTokenChar),
		Value: escape([]byte(c.Value), octet.IsCookieOctet),
	})
}

// Decode reverses Encode. Malformed escapes are rejected, not repaired.
func (percentCodec) Decode(c rawcookie.RawCookie) (DecodedCookie, error) {
	name, err := unescape(c.Name)
	if err != nil {
		return DecodedCookie{}, fmt.Errorf("name: %w", err)
	}
	value, err := unescape(c.Value)
	if err != nil {
		return DecodedCookie{}, fmt.Errorf("value: %w", err)
	}
	return text(name, value)
}

func escape(p []byte, allowed func(byte) bool) []byte {
	out := make([]byte, 0, len(p))
	for _, b := range p {
		if b != '%' && allowed(b) {
			out = append(out, b)
			continue
		}
		out = append(out, '%', upperhex[b>>4], upperhex[b&0x0F])
	}
	return out
}

func unescape(p []byte) ([]byte, error) {
	out := make([]byte, 0, len(p))
	for i := 0; i < len(p); i++ {
		if p[i] != '%' {
			out = append(out, p[i])
			continue
		}
		if i+2 >= len(p) {
			return nil, fmt.Errorf("%w: truncated at offset %d", ErrInvalidEscape, i)
		}
		hi, ok1 := unhex(p[i+1])
		lo, ok2 := unhex(p[i+2])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidEscape, p[i:i+3], i)
		}
		out = append(out, hi<<4|lo)
		i += 2
	}
	return out, nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
