package cookiecodec

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
)

// Display renders c for humans. Octets are read as UTF-8 when they form valid
// UTF-8 and as Windows-1252 otherwise. The result is for presentation only.
func Display(c rawcookie.RawCookie) DecodedCookie {
	return DecodedCookie{Name: DisplayString(c.Name), Value: DisplayString(c.Value)}
}

// DisplayString is Display for a single octet sequence. Distinct octets always
// render as distinct runes: the five octets Windows-1252 leaves undefined
// (0x81, 0x8D, 0x8F, 0x90, 0x9D) map to their Latin-1 code points.
func DisplayString(p []byte) string {
	if utf8.Valid(p) {
		return string(p)
	}

	var b strings.Builder
	b.Grow(len(p) * 2)
	for _, o := range p {
		r := charmap.Windows1252.DecodeByte(o)
		if r == utf8.RuneError {
			r = rune(o)
		}
		b.WriteRune(r)
	}
	return b.String()
}
