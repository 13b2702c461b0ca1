package octet

type class uint8

const (
	classCTL class = 1 << iota
	classSeparator
	classToken
	classCookieOctet
	classWhitespace
)

// separators lists the token separators of RFC 2616 section 2.2, SP and HT included.
const separators = "()<>@,;:\\\"/[]?={} \t"

var table [256]class

func init() {
	for i := range table {
		b := byte(i)
		var c class

		if b <= 0x1F || b == 0x7F {
			c |= classCTL
		}
		for j := 0; j < len(separators); j++ {
			if separators[j] == b {
				c |= classSeparator
				break
			}
		}
		if b <= 0x7F && c == 0 {
			c |= classToken
		}

		switch {
		case b == 0x21,
			b >= 0x23 && b <= 0x2B,
			b >= 0x2D && b <= 0x3A,
			b >= 0x3C && b <= 0x5B,
			b >= 0x5D && b <= 0x7E:
			c |= classCookieOctet
		}

		if b == ' ' || b == '\t' {
			c |= classWhitespace
		}

		table[i] = c
	}
}

// IsCTL reports whether b is a control octet: 0x00-0x1F or 0x7F.
func IsCTL(b byte) bool { return table[b]&classCTL != 0 }

// IsSeparator reports whether b is one of ( ) < > @ , ; : \ " / [ ] ? = { } SP HT.
func IsSeparator(b byte) bool { return table[b]&classSeparator != 0 }

// IsTokenChar reports whether b is an ASCII octet that is neither a CTL nor a separator.
func IsTokenChar(b byte) bool { return table[b]&classToken != 0 }

// IsCookieOctet reports whether b is in %x21 / %x23-2B / %x2D-3A / %x3C-5B / %x5D-7E.
func IsCookieOctet(b byte) bool { return table[b]&classCookieOctet != 0 }

// IsWhitespace reports whether b is SP or HT, the octets trimmed around tolerant pairs.
func IsWhitespace(b byte) bool { return table[b]&classWhitespace != 0 }

// ValidToken returns the index of the first octet in p that is not a token
// char, or -1 if every octet is. An empty p returns -1.
func ValidToken(p []byte) int {
	for i, b := range p {
		if table[b]&classToken == 0 {
			return i
		}
	}
	return -1
}

// ValidCookieOctets returns the index of the first octet in p that is not a
// cookie-octet, or -1 if every octet is.
func ValidCookieOctets(p []byte) int {
	for i, b := range p {
		if table[b]&classCookieOctet == 0 {
			return i
		}
	}
	return -1
}
