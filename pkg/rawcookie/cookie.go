package rawcookie

import (
	"bytes"
	"fmt"
	"strings"
)

// RawCookie is a cookie-pair as it appears on the wire. Name and Value are
// opaque octets; structural quotes and surrounding whitespace are not part of
// them. A RawCookie returned by Parse shares memory with the parsed input, use
// Clone to own the bytes.
type RawCookie struct {
	Name  []byte
	Value []byte
}

// New builds a RawCookie from strings without validating it. Use Validate
// before sending a manually built cookie.
func New(name, value string) RawCookie {
	return RawCookie{Name: []byte(name), Value: []byte(value)}
}

// Clone returns a copy of c that does not alias any other buffer.
func (c RawCookie) Clone() RawCookie {
	return RawCookie{Name: bytes.Clone(c.Name), Value: bytes.Clone(c.Value)}
}

// Equal reports whether both cookies carry byte-identical names and values.
func (c RawCookie) Equal(other RawCookie) bool {
	return bytes.Equal(c.Name, other.Name) && bytes.Equal(c.Value, other.Value)
}

func (c RawCookie) IsZero() bool {
	return len(c.Name) == 0 && len(c.Value) == 0
}

// String returns the unquoted wire form name=value.
func (c RawCookie) String() string {
	return string(Serialize(c))
}

// Mode selects the parsing algorithm. The zero value is Tolerant, the
// behavior RFC 6265 section 5.2 asks of receivers.
type Mode uint8

const (
	Tolerant Mode = iota
	Strict
)

func (m Mode) String() string {
	switch m {
	case Tolerant:
		return "tolerant"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode maps "strict" or "tolerant" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tolerant":
		return Tolerant, nil
	case "strict":
		return Strict, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// UnmarshalText lets a Mode be read from configuration.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Tolerant, Strict:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
}
