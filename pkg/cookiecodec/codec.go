package cookiecodec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
)

// DecodedCookie is a cookie as application text.
type DecodedCookie struct {
	Name  string
	Value string
}

// Codec maps application text to wire octets and back. Encode output always
// passes rawcookie.Validate.
type Codec interface {
	Encode(c DecodedCookie) (rawcookie.RawCookie, error)
	Decode(c rawcookie.RawCookie) (DecodedCookie, error)
}

var (
	Identity Codec = identityCodec{}
	Percent  Codec = percentCodec{}
	Base64   Codec = base64Codec{}
)

// ByName returns the codec called "identity", "percent" or "base64".
func ByName(name string) (Codec, bool) {
	switch strings.ToLower(name) {
	case "", "identity":
		return Identity, true
	case "percent":
		return Percent, true
	case "base64":
		return Base64, true
	}
	return nil, false
}

type identityCodec struct{}

func (identityCodec) Encode(c DecodedCookie) (rawcookie.RawCookie, error) {
	return validated(rawcookie.New(c.Name, c.Value))
}

func (identityCodec) Decode(c rawcookie.RawCookie) (DecodedCookie, error) {
	return text(c.Name, c.Value)
}

type base64Codec struct{}

func (base64Codec) Encode(c DecodedCookie) (rawcookie.RawCookie, error) {
	value := base64.RawURLEncoding.EncodeToString([]byte(c.Value))
	return validated(rawcookie.New(c.Name, value))
}

func (base64Codec) Decode(c rawcookie.RawCookie) (DecodedCookie, error) {
	value := make([]byte, base64.RawURLEncoding.DecodedLen(len(c.Value)))
	n, err := base64.RawURLEncoding.Decode(value, c.Value)
	if err != nil {
		return DecodedCookie{}, errors.Join(ErrInvalidEncoding, err)
	}
	return text(c.Name, value[:n])
}

func validated(c rawcookie.RawCookie) (rawcookie.RawCookie, error) {
	if err := rawcookie.Validate(c); err != nil {
		return rawcookie.RawCookie{}, errors.Join(ErrInvalidCookie, err)
	}
	return c, nil
}

func text(name, value []byte) (DecodedCookie, error) {
	if !utf8.Valid(name) {
		return DecodedCookie{}, fmt.Errorf("%w: name", ErrInvalidUTF8)
	}
	if !utf8.Valid(value) {
		return DecodedCookie{}, fmt.Errorf("%w: value", ErrInvalidUTF8)
	}
	return DecodedCookie{Name: string(name), Value: string(value)}, nil
}
