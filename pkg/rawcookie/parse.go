package rawcookie

import (
	"bytes"

	"github.com/dmitrymomot/cookiewire/pkg/octet"
)

const dquote = '"'

// Parse extracts a single cookie-pair from input using the given mode.
// Pairs of a multi-cookie header must be split first, see ParseHeader.
func Parse(input []byte, mode Mode) (RawCookie, error) {
	switch mode {
	case Strict:
		return parseStrict(input)
	case Tolerant:
		return parseTolerant(input)
	}
	return RawCookie{}, ErrUnknownMode
}

// ParseString is Parse for callers holding a header value as a string.
// The returned cookie does not alias s.
func ParseString(s string, mode Mode) (RawCookie, error) {
	return Parse([]byte(s), mode)
}

func parseStrict(input []byte) (RawCookie, error) {
	eq := bytes.IndexByte(input, '=')
	if eq < 0 {
		return RawCookie{}, errAt(MissingEquals, len(input))
	}

	name := input[:eq]
	if err := validateName(name, 0); err != nil {
		return RawCookie{}, err
	}

	value, start, err := unquoteStrict(input[eq+1:], eq+1)
	if err != nil {
		return RawCookie{}, err
	}
	if err := validateValue(value, start); err != nil {
		return RawCookie{}, err
	}

	return RawCookie{Name: name, Value: value}, nil
}

// validateName checks the token grammar. base is the offset of name in the
// caller's input.
func validateName(name []byte, base int) error {
	if len(name) == 0 {
		return errAt(EmptyName, base)
	}
	if i := octet.ValidToken(name); i >= 0 {
		return errOctet(InvalidNameChar, base+i, name[i])
	}
	return nil
}

func validateValue(value []byte, base int) error {
	if i := octet.ValidCookieOctets(value); i >= 0 {
		return errOctet(InvalidValueChar, base+i, value[i])
	}
	return nil
}

// unquoteStrict strips one pair of structural quotes and returns the inner
// value with its offset. A lone leading or trailing quote is an error.
func unquoteStrict(raw []byte, base int) ([]byte, int, error) {
	n := len(raw)
	if n == 0 {
		return raw, base, nil
	}

	opens, closes := raw[0] == dquote, raw[n-1] == dquote
	switch {
	case n >= 2 && opens && closes:
		return raw[1 : n-1], base + 1, nil
	case opens:
		return nil, 0, errAt(UnbalancedQuote, base)
	case closes:
		return nil, 0, errAt(UnbalancedQuote, base+n-1)
	}
	return raw, base, nil
}

func parseTolerant(input []byte) (RawCookie, error) {
	if semi := bytes.IndexByte(input, ';'); semi >= 0 {
		input = input[:semi]
	}

	segment := trimWhitespace(input)
	if len(segment) == 0 {
		return RawCookie{}, errAt(EmptySegment, 0)
	}

	eq := bytes.IndexByte(segment, '=')
	if eq < 0 {
		return RawCookie{Value: unquoteTolerant(segment)}, nil
	}

	return RawCookie{
		Name:  trimWhitespace(segment[:eq]),
		Value: unquoteTolerant(trimWhitespace(segment[eq+1:])),
	}, nil
}

// unquoteTolerant strips a balanced pair of quotes and keeps anything else as is.
func unquoteTolerant(raw []byte) []byte {
	if n := len(raw); n >= 2 && raw[0] == dquote && raw[n-1] == dquote {
		return raw[1 : n-1]
	}
	return raw
}

func trimWhitespace(p []byte) []byte {
	start, end := trimBounds(p)
	return p[start:end]
}

// trimBounds returns the bounds of p without surrounding SP and HT.
func trimBounds(p []byte) (int, int) {
	start, end := 0, len(p)
	for start < end && octet.IsWhitespace(p[start]) {
		start++
	}
	for end > start && octet.IsWhitespace(p[end-1]) {
		end--
	}
	return start, end
}
