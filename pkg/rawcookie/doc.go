// Package rawcookie parses and serializes the RFC 6265 cookie-pair grammar
// over raw octets.
//
// A RawCookie holds a name and a value as byte slices. The parser hands back
// sub-slices of its input and the serializer writes them back verbatim: no
// percent-decoding, no case folding, no charset conversion and no implicit
// quoting happens anywhere in this package. Applications that want an
// encoding on top of the wire bytes use an explicit layer such as
// github.com/dmitrymomot/cookiewire/pkg/cookiecodec.
//
// # Modes
//
// Parsing takes an explicit Mode:
//
//   - Strict enforces cookie-pair = cookie-name "=" cookie-value exactly
//     (RFC 6265 section 4.1.1) and reports the first violation as a
//     *ParseError carrying the byte offset.
//   - Tolerant follows the permissive receiving algorithm of section 5.2:
//     surrounding whitespace is trimmed, a pair without "=" becomes a
//     value with an empty name, and octet classes are not checked.
//
// Strict failures are never retried in Tolerant mode. Callers choose.
//
// # Usage
//
//	c, err := rawcookie.Parse([]byte(`key="value%23foobar"`), rawcookie.Strict)
//	if err != nil {
//		var perr *rawcookie.ParseError
//		if errors.As(err, &perr) {
//			log.Printf("bad cookie at offset %d", perr.Offset)
//		}
//	}
//	_ = rawcookie.Serialize(c) // key=value%23foobar
//
//	for _, res := range rawcookie.ParseHeader([]byte(r.Header.Get("Cookie")), rawcookie.Tolerant) {
//		...
//	}
//
// # Error Handling
//
// Every failure is a *ParseError that unwraps to one of the sentinel errors
// (ErrMissingEquals, ErrEmptyName, ErrInvalidNameChar, ErrUnbalancedQuote,
// ErrInvalidValueChar, ErrEmptySegment), so errors.Is works on kinds and
// errors.As recovers the offset.
//
// # Concurrency
//
// All functions are pure. RawCookie values may be shared read-only across
// goroutines; segments of one header may be parsed in parallel.
package rawcookie
