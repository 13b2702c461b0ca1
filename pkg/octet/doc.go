// Package octet classifies single bytes against the character classes used by
// the RFC 6265 cookie grammar.
//
// The predicates answer exactly four questions:
//
//   - IsCTL: is b a control octet (0x00-0x1F, 0x7F)?
//   - IsSeparator: is b one of the HTTP token separators?
//   - IsTokenChar: may b appear in a token (cookie-name)?
//   - IsCookieOctet: may b appear in a cookie-value?
//
// A 256-entry table is built once at init; every predicate is a single lookup
// and never allocates. This is the only package that knows the RFC ranges, so
// a grammar revision changes nothing outside of it.
//
// # Usage
//
//	if i := octet.ValidToken(name); i >= 0 {
//		// name[i] is not allowed in a cookie-name
//	}
//
// # References
//
//   - https://www.rfc-editor.org/rfc/rfc6265#section-4.1.1
//   - https://www.rfc-editor.org/rfc/rfc2616#section-2.2
package octet
