package rawcookie

import (
	"bytes"
	"errors"
	"iter"
)

// Result is the outcome of parsing one ";"-delimited segment of a header.
// Offset is where the segment starts in the header; offsets inside Err are
// relative to the header as well.
type Result struct {
	Cookie RawCookie
	Err    error
	Offset int
}

// Split yields every segment of a Cookie header value together with its
// start offset. Segments that are empty after trimming SP and HT are skipped.
// Segments are independent and may be parsed concurrently.
func Split(header []byte) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		start := 0
		for start <= len(header) {
			end := bytes.IndexByte(header[start:], ';')
			if end < 0 {
				end = len(header)
			} else {
				end += start
			}

			seg := header[start:end]
			if s, e := trimBounds(seg); s < e {
				if !yield(start, seg) {
					return
				}
			}
			start = end + 1
		}
	}
}

// ParseHeader parses every pair of a Cookie header value, preserving order.
// In Strict mode the single SP that RFC 6265 places after each ";" is
// consumed as part of the delimiter.
func ParseHeader(header []byte, mode Mode) []Result {
	var results []Result
	for start, seg := range Split(header) {
		base := start
		if mode == Strict && start > 0 && seg[0] == ' ' {
			seg = seg[1:]
			base++
		}

		c, err := Parse(seg, mode)
		results = append(results, Result{Cookie: c, Err: rebase(err, base), Offset: base})
	}
	return results
}

// Cookies returns the successfully parsed pairs of header and the joined
// errors of the rejected ones.
func Cookies(header []byte, mode Mode) ([]RawCookie, error) {
	var (
		cookies []RawCookie
		errs    []error
	)
	for _, res := range ParseHeader(header, mode) {
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		cookies = append(cookies, res.Cookie)
	}
	return cookies, errors.Join(errs...)
}

// Lookup returns the first pair of header whose name equals name byte for
// byte. The header is read in Tolerant mode.
func Lookup(header, name []byte) (RawCookie, bool) {
	for _, seg := range Split(header) {
		c, err := parseTolerant(seg)
		if err == nil && bytes.Equal(c.Name, name) {
			return c, true
		}
	}
	return RawCookie{}, false
}
