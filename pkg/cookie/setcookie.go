package cookie

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/cookiewire/pkg/octet"
	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
)

const (
	setCookieHeader = "Set-Cookie"
	cookieHeader    = "Cookie"
	expiresFormat   = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// writeSetCookie validates c and appends one Set-Cookie line. The pair is
// emitted byte for byte; bad input is an error, never rewritten.
func writeSetCookie(w http.ResponseWriter, c rawcookie.RawCookie, o Options, expires time.Time) error {
	if err := rawcookie.Validate(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}
	if o.SameSite == http.SameSiteNoneMode && !o.Secure {
		return ErrInsecureSameSite
	}

	var opts []rawcookie.SerializeOption
	if o.Quoted {
		opts = append(opts, rawcookie.WithQuoting())
	}
	line := rawcookie.Serialize(c, opts...)

	line, err := appendAttributes(line, o, expires)
	if err != nil {
		return err
	}

	w.Header().Add(setCookieHeader, string(line))
	return nil
}

func appendAttributes(dst []byte, o Options, expires time.Time) ([]byte, error) {
	if o.Path != "" {
		if !validAttributeValue(o.Path) {
			return nil, fmt.Errorf("%w: path %q", ErrInvalidAttribute, o.Path)
		}
		dst = append(dst, "; Path="...)
		dst = append(dst, o.Path...)
	}
	if o.Domain != "" {
		domain := strings.TrimPrefix(o.Domain, ".")
		if domain == "" || !validAttributeValue(domain) {
			return nil, fmt.Errorf("%w: domain %q", ErrInvalidAttribute, o.Domain)
		}
		dst = append(dst, "; Domain="...)
		dst = append(dst, domain...)
	}
	if !expires.IsZero() {
		dst = append(dst, "; Expires="...)
		dst = expires.UTC().AppendFormat(dst, expiresFormat)
	}
	switch {
	case o.MaxAge > 0:
		dst = append(dst, "; Max-Age="...)
		dst = strconv.AppendInt(dst, int64(o.MaxAge), 10)
	case o.MaxAge < 0:
		dst = append(dst, "; Max-Age=0"...)
	}
	if o.HttpOnly {
		dst = append(dst, "; HttpOnly"...)
	}
	if o.Secure {
		dst = append(dst, "; Secure"...)
	}
	switch o.SameSite {
	case http.SameSiteLaxMode:
		dst = append(dst, "; SameSite=Lax"...)
	case http.SameSiteStrictMode:
		dst = append(dst, "; SameSite=Strict"...)
	case http.SameSiteNoneMode:
		dst = append(dst, "; SameSite=None"...)
	}
	return dst, nil
}

// validAttributeValue rejects octets that would end the attribute or the
// header line: ';', CTLs and anything outside ASCII.
func validAttributeValue(v string) bool {
	for i := 0; i < len(v); i++ {
		b := v[i]
		if b == ';' || b >= 0x80 || octet.IsCTL(b) {
			return false
		}
	}
	return true
}

// lookup finds the first pair named name across all Cookie header lines.
func lookup(r *http.Request, name []byte) (rawcookie.RawCookie, bool) {
	for _, line := range r.Header.Values(cookieHeader) {
		if c, ok := rawcookie.Lookup([]byte(line), name); ok {
			return c, true
		}
	}
	return rawcookie.RawCookie{}, false
}
