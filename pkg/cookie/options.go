package cookie

import (
	"net/http"

	"github.com/dmitrymomot/cookiewire/pkg/cookiecodec"
)

// Options are the Set-Cookie attributes written after the cookie-pair.
type Options struct {
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
	// Quoted wraps the value in DQUOTE on the wire. Readers strip the quotes.
	Quoted bool
	Codec  cookiecodec.Codec
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = seconds
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HttpOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// WithQuotedValue requests DQUOTE-wrapped values. Quoting is never applied
// unless asked for.
func WithQuotedValue(quoted bool) Option {
	return func(o *Options) {
		o.Quoted = quoted
	}
}

// applyOptions copies base and applies opts to the copy.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}

// WithCodec sets the codec that maps application text to wire octets for
// Set and Get. Signed and encrypted cookies are base64 on the wire and do
// not use it. Nil is ignored.
func WithCodec(codec cookiecodec.Codec) Option {
	return func(o *Options) {
		if codec != nil {
			o.Codec = codec
		}
	}
}
