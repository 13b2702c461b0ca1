package rawcookie

type serializeConfig struct {
	quote bool
}

// SerializeOption tweaks serialization. There is deliberately no option that
// rewrites name or value octets.
type SerializeOption func(*serializeConfig)

// WithQuoting wraps the value in DQUOTE. It never escapes anything inside.
func WithQuoting() SerializeOption {
	return func(c *serializeConfig) { c.quote = true }
}

// Serialize returns name=value exactly as stored in c. It does not validate;
// call Validate first for manually built cookies.
func Serialize(c RawCookie, opts ...SerializeOption) []byte {
	return AppendSerialized(make([]byte, 0, serializedLen(c, opts)), c, opts...)
}

// AppendSerialized appends the wire form of c to dst.
func AppendSerialized(dst []byte, c RawCookie, opts ...SerializeOption) []byte {
	var cfg serializeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	dst = append(dst, c.Name...)
	dst = append(dst, '=')
	if cfg.quote {
		dst = append(dst, dquote)
	}
	dst = append(dst, c.Value...)
	if cfg.quote {
		dst = append(dst, dquote)
	}
	return dst
}

// SerializeHeader joins cookies into a Cookie header value using "; "
// between pairs as RFC 6265 section 4.2.1 prescribes.
func SerializeHeader(cookies []RawCookie, opts ...SerializeOption) []byte {
	size := 0
	for _, c := range cookies {
		size += serializedLen(c, opts) + 2
	}

	dst := make([]byte, 0, size)
	for i, c := range cookies {
		if i > 0 {
			dst = append(dst, ';', ' ')
		}
		dst = AppendSerialized(dst, c, opts...)
	}
	return dst
}

// Validate checks c against the strict cookie-pair grammar. Offsets in the
// returned error are relative to the unquoted name=value form.
func Validate(c RawCookie) error {
	if err := validateName(c.Name, 0); err != nil {
		return err
	}
	return validateValue(c.Value, len(c.Name)+1)
}

func serializedLen(c RawCookie, opts []SerializeOption) int {
	return len(c.Name) + len(c.Value) + 1 + 2*len(opts)
}
