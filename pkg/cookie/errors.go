package cookie

import "errors"

var (
	ErrNoSecret         = errors.New("cookie.no_secret")
	ErrSecretTooShort   = errors.New("cookie.secret_too_short")
	ErrInvalidSignature = errors.New("cookie.invalid_signature")
	ErrDecryptionFailed = errors.New("cookie.decryption_failed")
	ErrCookieNotFound   = errors.New("cookie.not_found")
	ErrInvalidFormat    = errors.New("cookie.invalid_format")
	ErrInvalidCookie    = errors.New("cookie.invalid_cookie")
	ErrInvalidAttribute = errors.New("cookie.invalid_attribute")
	ErrInsecureSameSite = errors.New("cookie.samesite_none_requires_secure")
	ErrUnknownCodec     = errors.New("cookie.unknown_codec")
	ErrKeyDerivation    = errors.New("cookie.key_derivation_failed")
)
