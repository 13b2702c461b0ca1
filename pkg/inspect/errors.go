package inspect

import "errors"

var (
	ErrInvalidJSON   = errors.New("inspect.invalid_json")
	ErrUnknownCodec  = errors.New("inspect.unknown_codec")
	ErrNoCookies     = errors.New("inspect.no_cookies")
	ErrBodyTooLarge  = errors.New("inspect.body_too_large")
	ErrReadingBody   = errors.New("inspect.read_body_failed")
	ErrInvalidCookie = errors.New("inspect.invalid_cookie")
	ErrMissingHeader = errors.New("inspect.missing_cookie_header")
)
