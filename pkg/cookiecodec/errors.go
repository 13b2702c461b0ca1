package cookiecodec

import "errors"

var (
	ErrInvalidUTF8     = errors.New("cookiecodec.invalid_utf8")
	ErrInvalidEscape   = errors.New("cookiecodec.invalid_escape")
	ErrInvalidEncoding = errors.New("cookiecodec.invalid_encoding")
	ErrInvalidCookie   = errors.New("cookiecodec.invalid_cookie")
)
