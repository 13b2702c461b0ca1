package logger

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/cookiewire/pkg/cookiecodec"
	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Mode records the parsing mode under the key "mode".
func Mode(m rawcookie.Mode) slog.Attr {
	return slog.String("mode", m.String())
}

// Cookie records a cookie under the key "cookie" in display form.
// The wire bytes themselves are never logged raw.
func Cookie(c rawcookie.RawCookie) slog.Attr {
	shown := cookiecodec.Display(c)
	return Group("cookie",
		slog.String("name", shown.Name),
		slog.Int("value_len", len(c.Value)),
	)
}

// ParseError records the kind and offset of a rawcookie failure under the
// key "parse_error". Other errors fall back to Error.
func ParseError(err error) slog.Attr {
	var perr *rawcookie.ParseError
	if !errors.As(err, &perr) {
		return Error(err)
	}
	return Group("parse_error",
		slog.String("kind", perr.Kind.String()),
		slog.Int("offset", perr.Offset),
	)
}
