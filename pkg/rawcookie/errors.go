package rawcookie

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEquals    = errors.New("rawcookie.missing_equals")
	ErrEmptyName        = errors.New("rawcookie.empty_name")
	ErrInvalidNameChar  = errors.New("rawcookie.invalid_name_char")
	ErrUnbalancedQuote  = errors.New("rawcookie.unbalanced_quote")
	ErrInvalidValueChar = errors.New("rawcookie.invalid_value_char")
	ErrEmptySegment     = errors.New("rawcookie.empty_segment")
	ErrUnknownMode      = errors.New("rawcookie.unknown_mode")
)

// Kind tags the reason a parse failed.
type Kind uint8

const (
	MissingEquals Kind = iota + 1
	EmptyName
	InvalidNameChar
	UnbalancedQuote
	InvalidValueChar
	EmptySegment
)

var kindNames = map[Kind]string{
	MissingEquals:    "missing_equals",
	EmptyName:        "empty_name",
	InvalidNameChar:  "invalid_name_char",
	UnbalancedQuote:  "unbalanced_quote",
	InvalidValueChar: "invalid_value_char",
	EmptySegment:     "empty_segment",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) sentinel() error {
	switch k {
	case MissingEquals:
		return ErrMissingEquals
	case EmptyName:
		return ErrEmptyName
	case InvalidNameChar:
		return ErrInvalidNameChar
	case UnbalancedQuote:
		return ErrUnbalancedQuote
	case InvalidValueChar:
		return ErrInvalidValueChar
	case EmptySegment:
		return ErrEmptySegment
	}
	return nil
}

// ParseError describes where and why a cookie-pair was rejected.
// Offset is a byte index into the input handed to the failing call.
// Byte is the offending octet for InvalidNameChar and InvalidValueChar.
type ParseError struct {
	Kind   Kind
	Offset int
	Byte   byte
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidNameChar, InvalidValueChar:
		return fmt.Sprintf("rawcookie.%s: octet %#02x at offset %d", e.Kind, e.Byte, e.Offset)
	}
	return fmt.Sprintf("rawcookie.%s: at offset %d", e.Kind, e.Offset)
}

// Unwrap returns the sentinel for e.Kind so errors.Is matches on kind.
func (e *ParseError) Unwrap() error { return e.Kind.sentinel() }

func errAt(kind Kind, offset int) *ParseError {
	return &ParseError{Kind: kind, Offset: offset}
}

func errOctet(kind Kind, offset int, b byte) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Byte: b}
}

// rebase shifts the offset of a *ParseError by base. Other errors pass through.
func rebase(err error, base int) error {
	var perr *ParseError
	if base == 0 || !errors.As(err, &perr) {
		return err
	}
	shifted := *perr
	shifted.Offset += base
	return &shifted
}
