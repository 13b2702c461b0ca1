package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiewire/pkg/logger"
	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
}

func TestRequestID(t *testing.T) {
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.Equal(t, "abc", logger.RequestID("abc").Value.String())
}

func TestMode(t *testing.T) {
	assert.Equal(t, "strict", logger.Mode(rawcookie.Strict).Value.String())
}

func TestCookie(t *testing.T) {
	attr := logger.Cookie(rawcookie.RawCookie{Name: []byte("k\xee"), Value: []byte("abc")})
	require.Equal(t, "cookie", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "kî", g[0].Value.String())
	assert.Equal(t, int64(3), g[1].Value.Int64())
}

func TestParseError(t *testing.T) {
	_, err := rawcookie.ParseString("key=a b", rawcookie.Strict)
	require.Error(t, err)

	attr := logger.ParseError(err)
	require.Equal(t, "parse_error", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "invalid_value_char", g[0].Value.String())
	assert.Equal(t, int64(5), g[1].Value.Int64())

	plain := logger.ParseError(errors.New("boom"))
	assert.Equal(t, "error", plain.Key)
	assert.True(t, logger.ParseError(nil).Equal(slog.Attr{}))
}
