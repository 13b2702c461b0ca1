package inspect_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiewire/pkg/inspect"
	"github.com/dmitrymomot/cookiewire/pkg/logger"
	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
	"github.com/dmitrymomot/cookiewire/pkg/requestid"
)

type parseEnvelope struct {
	Data  inspect.ParseResponse `json:"data"`
	Error *inspect.ErrorDetail  `json:"error"`
}

type formatEnvelope struct {
	Data  inspect.FormatResponse `json:"data"`
	Error *inspect.ErrorDetail   `json:"error"`
}

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestParse_Strict(t *testing.T) {
	t.Parallel()

	router := inspect.New().Router()
	req := httptest.NewRequest(http.MethodPost, "/parse?mode=strict", strings.NewReader("a=1; b=x y; c"))
	rec := serve(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))

	env := decodeBody[parseEnvelope](t, rec)
	assert.Nil(t, env.Error)
	assert.Equal(t, rawcookie.Strict, env.Data.Mode)
	require.Len(t, env.Data.Results, 3)

	first := env.Data.Results[0]
	assert.Equal(t, 0, first.Offset)
	assert.Equal(t, []byte("a"), first.NameRaw)
	assert.Equal(t, []byte("1"), first.ValueRaw)
	require.NotNil(t, first.Display)
	assert.Equal(t, "a", first.Display.Name)
	assert.Nil(t, first.Error)

	second := env.Data.Results[1]
	assert.Equal(t, 5, second.Offset)
	require.NotNil(t, second.Error)
	assert.Equal(t, "invalid_cookie", second.Error.Code)
	assert.Equal(t, "invalid_value_char", second.Error.Kind)
	require.NotNil(t, second.Error.Offset)
	assert.Equal(t, 8, *second.Error.Offset)
	assert.Nil(t, second.Display)

	third := env.Data.Results[2]
	require.NotNil(t, third.Error)
	assert.Equal(t, "missing_equals", third.Error.Kind)
	assert.Equal(t, 13, *third.Error.Offset)
}

func TestParse_DefaultModeAndOctets(t *testing.T) {
	t.Parallel()

	router := inspect.New(inspect.WithMode(rawcookie.Tolerant)).Router()
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader([]byte("k=%ee; n=\xee")))
	rec := serve(t, router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeBody[parseEnvelope](t, rec)
	assert.Equal(t, rawcookie.Tolerant, env.Data.Mode)
	require.Len(t, env.Data.Results, 2)
	assert.Equal(t, []byte("%ee"), env.Data.Results[0].ValueRaw)
	assert.Equal(t, []byte{0xee}, env.Data.Results[1].ValueRaw)
	assert.Equal(t, "î", env.Data.Results[1].Display.Value)
}

func TestParse_EmptyBody(t *testing.T) {
	t.Parallel()

	rec := serve(t, inspect.New().Router(), httptest.NewRequest(http.MethodPost, "/parse", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"results":[]`)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		body   string
		status int
		code   string
	}{
		{name: "unknown mode", target: "/parse?mode=lenient", body: "a=1", status: http.StatusBadRequest, code: "unknown_mode"},
		{name: "body too large", target: "/parse", body: strings.Repeat("a=1;", 10), status: http.StatusRequestEntityTooLarge, code: "body_too_large"},
	}

	router := inspect.New(inspect.WithMaxBodyBytes(16)).Router()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(t, router, httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code)
			env := decodeBody[parseEnvelope](t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestEcho(t *testing.T) {
	t.Parallel()

	router := inspect.New().Router()

	t.Run("parses every cookie header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.Header.Add("Cookie", `x=%ee; y="q"`)
		req.Header.Add("Cookie", "z=1")
		rec := serve(t, router, req)
		require.Equal(t, http.StatusOK, rec.Code)

		env := decodeBody[parseEnvelope](t, rec)
		require.Len(t, env.Data.Results, 3)
		assert.Equal(t, []byte("%ee"), env.Data.Results[0].ValueRaw)
		assert.Equal(t, []byte("q"), env.Data.Results[1].ValueRaw)
		assert.Equal(t, 1, env.Data.Results[2].Header)
		assert.Equal(t, []byte("z"), env.Data.Results[2].NameRaw)
	})

	t.Run("strict keeps quotes out of value", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/echo?mode=strict", nil)
		req.Header.Set("Cookie", `y="q"`)
		env := decodeBody[parseEnvelope](t, serve(t, router, req))
		require.Len(t, env.Data.Results, 1)
		assert.Equal(t, []byte("q"), env.Data.Results[0].ValueRaw)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, router, httptest.NewRequest(http.MethodGet, "/echo", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeBody[parseEnvelope](t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "missing_cookie_header", env.Error.Code)
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		body   string
		status int
		header string
		code   string
		kind   string
		offset int
	}{
		{
			name:   "identity",
			target: "/format",
			body:   `{"cookies":[{"name":"a","value":"1"},{"name":"b","value":"2"}]}`,
			status: http.StatusOK,
			header: "a=1; b=2",
		},
		{
			name:   "quoted",
			target: "/format?quote=1",
			body:   `{"cookies":[{"name":"a","value":"1"}]}`,
			status: http.StatusOK,
			header: `a="1"`,
		},
		{
			name:   "percent",
			target: "/format",
			body:   `{"codec":"percent","cookies":[{"name":"key","value":"a b;c#"}]}`,
			status: http.StatusOK,
			header: "key=a%20b%3Bc#",
		},
		{
			name:   "invalid value",
			target: "/format",
			body:   `{"cookies":[{"name":"k","value":"a b"}]}`,
			status: http.StatusUnprocessableEntity,
			code:   "invalid_cookie",
			kind:   "invalid_value_char",
			offset: 3,
		},
		{
			name:   "unknown codec",
			target: "/format",
			body:   `{"codec":"rot13","cookies":[{"name":"k","value":"v"}]}`,
			status: http.StatusBadRequest,
			code:   "unknown_codec",
		},
		{
			name:   "no cookies",
			target: "/format",
			body:   `{"cookies":[]}`,
			status: http.StatusBadRequest,
			code:   "no_cookies",
		},
		{
			name:   "invalid json",
			target: "/format",
			body:   `{"cookies":`,
			status: http.StatusBadRequest,
			code:   "invalid_json",
		},
	}

	router := inspect.New().Router()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(t, router, httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body)))
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			env := decodeBody[formatEnvelope](t, rec)
			if tt.code == "" {
				assert.Nil(t, env.Error)
				assert.Equal(t, tt.header, env.Data.Header)
				return
			}
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			if tt.kind != "" {
				assert.Equal(t, tt.kind, env.Error.Kind)
				require.NotNil(t, env.Error.Offset)
				assert.Equal(t, tt.offset, *env.Error.Offset)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := serve(t, inspect.New().Router(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	failing := inspect.New(inspect.WithReadinessCheck(func(context.Context) error { return errors.New("down") }))
	rec = serve(t, failing.Router(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLogging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithLevel(-4),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	router := inspect.New(inspect.WithLogger(log)).Router()

	req := httptest.NewRequest(http.MethodPost, "/parse?mode=strict", strings.NewReader("=v"))
	req.Header.Set(requestid.Header, "trace-1")
	rec := serve(t, router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"trace-1"`)
	assert.Contains(t, out, `"component":"inspect"`)
	assert.Contains(t, out, `"kind":"empty_name"`)
	assert.Contains(t, out, "request served")
}
