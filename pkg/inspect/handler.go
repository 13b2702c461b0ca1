package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/cookiewire/pkg/cookiecodec"
	"github.com/dmitrymomot/cookiewire/pkg/httpserver"
	"github.com/dmitrymomot/cookiewire/pkg/logger"
	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
	"github.com/dmitrymomot/cookiewire/pkg/requestid"
)

const defaultMaxBodyBytes = 64 << 10

// Handler serves the inspection routes.
type Handler struct {
	log          *slog.Logger
	mode         rawcookie.Mode
	maxBodyBytes int64
	checks       []func(context.Context) error
}

type Option func(*Handler)

// WithLogger sets the logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMode sets the mode used when a request has no mode query parameter.
func WithMode(m rawcookie.Mode) Option {
	return func(h *Handler) { h.mode = m }
}

// WithMaxBodyBytes caps request bodies. Non-positive values are ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// WithReadinessCheck adds a check to GET /health.
func WithReadinessCheck(check func(context.Context) error) Option {
	return func(h *Handler) {
		if check != nil {
			h.checks = append(h.checks, check)
		}
	}
}

func New(opts ...Option) *Handler {
	h := &Handler{
		log:          logger.Discard(),
		mode:         rawcookie.Tolerant,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("inspect"))
	return h
}

// Router returns the routes wrapped in request ID, recovery, body limit and
// access log middleware.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(h.maxBodyBytes))
	r.Use(h.accessLog)

	r.Post("/parse", h.parse)
	r.Post("/format", h.format)
	r.Get("/echo", h.echo)
	r.Get("/health", httpserver.HealthCheckHandler(h.log, h.checks...))
	return r
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.DebugContext(r.Context(), "request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) {
	mode, err := h.modeOf(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, bodyError(err))
		return
	}

	resp := ParseResponse{Mode: mode, Results: h.results(r, 0, body, mode)}
	writeJSON(w, http.StatusOK, Envelope{Data: resp})
}

func (h *Handler) echo(w http.ResponseWriter, r *http.Request) {
	mode, err := h.modeOf(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	headers := r.Header.Values("Cookie")
	if len(headers) == 0 {
		h.writeError(w, r, ErrMissingHeader)
		return
	}

	resp := ParseResponse{Mode: mode, Results: []ParseResult{}}
	for i, header := range headers {
		resp.Results = append(resp.Results, h.results(r, i, []byte(header), mode)...)
	}
	writeJSON(w, http.StatusOK, Envelope{Data: resp})
}

func (h *Handler) format(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, bodyError(err))
			return
		}
		h.writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}
	if len(req.Cookies) == 0 {
		h.writeError(w, r, ErrNoCookies)
		return
	}

	codec, ok := cookiecodec.ByName(req.Codec)
	if !ok {
		h.writeError(w, r, ErrUnknownCodec)
		return
	}

	cookies := make([]rawcookie.RawCookie, 0, len(req.Cookies))
	for _, fc := range req.Cookies {
		c, err := codec.Encode(cookiecodec.DecodedCookie{Name: fc.Name, Value: fc.Value})
		if err != nil {
			h.writeError(w, r, errors.Join(ErrInvalidCookie, err))
			return
		}
		cookies = append(cookies, c)
	}

	var opts []rawcookie.SerializeOption
	if r.URL.Query().Get("quote") == "1" {
		opts = append(opts, rawcookie.WithQuoting())
	}
	header := rawcookie.SerializeHeader(cookies, opts...)
	writeJSON(w, http.StatusOK, Envelope{Data: FormatResponse{Header: string(header)}})
}

func (h *Handler) modeOf(r *http.Request) (rawcookie.Mode, error) {
	q := r.URL.Query().Get("mode")
	if q == "" {
		return h.mode, nil
	}
	return rawcookie.ParseMode(q)
}

func (h *Handler) results(r *http.Request, index int, header []byte, mode rawcookie.Mode) []ParseResult {
	parsed := rawcookie.ParseHeader(header, mode)
	out := make([]ParseResult, 0, len(parsed))
	for _, res := range parsed {
		pr := ParseResult{Header: index, Offset: res.Offset}
		if res.Err != nil {
			pr.Error = grammarDetail(res.Err)
			pr.Error.Code = "invalid_cookie"
			h.log.DebugContext(r.Context(), "cookie rejected", logger.Mode(mode), logger.ParseError(res.Err))
		} else {
			shown := cookiecodec.Display(res.Cookie)
			pr.NameRaw = res.Cookie.Name
			pr.ValueRaw = res.Cookie.Value
			pr.Display = &DisplayPair{Name: shown.Name, Value: shown.Value}
		}
		out = append(out, pr)
	}
	return out
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errors.Join(ErrBodyTooLarge, err)
	}
	return errors.Join(ErrReadingBody, err)
}
