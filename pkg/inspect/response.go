package inspect

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cookiewire/pkg/logger"
	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Kind and Offset are set when the
// failure comes from the cookie grammar.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
	Offset  *int   `json:"offset,omitempty"`
}

// ParseResult is one cookie-pair of a parsed header.
type ParseResult struct {
	Header   int          `json:"header"`
	Offset   int          `json:"offset"`
	NameRaw  []byte       `json:"name_raw"`
	ValueRaw []byte       `json:"value_raw"`
	Display  *DisplayPair `json:"display,omitempty"`
	Error    *ErrorDetail `json:"error,omitempty"`
}

type DisplayPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ParseResponse struct {
	Mode    rawcookie.Mode `json:"mode"`
	Results []ParseResult  `json:"results"`
}

type FormatRequest struct {
	Codec   string         `json:"codec"`
	Cookies []FormatCookie `json:"cookies"`
}

type FormatCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type FormatResponse struct {
	Header string `json:"header"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := errorToDetail(err)
	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.log.Log(r.Context(), level, "request rejected",
		slog.String("code", detail.Code),
		logger.ParseError(err),
	)
	writeJSON(w, status, Envelope{Error: detail})
}

func errorToDetail(err error) (int, *ErrorDetail) {
	detail := grammarDetail(err)
	switch {
	case errors.Is(err, rawcookie.ErrUnknownMode):
		detail.Code = "unknown_mode"
		return http.StatusBadRequest, detail
	case errors.Is(err, ErrUnknownCodec):
		detail.Code = "unknown_codec"
		return http.StatusBadRequest, detail
	case errors.Is(err, ErrInvalidJSON):
		detail.Code = "invalid_json"
		return http.StatusBadRequest, detail
	case errors.Is(err, ErrNoCookies):
		detail.Code = "no_cookies"
		return http.StatusBadRequest, detail
	case errors.Is(err, ErrMissingHeader):
		detail.Code = "missing_cookie_header"
		return http.StatusBadRequest, detail
	case errors.Is(err, ErrBodyTooLarge):
		detail.Code = "body_too_large"
		return http.StatusRequestEntityTooLarge, detail
	case errors.Is(err, ErrInvalidCookie):
		detail.Code = "invalid_cookie"
		return http.StatusUnprocessableEntity, detail
	}
	detail.Code = "internal_error"
	detail.Message = http.StatusText(http.StatusInternalServerError)
	return http.StatusInternalServerError, detail
}

// grammarDetail fills Kind and Offset from a *rawcookie.ParseError in err.
func grammarDetail(err error) *ErrorDetail {
	detail := &ErrorDetail{Message: err.Error()}
	var perr *rawcookie.ParseError
	if errors.As(err, &perr) {
		detail.Kind = perr.Kind.String()
		offset := perr.Offset
		detail.Offset = &offset
	}
	return detail
}
