package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/utafrali/StorefrontGo/apperrors"
	"github.com/utafrali/StorefrontGo/decode"
)

// ParseResponseError reads the body of a non-2xx response and translates
// it into an AppError. The human-readable message is extracted by trying,
// in order: body "message", body "error" (string), then a generic text
// with the raw body. The caller must only invoke this when the status
// indicates an error; the body is fully consumed but not closed.
func ParseResponseError(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return mapStatusError(resp.StatusCode, "", fmt.Sprintf("status %d (failed to read body)", resp.StatusCode))
	}

	code, message := extractErrorBody(data)
	if message == "" {
		message = fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return mapStatusError(resp.StatusCode, code, message)
}

// extractErrorBody pulls a code and message out of an error body. Shapes
// observed: {message}, {error: "..."}, {error: {code, message}},
// {detail}.
func extractErrorBody(data []byte) (code, message string) {
	var body any
	if json.Unmarshal(data, &body) != nil {
		return "", ""
	}
	rec := decode.AsRecord(body)

	if msg, ok := decode.FirstString(rec, "message"); ok {
		code, _ = decode.FirstString(rec, "code")
		return code, msg
	}

	if errRec, ok := decode.Record(rec, "error"); ok {
		code, _ = decode.FirstString(errRec, "code")
		message, _ = decode.FirstString(errRec, "message", "detail")
		return code, message
	}
	if msg, ok := decode.FirstString(rec, "error", "detail"); ok {
		return "", msg
	}
	return "", ""
}

// mapStatusError maps an HTTP status to the matching AppError constructor
// so callers can branch with errors.Is.
func mapStatusError(status int, code, message string) error {
	switch status {
	case http.StatusNotFound:
		return apperrors.NotFound(message)
	case http.StatusBadRequest:
		return apperrors.InvalidInput(message)
	case http.StatusUnauthorized:
		return apperrors.Unauthorized(message)
	case http.StatusForbidden:
		return apperrors.Forbidden(message)
	case http.StatusConflict:
		return apperrors.Conflict(message)
	default:
		if status >= 500 {
			return &apperrors.AppError{
				Code:    orDefault(code, "UPSTREAM_ERROR"),
				Message: message,
				Status:  status,
				Err:     apperrors.ErrInternal,
			}
		}
		return apperrors.Upstream(status, orDefault(code, "API_ERROR"), message)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
