package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/core-platform/launchpad/internal/core/domain"
)

// errorBody is the canonical error envelope for all API errors:
// {"error":{"code":"...","message":"..."}}.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// Error codes exposed to clients.
const (
	codeUnauthorized = "UNAUTHORIZED"
	codeForbidden    = "FORBIDDEN"
	codeValidation   = "VALIDATION_ERROR"
	codeConflict     = "CONFLICT"
	codeNotFound     = "NOT_FOUND"
	codeRateLimit    = "RATE_LIMIT"
	codeUpstream     = "UPSTREAM_ERROR"
	codeInternal     = "INTERNAL_ERROR"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain
// errors onto the error taxonomy, logs unexpected errors, and never leaks
// internal detail to clients outside development.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c, development)
		_ = c.JSON(status, errorEnvelope{Error: body})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, development bool) (int, errorBody) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorBody{Code: codeValidation, Message: ve.Message}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorBody{Code: codeUnauthorized, Message: "Invalid credentials"}
	case errors.Is(err, domain.ErrCurrentPassword):
		return http.StatusUnauthorized, errorBody{Code: codeUnauthorized, Message: "Current password is incorrect"}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorBody{Code: codeUnauthorized, Message: "Authentication required"}
	case errors.Is(err, domain.ErrExpiredToken), errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, errorBody{Code: codeUnauthorized, Message: "Invalid or expired token"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorBody{Code: codeForbidden, Message: "Admin access required"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorBody{Code: codeNotFound, Message: "User not found"}
	case errors.Is(err, domain.ErrAppNotFound):
		return http.StatusNotFound, errorBody{Code: codeNotFound, Message: "App not found"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorBody{Code: codeConflict, Message: "Username already exists"}
	case errors.Is(err, domain.ErrSlugExists):
		return http.StatusConflict, errorBody{Code: codeConflict, Message: "Slug already exists"}
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, errorBody{Code: codeRateLimit, Message: "Too many requests, please try again later"}
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, errorBody{Code: codeUpstream, Message: "Zoho service unavailable"}
	}

	// Echo's own errors: bind failures, 404 from the router, etc.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorBody{Code: codeForStatus(he.Code), Message: fmt.Sprintf("%v", he.Message)}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	msg := "An internal error occurred"
	if development {
		msg = err.Error()
	}
	return http.StatusInternalServerError, errorBody{Code: codeInternal, Message: msg}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return codeValidation
	case http.StatusUnauthorized:
		return codeUnauthorized
	case http.StatusForbidden:
		return codeForbidden
	case http.StatusNotFound:
		return codeNotFound
	case http.StatusConflict:
		return codeConflict
	case http.StatusTooManyRequests:
		return codeRateLimit
	case http.StatusBadGateway:
		return codeUpstream
	default:
		return codeInternal
	}
}
