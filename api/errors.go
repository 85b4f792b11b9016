package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Error is an API exception carrying an HTTP status, a detail payload and
// optional response headers. Detail may be a string, a list or a map; plain
// strings are wrapped in the {"error": [...]} envelope.
type Error struct {
	Code       int
	Detail     interface{}
	AuthHeader string
	Wait       int
}

func (e *Error) Error() string {
	if s, ok := e.Detail.(string); ok {
		return s
	}
	return http.StatusText(e.Code)
}

// NotFound builds a 404 that keeps the message instead of dropping it.
func NotFound(msg string) *Error {
	if msg == "" {
		msg = "Not found."
	}
	return &Error{Code: http.StatusNotFound, Detail: msg}
}

// PermissionDenied builds a 403 with the standard message.
func PermissionDenied() *Error {
	return &Error{Code: http.StatusForbidden, Detail: "You do not have permission to perform this action."}
}

// ValidationError builds a 400 from field errors.
func ValidationError(fields map[string]interface{}) *Error {
	return &Error{Code: http.StatusBadRequest, Detail: fields}
}

// HTTPErrorHandler renders every error as a JSON envelope. Changes from the
// echo default:
//   - Plain messages live under an "error" key, as a list
//   - List/map details are passed through as the body
//   - gorm's record-not-found becomes a 404 with its message intact
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var detail interface{} = http.StatusText(code)
	headers := map[string]string{}

	var apiErr *Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
		detail = apiErr.Detail
		if apiErr.AuthHeader != "" {
			headers["WWW-Authenticate"] = apiErr.AuthHeader
		}
		if apiErr.Wait > 0 {
			headers["Retry-After"] = strconv.Itoa(apiErr.Wait)
		}
	case errors.As(err, &httpErr):
		code = httpErr.Code
		detail = httpErr.Message
	case errors.Is(err, gorm.ErrRecordNotFound):
		code = http.StatusNotFound
		detail = err.Error()
	default:
		log.Println("Unhandled API error:", err)
	}

	for k, v := range headers {
		c.Response().Header().Set(k, v)
	}

	var data interface{}
	switch d := detail.(type) {
	case map[string]interface{}, []interface{}, []string:
		data = d
	case string:
		data = map[string]interface{}{"error": []string{d}}
	default:
		data = map[string]interface{}{"error": []string{http.StatusText(code)}}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, data)
}
