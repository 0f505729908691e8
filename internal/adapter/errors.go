package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/work-diary/models"
	"github.com/go-resty/resty/v2"
)

// Status classes of [StatusError]. Match them with errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")

	ErrDecodingResponse = errors.New("error decoding server response")
)

var statusClasses = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}

// StatusError is a non-2xx answer of the diary API.
type StatusError struct {
	Status int
	// Message is the "message" field of the error body, or the raw body when
	// it is not JSON.
	Message string
}

func NewStatusError(status int, message string) *StatusError {
	return &StatusError{Status: status, Message: message}
}

func (e *StatusError) Error() string {
	if class := statusClasses[e.Status]; class != nil {
		return fmt.Sprintf("%s: %s", class, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// Unwrap exposes the status class, nil for statuses without one.
func (e *StatusError) Unwrap() error {
	return statusClasses[e.Status]
}

// checkResponse turns a non-2xx response into a *StatusError.
func checkResponse(resp *resty.Response) error {
	if !resp.IsSuccess() {
		msg := errorMessage(resp.Body())
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return NewStatusError(resp.StatusCode(), msg)
	}
	return nil
}

// ServerMessage returns the message the server attached to err, or "" when
// err is not a server answer.
func ServerMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

func errorMessage(raw []byte) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(raw))
}
