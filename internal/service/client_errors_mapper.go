package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/work-diary/internal/adapter"
	"github.com/MKhiriev/work-diary/internal/app"
	"github.com/MKhiriev/work-diary/internal/store"
)

// mapAdapterError gives a server answer the meaning the client services
// work with. The server message tells apart answers that share a status,
// such as a missing todo and a missing entry. Transport failures pass through
// unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.ServerMessage(err)
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)
	case errors.Is(err, adapter.ErrUnauthorized) && msg == app.MsgInvalidCredentials:
		return ErrWrongPassword
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid
	case errors.Is(err, adapter.ErrNotFound) && msg == app.MsgTodoNotFound:
		return ErrTodoNotFound
	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrDiaryNotFound
	case errors.Is(err, adapter.ErrConflict):
		return store.ErrEmailAlreadyExists
	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrTooManyRequests
	default:
		return err
	}
}
