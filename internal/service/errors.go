package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTodoNotFound = errors.New("todo not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrRegisterOnServer = errors.New("error registering on server")
	ErrLoginOnServer    = errors.New("error logging in on server")
	ErrNotLoggedIn      = errors.New("not logged in")

	ErrEntryNotLoaded  = errors.New("entry is not in the current view")
	ErrUnresolvedTodo  = errors.New("todo was never confirmed by the server")
	ErrFetchEntries    = errors.New("error fetching entries")
	ErrSaveFailed      = errors.New("error saving today's entry")
	ErrTooManyRequests = errors.New("too many requests")
)
