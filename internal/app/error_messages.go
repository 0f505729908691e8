// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// work-diary server handlers and the client.
//
// All Msg* constants are human-readable message strings that are written into
// {"message": ...} response bodies or shown on the client status board.
// Keeping them in one place ensures consistent wording throughout the API.
package app

// Server response messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the email/password pair does
	// not match any user.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUserAlreadyExists is returned when registering an email that is
	// already taken.
	MsgUserAlreadyExists = "User already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoToken is returned when an authenticated route is called without
	// a bearer token.
	MsgNoToken = "No authentication token, authorization denied"

	// MsgTokenIsNotValid is returned when the bearer token is expired or
	// cannot be verified.
	MsgTokenIsNotValid = "Token is not valid"

	// MsgDiaryNotFound is returned when the entry id is unknown.
	MsgDiaryNotFound = "Diary entry not found"

	// MsgTodoNotFound is returned when the todo id or index does not exist.
	MsgTodoNotFound = "Todo not found"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"
)

// Client status board captions.
const (
	MsgSaved              = "Saved"
	MsgSaveFailed         = "Failed to save. Your changes are preserved and will be saved when connection is restored."
	MsgAddCommentFailed   = "Failed to add comment"
	MsgAddReactionFailed  = "Failed to add reaction"
	MsgAddTodoFailed      = "Failed to add todo"
	MsgToggleTodoFailed   = "Failed to toggle todo"
	MsgDeleteTodoFailed   = "Failed to delete todo"
	MsgFetchEntriesFailed = "Failed to fetch entries"
	MsgDraftRestored      = "Restored unsaved changes"
	MsgSessionExpired     = "Session expired, please log in again"
)
