package store

import "errors"

// Domain outcomes. Services match them with errors.Is and turn them into API
// answers.
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrNoUserWasFound     = errors.New("no user was found")
	ErrDiaryNotFound      = errors.New("diary entry was not found")

	// ErrConcurrentUpdate means an entry kept changing under a
	// read-modify-write until the retry budget ran out.
	ErrConcurrentUpdate = errors.New("diary entry was modified concurrently")

	// ErrLocalSessionNotFound means nobody is logged in on this machine.
	ErrLocalSessionNotFound = errors.New("local session not found")
	// ErrDraftWithoutUser means a draft was saved without its author.
	ErrDraftWithoutUser = errors.New("draft has no user")
)

// Storage failures. Repositories wrap the driver error with one of these.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")

	// ErrEncodingDocument covers the JSON columns and documents holding
	// comments, reactions and todos.
	ErrEncodingDocument = errors.New("failed to encode document")
	ErrCouchRequest     = errors.New("couchdb request failed")
)
