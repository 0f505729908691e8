// Package http serves the diary REST API: accounts, the entry feed and
// today's entry, comments, reactions and todos.
//
// Requests pass through tracing, access logging, metrics, rate limiting, CORS
// and gzip middleware. Routes under /api/diaries additionally require a
// bearer token.
package http
