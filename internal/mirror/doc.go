// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mirror holds the client's in-memory projection of the diary
// entries relevant to the active view.
//
// Every entry is kept as two layers: the last copy confirmed by the server
// and an ordered list of pending optimistic mutations applied on top of it.
// Readers always observe the optimistic state. Confirming or discarding a
// mutation rebuilds the entry from the confirmed copy and the mutations that
// are still pending, which gives the revert-and-replay semantics the
// synchronizer relies on.
//
// Pending body text typed by the user is kept as an overlay keyed by
// (author, day) so that a server response for a concurrent mutation of the
// same entry does not erase it.
package mirror
