// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application runtime.
//
// It wires the server adapter, the local store, the client services and the
// draft replay worker into a single process lifecycle, and exposes the
// diary operations as cobra commands that print the local mirror.
package client
