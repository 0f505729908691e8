// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/work-diary/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Start restores the saved session and runs the start-up workers.
	Start(ctx context.Context) error

	// Close flushes pending writes, waits for queued mutations and releases
	// local resources.
	Close(ctx context.Context) error

	// Services returns the client services driven by the commands.
	Services() *service.ClientServices

	// Location is the time zone whose calendar day is "today".
	Location() *time.Location
}

// Factory builds a Client for the given command-line options.
type Factory func(ctx context.Context, opts Options) (Client, error)
