// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until ctx is cancelled, a termination signal
	// arrives or the listener fails, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server within ctx.
	Shutdown(ctx context.Context) error
}
