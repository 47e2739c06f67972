// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the contract of a runnable command line client.
type Client interface {
	// Run executes the subcommand named by args[0] with the remaining args.
	Run(ctx context.Context, args []string) error
}
