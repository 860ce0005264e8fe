// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes a single command given as positional arguments and
	// returns once its output is written.
	Run(ctx context.Context, args []string) error
}
