// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable client application.
type Client interface {
	// Run executes cmd and blocks until it is done.
	Run(ctx context.Context, cmd Command) error
}

// UI is the interactive front end started by [ModeTUI].
type UI interface {
	Run(ctx context.Context) error
}
