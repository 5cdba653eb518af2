// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the terminal client: either the interactive task list
// or a one-shot command (list, create, complete) that prints JSON.
package client
