// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives
	// or Shutdown is called. It returns the first listener failure.
	RunServer() error

	// Shutdown gracefully stops every listener. It is safe to call more
	// than once.
	Shutdown()
}
