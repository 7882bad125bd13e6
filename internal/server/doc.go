// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the service's transport servers.
//
// It owns the HTTP listener serving the user-config endpoint and the
// optional gRPC health listener, including startup, signal handling and
// graceful shutdown of both.
package server
