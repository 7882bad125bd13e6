// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the user-config endpoint.
//
// Every response carries permissive CORS headers and OPTIONS requests are
// answered before routing. Requests under /userConfig pass bearer
// authentication and role resolution before the CRUD handler for their
// method runs; everything else is a plain-text 404. The same chain, minus
// path routing, is exposed by [Handler.Function] for platforms that bind a
// single function URL to one handler.
package http
